package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsSortableAndUnique(t *testing.T) {
	t.Parallel()

	prev := New()
	seen := map[string]bool{prev: true}
	for i := 0; i < 1000; i++ {
		next := New()
		assert.Len(t, next, 26)
		assert.Less(t, prev, next)
		assert.False(t, seen[next])
		seen[next] = true
		prev = next
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Valid(New()))
	assert.False(t, Valid(""))
	assert.False(t, Valid("not-a-ulid"))
	assert.False(t, Valid("01ARZ3NDEKTSV4RRFFQ69G5FA"))   // 25 chars
	assert.False(t, Valid("01ARZ3NDEKTSV4RRFFQ69G5FAU")) // U is not in the alphabet
}
