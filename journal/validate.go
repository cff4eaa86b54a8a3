package journal

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so errors match the form the
	// caller filled in.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks the required fields of a trade input. It returns a
// *ValidationError for the first problem found.
func (in TradeInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &ValidationError{Field: verrs[0].Field(), Reason: "is required"}
		}
		return &ValidationError{Field: "trade", Reason: err.Error()}
	}
	if !finite(in.EntryPrice) {
		return &ValidationError{Field: "entryPrice", Reason: "must be a finite number"}
	}
	if !finite(in.ExitPrice) {
		return &ValidationError{Field: "exitPrice", Reason: "must be a finite number"}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
