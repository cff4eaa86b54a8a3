// journal/csv.go
package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rustyeddy/tradejournal/market"
)

var csvHeader = []string{
	"id", "symbol", "session", "entry_price", "exit_price", "risk_percent",
	"position_size", "result", "pnl", "date", "time", "strategy", "notes", "image",
}

type CSVSink struct {
	w *csv.Writer
	c io.Closer
}

// NewCSV creates (or truncates) path and writes the header row.
func NewCSV(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	s, err := NewCSVWriter(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	s.c = f
	return s, nil
}

// NewCSVWriter writes CSV to w. Closing the sink flushes but does not
// close w.
func NewCSVWriter(w io.Writer) (*CSVSink, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return nil, err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, err
	}
	return &CSVSink{w: cw}, nil
}

func (j *CSVSink) RecordTrade(t TradeRecord) error {
	err := j.w.Write([]string{
		strconv.Itoa(t.ID),
		t.Symbol,
		string(t.Session),
		f(t.EntryPrice),
		f(t.ExitPrice),
		f(t.RiskPercent),
		f(t.PositionSize),
		string(t.Result),
		strconv.FormatFloat(t.PnL, 'f', 2, 64),
		t.Date,
		t.Time,
		string(t.Strategy),
		t.Notes,
		t.Image,
	})
	if err != nil {
		return err
	}
	j.w.Flush()
	return j.w.Error()
}

func (j *CSVSink) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		return err
	}
	if j.c != nil {
		return j.c.Close()
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// ReadInputsCSV reads trade inputs from CSV with a header row. Columns
// are matched by name; symbol, entry_price and exit_price are required
// and the derived id, result and pnl columns are ignored, so an export
// can be read back. Field values are not validated here; AddTrade does
// that.
func ReadInputsCSV(r io.Reader) ([]TradeInput, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv: missing header")
		}
		return nil, err
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, req := range []string{"symbol", "entry_price", "exit_price"} {
		if _, ok := cols[req]; !ok {
			return nil, fmt.Errorf("csv: missing column %q", req)
		}
	}

	var out []TradeInput
	line := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		get := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		num := func(name string) (float64, error) {
			s := get(name)
			if s == "" {
				return 0, nil
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return 0, fmt.Errorf("csv line %d: %s: %w", line, name, err)
			}
			return v, nil
		}

		in := TradeInput{
			Symbol:   get("symbol"),
			Session:  market.Session(get("session")),
			Date:     get("date"),
			Time:     get("time"),
			Strategy: market.Strategy(get("strategy")),
			Notes:    get("notes"),
			Image:    get("image"),
		}
		if in.EntryPrice, err = num("entry_price"); err != nil {
			return nil, err
		}
		if in.ExitPrice, err = num("exit_price"); err != nil {
			return nil, err
		}
		if in.RiskPercent, err = num("risk_percent"); err != nil {
			return nil, err
		}
		if in.PositionSize, err = num("position_size"); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}
