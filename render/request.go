package render

import (
	"fmt"
	"math"
	"strings"
)

type valueRule int

const (
	anyValue valueRule = iota
	nonNegative
)

// Kind describes one chart style together with the defaults and value rules
// its requests are checked against.
type Kind struct {
	Name            string
	DefaultTitle    string
	DefaultFilename string

	// noun names the numeric sequence in user-facing messages.
	noun string
	rule valueRule
}

var (
	Bar = Kind{
		Name:            "bar",
		DefaultTitle:    "My Chart",
		DefaultFilename: "plot.png",
		noun:            "values",
		rule:            anyValue,
	}
	Line = Kind{
		Name:            "line",
		DefaultTitle:    "My Line Chart",
		DefaultFilename: "line_plot.png",
		noun:            "values",
		rule:            anyValue,
	}
	Pie = Kind{
		Name:            "pie",
		DefaultTitle:    "My Pie Chart",
		DefaultFilename: "pie_plot.png",
		noun:            "sizes",
		rule:            nonNegative,
	}
)

// KindByName looks up a chart kind by its short name (bar, line, pie).
func KindByName(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Bar.Name:
		return Bar, true
	case Line.Name:
		return Line, true
	case Pie.Name:
		return Pie, true
	}
	return Kind{}, false
}

func (k Kind) String() string { return k.Name }

// ChartRequest carries one call's labels and their parallel values.
type ChartRequest struct {
	Labels   []string
	Values   []float64
	Title    string
	Filename string
}

// withDefaults fills an empty title or filename from the kind.
func (r ChartRequest) withDefaults(k Kind) ChartRequest {
	if r.Title == "" {
		r.Title = k.DefaultTitle
	}
	if r.Filename == "" {
		r.Filename = k.DefaultFilename
	}
	return r
}

// Validate checks the request against the kind's rules. The first failing
// rule wins, in the order: empty input, length mismatch, negative size,
// non-finite value.
func (k Kind) Validate(r ChartRequest) error {
	if len(r.Labels) == 0 || len(r.Values) == 0 {
		return newValidationError(ErrEmptyInput,
			fmt.Sprintf("Labels and %s cannot be empty.", k.noun))
	}
	if len(r.Labels) != len(r.Values) {
		return newValidationError(ErrLengthMismatch,
			fmt.Sprintf("The number of labels must match the number of %s.", k.noun))
	}
	if k.rule == nonNegative {
		for _, v := range r.Values {
			if v < 0 {
				return newValidationError(ErrNegativeSize,
					fmt.Sprintf("%s for a %s chart cannot be negative.", capitalize(k.noun), k.Name))
			}
		}
	}
	for _, v := range r.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return newValidationError(ErrNonFinite,
				fmt.Sprintf("%s must be finite numbers.", capitalize(k.noun)))
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
