package cases

import (
	"errors"
	"fmt"

	"github.com/roach88/descq/internal/descriptor"
)

// Error codes reported for failed parses.
const (
	CodeEmptyEntity = "EMPTY_ENTITY"
	CodeUnknown     = "UNKNOWN"
)

// Outcome is the result of one case.
type Outcome struct {
	Case       string
	Descriptor string

	// Directive is the resolved directive; zero when Err is set.
	Directive descriptor.Directive
	Err       error

	// Mismatches lists every expectation that did not hold.
	Mismatches []string
}

// Passed reports whether every expectation held.
func (o Outcome) Passed() bool {
	return len(o.Mismatches) == 0
}

// Result holds the outcomes of a suite run, in case order.
type Result struct {
	Suite    string
	Outcomes []Outcome
}

// Failed returns the number of failed cases.
func (r *Result) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Passed() {
			n++
		}
	}
	return n
}

// OK reports whether every case passed.
func (r *Result) OK() bool {
	return r.Failed() == 0
}

// Run resolves every case of the suite. opts are applied before the
// suite's own options, so a suite setting wins over the caller's.
func Run(s *Suite, opts ...descriptor.Option) *Result {
	options := append(append([]descriptor.Option{}, opts...), s.Options()...)

	result := &Result{Suite: s.Name, Outcomes: make([]Outcome, 0, len(s.Cases))}
	for _, c := range s.Cases {
		d, err := descriptor.Parse(s.Origin, c.Descriptor, options...)
		outcome := Outcome{
			Case:       c.Name,
			Descriptor: c.Descriptor,
			Directive:  d,
			Err:        err,
		}
		outcome.Mismatches = check(c.Expect, d, err)
		result.Outcomes = append(result.Outcomes, outcome)
	}
	return result
}

// ErrorCode maps a parse error to the code used in expectations.
func ErrorCode(err error) string {
	var se *descriptor.SegmentCountError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &se):
		return string(se.Code)
	case errors.Is(err, descriptor.ErrEmptyEntity):
		return CodeEmptyEntity
	default:
		return CodeUnknown
	}
}

func check(want Expect, d descriptor.Directive, err error) []string {
	var mismatches []string
	mismatch := func(field string, want, got any) {
		mismatches = append(mismatches, fmt.Sprintf("%s: want %v, got %v", field, want, got))
	}

	if err != nil {
		if want.Error == "" {
			return []string{fmt.Sprintf("unexpected error: %v", err)}
		}
		if code := ErrorCode(err); code != want.Error {
			mismatch("error", want.Error, code)
		}
		return mismatches
	}
	if want.Error != "" {
		return []string{fmt.Sprintf("error: want %s, got none", want.Error)}
	}

	if want.Entity != nil && *want.Entity != d.Entity() {
		mismatch("entity", *want.Entity, d.Entity())
	}
	if want.Table != nil && *want.Table != d.Table() {
		mismatch("table", *want.Table, d.Table())
	}
	if want.Property != nil && *want.Property != d.Property() {
		mismatch("property", *want.Property, d.Property())
	}
	if want.Mode != "" && want.Mode != d.Mode().String() {
		mismatch("mode", want.Mode, d.Mode())
	}
	if want.Operator != "" && want.Operator != d.Operator().String() {
		mismatch("operator", want.Operator, d.Operator())
	}
	if want.Join != nil && *want.Join != d.Join() {
		mismatch("join", *want.Join, d.Join())
	}
	if want.Action != nil && *want.Action != d.Action().String() {
		mismatch("action", *want.Action, d.Action().String())
	}

	return mismatches
}
