package grid

import (
	"fmt"

	"go.uber.org/multierr"
)

// PreconditionError is a structured precondition failure naming the
// offending argument, per spec.md's error taxonomy (domain/shape errors
// are fatal diagnostics that callers treat as programmer errors).
type PreconditionError struct {
	Operator string
	Argument string
	Detail   string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition failed on %q: %s", e.Operator, e.Argument, e.Detail)
}

// CheckInterior returns a PreconditionError if fb is not interior to gb by
// at least width cells on every face.
func CheckInterior(op, argument string, fb, gb Box, width int) error {
	if fb.NDim != gb.NDim {
		return &PreconditionError{op, argument, fmt.Sprintf("dimension mismatch: fillbox=%dD, ghostbox=%dD", fb.NDim, gb.NDim)}
	}
	if !fb.InteriorBy(gb, width) {
		return &PreconditionError{op, argument, fmt.Sprintf("fillbox %s is not interior to ghostbox %s by margin %d", fb, gb, width)}
	}
	return nil
}

// CheckAllInterior validates several (argument, ghostbox) pairs against the
// same fillbox/stencil-width requirement in one call, combining every
// violation into a single error via multierr instead of reporting only the
// first.
func CheckAllInterior(op string, fb Box, width int, ghostBoxes map[string]Box) error {
	var err error
	for name, gb := range ghostBoxes {
		if e := CheckInterior(op, name, fb, gb, width); e != nil {
			err = multierr.Append(err, e)
		}
	}
	return err
}

// MustInterior panics with a PreconditionError if the check fails. Operators
// use this at entry so that a failing call never half-writes its outputs.
func MustInterior(op, argument string, fb, gb Box, width int) {
	if err := CheckInterior(op, argument, fb, gb, width); err != nil {
		panic(err)
	}
}

// MustAllInterior panics with the combined multierr if any check fails.
func MustAllInterior(op string, fb Box, width int, ghostBoxes map[string]Box) {
	if err := CheckAllInterior(op, fb, width, ghostBoxes); err != nil {
		panic(err)
	}
}

// MustPositive panics if any of the named values is not strictly positive,
// as required of grid spacings h_k (spec.md §3 invariants).
func MustPositive(op string, values map[string]float64) {
	var err error
	for name, v := range values {
		if !(v > 0) {
			err = multierr.Append(err, &PreconditionError{op, name, fmt.Sprintf("must be strictly positive, got %v", v)})
		}
	}
	if err != nil {
		panic(err)
	}
}
