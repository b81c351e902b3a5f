package logit

import "errors"

// Sentinel errors for mode-choice computation.
var (
	// ErrEmptyGroup indicates mode choice was requested on a group with zero alternatives.
	ErrEmptyGroup = errors.New("logit: empty choice group")

	// ErrNoAttributes indicates an empty attribute/weight list.
	ErrNoAttributes = errors.New("logit: no attributes given")

	// ErrAttributeMismatch indicates a value row and the weight vector differ
	// in length, or a named attribute is absent on some alternative.
	ErrAttributeMismatch = errors.New("logit: attribute/weight mismatch")

	// ErrNonFinite indicates an attribute value is NaN or ±Inf.
	ErrNonFinite = errors.New("logit: non-finite attribute value")
)

// Attribute is one weighted level-of-service term of the disutility sum.
// Name is resolved through a Source by GroupProbabilities; Weight scales
// the resolved value. Attributes are costs, so a larger weighted sum means
// a less attractive alternative.
type Attribute struct {
	Name   string
	Weight float64
}

// Source resolves the named attribute for alternative i of a group.
// The second return reports whether the attribute exists for that
// alternative; a false return surfaces as ErrAttributeMismatch.
type Source func(i int, name string) (float64, bool)

// SumTolerance is the guaranteed tolerance on Σ p_i == 1.
const SumTolerance = 1e-9
