package pricing

import "fmt"

// ValidationError reports an input field that violates its domain
// constraint. The caller supplied bad data; retrying with the same
// input cannot succeed.
type ValidationError struct {
	Field      string
	Value      float64
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v (must be %s)", e.Field, e.Value, e.Constraint)
}

// DomainError reports a non-finite value: either a NaN/Inf argument or an
// intermediate that overflowed despite valid-looking inputs. It is always
// surfaced as-is, never converted to a sentinel result.
type DomainError struct {
	Op    string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: non-finite value %v", e.Op, e.Value)
}
