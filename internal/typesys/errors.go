package typesys

import "fmt"

// RangeError is raised at definition time when an arity-shaping helper is
// asked to build something outside its supported range (spec §7 error 5:
// curried arity > 9).
type RangeError struct {
	Message string
}

func (e *RangeError) Error() string { return e.Message }

// MaxArity is the pragmatic curried-arity cap (spec §9): a def's
// types.length-1 must be <= MaxArity.
const MaxArity = 9

// CheckArity panics with a *RangeError if n exceeds MaxArity.
func CheckArity(n int) {
	if n > MaxArity {
		panic(&RangeError{Message: fmt.Sprintf("signatures may not have more than %d parameters; got %d", MaxArity, n)})
	}
}
