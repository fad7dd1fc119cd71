package typesys

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equals is structural Type equality for tests, grounded on escalier's
// type_system.Equals: compare every exported field, ignore the
// unexported closures (recognize, format) since they're never directly
// comparable and two Types built by the same constructor with the same
// arguments are equal in every way a test cares about regardless of
// closure identity.
func Equals(a, b *Type) bool {
	return cmp.Equal(a, b,
		cmp.AllowUnexported(Type{}),
		cmpopts.IgnoreFields(Type{}, "recognize", "format"),
		cmpopts.IgnoreFields(Child{}, "Extractor"),
		cmpopts.EquateEmpty(),
	)
}
