package signature_test

import (
	"testing"

	"github.com/escalier-lang/defcheck/internal/signature"
	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestArityAndReturnType(t *testing.T) {
	n := typesys.NullaryType("test/Number", func(v value.Value) bool {
		_, ok := v.(float64)
		return ok
	})
	info := &signature.TypeInfo{Name: "add", Types: []*typesys.Type{n, n, n}}
	assert.Equal(t, 2, info.Arity())
	assert.True(t, typesys.Equals(n, info.ReturnType()))
}
