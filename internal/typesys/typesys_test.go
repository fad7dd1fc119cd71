package typesys_test

import (
	"testing"

	"github.com/escalier-lang/defcheck/internal/typesys"
	"github.com/escalier-lang/defcheck/internal/value"
	"github.com/stretchr/testify/assert"
)

func numberType() *typesys.Type {
	return typesys.NullaryType("test/Number", func(v value.Value) bool {
		_, ok := v.(float64)
		return ok
	})
}

func TestNullaryRecognizeAndString(t *testing.T) {
	n := numberType()
	assert.True(t, n.Recognize(1.0))
	assert.False(t, n.Recognize("1"))
	assert.Equal(t, "test/Number", n.String())
}

func TestUnaryFactoryAndValidate(t *testing.T) {
	arr := typesys.UnaryType("test/Array", func(v value.Value) bool {
		_, ok := v.([]value.Value)
		return ok
	}, func(v value.Value) []value.Value {
		s, _ := v.([]value.Value)
		return s
	})
	arrOfNumber := arr(numberType())

	assert.Nil(t, arrOfNumber.Validate([]value.Value{1.0, 2.0}))
	err := arrOfNumber.Validate([]value.Value{1.0, "x"})
	assert.NotNil(t, err)
	assert.Equal(t, "x", err.Value)
	assert.Equal(t, "$1", err.Path.String())
}

func TestFunctionFormatParenthesizesMultipleParams(t *testing.T) {
	n := numberType()
	single := typesys.Function([]*typesys.Type{n, n})
	assert.Equal(t, "test/Number -> test/Number", single.String())

	multi := typesys.Function([]*typesys.Type{n, n, n})
	assert.Equal(t, "(test/Number, test/Number) -> test/Number", multi.String())
}

func TestUnaryFormatParenthesizesNestedComposite(t *testing.T) {
	pair := typesys.BinaryType("test/Pair", func(value.Value) bool { return true },
		func(v value.Value) []value.Value { return nil },
		func(v value.Value) []value.Value { return nil },
	)(numberType(), numberType())

	arr := typesys.UnaryType("test/Array", func(value.Value) bool { return true },
		func(v value.Value) []value.Value { return nil },
	)(pair)

	assert.Equal(t, "test/Array (test/Pair test/Number test/Number)", arr.String())
	assert.Equal(t, "test/Pair test/Number test/Number", pair.String(), "top level never wraps")
}

func TestRecordTypeRejectsNonType(t *testing.T) {
	_, err := typesys.RecordType(map[string]any{"x": "not a type"})
	assert.Error(t, err)
	var malformed *typesys.MalformedTypeError
	assert.ErrorAs(t, err, &malformed)
}

func TestRecordTypeMembershipRequiresAllFields(t *testing.T) {
	rec, err := typesys.RecordType(map[string]any{"x": numberType()})
	assert.NoError(t, err)
	assert.True(t, rec.Recognize(value.Obj{"x": 1.0}))
	assert.False(t, rec.Recognize(value.Obj{"y": 1.0}))
	assert.True(t, rec.Recognize(value.Obj{"x": 1.0, "y": 2.0}), "extra fields are allowed")
}

func TestEqualsIgnoresClosureIdentity(t *testing.T) {
	a := numberType()
	b := numberType()
	assert.True(t, typesys.Equals(a, b))
}

func TestCheckArityPanicsAboveMax(t *testing.T) {
	assert.Panics(t, func() { typesys.CheckArity(typesys.MaxArity + 1) })
	assert.NotPanics(t, func() { typesys.CheckArity(typesys.MaxArity) })
}

func TestWithChildReplacesOnlyNamedSlot(t *testing.T) {
	pair := typesys.BinaryType("test/Pair", func(value.Value) bool { return true },
		func(v value.Value) []value.Value { return nil },
		func(v value.Value) []value.Value { return nil },
	)(typesys.UnknownType, typesys.UnknownType)

	sub := numberType()
	specialized := pair.WithChild("$1", sub)
	assert.True(t, typesys.Equals(sub, specialized.Children["$1"].SubType))
	assert.Equal(t, typesys.UnknownType, specialized.Children["$2"].SubType)
}
