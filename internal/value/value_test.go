package value_test

import (
	"testing"

	"github.com/escalier-lang/defcheck/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestObjGet(t *testing.T) {
	o := value.Obj{"x": 1.0}
	v, ok := o.Get("x")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = o.Get("missing")
	assert.False(t, ok)
}

func TestEqualDeepCompare(t *testing.T) {
	assert.True(t, value.Equal([]value.Value{1.0, "a"}, []value.Value{1.0, "a"}))
	assert.False(t, value.Equal([]value.Value{1.0}, []value.Value{2.0}))
}

func TestToStringRendersContainers(t *testing.T) {
	assert.Equal(t, "null", value.ToString(nil))
	assert.Equal(t, `"a"`, value.ToString("a"))
	assert.Equal(t, "[1, 2]", value.ToString([]value.Value{1.0, 2.0}))
	assert.Equal(t, "{x: 1}", value.ToString(value.Obj{"x": 1.0}))
}

func TestIdentityDistinguishesContainersFromScalars(t *testing.T) {
	_, ok := value.Identity(1.0)
	assert.False(t, ok)

	s := []value.Value{1.0}
	id1, ok := value.Identity(s)
	assert.True(t, ok)
	id2, _ := value.Identity(s)
	assert.Equal(t, id1, id2)
}

func TestMapAppliesToContainers(t *testing.T) {
	doubled := value.Map([]value.Value{1.0, 2.0}, func(v value.Value) value.Value {
		return v.(float64) * 2
	})
	assert.Equal(t, []value.Value{2.0, 4.0}, doubled)
}

func TestReduceFoldsLeftToRight(t *testing.T) {
	sum := value.Reduce([]value.Value{1.0, 2.0, 3.0}, 0.0, func(acc float64, v value.Value) float64 {
		return acc + v.(float64)
	})
	assert.Equal(t, 6.0, sum)
}
