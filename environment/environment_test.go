package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dariusmocan/interpreter/object"
)

func TestSetAndGet(t *testing.T) {
	env := New()
	env.Set("x", &object.Integer{Value: 5})

	val, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(5), val.(*object.Integer).Value)
}

func TestGet_MissingReturnsFalse(t *testing.T) {
	env := New()
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestEnclosed_LooksUpOuter(t *testing.T) {
	outer := New()
	outer.Set("x", &object.Integer{Value: 1})

	inner := NewEnclosed(outer)
	val, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), val.(*object.Integer).Value)
}

func TestEnclosed_ShadowsOuterWithoutMutatingIt(t *testing.T) {
	outer := New()
	outer.Set("x", &object.Integer{Value: 1})

	inner := NewEnclosed(outer)
	inner.Set("x", &object.Integer{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, int64(2), innerVal.(*object.Integer).Value)
	assert.Equal(t, int64(1), outerVal.(*object.Integer).Value)
}

func TestSharedFrame_RebindingVisibleToBothHolders(t *testing.T) {
	// Two "closures" holding the same frame by reference must both see a
	// later rebinding — spec.md §8.1 Closure invariant.
	frame := New()
	frame.Set("counter", &object.Integer{Value: 0})

	holderA := frame
	holderB := frame

	frame.Set("counter", &object.Integer{Value: 1})

	valA, _ := holderA.Get("counter")
	valB, _ := holderB.Get("counter")
	assert.Equal(t, int64(1), valA.(*object.Integer).Value)
	assert.Equal(t, int64(1), valB.(*object.Integer).Value)
}
