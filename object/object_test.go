package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect(t *testing.T) {
	assert.Equal(t, "5", (&Integer{Value: 5}).Inspect())
	assert.Equal(t, "true", (&Boolean{Value: true}).Inspect())
	assert.Equal(t, "null", (&Null{}).Inspect())
	assert.Equal(t, "ERROR : boom", (&Error{Message: "boom"}).Inspect())
}

func TestReturnValue_UnwrapsForInspect(t *testing.T) {
	rv := &ReturnValue{Value: &Integer{Value: 42}}
	assert.Equal(t, "42", rv.Inspect())
	assert.Equal(t, RETURN_VALUE_OBJ, rv.Type())
}

func TestBooleanIdentity(t *testing.T) {
	a := &Boolean{Value: true}
	b := &Boolean{Value: true}
	// distinct allocations are not identical pointers — the evaluator is
	// responsible for reusing singletons where identity comparison matters.
	assert.NotSame(t, a, b)
	assert.Equal(t, a.Value, b.Value)
}
