package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dariusmocan/interpreter/internal/milerr"
)

func TestClassifyParseError(t *testing.T) {
	assert.Equal(t, milerr.KindUnexpectedToken, classifyParseError("expected next token to be : 'IDENT', got '=' instead").Kind)
	assert.Equal(t, milerr.KindMissingPrefix, classifyParseError("no prefix parse function for STRING found!").Kind)
	assert.Equal(t, milerr.KindBadInteger, classifyParseError("Could not transform : 99999999999999999999 to integer!").Kind)
}

func TestClassifyRuntimeError(t *testing.T) {
	assert.Equal(t, milerr.KindIdentifierNotFound, classifyRuntimeError("identifier not found: foobar").Kind)
	assert.Equal(t, milerr.KindTypeMismatch, classifyRuntimeError("type mismatch: INTEGER + BOOLEAN").Kind)
	assert.Equal(t, milerr.KindDivisionByZero, classifyRuntimeError("Division by zero").Kind)
	assert.Equal(t, milerr.KindUnaryUnknown, classifyRuntimeError("unknown operator: -BOOLEAN").Kind)
	assert.Equal(t, milerr.KindUnknownOperator, classifyRuntimeError("unknown operator: BOOLEAN + BOOLEAN").Kind)
}
