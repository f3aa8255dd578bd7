//go:build serde_nomsg

package serde_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	serde "github.com/get-serde/go-serde"
)

// With messages disabled, errors fall back to the fixed per-kind text while
// the Kind itself survives untouched.
func TestErrorsWithoutMessages(t *testing.T) {
	err := serde.InvalidType("a string", "a sequence")
	assert.EqualError(t, err, "serde: invalid type")
	assert.Equal(t, serde.KindInvalidType, err.Kind())

	assert.EqualError(t, serde.Custom("something broke"), "serde: serialization error")
	assert.EqualError(t, serde.MissingField("id"), "serde: missing field")
}
