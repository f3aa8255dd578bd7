//go:build !serde_nomsg

package serde_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	serde "github.com/get-serde/go-serde"
)

func TestKindOf(t *testing.T) {
	t.Run("it reports zero for nil", func(t *testing.T) {
		assert.Equal(t, serde.Kind(0), serde.KindOf(nil))
	})

	t.Run("it classifies foreign errors as custom", func(t *testing.T) {
		assert.Equal(t, serde.KindCustom, serde.KindOf(errors.New("boom")))
	})

	t.Run("it recovers the kind of module errors", func(t *testing.T) {
		assert.Equal(t, serde.KindInvalidType, serde.KindOf(serde.InvalidType("a string", "a boolean")))
		assert.Equal(t, serde.KindMissingField, serde.KindOf(serde.MissingField("id")))
	})

	t.Run("it sees through wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer context, %w", serde.DuplicateField("id"))
		assert.Equal(t, serde.KindDuplicateField, serde.KindOf(err))
	})
}

func TestErrorConstructors(t *testing.T) {
	t.Run("custom keeps the caller message verbatim", func(t *testing.T) {
		assert.EqualError(t, serde.Custom("something broke"), "something broke")
		assert.EqualError(t, serde.Customf("code %d", 42), "code 42")
	})

	t.Run("invalid type names both sides", func(t *testing.T) {
		err := serde.InvalidType("a string", "a sequence")
		assert.EqualError(t, err, "serde: invalid type: a string, expected a sequence")
	})

	t.Run("invalid length includes the length", func(t *testing.T) {
		err := serde.InvalidLength(3, "a tuple of length 2")
		assert.EqualError(t, err, "serde: invalid length 3, expected a tuple of length 2")
	})

	t.Run("unknown field lists the expected set", func(t *testing.T) {
		err := serde.UnknownField("z", []string{"x", "y"})
		assert.EqualError(t, err, `serde: unknown field "z", expected one of x, y`)
	})

	t.Run("unknown variant lists the expected set", func(t *testing.T) {
		err := serde.UnknownVariant("Quux", []string{"Foo", "Bar"})
		assert.EqualError(t, err, `serde: unknown variant "Quux", expected one of Foo, Bar`)
	})

	t.Run("contract violation carries the detail", func(t *testing.T) {
		err := serde.ContractViolation("End after End")
		assert.EqualError(t, err, "serde: contract violation: End after End")
		assert.Equal(t, serde.KindContractViolation, err.Kind())
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "serde: invalid type", serde.KindInvalidType.String())
	assert.Equal(t, "serde: missing field", serde.KindMissingField.String())
	assert.Equal(t, "serde: unknown error", serde.Kind(0).String())
}
