package serde

import (
	"errors"
	"strings"
)

// Kind discriminates the failure classes of the data model. Every error
// produced by this module carries a Kind; the message text is optional and is
// compiled out entirely under the serde_nomsg build tag.
type Kind uint8

const (
	// KindCustom is a backend- or caller-supplied failure with no more
	// specific classification.
	KindCustom Kind = iota + 1
	// KindInvalidType reports input of the wrong shape (e.g. a string
	// where a sequence was expected).
	KindInvalidType
	// KindInvalidValue reports input of the right shape but an
	// unacceptable value.
	KindInvalidValue
	// KindInvalidLength reports a sequence or map of the wrong length.
	KindInvalidLength
	// KindUnknownField reports a field the target does not recognize.
	KindUnknownField
	// KindMissingField reports a required field absent from the input.
	KindMissingField
	// KindDuplicateField reports a field that appeared more than once.
	KindDuplicateField
	// KindUnknownVariant reports a variant identifier the target does not
	// recognize.
	KindUnknownVariant
	// KindContractViolation reports misuse of a handle or token, such as
	// a map operation on a sequence token or reuse after End.
	KindContractViolation
)

// String returns fixed per-kind text. It is also the error text when messages
// are disabled.
func (k Kind) String() string {
	switch k {
	case KindCustom:
		return "serde: serialization error"
	case KindInvalidType:
		return "serde: invalid type"
	case KindInvalidValue:
		return "serde: invalid value"
	case KindInvalidLength:
		return "serde: invalid length"
	case KindUnknownField:
		return "serde: unknown field"
	case KindMissingField:
		return "serde: missing field"
	case KindDuplicateField:
		return "serde: duplicate field"
	case KindUnknownVariant:
		return "serde: unknown variant"
	case KindContractViolation:
		return "serde: contract violation"
	default:
		return "serde: unknown error"
	}
}

// Error is the failure type shared by serialization and deserialization. It
// always carries a Kind; the human-readable message is present only when the
// module is built without the serde_nomsg tag.
type Error struct {
	kind Kind
	msg  string
}

// Kind returns the error's classification.
func (e *Error) Kind() Kind { return e.kind }

func (e *Error) Error() string {
	if e.msg == "" {
		return e.kind.String()
	}

	return e.msg
}

// KindOf classifies err. A nil error reports zero; errors produced by this
// module (possibly wrapped) report their own Kind; any other error reports
// KindCustom, so the fact of failure is never lost.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}

	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return KindCustom
}

// Custom wraps an arbitrary failure message. This is the only constructor
// whose message is caller-provided verbatim.
func Custom(msg string) *Error {
	return &Error{kind: KindCustom, msg: message("%s", msg)}
}

// Customf is Custom with formatting.
func Customf(format string, args ...any) *Error {
	return &Error{kind: KindCustom, msg: message(format, args...)}
}

// InvalidType reports that the input held unexpected where expected was
// required.
func InvalidType(unexpected, expected string) *Error {
	return &Error{
		kind: KindInvalidType,
		msg:  message("serde: invalid type: %s, expected %s", unexpected, expected),
	}
}

// InvalidValue reports a well-shaped but unacceptable value.
func InvalidValue(unexpected, expected string) *Error {
	return &Error{
		kind: KindInvalidValue,
		msg:  message("serde: invalid value: %s, expected %s", unexpected, expected),
	}
}

// InvalidLength reports a sequence or map of unacceptable length.
func InvalidLength(length int, expected string) *Error {
	return &Error{
		kind: KindInvalidLength,
		msg:  message("serde: invalid length %d, expected %s", length, expected),
	}
}

// UnknownField reports a field name outside the expected set.
func UnknownField(field string, expected []string) *Error {
	return &Error{
		kind: KindUnknownField,
		msg:  message("serde: unknown field %q, expected one of %s", field, strings.Join(expected, ", ")),
	}
}

// MissingField reports a required field absent from the input.
func MissingField(field string) *Error {
	return &Error{kind: KindMissingField, msg: message("serde: missing field %q", field)}
}

// DuplicateField reports a field that appeared more than once.
func DuplicateField(field string) *Error {
	return &Error{kind: KindDuplicateField, msg: message("serde: duplicate field %q", field)}
}

// UnknownVariant reports a variant identifier outside the expected set.
func UnknownVariant(variant string, expected []string) *Error {
	return &Error{
		kind: KindUnknownVariant,
		msg:  message("serde: unknown variant %q, expected one of %s", variant, strings.Join(expected, ", ")),
	}
}

// ContractViolation reports misuse of a handle or token.
func ContractViolation(detail string) *Error {
	return &Error{
		kind: KindContractViolation,
		msg:  message("serde: contract violation: %s", detail),
	}
}
