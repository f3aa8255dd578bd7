package erased

import (
	serde "github.com/get-serde/go-serde"
)

// Erased counterparts of the value constructors in the root package. Each is
// the native constructor instantiated at the proxy serializer and lifted with
// Wrap, so the two sets cannot drift apart.

// unwrap binds an erased value back to the proxy serializer it will be driven
// through, skipping a re-erasure round trip.
func unwrap(value Value) serde.Value[*ProxySerializer] {
	return func(ser *ProxySerializer) error { return value.Serialize(ser.target) }
}

func unwrapAll(values []Value) []serde.Value[*ProxySerializer] {
	native := make([]serde.Value[*ProxySerializer], len(values))
	for i, value := range values {
		native[i] = unwrap(value)
	}

	return native
}

// Bool returns a value serializing as a boolean.
func Bool(v bool) Value { return Wrap(serde.Bool[*ProxySerializer](v)) }

// Int8 returns a value serializing as an 8-bit signed integer.
func Int8(v int8) Value { return Wrap(serde.Int8[*ProxySerializer](v)) }

// Int16 returns a value serializing as a 16-bit signed integer.
func Int16(v int16) Value { return Wrap(serde.Int16[*ProxySerializer](v)) }

// Int32 returns a value serializing as a 32-bit signed integer.
func Int32(v int32) Value { return Wrap(serde.Int32[*ProxySerializer](v)) }

// Int64 returns a value serializing as a 64-bit signed integer.
func Int64(v int64) Value { return Wrap(serde.Int64[*ProxySerializer](v)) }

// Int returns a value serializing as a 64-bit signed integer.
func Int(v int) Value { return Wrap(serde.Int[*ProxySerializer](v)) }

// Uint8 returns a value serializing as an 8-bit unsigned integer.
func Uint8(v uint8) Value { return Wrap(serde.Uint8[*ProxySerializer](v)) }

// Uint16 returns a value serializing as a 16-bit unsigned integer.
func Uint16(v uint16) Value { return Wrap(serde.Uint16[*ProxySerializer](v)) }

// Uint32 returns a value serializing as a 32-bit unsigned integer.
func Uint32(v uint32) Value { return Wrap(serde.Uint32[*ProxySerializer](v)) }

// Uint64 returns a value serializing as a 64-bit unsigned integer.
func Uint64(v uint64) Value { return Wrap(serde.Uint64[*ProxySerializer](v)) }

// Uint returns a value serializing as a 64-bit unsigned integer.
func Uint(v uint) Value { return Wrap(serde.Uint[*ProxySerializer](v)) }

// Float32 returns a value serializing as a single-precision float.
func Float32(v float32) Value { return Wrap(serde.Float32[*ProxySerializer](v)) }

// Float64 returns a value serializing as a double-precision float.
func Float64(v float64) Value { return Wrap(serde.Float64[*ProxySerializer](v)) }

// Rune returns a value serializing as a single character.
func Rune(v rune) Value { return Wrap(serde.Rune[*ProxySerializer](v)) }

// String returns a value serializing as a string.
func String(v string) Value { return Wrap(serde.String[*ProxySerializer](v)) }

// Bytes returns a value serializing as raw bytes.
func Bytes(v []byte) Value { return Wrap(serde.Bytes[*ProxySerializer](v)) }

// None returns a value serializing as an absent optional.
func None() Value { return Wrap(serde.None[*ProxySerializer]()) }

// Some returns a value serializing as a present optional.
func Some(value Value) Value {
	return Wrap(serde.Some[*ProxySerializer](unwrap(value)))
}

// Unit returns a value carrying no data.
func Unit() Value { return Wrap(serde.Unit[*ProxySerializer]()) }

// UnitStruct returns a named value carrying no data.
func UnitStruct(name string) Value {
	return Wrap(serde.UnitStruct[*ProxySerializer](name))
}

// UnitVariant returns a dataless variant of the named union type.
func UnitVariant(name string, index uint32, variant string) Value {
	return Wrap(serde.UnitVariant[*ProxySerializer](name, index, variant))
}

// NewtypeStruct returns a single-value wrapper.
func NewtypeStruct(name string, value Value) Value {
	return Wrap(serde.NewtypeStruct[*ProxySerializer](name, unwrap(value)))
}

// NewtypeVariant returns a single-value variant of the named union type.
func NewtypeVariant(name string, index uint32, variant string, value Value) Value {
	return Wrap(serde.NewtypeVariant[*ProxySerializer](name, index, variant, unwrap(value)))
}

// Seq returns a sequence of the given elements.
func Seq(elements ...Value) Value {
	return Wrap(serde.Seq[*ProxySerializer](unwrapAll(elements)...))
}

// Tuple returns a fixed-length sequence of the given elements.
func Tuple(elements ...Value) Value {
	return Wrap(serde.Tuple[*ProxySerializer](unwrapAll(elements)...))
}

// TupleStruct returns a named fixed-length sequence of the given elements.
func TupleStruct(name string, elements ...Value) Value {
	return Wrap(serde.TupleStruct[*ProxySerializer](name, unwrapAll(elements)...))
}

// TupleVariant returns a fixed-length sequence variant of the named union
// type.
func TupleVariant(name string, index uint32, variant string, elements ...Value) Value {
	return Wrap(serde.TupleVariant[*ProxySerializer](name, index, variant, unwrapAll(elements)...))
}

// Entry is a single key/value pair of a Map value.
type Entry struct {
	Key   Value
	Value Value
}

// Map returns a map of the given entries, serialized in order.
func Map(entries ...Entry) Value {
	native := make([]serde.Entry[*ProxySerializer], len(entries))
	for i, entry := range entries {
		native[i] = serde.Entry[*ProxySerializer]{
			Key:   unwrap(entry.Key),
			Value: unwrap(entry.Value),
		}
	}

	return Wrap(serde.Map[*ProxySerializer](native...))
}

// Field is a single named field of a Struct value.
type Field struct {
	Name  string
	Value Value
}

// Struct returns a named field set, serialized in order.
func Struct(name string, fields ...Field) Value {
	return Wrap(serde.Struct[*ProxySerializer](name, nativeFields(fields)...))
}

// StructVariant returns a field-set variant of the named union type.
func StructVariant(name string, index uint32, variant string, fields ...Field) Value {
	return Wrap(serde.StructVariant[*ProxySerializer](name, index, variant, nativeFields(fields)...))
}

func nativeFields(fields []Field) []serde.Field[*ProxySerializer] {
	native := make([]serde.Field[*ProxySerializer], len(fields))
	for i, field := range fields {
		native[i] = serde.Field[*ProxySerializer]{Name: field.Name, Value: unwrap(field.Value)}
	}

	return native
}
