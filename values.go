package serde

// Value constructors for the primitive and composite shapes of the data
// model. Each returns a Value bound to the serializer type it is instantiated
// with; user-defined types compose these inside their own generic marshal
// routines.

// Bool returns a value serializing as a boolean.
func Bool[S Serializer[S]](v bool) Value[S] {
	return func(ser S) error { return ser.SerializeBool(v) }
}

// Int8 returns a value serializing as an 8-bit signed integer.
func Int8[S Serializer[S]](v int8) Value[S] {
	return func(ser S) error { return ser.SerializeInt8(v) }
}

// Int16 returns a value serializing as a 16-bit signed integer.
func Int16[S Serializer[S]](v int16) Value[S] {
	return func(ser S) error { return ser.SerializeInt16(v) }
}

// Int32 returns a value serializing as a 32-bit signed integer.
func Int32[S Serializer[S]](v int32) Value[S] {
	return func(ser S) error { return ser.SerializeInt32(v) }
}

// Int64 returns a value serializing as a 64-bit signed integer.
func Int64[S Serializer[S]](v int64) Value[S] {
	return func(ser S) error { return ser.SerializeInt64(v) }
}

// Int returns a value serializing as a 64-bit signed integer.
func Int[S Serializer[S]](v int) Value[S] {
	return Int64[S](int64(v))
}

// Uint8 returns a value serializing as an 8-bit unsigned integer.
func Uint8[S Serializer[S]](v uint8) Value[S] {
	return func(ser S) error { return ser.SerializeUint8(v) }
}

// Uint16 returns a value serializing as a 16-bit unsigned integer.
func Uint16[S Serializer[S]](v uint16) Value[S] {
	return func(ser S) error { return ser.SerializeUint16(v) }
}

// Uint32 returns a value serializing as a 32-bit unsigned integer.
func Uint32[S Serializer[S]](v uint32) Value[S] {
	return func(ser S) error { return ser.SerializeUint32(v) }
}

// Uint64 returns a value serializing as a 64-bit unsigned integer.
func Uint64[S Serializer[S]](v uint64) Value[S] {
	return func(ser S) error { return ser.SerializeUint64(v) }
}

// Uint returns a value serializing as a 64-bit unsigned integer.
func Uint[S Serializer[S]](v uint) Value[S] {
	return Uint64[S](uint64(v))
}

// Float32 returns a value serializing as a single-precision float.
func Float32[S Serializer[S]](v float32) Value[S] {
	return func(ser S) error { return ser.SerializeFloat32(v) }
}

// Float64 returns a value serializing as a double-precision float.
func Float64[S Serializer[S]](v float64) Value[S] {
	return func(ser S) error { return ser.SerializeFloat64(v) }
}

// Rune returns a value serializing as a single character.
func Rune[S Serializer[S]](v rune) Value[S] {
	return func(ser S) error { return ser.SerializeRune(v) }
}

// String returns a value serializing as a string.
func String[S Serializer[S]](v string) Value[S] {
	return func(ser S) error { return ser.SerializeString(v) }
}

// Bytes returns a value serializing as raw bytes.
func Bytes[S Serializer[S]](v []byte) Value[S] {
	return func(ser S) error { return ser.SerializeBytes(v) }
}

// None returns a value serializing as an absent optional.
func None[S Serializer[S]]() Value[S] {
	return func(ser S) error { return ser.SerializeNone() }
}

// Some returns a value serializing as a present optional.
func Some[S Serializer[S]](value Value[S]) Value[S] {
	return func(ser S) error { return ser.SerializeSome(value) }
}

// Unit returns a value carrying no data.
func Unit[S Serializer[S]]() Value[S] {
	return func(ser S) error { return ser.SerializeUnit() }
}

// UnitStruct returns a named value carrying no data.
func UnitStruct[S Serializer[S]](name string) Value[S] {
	return func(ser S) error { return ser.SerializeUnitStruct(name) }
}

// UnitVariant returns a dataless variant of the named union type.
func UnitVariant[S Serializer[S]](name string, index uint32, variant string) Value[S] {
	return func(ser S) error { return ser.SerializeUnitVariant(name, index, variant) }
}

// NewtypeStruct returns a single-value wrapper.
func NewtypeStruct[S Serializer[S]](name string, value Value[S]) Value[S] {
	return func(ser S) error { return ser.SerializeNewtypeStruct(name, value) }
}

// NewtypeVariant returns a single-value variant of the named union type.
func NewtypeVariant[S Serializer[S]](name string, index uint32, variant string, value Value[S]) Value[S] {
	return func(ser S) error { return ser.SerializeNewtypeVariant(name, index, variant, value) }
}

// Seq returns a sequence of the given elements.
func Seq[S Serializer[S]](elements ...Value[S]) Value[S] {
	return func(ser S) error {
		seq, err := ser.SerializeSeq(Len(len(elements)))
		if err != nil {
			return err
		}

		return endElements(seq, elements)
	}
}

// Slice returns a sequence serializing each item of s through elem.
func Slice[S Serializer[S], T any](s []T, elem func(T) Value[S]) Value[S] {
	return func(ser S) error {
		seq, err := ser.SerializeSeq(Len(len(s)))
		if err != nil {
			return err
		}

		for _, item := range s {
			if err := seq.SerializeElement(elem(item)); err != nil {
				return err
			}
		}

		return seq.End()
	}
}

// Tuple returns a fixed-length sequence of the given elements.
func Tuple[S Serializer[S]](elements ...Value[S]) Value[S] {
	return func(ser S) error {
		tup, err := ser.SerializeTuple(len(elements))
		if err != nil {
			return err
		}

		return endElements(tup, elements)
	}
}

// TupleStruct returns a named fixed-length sequence of the given elements.
func TupleStruct[S Serializer[S]](name string, elements ...Value[S]) Value[S] {
	return func(ser S) error {
		tup, err := ser.SerializeTupleStruct(name, len(elements))
		if err != nil {
			return err
		}

		return endElements(tup, elements)
	}
}

// TupleVariant returns a fixed-length sequence variant of the named union
// type.
func TupleVariant[S Serializer[S]](name string, index uint32, variant string, elements ...Value[S]) Value[S] {
	return func(ser S) error {
		tup, err := ser.SerializeTupleVariant(name, index, variant, len(elements))
		if err != nil {
			return err
		}

		return endElements(tup, elements)
	}
}

func endElements[S any](compound Compound[S], elements []Value[S]) error {
	for _, element := range elements {
		if err := compound.SerializeElement(element); err != nil {
			return err
		}
	}

	return compound.End()
}

// Entry is a single key/value pair of a Map value.
type Entry[S any] struct {
	Key   Value[S]
	Value Value[S]
}

// Map returns a map of the given entries, serialized in order.
func Map[S Serializer[S]](entries ...Entry[S]) Value[S] {
	return func(ser S) error {
		m, err := ser.SerializeMap(Len(len(entries)))
		if err != nil {
			return err
		}

		for _, entry := range entries {
			if err := m.SerializeKey(entry.Key); err != nil {
				return err
			}

			if err := m.SerializeValue(entry.Value); err != nil {
				return err
			}
		}

		return m.End()
	}
}

// MapOf returns a map serializing each entry of m through key and value.
// Entries follow Go's map iteration order; use Map when the output order
// matters.
func MapOf[S Serializer[S], K comparable, V any](m map[K]V, key func(K) Value[S], value func(V) Value[S]) Value[S] {
	return func(ser S) error {
		compound, err := ser.SerializeMap(Len(len(m)))
		if err != nil {
			return err
		}

		for k, v := range m {
			if err := compound.SerializeKey(key(k)); err != nil {
				return err
			}

			if err := compound.SerializeValue(value(v)); err != nil {
				return err
			}
		}

		return compound.End()
	}
}

// Field is a single named field of a Struct value.
type Field[S any] struct {
	Name  string
	Value Value[S]
}

// Struct returns a named field set, serialized in order.
func Struct[S Serializer[S]](name string, fields ...Field[S]) Value[S] {
	return func(ser S) error {
		st, err := ser.SerializeStruct(name, len(fields))
		if err != nil {
			return err
		}

		return endFields(st, fields)
	}
}

// StructVariant returns a field-set variant of the named union type.
func StructVariant[S Serializer[S]](name string, index uint32, variant string, fields ...Field[S]) Value[S] {
	return func(ser S) error {
		st, err := ser.SerializeStructVariant(name, index, variant, len(fields))
		if err != nil {
			return err
		}

		return endFields(st, fields)
	}
}

func endFields[S any](compound Compound[S], fields []Field[S]) error {
	for _, field := range fields {
		if err := compound.SerializeField(field.Name, field.Value); err != nil {
			return err
		}
	}

	return compound.End()
}
