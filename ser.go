package serde

// LenHint is an advisory element count supplied when beginning a sequence or
// map. The zero value means the length is not known upfront.
//
// Hints are advisory for self-describing formats, but binary formats that
// write length prefixes may require Known to be set; passing an unknown hint
// when the concrete length is available is a caller bug, not something a
// backend is expected to recover from.
type LenHint struct {
	N     int
	Known bool
}

// Len returns a known-length hint.
func Len(n int) LenHint {
	return LenHint{N: n, Known: true}
}

// Value describes a single value to the concrete serializer type S. It is the
// value-trait of the data model: one instantiation exists per (value shape,
// backend) pair, so invoking it is a direct, monomorphic call.
//
// Values for common shapes are built with the constructors in this package
// (Bool, String, Seq, Struct, ...); composite types provide their own generic
// routines on top of those.
type Value[S any] func(ser S) error

// Compound is an in-progress compound serialization handed out by one of the
// Serialize* begin methods of Serializer. Which operations are meaningful
// depends on what was begun: sequences and tuples take elements, maps take
// key/value pairs, structs take named fields. End finalizes the compound with
// the backend and must be called exactly once.
type Compound[S any] interface {
	// SerializeElement serializes the next element of a sequence, tuple,
	// tuple struct or tuple variant.
	SerializeElement(value Value[S]) error

	// SerializeKey serializes the next map key. Every key must be followed
	// by exactly one SerializeValue call.
	SerializeKey(key Value[S]) error

	// SerializeValue serializes the map value for the preceding key.
	SerializeValue(value Value[S]) error

	// SerializeField serializes a named field of a struct or struct variant.
	SerializeField(name string, value Value[S]) error

	// SkipField records that a struct field is intentionally absent.
	// Formats that pre-commit to a field count may reject it.
	SkipField(name string) error

	// End finishes the compound, emitting any closing delimiter.
	End() error
}

// Serializer is the format-side interface of the data model. S is the
// implementing type itself, so that nested values received through Value[S]
// stay bound to the concrete backend: a *jsoncodec.Serializer implements
// Serializer[*jsoncodec.Serializer].
//
// The self-type parameter is what makes this family impossible to hold as a
// plain interface value; use erased.NewSerializer to obtain a dynamic handle.
type Serializer[S any] interface {
	SerializeBool(v bool) error
	SerializeInt8(v int8) error
	SerializeInt16(v int16) error
	SerializeInt32(v int32) error
	SerializeInt64(v int64) error
	SerializeUint8(v uint8) error
	SerializeUint16(v uint16) error
	SerializeUint32(v uint32) error
	SerializeUint64(v uint64) error
	SerializeFloat32(v float32) error
	SerializeFloat64(v float64) error
	SerializeRune(v rune) error
	SerializeString(v string) error
	SerializeBytes(v []byte) error

	// SerializeNone records an absent optional value.
	SerializeNone() error
	// SerializeSome records a present optional value.
	SerializeSome(value Value[S]) error

	// SerializeUnit records a value that carries no data.
	SerializeUnit() error
	// SerializeUnitStruct records a named value that carries no data.
	SerializeUnitStruct(name string) error
	// SerializeUnitVariant records a dataless variant of the named union
	// type; index is the variant's position within it.
	SerializeUnitVariant(name string, index uint32, variant string) error

	// SerializeNewtypeStruct serializes a single-value wrapper type.
	// Most formats serialize the inner value transparently.
	SerializeNewtypeStruct(name string, value Value[S]) error
	// SerializeNewtypeVariant serializes a single-value variant of the
	// named union type.
	SerializeNewtypeVariant(name string, index uint32, variant string, value Value[S]) error

	// SerializeSeq begins a variable-length sequence.
	SerializeSeq(hint LenHint) (Compound[S], error)
	// SerializeTuple begins a fixed-length sequence whose length is known
	// without inspecting the serialized data.
	SerializeTuple(length int) (Compound[S], error)
	// SerializeTupleStruct begins a named fixed-length sequence.
	SerializeTupleStruct(name string, length int) (Compound[S], error)
	// SerializeTupleVariant begins a fixed-length sequence variant of the
	// named union type.
	SerializeTupleVariant(name string, index uint32, variant string, length int) (Compound[S], error)
	// SerializeMap begins a map.
	SerializeMap(hint LenHint) (Compound[S], error)
	// SerializeStruct begins a named set of fields.
	SerializeStruct(name string, length int) (Compound[S], error)
	// SerializeStructVariant begins a field-set variant of the named union
	// type.
	SerializeStructVariant(name string, index uint32, variant string, length int) (Compound[S], error)
}
