package serde

// Target decodes a single value from the concrete deserializer type D into a
// destination captured at construction time. It is the deserialization-side
// counterpart of Value[S]: results flow back through the captured pointer,
// never through the interface, so no intermediate representation exists.
type Target[D any] func(de D) error

// Visitor receives the structure a Deserializer discovers in its input. A
// target installs a visitor that accepts the shapes it can decode; embedding
// VisitorBase supplies invalid-type failures for all the others.
type Visitor[D any] interface {
	// Expecting describes the shape this visitor accepts, for error
	// messages ("a boolean", "a sequence of strings").
	Expecting() string

	VisitBool(v bool) error
	VisitInt8(v int8) error
	VisitInt16(v int16) error
	VisitInt32(v int32) error
	VisitInt64(v int64) error
	VisitUint8(v uint8) error
	VisitUint16(v uint16) error
	VisitUint32(v uint32) error
	VisitUint64(v uint64) error
	VisitFloat32(v float32) error
	VisitFloat64(v float64) error
	VisitRune(v rune) error
	VisitString(v string) error
	VisitBytes(v []byte) error

	// VisitNone reports an absent optional value.
	VisitNone() error
	// VisitSome reports a present optional value; the visitor decodes it
	// from de.
	VisitSome(de D) error
	// VisitUnit reports a value that carries no data.
	VisitUnit() error
	// VisitNewtypeStruct reports a single-value wrapper; the visitor
	// decodes the inner value from de.
	VisitNewtypeStruct(de D) error

	// VisitSeq reports a sequence; the visitor drains it through seq.
	VisitSeq(seq SeqAccess[D]) error
	// VisitMap reports a map or field set; the visitor drains it through m.
	VisitMap(m MapAccess[D]) error
	// VisitEnum reports a union value; the visitor resolves it through e.
	VisitEnum(e EnumAccess[D]) error
}

// SeqAccess yields the elements of a sequence being deserialized, one Target
// at a time.
type SeqAccess[D any] interface {
	// NextElement decodes the next element into target. It returns false
	// when the sequence is exhausted, in which case target was not called.
	NextElement(target Target[D]) (bool, error)

	// SizeHint reports the remaining length if the format knows it.
	SizeHint() LenHint
}

// MapAccess yields the entries of a map being deserialized. Each NextKey that
// returns true must be followed by exactly one NextValue call.
type MapAccess[D any] interface {
	// NextKey decodes the next key into target, or returns false when the
	// map is exhausted.
	NextKey(target Target[D]) (bool, error)

	// NextValue decodes the value for the preceding key into target.
	NextValue(target Target[D]) error

	// SizeHint reports the remaining entry count if the format knows it.
	SizeHint() LenHint
}

// EnumAccess resolves a union value in two steps: VariantIdentifier decodes
// which variant is present, then exactly one of the four variant methods
// decodes its payload.
type EnumAccess[D any] interface {
	// VariantIdentifier decodes the variant's identifier into target.
	VariantIdentifier(target Target[D]) error

	// UnitVariant finishes a variant that carries no data.
	UnitVariant() error
	// NewtypeVariant decodes a single-value variant payload into target.
	NewtypeVariant(target Target[D]) error
	// TupleVariant decodes a fixed-length sequence payload through visitor.
	TupleVariant(length int, visitor Visitor[D]) error
	// StructVariant decodes a field-set payload through visitor.
	StructVariant(fields []string, visitor Visitor[D]) error
}

// Deserializer is the format-side interface for decoding. As with
// Serializer[S], D is the implementing type itself, which ties visitors and
// access objects to the concrete backend and prevents use through a plain
// interface value; use erased.NewDeserializer for a dynamic handle.
//
// Each method drives the visitor with the requested shape, or fails with an
// invalid-type error when the input holds something else. DeserializeAny lets
// self-describing formats pick the shape from the input itself.
type Deserializer[D any] interface {
	DeserializeAny(visitor Visitor[D]) error
	DeserializeBool(visitor Visitor[D]) error
	DeserializeInt8(visitor Visitor[D]) error
	DeserializeInt16(visitor Visitor[D]) error
	DeserializeInt32(visitor Visitor[D]) error
	DeserializeInt64(visitor Visitor[D]) error
	DeserializeUint8(visitor Visitor[D]) error
	DeserializeUint16(visitor Visitor[D]) error
	DeserializeUint32(visitor Visitor[D]) error
	DeserializeUint64(visitor Visitor[D]) error
	DeserializeFloat32(visitor Visitor[D]) error
	DeserializeFloat64(visitor Visitor[D]) error
	DeserializeRune(visitor Visitor[D]) error
	DeserializeString(visitor Visitor[D]) error
	DeserializeBytes(visitor Visitor[D]) error
	DeserializeOption(visitor Visitor[D]) error
	DeserializeUnit(visitor Visitor[D]) error
	DeserializeUnitStruct(name string, visitor Visitor[D]) error
	DeserializeNewtypeStruct(name string, visitor Visitor[D]) error
	DeserializeSeq(visitor Visitor[D]) error
	DeserializeTuple(length int, visitor Visitor[D]) error
	DeserializeTupleStruct(name string, length int, visitor Visitor[D]) error
	DeserializeMap(visitor Visitor[D]) error
	DeserializeStruct(name string, fields []string, visitor Visitor[D]) error
	DeserializeEnum(name string, variants []string, visitor Visitor[D]) error

	// DeserializeIdentifier decodes a field or variant name.
	DeserializeIdentifier(visitor Visitor[D]) error

	// DeserializeIgnoredAny consumes and discards whatever value comes
	// next, reporting it as unit.
	DeserializeIgnoredAny(visitor Visitor[D]) error
}
