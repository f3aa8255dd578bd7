package serde

// VisitorBase implements every Visitor method by failing with an invalid-type
// error built from Desc. Embed it in a visitor and override the methods for
// the shapes the visitor accepts.
type VisitorBase[D any] struct {
	// Desc describes the expected shape, e.g. "a boolean".
	Desc string
}

// Expecting implements the serde.Visitor interface.
func (b VisitorBase[D]) Expecting() string { return b.Desc }

// VisitBool implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitBool(bool) error { return InvalidType("a boolean", b.Desc) }

// VisitInt8 implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitInt8(int8) error { return InvalidType("an 8-bit integer", b.Desc) }

// VisitInt16 implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitInt16(int16) error { return InvalidType("a 16-bit integer", b.Desc) }

// VisitInt32 implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitInt32(int32) error { return InvalidType("a 32-bit integer", b.Desc) }

// VisitInt64 implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitInt64(int64) error { return InvalidType("a 64-bit integer", b.Desc) }

// VisitUint8 implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitUint8(uint8) error {
	return InvalidType("an 8-bit unsigned integer", b.Desc)
}

// VisitUint16 implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitUint16(uint16) error {
	return InvalidType("a 16-bit unsigned integer", b.Desc)
}

// VisitUint32 implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitUint32(uint32) error {
	return InvalidType("a 32-bit unsigned integer", b.Desc)
}

// VisitUint64 implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitUint64(uint64) error {
	return InvalidType("a 64-bit unsigned integer", b.Desc)
}

// VisitFloat32 implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitFloat32(float32) error {
	return InvalidType("a single-precision float", b.Desc)
}

// VisitFloat64 implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitFloat64(float64) error {
	return InvalidType("a double-precision float", b.Desc)
}

// VisitRune implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitRune(rune) error { return InvalidType("a character", b.Desc) }

// VisitString implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitString(string) error { return InvalidType("a string", b.Desc) }

// VisitBytes implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitBytes([]byte) error { return InvalidType("raw bytes", b.Desc) }

// VisitNone implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitNone() error { return InvalidType("an absent optional", b.Desc) }

// VisitSome implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitSome(D) error { return InvalidType("a present optional", b.Desc) }

// VisitUnit implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitUnit() error { return InvalidType("a unit value", b.Desc) }

// VisitNewtypeStruct implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitNewtypeStruct(D) error {
	return InvalidType("a newtype struct", b.Desc)
}

// VisitSeq implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitSeq(SeqAccess[D]) error { return InvalidType("a sequence", b.Desc) }

// VisitMap implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitMap(MapAccess[D]) error { return InvalidType("a map", b.Desc) }

// VisitEnum implements the serde.Visitor interface.
func (b VisitorBase[D]) VisitEnum(EnumAccess[D]) error {
	return InvalidType("an enum variant", b.Desc)
}
