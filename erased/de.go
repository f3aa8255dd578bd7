package erased

import (
	serde "github.com/get-serde/go-serde"
)

// Deserializer is the object-safe mirror of serde.Deserializer. Backends
// wrapped through NewDeserializer can be chosen, stored and passed at runtime
// as ordinary interface values.
type Deserializer interface {
	DeserializeAny(visitor Visitor) error
	DeserializeBool(visitor Visitor) error
	DeserializeInt8(visitor Visitor) error
	DeserializeInt16(visitor Visitor) error
	DeserializeInt32(visitor Visitor) error
	DeserializeInt64(visitor Visitor) error
	DeserializeUint8(visitor Visitor) error
	DeserializeUint16(visitor Visitor) error
	DeserializeUint32(visitor Visitor) error
	DeserializeUint64(visitor Visitor) error
	DeserializeFloat32(visitor Visitor) error
	DeserializeFloat64(visitor Visitor) error
	DeserializeRune(visitor Visitor) error
	DeserializeString(visitor Visitor) error
	DeserializeBytes(visitor Visitor) error
	DeserializeOption(visitor Visitor) error
	DeserializeUnit(visitor Visitor) error
	DeserializeUnitStruct(name string, visitor Visitor) error
	DeserializeNewtypeStruct(name string, visitor Visitor) error
	DeserializeSeq(visitor Visitor) error
	DeserializeTuple(length int, visitor Visitor) error
	DeserializeTupleStruct(name string, length int, visitor Visitor) error
	DeserializeMap(visitor Visitor) error
	DeserializeStruct(name string, fields []string, visitor Visitor) error
	DeserializeEnum(name string, variants []string, visitor Visitor) error
	DeserializeIdentifier(visitor Visitor) error
	DeserializeIgnoredAny(visitor Visitor) error
}

// Visitor is the object-safe mirror of serde.Visitor. Nested deserializers
// and access objects arrive pre-erased; embedding VisitorBase supplies
// invalid-type failures for the shapes a visitor does not accept.
type Visitor interface {
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

	VisitNone() error
	VisitSome(de Deserializer) error
	VisitUnit() error
	VisitNewtypeStruct(de Deserializer) error

	VisitSeq(seq *SeqAccess) error
	VisitMap(m *MapAccess) error
	VisitEnum(e *EnumAccess) error
}

// Target is a self-contained deserialization destination: a pointer captured
// at construction time paired with the unmarshal routine that fills it,
// erased behind a single type. Decoded data flows through the captured
// pointer, never through the interface.
//
// The zero Target decodes nothing and fails with a contract violation.
type Target struct {
	deserialize func(de Deserializer) error
}

// Deserialize decodes one value from de into the captured destination.
func (t Target) Deserialize(de Deserializer) error {
	if t.deserialize == nil {
		return serde.ContractViolation("Deserialize on a zero Target")
	}

	return t.deserialize(de)
}

// NewTarget erases dst together with its unmarshal routine, the user's
// generic unmarshal function instantiated at *ProxyDeserializer:
//
//	erased.NewTarget(&todo, unmarshalTodo[*erased.ProxyDeserializer])
func NewTarget[T any](dst *T, unmarshal func(de *ProxyDeserializer, dst *T) error) Target {
	return Target{deserialize: func(de Deserializer) error {
		proxy := ProxyDeserializer{source: de}

		return unmarshal(&proxy, dst)
	}}
}

// WrapTarget lifts a native target already bound to the proxy deserializer
// into an erased one.
func WrapTarget(target serde.Target[*ProxyDeserializer]) Target {
	return Target{deserialize: func(de Deserializer) error {
		proxy := ProxyDeserializer{source: de}

		return target(&proxy)
	}}
}

// Deserialize decodes one value directly from a concrete backend into target,
// erasing the backend for the duration of the call.
func Deserialize[D serde.Deserializer[D]](target Target, backend D) error {
	return target.Deserialize(NewDeserializer(backend))
}

// seqDriver, mapDriver and enumDriver are the backend-facing sides of the
// access tokens.
type seqDriver interface {
	next(target Target) (bool, error)
	hint() serde.LenHint
}

type mapDriver interface {
	nextKey(target Target) (bool, error)
	nextValue(target Target) error
	hint() serde.LenHint
}

type enumDriver interface {
	identifier(target Target) error
	unit() error
	newtype(target Target) error
	tuple(length int, visitor Visitor) error
	strct(fields []string, visitor Visitor) error
}

// SeqAccess yields the elements of a sequence being deserialized. It is only
// valid inside the VisitSeq call that received it; the zero value drives
// nothing.
type SeqAccess struct {
	d seqDriver
}

// NextElement decodes the next element into target, or returns false when the
// sequence is exhausted.
func (a *SeqAccess) NextElement(target Target) (bool, error) {
	if a.d == nil {
		return false, serde.ContractViolation("NextElement on a zero sequence token")
	}

	return a.d.next(target)
}

// SizeHint reports the remaining length if the format knows it.
func (a *SeqAccess) SizeHint() serde.LenHint {
	if a.d == nil {
		return serde.LenHint{}
	}

	return a.d.hint()
}

// MapAccess yields the entries of a map being deserialized. It is only valid
// inside the VisitMap call that received it.
type MapAccess struct {
	d mapDriver
}

// NextKey decodes the next key into target, or returns false when the map is
// exhausted. Each true return must be followed by exactly one NextValue call.
func (a *MapAccess) NextKey(target Target) (bool, error) {
	if a.d == nil {
		return false, serde.ContractViolation("NextKey on a zero map token")
	}

	return a.d.nextKey(target)
}

// NextValue decodes the value for the preceding key into target.
func (a *MapAccess) NextValue(target Target) error {
	if a.d == nil {
		return serde.ContractViolation("NextValue on a zero map token")
	}

	return a.d.nextValue(target)
}

// SizeHint reports the remaining entry count if the format knows it.
func (a *MapAccess) SizeHint() serde.LenHint {
	if a.d == nil {
		return serde.LenHint{}
	}

	return a.d.hint()
}

// EnumAccess resolves a union value: VariantIdentifier first, then exactly
// one of the four variant methods. It is only valid inside the VisitEnum call
// that received it.
type EnumAccess struct {
	d enumDriver
}

// VariantIdentifier decodes the variant's identifier into target.
func (a *EnumAccess) VariantIdentifier(target Target) error {
	if a.d == nil {
		return serde.ContractViolation("VariantIdentifier on a zero enum token")
	}

	return a.d.identifier(target)
}

// UnitVariant finishes a variant that carries no data.
func (a *EnumAccess) UnitVariant() error {
	if a.d == nil {
		return serde.ContractViolation("UnitVariant on a zero enum token")
	}

	return a.d.unit()
}

// NewtypeVariant decodes a single-value variant payload into target.
func (a *EnumAccess) NewtypeVariant(target Target) error {
	if a.d == nil {
		return serde.ContractViolation("NewtypeVariant on a zero enum token")
	}

	return a.d.newtype(target)
}

// TupleVariant decodes a fixed-length sequence payload through visitor.
func (a *EnumAccess) TupleVariant(length int, visitor Visitor) error {
	if a.d == nil {
		return serde.ContractViolation("TupleVariant on a zero enum token")
	}

	return a.d.tuple(length, visitor)
}

// StructVariant decodes a field-set payload through visitor.
func (a *EnumAccess) StructVariant(fields []string, visitor Visitor) error {
	if a.d == nil {
		return serde.ContractViolation("StructVariant on a zero enum token")
	}

	return a.d.strct(fields, visitor)
}

// deBridge adapts a concrete backend D to the erased Deserializer interface.
// The visitor adapter lives inside the bridge value; calls are strictly
// nested, so one slot per bridge suffices.
type deBridge[D serde.Deserializer[D]] struct {
	backend D
	vb      visitorBridge[D]
}

// NewDeserializer wraps the concrete backend behind the object-safe
// Deserializer interface. Nested deserializers re-erase through a fresh
// bridge at each nesting level.
func NewDeserializer[D serde.Deserializer[D]](backend D) Deserializer {
	return &deBridge[D]{backend: backend}
}

// bindTarget re-erases an erased target as a native target of backend D.
func bindTarget[D serde.Deserializer[D]](target Target) serde.Target[D] {
	return func(backend D) error {
		return target.Deserialize(NewDeserializer(backend))
	}
}

func (b *deBridge[D]) visit(visitor Visitor) *visitorBridge[D] {
	b.vb.v = visitor

	return &b.vb
}

func (b *deBridge[D]) DeserializeAny(visitor Visitor) error {
	return b.backend.DeserializeAny(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeBool(visitor Visitor) error {
	return b.backend.DeserializeBool(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeInt8(visitor Visitor) error {
	return b.backend.DeserializeInt8(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeInt16(visitor Visitor) error {
	return b.backend.DeserializeInt16(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeInt32(visitor Visitor) error {
	return b.backend.DeserializeInt32(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeInt64(visitor Visitor) error {
	return b.backend.DeserializeInt64(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeUint8(visitor Visitor) error {
	return b.backend.DeserializeUint8(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeUint16(visitor Visitor) error {
	return b.backend.DeserializeUint16(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeUint32(visitor Visitor) error {
	return b.backend.DeserializeUint32(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeUint64(visitor Visitor) error {
	return b.backend.DeserializeUint64(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeFloat32(visitor Visitor) error {
	return b.backend.DeserializeFloat32(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeFloat64(visitor Visitor) error {
	return b.backend.DeserializeFloat64(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeRune(visitor Visitor) error {
	return b.backend.DeserializeRune(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeString(visitor Visitor) error {
	return b.backend.DeserializeString(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeBytes(visitor Visitor) error {
	return b.backend.DeserializeBytes(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeOption(visitor Visitor) error {
	return b.backend.DeserializeOption(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeUnit(visitor Visitor) error {
	return b.backend.DeserializeUnit(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeUnitStruct(name string, visitor Visitor) error {
	return b.backend.DeserializeUnitStruct(name, b.visit(visitor))
}

func (b *deBridge[D]) DeserializeNewtypeStruct(name string, visitor Visitor) error {
	return b.backend.DeserializeNewtypeStruct(name, b.visit(visitor))
}

func (b *deBridge[D]) DeserializeSeq(visitor Visitor) error {
	return b.backend.DeserializeSeq(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeTuple(length int, visitor Visitor) error {
	return b.backend.DeserializeTuple(length, b.visit(visitor))
}

func (b *deBridge[D]) DeserializeTupleStruct(name string, length int, visitor Visitor) error {
	return b.backend.DeserializeTupleStruct(name, length, b.visit(visitor))
}

func (b *deBridge[D]) DeserializeMap(visitor Visitor) error {
	return b.backend.DeserializeMap(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeStruct(name string, fields []string, visitor Visitor) error {
	return b.backend.DeserializeStruct(name, fields, b.visit(visitor))
}

func (b *deBridge[D]) DeserializeEnum(name string, variants []string, visitor Visitor) error {
	return b.backend.DeserializeEnum(name, variants, b.visit(visitor))
}

func (b *deBridge[D]) DeserializeIdentifier(visitor Visitor) error {
	return b.backend.DeserializeIdentifier(b.visit(visitor))
}

func (b *deBridge[D]) DeserializeIgnoredAny(visitor Visitor) error {
	return b.backend.DeserializeIgnoredAny(b.visit(visitor))
}

// visitorBridge presents an erased visitor to the concrete backend, erasing
// the structure the backend reports on the way back out.
type visitorBridge[D serde.Deserializer[D]] struct {
	v Visitor
}

func (vb *visitorBridge[D]) Expecting() string { return vb.v.Expecting() }

func (vb *visitorBridge[D]) VisitBool(v bool) error       { return vb.v.VisitBool(v) }
func (vb *visitorBridge[D]) VisitInt8(v int8) error       { return vb.v.VisitInt8(v) }
func (vb *visitorBridge[D]) VisitInt16(v int16) error     { return vb.v.VisitInt16(v) }
func (vb *visitorBridge[D]) VisitInt32(v int32) error     { return vb.v.VisitInt32(v) }
func (vb *visitorBridge[D]) VisitInt64(v int64) error     { return vb.v.VisitInt64(v) }
func (vb *visitorBridge[D]) VisitUint8(v uint8) error     { return vb.v.VisitUint8(v) }
func (vb *visitorBridge[D]) VisitUint16(v uint16) error   { return vb.v.VisitUint16(v) }
func (vb *visitorBridge[D]) VisitUint32(v uint32) error   { return vb.v.VisitUint32(v) }
func (vb *visitorBridge[D]) VisitUint64(v uint64) error   { return vb.v.VisitUint64(v) }
func (vb *visitorBridge[D]) VisitFloat32(v float32) error { return vb.v.VisitFloat32(v) }
func (vb *visitorBridge[D]) VisitFloat64(v float64) error { return vb.v.VisitFloat64(v) }
func (vb *visitorBridge[D]) VisitRune(v rune) error       { return vb.v.VisitRune(v) }
func (vb *visitorBridge[D]) VisitString(v string) error   { return vb.v.VisitString(v) }
func (vb *visitorBridge[D]) VisitBytes(v []byte) error    { return vb.v.VisitBytes(v) }

func (vb *visitorBridge[D]) VisitNone() error { return vb.v.VisitNone() }

func (vb *visitorBridge[D]) VisitSome(de D) error {
	return vb.v.VisitSome(NewDeserializer(de))
}

func (vb *visitorBridge[D]) VisitUnit() error { return vb.v.VisitUnit() }

func (vb *visitorBridge[D]) VisitNewtypeStruct(de D) error {
	return vb.v.VisitNewtypeStruct(NewDeserializer(de))
}

func (vb *visitorBridge[D]) VisitSeq(seq serde.SeqAccess[D]) error {
	sb := seqBridge[D]{seq: seq}
	token := SeqAccess{d: &sb}

	return vb.v.VisitSeq(&token)
}

func (vb *visitorBridge[D]) VisitMap(m serde.MapAccess[D]) error {
	mb := mapBridge[D]{m: m}
	token := MapAccess{d: &mb}

	return vb.v.VisitMap(&token)
}

func (vb *visitorBridge[D]) VisitEnum(e serde.EnumAccess[D]) error {
	eb := enumBridge[D]{e: e}
	token := EnumAccess{d: &eb}

	return vb.v.VisitEnum(&token)
}

type seqBridge[D serde.Deserializer[D]] struct {
	seq serde.SeqAccess[D]
}

func (sb *seqBridge[D]) next(target Target) (bool, error) {
	return sb.seq.NextElement(bindTarget[D](target))
}

func (sb *seqBridge[D]) hint() serde.LenHint { return sb.seq.SizeHint() }

type mapBridge[D serde.Deserializer[D]] struct {
	m serde.MapAccess[D]
}

func (mb *mapBridge[D]) nextKey(target Target) (bool, error) {
	return mb.m.NextKey(bindTarget[D](target))
}

func (mb *mapBridge[D]) nextValue(target Target) error {
	return mb.m.NextValue(bindTarget[D](target))
}

func (mb *mapBridge[D]) hint() serde.LenHint { return mb.m.SizeHint() }

type enumBridge[D serde.Deserializer[D]] struct {
	e serde.EnumAccess[D]
}

func (eb *enumBridge[D]) identifier(target Target) error {
	return eb.e.VariantIdentifier(bindTarget[D](target))
}

func (eb *enumBridge[D]) unit() error { return eb.e.UnitVariant() }

func (eb *enumBridge[D]) newtype(target Target) error {
	return eb.e.NewtypeVariant(bindTarget[D](target))
}

func (eb *enumBridge[D]) tuple(length int, visitor Visitor) error {
	vb := visitorBridge[D]{v: visitor}

	return eb.e.TupleVariant(length, &vb)
}

func (eb *enumBridge[D]) strct(fields []string, visitor Visitor) error {
	vb := visitorBridge[D]{v: visitor}

	return eb.e.StructVariant(fields, &vb)
}
