package erased

import (
	serde "github.com/get-serde/go-serde"
)

// Serializer is the object-safe mirror of serde.Serializer. It has no type
// parameter, so values of any concrete backend wrapped through NewSerializer
// can be stored, passed and swapped as ordinary interface values.
//
// Compound serialization begins through the Serialize* methods returning a
// Compound token; the serializer must not be used again until that token's
// End has been called.
type Serializer interface {
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

	SerializeNone() error
	SerializeSome(value Value) error

	SerializeUnit() error
	SerializeUnitStruct(name string) error
	SerializeUnitVariant(name string, index uint32, variant string) error

	SerializeNewtypeStruct(name string, value Value) error
	SerializeNewtypeVariant(name string, index uint32, variant string, value Value) error

	SerializeSeq(hint serde.LenHint) (Compound, error)
	SerializeTuple(length int) (Compound, error)
	SerializeTupleStruct(name string, length int) (Compound, error)
	SerializeTupleVariant(name string, index uint32, variant string, length int) (Compound, error)
	SerializeMap(hint serde.LenHint) (Compound, error)
	SerializeStruct(name string, length int) (Compound, error)
	SerializeStructVariant(name string, index uint32, variant string, length int) (Compound, error)
}

// Kind identifies which compound shape a token was begun for.
type Kind uint8

const (
	KindSeq Kind = iota + 1
	KindTuple
	KindTupleStruct
	KindTupleVariant
	KindMap
	KindStruct
	KindStructVariant
)

func (k Kind) String() string {
	switch k {
	case KindSeq:
		return "sequence"
	case KindTuple:
		return "tuple"
	case KindTupleStruct:
		return "tuple struct"
	case KindTupleVariant:
		return "tuple variant"
	case KindMap:
		return "map"
	case KindStruct:
		return "struct"
	case KindStructVariant:
		return "struct variant"
	default:
		return "invalid"
	}
}

// compoundDriver is the backend-facing side of a Compound token. The token
// validates the operation against its Kind first, so drivers only see calls
// that are legal for the shape they were begun for.
type compoundDriver interface {
	element(value Value) error
	key(key Value) error
	value(value Value) error
	field(name string, value Value) error
	skip(name string) error
	end() error
}

// Compound is the token for an in-progress compound serialization. Unlike the
// generic serde.Compound, it is a concrete tagged value: it knows which shape
// it was begun for and rejects operations of any other shape, as well as any
// operation after End, with a contract-violation error. Misuse is reported,
// never panicked.
//
// A Compound is only valid between the Serialize* call that produced it and
// its End; it must not be retained.
type Compound struct {
	kind Kind
	done bool
	d    compoundDriver
}

// Kind reports which compound shape this token was begun for. A zero Kind
// means the token is the zero value and drives nothing.
func (c *Compound) Kind() Kind { return c.kind }

func (c *Compound) check(op string, legal ...Kind) error {
	if c.d == nil {
		return serde.ContractViolation(op + " on a zero compound token")
	}

	if c.done {
		return serde.ContractViolation(op + " after End")
	}

	for _, k := range legal {
		if c.kind == k {
			return nil
		}
	}

	return serde.ContractViolation(op + " on a " + c.kind.String() + " token")
}

// SerializeElement serializes the next element of a sequence, tuple, tuple
// struct or tuple variant.
func (c *Compound) SerializeElement(value Value) error {
	if err := c.check("SerializeElement", KindSeq, KindTuple, KindTupleStruct, KindTupleVariant); err != nil {
		return err
	}

	return c.d.element(value)
}

// SerializeKey serializes the next map key. Every key must be followed by
// exactly one SerializeValue call.
func (c *Compound) SerializeKey(key Value) error {
	if err := c.check("SerializeKey", KindMap); err != nil {
		return err
	}

	return c.d.key(key)
}

// SerializeValue serializes the map value for the preceding key.
func (c *Compound) SerializeValue(value Value) error {
	if err := c.check("SerializeValue", KindMap); err != nil {
		return err
	}

	return c.d.value(value)
}

// SerializeField serializes a named field of a struct or struct variant.
func (c *Compound) SerializeField(name string, value Value) error {
	if err := c.check("SerializeField", KindStruct, KindStructVariant); err != nil {
		return err
	}

	return c.d.field(name, value)
}

// SkipField records that a struct field is intentionally absent.
func (c *Compound) SkipField(name string) error {
	if err := c.check("SkipField", KindStruct, KindStructVariant); err != nil {
		return err
	}

	return c.d.skip(name)
}

// End finishes the compound. Any further operation on the token, End
// included, fails with a contract violation.
func (c *Compound) End() error {
	if c.d == nil {
		return serde.ContractViolation("End on a zero compound token")
	}

	if c.done {
		return serde.ContractViolation("End after End")
	}

	c.done = true

	return c.d.end()
}

// bridge adapts a concrete backend B to the erased Serializer interface. The
// compound driver lives inside the bridge value itself, so beginning a
// compound hands out a token without a separate allocation for its driver.
type bridge[B serde.Serializer[B]] struct {
	backend B
	cd      compoundBridge[B]
}

// NewSerializer wraps the concrete backend behind the object-safe Serializer
// interface. Every call forwards straight to the backend; nested values
// re-erase through a fresh bridge at each nesting level, so the backend's
// concrete type is preserved all the way down.
func NewSerializer[B serde.Serializer[B]](backend B) Serializer {
	return &bridge[B]{backend: backend}
}

// bind re-erases an erased value as a native value of backend B. This is the
// counterpart of NewValue: where NewValue erases a concrete value at the
// boundary, bind restores a concrete serializer type underneath it.
func bind[B serde.Serializer[B]](value Value) serde.Value[B] {
	return func(backend B) error {
		return value.Serialize(NewSerializer(backend))
	}
}

func (b *bridge[B]) SerializeBool(v bool) error       { return b.backend.SerializeBool(v) }
func (b *bridge[B]) SerializeInt8(v int8) error       { return b.backend.SerializeInt8(v) }
func (b *bridge[B]) SerializeInt16(v int16) error     { return b.backend.SerializeInt16(v) }
func (b *bridge[B]) SerializeInt32(v int32) error     { return b.backend.SerializeInt32(v) }
func (b *bridge[B]) SerializeInt64(v int64) error     { return b.backend.SerializeInt64(v) }
func (b *bridge[B]) SerializeUint8(v uint8) error     { return b.backend.SerializeUint8(v) }
func (b *bridge[B]) SerializeUint16(v uint16) error   { return b.backend.SerializeUint16(v) }
func (b *bridge[B]) SerializeUint32(v uint32) error   { return b.backend.SerializeUint32(v) }
func (b *bridge[B]) SerializeUint64(v uint64) error   { return b.backend.SerializeUint64(v) }
func (b *bridge[B]) SerializeFloat32(v float32) error { return b.backend.SerializeFloat32(v) }
func (b *bridge[B]) SerializeFloat64(v float64) error { return b.backend.SerializeFloat64(v) }
func (b *bridge[B]) SerializeRune(v rune) error       { return b.backend.SerializeRune(v) }
func (b *bridge[B]) SerializeString(v string) error   { return b.backend.SerializeString(v) }
func (b *bridge[B]) SerializeBytes(v []byte) error    { return b.backend.SerializeBytes(v) }

func (b *bridge[B]) SerializeNone() error { return b.backend.SerializeNone() }

func (b *bridge[B]) SerializeSome(value Value) error {
	return b.backend.SerializeSome(bind[B](value))
}

func (b *bridge[B]) SerializeUnit() error { return b.backend.SerializeUnit() }

func (b *bridge[B]) SerializeUnitStruct(name string) error {
	return b.backend.SerializeUnitStruct(name)
}

func (b *bridge[B]) SerializeUnitVariant(name string, index uint32, variant string) error {
	return b.backend.SerializeUnitVariant(name, index, variant)
}

func (b *bridge[B]) SerializeNewtypeStruct(name string, value Value) error {
	return b.backend.SerializeNewtypeStruct(name, bind[B](value))
}

func (b *bridge[B]) SerializeNewtypeVariant(name string, index uint32, variant string, value Value) error {
	return b.backend.SerializeNewtypeVariant(name, index, variant, bind[B](value))
}

func (b *bridge[B]) token(kind Kind, compound serde.Compound[B]) Compound {
	b.cd.c = compound

	return Compound{kind: kind, d: &b.cd}
}

func (b *bridge[B]) SerializeSeq(hint serde.LenHint) (Compound, error) {
	compound, err := b.backend.SerializeSeq(hint)
	if err != nil {
		return Compound{}, err
	}

	return b.token(KindSeq, compound), nil
}

func (b *bridge[B]) SerializeTuple(length int) (Compound, error) {
	compound, err := b.backend.SerializeTuple(length)
	if err != nil {
		return Compound{}, err
	}

	return b.token(KindTuple, compound), nil
}

func (b *bridge[B]) SerializeTupleStruct(name string, length int) (Compound, error) {
	compound, err := b.backend.SerializeTupleStruct(name, length)
	if err != nil {
		return Compound{}, err
	}

	return b.token(KindTupleStruct, compound), nil
}

func (b *bridge[B]) SerializeTupleVariant(name string, index uint32, variant string, length int) (Compound, error) {
	compound, err := b.backend.SerializeTupleVariant(name, index, variant, length)
	if err != nil {
		return Compound{}, err
	}

	return b.token(KindTupleVariant, compound), nil
}

func (b *bridge[B]) SerializeMap(hint serde.LenHint) (Compound, error) {
	compound, err := b.backend.SerializeMap(hint)
	if err != nil {
		return Compound{}, err
	}

	return b.token(KindMap, compound), nil
}

func (b *bridge[B]) SerializeStruct(name string, length int) (Compound, error) {
	compound, err := b.backend.SerializeStruct(name, length)
	if err != nil {
		return Compound{}, err
	}

	return b.token(KindStruct, compound), nil
}

func (b *bridge[B]) SerializeStructVariant(name string, index uint32, variant string, length int) (Compound, error) {
	compound, err := b.backend.SerializeStructVariant(name, index, variant, length)
	if err != nil {
		return Compound{}, err
	}

	return b.token(KindStructVariant, compound), nil
}

// compoundBridge drives the backend's in-progress compound on behalf of a
// Compound token.
type compoundBridge[B serde.Serializer[B]] struct {
	c serde.Compound[B]
}

func (cb *compoundBridge[B]) element(value Value) error {
	return cb.c.SerializeElement(bind[B](value))
}

func (cb *compoundBridge[B]) key(key Value) error {
	return cb.c.SerializeKey(bind[B](key))
}

func (cb *compoundBridge[B]) value(value Value) error {
	return cb.c.SerializeValue(bind[B](value))
}

func (cb *compoundBridge[B]) field(name string, value Value) error {
	return cb.c.SerializeField(name, bind[B](value))
}

func (cb *compoundBridge[B]) skip(name string) error { return cb.c.SkipField(name) }

func (cb *compoundBridge[B]) end() error { return cb.c.End() }
