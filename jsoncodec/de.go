package jsoncodec

import (
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"

	serde "github.com/get-serde/go-serde"
)

// Deserializer reads one value per deserialization from a JSON document. It
// implements serde.Deserializer[*Deserializer].
//
// JSON is self-describing, so every shape request is checked against the
// input before anything is consumed; mismatches fail with an invalid-type
// error and leave the mismatched value unread.
type Deserializer struct {
	iter *jsoniter.Iterator

	// pending holds an object key captured by ReadObject, to be replayed
	// as a string to the key's target instead of consuming input.
	pending    string
	hasPending bool
}

var _ serde.Deserializer[*Deserializer] = (*Deserializer)(nil)

// NewDeserializer returns a deserializer reading from data.
func NewDeserializer(data []byte) *Deserializer {
	return &Deserializer{iter: jsoniter.ParseBytes(jsoniter.ConfigDefault, data)}
}

// NewReaderDeserializer returns a deserializer reading from r.
func NewReaderDeserializer(r io.Reader) *Deserializer {
	return &Deserializer{iter: jsoniter.Parse(jsoniter.ConfigDefault, r, 512)}
}

// fail surfaces a pending iterator error. A plain io.EOF is not a failure
// here: the iterator reports it after reading a number or literal that ends
// exactly at the end of input.
func (d *Deserializer) fail() error {
	if err := d.iter.Error; err != nil && err != io.EOF {
		return fmt.Errorf("jsoncodec.Deserializer: read failed, %w", err)
	}

	return nil
}

// takePending replays a captured object key as a string visit.
func (d *Deserializer) takePending(visitor serde.Visitor[*Deserializer]) (bool, error) {
	if !d.hasPending {
		return false, nil
	}

	key := d.pending
	d.hasPending = false

	return true, visitor.VisitString(key)
}

func describe(t jsoniter.ValueType) string {
	switch t {
	case jsoniter.NilValue:
		return "null"
	case jsoniter.BoolValue:
		return "a boolean"
	case jsoniter.NumberValue:
		return "a number"
	case jsoniter.StringValue:
		return "a string"
	case jsoniter.ArrayValue:
		return "an array"
	case jsoniter.ObjectValue:
		return "an object"
	default:
		return "invalid input"
	}
}

// expect checks the upcoming value against want without consuming it.
func (d *Deserializer) expect(want jsoniter.ValueType, visitor serde.Visitor[*Deserializer]) error {
	if next := d.iter.WhatIsNext(); next != want {
		if err := d.fail(); err != nil {
			return err
		}

		return serde.InvalidType(describe(next), visitor.Expecting())
	}

	return nil
}

func (d *Deserializer) DeserializeAny(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	switch next := d.iter.WhatIsNext(); next {
	case jsoniter.NilValue:
		d.iter.ReadNil()

		return visitor.VisitUnit()

	case jsoniter.BoolValue:
		v := d.iter.ReadBool()
		if err := d.fail(); err != nil {
			return err
		}

		return visitor.VisitBool(v)

	case jsoniter.NumberValue:
		n := d.iter.ReadNumber()
		if err := d.fail(); err != nil {
			return err
		}

		if i, err := n.Int64(); err == nil {
			return visitor.VisitInt64(i)
		}

		f, err := n.Float64()
		if err != nil {
			return serde.InvalidValue("number "+n.String(), visitor.Expecting())
		}

		return visitor.VisitFloat64(f)

	case jsoniter.StringValue:
		v := d.iter.ReadString()
		if err := d.fail(); err != nil {
			return err
		}

		return visitor.VisitString(v)

	case jsoniter.ArrayValue:
		return d.visitSeq(visitor)

	case jsoniter.ObjectValue:
		return d.visitMap(visitor)

	default:
		if err := d.fail(); err != nil {
			return err
		}

		return serde.InvalidType(describe(next), visitor.Expecting())
	}
}

func (d *Deserializer) DeserializeBool(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.BoolValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadBool()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitBool(v)
}

func (d *Deserializer) DeserializeInt8(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.NumberValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadInt8()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitInt8(v)
}

func (d *Deserializer) DeserializeInt16(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.NumberValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadInt16()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitInt16(v)
}

func (d *Deserializer) DeserializeInt32(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.NumberValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadInt32()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitInt32(v)
}

func (d *Deserializer) DeserializeInt64(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.NumberValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadInt64()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitInt64(v)
}

func (d *Deserializer) DeserializeUint8(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.NumberValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadUint8()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitUint8(v)
}

func (d *Deserializer) DeserializeUint16(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.NumberValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadUint16()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitUint16(v)
}

func (d *Deserializer) DeserializeUint32(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.NumberValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadUint32()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitUint32(v)
}

func (d *Deserializer) DeserializeUint64(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.NumberValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadUint64()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitUint64(v)
}

func (d *Deserializer) DeserializeFloat32(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.NumberValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadFloat32()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitFloat32(v)
}

func (d *Deserializer) DeserializeFloat64(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.NumberValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadFloat64()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitFloat64(v)
}

func (d *Deserializer) DeserializeRune(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.StringValue, visitor); err != nil {
		return err
	}

	s := d.iter.ReadString()
	if err := d.fail(); err != nil {
		return err
	}

	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return serde.InvalidValue("string "+fmt.Sprintf("%q", s), "a single character")
	}

	return visitor.VisitRune(r)
}

func (d *Deserializer) DeserializeString(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.StringValue, visitor); err != nil {
		return err
	}

	v := d.iter.ReadString()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitString(v)
}

func (d *Deserializer) DeserializeBytes(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.StringValue, visitor); err != nil {
		return err
	}

	s := d.iter.ReadString()
	if err := d.fail(); err != nil {
		return err
	}

	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return serde.InvalidValue("a non-base64 string", visitor.Expecting())
	}

	return visitor.VisitBytes(raw)
}

func (d *Deserializer) DeserializeOption(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if d.iter.WhatIsNext() == jsoniter.NilValue {
		d.iter.ReadNil()

		return visitor.VisitNone()
	}

	return visitor.VisitSome(d)
}

func (d *Deserializer) DeserializeUnit(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.NilValue, visitor); err != nil {
		return err
	}

	d.iter.ReadNil()

	return visitor.VisitUnit()
}

func (d *Deserializer) DeserializeUnitStruct(_ string, visitor serde.Visitor[*Deserializer]) error {
	return d.DeserializeUnit(visitor)
}

func (d *Deserializer) DeserializeNewtypeStruct(_ string, visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	return visitor.VisitNewtypeStruct(d)
}

func (d *Deserializer) DeserializeSeq(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.ArrayValue, visitor); err != nil {
		return err
	}

	return d.visitSeq(visitor)
}

func (d *Deserializer) DeserializeTuple(_ int, visitor serde.Visitor[*Deserializer]) error {
	return d.DeserializeSeq(visitor)
}

func (d *Deserializer) DeserializeTupleStruct(_ string, _ int, visitor serde.Visitor[*Deserializer]) error {
	return d.DeserializeSeq(visitor)
}

func (d *Deserializer) DeserializeMap(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(jsoniter.ObjectValue, visitor); err != nil {
		return err
	}

	return d.visitMap(visitor)
}

func (d *Deserializer) DeserializeStruct(_ string, _ []string, visitor serde.Visitor[*Deserializer]) error {
	return d.DeserializeMap(visitor)
}

// DeserializeEnum accepts the two variant encodings SerializeUnitVariant and
// its compound counterparts produce: a bare string for a dataless variant, a
// single-entry object for one carrying data.
func (d *Deserializer) DeserializeEnum(_ string, _ []string, visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	switch next := d.iter.WhatIsNext(); next {
	case jsoniter.StringValue:
		variant := d.iter.ReadString()
		if err := d.fail(); err != nil {
			return err
		}

		return visitor.VisitEnum(&enumAccess{d: d, variant: variant})

	case jsoniter.ObjectValue:
		variant := d.iter.ReadObject()
		if err := d.fail(); err != nil {
			return err
		}

		if variant == "" {
			return serde.InvalidValue("an empty object", "a single-entry variant object")
		}

		return visitor.VisitEnum(&enumAccess{d: d, variant: variant, object: true})

	default:
		if err := d.fail(); err != nil {
			return err
		}

		return serde.InvalidType(describe(next), visitor.Expecting())
	}
}

func (d *Deserializer) DeserializeIdentifier(visitor serde.Visitor[*Deserializer]) error {
	return d.DeserializeString(visitor)
}

func (d *Deserializer) DeserializeIgnoredAny(visitor serde.Visitor[*Deserializer]) error {
	if d.hasPending {
		d.hasPending = false

		return visitor.VisitUnit()
	}

	d.iter.Skip()
	if err := d.fail(); err != nil {
		return err
	}

	return visitor.VisitUnit()
}

// visitSeq drives the visitor through an array whose opening bracket has not
// been consumed yet, then drains whatever the visitor left unread.
func (d *Deserializer) visitSeq(visitor serde.Visitor[*Deserializer]) error {
	seq := seqAccess{d: d}

	if err := visitor.VisitSeq(&seq); err != nil {
		return err
	}

	return seq.drain()
}

func (d *Deserializer) visitMap(visitor serde.Visitor[*Deserializer]) error {
	m := mapAccess{d: d}

	if err := visitor.VisitMap(&m); err != nil {
		return err
	}

	return m.drain()
}

type seqAccess struct {
	d    *Deserializer
	done bool
}

func (a *seqAccess) NextElement(target serde.Target[*Deserializer]) (bool, error) {
	if a.done {
		return false, nil
	}

	if !a.d.iter.ReadArray() {
		a.done = true

		return false, a.d.fail()
	}

	if err := target(a.d); err != nil {
		return false, err
	}

	return true, a.d.fail()
}

// SizeHint is always unknown: JSON arrays carry no length prefix.
func (a *seqAccess) SizeHint() serde.LenHint { return serde.LenHint{} }

func (a *seqAccess) drain() error {
	for !a.done {
		if !a.d.iter.ReadArray() {
			a.done = true

			break
		}

		a.d.iter.Skip()
	}

	return a.d.fail()
}

type mapAccess struct {
	d    *Deserializer
	done bool
}

func (a *mapAccess) NextKey(target serde.Target[*Deserializer]) (bool, error) {
	if a.done {
		return false, nil
	}

	key := a.d.iter.ReadObject()
	if err := a.d.fail(); err != nil {
		return false, err
	}

	if key == "" {
		a.done = true

		return false, nil
	}

	a.d.pending = key
	a.d.hasPending = true
	err := target(a.d)
	a.d.hasPending = false

	return err == nil, err
}

func (a *mapAccess) NextValue(target serde.Target[*Deserializer]) error {
	return target(a.d)
}

func (a *mapAccess) SizeHint() serde.LenHint { return serde.LenHint{} }

func (a *mapAccess) drain() error {
	for !a.done {
		key := a.d.iter.ReadObject()
		if err := a.d.fail(); err != nil {
			return err
		}

		if key == "" {
			a.done = true

			break
		}

		a.d.iter.Skip()
	}

	return a.d.fail()
}

// enumAccess resolves a variant read by DeserializeEnum. For the object form
// it also consumes the enclosing object's end once the payload is done.
type enumAccess struct {
	d       *Deserializer
	variant string
	object  bool
}

func (a *enumAccess) VariantIdentifier(target serde.Target[*Deserializer]) error {
	a.d.pending = a.variant
	a.d.hasPending = true
	err := target(a.d)
	a.d.hasPending = false

	return err
}

func (a *enumAccess) UnitVariant() error {
	if !a.object {
		return nil
	}

	if a.d.iter.WhatIsNext() != jsoniter.NilValue {
		return serde.InvalidType("variant data", "a unit variant")
	}

	a.d.iter.ReadNil()

	return a.close()
}

func (a *enumAccess) NewtypeVariant(target serde.Target[*Deserializer]) error {
	if !a.object {
		return serde.InvalidType("a unit variant", "a newtype variant")
	}

	if err := target(a.d); err != nil {
		return err
	}

	return a.close()
}

func (a *enumAccess) TupleVariant(_ int, visitor serde.Visitor[*Deserializer]) error {
	if !a.object {
		return serde.InvalidType("a unit variant", "a tuple variant")
	}

	if err := a.d.DeserializeSeq(visitor); err != nil {
		return err
	}

	return a.close()
}

func (a *enumAccess) StructVariant(_ []string, visitor serde.Visitor[*Deserializer]) error {
	if !a.object {
		return serde.InvalidType("a unit variant", "a struct variant")
	}

	if err := a.d.DeserializeMap(visitor); err != nil {
		return err
	}

	return a.close()
}

func (a *enumAccess) close() error {
	key := a.d.iter.ReadObject()
	if err := a.d.fail(); err != nil {
		return err
	}

	if key != "" {
		return serde.InvalidValue("an object with multiple entries", "a single-entry variant object")
	}

	return nil
}
