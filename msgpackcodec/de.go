package msgpackcodec

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	serde "github.com/get-serde/go-serde"
)

// Deserializer reads one value per deserialization from a MessagePack
// document. It implements serde.Deserializer[*Deserializer].
//
// Every shape request peeks at the next format code first, so mismatches fail
// with an invalid-type error before anything is consumed.
type Deserializer struct {
	dec *msgpack.Decoder

	// pending holds a variant identifier already decoded by
	// DeserializeEnum, replayed as a string to the identifier's target.
	pending    string
	hasPending bool
}

var _ serde.Deserializer[*Deserializer] = (*Deserializer)(nil)

// NewDeserializer returns a deserializer reading from data.
func NewDeserializer(data []byte) *Deserializer {
	return &Deserializer{dec: msgpack.NewDecoder(bytes.NewReader(data))}
}

// NewReaderDeserializer returns a deserializer reading from r.
func NewReaderDeserializer(r io.Reader) *Deserializer {
	return &Deserializer{dec: msgpack.NewDecoder(r)}
}

func wrapRead(err error) error {
	return fmt.Errorf("msgpackcodec.Deserializer: read failed, %w", err)
}

func isBool(c byte) bool { return c == msgpcode.True || c == msgpcode.False }

func isNumber(c byte) bool {
	return msgpcode.IsFixedNum(c) ||
		(c >= msgpcode.Uint8 && c <= msgpcode.Int64) ||
		c == msgpcode.Float || c == msgpcode.Double
}

func isUnsigned(c byte) bool { return c >= msgpcode.Uint8 && c <= msgpcode.Uint64 }

func isFloat(c byte) bool { return c == msgpcode.Float || c == msgpcode.Double }

func isString(c byte) bool {
	return msgpcode.IsFixedString(c) || c == msgpcode.Str8 || c == msgpcode.Str16 || c == msgpcode.Str32
}

func isBin(c byte) bool {
	return c == msgpcode.Bin8 || c == msgpcode.Bin16 || c == msgpcode.Bin32
}

func isArray(c byte) bool {
	return msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32
}

func isMap(c byte) bool {
	return msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32
}

func describeCode(c byte) string {
	switch {
	case c == msgpcode.Nil:
		return "nil"
	case isBool(c):
		return "a boolean"
	case isFloat(c):
		return "a float"
	case isNumber(c):
		return "an integer"
	case isString(c):
		return "a string"
	case isBin(c):
		return "raw bytes"
	case isArray(c):
		return "an array"
	case isMap(c):
		return "a map"
	default:
		return "an extension value"
	}
}

// expect peeks at the next format code and checks it against ok without
// consuming anything.
func (d *Deserializer) expect(ok func(byte) bool, visitor serde.Visitor[*Deserializer]) error {
	c, err := d.dec.PeekCode()
	if err != nil {
		return wrapRead(err)
	}

	if !ok(c) {
		return serde.InvalidType(describeCode(c), visitor.Expecting())
	}

	return nil
}

func (d *Deserializer) takePending(visitor serde.Visitor[*Deserializer]) (bool, error) {
	if !d.hasPending {
		return false, nil
	}

	key := d.pending
	d.hasPending = false

	return true, visitor.VisitString(key)
}

func (d *Deserializer) DeserializeAny(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	c, err := d.dec.PeekCode()
	if err != nil {
		return wrapRead(err)
	}

	switch {
	case c == msgpcode.Nil:
		if err := d.dec.DecodeNil(); err != nil {
			return wrapRead(err)
		}

		return visitor.VisitUnit()

	case isBool(c):
		v, err := d.dec.DecodeBool()
		if err != nil {
			return wrapRead(err)
		}

		return visitor.VisitBool(v)

	case isFloat(c):
		v, err := d.dec.DecodeFloat64()
		if err != nil {
			return wrapRead(err)
		}

		return visitor.VisitFloat64(v)

	case isUnsigned(c):
		v, err := d.dec.DecodeUint64()
		if err != nil {
			return wrapRead(err)
		}

		return visitor.VisitUint64(v)

	case isNumber(c):
		v, err := d.dec.DecodeInt64()
		if err != nil {
			return wrapRead(err)
		}

		return visitor.VisitInt64(v)

	case isString(c):
		v, err := d.dec.DecodeString()
		if err != nil {
			return wrapRead(err)
		}

		return visitor.VisitString(v)

	case isBin(c):
		v, err := d.dec.DecodeBytes()
		if err != nil {
			return wrapRead(err)
		}

		return visitor.VisitBytes(v)

	case isArray(c):
		n, err := d.dec.DecodeArrayLen()
		if err != nil {
			return wrapRead(err)
		}

		return d.visitSeq(n, visitor)

	case isMap(c):
		n, err := d.dec.DecodeMapLen()
		if err != nil {
			return wrapRead(err)
		}

		return d.visitMap(n, visitor)

	default:
		return serde.InvalidType(describeCode(c), visitor.Expecting())
	}
}

func (d *Deserializer) DeserializeBool(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isBool, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeBool()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitBool(v)
}

func (d *Deserializer) DeserializeInt8(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isNumber, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeInt8()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitInt8(v)
}

func (d *Deserializer) DeserializeInt16(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isNumber, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeInt16()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitInt16(v)
}

func (d *Deserializer) DeserializeInt32(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isNumber, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeInt32()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitInt32(v)
}

func (d *Deserializer) DeserializeInt64(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isNumber, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeInt64()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitInt64(v)
}

func (d *Deserializer) DeserializeUint8(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isNumber, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeUint8()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitUint8(v)
}

func (d *Deserializer) DeserializeUint16(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isNumber, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeUint16()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitUint16(v)
}

func (d *Deserializer) DeserializeUint32(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isNumber, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeUint32()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitUint32(v)
}

func (d *Deserializer) DeserializeUint64(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isNumber, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeUint64()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitUint64(v)
}

func (d *Deserializer) DeserializeFloat32(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isNumber, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeFloat32()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitFloat32(v)
}

func (d *Deserializer) DeserializeFloat64(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isNumber, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeFloat64()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitFloat64(v)
}

func (d *Deserializer) DeserializeRune(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isString, visitor); err != nil {
		return err
	}

	s, err := d.dec.DecodeString()
	if err != nil {
		return wrapRead(err)
	}

	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return serde.InvalidValue("string "+strconv.Quote(s), "a single character")
	}

	return visitor.VisitRune(r)
}

func (d *Deserializer) DeserializeString(visitor serde.Visitor[*Deserializer]) error {
	if ok, err := d.takePending(visitor); ok {
		return err
	}

	if err := d.expect(isString, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeString()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitString(v)
}

// DeserializeBytes accepts both the bin and str families: encoders disagree
// on which one byte strings belong to.
func (d *Deserializer) DeserializeBytes(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(func(c byte) bool { return isBin(c) || isString(c) }, visitor); err != nil {
		return err
	}

	v, err := d.dec.DecodeBytes()
	if err != nil {
		return wrapRead(err)
	}

	return visitor.VisitBytes(v)
}

func (d *Deserializer) DeserializeOption(visitor serde.Visitor[*Deserializer]) error {
	c, err := d.dec.PeekCode()
	if err != nil {
		return wrapRead(err)
	}

	if c == msgpcode.Nil {
		if err := d.dec.DecodeNil(); err != nil {
			return wrapRead(err)
		}

		return visitor.VisitNone()
	}

	return visitor.VisitSome(d)
}

func (d *Deserializer) DeserializeUnit(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(func(c byte) bool { return c == msgpcode.Nil }, visitor); err != nil {
		return err
	}

	if err := d.dec.DecodeNil(); err != nil {
		return wrapRead(err)
	}

	return visitor.VisitUnit()
}

func (d *Deserializer) DeserializeUnitStruct(_ string, visitor serde.Visitor[*Deserializer]) error {
	return d.DeserializeUnit(visitor)
}

func (d *Deserializer) DeserializeNewtypeStruct(_ string, visitor serde.Visitor[*Deserializer]) error {
	return visitor.VisitNewtypeStruct(d)
}

func (d *Deserializer) DeserializeSeq(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isArray, visitor); err != nil {
		return err
	}

	n, err := d.dec.DecodeArrayLen()
	if err != nil {
		return wrapRead(err)
	}

	return d.visitSeq(n, visitor)
}

func (d *Deserializer) DeserializeTuple(length int, visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isArray, visitor); err != nil {
		return err
	}

	n, err := d.dec.DecodeArrayLen()
	if err != nil {
		return wrapRead(err)
	}

	if n != length {
		return serde.InvalidLength(n, "a tuple of length "+strconv.Itoa(length))
	}

	return d.visitSeq(n, visitor)
}

func (d *Deserializer) DeserializeTupleStruct(_ string, length int, visitor serde.Visitor[*Deserializer]) error {
	return d.DeserializeTuple(length, visitor)
}

func (d *Deserializer) DeserializeMap(visitor serde.Visitor[*Deserializer]) error {
	if err := d.expect(isMap, visitor); err != nil {
		return err
	}

	n, err := d.dec.DecodeMapLen()
	if err != nil {
		return wrapRead(err)
	}

	return d.visitMap(n, visitor)
}

func (d *Deserializer) DeserializeStruct(_ string, _ []string, visitor serde.Visitor[*Deserializer]) error {
	return d.DeserializeMap(visitor)
}

// DeserializeEnum accepts the two variant encodings the serializer produces:
// a bare string for a dataless variant, a single-entry map otherwise.
func (d *Deserializer) DeserializeEnum(_ string, _ []string, visitor serde.Visitor[*Deserializer]) error {
	c, err := d.dec.PeekCode()
	if err != nil {
		return wrapRead(err)
	}

	switch {
	case isString(c):
		variant, err := d.dec.DecodeString()
		if err != nil {
			return wrapRead(err)
		}

		return visitor.VisitEnum(&enumAccess{d: d, variant: variant})

	case isMap(c):
		n, err := d.dec.DecodeMapLen()
		if err != nil {
			return wrapRead(err)
		}

		if n != 1 {
			return serde.InvalidLength(n, "a single-entry variant map")
		}

		variant, err := d.dec.DecodeString()
		if err != nil {
			return wrapRead(err)
		}

		return visitor.VisitEnum(&enumAccess{d: d, variant: variant, payload: true})

	default:
		return serde.InvalidType(describeCode(c), visitor.Expecting())
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

	if err := d.dec.Skip(); err != nil {
		return wrapRead(err)
	}

	return visitor.VisitUnit()
}

// visitSeq drives the visitor through an array whose length prefix has been
// consumed, then skips whatever the visitor left unread.
func (d *Deserializer) visitSeq(n int, visitor serde.Visitor[*Deserializer]) error {
	seq := seqAccess{d: d, remaining: n}

	if err := visitor.VisitSeq(&seq); err != nil {
		return err
	}

	return seq.drain()
}

func (d *Deserializer) visitMap(n int, visitor serde.Visitor[*Deserializer]) error {
	m := mapAccess{d: d, remaining: n}

	if err := visitor.VisitMap(&m); err != nil {
		return err
	}

	return m.drain()
}

type seqAccess struct {
	d         *Deserializer
	remaining int
}

func (a *seqAccess) NextElement(target serde.Target[*Deserializer]) (bool, error) {
	if a.remaining == 0 {
		return false, nil
	}

	a.remaining--

	if err := target(a.d); err != nil {
		return false, err
	}

	return true, nil
}

// SizeHint is always known: the length prefix was read upfront.
func (a *seqAccess) SizeHint() serde.LenHint { return serde.Len(a.remaining) }

func (a *seqAccess) drain() error {
	for ; a.remaining > 0; a.remaining-- {
		if err := a.d.dec.Skip(); err != nil {
			return wrapRead(err)
		}
	}

	return nil
}

type mapAccess struct {
	d         *Deserializer
	remaining int
}

func (a *mapAccess) NextKey(target serde.Target[*Deserializer]) (bool, error) {
	if a.remaining == 0 {
		return false, nil
	}

	a.remaining--

	if err := target(a.d); err != nil {
		return false, err
	}

	return true, nil
}

func (a *mapAccess) NextValue(target serde.Target[*Deserializer]) error {
	return target(a.d)
}

func (a *mapAccess) SizeHint() serde.LenHint { return serde.Len(a.remaining) }

func (a *mapAccess) drain() error {
	for ; a.remaining > 0; a.remaining-- {
		// Key and value.
		if err := a.d.dec.Skip(); err != nil {
			return wrapRead(err)
		}

		if err := a.d.dec.Skip(); err != nil {
			return wrapRead(err)
		}
	}

	return nil
}

// enumAccess resolves a variant read by DeserializeEnum; nothing trails the
// payload in a length-prefixed map, so there is no close step.
type enumAccess struct {
	d       *Deserializer
	variant string
	payload bool
}

func (a *enumAccess) VariantIdentifier(target serde.Target[*Deserializer]) error {
	a.d.pending = a.variant
	a.d.hasPending = true
	err := target(a.d)
	a.d.hasPending = false

	return err
}

func (a *enumAccess) UnitVariant() error {
	if !a.payload {
		return nil
	}

	if err := a.d.expect(func(c byte) bool { return c == msgpcode.Nil }, unitVariantVisitor{}); err != nil {
		return err
	}

	return wrapOK(a.d.dec.DecodeNil())
}

func (a *enumAccess) NewtypeVariant(target serde.Target[*Deserializer]) error {
	if !a.payload {
		return serde.InvalidType("a unit variant", "a newtype variant")
	}

	return target(a.d)
}

func (a *enumAccess) TupleVariant(length int, visitor serde.Visitor[*Deserializer]) error {
	if !a.payload {
		return serde.InvalidType("a unit variant", "a tuple variant")
	}

	return a.d.DeserializeTuple(length, visitor)
}

func (a *enumAccess) StructVariant(_ []string, visitor serde.Visitor[*Deserializer]) error {
	if !a.payload {
		return serde.InvalidType("a unit variant", "a struct variant")
	}

	return a.d.DeserializeMap(visitor)
}

func wrapOK(err error) error {
	if err != nil {
		return wrapRead(err)
	}

	return nil
}

// unitVariantVisitor only lends its description to UnitVariant's type check.
type unitVariantVisitor struct {
	serde.VisitorBase[*Deserializer]
}

func (unitVariantVisitor) Expecting() string { return "a unit variant" }

// Unmarshal decodes one MessagePack value from data into target.
func Unmarshal(data []byte, target serde.Target[*Deserializer]) error {
	if err := target(NewDeserializer(data)); err != nil {
		return fmt.Errorf("msgpackcodec.Unmarshal: failed to deserialize value, %w", err)
	}

	return nil
}
