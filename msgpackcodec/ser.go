package msgpackcodec

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"

	serde "github.com/get-serde/go-serde"
)

// Serializer writes one value per serialization as MessagePack, either into
// an internal buffer or straight to an io.Writer. It implements
// serde.Serializer[*Serializer].
type Serializer struct {
	buf *bytes.Buffer
	enc *msgpack.Encoder
}

var _ serde.Serializer[*Serializer] = (*Serializer)(nil)

// NewSerializer returns a serializer accumulating output in memory; collect
// it with Bytes.
func NewSerializer() *Serializer {
	buf := new(bytes.Buffer)

	return &Serializer{buf: buf, enc: msgpack.NewEncoder(buf)}
}

// NewStreamSerializer returns a serializer writing to w.
func NewStreamSerializer(w io.Writer) *Serializer {
	return &Serializer{enc: msgpack.NewEncoder(w)}
}

// Bytes returns the output buffered so far. It is nil for a stream
// serializer.
func (s *Serializer) Bytes() []byte {
	if s.buf == nil {
		return nil
	}

	return s.buf.Bytes()
}

func wrapWrite(err error) error {
	if err != nil {
		return fmt.Errorf("msgpackcodec.Serializer: write failed, %w", err)
	}

	return nil
}

func (s *Serializer) SerializeBool(v bool) error    { return wrapWrite(s.enc.EncodeBool(v)) }
func (s *Serializer) SerializeInt8(v int8) error    { return wrapWrite(s.enc.EncodeInt8(v)) }
func (s *Serializer) SerializeInt16(v int16) error  { return wrapWrite(s.enc.EncodeInt16(v)) }
func (s *Serializer) SerializeInt32(v int32) error  { return wrapWrite(s.enc.EncodeInt32(v)) }
func (s *Serializer) SerializeInt64(v int64) error  { return wrapWrite(s.enc.EncodeInt64(v)) }
func (s *Serializer) SerializeUint8(v uint8) error  { return wrapWrite(s.enc.EncodeUint8(v)) }
func (s *Serializer) SerializeUint16(v uint16) error { return wrapWrite(s.enc.EncodeUint16(v)) }
func (s *Serializer) SerializeUint32(v uint32) error { return wrapWrite(s.enc.EncodeUint32(v)) }
func (s *Serializer) SerializeUint64(v uint64) error { return wrapWrite(s.enc.EncodeUint64(v)) }

func (s *Serializer) SerializeFloat32(v float32) error { return wrapWrite(s.enc.EncodeFloat32(v)) }
func (s *Serializer) SerializeFloat64(v float64) error { return wrapWrite(s.enc.EncodeFloat64(v)) }

func (s *Serializer) SerializeRune(v rune) error { return s.SerializeString(string(v)) }

func (s *Serializer) SerializeString(v string) error { return wrapWrite(s.enc.EncodeString(v)) }
func (s *Serializer) SerializeBytes(v []byte) error  { return wrapWrite(s.enc.EncodeBytes(v)) }

func (s *Serializer) SerializeNone() error { return wrapWrite(s.enc.EncodeNil()) }

func (s *Serializer) SerializeSome(value serde.Value[*Serializer]) error { return value(s) }

func (s *Serializer) SerializeUnit() error { return wrapWrite(s.enc.EncodeNil()) }

func (s *Serializer) SerializeUnitStruct(string) error { return wrapWrite(s.enc.EncodeNil()) }

func (s *Serializer) SerializeUnitVariant(_ string, _ uint32, variant string) error {
	return s.SerializeString(variant)
}

func (s *Serializer) SerializeNewtypeStruct(_ string, value serde.Value[*Serializer]) error {
	return value(s)
}

// SerializeNewtypeVariant writes a single-entry map {variant: value}.
func (s *Serializer) SerializeNewtypeVariant(_ string, _ uint32, variant string, value serde.Value[*Serializer]) error {
	if err := s.openVariant(variant); err != nil {
		return err
	}

	return value(s)
}

func (s *Serializer) openVariant(variant string) error {
	if err := s.enc.EncodeMapLen(1); err != nil {
		return wrapWrite(err)
	}

	return wrapWrite(s.enc.EncodeString(variant))
}

// SerializeSeq requires a known hint: the element count is a length prefix in
// this format.
func (s *Serializer) SerializeSeq(hint serde.LenHint) (serde.Compound[*Serializer], error) {
	if !hint.Known {
		return nil, serde.InvalidLength(0, "a sequence of known length")
	}

	return s.beginArray(hint.N)
}

func (s *Serializer) SerializeTuple(length int) (serde.Compound[*Serializer], error) {
	return s.beginArray(length)
}

func (s *Serializer) SerializeTupleStruct(_ string, length int) (serde.Compound[*Serializer], error) {
	return s.beginArray(length)
}

func (s *Serializer) SerializeTupleVariant(_ string, _ uint32, variant string, length int) (serde.Compound[*Serializer], error) {
	if err := s.openVariant(variant); err != nil {
		return nil, err
	}

	return s.beginArray(length)
}

// SerializeMap requires a known hint, like SerializeSeq.
func (s *Serializer) SerializeMap(hint serde.LenHint) (serde.Compound[*Serializer], error) {
	if !hint.Known {
		return nil, serde.InvalidLength(0, "a map of known length")
	}

	return s.beginMap(hint.N)
}

func (s *Serializer) SerializeStruct(_ string, length int) (serde.Compound[*Serializer], error) {
	return s.beginMap(length)
}

func (s *Serializer) SerializeStructVariant(_ string, _ uint32, variant string, length int) (serde.Compound[*Serializer], error) {
	if err := s.openVariant(variant); err != nil {
		return nil, err
	}

	return s.beginMap(length)
}

func (s *Serializer) beginArray(length int) (serde.Compound[*Serializer], error) {
	if err := s.enc.EncodeArrayLen(length); err != nil {
		return nil, wrapWrite(err)
	}

	return &compound{ser: s, expect: length}, nil
}

func (s *Serializer) beginMap(length int) (serde.Compound[*Serializer], error) {
	if err := s.enc.EncodeMapLen(length); err != nil {
		return nil, wrapWrite(err)
	}

	return &compound{ser: s, expect: length}, nil
}

// compound counts elements against the length prefix already written; End
// fails if the count does not match, since the output would be unreadable.
type compound struct {
	ser    *Serializer
	expect int
	n      int
}

func (c *compound) SerializeElement(value serde.Value[*Serializer]) error {
	c.n++

	return value(c.ser)
}

func (c *compound) SerializeKey(key serde.Value[*Serializer]) error {
	c.n++

	return key(c.ser)
}

func (c *compound) SerializeValue(value serde.Value[*Serializer]) error {
	return value(c.ser)
}

func (c *compound) SerializeField(name string, value serde.Value[*Serializer]) error {
	c.n++

	if err := c.ser.SerializeString(name); err != nil {
		return err
	}

	return value(c.ser)
}

// SkipField cannot be honored once the field count has been written.
func (c *compound) SkipField(name string) error {
	return serde.Customf("msgpackcodec: cannot skip field %q, the field count is already written", name)
}

func (c *compound) End() error {
	if c.n != c.expect {
		return serde.InvalidLength(c.n, strconv.Itoa(c.expect)+" elements")
	}

	return nil
}

// Marshal serializes one value to MessagePack.
func Marshal(value serde.Value[*Serializer]) ([]byte, error) {
	ser := NewSerializer()

	if err := value(ser); err != nil {
		return nil, fmt.Errorf("msgpackcodec.Marshal: failed to serialize value, %w", err)
	}

	return ser.buf.Bytes(), nil
}
