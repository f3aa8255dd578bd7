package jsoncodec

import (
	"encoding/base64"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	serde "github.com/get-serde/go-serde"
)

// Serializer writes one value per serialization as JSON, either into an
// internal buffer or straight to an io.Writer. It implements
// serde.Serializer[*Serializer].
type Serializer struct {
	stream *jsoniter.Stream

	// key is set while a map key value is being driven; only strings and
	// runes may serialize in that state.
	key bool
}

var _ serde.Serializer[*Serializer] = (*Serializer)(nil)

// NewSerializer returns a serializer accumulating output in memory; collect
// it with Bytes.
func NewSerializer() *Serializer {
	return &Serializer{stream: jsoniter.NewStream(jsoniter.ConfigDefault, nil, 512)}
}

// NewStreamSerializer returns a serializer writing to w. Call Flush once the
// value has been serialized.
func NewStreamSerializer(w io.Writer) *Serializer {
	return &Serializer{stream: jsoniter.NewStream(jsoniter.ConfigDefault, w, 512)}
}

// Bytes returns the output buffered so far.
func (s *Serializer) Bytes() []byte { return s.stream.Buffer() }

// Flush writes buffered output to the underlying writer, if any.
func (s *Serializer) Flush() error {
	if err := s.stream.Flush(); err != nil {
		return fmt.Errorf("jsoncodec.Serializer: flush failed, %w", err)
	}

	return nil
}

func (s *Serializer) fail() error {
	if err := s.stream.Error; err != nil {
		return fmt.Errorf("jsoncodec.Serializer: write failed, %w", err)
	}

	return nil
}

// value rejects non-string values in map key position.
func (s *Serializer) value() error {
	if s.key {
		return serde.InvalidType("a non-string value", "a string map key")
	}

	return nil
}

func (s *Serializer) SerializeBool(v bool) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteBool(v)

	return s.fail()
}

func (s *Serializer) SerializeInt8(v int8) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteInt8(v)

	return s.fail()
}

func (s *Serializer) SerializeInt16(v int16) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteInt16(v)

	return s.fail()
}

func (s *Serializer) SerializeInt32(v int32) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteInt32(v)

	return s.fail()
}

func (s *Serializer) SerializeInt64(v int64) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteInt64(v)

	return s.fail()
}

func (s *Serializer) SerializeUint8(v uint8) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteUint8(v)

	return s.fail()
}

func (s *Serializer) SerializeUint16(v uint16) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteUint16(v)

	return s.fail()
}

func (s *Serializer) SerializeUint32(v uint32) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteUint32(v)

	return s.fail()
}

func (s *Serializer) SerializeUint64(v uint64) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteUint64(v)

	return s.fail()
}

func (s *Serializer) SerializeFloat32(v float32) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteFloat32(v)

	return s.fail()
}

func (s *Serializer) SerializeFloat64(v float64) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteFloat64(v)

	return s.fail()
}

func (s *Serializer) SerializeRune(v rune) error {
	return s.SerializeString(string(v))
}

func (s *Serializer) SerializeString(v string) error {
	if s.key {
		s.stream.WriteObjectField(v)
	} else {
		s.stream.WriteString(v)
	}

	return s.fail()
}

func (s *Serializer) SerializeBytes(v []byte) error {
	return s.SerializeString(base64.StdEncoding.EncodeToString(v))
}

func (s *Serializer) SerializeNone() error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteNil()

	return s.fail()
}

func (s *Serializer) SerializeSome(value serde.Value[*Serializer]) error {
	if err := s.value(); err != nil {
		return err
	}

	return value(s)
}

func (s *Serializer) SerializeUnit() error {
	return s.SerializeNone()
}

func (s *Serializer) SerializeUnitStruct(string) error {
	return s.SerializeNone()
}

func (s *Serializer) SerializeUnitVariant(_ string, _ uint32, variant string) error {
	return s.SerializeString(variant)
}

func (s *Serializer) SerializeNewtypeStruct(_ string, value serde.Value[*Serializer]) error {
	if err := s.value(); err != nil {
		return err
	}

	return value(s)
}

// SerializeNewtypeVariant writes {"variant": value}.
func (s *Serializer) SerializeNewtypeVariant(_ string, _ uint32, variant string, value serde.Value[*Serializer]) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteObjectStart()
	s.stream.WriteObjectField(variant)

	if err := value(s); err != nil {
		return err
	}

	s.stream.WriteObjectEnd()

	return s.fail()
}

func (s *Serializer) SerializeSeq(serde.LenHint) (serde.Compound[*Serializer], error) {
	return s.beginArray(false)
}

func (s *Serializer) SerializeTuple(int) (serde.Compound[*Serializer], error) {
	return s.beginArray(false)
}

func (s *Serializer) SerializeTupleStruct(string, int) (serde.Compound[*Serializer], error) {
	return s.beginArray(false)
}

// SerializeTupleVariant writes {"variant": [...]}.
func (s *Serializer) SerializeTupleVariant(_ string, _ uint32, variant string, _ int) (serde.Compound[*Serializer], error) {
	if err := s.openVariant(variant); err != nil {
		return nil, err
	}

	return s.beginArray(true)
}

func (s *Serializer) SerializeMap(serde.LenHint) (serde.Compound[*Serializer], error) {
	return s.beginObject(false)
}

func (s *Serializer) SerializeStruct(string, int) (serde.Compound[*Serializer], error) {
	return s.beginObject(false)
}

// SerializeStructVariant writes {"variant": {...}}.
func (s *Serializer) SerializeStructVariant(_ string, _ uint32, variant string, _ int) (serde.Compound[*Serializer], error) {
	if err := s.openVariant(variant); err != nil {
		return nil, err
	}

	return s.beginObject(true)
}

func (s *Serializer) openVariant(variant string) error {
	if err := s.value(); err != nil {
		return err
	}

	s.stream.WriteObjectStart()
	s.stream.WriteObjectField(variant)

	return s.fail()
}

func (s *Serializer) beginArray(wrapped bool) (serde.Compound[*Serializer], error) {
	if err := s.value(); err != nil {
		return nil, err
	}

	s.stream.WriteArrayStart()
	if err := s.fail(); err != nil {
		return nil, err
	}

	return &compound{ser: s, wrapped: wrapped}, nil
}

func (s *Serializer) beginObject(wrapped bool) (serde.Compound[*Serializer], error) {
	if err := s.value(); err != nil {
		return nil, err
	}

	s.stream.WriteObjectStart()
	if err := s.fail(); err != nil {
		return nil, err
	}

	return &compound{ser: s, obj: true, wrapped: wrapped}, nil
}

// compound is an in-progress JSON array or object; wrapped compounds carry an
// extra enclosing variant object closed by End.
type compound struct {
	ser     *Serializer
	obj     bool
	wrapped bool
	n       int
}

func (c *compound) more() {
	if c.n > 0 {
		c.ser.stream.WriteMore()
	}

	c.n++
}

func (c *compound) SerializeElement(value serde.Value[*Serializer]) error {
	c.more()

	return value(c.ser)
}

func (c *compound) SerializeKey(key serde.Value[*Serializer]) error {
	c.more()

	c.ser.key = true
	err := key(c.ser)
	c.ser.key = false

	return err
}

func (c *compound) SerializeValue(value serde.Value[*Serializer]) error {
	return value(c.ser)
}

func (c *compound) SerializeField(name string, value serde.Value[*Serializer]) error {
	c.more()
	c.ser.stream.WriteObjectField(name)

	return value(c.ser)
}

// SkipField omits the field from the output entirely.
func (c *compound) SkipField(string) error { return nil }

func (c *compound) End() error {
	if c.obj {
		c.ser.stream.WriteObjectEnd()
	} else {
		c.ser.stream.WriteArrayEnd()
	}

	if c.wrapped {
		c.ser.stream.WriteObjectEnd()
	}

	return c.ser.fail()
}
