package erased

import (
	serde "github.com/get-serde/go-serde"
)

// Value is a self-contained serializable value: a concrete value paired with
// the marshal routine that describes it, erased behind a single type. Values
// bound to different concrete types can be stored in one slice and serialized
// through any Serializer.
//
// The zero Value serializes nothing and fails with a contract violation.
type Value struct {
	serialize func(ser Serializer) error
}

// Serialize describes the wrapped value to ser.
func (v Value) Serialize(ser Serializer) error {
	if v.serialize == nil {
		return serde.ContractViolation("Serialize on a zero Value")
	}

	return v.serialize(ser)
}

// NewValue erases v together with its marshal routine. The routine is the
// user's generic marshal function instantiated at *ProxySerializer, so a type
// written once against the generic family needs no extra code to participate
// in dynamic dispatch:
//
//	erased.NewValue(todo, marshalTodo[*erased.ProxySerializer])
func NewValue[T any](v T, marshal func(ser *ProxySerializer, v T) error) Value {
	return Value{serialize: func(ser Serializer) error {
		proxy := ProxySerializer{target: ser}

		return marshal(&proxy, v)
	}}
}

// Wrap lifts a native value already bound to the proxy serializer into an
// erased one.
func Wrap(value serde.Value[*ProxySerializer]) Value {
	return Value{serialize: func(ser Serializer) error {
		proxy := ProxySerializer{target: ser}

		return value(&proxy)
	}}
}

// Serialize describes value directly to a concrete backend, erasing it for
// the duration of the call.
func Serialize[B serde.Serializer[B]](value Value, backend B) error {
	return value.Serialize(NewSerializer(backend))
}

// ProxySerializer implements the generic Serializer interface over an erased
// one, closing the loop: generic marshal routines instantiated at
// *ProxySerializer run unchanged against any dynamically chosen backend.
//
// A ProxySerializer is handed to the marshal routine by NewValue or Wrap and
// is only valid for that call.
type ProxySerializer struct {
	target Serializer
	pc     proxyCompound
}

var _ serde.Serializer[*ProxySerializer] = (*ProxySerializer)(nil)

func (p *ProxySerializer) SerializeBool(v bool) error       { return p.target.SerializeBool(v) }
func (p *ProxySerializer) SerializeInt8(v int8) error       { return p.target.SerializeInt8(v) }
func (p *ProxySerializer) SerializeInt16(v int16) error     { return p.target.SerializeInt16(v) }
func (p *ProxySerializer) SerializeInt32(v int32) error     { return p.target.SerializeInt32(v) }
func (p *ProxySerializer) SerializeInt64(v int64) error     { return p.target.SerializeInt64(v) }
func (p *ProxySerializer) SerializeUint8(v uint8) error     { return p.target.SerializeUint8(v) }
func (p *ProxySerializer) SerializeUint16(v uint16) error   { return p.target.SerializeUint16(v) }
func (p *ProxySerializer) SerializeUint32(v uint32) error   { return p.target.SerializeUint32(v) }
func (p *ProxySerializer) SerializeUint64(v uint64) error   { return p.target.SerializeUint64(v) }
func (p *ProxySerializer) SerializeFloat32(v float32) error { return p.target.SerializeFloat32(v) }
func (p *ProxySerializer) SerializeFloat64(v float64) error { return p.target.SerializeFloat64(v) }
func (p *ProxySerializer) SerializeRune(v rune) error       { return p.target.SerializeRune(v) }
func (p *ProxySerializer) SerializeString(v string) error   { return p.target.SerializeString(v) }
func (p *ProxySerializer) SerializeBytes(v []byte) error    { return p.target.SerializeBytes(v) }

func (p *ProxySerializer) SerializeNone() error { return p.target.SerializeNone() }

func (p *ProxySerializer) SerializeSome(value serde.Value[*ProxySerializer]) error {
	return p.target.SerializeSome(Wrap(value))
}

func (p *ProxySerializer) SerializeUnit() error { return p.target.SerializeUnit() }

func (p *ProxySerializer) SerializeUnitStruct(name string) error {
	return p.target.SerializeUnitStruct(name)
}

func (p *ProxySerializer) SerializeUnitVariant(name string, index uint32, variant string) error {
	return p.target.SerializeUnitVariant(name, index, variant)
}

func (p *ProxySerializer) SerializeNewtypeStruct(name string, value serde.Value[*ProxySerializer]) error {
	return p.target.SerializeNewtypeStruct(name, Wrap(value))
}

func (p *ProxySerializer) SerializeNewtypeVariant(name string, index uint32, variant string, value serde.Value[*ProxySerializer]) error {
	return p.target.SerializeNewtypeVariant(name, index, variant, Wrap(value))
}

func (p *ProxySerializer) compound(c Compound, err error) (serde.Compound[*ProxySerializer], error) {
	if err != nil {
		return nil, err
	}

	p.pc.c = c

	return &p.pc, nil
}

func (p *ProxySerializer) SerializeSeq(hint serde.LenHint) (serde.Compound[*ProxySerializer], error) {
	return p.compound(p.target.SerializeSeq(hint))
}

func (p *ProxySerializer) SerializeTuple(length int) (serde.Compound[*ProxySerializer], error) {
	return p.compound(p.target.SerializeTuple(length))
}

func (p *ProxySerializer) SerializeTupleStruct(name string, length int) (serde.Compound[*ProxySerializer], error) {
	return p.compound(p.target.SerializeTupleStruct(name, length))
}

func (p *ProxySerializer) SerializeTupleVariant(name string, index uint32, variant string, length int) (serde.Compound[*ProxySerializer], error) {
	return p.compound(p.target.SerializeTupleVariant(name, index, variant, length))
}

func (p *ProxySerializer) SerializeMap(hint serde.LenHint) (serde.Compound[*ProxySerializer], error) {
	return p.compound(p.target.SerializeMap(hint))
}

func (p *ProxySerializer) SerializeStruct(name string, length int) (serde.Compound[*ProxySerializer], error) {
	return p.compound(p.target.SerializeStruct(name, length))
}

func (p *ProxySerializer) SerializeStructVariant(name string, index uint32, variant string, length int) (serde.Compound[*ProxySerializer], error) {
	return p.compound(p.target.SerializeStructVariant(name, index, variant, length))
}

// proxyCompound carries the erased token back across the generic Compound
// interface. Nested values serialize through a fresh proxy per level, so one
// slot per ProxySerializer suffices.
type proxyCompound struct {
	c Compound
}

func (pc *proxyCompound) SerializeElement(value serde.Value[*ProxySerializer]) error {
	return pc.c.SerializeElement(Wrap(value))
}

func (pc *proxyCompound) SerializeKey(key serde.Value[*ProxySerializer]) error {
	return pc.c.SerializeKey(Wrap(key))
}

func (pc *proxyCompound) SerializeValue(value serde.Value[*ProxySerializer]) error {
	return pc.c.SerializeValue(Wrap(value))
}

func (pc *proxyCompound) SerializeField(name string, value serde.Value[*ProxySerializer]) error {
	return pc.c.SerializeField(name, Wrap(value))
}

func (pc *proxyCompound) SkipField(name string) error { return pc.c.SkipField(name) }

func (pc *proxyCompound) End() error { return pc.c.End() }
