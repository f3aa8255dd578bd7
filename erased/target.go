package erased

import (
	serde "github.com/get-serde/go-serde"
)

// ProxyDeserializer implements the generic Deserializer interface over an
// erased one: generic unmarshal routines instantiated at *ProxyDeserializer
// run unchanged against any dynamically chosen backend.
//
// A ProxyDeserializer is handed to the unmarshal routine by NewTarget or
// WrapTarget and is only valid for that call.
type ProxyDeserializer struct {
	source Deserializer
}

var _ serde.Deserializer[*ProxyDeserializer] = (*ProxyDeserializer)(nil)

// proxyVisitor presents a native visitor bound to the proxy deserializer as
// an erased one, re-proxying the structure the erased side reports.
type proxyVisitor struct {
	v serde.Visitor[*ProxyDeserializer]
}

func (pv proxyVisitor) Expecting() string { return pv.v.Expecting() }

func (pv proxyVisitor) VisitBool(v bool) error       { return pv.v.VisitBool(v) }
func (pv proxyVisitor) VisitInt8(v int8) error       { return pv.v.VisitInt8(v) }
func (pv proxyVisitor) VisitInt16(v int16) error     { return pv.v.VisitInt16(v) }
func (pv proxyVisitor) VisitInt32(v int32) error     { return pv.v.VisitInt32(v) }
func (pv proxyVisitor) VisitInt64(v int64) error     { return pv.v.VisitInt64(v) }
func (pv proxyVisitor) VisitUint8(v uint8) error     { return pv.v.VisitUint8(v) }
func (pv proxyVisitor) VisitUint16(v uint16) error   { return pv.v.VisitUint16(v) }
func (pv proxyVisitor) VisitUint32(v uint32) error   { return pv.v.VisitUint32(v) }
func (pv proxyVisitor) VisitUint64(v uint64) error   { return pv.v.VisitUint64(v) }
func (pv proxyVisitor) VisitFloat32(v float32) error { return pv.v.VisitFloat32(v) }
func (pv proxyVisitor) VisitFloat64(v float64) error { return pv.v.VisitFloat64(v) }
func (pv proxyVisitor) VisitRune(v rune) error       { return pv.v.VisitRune(v) }
func (pv proxyVisitor) VisitString(v string) error   { return pv.v.VisitString(v) }
func (pv proxyVisitor) VisitBytes(v []byte) error    { return pv.v.VisitBytes(v) }

func (pv proxyVisitor) VisitNone() error { return pv.v.VisitNone() }

func (pv proxyVisitor) VisitSome(de Deserializer) error {
	proxy := ProxyDeserializer{source: de}

	return pv.v.VisitSome(&proxy)
}

func (pv proxyVisitor) VisitUnit() error { return pv.v.VisitUnit() }

func (pv proxyVisitor) VisitNewtypeStruct(de Deserializer) error {
	proxy := ProxyDeserializer{source: de}

	return pv.v.VisitNewtypeStruct(&proxy)
}

func (pv proxyVisitor) VisitSeq(seq *SeqAccess) error {
	return pv.v.VisitSeq(proxySeqAccess{seq: seq})
}

func (pv proxyVisitor) VisitMap(m *MapAccess) error {
	return pv.v.VisitMap(proxyMapAccess{m: m})
}

func (pv proxyVisitor) VisitEnum(e *EnumAccess) error {
	return pv.v.VisitEnum(proxyEnumAccess{e: e})
}

type proxySeqAccess struct {
	seq *SeqAccess
}

func (ps proxySeqAccess) NextElement(target serde.Target[*ProxyDeserializer]) (bool, error) {
	return ps.seq.NextElement(WrapTarget(target))
}

func (ps proxySeqAccess) SizeHint() serde.LenHint { return ps.seq.SizeHint() }

type proxyMapAccess struct {
	m *MapAccess
}

func (pm proxyMapAccess) NextKey(target serde.Target[*ProxyDeserializer]) (bool, error) {
	return pm.m.NextKey(WrapTarget(target))
}

func (pm proxyMapAccess) NextValue(target serde.Target[*ProxyDeserializer]) error {
	return pm.m.NextValue(WrapTarget(target))
}

func (pm proxyMapAccess) SizeHint() serde.LenHint { return pm.m.SizeHint() }

type proxyEnumAccess struct {
	e *EnumAccess
}

func (pe proxyEnumAccess) VariantIdentifier(target serde.Target[*ProxyDeserializer]) error {
	return pe.e.VariantIdentifier(WrapTarget(target))
}

func (pe proxyEnumAccess) UnitVariant() error { return pe.e.UnitVariant() }

func (pe proxyEnumAccess) NewtypeVariant(target serde.Target[*ProxyDeserializer]) error {
	return pe.e.NewtypeVariant(WrapTarget(target))
}

func (pe proxyEnumAccess) TupleVariant(length int, visitor serde.Visitor[*ProxyDeserializer]) error {
	return pe.e.TupleVariant(length, proxyVisitor{v: visitor})
}

func (pe proxyEnumAccess) StructVariant(fields []string, visitor serde.Visitor[*ProxyDeserializer]) error {
	return pe.e.StructVariant(fields, proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeAny(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeAny(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeBool(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeBool(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeInt8(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeInt8(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeInt16(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeInt16(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeInt32(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeInt32(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeInt64(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeInt64(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeUint8(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeUint8(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeUint16(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeUint16(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeUint32(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeUint32(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeUint64(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeUint64(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeFloat32(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeFloat32(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeFloat64(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeFloat64(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeRune(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeRune(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeString(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeString(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeBytes(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeBytes(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeOption(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeOption(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeUnit(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeUnit(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeUnitStruct(name string, visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeUnitStruct(name, proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeNewtypeStruct(name string, visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeNewtypeStruct(name, proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeSeq(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeSeq(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeTuple(length int, visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeTuple(length, proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeTupleStruct(name string, length int, visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeTupleStruct(name, length, proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeMap(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeMap(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeStruct(name string, fields []string, visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeStruct(name, fields, proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeEnum(name string, variants []string, visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeEnum(name, variants, proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeIdentifier(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeIdentifier(proxyVisitor{v: visitor})
}

func (p *ProxyDeserializer) DeserializeIgnoredAny(visitor serde.Visitor[*ProxyDeserializer]) error {
	return p.source.DeserializeIgnoredAny(proxyVisitor{v: visitor})
}
