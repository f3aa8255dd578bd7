package erased

import (
	serde "github.com/get-serde/go-serde"
)

// Erased counterparts of the target constructors in the root package, built
// the same way as the erased value constructors: the native constructor
// instantiated at the proxy deserializer and lifted with WrapTarget.

// unwrapTarget binds an erased target back to the proxy deserializer it will
// be driven through.
func unwrapTarget(target Target) serde.Target[*ProxyDeserializer] {
	return func(de *ProxyDeserializer) error { return target.Deserialize(de.source) }
}

// ToBool returns a target decoding a boolean into dst.
func ToBool(dst *bool) Target { return WrapTarget(serde.ToBool[*ProxyDeserializer](dst)) }

// ToInt8 returns a target decoding an 8-bit signed integer into dst.
func ToInt8(dst *int8) Target { return WrapTarget(serde.ToInt8[*ProxyDeserializer](dst)) }

// ToInt16 returns a target decoding a 16-bit signed integer into dst.
func ToInt16(dst *int16) Target { return WrapTarget(serde.ToInt16[*ProxyDeserializer](dst)) }

// ToInt32 returns a target decoding a 32-bit signed integer into dst.
func ToInt32(dst *int32) Target { return WrapTarget(serde.ToInt32[*ProxyDeserializer](dst)) }

// ToInt64 returns a target decoding a 64-bit signed integer into dst.
func ToInt64(dst *int64) Target { return WrapTarget(serde.ToInt64[*ProxyDeserializer](dst)) }

// ToInt returns a target decoding a 64-bit signed integer into dst.
func ToInt(dst *int) Target { return WrapTarget(serde.ToInt[*ProxyDeserializer](dst)) }

// ToUint8 returns a target decoding an 8-bit unsigned integer into dst.
func ToUint8(dst *uint8) Target { return WrapTarget(serde.ToUint8[*ProxyDeserializer](dst)) }

// ToUint16 returns a target decoding a 16-bit unsigned integer into dst.
func ToUint16(dst *uint16) Target { return WrapTarget(serde.ToUint16[*ProxyDeserializer](dst)) }

// ToUint32 returns a target decoding a 32-bit unsigned integer into dst.
func ToUint32(dst *uint32) Target { return WrapTarget(serde.ToUint32[*ProxyDeserializer](dst)) }

// ToUint64 returns a target decoding a 64-bit unsigned integer into dst.
func ToUint64(dst *uint64) Target { return WrapTarget(serde.ToUint64[*ProxyDeserializer](dst)) }

// ToUint returns a target decoding a 64-bit unsigned integer into dst.
func ToUint(dst *uint) Target { return WrapTarget(serde.ToUint[*ProxyDeserializer](dst)) }

// ToFloat32 returns a target decoding a single-precision float into dst.
func ToFloat32(dst *float32) Target { return WrapTarget(serde.ToFloat32[*ProxyDeserializer](dst)) }

// ToFloat64 returns a target decoding a double-precision float into dst.
func ToFloat64(dst *float64) Target { return WrapTarget(serde.ToFloat64[*ProxyDeserializer](dst)) }

// ToRune returns a target decoding a single character into dst.
func ToRune(dst *rune) Target { return WrapTarget(serde.ToRune[*ProxyDeserializer](dst)) }

// ToString returns a target decoding a string into dst.
func ToString(dst *string) Target { return WrapTarget(serde.ToString[*ProxyDeserializer](dst)) }

// ToIdentifier returns a target decoding a field or variant name into dst.
func ToIdentifier(dst *string) Target {
	return WrapTarget(serde.ToIdentifier[*ProxyDeserializer](dst))
}

// ToBytes returns a target decoding raw bytes into dst.
func ToBytes(dst *[]byte) Target { return WrapTarget(serde.ToBytes[*ProxyDeserializer](dst)) }

// ToUnit returns a target accepting a unit value and decoding nothing.
func ToUnit() Target { return WrapTarget(serde.ToUnit[*ProxyDeserializer]()) }

// ToUnitStruct returns a target accepting the named unit struct.
func ToUnitStruct(name string) Target {
	return WrapTarget(serde.ToUnitStruct[*ProxyDeserializer](name))
}

// Ignore returns a target consuming and discarding the next value, whatever
// its shape.
func Ignore() Target { return WrapTarget(serde.Ignore[*ProxyDeserializer]()) }

// ToNewtypeStruct returns a target unwrapping the named single-value wrapper
// and decoding the inner value into inner.
func ToNewtypeStruct(name string, inner Target) Target {
	return WrapTarget(serde.ToNewtypeStruct[*ProxyDeserializer](name, unwrapTarget(inner)))
}

// ToSlice returns a target decoding a sequence into dst, decoding each
// element through elem.
func ToSlice[T any](dst *[]T, elem func(*T) Target) Target {
	return WrapTarget(serde.ToSlice[*ProxyDeserializer](dst, func(item *T) serde.Target[*ProxyDeserializer] {
		return unwrapTarget(elem(item))
	}))
}

// ToMap returns a target decoding a map into dst, decoding keys and values
// through key and value.
func ToMap[K comparable, V any](dst *map[K]V, key func(*K) Target, value func(*V) Target) Target {
	return WrapTarget(serde.ToMap[*ProxyDeserializer](dst,
		func(k *K) serde.Target[*ProxyDeserializer] { return unwrapTarget(key(k)) },
		func(v *V) serde.Target[*ProxyDeserializer] { return unwrapTarget(value(v)) },
	))
}

// ToOption returns a target decoding an optional value into dst: nil for an
// absent value, a freshly allocated element otherwise.
func ToOption[T any](dst **T, elem func(*T) Target) Target {
	return WrapTarget(serde.ToOption[*ProxyDeserializer](dst, func(item *T) serde.Target[*ProxyDeserializer] {
		return unwrapTarget(elem(item))
	}))
}

// VisitorBase implements every erased Visitor method by failing with an
// invalid-type error built from Desc; embed it in a visitor and override the
// methods for the shapes it accepts.
type VisitorBase struct {
	Desc string
}

// Expecting implements the erased.Visitor interface.
func (b VisitorBase) Expecting() string { return b.Desc }

// VisitBool implements the erased.Visitor interface.
func (b VisitorBase) VisitBool(bool) error { return serde.InvalidType("a boolean", b.Desc) }

// VisitInt8 implements the erased.Visitor interface.
func (b VisitorBase) VisitInt8(int8) error { return serde.InvalidType("an 8-bit integer", b.Desc) }

// VisitInt16 implements the erased.Visitor interface.
func (b VisitorBase) VisitInt16(int16) error { return serde.InvalidType("a 16-bit integer", b.Desc) }

// VisitInt32 implements the erased.Visitor interface.
func (b VisitorBase) VisitInt32(int32) error { return serde.InvalidType("a 32-bit integer", b.Desc) }

// VisitInt64 implements the erased.Visitor interface.
func (b VisitorBase) VisitInt64(int64) error { return serde.InvalidType("a 64-bit integer", b.Desc) }

// VisitUint8 implements the erased.Visitor interface.
func (b VisitorBase) VisitUint8(uint8) error {
	return serde.InvalidType("an 8-bit unsigned integer", b.Desc)
}

// VisitUint16 implements the erased.Visitor interface.
func (b VisitorBase) VisitUint16(uint16) error {
	return serde.InvalidType("a 16-bit unsigned integer", b.Desc)
}

// VisitUint32 implements the erased.Visitor interface.
func (b VisitorBase) VisitUint32(uint32) error {
	return serde.InvalidType("a 32-bit unsigned integer", b.Desc)
}

// VisitUint64 implements the erased.Visitor interface.
func (b VisitorBase) VisitUint64(uint64) error {
	return serde.InvalidType("a 64-bit unsigned integer", b.Desc)
}

// VisitFloat32 implements the erased.Visitor interface.
func (b VisitorBase) VisitFloat32(float32) error {
	return serde.InvalidType("a single-precision float", b.Desc)
}

// VisitFloat64 implements the erased.Visitor interface.
func (b VisitorBase) VisitFloat64(float64) error {
	return serde.InvalidType("a double-precision float", b.Desc)
}

// VisitRune implements the erased.Visitor interface.
func (b VisitorBase) VisitRune(rune) error { return serde.InvalidType("a character", b.Desc) }

// VisitString implements the erased.Visitor interface.
func (b VisitorBase) VisitString(string) error { return serde.InvalidType("a string", b.Desc) }

// VisitBytes implements the erased.Visitor interface.
func (b VisitorBase) VisitBytes([]byte) error { return serde.InvalidType("raw bytes", b.Desc) }

// VisitNone implements the erased.Visitor interface.
func (b VisitorBase) VisitNone() error { return serde.InvalidType("an absent optional", b.Desc) }

// VisitSome implements the erased.Visitor interface.
func (b VisitorBase) VisitSome(Deserializer) error {
	return serde.InvalidType("a present optional", b.Desc)
}

// VisitUnit implements the erased.Visitor interface.
func (b VisitorBase) VisitUnit() error { return serde.InvalidType("a unit value", b.Desc) }

// VisitNewtypeStruct implements the erased.Visitor interface.
func (b VisitorBase) VisitNewtypeStruct(Deserializer) error {
	return serde.InvalidType("a newtype struct", b.Desc)
}

// VisitSeq implements the erased.Visitor interface.
func (b VisitorBase) VisitSeq(*SeqAccess) error { return serde.InvalidType("a sequence", b.Desc) }

// VisitMap implements the erased.Visitor interface.
func (b VisitorBase) VisitMap(*MapAccess) error { return serde.InvalidType("a map", b.Desc) }

// VisitEnum implements the erased.Visitor interface.
func (b VisitorBase) VisitEnum(*EnumAccess) error {
	return serde.InvalidType("an enum variant", b.Desc)
}
