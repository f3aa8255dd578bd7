package serde

// Target constructors for the primitive and composite shapes of the data
// model, mirroring the Value constructors on the decoding side. Each captures
// a destination pointer and fills it when invoked.

type boolVisitor[D any] struct {
	VisitorBase[D]
	dst *bool
}

func (v *boolVisitor[D]) VisitBool(x bool) error { *v.dst = x; return nil }

// ToBool returns a target decoding a boolean into dst.
func ToBool[D Deserializer[D]](dst *bool) Target[D] {
	return func(de D) error {
		return de.DeserializeBool(&boolVisitor[D]{VisitorBase[D]{Desc: "a boolean"}, dst})
	}
}

type int8Visitor[D any] struct {
	VisitorBase[D]
	dst *int8
}

func (v *int8Visitor[D]) VisitInt8(x int8) error { *v.dst = x; return nil }

// ToInt8 returns a target decoding an 8-bit signed integer into dst.
func ToInt8[D Deserializer[D]](dst *int8) Target[D] {
	return func(de D) error {
		return de.DeserializeInt8(&int8Visitor[D]{VisitorBase[D]{Desc: "an 8-bit integer"}, dst})
	}
}

type int16Visitor[D any] struct {
	VisitorBase[D]
	dst *int16
}

func (v *int16Visitor[D]) VisitInt16(x int16) error { *v.dst = x; return nil }

// ToInt16 returns a target decoding a 16-bit signed integer into dst.
func ToInt16[D Deserializer[D]](dst *int16) Target[D] {
	return func(de D) error {
		return de.DeserializeInt16(&int16Visitor[D]{VisitorBase[D]{Desc: "a 16-bit integer"}, dst})
	}
}

type int32Visitor[D any] struct {
	VisitorBase[D]
	dst *int32
}

func (v *int32Visitor[D]) VisitInt32(x int32) error { *v.dst = x; return nil }

// ToInt32 returns a target decoding a 32-bit signed integer into dst.
func ToInt32[D Deserializer[D]](dst *int32) Target[D] {
	return func(de D) error {
		return de.DeserializeInt32(&int32Visitor[D]{VisitorBase[D]{Desc: "a 32-bit integer"}, dst})
	}
}

type int64Visitor[D any] struct {
	VisitorBase[D]
	dst *int64
}

func (v *int64Visitor[D]) VisitInt64(x int64) error { *v.dst = x; return nil }

// ToInt64 returns a target decoding a 64-bit signed integer into dst.
func ToInt64[D Deserializer[D]](dst *int64) Target[D] {
	return func(de D) error {
		return de.DeserializeInt64(&int64Visitor[D]{VisitorBase[D]{Desc: "a 64-bit integer"}, dst})
	}
}

type intVisitor[D any] struct {
	VisitorBase[D]
	dst *int
}

func (v *intVisitor[D]) VisitInt64(x int64) error { *v.dst = int(x); return nil }

// ToInt returns a target decoding a 64-bit signed integer into dst.
func ToInt[D Deserializer[D]](dst *int) Target[D] {
	return func(de D) error {
		return de.DeserializeInt64(&intVisitor[D]{VisitorBase[D]{Desc: "a 64-bit integer"}, dst})
	}
}

type uint8Visitor[D any] struct {
	VisitorBase[D]
	dst *uint8
}

func (v *uint8Visitor[D]) VisitUint8(x uint8) error { *v.dst = x; return nil }

// ToUint8 returns a target decoding an 8-bit unsigned integer into dst.
func ToUint8[D Deserializer[D]](dst *uint8) Target[D] {
	return func(de D) error {
		return de.DeserializeUint8(&uint8Visitor[D]{VisitorBase[D]{Desc: "an 8-bit unsigned integer"}, dst})
	}
}

type uint16Visitor[D any] struct {
	VisitorBase[D]
	dst *uint16
}

func (v *uint16Visitor[D]) VisitUint16(x uint16) error { *v.dst = x; return nil }

// ToUint16 returns a target decoding a 16-bit unsigned integer into dst.
func ToUint16[D Deserializer[D]](dst *uint16) Target[D] {
	return func(de D) error {
		return de.DeserializeUint16(&uint16Visitor[D]{VisitorBase[D]{Desc: "a 16-bit unsigned integer"}, dst})
	}
}

type uint32Visitor[D any] struct {
	VisitorBase[D]
	dst *uint32
}

func (v *uint32Visitor[D]) VisitUint32(x uint32) error { *v.dst = x; return nil }

// ToUint32 returns a target decoding a 32-bit unsigned integer into dst.
func ToUint32[D Deserializer[D]](dst *uint32) Target[D] {
	return func(de D) error {
		return de.DeserializeUint32(&uint32Visitor[D]{VisitorBase[D]{Desc: "a 32-bit unsigned integer"}, dst})
	}
}

type uint64Visitor[D any] struct {
	VisitorBase[D]
	dst *uint64
}

func (v *uint64Visitor[D]) VisitUint64(x uint64) error { *v.dst = x; return nil }

// ToUint64 returns a target decoding a 64-bit unsigned integer into dst.
func ToUint64[D Deserializer[D]](dst *uint64) Target[D] {
	return func(de D) error {
		return de.DeserializeUint64(&uint64Visitor[D]{VisitorBase[D]{Desc: "a 64-bit unsigned integer"}, dst})
	}
}

type uintVisitor[D any] struct {
	VisitorBase[D]
	dst *uint
}

func (v *uintVisitor[D]) VisitUint64(x uint64) error { *v.dst = uint(x); return nil }

// ToUint returns a target decoding a 64-bit unsigned integer into dst.
func ToUint[D Deserializer[D]](dst *uint) Target[D] {
	return func(de D) error {
		return de.DeserializeUint64(&uintVisitor[D]{VisitorBase[D]{Desc: "a 64-bit unsigned integer"}, dst})
	}
}

type float32Visitor[D any] struct {
	VisitorBase[D]
	dst *float32
}

func (v *float32Visitor[D]) VisitFloat32(x float32) error { *v.dst = x; return nil }

// ToFloat32 returns a target decoding a single-precision float into dst.
func ToFloat32[D Deserializer[D]](dst *float32) Target[D] {
	return func(de D) error {
		return de.DeserializeFloat32(&float32Visitor[D]{VisitorBase[D]{Desc: "a single-precision float"}, dst})
	}
}

type float64Visitor[D any] struct {
	VisitorBase[D]
	dst *float64
}

func (v *float64Visitor[D]) VisitFloat64(x float64) error { *v.dst = x; return nil }

// ToFloat64 returns a target decoding a double-precision float into dst.
func ToFloat64[D Deserializer[D]](dst *float64) Target[D] {
	return func(de D) error {
		return de.DeserializeFloat64(&float64Visitor[D]{VisitorBase[D]{Desc: "a double-precision float"}, dst})
	}
}

type runeVisitor[D any] struct {
	VisitorBase[D]
	dst *rune
}

func (v *runeVisitor[D]) VisitRune(x rune) error { *v.dst = x; return nil }

// ToRune returns a target decoding a single character into dst.
func ToRune[D Deserializer[D]](dst *rune) Target[D] {
	return func(de D) error {
		return de.DeserializeRune(&runeVisitor[D]{VisitorBase[D]{Desc: "a character"}, dst})
	}
}

type stringVisitor[D any] struct {
	VisitorBase[D]
	dst *string
}

func (v *stringVisitor[D]) VisitString(x string) error { *v.dst = x; return nil }

// ToString returns a target decoding a string into dst.
func ToString[D Deserializer[D]](dst *string) Target[D] {
	return func(de D) error {
		return de.DeserializeString(&stringVisitor[D]{VisitorBase[D]{Desc: "a string"}, dst})
	}
}

// ToIdentifier returns a target decoding a field or variant name into dst.
func ToIdentifier[D Deserializer[D]](dst *string) Target[D] {
	return func(de D) error {
		return de.DeserializeIdentifier(&stringVisitor[D]{VisitorBase[D]{Desc: "an identifier"}, dst})
	}
}

type bytesVisitor[D any] struct {
	VisitorBase[D]
	dst *[]byte
}

func (v *bytesVisitor[D]) VisitBytes(x []byte) error {
	// The backend may reuse its buffer after the visit returns.
	*v.dst = append([]byte(nil), x...)
	return nil
}

// ToBytes returns a target decoding raw bytes into dst. The destination
// always receives its own copy.
func ToBytes[D Deserializer[D]](dst *[]byte) Target[D] {
	return func(de D) error {
		return de.DeserializeBytes(&bytesVisitor[D]{VisitorBase[D]{Desc: "raw bytes"}, dst})
	}
}

type unitVisitor[D any] struct {
	VisitorBase[D]
}

func (v *unitVisitor[D]) VisitUnit() error { return nil }

// ToUnit returns a target accepting a unit value and decoding nothing.
func ToUnit[D Deserializer[D]]() Target[D] {
	return func(de D) error {
		return de.DeserializeUnit(&unitVisitor[D]{VisitorBase[D]{Desc: "a unit value"}})
	}
}

// ToUnitStruct returns a target accepting the named unit struct.
func ToUnitStruct[D Deserializer[D]](name string) Target[D] {
	return func(de D) error {
		return de.DeserializeUnitStruct(name, &unitVisitor[D]{VisitorBase[D]{Desc: "unit struct " + name}})
	}
}

// Ignore returns a target consuming and discarding the next value, whatever
// its shape.
func Ignore[D Deserializer[D]]() Target[D] {
	return func(de D) error {
		return de.DeserializeIgnoredAny(&unitVisitor[D]{VisitorBase[D]{Desc: "any value"}})
	}
}

type newtypeVisitor[D any] struct {
	VisitorBase[D]
	inner Target[D]
}

func (v *newtypeVisitor[D]) VisitNewtypeStruct(de D) error { return v.inner(de) }

// ToNewtypeStruct returns a target unwrapping the named single-value wrapper
// and decoding the inner value into inner.
func ToNewtypeStruct[D Deserializer[D]](name string, inner Target[D]) Target[D] {
	return func(de D) error {
		return de.DeserializeNewtypeStruct(name, &newtypeVisitor[D]{VisitorBase[D]{Desc: "newtype struct " + name}, inner})
	}
}

type sliceVisitor[D, T any] struct {
	VisitorBase[D]
	dst  *[]T
	elem func(*T) Target[D]
}

func (v *sliceVisitor[D, T]) VisitSeq(seq SeqAccess[D]) error {
	var out []T
	if hint := seq.SizeHint(); hint.Known {
		out = make([]T, 0, hint.N)
	}

	for {
		var item T

		ok, err := seq.NextElement(v.elem(&item))
		if err != nil {
			return err
		}

		if !ok {
			break
		}

		out = append(out, item)
	}

	*v.dst = out

	return nil
}

// ToSlice returns a target decoding a sequence into dst, decoding each
// element through elem.
func ToSlice[D Deserializer[D], T any](dst *[]T, elem func(*T) Target[D]) Target[D] {
	return func(de D) error {
		return de.DeserializeSeq(&sliceVisitor[D, T]{VisitorBase[D]{Desc: "a sequence"}, dst, elem})
	}
}

type mapVisitor[D any, K comparable, V any] struct {
	VisitorBase[D]
	dst   *map[K]V
	key   func(*K) Target[D]
	value func(*V) Target[D]
}

func (v *mapVisitor[D, K, V]) VisitMap(m MapAccess[D]) error {
	out := make(map[K]V)
	if hint := m.SizeHint(); hint.Known {
		out = make(map[K]V, hint.N)
	}

	for {
		var k K

		ok, err := m.NextKey(v.key(&k))
		if err != nil {
			return err
		}

		if !ok {
			break
		}

		var val V
		if err := m.NextValue(v.value(&val)); err != nil {
			return err
		}

		out[k] = val
	}

	*v.dst = out

	return nil
}

// ToMap returns a target decoding a map into dst, decoding keys and values
// through key and value.
func ToMap[D Deserializer[D], K comparable, V any](dst *map[K]V, key func(*K) Target[D], value func(*V) Target[D]) Target[D] {
	return func(de D) error {
		return de.DeserializeMap(&mapVisitor[D, K, V]{VisitorBase[D]{Desc: "a map"}, dst, key, value})
	}
}

type optionVisitor[D, T any] struct {
	VisitorBase[D]
	dst  **T
	elem func(*T) Target[D]
}

func (v *optionVisitor[D, T]) VisitNone() error { *v.dst = nil; return nil }

func (v *optionVisitor[D, T]) VisitSome(de D) error {
	item := new(T)
	if err := v.elem(item)(de); err != nil {
		return err
	}

	*v.dst = item

	return nil
}

// ToOption returns a target decoding an optional value into dst: nil for an
// absent value, a freshly allocated element otherwise.
func ToOption[D Deserializer[D], T any](dst **T, elem func(*T) Target[D]) Target[D] {
	return func(de D) error {
		return de.DeserializeOption(&optionVisitor[D, T]{VisitorBase[D]{Desc: "an optional value"}, dst, elem})
	}
}
