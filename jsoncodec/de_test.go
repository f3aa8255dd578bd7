package jsoncodec_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serde "github.com/get-serde/go-serde"
	"github.com/get-serde/go-serde/jsoncodec"
)

type D = *jsoncodec.Deserializer

// enumValue mirrors a four-variant union: Unit, Newtype(int32),
// Tuple(int32, int32) and Struct{x int32}.
type enumValue struct {
	variant string
	newtype int32
	tuple   [2]int32
	x       int32
}

var enumVariants = []string{"Unit", "Newtype", "Tuple", "Struct"}

type enumVisitor[Dz serde.Deserializer[Dz]] struct {
	serde.VisitorBase[Dz]
	dst *enumValue
}

func (v *enumVisitor[Dz]) VisitEnum(e serde.EnumAccess[Dz]) error {
	if err := e.VariantIdentifier(serde.ToIdentifier[Dz](&v.dst.variant)); err != nil {
		return err
	}

	switch v.dst.variant {
	case "Unit":
		return e.UnitVariant()
	case "Newtype":
		return e.NewtypeVariant(serde.ToInt32[Dz](&v.dst.newtype))
	case "Tuple":
		return e.TupleVariant(2, &tupleVisitor[Dz]{serde.VisitorBase[Dz]{Desc: "a pair of integers"}, &v.dst.tuple})
	case "Struct":
		return e.StructVariant([]string{"x"}, &structVariantVisitor[Dz]{serde.VisitorBase[Dz]{Desc: "variant Struct"}, v.dst})
	default:
		return serde.UnknownVariant(v.dst.variant, enumVariants)
	}
}

type tupleVisitor[Dz serde.Deserializer[Dz]] struct {
	serde.VisitorBase[Dz]
	dst *[2]int32
}

func (v *tupleVisitor[Dz]) VisitSeq(seq serde.SeqAccess[Dz]) error {
	for i := range v.dst {
		ok, err := seq.NextElement(serde.ToInt32[Dz](&v.dst[i]))
		if err != nil {
			return err
		}

		if !ok {
			return serde.InvalidLength(i, "a pair of integers")
		}
	}

	return nil
}

type structVariantVisitor[Dz serde.Deserializer[Dz]] struct {
	serde.VisitorBase[Dz]
	dst *enumValue
}

func (v *structVariantVisitor[Dz]) VisitMap(m serde.MapAccess[Dz]) error {
	for {
		var field string

		ok, err := m.NextKey(serde.ToIdentifier[Dz](&field))
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		switch field {
		case "x":
			err = m.NextValue(serde.ToInt32[Dz](&v.dst.x))
		default:
			err = serde.UnknownField(field, []string{"x"})
		}

		if err != nil {
			return err
		}
	}
}

func unmarshalEnum[Dz serde.Deserializer[Dz]](de Dz, dst *enumValue) error {
	return de.DeserializeEnum("E", enumVariants, &enumVisitor[Dz]{serde.VisitorBase[Dz]{Desc: "enum E"}, dst})
}

func TestDeserializeEnum(t *testing.T) {
	decode := func(t *testing.T, input string) (enumValue, error) {
		t.Helper()

		var out enumValue
		err := jsoncodec.Unmarshal([]byte(input), func(de D) error {
			return unmarshalEnum(de, &out)
		})

		return out, err
	}

	t.Run("it decodes a unit variant from a bare string", func(t *testing.T) {
		out, err := decode(t, `"Unit"`)
		require.NoError(t, err)
		assert.Equal(t, "Unit", out.variant)
	})

	t.Run("it decodes a newtype variant", func(t *testing.T) {
		out, err := decode(t, `{"Newtype":1}`)
		require.NoError(t, err)
		assert.Equal(t, "Newtype", out.variant)
		assert.Equal(t, int32(1), out.newtype)
	})

	t.Run("it decodes a tuple variant", func(t *testing.T) {
		out, err := decode(t, `{"Tuple":[3,4]}`)
		require.NoError(t, err)
		assert.Equal(t, "Tuple", out.variant)
		assert.Equal(t, [2]int32{3, 4}, out.tuple)
	})

	t.Run("it decodes a struct variant", func(t *testing.T) {
		out, err := decode(t, `{"Struct":{"x":5}}`)
		require.NoError(t, err)
		assert.Equal(t, "Struct", out.variant)
		assert.Equal(t, int32(5), out.x)
	})

	t.Run("it rejects unknown variants", func(t *testing.T) {
		_, err := decode(t, `"Quux"`)
		assert.Equal(t, serde.KindUnknownVariant, serde.KindOf(err))
	})

	t.Run("it rejects variant objects with extra entries", func(t *testing.T) {
		_, err := decode(t, `{"Newtype":1,"Extra":2}`)
		assert.Equal(t, serde.KindInvalidValue, serde.KindOf(err))
	})

	t.Run("it rejects data on a unit variant", func(t *testing.T) {
		_, err := decode(t, `{"Unit":1}`)
		assert.Equal(t, serde.KindInvalidType, serde.KindOf(err))
	})

	t.Run("it rejects a tuple of the wrong length", func(t *testing.T) {
		_, err := decode(t, `{"Tuple":[3]}`)
		assert.Equal(t, serde.KindInvalidLength, serde.KindOf(err))
	})
}

// scalarProbe records which scalar visit DeserializeAny dispatched.
type scalarProbe[Dz serde.Deserializer[Dz]] struct {
	serde.VisitorBase[Dz]
	got string
}

func (v *scalarProbe[Dz]) VisitBool(x bool) error       { v.got = fmt.Sprintf("bool:%v", x); return nil }
func (v *scalarProbe[Dz]) VisitInt64(x int64) error     { v.got = fmt.Sprintf("int64:%d", x); return nil }
func (v *scalarProbe[Dz]) VisitFloat64(x float64) error { v.got = fmt.Sprintf("float64:%v", x); return nil }
func (v *scalarProbe[Dz]) VisitString(x string) error   { v.got = "string:" + x; return nil }
func (v *scalarProbe[Dz]) VisitUnit() error             { v.got = "unit"; return nil }

func TestDeserializeAny(t *testing.T) {
	probe := func(t *testing.T, input string) string {
		t.Helper()

		v := &scalarProbe[D]{VisitorBase: serde.VisitorBase[D]{Desc: "any scalar"}}
		require.NoError(t, jsoncodec.NewDeserializer([]byte(input)).DeserializeAny(v))

		return v.got
	}

	t.Run("it distinguishes integers from floats", func(t *testing.T) {
		assert.Equal(t, "int64:42", probe(t, "42"))
		assert.Equal(t, "float64:2.5", probe(t, "2.5"))
	})

	t.Run("it dispatches the remaining scalars", func(t *testing.T) {
		assert.Equal(t, "bool:true", probe(t, "true"))
		assert.Equal(t, "string:hi", probe(t, `"hi"`))
		assert.Equal(t, "unit", probe(t, "null"))
	})
}

func TestDeserializer(t *testing.T) {
	t.Run("it reads from an io.Reader", func(t *testing.T) {
		var out []string

		de := jsoncodec.NewReaderDeserializer(strings.NewReader(`["Hello","World"]`))
		require.NoError(t, serde.ToSlice(&out, serde.ToString[D])(de))
		assert.Equal(t, []string{"Hello", "World"}, out)
	})

	t.Run("it decodes base64 strings into bytes", func(t *testing.T) {
		var out []byte

		require.NoError(t, jsoncodec.Unmarshal([]byte(`"AQID"`), serde.ToBytes[D](&out)))
		assert.Equal(t, []byte{1, 2, 3}, out)
	})

	t.Run("it rejects non-base64 strings for bytes", func(t *testing.T) {
		var out []byte

		err := jsoncodec.Unmarshal([]byte(`"%%%"`), serde.ToBytes[D](&out))
		assert.Equal(t, serde.KindInvalidValue, serde.KindOf(err))
	})

	t.Run("it rejects multi-character strings for runes", func(t *testing.T) {
		var out rune

		err := jsoncodec.Unmarshal([]byte(`"ab"`), serde.ToRune[D](&out))
		assert.Equal(t, serde.KindInvalidValue, serde.KindOf(err))
	})

	t.Run("it surfaces number overflow as an error", func(t *testing.T) {
		var out int8

		err := jsoncodec.Unmarshal([]byte("300"), serde.ToInt8[D](&out))
		require.Error(t, err)
		assert.Equal(t, serde.KindCustom, serde.KindOf(err))
	})

	t.Run("it skips elements a visitor left unread", func(t *testing.T) {
		// The tuple visitor reads two of four elements; the trailing two
		// must still be consumed so the enclosing object closes cleanly.
		var out enumValue

		err := jsoncodec.Unmarshal([]byte(`{"Tuple":[1,2,3,4]}`), func(de D) error {
			return unmarshalEnum(de, &out)
		})
		require.NoError(t, err)
		assert.Equal(t, [2]int32{1, 2}, out.tuple)
	})
}
