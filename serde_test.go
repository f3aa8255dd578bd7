package serde_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serde "github.com/get-serde/go-serde"
	"github.com/get-serde/go-serde/jsoncodec"
	"github.com/get-serde/go-serde/msgpackcodec"
)

// point is the user-defined type shared by the tests: one generic marshal and
// unmarshal routine each, instantiated per backend.
type point struct {
	X int32
	Y int32
}

var pointFields = []string{"x", "y"}

func marshalPoint[S serde.Serializer[S]](ser S, p point) error {
	return serde.Struct[S]("Point",
		serde.Field[S]{Name: "x", Value: serde.Int32[S](p.X)},
		serde.Field[S]{Name: "y", Value: serde.Int32[S](p.Y)},
	)(ser)
}

type pointVisitor[D serde.Deserializer[D]] struct {
	serde.VisitorBase[D]
	dst *point
}

func (v *pointVisitor[D]) VisitMap(m serde.MapAccess[D]) error {
	for {
		var field string

		ok, err := m.NextKey(serde.ToIdentifier[D](&field))
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		switch field {
		case "x":
			err = m.NextValue(serde.ToInt32[D](&v.dst.X))
		case "y":
			err = m.NextValue(serde.ToInt32[D](&v.dst.Y))
		default:
			err = serde.UnknownField(field, pointFields)
		}

		if err != nil {
			return err
		}
	}
}

func unmarshalPoint[D serde.Deserializer[D]](de D, p *point) error {
	return de.DeserializeStruct("Point", pointFields, &pointVisitor[D]{serde.VisitorBase[D]{Desc: "struct Point"}, p})
}

func TestGenericRoundTrip(t *testing.T) {
	p := point{X: 3, Y: -7}

	t.Run("it round-trips through JSON", func(t *testing.T) {
		data, err := jsoncodec.Marshal(func(ser *jsoncodec.Serializer) error {
			return marshalPoint(ser, p)
		})
		require.NoError(t, err)
		assert.Equal(t, `{"x":3,"y":-7}`, string(data))

		var decoded point
		err = jsoncodec.Unmarshal(data, func(de *jsoncodec.Deserializer) error {
			return unmarshalPoint(de, &decoded)
		})
		require.NoError(t, err)
		assert.Equal(t, p, decoded)
	})

	t.Run("it round-trips through MessagePack", func(t *testing.T) {
		data, err := msgpackcodec.Marshal(func(ser *msgpackcodec.Serializer) error {
			return marshalPoint(ser, p)
		})
		require.NoError(t, err)

		var decoded point
		err = msgpackcodec.Unmarshal(data, func(de *msgpackcodec.Deserializer) error {
			return unmarshalPoint(de, &decoded)
		})
		require.NoError(t, err)
		assert.Equal(t, p, decoded)
	})
}

func TestValueConstructors(t *testing.T) {
	marshal := func(t *testing.T, value serde.Value[*jsoncodec.Serializer]) string {
		t.Helper()

		data, err := jsoncodec.Marshal(value)
		require.NoError(t, err)

		return string(data)
	}

	type S = *jsoncodec.Serializer

	t.Run("it serializes primitives", func(t *testing.T) {
		assert.Equal(t, "true", marshal(t, serde.Bool[S](true)))
		assert.Equal(t, "-42", marshal(t, serde.Int64[S](-42)))
		assert.Equal(t, "42", marshal(t, serde.Uint16[S](42)))
		assert.Equal(t, "3.14", marshal(t, serde.Float64[S](3.14)))
		assert.Equal(t, `"a"`, marshal(t, serde.Rune[S]('a')))
		assert.Equal(t, `"Hello, world"`, marshal(t, serde.String[S]("Hello, world")))
	})

	t.Run("it serializes composites", func(t *testing.T) {
		assert.Equal(t, "[1,2,3]", marshal(t, serde.Seq(
			serde.Int[S](1), serde.Int[S](2), serde.Int[S](3),
		)))

		assert.Equal(t, `[1,"two"]`, marshal(t, serde.Tuple(
			serde.Int[S](1), serde.String[S]("two"),
		)))

		assert.Equal(t, `{"A":"aaa","B":"bbb","C":"ccc"}`, marshal(t, serde.Map(
			serde.Entry[S]{Key: serde.String[S]("A"), Value: serde.String[S]("aaa")},
			serde.Entry[S]{Key: serde.String[S]("B"), Value: serde.String[S]("bbb")},
			serde.Entry[S]{Key: serde.String[S]("C"), Value: serde.String[S]("ccc")},
		)))

		assert.Equal(t, `{"x":1,"y":2}`, marshal(t, serde.Struct("Point",
			serde.Field[S]{Name: "x", Value: serde.Int[S](1)},
			serde.Field[S]{Name: "y", Value: serde.Int[S](2)},
		)))
	})

	t.Run("it serializes slices and maps of Go values", func(t *testing.T) {
		assert.Equal(t, `["a","b"]`, marshal(t, serde.Slice([]string{"a", "b"}, serde.String[S])))

		assert.Equal(t, `{"k":1}`, marshal(t, serde.MapOf(
			map[string]int{"k": 1}, serde.String[S], serde.Int[S],
		)))
	})

	t.Run("it serializes optionals and unit shapes", func(t *testing.T) {
		assert.Equal(t, "null", marshal(t, serde.None[S]()))
		assert.Equal(t, "1", marshal(t, serde.Some(serde.Int[S](1))))
		assert.Equal(t, "null", marshal(t, serde.Unit[S]()))
		assert.Equal(t, "null", marshal(t, serde.UnitStruct[S]("Nothing")))
	})

	t.Run("it serializes variants", func(t *testing.T) {
		assert.Equal(t, `"Unit"`, marshal(t, serde.UnitVariant[S]("E", 0, "Unit")))

		assert.Equal(t, `{"Newtype":"Foo"}`, marshal(t,
			serde.NewtypeVariant("E", 1, "Newtype", serde.String[S]("Foo"))))

		assert.Equal(t, `{"Tuple":[1,2]}`, marshal(t,
			serde.TupleVariant("E", 2, "Tuple", serde.Int[S](1), serde.Int[S](2))))

		assert.Equal(t, `{"Struct":{"x":5}}`, marshal(t,
			serde.StructVariant("E", 3, "Struct", serde.Field[S]{Name: "x", Value: serde.Int[S](5)})))
	})
}

func TestTargetConstructors(t *testing.T) {
	type D = *jsoncodec.Deserializer

	t.Run("it decodes primitives", func(t *testing.T) {
		var b bool
		require.NoError(t, jsoncodec.Unmarshal([]byte("true"), serde.ToBool[D](&b)))
		assert.True(t, b)

		var n int64
		require.NoError(t, jsoncodec.Unmarshal([]byte("-42"), serde.ToInt64[D](&n)))
		assert.Equal(t, int64(-42), n)

		var f float64
		require.NoError(t, jsoncodec.Unmarshal([]byte("3.14"), serde.ToFloat64[D](&f)))
		assert.Equal(t, 3.14, f)

		var r rune
		require.NoError(t, jsoncodec.Unmarshal([]byte(`"a"`), serde.ToRune[D](&r)))
		assert.Equal(t, 'a', r)

		var s string
		require.NoError(t, jsoncodec.Unmarshal([]byte(`"Hello"`), serde.ToString[D](&s)))
		assert.Equal(t, "Hello", s)
	})

	t.Run("it decodes sequences into slices", func(t *testing.T) {
		var out []int
		require.NoError(t, jsoncodec.Unmarshal([]byte("[3,1,4]"), serde.ToSlice(&out, serde.ToInt[D])))
		assert.Equal(t, []int{3, 1, 4}, out)
	})

	t.Run("it decodes nested sequences", func(t *testing.T) {
		var out [][]bool
		target := serde.ToSlice(&out, func(row *[]bool) serde.Target[D] {
			return serde.ToSlice(row, serde.ToBool[D])
		})
		require.NoError(t, jsoncodec.Unmarshal([]byte("[[true],[false,true]]"), target))
		assert.Equal(t, [][]bool{{true}, {false, true}}, out)
	})

	t.Run("it decodes maps", func(t *testing.T) {
		var out map[string]string
		require.NoError(t, jsoncodec.Unmarshal(
			[]byte(`{"A":"aaa","B":"bbb"}`),
			serde.ToMap(&out, serde.ToString[D], serde.ToString[D]),
		))
		assert.Equal(t, map[string]string{"A": "aaa", "B": "bbb"}, out)
	})

	t.Run("it decodes optionals", func(t *testing.T) {
		var out *int

		require.NoError(t, jsoncodec.Unmarshal([]byte("null"), serde.ToOption(&out, serde.ToInt[D])))
		assert.Nil(t, out)

		require.NoError(t, jsoncodec.Unmarshal([]byte("7"), serde.ToOption(&out, serde.ToInt[D])))
		require.NotNil(t, out)
		assert.Equal(t, 7, *out)
	})

	t.Run("it ignores values of any shape", func(t *testing.T) {
		require.NoError(t, jsoncodec.Unmarshal([]byte(`{"deep":[1,{"nested":true}]}`), serde.Ignore[D]()))
	})
}

func TestVisitorBase(t *testing.T) {
	type D = *jsoncodec.Deserializer

	t.Run("it rejects unexpected shapes with an invalid-type error", func(t *testing.T) {
		var b bool

		err := jsoncodec.Unmarshal([]byte(`"not a bool"`), serde.ToBool[D](&b))
		require.Error(t, err)
		assert.Equal(t, serde.KindInvalidType, serde.KindOf(err))
		assert.ErrorContains(t, err, "expected a boolean")
	})

	t.Run("it names the visitor's expectation", func(t *testing.T) {
		var out []int

		err := jsoncodec.Unmarshal([]byte("12"), serde.ToSlice(&out, serde.ToInt[D]))
		require.Error(t, err)
		assert.Equal(t, serde.KindInvalidType, serde.KindOf(err))
		assert.ErrorContains(t, err, "a number, expected a sequence")
	})
}
