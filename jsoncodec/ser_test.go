package jsoncodec_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serde "github.com/get-serde/go-serde"
	"github.com/get-serde/go-serde/jsoncodec"
)

type S = *jsoncodec.Serializer

func marshalString(t *testing.T, value serde.Value[S]) string {
	t.Helper()

	data, err := jsoncodec.Marshal(value)
	require.NoError(t, err)

	return string(data)
}

func TestSerializer(t *testing.T) {
	t.Run("it writes scalars", func(t *testing.T) {
		testcases := []struct {
			name     string
			value    serde.Value[S]
			expected string
		}{
			{"bool", serde.Bool[S](true), "true"},
			{"int8", serde.Int8[S](-8), "-8"},
			{"int64", serde.Int64[S](100), "100"},
			{"uint64", serde.Uint64[S](18446744073709551615), "18446744073709551615"},
			{"float32", serde.Float32[S](0.5), "0.5"},
			{"float64 whole", serde.Float64[S](2), "2"},
			{"float64", serde.Float64[S](3.14), "3.14"},
			{"rune", serde.Rune[S]('n'), `"n"`},
			{"string", serde.String[S]("Hello, world"), `"Hello, world"`},
			{"string escaping", serde.String[S]("a\"b"), `"a\"b"`},
			{"bytes as base64", serde.Bytes[S]([]byte{1, 2, 3}), `"AQID"`},
		}

		for _, tc := range testcases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.expected, marshalString(t, tc.value))
			})
		}
	})

	t.Run("it writes unit shapes and optionals as null", func(t *testing.T) {
		assert.Equal(t, "null", marshalString(t, serde.Unit[S]()))
		assert.Equal(t, "null", marshalString(t, serde.UnitStruct[S]("Nothing")))
		assert.Equal(t, "null", marshalString(t, serde.None[S]()))
		assert.Equal(t, "7", marshalString(t, serde.Some(serde.Int[S](7))))
	})

	t.Run("it writes newtype wrappers transparently", func(t *testing.T) {
		assert.Equal(t, "1", marshalString(t, serde.NewtypeStruct("N", serde.Int[S](1))))
	})

	t.Run("it writes variants", func(t *testing.T) {
		assert.Equal(t, `"Unit"`, marshalString(t, serde.UnitVariant[S]("E", 0, "Unit")))

		assert.Equal(t, `{"Newtype":1}`,
			marshalString(t, serde.NewtypeVariant("E", 1, "Newtype", serde.Int[S](1))))

		assert.Equal(t, `{"Tuple":[1,2,"3"]}`, marshalString(t,
			serde.TupleVariant("E", 2, "Tuple", serde.Int[S](1), serde.Int[S](2), serde.String[S]("3"))))

		assert.Equal(t, `{"Struct":{"x":[2,6,5],"y":"Qux"}}`, marshalString(t,
			serde.StructVariant("E", 3, "Struct",
				serde.Field[S]{Name: "x", Value: serde.Seq(serde.Int[S](2), serde.Int[S](6), serde.Int[S](5))},
				serde.Field[S]{Name: "y", Value: serde.String[S]("Qux")},
			)))
	})

	t.Run("it writes heterogeneous sequences", func(t *testing.T) {
		assert.Equal(t, `[[true,false],100,"Hello, world",3.14]`, marshalString(t, serde.Seq(
			serde.Seq(serde.Bool[S](true), serde.Bool[S](false)),
			serde.Int64[S](100),
			serde.String[S]("Hello, world"),
			serde.Float64[S](3.14),
		)))
	})

	t.Run("it writes maps and structs as objects", func(t *testing.T) {
		assert.Equal(t, `{"A":"aaa","B":"bbb","C":"ccc"}`, marshalString(t, serde.Map(
			serde.Entry[S]{Key: serde.String[S]("A"), Value: serde.String[S]("aaa")},
			serde.Entry[S]{Key: serde.String[S]("B"), Value: serde.String[S]("bbb")},
			serde.Entry[S]{Key: serde.String[S]("C"), Value: serde.String[S]("ccc")},
		)))

		assert.Equal(t, `{"x":1,"y":2}`, marshalString(t, serde.Struct("Point",
			serde.Field[S]{Name: "x", Value: serde.Int[S](1)},
			serde.Field[S]{Name: "y", Value: serde.Int[S](2)},
		)))
	})

	t.Run("it accepts rune map keys", func(t *testing.T) {
		assert.Equal(t, `{"k":1}`, marshalString(t, serde.Map(
			serde.Entry[S]{Key: serde.Rune[S]('k'), Value: serde.Int[S](1)},
		)))
	})

	t.Run("it rejects non-string map keys", func(t *testing.T) {
		_, err := jsoncodec.Marshal(serde.Map(
			serde.Entry[S]{Key: serde.Int[S](1), Value: serde.String[S]("one")},
		))
		require.Error(t, err)
		assert.Equal(t, serde.KindInvalidType, serde.KindOf(err))
	})

	t.Run("it omits skipped fields", func(t *testing.T) {
		data, err := jsoncodec.Marshal(func(ser S) error {
			st, err := ser.SerializeStruct("Config", 2)
			if err != nil {
				return err
			}

			if err := st.SerializeField("kept", serde.Int[S](1)); err != nil {
				return err
			}

			if err := st.SkipField("dropped"); err != nil {
				return err
			}

			return st.End()
		})
		require.NoError(t, err)
		assert.Equal(t, `{"kept":1}`, string(data))
	})

	t.Run("it streams to a writer", func(t *testing.T) {
		var buf bytes.Buffer

		ser := jsoncodec.NewStreamSerializer(&buf)
		require.NoError(t, serde.Seq(serde.String[S]("Hello"), serde.String[S]("World"))(ser))
		require.NoError(t, ser.Flush())

		assert.Equal(t, `["Hello","World"]`, buf.String())
	})
}
