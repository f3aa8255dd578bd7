package msgpackcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serde "github.com/get-serde/go-serde"
	"github.com/get-serde/go-serde/msgpackcodec"
)

type (
	S = *msgpackcodec.Serializer
	D = *msgpackcodec.Deserializer
)

func roundTrip(t *testing.T, value serde.Value[S], target serde.Target[D]) {
	t.Helper()

	data, err := msgpackcodec.Marshal(value)
	require.NoError(t, err)
	require.NoError(t, msgpackcodec.Unmarshal(data, target))
}

func TestRoundTrip(t *testing.T) {
	t.Run("it round-trips scalars", func(t *testing.T) {
		var (
			b bool
			n int64
			u uint32
			f float64
			r rune
			s string
		)

		roundTrip(t, serde.Bool[S](true), serde.ToBool[D](&b))
		assert.True(t, b)

		roundTrip(t, serde.Int64[S](-100), serde.ToInt64[D](&n))
		assert.Equal(t, int64(-100), n)

		roundTrip(t, serde.Uint32[S](42), serde.ToUint32[D](&u))
		assert.Equal(t, uint32(42), u)

		roundTrip(t, serde.Float64[S](3.14), serde.ToFloat64[D](&f))
		assert.Equal(t, 3.14, f)

		roundTrip(t, serde.Rune[S]('λ'), serde.ToRune[D](&r))
		assert.Equal(t, 'λ', r)

		roundTrip(t, serde.String[S]("Hello, world"), serde.ToString[D](&s))
		assert.Equal(t, "Hello, world", s)
	})

	t.Run("it round-trips bytes", func(t *testing.T) {
		var out []byte

		roundTrip(t, serde.Bytes[S]([]byte{0xca, 0xfe}), serde.ToBytes[D](&out))
		assert.Equal(t, []byte{0xca, 0xfe}, out)
	})

	t.Run("it round-trips sequences", func(t *testing.T) {
		var out []int

		roundTrip(t, serde.Slice([]int{3, 1, 4}, serde.Int[S]), serde.ToSlice(&out, serde.ToInt[D]))
		assert.Equal(t, []int{3, 1, 4}, out)
	})

	t.Run("it round-trips maps with non-string keys", func(t *testing.T) {
		var out map[int64]string

		roundTrip(t,
			serde.Map(serde.Entry[S]{Key: serde.Int64[S](7), Value: serde.String[S]("seven")}),
			serde.ToMap(&out, serde.ToInt64[D], serde.ToString[D]),
		)
		assert.Equal(t, map[int64]string{7: "seven"}, out)
	})

	t.Run("it round-trips optionals", func(t *testing.T) {
		var out *int

		roundTrip(t, serde.None[S](), serde.ToOption(&out, serde.ToInt[D]))
		assert.Nil(t, out)

		roundTrip(t, serde.Some(serde.Int[S](9)), serde.ToOption(&out, serde.ToInt[D]))
		require.NotNil(t, out)
		assert.Equal(t, 9, *out)
	})
}

func TestKnownLengths(t *testing.T) {
	t.Run("it rejects sequences of unknown length", func(t *testing.T) {
		ser := msgpackcodec.NewSerializer()

		_, err := ser.SerializeSeq(serde.LenHint{})
		assert.Equal(t, serde.KindInvalidLength, serde.KindOf(err))

		_, err = ser.SerializeMap(serde.LenHint{})
		assert.Equal(t, serde.KindInvalidLength, serde.KindOf(err))
	})

	t.Run("it rejects an element count that misses the hint", func(t *testing.T) {
		ser := msgpackcodec.NewSerializer()

		seq, err := ser.SerializeSeq(serde.Len(2))
		require.NoError(t, err)
		require.NoError(t, seq.SerializeElement(serde.Int[S](1)))

		assert.Equal(t, serde.KindInvalidLength, serde.KindOf(seq.End()))
	})

	t.Run("it rejects skipping fields", func(t *testing.T) {
		ser := msgpackcodec.NewSerializer()

		st, err := ser.SerializeStruct("Config", 1)
		require.NoError(t, err)

		assert.Error(t, st.SkipField("dropped"))
	})

	t.Run("it reports the remaining length while decoding", func(t *testing.T) {
		data, err := msgpackcodec.Marshal(serde.Slice([]int{1, 2, 3}, serde.Int[S]))
		require.NoError(t, err)

		var hint serde.LenHint

		var out []int
		err = msgpackcodec.Unmarshal(data, func(de D) error {
			return de.DeserializeSeq(&hintProbe{dst: &out, hint: &hint})
		})
		require.NoError(t, err)
		assert.Equal(t, serde.Len(3), hint)
		assert.Equal(t, []int{1, 2, 3}, out)
	})

	t.Run("it rejects tuples of the wrong length", func(t *testing.T) {
		data, err := msgpackcodec.Marshal(serde.Tuple(serde.Int[S](1), serde.Int[S](2)))
		require.NoError(t, err)

		err = msgpackcodec.Unmarshal(data, func(de D) error {
			return de.DeserializeTuple(3, &hintProbe{dst: new([]int), hint: new(serde.LenHint)})
		})
		assert.Equal(t, serde.KindInvalidLength, serde.KindOf(err))
	})
}

// hintProbe records the sequence size hint before draining the elements.
type hintProbe struct {
	serde.VisitorBase[D]
	dst  *[]int
	hint *serde.LenHint
}

func (v *hintProbe) VisitSeq(seq serde.SeqAccess[D]) error {
	*v.hint = seq.SizeHint()

	for {
		var item int

		ok, err := seq.NextElement(serde.ToInt[D](&item))
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		*v.dst = append(*v.dst, item)
	}
}

func TestVariants(t *testing.T) {
	marshalVariant := func(t *testing.T, value serde.Value[S]) []byte {
		t.Helper()

		data, err := msgpackcodec.Marshal(value)
		require.NoError(t, err)

		return data
	}

	t.Run("it round-trips a unit variant", func(t *testing.T) {
		data := marshalVariant(t, serde.UnitVariant[S]("E", 0, "Unit"))

		var variant string
		err := msgpackcodec.Unmarshal(data, func(de D) error {
			return de.DeserializeEnum("E", []string{"Unit"}, &variantProbe{dst: &variant})
		})
		require.NoError(t, err)
		assert.Equal(t, "Unit", variant)
	})

	t.Run("it round-trips a newtype variant", func(t *testing.T) {
		data := marshalVariant(t, serde.NewtypeVariant("E", 1, "Newtype", serde.Int64[S](9)))

		var (
			variant string
			payload int64
		)

		err := msgpackcodec.Unmarshal(data, func(de D) error {
			return de.DeserializeEnum("E", []string{"Newtype"}, &variantProbe{dst: &variant, payload: &payload})
		})
		require.NoError(t, err)
		assert.Equal(t, "Newtype", variant)
		assert.Equal(t, int64(9), payload)
	})

	t.Run("it rejects scalar input where a variant is expected", func(t *testing.T) {
		data := marshalVariant(t, serde.Int64[S](1))

		err := msgpackcodec.Unmarshal(data, func(de D) error {
			return de.DeserializeEnum("E", []string{"Unit"}, &variantProbe{dst: new(string)})
		})
		assert.Equal(t, serde.KindInvalidType, serde.KindOf(err))
	})
}

// variantProbe resolves unit and newtype variants only.
type variantProbe struct {
	serde.VisitorBase[D]
	dst     *string
	payload *int64
}

func (v *variantProbe) Expecting() string { return "enum E" }

func (v *variantProbe) VisitEnum(e serde.EnumAccess[D]) error {
	if err := e.VariantIdentifier(serde.ToIdentifier[D](v.dst)); err != nil {
		return err
	}

	if v.payload == nil {
		return e.UnitVariant()
	}

	return e.NewtypeVariant(serde.ToInt64[D](v.payload))
}

func TestDeserializeAny(t *testing.T) {
	t.Run("it decodes unsigned and signed integers distinctly", func(t *testing.T) {
		data, err := msgpackcodec.Marshal(serde.Uint64[S](18446744073709551615))
		require.NoError(t, err)

		var out uint64
		require.NoError(t, msgpackcodec.Unmarshal(data, serde.ToUint64[D](&out)))
		assert.Equal(t, uint64(18446744073709551615), out)
	})

	t.Run("it rejects mismatched shapes before consuming input", func(t *testing.T) {
		data, err := msgpackcodec.Marshal(serde.String[S]("nope"))
		require.NoError(t, err)

		var out bool
		err = msgpackcodec.Unmarshal(data, serde.ToBool[D](&out))
		assert.Equal(t, serde.KindInvalidType, serde.KindOf(err))
	})
}
