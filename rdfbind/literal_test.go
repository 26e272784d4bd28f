package rdfbind

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolValue(t *testing.T) {
	v, err := Literal{Lexical: "true"}.BoolValue()
	require.NoError(t, err)
	assert.True(t, v)

	v, err = Literal{Lexical: "0"}.BoolValue()
	require.NoError(t, err)
	assert.False(t, v)

	// Only the XSD forms count; Go's wider ParseBool spellings do not.
	for _, lex := range []string{"yes", "t", "T", "TRUE", "False"} {
		_, err = Literal{Lexical: lex}.BoolValue()
		require.Error(t, err, "lexical %q", lex)
		assert.ErrorIs(t, err, ErrInvalidLexical)
	}
}

func TestIntegerAccessorsRespectBitSize(t *testing.T) {
	v, err := Literal{Lexical: "2147483647"}.IntValue()
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), v)

	_, err = Literal{Lexical: "2147483648"}.IntValue()
	require.Error(t, err)

	b, err := Literal{Lexical: "-128"}.ByteValue()
	require.NoError(t, err)
	assert.Equal(t, int8(math.MinInt8), b)

	_, err = Literal{Lexical: "128"}.ByteValue()
	require.Error(t, err)

	s, err := Literal{Lexical: "32767"}.ShortValue()
	require.NoError(t, err)
	assert.Equal(t, int16(math.MaxInt16), s)

	_, err = Literal{Lexical: "32768"}.ShortValue()
	require.Error(t, err)

	l, err := Literal{Lexical: "-9223372036854775808"}.LongValue()
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), l)
}

func TestFloatAccessors(t *testing.T) {
	f, err := Literal{Lexical: "1.5"}.FloatValue()
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	f, err = Literal{Lexical: "-INF"}.FloatValue()
	require.NoError(t, err)
	assert.Equal(t, float32(math.Inf(-1)), f)

	d, err := Literal{Lexical: "2.5e-3"}.DoubleValue()
	require.NoError(t, err)
	assert.Equal(t, 0.0025, d)

	_, err = Literal{Lexical: "1.2.3"}.DoubleValue()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLexical)
}

func TestDecimalValue(t *testing.T) {
	d, err := Literal{Lexical: "12.5"}.DecimalValue()
	require.NoError(t, err)
	assert.Zero(t, d.Cmp(big.NewFloat(12.5)))

	_, err = Literal{Lexical: "twelve"}.DecimalValue()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLexical)
}

func TestDecimalValueKeepsLongDigits(t *testing.T) {
	lex := "123456789012345678901234567890.123456789012345"
	d, err := Literal{Lexical: lex}.DecimalValue()
	require.NoError(t, err)
	assert.Equal(t, lex, d.Text('f', -1))
}

func TestURIValue(t *testing.T) {
	u, err := Literal{Lexical: "https://example.org/a/b"}.URIValue()
	require.NoError(t, err)
	assert.Equal(t, "example.org", u.Host)

	_, err = Literal{Lexical: "%zz"}.URIValue()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLexical)
}

func TestTimeValue(t *testing.T) {
	ts, err := Literal{Lexical: "2026-03-05T11:30:45.123Z"}.TimeValue()
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2026, 3, 5, 11, 30, 45, 123000000, time.UTC)))

	_, err = Literal{Lexical: "2026-03-05"}.TimeValue()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestTimeValueWithoutZone(t *testing.T) {
	ts, err := Literal{Lexical: "2002-05-30T09:00:00"}.TimeValue()
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2002, 5, 30, 9, 0, 0, 0, time.UTC)))

	ts, err = Literal{Lexical: "2002-05-30T09:00:00.25"}.TimeValue()
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2002, 5, 30, 9, 0, 0, 250000000, time.UTC)))
}

func TestCharValue(t *testing.T) {
	assert.Equal(t, Char('x'), Literal{Lexical: "xyz"}.CharValue())
	assert.Equal(t, Char(0), Literal{Lexical: ""}.CharValue())
}

func TestLexicalErrorReporting(t *testing.T) {
	_, err := Literal{Lexical: "abc"}.IntValue()
	require.Error(t, err)

	var lexErr *LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "abc", lexErr.Lexical)
	assert.Equal(t, DatatypeInt, lexErr.Datatype)
	assert.Contains(t, err.Error(), `"abc"`)
	assert.Contains(t, err.Error(), "int")
}

func TestCode(t *testing.T) {
	assert.Equal(t, ErrorCode(""), Code(nil))

	_, err := Literal{Lexical: "x"}.DoubleValue()
	assert.Equal(t, ErrCodeInvalidLexical, Code(err))

	_, err = Literal{Lexical: "x"}.TimeValue()
	assert.Equal(t, ErrCodeInvalidDateTime, Code(err))

	assert.Equal(t, ErrCodeInvalidLexical, Code(ErrInvalidLexical))
	assert.Equal(t, ErrCodeInvalidDateTime, Code(ErrInvalidDateTime))
}
