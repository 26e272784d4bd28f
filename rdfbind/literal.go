package rdfbind

import (
	"math/big"
	"net/url"
	"strconv"
	"time"
)

// Typed accessors over the lexical form. Each accessor parses the lexical
// form into the target value space and reports malformed input as a
// LexicalError; none of them inspects the literal's datatype IRI.

// BoolValue parses the lexical form as a boolean. Only the XSD lexical
// forms "true", "false", "1" and "0" are accepted.
func (l Literal) BoolValue() (bool, error) {
	switch l.Lexical {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, lexicalError(l.Lexical, DatatypeBoolean, strconv.ErrSyntax)
}

// IntValue parses the lexical form as a 32-bit signed integer.
func (l Literal) IntValue() (int32, error) {
	v, err := strconv.ParseInt(l.Lexical, 10, 32)
	if err != nil {
		return 0, lexicalError(l.Lexical, DatatypeInt, err)
	}
	return int32(v), nil
}

// ByteValue parses the lexical form as an 8-bit signed integer.
func (l Literal) ByteValue() (int8, error) {
	v, err := strconv.ParseInt(l.Lexical, 10, 8)
	if err != nil {
		return 0, lexicalError(l.Lexical, DatatypeByte, err)
	}
	return int8(v), nil
}

// LongValue parses the lexical form as a 64-bit signed integer.
func (l Literal) LongValue() (int64, error) {
	v, err := strconv.ParseInt(l.Lexical, 10, 64)
	if err != nil {
		return 0, lexicalError(l.Lexical, DatatypeLong, err)
	}
	return v, nil
}

// ShortValue parses the lexical form as a 16-bit signed integer.
func (l Literal) ShortValue() (int16, error) {
	v, err := strconv.ParseInt(l.Lexical, 10, 16)
	if err != nil {
		return 0, lexicalError(l.Lexical, DatatypeShort, err)
	}
	return int16(v), nil
}

// FloatValue parses the lexical form as a 32-bit float. The XSD spellings
// INF, -INF and NaN are accepted by the underlying parser.
func (l Literal) FloatValue() (float32, error) {
	v, err := strconv.ParseFloat(l.Lexical, 32)
	if err != nil {
		return 0, lexicalError(l.Lexical, DatatypeFloat, err)
	}
	return float32(v), nil
}

// DoubleValue parses the lexical form as a 64-bit float.
func (l Literal) DoubleValue() (float64, error) {
	v, err := strconv.ParseFloat(l.Lexical, 64)
	if err != nil {
		return 0, lexicalError(l.Lexical, DatatypeDouble, err)
	}
	return v, nil
}

// DecimalValue parses the lexical form as an arbitrary-precision decimal.
// The mantissa precision scales with the lexical form's length so no
// digits are lost, whatever the length.
func (l Literal) DecimalValue() (*big.Float, error) {
	prec := uint(4 * len(l.Lexical))
	if prec < decimalPrec {
		prec = decimalPrec
	}
	v, _, err := big.ParseFloat(l.Lexical, 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, lexicalError(l.Lexical, DatatypeDecimal, err)
	}
	return v, nil
}

// URIValue parses the lexical form as a URI.
func (l Literal) URIValue() (*url.URL, error) {
	v, err := url.Parse(l.Lexical)
	if err != nil {
		return nil, lexicalError(l.Lexical, DatatypeAnyURI, err)
	}
	return v, nil
}

// TimeValue parses the lexical form as an ISO 8601 date/time instant.
// xsd:dateTime permits the timezone to be absent; zone-less forms are
// interpreted as UTC.
func (l Literal) TimeValue() (time.Time, error) {
	v, err := time.Parse(time.RFC3339Nano, l.Lexical)
	if err == nil {
		return v, nil
	}
	v, zerr := time.Parse("2006-01-02T15:04:05.999999999", l.Lexical)
	if zerr != nil {
		return time.Time{}, lexicalError(l.Lexical, DatatypeDateTime, err)
	}
	return v, nil
}

// CharValue returns the first character of the lexical form, or the null
// character for an empty form.
func (l Literal) CharValue() Char {
	for _, r := range l.Lexical {
		return Char(r)
	}
	return Char(0)
}

// decimalPrec is the minimum mantissa precision used for xsd:decimal
// values; longer lexical forms get 4 bits per character so every digit
// survives a round trip.
const decimalPrec = 128
