package rdfbind

import (
	"fmt"
	"math"
	"math/big"
	"net/url"
	"reflect"
	"strconv"
	"time"
)

// Datatype identifies one of the datatypes the mapper can attach to a
// literal. The set is closed: mapping unlisted datatypes is not supported.
type Datatype uint8

const (
	// DatatypeString maps Go strings to untyped literals.
	DatatypeString Datatype = iota
	// DatatypeBoolean maps bool to xsd:boolean.
	DatatypeBoolean
	// DatatypeInt maps int32 to xsd:int.
	DatatypeInt
	// DatatypeByte maps int8 to xsd:byte.
	DatatypeByte
	// DatatypeLong maps int64 to xsd:long.
	DatatypeLong
	// DatatypeShort maps int16 to xsd:short.
	DatatypeShort
	// DatatypeFloat maps float32 to xsd:float.
	DatatypeFloat
	// DatatypeDouble maps float64 to xsd:double.
	DatatypeDouble
	// DatatypeDecimal maps *big.Float to xsd:decimal.
	DatatypeDecimal
	// DatatypeAnyURI maps *url.URL to xsd:anyURI.
	DatatypeAnyURI
	// DatatypeDateTime maps time.Time to xsd:dateTime.
	DatatypeDateTime
	// DatatypeChar maps Char to the custom char datatype.
	DatatypeChar
)

// Char is a single character value. It is a defined type rather than a
// plain rune because rune is an alias of int32 in Go: a distinct type is
// the only way to map characters and 32-bit integers to different
// datatypes.
type Char rune

// IRI returns the datatype IRI.
func (d Datatype) IRI() IRI {
	switch d {
	case DatatypeString:
		return IRI{Value: XSDString}
	case DatatypeBoolean:
		return IRI{Value: XSDBoolean}
	case DatatypeInt:
		return IRI{Value: XSDInt}
	case DatatypeByte:
		return IRI{Value: XSDByte}
	case DatatypeLong:
		return IRI{Value: XSDLong}
	case DatatypeShort:
		return IRI{Value: XSDShort}
	case DatatypeFloat:
		return IRI{Value: XSDFloat}
	case DatatypeDouble:
		return IRI{Value: XSDDouble}
	case DatatypeDecimal:
		return IRI{Value: XSDDecimal}
	case DatatypeAnyURI:
		return IRI{Value: XSDAnyURI}
	case DatatypeDateTime:
		return IRI{Value: XSDDateTime}
	case DatatypeChar:
		return IRI{Value: CharDatatype}
	}
	return IRI{}
}

// String returns a short datatype name for diagnostics.
func (d Datatype) String() string {
	switch d {
	case DatatypeString:
		return "string"
	case DatatypeBoolean:
		return "boolean"
	case DatatypeInt:
		return "int"
	case DatatypeByte:
		return "byte"
	case DatatypeLong:
		return "long"
	case DatatypeShort:
		return "short"
	case DatatypeFloat:
		return "float"
	case DatatypeDouble:
		return "double"
	case DatatypeDecimal:
		return "decimal"
	case DatatypeAnyURI:
		return "anyURI"
	case DatatypeDateTime:
		return "dateTime"
	case DatatypeChar:
		return "char"
	}
	return fmt.Sprintf("Datatype(%d)", uint8(d))
}

// typeEntry associates a Go type with a datatype. Entry order in a table
// is significant: the assignability scan in resolve walks entries in
// declaration order.
type typeEntry struct {
	typ reflect.Type
	dt  Datatype
}

// typeTable maps Go types to datatypes. Exact matches are answered from a
// map; anything else falls back to a first-match scan over the ordered
// entries.
type typeTable struct {
	exact   map[reflect.Type]Datatype
	ordered []typeEntry
}

func newTypeTable(entries []typeEntry) *typeTable {
	t := &typeTable{
		exact:   make(map[reflect.Type]Datatype, len(entries)),
		ordered: entries,
	}
	for _, e := range entries {
		if _, dup := t.exact[e.typ]; !dup {
			t.exact[e.typ] = e.dt
		}
	}
	return t
}

// resolve returns the datatype for a Go type. Exact entries win; otherwise
// the first entry in declaration order that rt is assignable to wins, not
// the most specific one. Compatibility note: resolution for a type
// matching several entries depends entirely on entry order.
func (t *typeTable) resolve(rt reflect.Type) (Datatype, bool) {
	if rt == nil {
		return 0, false
	}
	if dt, ok := t.exact[rt]; ok {
		return dt, true
	}
	for _, e := range t.ordered {
		if rt.AssignableTo(e.typ) {
			return e.dt, true
		}
	}
	return 0, false
}

// defaultTable is built once and never mutated. Entry order is load-bearing
// for the assignability scan and must be preserved.
var defaultTable = newTypeTable([]typeEntry{
	{reflect.TypeOf(""), DatatypeString},
	{reflect.TypeOf(int32(0)), DatatypeInt},
	{reflect.TypeOf(time.Time{}), DatatypeDateTime},
	{reflect.TypeOf(false), DatatypeBoolean},
	{reflect.TypeOf(float32(0)), DatatypeFloat},
	{reflect.TypeOf(float64(0)), DatatypeDouble},
	{reflect.TypeOf(int8(0)), DatatypeByte},
	{reflect.TypeOf(int64(0)), DatatypeLong},
	{reflect.TypeOf(int16(0)), DatatypeShort},
	{reflect.TypeOf((*big.Float)(nil)), DatatypeDecimal},
	{reflect.TypeOf((*url.URL)(nil)), DatatypeAnyURI},
	{reflect.TypeOf(Char(0)), DatatypeChar},
})

// datatypeByIRI routes Decode's dispatch. IRIs outside this map fall back
// to the raw lexical string.
var datatypeByIRI = map[string]Datatype{
	XSDString:    DatatypeString,
	XSDBoolean:   DatatypeBoolean,
	XSDInt:       DatatypeInt,
	XSDByte:      DatatypeByte,
	XSDLong:      DatatypeLong,
	XSDShort:     DatatypeShort,
	XSDFloat:     DatatypeFloat,
	XSDDouble:    DatatypeDouble,
	XSDDecimal:   DatatypeDecimal,
	XSDAnyURI:    DatatypeAnyURI,
	XSDDateTime:  DatatypeDateTime,
	CharDatatype: DatatypeChar,
}

// ResolveType returns the datatype for a Go type, or ok=false when the
// type has no mapping. Absence is a normal outcome, not an error.
func ResolveType(rt reflect.Type) (Datatype, bool) {
	return defaultTable.resolve(rt)
}

// Decode converts a literal into the Go value its datatype maps to.
// Untyped literals and literals with an unrecognized datatype decode to
// the raw lexical string. Malformed lexical forms surface the accessor's
// LexicalError unmodified.
func Decode(l Literal) (any, error) {
	dt, known := datatypeByIRI[l.Datatype.Value]
	if l.Datatype.Value == "" || !known {
		return l.Lexical, nil
	}
	switch dt {
	case DatatypeString:
		return l.Lexical, nil
	case DatatypeBoolean:
		v, err := l.BoolValue()
		if err != nil {
			return nil, err
		}
		return v, nil
	case DatatypeInt:
		v, err := l.IntValue()
		if err != nil {
			return nil, err
		}
		return v, nil
	case DatatypeByte:
		v, err := l.ByteValue()
		if err != nil {
			return nil, err
		}
		return v, nil
	case DatatypeLong:
		v, err := l.LongValue()
		if err != nil {
			return nil, err
		}
		return v, nil
	case DatatypeShort:
		v, err := l.ShortValue()
		if err != nil {
			return nil, err
		}
		return v, nil
	case DatatypeFloat:
		v, err := l.FloatValue()
		if err != nil {
			return nil, err
		}
		return v, nil
	case DatatypeDouble:
		v, err := l.DoubleValue()
		if err != nil {
			return nil, err
		}
		return v, nil
	case DatatypeDecimal:
		return l.DecimalValue()
	case DatatypeAnyURI:
		return l.URIValue()
	case DatatypeDateTime:
		v, err := l.TimeValue()
		if err != nil {
			return nil, err
		}
		return v, nil
	case DatatypeChar:
		return l.CharValue(), nil
	default:
		return l.Lexical, nil
	}
}

// Encode converts a Go value into a literal built by vf, or ok=false when
// the value's type has no mapping. Callers must treat ok=false as "cannot
// represent this value type". time.Time values always take the factory's
// date/time path, bypassing the type table.
func Encode(value any, vf ValueFactory) (Literal, bool) {
	if value == nil {
		return Literal{}, false
	}
	if t, ok := value.(time.Time); ok {
		return vf.DateTimeLiteral(t), true
	}
	dt, ok := defaultTable.resolve(reflect.TypeOf(value))
	if !ok {
		return Literal{}, false
	}
	lex := lexicalForm(value)
	if dt == DatatypeString {
		return vf.Literal(lex), true
	}
	return vf.TypedLiteral(lex, dt.IRI()), true
}

// lexicalForm renders a mapped value's lexical form. Numeric formats are
// the shortest representations that parse back to the same value.
func lexicalForm(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return formatFloat(float64(v), 32)
	case float64:
		return formatFloat(v, 64)
	case *big.Float:
		return v.Text('f', -1)
	case *url.URL:
		return v.String()
	case Char:
		return string(rune(v))
	default:
		return fmt.Sprintf("%v", value)
	}
}

// formatFloat renders a float lexical form, using the XSD spellings INF,
// -INF and NaN for the non-finite values.
func formatFloat(v float64, bits int) string {
	switch {
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, bits)
}
