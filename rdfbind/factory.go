package rdfbind

import "time"

// ValueFactory constructs Literal terms. Encode accepts any implementation
// so callers can route construction through their own RDF store's factory.
type ValueFactory interface {
	// Literal creates an untyped literal from a lexical form.
	Literal(lexical string) Literal
	// TypedLiteral creates a literal tagged with a datatype IRI.
	TypedLiteral(lexical string, datatype IRI) Literal
	// DateTimeLiteral creates an xsd:dateTime literal from a time instant,
	// applying the canonical serialization.
	DateTimeLiteral(t time.Time) Literal
}

// SimpleValueFactory is the default ValueFactory. The zero value is ready
// to use.
type SimpleValueFactory struct{}

// Literal creates an untyped literal.
func (SimpleValueFactory) Literal(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// TypedLiteral creates a literal with the given datatype IRI.
func (SimpleValueFactory) TypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// DateTimeLiteral creates an xsd:dateTime literal. The instant is
// canonicalized to UTC and serialized as RFC 3339, with sub-second digits
// kept only when present.
func (SimpleValueFactory) DateTimeLiteral(t time.Time) Literal {
	return Literal{
		Lexical:  t.UTC().Format(time.RFC3339Nano),
		Datatype: IRI{Value: XSDDateTime},
	}
}
