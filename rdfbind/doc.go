// Package rdfbind maps native Go values to typed RDF literals and back
// using XML Schema datatype IRIs.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
//
// The package is a pure, stateless function pair over a fixed datatype
// table built once at startup:
//   - Encode: Encode() turns a Go value into a Literal via a ValueFactory.
//   - Decode: Decode() turns a Literal back into the Go value its datatype
//     IRI maps to.
//   - Resolve: ResolveType() answers which Datatype a Go type maps to.
//
// Strings become untyped literals; bool, the sized signed integers,
// float32/float64, *big.Float, *url.URL and time.Time become literals
// tagged with the corresponding xsd datatype; Char (a defined rune type)
// uses a custom datatype IRI, since XML Schema has no character type.
//
// Example (encoding):
//
//	vf := rdfbind.SimpleValueFactory{}
//	lit, ok := rdfbind.Encode(int32(42), vf)
//	if !ok {
//	    // value's type has no datatype mapping
//	}
//	// lit is "42"^^<http://www.w3.org/2001/XMLSchema#int>
//
// Example (decoding):
//
//	v, err := rdfbind.Decode(lit)
//	if err != nil {
//	    // lexical form does not parse as the literal's datatype
//	}
//	// v is int32(42)
//
// Decode never rejects a datatype it does not know: unrecognized datatype
// IRIs and untyped literals both decode to the raw lexical string. Encode
// never fails either; a value of an unmapped type reports ok=false and the
// caller decides how to represent it.
//
// All exported functions are safe for concurrent use: the datatype table
// is immutable after package initialization and no call mutates shared
// state.
package rdfbind
