package rdfbind

// XML Schema datatype IRIs used by the default datatype table.
//
// References:
// - XSD datatypes: https://www.w3.org/TR/xmlschema11-2/
const (
	// XSDNamespace is the XML Schema datatype namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// XSDString is the xsd:string datatype IRI.
	XSDString = XSDNamespace + "string"
	// XSDBoolean is the xsd:boolean datatype IRI.
	XSDBoolean = XSDNamespace + "boolean"
	// XSDInt is the xsd:int (32-bit signed integer) datatype IRI.
	XSDInt = XSDNamespace + "int"
	// XSDByte is the xsd:byte (8-bit signed integer) datatype IRI.
	XSDByte = XSDNamespace + "byte"
	// XSDLong is the xsd:long (64-bit signed integer) datatype IRI.
	XSDLong = XSDNamespace + "long"
	// XSDShort is the xsd:short (16-bit signed integer) datatype IRI.
	XSDShort = XSDNamespace + "short"
	// XSDFloat is the xsd:float (32-bit IEEE 754) datatype IRI.
	XSDFloat = XSDNamespace + "float"
	// XSDDouble is the xsd:double (64-bit IEEE 754) datatype IRI.
	XSDDouble = XSDNamespace + "double"
	// XSDDecimal is the xsd:decimal (arbitrary precision) datatype IRI.
	XSDDecimal = XSDNamespace + "decimal"
	// XSDAnyURI is the xsd:anyURI datatype IRI.
	XSDAnyURI = XSDNamespace + "anyURI"
	// XSDDateTime is the xsd:dateTime datatype IRI.
	XSDDateTime = XSDNamespace + "dateTime"
)

// Custom datatype IRIs with no XML Schema counterpart.
const (
	// CharDatatype tags single-character literals. Non-standard: XML Schema
	// has no character type, so the IRI lives under the rdfbind namespace.
	CharDatatype = "https://geoknoesis.com/rdfbind/datatype#char"
)
