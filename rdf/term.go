package rdf

import (
	"strings"

	"github.com/google/uuid"
)

// TermKind identifies which variant of the Term union a value belongs to.
type TermKind int

const (
	// KindIRI is a globally-unique identifier denoting a resource.
	KindIRI TermKind = iota

	// KindBlankNode is a graph-local anonymous identifier with no meaning
	// outside the graph instance that minted it.
	KindBlankNode

	// KindLiteral is a typed or untyped data value. Literals only appear
	// in the object position of a triple.
	KindLiteral
)

// String returns the string representation of the TermKind.
func (k TermKind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlankNode:
		return "bnode"
	case KindLiteral:
		return "literal"
	default:
		return "unknown"
	}
}

// Term is the closed union of RDF node kinds: IRI, BlankNode, and Literal.
// All implementations are comparable value types, so terms (and the triples
// built from them) have structural equality and can be used as map keys.
//
// The union is sealed: consumers switch exhaustively on the concrete type or
// on Kind(), and no new kinds can be added outside this package.
type Term interface {
	// Kind reports which variant this term is.
	Kind() TermKind

	// Value returns the raw identifier or literal value without any
	// serialization decoration.
	Value() string

	// sealed prevents implementations outside this package.
	sealed()
}

// IRI is an IRI-reference term.
type IRI string

// Kind implements Term.
func (IRI) Kind() TermKind { return KindIRI }

// Value returns the IRI string.
func (i IRI) Value() string { return string(i) }

func (IRI) sealed() {}

// Namespace returns the IRI up to and including the final '#' or '/'
// separator, and the local fragment after it. An IRI with no separator
// returns an empty namespace and the full value as the fragment.
func (i IRI) Namespace() (namespace, fragment string) {
	s := string(i)
	idx := strings.LastIndexAny(s, "#/")
	if idx < 0 {
		return "", s
	}
	return s[:idx+1], s[idx+1:]
}

// BlankNode is a graph-local anonymous identifier. The string is the local
// label without the "_:" prefix.
type BlankNode string

// Kind implements Term.
func (BlankNode) Kind() TermKind { return KindBlankNode }

// Value returns the blank node label without the "_:" prefix.
func (b BlankNode) Value() string { return string(b) }

func (BlankNode) sealed() {}

// Literal is a data value with an optional datatype IRI. A Literal with an
// empty Datatype is a plain literal.
type Literal struct {
	Val      string
	Datatype IRI
}

// Kind implements Term.
func (Literal) Kind() TermKind { return KindLiteral }

// Value returns the lexical form of the literal.
func (l Literal) Value() string { return l.Val }

func (Literal) sealed() {}

// NewLiteral returns a plain literal with no datatype.
func NewLiteral(value string) Literal {
	return Literal{Val: value}
}

// NewTypedLiteral returns a literal tagged with a datatype IRI.
func NewTypedLiteral(value string, datatype IRI) Literal {
	return Literal{Val: value, Datatype: datatype}
}

// NewBlankNode mints a fresh graph-local blank node label. Labels follow the
// conventional "N<hex>" shape so serialized graphs stay compatible with
// common RDF tooling.
func NewBlankNode() BlankNode {
	id := uuid.New()
	return BlankNode("N" + strings.ReplaceAll(id.String(), "-", ""))
}
