package rdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermKinds(t *testing.T) {
	tests := []struct {
		name  string
		term  Term
		kind  TermKind
		value string
	}{
		{
			name:  "iri",
			term:  IRI("http://purl.obolibrary.org/obo/DOID_0001816"),
			kind:  KindIRI,
			value: "http://purl.obolibrary.org/obo/DOID_0001816",
		},
		{
			name:  "blank node",
			term:  BlankNode("N123abc"),
			kind:  KindBlankNode,
			value: "N123abc",
		},
		{
			name:  "plain literal",
			term:  NewLiteral("angiosarcoma"),
			kind:  KindLiteral,
			value: "angiosarcoma",
		},
		{
			name:  "typed literal",
			term:  NewTypedLiteral("true", IRI("http://www.w3.org/2001/XMLSchema#boolean")),
			kind:  KindLiteral,
			value: "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.term.Kind())
			assert.Equal(t, tt.value, tt.term.Value())
		})
	}
}

func TestTermKindString(t *testing.T) {
	assert.Equal(t, "iri", KindIRI.String())
	assert.Equal(t, "bnode", KindBlankNode.String())
	assert.Equal(t, "literal", KindLiteral.String())
	assert.Equal(t, "unknown", TermKind(99).String())
}

func TestIRINamespace(t *testing.T) {
	tests := []struct {
		name      string
		iri       IRI
		namespace string
		fragment  string
	}{
		{
			name:      "hash separated",
			iri:       IRI("http://www.w3.org/2000/01/rdf-schema#subClassOf"),
			namespace: "http://www.w3.org/2000/01/rdf-schema#",
			fragment:  "subClassOf",
		},
		{
			name:      "slash separated",
			iri:       IRI("http://purl.obolibrary.org/obo/DOID_0001816"),
			namespace: "http://purl.obolibrary.org/obo/",
			fragment:  "DOID_0001816",
		},
		{
			name:      "no separator",
			iri:       IRI("DOID_0001816"),
			namespace: "",
			fragment:  "DOID_0001816",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns, frag := tt.iri.Namespace()
			assert.Equal(t, tt.namespace, ns)
			assert.Equal(t, tt.fragment, frag)
		})
	}
}

func TestNewBlankNode(t *testing.T) {
	a := NewBlankNode()
	b := NewBlankNode()

	assert.True(t, strings.HasPrefix(string(a), "N"))
	assert.Len(t, string(a), 33) // "N" plus 32 hex characters
	assert.NotEqual(t, a, b, "labels must be fresh per call")
}

func TestTermsAreComparable(t *testing.T) {
	// Terms key maps directly; structural equality is what makes the
	// triple store a set.
	m := map[Term]int{
		IRI("http://example.org/a"): 1,
		BlankNode("b0"):             2,
		NewLiteral("x"):             3,
	}
	assert.Equal(t, 1, m[IRI("http://example.org/a")])
	assert.Equal(t, 2, m[BlankNode("b0")])
	assert.Equal(t, 3, m[Literal{Val: "x"}])

	assert.NotEqual(t, Term(NewLiteral("x")),
		Term(NewTypedLiteral("x", IRI("http://www.w3.org/2001/XMLSchema#string"))))
}
