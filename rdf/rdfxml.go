package rdf

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/TTa77/PheKnowLator/errors"
)

// rdfSyntaxNS is the RDF syntax namespace used by RDF/XML attributes.
const rdfSyntaxNS = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// ParseRDFXML reads an RDF/XML document from r into a new graph. The reader
// covers the serialization subset that ontology tooling emits: rdf:Description
// and typed node elements, rdf:about / rdf:nodeID subject identification,
// property elements with rdf:resource, rdf:nodeID, rdf:datatype, nested node
// elements, and literal content.
func ParseRDFXML(r io.Reader) (*Graph, error) {
	g := NewGraph()
	dec := xml.NewDecoder(r)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapInvalid(err, "rdf", "ParseRDFXML", "read XML token")
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Space == rdfSyntaxNS && start.Name.Local == "RDF" {
			if err := parseNodeElements(dec, g); err != nil {
				return nil, err
			}
			continue
		}
		// Document without an rdf:RDF wrapper: the root is a node element.
		if _, err := parseNodeElement(dec, start, g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// parseNodeElements consumes node elements until the enclosing end tag.
func parseNodeElements(dec *xml.Decoder, g *Graph) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return errors.WrapInvalid(err, "rdf", "ParseRDFXML", "read node element")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if _, err := parseNodeElement(dec, t, g); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// parseNodeElement parses one node element and its property elements,
// returning the subject term it described.
func parseNodeElement(dec *xml.Decoder, start xml.StartElement, g *Graph) (Term, error) {
	subject := subjectOf(start)

	// A typed node element asserts rdf:type from its element name.
	if start.Name.Space != rdfSyntaxNS || start.Name.Local != "Description" {
		g.Add(Triple{
			Subject:   subject,
			Predicate: IRI(rdfSyntaxNS + "type"),
			Object:    IRI(start.Name.Space + start.Name.Local),
		})
	}

	// Non-syntax attributes are property attributes with literal values.
	for _, attr := range start.Attr {
		if attr.Name.Space == rdfSyntaxNS || attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}
		if attr.Name.Space == "" {
			continue
		}
		g.Add(Triple{
			Subject:   subject,
			Predicate: IRI(attr.Name.Space + attr.Name.Local),
			Object:    Literal{Val: attr.Value},
		})
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.WrapInvalid(err, "rdf", "ParseRDFXML", "read property element")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := parsePropertyElement(dec, t, subject, g); err != nil {
				return nil, err
			}
		case xml.EndElement:
			return subject, nil
		}
	}
}

// parsePropertyElement parses one property element of the given subject.
func parsePropertyElement(dec *xml.Decoder, start xml.StartElement, subject Term, g *Graph) error {
	predicate := IRI(start.Name.Space + start.Name.Local)

	var datatype IRI
	for _, attr := range start.Attr {
		if attr.Name.Space != rdfSyntaxNS {
			continue
		}
		switch attr.Name.Local {
		case "resource":
			g.Add(Triple{Subject: subject, Predicate: predicate, Object: IRI(attr.Value)})
			return dec.Skip()
		case "nodeID":
			g.Add(Triple{Subject: subject, Predicate: predicate, Object: BlankNode(attr.Value)})
			return dec.Skip()
		case "datatype":
			datatype = IRI(attr.Value)
		case "parseType":
			if attr.Value == "Resource" {
				// Anonymous nested node: fresh blank node carrying
				// the property elements inside.
				inner := NewBlankNode()
				g.Add(Triple{Subject: subject, Predicate: predicate, Object: inner})
				return parseInnerProperties(dec, inner, g)
			}
			// Literal/Collection parse types are not structural
			// content this engine consumes.
			return dec.Skip()
		}
	}

	// Either a nested node element or literal character content follows.
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return errors.WrapInvalid(err, "rdf", "ParseRDFXML", "read property content")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			object, err := parseNodeElement(dec, t, g)
			if err != nil {
				return err
			}
			g.Add(Triple{Subject: subject, Predicate: predicate, Object: object})
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			value := strings.TrimSpace(text.String())
			if value != "" || datatype != "" {
				g.Add(Triple{
					Subject:   subject,
					Predicate: predicate,
					Object:    Literal{Val: value, Datatype: datatype},
				})
			}
			return nil
		}
	}
}

// parseInnerProperties handles parseType="Resource" bodies: a sequence of
// property elements describing the supplied blank node.
func parseInnerProperties(dec *xml.Decoder, subject Term, g *Graph) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return errors.WrapInvalid(err, "rdf", "ParseRDFXML", "read nested property")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := parsePropertyElement(dec, t, subject, g); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// subjectOf resolves the subject term of a node element from its rdf:about,
// rdf:ID, or rdf:nodeID attribute, minting a fresh blank node when none is
// present.
func subjectOf(start xml.StartElement) Term {
	for _, attr := range start.Attr {
		if attr.Name.Space != rdfSyntaxNS {
			continue
		}
		switch attr.Name.Local {
		case "about":
			return IRI(attr.Value)
		case "ID":
			return IRI("#" + attr.Value)
		case "nodeID":
			return BlankNode(attr.Value)
		}
	}
	return NewBlankNode()
}
