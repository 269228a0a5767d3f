package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/TTa77/PheKnowLator/errors"
)

// SerializeTerm renders a term in canonical N-Triples form:
//
//	IRI       -> <iri>
//	BlankNode -> _:label
//	Literal   -> "value" or "value"^^<datatype-iri>
func SerializeTerm(t Term) string {
	switch v := t.(type) {
	case IRI:
		return "<" + string(v) + ">"
	case BlankNode:
		return "_:" + string(v)
	case Literal:
		s := `"` + escapeLiteral(v.Val) + `"`
		if v.Datatype != "" {
			s += "^^<" + string(v.Datatype) + ">"
		}
		return s
	default:
		return ""
	}
}

// SerializeTriple renders a triple as an N-Triples statement using delim
// between the three terms and before the terminating dot.
func SerializeTriple(t Triple, delim string) string {
	return SerializeTerm(t.Subject) + delim +
		SerializeTerm(t.Predicate) + delim +
		SerializeTerm(t.Object) + delim + "."
}

// WriteNTriples serializes the graph to w in deterministic sorted order,
// one statement per line.
func WriteNTriples(g *Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, t := range g.SortedTriples() {
		if _, err := bw.WriteString(SerializeTriple(t, " ") + "\n"); err != nil {
			return errors.WrapIO(err, "rdf", "WriteNTriples", "write statement")
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.WrapIO(err, "rdf", "WriteNTriples", "flush output")
	}
	return nil
}

func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unescapeLiteral(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// ParseNTriples reads N-Triples statements from r into a new graph. Blank
// lines and comment lines starting with '#' are skipped. Any statement that
// cannot be parsed surfaces as an invalid-input error naming the line.
func ParseNTriples(r io.Reader) (*Graph, error) {
	g := NewGraph()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := parseStatement(line)
		if err != nil {
			return nil, errors.WrapInvalid(
				fmt.Errorf("line %d: %w", lineNo, err),
				"rdf", "ParseNTriples", "parse statement")
		}
		g.Add(t)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO(err, "rdf", "ParseNTriples", "read input")
	}
	return g, nil
}

// parseStatement parses one "subject predicate object ." line.
func parseStatement(line string) (Triple, error) {
	rest := line
	subject, rest, err := parseTerm(rest)
	if err != nil {
		return Triple{}, fmt.Errorf("subject: %w", err)
	}
	predicate, rest, err := parseTerm(rest)
	if err != nil {
		return Triple{}, fmt.Errorf("predicate: %w", err)
	}
	object, rest, err := parseTerm(rest)
	if err != nil {
		return Triple{}, fmt.Errorf("object: %w", err)
	}
	rest = strings.TrimSpace(rest)
	if rest != "." {
		return Triple{}, fmt.Errorf("statement not terminated with '.': %q", rest)
	}
	return NewTriple(subject, predicate, object)
}

// ParseTerm parses a single N-Triples-encoded term, rejecting trailing
// content. Used by snapshot formats that store terms in serialized form.
func ParseTerm(s string) (Term, error) {
	t, rest, err := parseTerm(s)
	if err != nil {
		return nil, errors.WrapInvalid(err, "rdf", "ParseTerm", "parse term")
	}
	if strings.TrimSpace(rest) != "" {
		return nil, errors.WrapInvalid(
			fmt.Errorf("trailing content after term: %q", rest),
			"rdf", "ParseTerm", "parse term")
	}
	return t, nil
}

// parseTerm consumes one term from the front of s and returns the remainder.
func parseTerm(s string) (Term, string, error) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return nil, "", fmt.Errorf("unexpected end of statement")
	}

	switch {
	case s[0] == '<':
		end := strings.IndexByte(s, '>')
		if end < 0 {
			return nil, "", fmt.Errorf("unterminated IRI: %q", s)
		}
		return IRI(s[1:end]), s[end+1:], nil

	case strings.HasPrefix(s, "_:"):
		end := strings.IndexAny(s, " \t")
		if end < 0 {
			end = len(s)
		}
		label := s[2:end]
		if label == "" {
			return nil, "", fmt.Errorf("empty blank node label")
		}
		return BlankNode(label), s[end:], nil

	case s[0] == '"':
		end := closingQuote(s)
		if end < 0 {
			return nil, "", fmt.Errorf("unterminated literal: %q", s)
		}
		value := unescapeLiteral(s[1:end])
		rest := s[end+1:]

		// Language tags are accepted and dropped; this engine keys
		// literals by value and datatype only.
		if strings.HasPrefix(rest, "@") {
			cut := strings.IndexAny(rest, " \t")
			if cut < 0 {
				cut = len(rest)
			}
			rest = rest[cut:]
		}
		if strings.HasPrefix(rest, "^^<") {
			dtEnd := strings.IndexByte(rest, '>')
			if dtEnd < 0 {
				return nil, "", fmt.Errorf("unterminated datatype IRI: %q", rest)
			}
			return Literal{Val: value, Datatype: IRI(rest[3:dtEnd])}, rest[dtEnd+1:], nil
		}
		return Literal{Val: value}, rest, nil

	default:
		return nil, "", fmt.Errorf("unrecognized term: %q", s)
	}
}

// closingQuote finds the index of the unescaped closing quote of a literal
// beginning at s[0] == '"'.
func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
