package pnml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// genericNode is a namespace-agnostic parse tree: every element decodes
// into one of these regardless of depth, so Parse can search for places,
// transitions, and arcs at any nesting level without a
// PNML-version-specific struct shape (PNML nests them under one or more
// <page> elements, and real-world documents vary in how many).
type genericNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr    `xml:",any,attr"`
	Children []genericNode `xml:",any"`
	Content  string        `xml:",chardata"`
}

func (n *genericNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// find returns the first direct-or-nested child named name, or nil.
func (n *genericNode) find(name string) *genericNode {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	for i := range n.Children {
		if found := n.Children[i].find(name); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every descendant (any depth) named name, depth-first.
func (n *genericNode) findAll(name string) []*genericNode {
	var out []*genericNode
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == name {
			out = append(out, c)
		}
		out = append(out, c.findAll(name)...)
	}
	return out
}

// nsStrippingReader wraps an xml.Decoder, clearing the namespace on every
// element and attribute name as tokens are read, so tag matching works
// whatever namespace the document declares.
type nsStrippingReader struct {
	dec *xml.Decoder
}

func (r *nsStrippingReader) Token() (xml.Token, error) {
	tok, err := r.dec.Token()
	if err != nil {
		return tok, err
	}
	switch t := tok.(type) {
	case xml.StartElement:
		t.Name.Space = ""
		for i := range t.Attr {
			t.Attr[i].Name.Space = ""
		}
		return t, nil
	case xml.EndElement:
		t.Name.Space = ""
		return t, nil
	}
	return tok, nil
}

// ParseFile opens path and parses it as a PNML document.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pnml: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a PNML document from r, strips namespaces, and extracts
// places (with initial marking, defaulting to 0), transitions, and arcs.
// A malformed XML document is reported as an error; missing semantic
// content (unknown arc endpoints, same-kind arcs) is NOT checked here —
// call Validate on the result.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewTokenDecoder(&nsStrippingReader{dec: xml.NewDecoder(r)})

	var root genericNode
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("pnml: decode xml: %w", err)
	}

	netNode := &root
	if root.XMLName.Local != "net" {
		if n := root.find("net"); n != nil {
			netNode = n
		} else {
			return nil, ErrNoNetElement
		}
	}

	doc := &Document{
		Places:      make(map[string]int),
		Transitions: make(map[string]struct{}),
	}

	for _, p := range netNode.findAll("place") {
		id, ok := p.attr("id")
		if !ok {
			continue
		}
		doc.Places[id] = readInitialMarking(p)
	}

	for _, t := range netNode.findAll("transition") {
		if id, ok := t.attr("id"); ok {
			doc.Transitions[id] = struct{}{}
		}
	}

	for _, a := range netNode.findAll("arc") {
		source, hasSrc := a.attr("source")
		target, hasTgt := a.attr("target")
		if hasSrc && hasTgt {
			doc.Arcs = append(doc.Arcs, Arc{Source: source, Target: target})
		}
	}

	return doc, nil
}

// readInitialMarking extracts the integer text under place's nested
// <initialMarking><text>N</text></initialMarking>, defaulting to 0 when
// absent or unparsable: a place with no declared initial marking starts
// empty.
func readInitialMarking(place *genericNode) int {
	marking := place.find("initialMarking")
	if marking == nil {
		return 0
	}
	text := marking.find("text")
	if text == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(text.Content))
	if err != nil {
		return 0
	}
	return n
}

// Validate reports every structural problem in doc: arc endpoints that
// reference neither a known place nor a known transition, and arcs
// between two nodes of the same kind (place->place, transition-
// >transition). Returns nil if doc is well-formed.
func Validate(doc *Document) error {
	var problems []string

	isPlace := func(id string) bool { _, ok := doc.Places[id]; return ok }
	isTransition := func(id string) bool { _, ok := doc.Transitions[id]; return ok }

	if len(doc.Places) == 0 && len(doc.Transitions) == 0 {
		problems = append(problems, "net is empty")
	}

	for _, a := range doc.Arcs {
		if !isPlace(a.Source) && !isTransition(a.Source) {
			problems = append(problems, fmt.Sprintf("arc source %q does not exist", a.Source))
		}
		if !isPlace(a.Target) && !isTransition(a.Target) {
			problems = append(problems, fmt.Sprintf("arc target %q does not exist", a.Target))
		}
		if isPlace(a.Source) && isPlace(a.Target) {
			problems = append(problems, fmt.Sprintf("invalid arc place->place: %s->%s", a.Source, a.Target))
		}
		if isTransition(a.Source) && isTransition(a.Target) {
			problems = append(problems, fmt.Sprintf("invalid arc transition->transition: %s->%s", a.Source, a.Target))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}
