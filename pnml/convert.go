package pnml

import "github.com/katalvlaran/petrinet/net"

// ToNet normalizes a parsed (and validated) Document into the canonical
// net.Net representation.
func ToNet(doc *Document) (*net.Net, error) {
	arcs := make([]net.Arc, len(doc.Arcs))
	for i, a := range doc.Arcs {
		arcs[i] = net.Arc{Source: a.Source, Target: a.Target}
	}
	return net.New(doc.Places, doc.Transitions, arcs)
}

// Load parses path, validates the result, and normalizes it into a
// net.Net in one step — the common case for callers that don't need the
// intermediate Document.
func Load(path string) (*net.Net, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return ToNet(doc)
}
