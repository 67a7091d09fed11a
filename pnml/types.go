package pnml

import "errors"

// ErrNoNetElement is returned when the document has no <net> element.
var ErrNoNetElement = errors.New("pnml: no <net> element found")

// Arc is a single (source, target) edge as it appeared in the document,
// before classification into pre/post sets.
type Arc struct {
	Source string
	Target string
}

// Document is the raw, unvalidated result of Parse: places with their
// initial marking, the transition-id set, and the ordered arc list.
type Document struct {
	// Places maps place id to initial token count. Missing
	// <initialMarking> defaults to 0.
	Places map[string]int

	// Transitions is the set of transition ids.
	Transitions map[string]struct{}

	// Arcs is the ordered list of (source, target) pairs as encountered.
	Arcs []Arc
}

// ValidationError collects the problems Validate finds. It implements
// error by joining every individual message with "; " after a "pnml: "
// prefix, so a caller can either inspect Problems or treat it as a
// single error value.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return "pnml: no validation problems"
	}
	s := "pnml: " + e.Problems[0]
	for _, p := range e.Problems[1:] {
		s += "; " + p
	}
	return s
}
