// Package pnml parses the PNML (XML) place/transition net grammar into
// the raw ingredients the net package's normalizer consumes: a place-id
// to initial-token-count map, a transition-id set, and an ordered arc
// list.
//
// What
//
//   - Parse reads a PNML document, strips XML namespaces so tag matching
//     doesn't depend on the document's declared namespace prefix, and
//     extracts places, transitions, and arcs.
//   - Validate collects, rather than stops at the first, structural
//     problems: unknown arc endpoints and same-kind arcs (place→place,
//     transition→transition). Apart from a document with no <net>
//     element (ErrNoNetElement), well-formed XML never causes Parse
//     itself to fail; only Validate reports content problems.
package pnml
