package net

import "sort"

// Arc is a single (source, target) pair as emitted by the external parser
// collaborator: source and target are raw ids, either a place id or a
// transition id, and the caller has not yet classified which.
type Arc struct {
	Source string
	Target string
}

// New builds a canonical Net from a parser's output: places maps each place
// id to its initial token count (any count above zero is treated as 1; this
// package models 1-safe nets only, no arc weights), transitions is the set
// of transition ids, and arcs is the parser's raw arc list.
//
// Arcs are classified by endpoint kind: place->transition arcs become
// pre-set membership, transition->place arcs become post-set membership.
// An arc between two places or two transitions is silently ignored —
// validating arc shape is the parser's job, not this layer's.
//
// Returns ErrNoPlaces if places is empty, or ErrTooManyPlaces if
// len(places) > MaxPlaces.
func New(places map[string]int, transitions map[string]struct{}, arcs []Arc) (*Net, error) {
	if len(places) == 0 {
		return nil, ErrNoPlaces
	}
	if len(places) > MaxPlaces {
		return nil, ErrTooManyPlaces
	}

	placeIDs := make([]string, 0, len(places))
	for pid := range places {
		placeIDs = append(placeIDs, pid)
	}
	sort.Strings(placeIDs)

	placeIndex := make(map[string]int, len(placeIDs))
	for i, pid := range placeIDs {
		placeIndex[pid] = i
	}

	transIDs := make([]string, 0, len(transitions))
	for tid := range transitions {
		transIDs = append(transIDs, tid)
	}
	sort.Strings(transIDs)

	transIndex := make(map[string]int, len(transIDs))
	trans := make([]Transition, len(transIDs))
	for i, tid := range transIDs {
		trans[i] = Transition{ID: tid}
		transIndex[tid] = i
	}

	// Classify arcs and accumulate pre/post sets per transition.
	preSets := make([]map[int]struct{}, len(trans))
	postSets := make([]map[int]struct{}, len(trans))
	for i := range trans {
		preSets[i] = make(map[int]struct{})
		postSets[i] = make(map[int]struct{})
	}

	for _, a := range arcs {
		if pIdx, isPlace := placeIndex[a.Source]; isPlace {
			if tIdx, isTrans := transIndex[a.Target]; isTrans {
				preSets[tIdx][pIdx] = struct{}{}
			}
			continue
		}
		if tIdx, isTrans := transIndex[a.Source]; isTrans {
			if pIdx, isPlace := placeIndex[a.Target]; isPlace {
				postSets[tIdx][pIdx] = struct{}{}
			}
		}
	}

	for i := range trans {
		trans[i].Pre = sortedKeys(preSets[i])
		trans[i].Post = sortedKeys(postSets[i])
		trans[i].PreMask = maskOf(trans[i].Pre)
		trans[i].PostMask = maskOf(trans[i].Post)
	}

	marking := make([]int, len(placeIDs))
	var mask uint64
	for pid, idx := range placeIndex {
		if places[pid] > 0 {
			marking[idx] = 1
			mask |= 1 << uint(idx)
		}
	}

	return &Net{
		PlaceIDs:        placeIDs,
		PlaceIndex:      placeIndex,
		Transitions:     trans,
		TransitionIndex: transIndex,
		InitialMarking:  marking,
		InitialMask:     mask,
	}, nil
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func maskOf(idx []int) uint64 {
	var m uint64
	for _, i := range idx {
		m |= 1 << uint(i)
	}
	return m
}
