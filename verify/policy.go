package verify

import "github.com/crf8472/arcstk/calc"

// TraversalPolicy chooses which dimension of the reference store drives
// the outer loop while populating a Result. It affects only iteration
// order (and therefore only the order of any diagnostic logging), never
// which pairs end up compared: the Result is the same full matrix either
// way. Expressed as an interface, not a tag enum with a switch, because
// unlike the checksum engine's per-sample hot loop (spec.md §9), this
// dispatch happens at most once per block/track pair and readability
// wins over monomorphization.
type TraversalPolicy interface {
	// Visit calls fn once for every (block, track) pair in
	// [0,blocks)x[0,tracks), in this policy's order.
	Visit(blocks, tracks int, fn func(block, track int))
}

// BlockMajor iterates one reference block at a time and, within a
// block, enumerates tracks in order.
type BlockMajor struct{}

// Visit implements TraversalPolicy.
func (BlockMajor) Visit(blocks, tracks int, fn func(block, track int)) {
	for b := 0; b < blocks; b++ {
		for t := 0; t < tracks; t++ {
			fn(b, t)
		}
	}
}

// TrackMajor iterates one track index at a time and, within that index,
// enumerates blocks in order.
type TrackMajor struct{}

// Visit implements TraversalPolicy.
func (TrackMajor) Visit(blocks, tracks int, fn func(block, track int)) {
	for t := 0; t < tracks; t++ {
		for b := 0; b < blocks; b++ {
			fn(b, t)
		}
	}
}

// MatchPolicy chooses how an actual checksum is compared against
// reference slots.
type MatchPolicy interface {
	// Match reports whether ref is matched by some value in actual
	// under this policy, for track t and checksum type ct.
	Match(ref uint32, actual calc.Checksums, t int, ct calc.ChecksumType) bool
}

// Positional compares actual[t] against the reference value for exactly
// the track position supplied.
type Positional struct{}

// Match implements MatchPolicy.
func (Positional) Match(ref uint32, actual calc.Checksums, t int, ct calc.ChecksumType) bool {
	if t < 0 || t >= len(actual) {
		return false
	}
	v, ok := actual[t].Value(ct)
	return ok && v == ref
}

// FindAny compares the reference value against every entry of actual;
// any match counts. Used when the caller's input order carries no
// positional meaning (a trackset, not an album).
type FindAny struct{}

// Match implements MatchPolicy.
func (FindAny) Match(ref uint32, actual calc.Checksums, t int, ct calc.ChecksumType) bool {
	for _, set := range actual {
		if v, ok := set.Value(ct); ok && v == ref {
			return true
		}
	}
	return false
}

// TrackPolicy selects how flags compose into "verified". Unlike
// TraversalPolicy and MatchPolicy, this is a property of how Outcome
// answers a query over an already-complete Result, not a dispatch
// used while building one, so a closed tag type (as calc.Algorithm
// uses) fits better than an interface here.
type TrackPolicy int

const (
	// Strict: a track is verified iff it is set in the best block.
	Strict TrackPolicy = iota
	// Liberal: a track is verified iff it is set for either variant in
	// any block.
	Liberal
)
