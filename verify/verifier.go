// Package verify compares a locally computed Checksums against a
// reference DBAR, producing a VerificationResult-style flag matrix via
// one of two orthogonal verifier flavors: AlbumVerifier (positional
// matching against a known ARId) and TracksetVerifier (find-any matching
// with no ARId to compare).
package verify

import (
	"github.com/pkg/errors"

	"github.com/crf8472/arcstk/arclog"
	"github.com/crf8472/arcstk/calc"
	"github.com/crf8472/arcstk/dbar"
	"github.com/crf8472/arcstk/id"
)

// Verifier compares actual Checksums against a reference DBAR under a
// fixed combination of MatchPolicy and id-handling ("album" vs.
// "trackset"), configurable TraversalPolicy and TrackPolicy.
type Verifier struct {
	ref       dbar.DBAR
	trackset  bool
	match     MatchPolicy
	traversal TraversalPolicy
	policy    TrackPolicy
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithTraversal selects the TraversalPolicy used while populating the
// Result. Default: BlockMajor.
func WithTraversal(t TraversalPolicy) Option {
	return func(v *Verifier) { v.traversal = t }
}

// WithTrackPolicy selects the TrackPolicy used by IsVerified queries on
// the produced Outcome. Default: Strict.
func WithTrackPolicy(p TrackPolicy) Option {
	return func(v *Verifier) { v.policy = p }
}

// NewAlbumVerifier builds a Verifier that combines positional matching
// with an actual ARId: it compares the supplied ARId against each
// reference block's id and skips track comparisons entirely for any
// block whose id does not match.
func NewAlbumVerifier(ref dbar.DBAR, opts ...Option) *Verifier {
	v := &Verifier{ref: ref, trackset: false, match: Positional{}, traversal: BlockMajor{}, policy: Strict}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewTracksetVerifier builds a Verifier that combines find-any matching
// with an empty actual ARId: every per-block id flag is forced true
// (there is no id to compare), and tracks are matched without regard to
// position — any actual track may satisfy any reference slot.
func NewTracksetVerifier(ref dbar.DBAR, opts ...Option) *Verifier {
	v := &Verifier{ref: ref, trackset: true, match: FindAny{}, traversal: BlockMajor{}, policy: Strict}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Verify compares actual against the Verifier's reference DBAR and
// returns the resulting Outcome. actualID is ignored by a
// TracksetVerifier.
func (v *Verifier) Verify(actual calc.Checksums, actualID id.ARId) (*Outcome, error) {
	blocks := v.ref.BlockCount()
	tracks := len(actual)
	result := NewResult(blocks, tracks)

	// Every block's id flag is decided up front: a TracksetVerifier
	// forces it true, an AlbumVerifier compares the reconstructed block
	// ARId against actualID. A non-matching id on an AlbumVerifier skips
	// track comparisons for that block entirely.
	eligible := make([]bool, blocks)
	for b := 0; b < blocks; b++ {
		idMatches, err := v.blockIDMatches(v.ref.Block(b), actualID)
		if err != nil {
			return nil, errors.Wrap(err, "verify.Verify")
		}
		if idMatches {
			if err := result.VerifyID(b); err != nil {
				return nil, errors.Wrap(err, "verify.Verify")
			}
		}
		eligible[b] = idMatches
	}

	v.traversal.Visit(blocks, tracks, func(b, t int) {
		if eligible[b] {
			v.matchTrack(&result, b, t, actual)
		}
	})

	block, isV2, diff := BestBlock(result)
	arclog.Infof("verify: best block %d (v2=%v) difference=%d", block, isV2, diff)

	return &Outcome{result: result, policy: v.policy}, nil
}

// blockIDMatches reports whether block's reconstructed ARId equals
// actualID. A TracksetVerifier always reports true: there is no id to
// compare against.
func (v *Verifier) blockIDMatches(blk dbar.Block, actualID id.ARId) (bool, error) {
	if v.trackset {
		return true, nil
	}
	h := blk.Header()
	blockID, err := id.NewFromValues(int(h.TotalTracks), h.ID1, h.ID2, h.CDDBID)
	if err != nil {
		return false, err
	}
	return blockID.Equal(actualID), nil
}

// matchTrack compares reference slot (b,t) against actual under the
// Verifier's MatchPolicy, for both ARCS variants.
func (v *Verifier) matchTrack(result *Result, b, t int, actual calc.Checksums) {
	blk := v.ref.Block(b)
	if t >= blk.TrackCount() {
		return
	}
	refVal := blk.Triplet(t).Arcs

	for _, ct := range []calc.ChecksumType{calc.ARCS1, calc.ARCS2} {
		if v.match.Match(refVal, actual, t, ct) {
			_ = result.VerifyTrack(b, t, ct == calc.ARCS2)
		}
	}
}
