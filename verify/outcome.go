package verify

// Outcome wraps a Result with the best-block computation and the
// TrackPolicy used to answer "is this track verified" queries.
// Switching the policy affects only these queries, never the underlying
// Result.
type Outcome struct {
	result Result
	policy TrackPolicy
}

// Result returns the underlying flag matrix.
func (o *Outcome) Result() Result { return o.result }

// SetTrackPolicy changes the policy used by IsVerified and
// AllTracksVerified.
func (o *Outcome) SetTrackPolicy(p TrackPolicy) { o.policy = p }

// BestBlock returns the block index, ARCS variant, and difference of
// the best-matching block, per the tie-break rules of BestBlock.
func (o *Outcome) BestBlock() (block int, isV2 bool, difference int) {
	return BestBlock(o.result)
}

// BestBlockDifference returns just the difference of the best block.
func (o *Outcome) BestBlockDifference() int {
	_, _, diff := BestBlock(o.result)
	return diff
}

// IsVerified reports whether track t counts as verified under the
// current TrackPolicy.
func (o *Outcome) IsVerified(t int) (bool, error) {
	switch o.policy {
	case Liberal:
		for b := 0; b < o.result.TotalBlocks(); b++ {
			if v, err := o.result.Track(b, t, false); err != nil {
				return false, err
			} else if v {
				return true, nil
			}
			if v, err := o.result.Track(b, t, true); err != nil {
				return false, err
			} else if v {
				return true, nil
			}
		}
		return false, nil
	default: // Strict
		block, isV2, _ := o.BestBlock()
		if block < 0 {
			return false, nil
		}
		return o.result.Track(block, t, isV2)
	}
}

// AllTracksVerified reports whether every track is verified under the
// current TrackPolicy.
func (o *Outcome) AllTracksVerified() (bool, error) {
	for t := 0; t < o.result.TracksPerBlock(); t++ {
		ok, err := o.IsVerified(t)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// TotalUnmatchedTracks returns the number of tracks not verified under
// the current TrackPolicy.
func (o *Outcome) TotalUnmatchedTracks() (int, error) {
	unmatched := 0
	for t := 0; t < o.result.TracksPerBlock(); t++ {
		ok, err := o.IsVerified(t)
		if err != nil {
			return 0, err
		}
		if !ok {
			unmatched++
		}
	}
	return unmatched, nil
}
