package verify

import (
	"fmt"
	"io"
)

// Result is the flat boolean flag store produced by a Verifier: for B
// reference blocks and T tracks per block, a single vector of length
// B*(2T+1). Block b occupies indices [b*(2T+1), (b+1)*(2T+1)): offset 0
// is the id flag, offsets [1,T+1) are the v1 track flags, offsets
// [T+1,2T+1) are the v2 track flags. This layout is a contract: callers
// may rely on the accessors below, not on the slice itself.
type Result struct {
	flags  []bool
	blocks int
	tracks int
}

// NewResult allocates a Result for the given number of blocks and
// tracks per block, with every flag cleared.
func NewResult(blocks, tracks int) Result {
	return Result{
		flags:  make([]bool, blocks*(2*tracks+1)),
		blocks: blocks,
		tracks: tracks,
	}
}

// Size returns the total number of flags stored: blocks*(2*tracks+1).
func (r Result) Size() int { return len(r.flags) }

// TotalBlocks returns the number of reference blocks the result covers.
func (r Result) TotalBlocks() int { return r.blocks }

// TracksPerBlock returns the number of tracks compared in each block.
func (r Result) TracksPerBlock() int { return r.tracks }

func (r Result) blockStart(b int) int {
	return b * (2*r.tracks + 1)
}

func (r Result) trackOffset(t int, v2 bool) int {
	off := t + 1
	if v2 {
		off += r.tracks
	}
	return off
}

func (r Result) validateBlock(op string, b int) error {
	if b < 0 || b >= r.blocks {
		return &DomainError{Op: op, Block: b}
	}
	return nil
}

func (r Result) validateTrack(op string, b, t int) error {
	if err := r.validateBlock(op, b); err != nil {
		return err
	}
	if t < 0 || t >= r.tracks {
		return &DomainError{Op: op, Block: b, Track: t, HasTrack: true}
	}
	return nil
}

// VerifyID marks block b's ARId as matched.
func (r *Result) VerifyID(b int) error {
	if err := r.validateBlock("VerifyID", b); err != nil {
		return err
	}
	r.flags[r.blockStart(b)] = true
	return nil
}

// ID reports whether block b's ARId was marked as matched.
func (r Result) ID(b int) (bool, error) {
	if err := r.validateBlock("ID", b); err != nil {
		return false, err
	}
	return r.flags[r.blockStart(b)], nil
}

// VerifyTrack marks track t of block b as matched for the ARCSv2 flag
// when v2 is true, otherwise the ARCSv1 flag.
func (r *Result) VerifyTrack(b, t int, v2 bool) error {
	if err := r.validateTrack("VerifyTrack", b, t); err != nil {
		return err
	}
	r.flags[r.blockStart(b)+r.trackOffset(t, v2)] = true
	return nil
}

// Track reports the verification flag for track t of block b, for
// ARCSv2 when v2 is true, otherwise ARCSv1.
func (r Result) Track(b, t int, v2 bool) (bool, error) {
	if err := r.validateTrack("Track", b, t); err != nil {
		return false, err
	}
	return r.flags[r.blockStart(b)+r.trackOffset(t, v2)], nil
}

// Difference returns the number of mismatches for block b under the
// given variant: 1 if the id flag is unset, plus 1 for every unset
// track flag of that variant.
func (r Result) Difference(b int, v2 bool) (int, error) {
	if err := r.validateBlock("Difference", b); err != nil {
		return 0, err
	}
	diff := 0
	if id, _ := r.ID(b); !id {
		diff++
	}
	for t := 0; t < r.tracks; t++ {
		if v, _ := r.Track(b, t, v2); !v {
			diff++
		}
	}
	return diff, nil
}

// Dump writes a human-readable, line-per-block diagnostic rendering of
// the result to w. It is the single diagnostic stream dump the library
// provides; formatted end-user reports are left to callers.
func (r Result) Dump(w io.Writer) error {
	for b := 0; b < r.blocks; b++ {
		id, _ := r.ID(b)
		d1, _ := r.Difference(b, false)
		d2, _ := r.Difference(b, true)
		if _, err := fmt.Fprintf(w, "block %d: id=%v diff(v1)=%d diff(v2)=%d\n", b, id, d1, d2); err != nil {
			return err
		}
		for t := 0; t < r.tracks; t++ {
			v1, _ := r.Track(b, t, false)
			v2, _ := r.Track(b, t, true)
			if _, err := fmt.Fprintf(w, "  track %d: v1=%v v2=%v\n", t, v1, v2); err != nil {
				return err
			}
		}
	}
	return nil
}
