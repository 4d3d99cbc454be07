// Package sampling partitions an incoming block of CDDA samples into
// contiguous, track-aligned sub-ranges, respecting the front/back skip
// regions excluded from ARCS computation.
//
// There is a single Partitioner parameterized by a Context built from a
// ToC, collapsing what the original implementation kept as two parallel
// single-track/multi-track code paths (spec.md §9).
package sampling

import (
	"github.com/pkg/errors"

	"github.com/crf8472/arcstk/cdda"
	"github.com/crf8472/arcstk/toc"
)

// Partition is a contiguous, single-track run of samples within one
// incoming block.
type Partition struct {
	// Track is the 1-based track number this partition belongs to.
	Track int
	// FirstSample and LastSample are absolute sample indices (inclusive)
	// into the whole stream.
	FirstSample int64
	LastSample  int64
	// StartsTrack is true iff FirstSample equals the track's first
	// relevant sample (after any front skip).
	StartsTrack bool
	// EndsTrack is true iff LastSample equals the track's last relevant
	// sample (for the last track, the sample just before the back skip).
	EndsTrack bool
}

// Len returns the number of samples in the partition.
func (p Partition) Len() int64 {
	return p.LastSample - p.FirstSample + 1
}

// Context precomputes the per-track sample boundaries and the legal
// [first, last] relevant sample range for a given ToC and skip setting.
type Context struct {
	trackFirstSample []int64 // trackFirstSample[i] = first sample of track i+1
	firstRelevant    int64
	lastRelevant     int64
}

// NewContext builds a Context from a complete ToC. When skip is true, the
// front skip (cdda.FrontSkipSamples) is excluded from the start of track 1
// and the back skip (cdda.BackSkipSamples) from the end of the last track,
// per spec.md §4.4 — this applies uniformly whether the ToC has one track
// or many; there is no special case for a single-track disc.
func NewContext(t toc.ToC, skip bool) (Context, error) {
	n := t.TrackCount()
	if n == 0 {
		return Context{}, errors.New("sampling: ToC has no tracks")
	}
	if !t.Complete() {
		return Context{}, errors.New("sampling: ToC has no leadout")
	}

	trackFirstSample := make([]int64, n)
	for i := 1; i <= n; i++ {
		v := cdda.FramesToSamples(t.Offset(i))
		if i == 1 && skip {
			v += cdda.FrontSkipSamples
		}
		trackFirstSample[i-1] = v
	}

	totalSamples := cdda.FramesToSamples(t.Leadout())
	lastRelevant := totalSamples - 1
	if skip {
		lastRelevant -= cdda.BackSkipSamples
	}

	return Context{
		trackFirstSample: trackFirstSample,
		firstRelevant:    trackFirstSample[0],
		lastRelevant:     lastRelevant,
	}, nil
}

// FirstRelevantSample returns the first sample index (inclusive) that
// belongs in the ARCS computation.
func (c Context) FirstRelevantSample() int64 { return c.firstRelevant }

// LastRelevantSample returns the last sample index (inclusive) that
// belongs in the ARCS computation.
func (c Context) LastRelevantSample() int64 { return c.lastRelevant }

// trackLastSample returns the last sample index (inclusive) of the given
// 1-based track.
func (c Context) trackLastSample(track int) int64 {
	if track < len(c.trackFirstSample) {
		return c.trackFirstSample[track] - 1
	}
	return c.lastRelevant
}

// trackForSample returns the 1-based track number containing the given
// absolute sample index, which must lie within [firstRelevant,
// lastRelevant].
func (c Context) trackForSample(sample int64) int {
	lo, hi, track := 0, len(c.trackFirstSample)-1, 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if c.trackFirstSample[mid] <= sample {
			track = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return track + 1
}

// Partitions splits the block of length samples starting at the absolute
// sample index offset into contiguous, track-aligned partitions, per
// spec.md §4.4. A block lying entirely outside the legal relevant range
// yields no partitions.
func Partitions(ctx Context, offset, length int64) []Partition {
	if length <= 0 {
		return nil
	}

	blockStart := offset
	blockEnd := offset + length - 1

	if blockEnd < ctx.firstRelevant || blockStart > ctx.lastRelevant {
		return nil
	}

	start := blockStart
	if start < ctx.firstRelevant {
		start = ctx.firstRelevant
	}
	end := blockEnd
	if end > ctx.lastRelevant {
		end = ctx.lastRelevant
	}

	var partitions []Partition
	cur := start
	for cur <= end {
		track := ctx.trackForSample(cur)
		trackLast := ctx.trackLastSample(track)

		partEnd := end
		if trackLast < partEnd {
			partEnd = trackLast
		}

		partitions = append(partitions, Partition{
			Track:       track,
			FirstSample: cur,
			LastSample:  partEnd,
			StartsTrack: cur == ctx.trackFirstSample[track-1],
			EndsTrack:   partEnd == trackLast,
		})

		cur = partEnd + 1
	}

	return partitions
}
