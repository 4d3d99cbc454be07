// Package id implements ARId, the canonical AccurateRip disc identifier,
// and its validating factory.
package id

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/crf8472/arcstk/cdda"
)

const arURLPrefix = "http://www.accuraterip.com/accuraterip/"

// InvalidMetadata is returned by ARId/ToC factories when the supplied
// offsets or leadout violate the CDDA invariants of spec.md §3.
type InvalidMetadata struct {
	Reason string
}

func (e *InvalidMetadata) Error() string {
	return "invalid metadata: " + e.Reason
}

// ARId is the canonical AccurateRip disc identifier: a track count and
// three 32-bit ids. It is empty iff all four fields are zero.
type ARId struct {
	trackCount int
	id1        uint32
	id2        uint32
	cddbID     uint32
}

// Empty is the canonical empty ARId (track_count 0, all ids 0).
var Empty = ARId{}

// New computes an ARId from a validated set of track offsets (frames) and
// a leadout (frames). offsets must already satisfy the ToC invariants of
// spec.md §3 (strictly ascending, minimum inter-track distance, etc.) —
// New itself only validates the minimal preconditions its own formulas
// require (track count range, non-negative leadout).
func New(offsets []int64, leadout int64) (ARId, error) {
	if len(offsets) > cdda.MaxTrackCount {
		return ARId{}, errors.Wrap(&InvalidMetadata{Reason: fmt.Sprintf("track count %d exceeds maximum of %d", len(offsets), cdda.MaxTrackCount)}, "id.New")
	}
	if leadout < 0 {
		return ARId{}, errors.Wrap(&InvalidMetadata{Reason: "negative leadout"}, "id.New")
	}

	return ARId{
		trackCount: len(offsets),
		id1:        discID1(offsets, leadout),
		id2:        discID2(offsets, leadout),
		cddbID:     cddbID(offsets, leadout),
	}, nil
}

// NewFromValues constructs an ARId directly from already-known id values,
// e.g. when rebuilding one from a parsed dBAR block header.
func NewFromValues(trackCount int, id1, id2, cddbID uint32) (ARId, error) {
	if !cdda.IsValidTrackCount(trackCount) {
		return ARId{}, errors.Wrap(&InvalidMetadata{Reason: fmt.Sprintf("track count %d out of range", trackCount)}, "id.NewFromValues")
	}
	return ARId{trackCount: trackCount, id1: id1, id2: id2, cddbID: cddbID}, nil
}

// discID1 sums all offsets plus the leadout, wrapping in 32 bits.
func discID1(offsets []int64, leadout int64) uint32 {
	var accum int64
	for _, o := range offsets {
		accum += o
	}
	return uint32(accum + leadout)
}

// discID2 sums the products of (offset normalized to >= 1) and the 1-based
// track number, plus leadout*(n+1).
func discID2(offsets []int64, leadout int64) uint32 {
	var accum int64
	track := int64(1)
	for _, o := range offsets {
		v := o
		if v <= 0 {
			v = 1
		}
		accum += v * track
		track++
	}
	return uint32(accum + leadout*track)
}

// cddbID computes the freedb-style disc id: a digit-sum checksum in the
// high byte, total playing time in seconds in the middle two bytes, and
// the track count in the low byte.
func cddbID(offsets []int64, leadout int64) uint32 {
	const fps = cdda.FramesPerSecond

	var startAudio int64
	if len(offsets) > 0 {
		startAudio = offsets[0]
	}

	totalSeconds := uint32(leadout/fps) - uint32(startAudio/fps)

	var accum uint32
	for _, o := range offsets {
		accum += uint32(sumDigits(uint32(o/fps) + 2))
	}
	accum %= 255

	trackCount := uint32(len(offsets))

	return (accum << 24) | (totalSeconds << 8) | trackCount
}

// sumDigits is the recursive decimal digit sum: d(n) = n for n < 10, else
// n mod 10 + d(n div 10).
func sumDigits(n uint32) uint32 {
	if n < 10 {
		return n
	}
	return n%10 + sumDigits(n/10)
}

// TrackCount returns the number of tracks this id was computed for.
func (a ARId) TrackCount() int { return a.trackCount }

// ID1 returns the first 32-bit disc id.
func (a ARId) ID1() uint32 { return a.id1 }

// ID2 returns the second 32-bit disc id.
func (a ARId) ID2() uint32 { return a.id2 }

// CDDBID returns the freedb-style CDDB disc id.
func (a ARId) CDDBID() uint32 { return a.cddbID }

// Empty reports whether this ARId is the canonical empty value: zero track
// count and all three ids zero.
func (a ARId) Empty() bool {
	return a.trackCount == 0 && a.id1 == 0 && a.id2 == 0 && a.cddbID == 0
}

// Equal reports value equality between two ARIds.
func (a ARId) Equal(other ARId) bool {
	return a.trackCount == other.trackCount &&
		a.id1 == other.id1 &&
		a.id2 == other.id2 &&
		a.cddbID == other.cddbID
}

// String renders the canonical "ttt-iiiiiiii-iiiiiiii-iiiiiiii" id string
// (decimal track count, three zero-padded lowercase hex ids).
func (a ARId) String() string {
	return fmt.Sprintf("%03d-%08x-%08x-%08x", a.trackCount, a.id1, a.id2, a.cddbID)
}

// Filename renders the canonical dBAR response filename for this disc,
// e.g. "dBAR-015-001b9178-014be24e-b40d2d0f.bin".
func (a ARId) Filename() string {
	return fmt.Sprintf("dBAR-%03d-%08x-%08x-%08x.bin", a.trackCount, a.id1, a.id2, a.cddbID)
}

// URL renders the canonical AccurateRip HTTP URL for this disc's dBAR
// response file.
func (a ARId) URL() string {
	return fmt.Sprintf("%s%x/%x/%x/%s",
		arURLPrefix,
		a.id1&0xF,
		(a.id1>>4)&0xF,
		(a.id1>>8)&0xF,
		a.Filename(),
	)
}
