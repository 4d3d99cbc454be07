// Package toc implements ToC, the disc table of contents, and its
// validating factories.
package toc

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/crf8472/arcstk/cdda"
	"github.com/crf8472/arcstk/id"
)

// InvalidMetadata mirrors id.InvalidMetadata; ToC validation failures use
// the same taxonomy entry (spec.md §7).
type InvalidMetadata = id.InvalidMetadata

// ToC holds a disc's track offsets and, optionally, a leadout, parsed
// lengths and filenames. A ToC produced without a leadout is incomplete;
// Merge completes it.
type ToC struct {
	trackCount int
	offsets    []int64 // frames, length trackCount
	lengths    []int64 // frames, optional parsed lengths, length trackCount or 0
	files      []string
	leadout    int64 // 0 if unset
}

func validateOffsets(offsets []int64) error {
	if len(offsets) == 0 {
		return errors.Wrap(&InvalidMetadata{Reason: "no track offsets given"}, "toc")
	}
	if len(offsets) > cdda.MaxTrackCount {
		return errors.Wrap(&InvalidMetadata{Reason: fmt.Sprintf("track count %d exceeds maximum of %d", len(offsets), cdda.MaxTrackCount)}, "toc")
	}

	prev := int64(-1)
	for i, o := range offsets {
		if o < 0 {
			return errors.Wrap(&InvalidMetadata{Reason: fmt.Sprintf("offset[%d] is negative", i+1)}, "toc")
		}
		if i > 0 && o-prev < cdda.MinTrackDistance {
			return errors.Wrap(&InvalidMetadata{Reason: fmt.Sprintf("offset[%d] is less than %d frames after offset[%d]", i+1, cdda.MinTrackDistance, i)}, "toc")
		}
		if i > 0 && o <= prev {
			return errors.Wrap(&InvalidMetadata{Reason: fmt.Sprintf("offsets are not strictly ascending at track %d", i+1)}, "toc")
		}
		prev = o
	}

	if offsets[len(offsets)-1] > cdda.MaxOffset {
		return errors.Wrap(&InvalidMetadata{Reason: fmt.Sprintf("last offset %d exceeds maximum of %d", offsets[len(offsets)-1], cdda.MaxOffset)}, "toc")
	}

	return nil
}

func validateLeadout(offsets []int64, leadout int64) error {
	last := offsets[len(offsets)-1]
	if leadout < last+cdda.MinTrackLength {
		return errors.Wrap(&InvalidMetadata{Reason: fmt.Sprintf("leadout %d is less than %d frames after the last offset %d", leadout, cdda.MinTrackLength, last)}, "toc")
	}
	if leadout > cdda.MaxBlockAddress {
		return errors.Wrap(&InvalidMetadata{Reason: fmt.Sprintf("leadout %d exceeds maximum block address %d", leadout, cdda.MaxBlockAddress)}, "toc")
	}
	return nil
}

// New validates offsets and leadout per spec.md §3 and constructs a
// complete ToC.
func New(offsets []int64, leadout int64) (ToC, error) {
	if err := validateOffsets(offsets); err != nil {
		return ToC{}, err
	}
	if err := validateLeadout(offsets, leadout); err != nil {
		return ToC{}, err
	}

	return ToC{
		trackCount: len(offsets),
		offsets:    append([]int64(nil), offsets...),
		leadout:    leadout,
	}, nil
}

// NewIncomplete validates offsets and retains parsed lengths and filenames
// but leaves the leadout unset. The resulting ToC is incomplete until
// Merge is called. Parsed lengths are retained for round-tripping only;
// they are never substituted for the offset-derived effective lengths
// EffectiveLength computes.
func NewIncomplete(offsets []int64, lengths []int64, files []string) (ToC, error) {
	if err := validateOffsets(offsets); err != nil {
		return ToC{}, err
	}
	if lengths != nil && len(lengths) != len(offsets) {
		return ToC{}, errors.Wrap(&InvalidMetadata{Reason: "lengths count does not match offsets count"}, "toc")
	}
	if files != nil && len(files) != len(offsets) {
		return ToC{}, errors.Wrap(&InvalidMetadata{Reason: "files count does not match offsets count"}, "toc")
	}

	t := ToC{
		trackCount: len(offsets),
		offsets:    append([]int64(nil), offsets...),
	}
	if lengths != nil {
		t.lengths = append([]int64(nil), lengths...)
	}
	if files != nil {
		t.files = append([]string(nil), files...)
	}
	return t, nil
}

// Merge completes an incomplete ToC with a leadout, without re-validating
// the offsets (they were already validated by NewIncomplete).
func Merge(t ToC, leadout int64) (ToC, error) {
	if err := validateLeadout(t.offsets, leadout); err != nil {
		return ToC{}, err
	}
	t.leadout = leadout
	return t, nil
}

// TrackCount returns the number of tracks.
func (t ToC) TrackCount() int { return t.trackCount }

// Offset returns the offset of the given 1-based track number, in frames.
func (t ToC) Offset(track int) int64 { return t.offsets[track-1] }

// Offsets returns a copy of all track offsets, in frames.
func (t ToC) Offsets() []int64 {
	return append([]int64(nil), t.offsets...)
}

// Leadout returns the leadout frame address. It is 0 when the ToC is
// incomplete.
func (t ToC) Leadout() int64 { return t.leadout }

// Complete reports whether the ToC has a leadout.
func (t ToC) Complete() bool { return t.leadout > 0 }

// ParsedLength returns the parsed (as opposed to effective) length of the
// given 1-based track, or 0 if no parsed lengths were supplied.
func (t ToC) ParsedLength(track int) int64 {
	if t.lengths == nil {
		return 0
	}
	return t.lengths[track-1]
}

// Filename returns the filename associated with the given 1-based track,
// or "" if none was supplied.
func (t ToC) Filename(track int) string {
	if t.files == nil {
		return ""
	}
	return t.files[track-1]
}

// EffectiveLength returns the effective length in frames of the given
// 1-based track: offset[i+1]-offset[i] for i<n, leadout-offset[n] for i=n.
// EffectiveLength panics if called on an incomplete ToC and track is the
// last track, since the length of the last track is undefined without a
// leadout.
func (t ToC) EffectiveLength(track int) int64 {
	if track < t.trackCount {
		return t.offsets[track] - t.offsets[track-1]
	}
	if !t.Complete() {
		panic("toc: EffectiveLength of last track requires a leadout")
	}
	return t.leadout - t.offsets[track-1]
}

// ARId computes the canonical AccurateRip identifier for this ToC.
// Requires a complete ToC.
func (t ToC) ARId() (id.ARId, error) {
	if !t.Complete() {
		return id.ARId{}, errors.Wrap(&InvalidMetadata{Reason: "cannot compute ARId of an incomplete ToC"}, "toc.ARId")
	}
	return id.New(t.offsets, t.leadout)
}
