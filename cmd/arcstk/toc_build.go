package main

import (
	"github.com/pkg/errors"

	"github.com/crf8472/arcstk/toc"
)

// tocFromTracks builds a complete ToC by laying the decoded tracks back to
// back: track 1 starts at frame 0, and every following track starts where
// the previous one ends. This is the one disc geometry a set of
// independently-decoded WAV fixtures can unambiguously imply without a
// cue sheet.
func tocFromTracks(tracks []decodedTrack) (toc.ToC, error) {
	offsets := make([]int64, len(tracks))
	var cursor int64
	for i, t := range tracks {
		offsets[i] = cursor
		cursor += t.frames()
	}
	leadout := cursor

	t, err := toc.New(offsets, leadout)
	if err != nil {
		return toc.ToC{}, errors.Wrap(err, "building ToC from WAV fixtures")
	}
	return t, nil
}
