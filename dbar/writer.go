package dbar

import (
	"io"

	"github.com/pkg/errors"

	"github.com/crf8472/arcstk/streamio"
)

// WriteTo serializes d back to the wire format, inverting Parser
// bit-for-bit: parsing the bytes WriteTo produces must reproduce d
// exactly.
func (d *DBAR) WriteTo(w io.Writer) (int64, error) {
	sw := streamio.NewWriter(w)

	for b := 0; b < d.BlockCount(); b++ {
		blk := d.Block(b)
		h := blk.Header()

		if err := sw.WriteUint8(h.TotalTracks); err != nil {
			return sw.Pos(), errors.Wrapf(err, "dbar: write header of block %d", b)
		}
		if err := sw.WriteUint32LE(h.ID1); err != nil {
			return sw.Pos(), errors.Wrapf(err, "dbar: write header of block %d", b)
		}
		if err := sw.WriteUint32LE(h.ID2); err != nil {
			return sw.Pos(), errors.Wrapf(err, "dbar: write header of block %d", b)
		}
		if err := sw.WriteUint32LE(h.CDDBID); err != nil {
			return sw.Pos(), errors.Wrapf(err, "dbar: write header of block %d", b)
		}

		for trk := 0; trk < blk.TrackCount(); trk++ {
			t := blk.Triplet(trk)
			if err := sw.WriteUint8(t.Confidence); err != nil {
				return sw.Pos(), errors.Wrapf(err, "dbar: write triplet %d of block %d", trk, b)
			}
			if err := sw.WriteUint32LE(t.Arcs); err != nil {
				return sw.Pos(), errors.Wrapf(err, "dbar: write triplet %d of block %d", trk, b)
			}
			if err := sw.WriteUint32LE(t.Frame450Arcs); err != nil {
				return sw.Pos(), errors.Wrapf(err, "dbar: write triplet %d of block %d", trk, b)
			}
		}
	}

	return sw.Pos(), nil
}

// Parse parses a complete dBAR stream from r using the default parser
// and error handler, returning the resulting DBAR. It is a convenience
// wrapper over Parser for callers that don't need a custom
// ContentHandler or ErrorHandler.
func Parse(r io.Reader) (DBAR, error) {
	b := NewBuilder()
	p := NewParser()
	if _, err := p.Parse(r, b); err != nil {
		return b.DBAR(), err
	}
	return b.DBAR(), nil
}
