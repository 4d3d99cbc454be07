package dbar

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/crf8472/arcstk/arclog"
	"github.com/crf8472/arcstk/streamio"
)

// Parser walks a dBAR byte stream and emits SAX-style events to a
// ContentHandler, maintaining the block/byte position bookkeeping needed
// to report truncation precisely.
type Parser struct {
	// ErrorHandler is consulted on every short read. A nil ErrorHandler
	// defaults to DefaultErrorHandler, which re-raises unconditionally.
	ErrorHandler ErrorHandler
}

// NewParser returns a Parser with the default (re-raising) error
// handler.
func NewParser() *Parser {
	return &Parser{ErrorHandler: DefaultErrorHandler{}}
}

// Parse reads r to completion (or until a short read is reported as
// fatal by the error handler), delivering events to ch. It returns the
// total number of bytes successfully consumed.
//
// A clean end of stream between blocks is not an error: zero blocks is
// itself a valid, empty response. A short read once a block has begun
// (an incomplete header, or a header promising more triplets than the
// stream supplies) is reported to the ErrorHandler as a
// StreamParseException carrying the absolute byte position, the 1-based
// block number, and the 1-based byte position within that block.
func (p *Parser) Parse(r io.Reader, ch ContentHandler) (int64, error) {
	eh := p.ErrorHandler
	if eh == nil {
		eh = DefaultErrorHandler{}
	}

	br := bufio.NewReader(r)
	sr := streamio.NewReader(br)

	ch.StartInput()

	blockNum := 0
	for {
		if _, err := br.Peek(1); err != nil {
			break
		}

		blockNum++
		blockStart := sr.Pos()
		ch.StartBlock()

		headerBuf := make([]byte, BlockHeaderBytes)
		n, err := sr.ReadFull(headerBuf)
		if err != nil {
			reportPartialHeader(ch, headerBuf, n)
			serr := &StreamParseException{
				BytePos:      sr.Pos(),
				Block:        blockNum,
				BlockBytePos: sr.Pos() - blockStart,
			}
			arclog.Warnf("dbar: truncated header in block %d at byte %d", blockNum, sr.Pos())
			if herr := eh.OnError(serr); herr != nil {
				return sr.Pos(), herr
			}
			ch.EndInput()
			return sr.Pos(), nil
		}

		h := decodeHeader(headerBuf)
		ch.Header(h)

		for trk := 0; trk < int(h.TotalTracks); trk++ {
			tripletBuf := make([]byte, TripletBytes)
			tn, terr := sr.ReadFull(tripletBuf)
			if terr != nil {
				reportPartialTriplet(ch, tripletBuf, tn)
				serr := &StreamParseException{
					BytePos:      sr.Pos(),
					Block:        blockNum,
					BlockBytePos: sr.Pos() - blockStart,
				}
				arclog.Warnf("dbar: truncated triplet in block %d at byte %d", blockNum, sr.Pos())
				if herr := eh.OnError(serr); herr != nil {
					return sr.Pos(), herr
				}
				ch.EndInput()
				return sr.Pos(), nil
			}
			ch.Triplet(decodeTriplet(tripletBuf))
		}

		ch.EndBlock()
	}

	ch.EndInput()
	return sr.Pos(), nil
}

func decodeHeader(buf []byte) BlockHeader {
	return BlockHeader{
		TotalTracks: buf[0],
		ID1:         binary.LittleEndian.Uint32(buf[1:5]),
		ID2:         binary.LittleEndian.Uint32(buf[5:9]),
		CDDBID:      binary.LittleEndian.Uint32(buf[9:13]),
	}
}

func decodeTriplet(buf []byte) Triplet {
	return Triplet{
		Confidence:    buf[0],
		Arcs:          binary.LittleEndian.Uint32(buf[1:5]),
		Frame450Arcs:  binary.LittleEndian.Uint32(buf[5:9]),
		ArcsValid:     true,
		Frame450Valid: true,
	}
}

// reportPartialHeader forwards the bytes of a short header read to ch,
// matching the field-by-field availability a truncated 13-byte header
// read leaves behind: total_tracks needs 1 byte, id1 needs 5, id2 needs
// 9. Fewer than 1 byte yields no Header call at all, mirroring a
// truncation that did not even deliver the track count.
func reportPartialHeader(ch ContentHandler, buf []byte, n int) {
	if n == 0 {
		return
	}
	h := BlockHeader{TotalTracks: buf[0]}
	if n > 4 {
		h.ID1 = binary.LittleEndian.Uint32(buf[1:5])
	}
	if n > 8 {
		h.ID2 = binary.LittleEndian.Uint32(buf[5:9])
	}
	ch.Header(h)
}

// reportPartialTriplet forwards the bytes of a short triplet read to ch.
// Confidence needs 1 byte, arcs needs 5; frame450_arcs is never valid on
// a short read, since a fully-read frame450_arcs implies 9 bytes were
// read, which is not a short read at all. Fewer than 1 byte yields no
// Triplet call.
func reportPartialTriplet(ch ContentHandler, buf []byte, n int) {
	if n == 0 {
		return
	}
	t := Triplet{Confidence: buf[0]}
	if n > 4 {
		t.Arcs = binary.LittleEndian.Uint32(buf[1:5])
		t.ArcsValid = true
	}
	ch.Triplet(t)
}
