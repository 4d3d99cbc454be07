// Package dbar implements the streaming codec for the AccurateRip binary
// response format: a sequence of fixed-layout blocks, each a header
// followed by one triplet per track.
//
// Wire format (little-endian throughout), repeated until end of stream:
//
//	offset 0   u8  total_tracks
//	offset 1   u32 id1
//	offset 5   u32 id2
//	offset 9   u32 cddb_id
//	offset 13  ..  repeated total_tracks times:
//	    +0  u8  confidence
//	    +1  u32 arcs
//	    +5  u32 frame450_arcs
package dbar

// BlockHeaderBytes is the on-wire size of a BlockHeader.
const BlockHeaderBytes = 1 + 4 + 4 + 4

// TripletBytes is the on-wire size of a Triplet.
const TripletBytes = 1 + 4 + 4

// BlockHeader is the fixed-size prefix of a Block: the track count the
// block claims to carry and the disc identifiers it was computed for.
type BlockHeader struct {
	TotalTracks uint8
	ID1         uint32
	ID2         uint32
	CDDBID      uint32
}

// Triplet is one track's entry within a Block: a confidence count and two
// checksums (the ordinary ARCS and the ARCS recomputed with frame 450
// dropped, used to detect and repair a single sample-offset error).
//
// After a truncated parse, any subset of the three fields may be unset;
// ArcsValid / Frame450Valid record which of the u32 fields were fully
// read. Confidence has no validity flag of its own: it is always either
// fully read or the triplet does not exist at all, per the parser's
// byte-order (confidence is read before arcs and frame450_arcs).
type Triplet struct {
	Confidence    uint8
	Arcs          uint32
	Frame450Arcs  uint32
	ArcsValid     bool
	Frame450Valid bool
}

// IsValidArcs reports whether v is a parsed (non-sentinel) ARCS value.
// 0 is the sentinel for "unparsed"; a real ARCS is never the all-zero
// value for non-silent audio.
func IsValidArcs(v uint32) bool {
	return v > 0
}

// IsValidConfidence reports whether v is a parsed (non-sentinel)
// confidence value.
func IsValidConfidence(v uint32) bool {
	return v > 0
}

// Block is a non-owning view of one block within a DBAR: a header plus
// its triplets. It is bound to its DBAR and an index and must not outlive
// the DBAR it was obtained from.
type Block struct {
	dbar *DBAR
	idx  int
}

// Header returns the block's header.
func (b Block) Header() BlockHeader {
	return b.dbar.headers[b.idx]
}

// TrackCount returns the number of triplets in this block.
func (b Block) TrackCount() int {
	return len(b.dbar.triplets[b.idx])
}

// Triplet returns the triplet for the given 0-based track index within
// this block.
func (b Block) Triplet(track int) Triplet {
	return b.dbar.triplets[b.idx][track]
}

// DBAR is the ordered sequence of blocks parsed from (or to be written
// to) a dBAR stream. Blocks are independent of one another; the same
// ARId may legitimately appear more than once (mirrors for the same
// disc, or genuinely distinct pressings colliding on id).
//
// DBAR owns its interior slices; Block is a non-owning view bound to a
// DBAR and an index.
type DBAR struct {
	headers  []BlockHeader
	triplets [][]Triplet
}

// Empty is the zero-block DBAR, a valid value (an empty response is
// legal: zero blocks, zero bytes, no error).
var Empty = DBAR{}

// BlockCount returns the number of blocks.
func (d *DBAR) BlockCount() int {
	return len(d.headers)
}

// Block returns a view of the block at the given 0-based index.
func (d *DBAR) Block(i int) Block {
	return Block{dbar: d, idx: i}
}

// addBlock appends a fully parsed block. Used by Builder.
func (d *DBAR) addBlock(h BlockHeader, triplets []Triplet) {
	d.headers = append(d.headers, h)
	d.triplets = append(d.triplets, triplets)
}
