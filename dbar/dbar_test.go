package dbar_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crf8472/arcstk/dbar"
)

func encodeHeader(totalTracks uint8, id1, id2, cddbID uint32) []byte {
	buf := make([]byte, dbar.BlockHeaderBytes)
	buf[0] = totalTracks
	binary.LittleEndian.PutUint32(buf[1:5], id1)
	binary.LittleEndian.PutUint32(buf[5:9], id2)
	binary.LittleEndian.PutUint32(buf[9:13], cddbID)
	return buf
}

func encodeTriplet(confidence uint8, arcs, frame450 uint32) []byte {
	buf := make([]byte, dbar.TripletBytes)
	buf[0] = confidence
	binary.LittleEndian.PutUint32(buf[1:5], arcs)
	binary.LittleEndian.PutUint32(buf[5:9], frame450)
	return buf
}

func oneBlock(totalTracks uint8, id1, id2, cddbID uint32, triplets [][3]uint32) []byte {
	var buf bytes.Buffer
	buf.Write(encodeHeader(totalTracks, id1, id2, cddbID))
	for _, tr := range triplets {
		buf.Write(encodeTriplet(uint8(tr[0]), tr[1], tr[2]))
	}
	return buf.Bytes()
}

func TestParse_EmptyStreamYieldsEmptyDBAR(t *testing.T) {
	d, err := dbar.Parse(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, d.BlockCount())
}

func TestParse_TwoBlocksRoundTrip(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(oneBlock(2, 0x11111111, 0x22222222, 0x33333333, [][3]uint32{
		{5, 0xAAAAAAAA, 0xBBBBBBBB},
		{9, 0xCCCCCCCC, 0xDDDDDDDD},
	}))
	stream.Write(oneBlock(1, 0x44444444, 0x55555555, 0x66666666, [][3]uint32{
		{3, 0xEEEEEEEE, 0xFFFFFFFF},
	}))

	d, err := dbar.Parse(bytes.NewReader(stream.Bytes()))
	require.NoError(t, err)
	require.Equal(t, 2, d.BlockCount())

	b0 := d.Block(0)
	assert.Equal(t, uint8(2), b0.Header().TotalTracks)
	assert.Equal(t, uint32(0x11111111), b0.Header().ID1)
	require.Equal(t, 2, b0.TrackCount())
	assert.Equal(t, uint8(5), b0.Triplet(0).Confidence)
	assert.Equal(t, uint32(0xAAAAAAAA), b0.Triplet(0).Arcs)
	assert.True(t, b0.Triplet(0).ArcsValid)
	assert.True(t, b0.Triplet(0).Frame450Valid)

	b1 := d.Block(1)
	assert.Equal(t, uint8(1), b1.Header().TotalTracks)
	assert.Equal(t, uint32(0x66666666), b1.Header().CDDBID)

	// Round-trip: serializing d must reproduce the original bytes.
	var out bytes.Buffer
	n, err := d.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(stream.Len()), n)
	assert.Equal(t, stream.Bytes(), out.Bytes())

	// Parsing the serialized bytes again yields an equal DBAR.
	d2, err := dbar.Parse(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, d, d2)
}

func TestParse_HeaderOnlyBlockRaisesAtByte13(t *testing.T) {
	// Two complete blocks, then 13 header bytes of a third block
	// claiming tracks but supplying none.
	var stream bytes.Buffer
	stream.Write(oneBlock(1, 1, 1, 1, [][3]uint32{{1, 1, 1}}))
	stream.Write(oneBlock(1, 2, 2, 2, [][3]uint32{{2, 2, 2}}))
	stream.Write(encodeHeader(5, 0x77777777, 0x88888888, 0x99999999))

	d, err := dbar.Parse(bytes.NewReader(stream.Bytes()))
	require.Error(t, err)

	spe, ok := err.(*dbar.StreamParseException)
	require.True(t, ok, "expected *dbar.StreamParseException, got %T", err)
	assert.Equal(t, 3, spe.Block)
	assert.Equal(t, int64(13), spe.BlockBytePos)

	// The two complete blocks are retained.
	assert.Equal(t, 2, d.BlockCount())
}

func TestParse_TruncatedTripletRaisesAtExpectedOffset(t *testing.T) {
	for k := 1; k <= 8; k++ {
		k := k
		t.Run("", func(t *testing.T) {
			var stream bytes.Buffer
			stream.Write(encodeHeader(2, 1, 1, 1))
			stream.Write(encodeTriplet(9, 0xAAAAAAAA, 0xBBBBBBBB)) // one complete triplet (n=1)
			full := encodeTriplet(7, 0xCCCCCCCC, 0xDDDDDDDD)
			stream.Write(full[:k]) // partial second triplet

			_, err := dbar.Parse(bytes.NewReader(stream.Bytes()))
			require.Error(t, err)
			spe, ok := err.(*dbar.StreamParseException)
			require.True(t, ok)
			assert.Equal(t, 1, spe.Block)
			assert.Equal(t, int64(13+1*9+k), spe.BlockBytePos)
		})
	}
}

func TestParse_SuppressedErrorStopsCleanly(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(oneBlock(1, 1, 1, 1, [][3]uint32{{1, 1, 1}}))
	stream.Write(encodeHeader(3, 2, 2, 2)) // header-only trailing block

	b := dbar.NewBuilder()
	p := dbar.NewParser()
	p.ErrorHandler = suppressingHandler{}

	n, err := p.Parse(bytes.NewReader(stream.Bytes()), b)
	require.NoError(t, err)
	assert.Greater(t, n, int64(0))
	assert.Equal(t, 1, b.DBAR().BlockCount())
}

type suppressingHandler struct{}

func (suppressingHandler) OnError(*dbar.StreamParseException) error { return nil }

func TestIsValid(t *testing.T) {
	assert.False(t, dbar.IsValidArcs(0))
	assert.True(t, dbar.IsValidArcs(1))
	assert.False(t, dbar.IsValidConfidence(0))
	assert.True(t, dbar.IsValidConfidence(1))
}
