package id_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crf8472/arcstk/id"
)

// Scenario A — identifier from canonical album (spec.md §8).
func TestNew_ScenarioA(t *testing.T) {
	offsets := []int64{
		33, 5225, 7390, 23380, 35608, 49820, 69508, 87733, 106333, 139495,
		157863, 198495, 213368, 225320, 234103,
	}
	leadout := int64(253038)

	got, err := id.New(offsets, leadout)
	require.NoError(t, err)

	assert.Equal(t, 15, got.TrackCount())
	assert.Equal(t, uint32(0x001B9178), got.ID1())
	assert.Equal(t, uint32(0x014BE24E), got.ID2())
	assert.Equal(t, uint32(0xB40D2D0F), got.CDDBID())
	assert.Equal(t, "dBAR-015-001b9178-014be24e-b40d2d0f.bin", got.Filename())
}

// Scenario B — identifier with track 1 at offset 0.
func TestNew_ScenarioB(t *testing.T) {
	offsets := []int64{
		0, 29042, 53880, 58227, 84420, 94192, 119165, 123030, 147500, 148267,
		174602, 208125, 212705, 239890, 268705, 272055, 291720, 319992,
	}
	leadout := int64(332075)

	got, err := id.New(offsets, leadout)
	require.NoError(t, err)

	assert.Equal(t, 18, got.TrackCount())
	assert.Equal(t, uint32(0x00307C78), got.ID1())
	assert.Equal(t, uint32(0x0281351D), got.ID2())
	assert.Equal(t, uint32(0x27114B12), got.CDDBID())
}

// Scenario C — single-track identifier.
func TestNew_ScenarioC(t *testing.T) {
	offsets := []int64{33}
	leadout := int64(233484)

	got, err := id.New(offsets, leadout)
	require.NoError(t, err)

	assert.Equal(t, 1, got.TrackCount())
	assert.Equal(t, uint32(0x0003902D), got.ID1())
	assert.Equal(t, uint32(0x00072039), got.ID2())
	assert.Equal(t, uint32(0x020C2901), got.CDDBID())
}

func TestEmpty(t *testing.T) {
	assert.True(t, id.Empty.Empty())

	got, err := id.New(nil, 0)
	require.NoError(t, err)
	assert.True(t, got.Empty())
}

func TestNew_RejectsTooManyTracks(t *testing.T) {
	offsets := make([]int64, 100)
	_, err := id.New(offsets, 1000)
	assert.Error(t, err)
}

func TestURL(t *testing.T) {
	got, err := id.New([]int64{33}, 233484)
	require.NoError(t, err)

	assert.Equal(t,
		"http://www.accuraterip.com/accuraterip/d/2/0/dBAR-001-0003902d-00072039-020c2901.bin",
		got.URL(),
	)
}
