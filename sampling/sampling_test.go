package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crf8472/arcstk/cdda"
	"github.com/crf8472/arcstk/sampling"
	"github.com/crf8472/arcstk/toc"
)

func twoTrackToC(t *testing.T) toc.ToC {
	t.Helper()
	tc, err := toc.New([]int64{0, 300}, 600)
	require.NoError(t, err)
	return tc
}

func TestNewContext_SkipBoundaries(t *testing.T) {
	tc := twoTrackToC(t)
	ctx, err := sampling.NewContext(tc, true)
	require.NoError(t, err)

	assert.Equal(t, int64(cdda.FrontSkipSamples), ctx.FirstRelevantSample())

	total := cdda.FramesToSamples(600)
	assert.Equal(t, total-1-cdda.BackSkipSamples, ctx.LastRelevantSample())
}

func TestPartitions_WholeStreamInOneBlock(t *testing.T) {
	tc := twoTrackToC(t)
	ctx, err := sampling.NewContext(tc, true)
	require.NoError(t, err)

	total := cdda.FramesToSamples(600)
	parts := sampling.Partitions(ctx, 0, total)

	require.Len(t, parts, 2)
	assert.Equal(t, 1, parts[0].Track)
	assert.True(t, parts[0].StartsTrack)
	assert.True(t, parts[0].EndsTrack)
	assert.Equal(t, int64(cdda.FrontSkipSamples), parts[0].FirstSample)

	assert.Equal(t, 2, parts[1].Track)
	assert.True(t, parts[1].StartsTrack)
	assert.True(t, parts[1].EndsTrack)
	assert.Equal(t, ctx.LastRelevantSample(), parts[1].LastSample)
}

func TestPartitions_SplitAcrossManyBlocksMatchesSingleBlock(t *testing.T) {
	tc := twoTrackToC(t)
	ctx, err := sampling.NewContext(tc, true)
	require.NoError(t, err)

	total := cdda.FramesToSamples(600)

	whole := sampling.Partitions(ctx, 0, total)

	var split []sampling.Partition
	const chunk = 97 // deliberately not aligned to any track boundary
	for off := int64(0); off < total; off += chunk {
		n := int64(chunk)
		if off+n > total {
			n = total - off
		}
		split = append(split, sampling.Partitions(ctx, off, n)...)
	}

	// Flatten both into (track, first, last) triples for comparison: the
	// chunked traversal may produce more, smaller partitions than the
	// single-block traversal, but their concatenation must cover the same
	// samples with the same track assignments.
	type span struct {
		track      int
		first, last int64
	}
	flatten := func(ps []sampling.Partition) []span {
		var out []span
		for _, p := range ps {
			out = append(out, span{p.Track, p.FirstSample, p.LastSample})
		}
		return out
	}

	wantTotal := int64(0)
	for _, p := range whole {
		wantTotal += p.Len()
	}
	gotTotal := int64(0)
	for _, p := range split {
		gotTotal += p.Len()
	}
	assert.Equal(t, wantTotal, gotTotal)

	// every sample in split belongs to the same track as in whole
	wholeTrackOf := func(sample int64) int {
		for _, p := range whole {
			if sample >= p.FirstSample && sample <= p.LastSample {
				return p.Track
			}
		}
		return -1
	}
	for _, s := range flatten(split) {
		assert.Equal(t, wholeTrackOf(s.first), s.track)
		assert.Equal(t, wholeTrackOf(s.last), s.track)
	}
}

func TestPartitions_BlockEntirelyOutsideRangeIsEmpty(t *testing.T) {
	tc := twoTrackToC(t)
	ctx, err := sampling.NewContext(tc, true)
	require.NoError(t, err)

	// before the front skip
	parts := sampling.Partitions(ctx, 0, cdda.FrontSkipSamples)
	assert.Empty(t, parts)

	// after the back skip
	total := cdda.FramesToSamples(600)
	parts = sampling.Partitions(ctx, ctx.LastRelevantSample()+1, total-ctx.LastRelevantSample()-1)
	assert.Empty(t, parts)
}

func TestPartitions_NoSkip(t *testing.T) {
	tc := twoTrackToC(t)
	ctx, err := sampling.NewContext(tc, false)
	require.NoError(t, err)

	assert.Equal(t, int64(0), ctx.FirstRelevantSample())
	total := cdda.FramesToSamples(600)
	assert.Equal(t, total-1, ctx.LastRelevantSample())
}
