package calc_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crf8472/arcstk/calc"
	"github.com/crf8472/arcstk/cdda"
	"github.com/crf8472/arcstk/toc"
)

func twoTrackToC(t *testing.T) toc.ToC {
	t.Helper()
	tc, err := toc.New([]int64{0, 300}, 600)
	require.NoError(t, err)
	return tc
}

func genSamples(n int64, seed int64) []uint32 {
	r := rand.New(rand.NewSource(seed))
	out := make([]uint32, n)
	for i := range out {
		out[i] = r.Uint32()
	}
	return out
}

func runInOneBlock(t *testing.T, tc toc.ToC, algo calc.Algorithm, samples []uint32) calc.Checksums {
	t.Helper()
	c, err := calc.NewCalculation(tc, algo, calc.NewContext())
	require.NoError(t, err)
	require.NoError(t, c.Update(samples))
	require.True(t, c.Complete())
	result, err := c.Result()
	require.NoError(t, err)
	return result
}

func runInChunks(t *testing.T, tc toc.ToC, algo calc.Algorithm, samples []uint32, chunk int) calc.Checksums {
	t.Helper()
	c, err := calc.NewCalculation(tc, algo, calc.NewContext())
	require.NoError(t, err)
	for off := 0; off < len(samples); off += chunk {
		end := off + chunk
		if end > len(samples) {
			end = len(samples)
		}
		require.NoError(t, c.Update(samples[off:end]))
	}
	require.True(t, c.Complete())
	result, err := c.Result()
	require.NoError(t, err)
	return result
}

func TestUpdate_ChunkingDoesNotAffectResult(t *testing.T) {
	tc := twoTrackToC(t)
	total := cdda.FramesToSamples(600)
	samples := genSamples(total, 42)

	for _, algo := range []calc.Algorithm{calc.V1, calc.V2, calc.V1AndV2} {
		whole := runInOneBlock(t, tc, algo, samples)
		chunked := runInChunks(t, tc, algo, samples, 97)
		assert.Equal(t, whole, chunked, "algorithm %v", algo)
	}
}

func TestResult_EmitsOneChecksumSetPerTrack(t *testing.T) {
	tc := twoTrackToC(t)
	total := cdda.FramesToSamples(600)
	samples := genSamples(total, 7)

	result := runInOneBlock(t, tc, calc.V1AndV2, samples)
	require.Len(t, result, 2)

	for _, set := range result {
		v1, ok := set.Value(calc.ARCS1)
		assert.True(t, ok)
		v2, ok := set.Value(calc.ARCS2)
		assert.True(t, ok)
		// v2 = s1 + s2, so it need not equal v1, but both must be present.
		_ = v1
		_ = v2
	}
}

func TestV1Only_OmitsARCS2(t *testing.T) {
	tc := twoTrackToC(t)
	total := cdda.FramesToSamples(600)
	samples := genSamples(total, 7)

	result := runInOneBlock(t, tc, calc.V1, samples)
	for _, set := range result {
		_, ok := set.Value(calc.ARCS2)
		assert.False(t, ok)
	}
}

func TestComplete_FalseBeforeAllSamplesSeen(t *testing.T) {
	tc := twoTrackToC(t)
	c, err := calc.NewCalculation(tc, calc.V1, calc.NewContext())
	require.NoError(t, err)

	require.NoError(t, c.Update(genSamples(10, 1)))
	assert.False(t, c.Complete())

	_, err = c.Result()
	assert.Error(t, err)
}
