// Package calc implements the stateful ARCS checksum engine: Calculation
// consumes partitioned sample ranges and maintains running ARCSv1/v2
// subtotals with a persistent 1-based sample multiplier, emitting one
// ChecksumSet per completed track.
package calc

import (
	"github.com/pkg/errors"

	"github.com/crf8472/arcstk/arclog"
	"github.com/crf8472/arcstk/cdda"
	"github.com/crf8472/arcstk/sampling"
	"github.com/crf8472/arcstk/toc"
)

// Context configures calculation-wide options orthogonal to the choice of
// Algorithm: currently, whether front/back skip regions are excluded from
// computation. It is built via functional options, the same pattern the
// cmd/arcstk front-end exposes as cobra flags.
type Context struct {
	skip bool
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithSkip enables or disables front/back skip handling. Default: enabled.
func WithSkip(skip bool) ContextOption {
	return func(c *Context) { c.skip = skip }
}

// NewContext builds a Context, defaulting to skip handling enabled.
func NewContext(opts ...ContextOption) Context {
	c := Context{skip: true}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Calculation is a stateful updater that consumes sample blocks and
// accumulates running ARCSv1/v2 checksums per track. A Calculation owns
// its running state exclusively; its ToC is borrowed for its lifetime.
type Calculation struct {
	algorithm Algorithm
	ctx       sampling.Context
	toc       toc.ToC
	skip      bool

	multiplier uint64
	s1         uint32
	s2         uint32

	streamPos        int64 // absolute sample index of the next unconsumed block
	samplesProcessed int64

	results Checksums
}

// NewCalculation constructs a Calculation over a complete ToC, computing
// the given Algorithm under the given Context.
func NewCalculation(t toc.ToC, algorithm Algorithm, ctx Context) (*Calculation, error) {
	sctx, err := sampling.NewContext(t, ctx.skip)
	if err != nil {
		return nil, errors.Wrap(err, "calc.NewCalculation")
	}

	c := &Calculation{
		algorithm:  algorithm,
		ctx:        sctx,
		toc:        t,
		skip:       ctx.skip,
		multiplier: 1,
		results:    make(Checksums, 0, t.TrackCount()),
	}
	if ctx.skip {
		// The first track starts with a front skip; the multiplier is
		// 1-based over the whole (unskipped) track, so it must already
		// account for the samples that will never be seen.
		c.multiplier = uint64(cdda.FrontSkipSamples) + 1
	}

	return c, nil
}

// UpdateAudioSize replaces the ToC's leadout, rebuilding the sampling
// context's relevant range. NewCalculation accepts only a complete ToC,
// so a Calculation cannot be started without a leadout; this call only
// replaces one that is already set. It must be called before the final
// block is submitted; calling it afterwards is undefined.
func (c *Calculation) UpdateAudioSize(leadoutFrames int64) error {
	merged, err := toc.Merge(c.toc, leadoutFrames)
	if err != nil {
		return errors.Wrap(err, "calc.UpdateAudioSize")
	}
	sctx, err := sampling.NewContext(merged, c.skip)
	if err != nil {
		return errors.Wrap(err, "calc.UpdateAudioSize")
	}
	c.toc = merged
	c.ctx = sctx
	return nil
}

// Complete reports whether every sample in the relevant range has been
// processed.
func (c *Calculation) Complete() bool {
	total := c.ctx.LastRelevantSample() - c.ctx.FirstRelevantSample() + 1
	return c.samplesProcessed == total
}

// Result returns the finalized per-track Checksums. It is only valid when
// Complete reports true.
func (c *Calculation) Result() (Checksums, error) {
	if !c.Complete() {
		return nil, errors.New("calc: Result called before Calculation is complete")
	}
	return c.results, nil
}

// Update processes one incoming block of packed 32-bit stereo samples,
// arriving contiguously at the Calculation's current stream position.
// Sample blocks must be submitted in order; Update must not be called
// with samples beyond the declared total.
func (c *Calculation) Update(block []uint32) error {
	if len(block) == 0 {
		return nil
	}

	partitions := sampling.Partitions(c.ctx, c.streamPos, int64(len(block)))
	for _, p := range partitions {
		start := p.FirstSample - c.streamPos
		end := p.LastSample - c.streamPos
		c.consume(block[start:end+1], p)
	}

	c.streamPos += int64(len(block))
	return nil
}

// consume runs the per-sample update loop over one track-aligned
// partition and, if the partition ends its track, finalizes that track's
// ChecksumSet. The loop body is chosen once per partition (not once per
// sample) to keep the hot path monomorphized, per spec.md §9.
func (c *Calculation) consume(samples []uint32, p sampling.Partition) {
	if c.algorithm.WantsV2() {
		for _, v := range samples {
			u := c.multiplier * uint64(v)
			c.s1 += uint32(u)
			c.s2 += uint32(u >> 32)
			c.multiplier++
		}
	} else {
		for _, v := range samples {
			u := c.multiplier * uint64(v)
			c.s1 += uint32(u)
			c.multiplier++
		}
	}

	c.samplesProcessed += int64(len(samples))

	if p.EndsTrack {
		set := NewChecksumSet(c.toc.EffectiveLength(p.Track))
		if c.algorithm.WantsV1() {
			set.Set(ARCS1, c.s1)
		}
		if c.algorithm.WantsV2() {
			set.Set(ARCS2, c.s1+c.s2)
		}
		c.results = append(c.results, set)

		arclog.Debugf("calc: finished track %d (%s)", p.Track, c.algorithm)

		c.s1 = 0
		c.s2 = 0
		c.multiplier = 1
	}
}
