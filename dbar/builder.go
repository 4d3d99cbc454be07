package dbar

// Builder is a ContentHandler that materializes the events it receives
// into a DBAR. It collects each block's triplets as they arrive and
// commits header and triplets together on EndBlock. The DBAR keeps one
// header slice and one triplet slice per block, so block size and
// indexed access are O(1); the data is not packed into flat confidence
// and checksum arrays.
type Builder struct {
	result DBAR

	curHeader   BlockHeader
	curTriplets []Triplet
}

// NewBuilder returns a Builder ready to receive events for a fresh DBAR.
func NewBuilder() *Builder {
	return &Builder{}
}

// StartInput resets the builder to an empty DBAR.
func (b *Builder) StartInput() {
	b.result = DBAR{}
}

// StartBlock begins accumulating a new block's triplets.
func (b *Builder) StartBlock() {
	b.curTriplets = nil
}

// Header records the current block's header.
func (b *Builder) Header(h BlockHeader) {
	b.curHeader = h
}

// Triplet appends one triplet to the current block.
func (b *Builder) Triplet(t Triplet) {
	b.curTriplets = append(b.curTriplets, t)
}

// EndBlock commits the current block into the result.
func (b *Builder) EndBlock() {
	b.result.addBlock(b.curHeader, b.curTriplets)
	b.curHeader = BlockHeader{}
	b.curTriplets = nil
}

// EndInput is a no-op; the result is already complete once all blocks
// have been committed.
func (b *Builder) EndInput() {}

// DBAR returns the DBAR built so far. Safe to call after a parse error:
// it contains every block that was fully completed before the error.
func (b *Builder) DBAR() DBAR {
	return b.result
}
