package dbar

import "fmt"

// StreamParseException reports a short read encountered while parsing a
// dBAR stream: the absolute byte position at which the short read was
// detected, the 1-based number of the block being read, and the 1-based
// byte position within that block.
type StreamParseException struct {
	BytePos      int64
	Block        int
	BlockBytePos int64
}

func (e *StreamParseException) Error() string {
	return fmt.Sprintf("dbar: truncated stream at byte %d (block %d, block-byte %d)",
		e.BytePos, e.Block, e.BlockBytePos)
}
