package dbar

// ContentHandler receives the SAX-style events emitted by Parser as it
// walks a dBAR stream. Implementations must not retain the Triplet or
// BlockHeader values beyond the call (they are passed by value, so this
// is only a documentation convention, not a safety requirement).
type ContentHandler interface {
	StartInput()
	StartBlock()
	Header(h BlockHeader)
	Triplet(t Triplet)
	EndBlock()
	EndInput()
}

// ErrorHandler is consulted whenever the parser encounters a short read.
// Returning an error from OnError aborts the parse with that error,
// propagated to Parser's caller; returning nil suppresses the
// StreamParseException and the parser stops cleanly as if end of stream
// had been reached at a block boundary.
type ErrorHandler interface {
	OnError(err *StreamParseException) error
}

// DefaultErrorHandler is the parser's default ErrorHandler: it re-raises
// every error it is given, matching the "default handler re-raises"
// propagation policy.
type DefaultErrorHandler struct{}

// OnError always returns err unchanged.
func (DefaultErrorHandler) OnError(err *StreamParseException) error {
	return err
}
