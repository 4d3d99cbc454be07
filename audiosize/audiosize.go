// Package audiosize implements AudioSize, a unit-polymorphic length value
// for CDDA audio data. It stores a single internal representation (total
// bytes) and converts to frames/samples/bytes on demand, enforcing Red Book
// maxima at construction time.
package audiosize

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/crf8472/arcstk/cdda"
)

// Unit identifies which unit a raw value passed to New is expressed in.
type Unit int

const (
	// Frames counts CDDA frames (1/75 s, 588 samples).
	Frames Unit = iota
	// Samples counts packed 32-bit stereo samples.
	Samples
	// Bytes counts raw bytes.
	Bytes
)

// maxTotalBytes is the largest total byte count representable by a disc
// whose highest legal frame address is cdda.MaxBlockAddress.
var maxTotalBytes = cdda.FramesToBytes(cdda.MaxBlockAddress)

// InvalidAudioSize is returned when a constructor argument falls outside
// the legal CDDA range (negative, or larger than Red Book allows).
type InvalidAudioSize struct {
	Unit  Unit
	Value int64
}

func (e *InvalidAudioSize) Error() string {
	return fmt.Sprintf("audiosize: value %d out of range for unit %v", e.Value, e.Unit)
}

// AudioSize is a non-negative length expressible in frames, samples or
// bytes. The zero value is a valid, empty AudioSize.
type AudioSize struct {
	totalBytes int64
}

// New constructs an AudioSize from a value expressed in the given unit,
// validating it against the Red Book maxima. It fails with
// InvalidAudioSize when value is negative or exceeds the maximum
// addressable disc size.
func New(value int64, unit Unit) (AudioSize, error) {
	if value < 0 {
		return AudioSize{}, errors.Wrap(&InvalidAudioSize{Unit: unit, Value: value}, "negative length")
	}

	var totalBytes int64
	switch unit {
	case Frames:
		totalBytes = cdda.FramesToBytes(value)
	case Samples:
		totalBytes = cdda.SamplesToBytes(value)
	case Bytes:
		totalBytes = value
	default:
		return AudioSize{}, errors.Wrapf(&InvalidAudioSize{Unit: unit, Value: value}, "unknown unit %v", unit)
	}

	if totalBytes > maxTotalBytes {
		return AudioSize{}, errors.Wrap(&InvalidAudioSize{Unit: unit, Value: value}, "exceeds Red Book maximum")
	}

	return AudioSize{totalBytes: totalBytes}, nil
}

// Zero is the empty AudioSize (0 bytes).
var Zero = AudioSize{}

// Frames returns the size in CDDA frames, truncating any partial frame.
func (s AudioSize) Frames() int64 {
	return cdda.BytesToFrames(s.totalBytes)
}

// Samples returns the size in packed stereo samples, truncating any partial
// sample.
func (s AudioSize) Samples() int64 {
	return cdda.BytesToSamples(s.totalBytes)
}

// Bytes returns the size in bytes.
func (s AudioSize) Bytes() int64 {
	return s.totalBytes
}

// IsZero reports whether the size is exactly zero.
func (s AudioSize) IsZero() bool {
	return s.totalBytes == 0
}

// Compare returns -1, 0 or +1 according to whether s is less than, equal to
// or greater than other.
func (s AudioSize) Compare(other AudioSize) int {
	switch {
	case s.totalBytes < other.totalBytes:
		return -1
	case s.totalBytes > other.totalBytes:
		return 1
	default:
		return 0
	}
}

// Equal reports whether s and other represent the same length.
func (s AudioSize) Equal(other AudioSize) bool {
	return s.totalBytes == other.totalBytes
}

// Less reports whether s is strictly shorter than other.
func (s AudioSize) Less(other AudioSize) bool {
	return s.totalBytes < other.totalBytes
}

func (u Unit) String() string {
	switch u {
	case Frames:
		return "frames"
	case Samples:
		return "samples"
	case Bytes:
		return "bytes"
	default:
		return "unknown"
	}
}
