// Package cdda defines the fixed geometry of Red Book Compact Disc Digital
// Audio and the exact integer conversions between the three units used
// throughout arcstk: frames, samples and bytes.
//
// No other package hard-codes these ratios; everything that needs to
// convert between frames/samples/bytes goes through this package.
package cdda

// Fixed CDDA geometry. These never change: they are part of the Red Book
// standard, not configuration.
const (
	// SampleRate is the number of samples per second on a Red Book CD.
	SampleRate = 44100

	// Channels is the number of audio channels (stereo).
	Channels = 2

	// BitsPerSample is the sample depth.
	BitsPerSample = 16

	// BytesPerSample is the size in bytes of one packed stereo sample
	// (left channel + right channel, 16 bit each).
	BytesPerSample = Channels * BitsPerSample / 8

	// FramesPerSecond is the number of CDDA frames ("sectors") per second.
	FramesPerSecond = 75

	// SamplesPerFrame is the number of packed stereo samples in one frame.
	SamplesPerFrame = SampleRate / FramesPerSecond

	// BytesPerFrame is the number of bytes of audio data in one frame.
	BytesPerFrame = SamplesPerFrame * BytesPerSample

	// MaxTrackCount is the maximum number of tracks a disc may have.
	MaxTrackCount = 99

	// MaxBlockAddress is the highest legal frame address, (99*60+59)*75+74.
	MaxBlockAddress = (MaxTrackCount*60+59)*FramesPerSecond + 74

	// MaxOffset is the highest legal track offset, (79*60+59)*75+74.
	MaxOffset = (79*60+59)*FramesPerSecond + 74

	// MinTrackDistance is the minimum number of frames required between two
	// consecutive track offsets.
	MinTrackDistance = 300

	// MinTrackLength is the minimum legal length of a track in frames.
	MinTrackLength = 150

	// FrontSkipSamples is the number of samples excluded from ARCS
	// computation at the start of track 1, 5*588-1.
	FrontSkipSamples = 5*SamplesPerFrame - 1

	// BackSkipSamples is the number of samples excluded from ARCS
	// computation at the end of the last track, 5*588.
	BackSkipSamples = 5 * SamplesPerFrame
)

// FramesToSamples converts a frame count to the equivalent sample count.
func FramesToSamples(frames int64) int64 {
	return frames * SamplesPerFrame
}

// FramesToBytes converts a frame count to the equivalent byte count.
func FramesToBytes(frames int64) int64 {
	return frames * BytesPerFrame
}

// SamplesToFrames converts a sample count to the equivalent frame count.
// The conversion is only exact for multiples of SamplesPerFrame; callers
// that need to detect inexact conversions should check the remainder
// themselves via SamplesToBytes/BytesPerFrame.
func SamplesToFrames(samples int64) int64 {
	return samples / SamplesPerFrame
}

// SamplesToBytes converts a sample count to the equivalent byte count.
func SamplesToBytes(samples int64) int64 {
	return samples * BytesPerSample
}

// BytesToFrames converts a byte count to the equivalent frame count.
func BytesToFrames(bytes int64) int64 {
	return bytes / BytesPerFrame
}

// BytesToSamples converts a byte count to the equivalent sample count.
func BytesToSamples(bytes int64) int64 {
	return bytes / BytesPerSample
}

// IsValidTrackCount reports whether n is a legal number of tracks on a disc.
func IsValidTrackCount(n int) bool {
	return n >= 0 && n <= MaxTrackCount
}
