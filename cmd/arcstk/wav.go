package main

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"

	"github.com/crf8472/arcstk/cdda"
)

// decodedBufSamples is the chunk size, in packed stereo samples, used
// while draining a WAV fixture's PCM data.
const decodedBufSamples = cdda.SamplesPerFrame * cdda.FramesPerSecond // one second

// decodedTrack holds one WAV fixture's full PCM payload, already packed
// into the 32-bit stereo sample representation Calculation.Update
// consumes.
type decodedTrack struct {
	path    string
	samples []uint32
}

// frames returns the track's length in CDDA frames.
func (t decodedTrack) frames() int64 {
	return int64(len(t.samples)) / cdda.SamplesPerFrame
}

// decodeWAV fully decodes path as a 16-bit stereo 44100Hz WAV file into
// packed stereo samples. Decoding the whole fixture up front (rather than
// streaming it alongside Calculation.Update) is what lets the caller learn
// every track's exact length before a ToC for the whole disc can be built.
func decodeWAV(path string) (decodedTrack, error) {
	f, err := os.Open(path)
	if err != nil {
		return decodedTrack{}, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return decodedTrack{}, errors.Errorf("%s is not a valid WAV file", path)
	}
	nchans, bitDepth, sampleRate := int(d.NumChans), int(d.BitDepth), int(d.SampleRate)
	if nchans != cdda.Channels || bitDepth != cdda.BitsPerSample || sampleRate != cdda.SampleRate {
		return decodedTrack{}, errors.Errorf("%s is not 16-bit stereo 44100Hz CDDA audio", path)
	}
	if err := d.FwdToPCM(); err != nil {
		return decodedTrack{}, errors.Wrapf(err, "decoding %s", path)
	}

	var packed []uint32
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: nchans, SampleRate: sampleRate},
		Data:           make([]int, decodedBufSamples*cdda.Channels),
		SourceBitDepth: bitDepth,
	}
	for !d.EOF() {
		n, err := d.PCMBuffer(buf)
		if err != nil {
			return decodedTrack{}, errors.Wrapf(err, "decoding %s", path)
		}
		if n == 0 {
			break
		}
		samples := n / cdda.Channels
		for i := 0; i < samples; i++ {
			left := uint32(uint16(buf.Data[2*i]))
			right := uint32(uint16(buf.Data[2*i+1]))
			packed = append(packed, left|(right<<16))
		}
	}

	return decodedTrack{path: path, samples: packed}, nil
}
