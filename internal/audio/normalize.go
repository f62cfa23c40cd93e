package audio

import (
	"fmt"
	"math"
)

// Canonical capture format for all stored recordings.
const (
	CanonicalSampleRate = 44100
	CanonicalBitDepth   = 16
	CanonicalChannels   = 1
)

// Normalize decodes an uploaded WAV stream and re-encodes it in the
// canonical format: 44,100 Hz, 16-bit, mono. Input already in canonical
// form round-trips with identical sample values.
func Normalize(data []byte) ([]byte, error) {
	pcm, err := Decode(data)
	if err != nil {
		return nil, err
	}

	mono := downmixMono(pcm.Samples, pcm.Channels)
	resampled := resampleLinear(mono, pcm.SampleRate, CanonicalSampleRate)
	if len(resampled) == 0 {
		return nil, fmt.Errorf("normalization produced no samples")
	}

	return EncodeWAV(quantize16(resampled), CanonicalSampleRate)
}

// downmixMono averages interleaved channels into a single channel.
func downmixMono(samples []float64, channels int) []float64 {
	if channels == 1 {
		return samples
	}
	frames := len(samples) / channels
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += samples[i*channels+c]
		}
		out[i] = sum / float64(channels)
	}
	return out
}

// resampleLinear converts a mono sample stream from one rate to another
// using linear interpolation.
func resampleLinear(in []float64, from, to int) []float64 {
	if from == to || len(in) == 0 {
		return in
	}
	outLen := int(math.Round(float64(len(in)) * float64(to) / float64(from)))
	if outLen < 1 {
		outLen = 1
	}
	out := make([]float64, outLen)
	step := float64(len(in)-1) / float64(outLen-1)
	if outLen == 1 {
		step = 0
	}
	for i := range out {
		pos := float64(i) * step
		idx := int(pos)
		if idx >= len(in)-1 {
			out[i] = in[len(in)-1]
			continue
		}
		frac := pos - float64(idx)
		out[i] = in[idx]*(1-frac) + in[idx+1]*frac
	}
	return out
}

// quantize16 converts [-1, 1) samples to int16 with clamping.
func quantize16(in []float64) []int16 {
	out := make([]int16, len(in))
	for i, s := range in {
		v := math.Round(s * 32768)
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}
		out[i] = int16(v)
	}
	return out
}
