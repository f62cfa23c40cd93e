package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

// buildWAV assembles a WAV byte stream with the given format so decode paths
// can be exercised without fixture files. Samples are given per frame,
// interleaved, scaled to [-1, 1).
func buildWAV(t *testing.T, samples []float64, channels, bits, rate int, extraChunks bool) []byte {
	t.Helper()

	bytesPerSample := bits / 8
	data := &bytes.Buffer{}
	for _, s := range samples {
		switch bits {
		case 8:
			data.WriteByte(byte(int(math.Round(s*128)) + 128))
		case 16:
			binary.Write(data, binary.LittleEndian, int16(math.Round(s*32767)))
		case 24:
			v := int32(math.Round(s * 8388607))
			data.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16)})
		case 32:
			binary.Write(data, binary.LittleEndian, int32(math.Round(s*2147483647)))
		}
	}

	body := &bytes.Buffer{}
	body.WriteString("WAVE")

	// fmt chunk
	body.WriteString("fmt ")
	binary.Write(body, binary.LittleEndian, uint32(16))
	binary.Write(body, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(body, binary.LittleEndian, uint16(channels))
	binary.Write(body, binary.LittleEndian, uint32(rate))
	binary.Write(body, binary.LittleEndian, uint32(rate*channels*bytesPerSample))
	binary.Write(body, binary.LittleEndian, uint16(channels*bytesPerSample))
	binary.Write(body, binary.LittleEndian, uint16(bits))

	if extraChunks {
		// Browsers and editors often insert metadata chunks before data.
		body.WriteString("LIST")
		binary.Write(body, binary.LittleEndian, uint32(4))
		body.WriteString("INFO")
	}

	body.WriteString("data")
	binary.Write(body, binary.LittleEndian, uint32(data.Len()))
	body.Write(data.Bytes())

	out := &bytes.Buffer{}
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func sine(rate, n int, freq float64) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(rate))
	}
	return samples
}

func TestEncodeWAV(t *testing.T) {
	samples := make([]int16, 800)
	for i := range samples {
		samples[i] = int16(16383 * math.Sin(2*math.Pi*440*float64(i)/8000))
	}

	wavData, err := EncodeWAV(samples, 8000)
	if err != nil {
		t.Fatalf("EncodeWAV failed: %v", err)
	}

	expectedSize := 44 + len(samples)*2
	if len(wavData) != expectedSize {
		t.Errorf("Expected WAV size %d, got %d", expectedSize, len(wavData))
	}

	pcm, err := Decode(wavData)
	if err != nil {
		t.Fatalf("Decode of encoded WAV failed: %v", err)
	}
	if pcm.SampleRate != 8000 {
		t.Errorf("Expected sample rate 8000, got %d", pcm.SampleRate)
	}
	if pcm.Channels != 1 {
		t.Errorf("Expected 1 channel, got %d", pcm.Channels)
	}
	if pcm.BitDepth != 16 {
		t.Errorf("Expected 16 bits per sample, got %d", pcm.BitDepth)
	}
	if len(pcm.Samples) != len(samples) {
		t.Errorf("Expected %d samples, got %d", len(samples), len(pcm.Samples))
	}
}

func TestEncodeWAVRejectsBadInput(t *testing.T) {
	if _, err := EncodeWAV(nil, 44100); err == nil {
		t.Error("expected error for empty samples")
	}
	if _, err := EncodeWAV([]int16{1, 2, 3}, 0); err == nil {
		t.Error("expected error for zero sample rate")
	}
}

func TestDecodeFormats(t *testing.T) {
	cases := []struct {
		name     string
		channels int
		bits     int
		rate     int
	}{
		{"mono 8-bit 8kHz", 1, 8, 8000},
		{"mono 16-bit 16kHz", 1, 16, 16000},
		{"stereo 16-bit 48kHz", 2, 16, 48000},
		{"mono 24-bit 44.1kHz", 1, 24, 44100},
		{"stereo 32-bit 96kHz", 2, 32, 96000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			frames := 512
			samples := make([]float64, frames*tc.channels)
			src := sine(tc.rate, frames, 440)
			for i := 0; i < frames; i++ {
				for c := 0; c < tc.channels; c++ {
					samples[i*tc.channels+c] = src[i]
				}
			}

			pcm, err := Decode(buildWAV(t, samples, tc.channels, tc.bits, tc.rate, false))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if pcm.SampleRate != tc.rate {
				t.Errorf("Expected rate %d, got %d", tc.rate, pcm.SampleRate)
			}
			if pcm.Channels != tc.channels {
				t.Errorf("Expected %d channels, got %d", tc.channels, pcm.Channels)
			}
			if len(pcm.Samples) != frames*tc.channels {
				t.Errorf("Expected %d samples, got %d", frames*tc.channels, len(pcm.Samples))
			}
		})
	}
}

func TestDecodeSkipsExtraChunks(t *testing.T) {
	wav := buildWAV(t, sine(16000, 256, 440), 1, 16, 16000, true)
	pcm, err := Decode(wav)
	if err != nil {
		t.Fatalf("Decode with LIST chunk failed: %v", err)
	}
	if len(pcm.Samples) != 256 {
		t.Errorf("Expected 256 samples, got %d", len(pcm.Samples))
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"too short", []byte("RIFF")},
		{"not riff", bytes.Repeat([]byte{0x42}, 64)},
		{"riff but not wave", append([]byte("RIFF\x10\x00\x00\x00JUNK"), make([]byte, 16)...)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.data); err == nil {
				t.Error("expected decode error")
			}
		})
	}
}

func TestDecodeRejectsNonPCM(t *testing.T) {
	wav := buildWAV(t, sine(8000, 64, 440), 1, 16, 8000, false)
	// Patch the audio format field to IEEE float (3).
	binary.LittleEndian.PutUint16(wav[20:22], 3)
	if _, err := Decode(wav); err == nil {
		t.Error("expected error for non-PCM format")
	}
}
