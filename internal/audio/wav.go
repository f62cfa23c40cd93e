package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// WAVHeader represents the canonical 44-byte header written in front of
// normalized PCM data.
type WAVHeader struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     uint32  // File size - 8 bytes
	Format        [4]byte // "WAVE"
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16  // Number of channels
	SampleRate    uint32  // Sample rate
	ByteRate      uint32  // SampleRate * NumChannels * BitsPerSample / 8
	BlockAlign    uint16  // NumChannels * BitsPerSample / 8
	BitsPerSample uint16  // Bits per sample
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32  // Number of bytes in the data
}

// PCM holds decoded audio with samples scaled to [-1, 1), interleaved when
// multi-channel.
type PCM struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    []float64
}

// EncodeWAV encodes mono PCM-16 samples into WAV format.
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("cannot encode empty audio samples")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	numChannels := uint16(1)
	bitsPerSample := uint16(16)
	dataSize := uint32(len(samples) * 2)
	fileSize := 36 + dataSize

	header := WAVHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     fileSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1, // PCM
		NumChannels:   numChannels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample) / 8,
		BlockAlign:    numChannels * bitsPerSample / 8,
		BitsPerSample: bitsPerSample,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	buf := bytes.NewBuffer(make([]byte, 0, 44+len(samples)*2))
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return nil, fmt.Errorf("failed to write WAV header: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("failed to write audio data: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a RIFF/WAVE byte stream into PCM samples. It accepts
// uncompressed PCM with 1 or 2 channels and 8, 16, 24 or 32-bit samples at
// any sample rate, and tolerates extra chunks (LIST, fact, ...) between the
// fmt and data chunks.
func Decode(data []byte) (*PCM, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("WAV data too short: need at least 12 bytes, got %d", len(data))
	}
	if string(data[0:4]) != "RIFF" {
		return nil, fmt.Errorf("invalid WAV file: missing RIFF header")
	}
	if string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("invalid WAV file: missing WAVE format")
	}

	var (
		fmtFound      bool
		audioFormat   uint16
		numChannels   uint16
		sampleRate    uint32
		bitsPerSample uint16
		pcmData       []byte
	)

	// Walk the chunk list. Chunks are word-aligned, a chunk with an odd
	// size is followed by a padding byte.
	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8
		if chunkSize < 0 || body+chunkSize > len(data) {
			return nil, fmt.Errorf("invalid WAV file: %s chunk overruns data", chunkID)
		}

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, fmt.Errorf("invalid WAV file: fmt chunk too short (%d bytes)", chunkSize)
			}
			audioFormat = binary.LittleEndian.Uint16(data[body : body+2])
			numChannels = binary.LittleEndian.Uint16(data[body+2 : body+4])
			sampleRate = binary.LittleEndian.Uint32(data[body+4 : body+8])
			bitsPerSample = binary.LittleEndian.Uint16(data[body+14 : body+16])
			fmtFound = true
		case "data":
			pcmData = data[body : body+chunkSize]
		}

		offset = body + chunkSize
		if chunkSize%2 == 1 {
			offset++
		}
	}

	if !fmtFound {
		return nil, fmt.Errorf("invalid WAV file: missing fmt chunk")
	}
	if pcmData == nil {
		return nil, fmt.Errorf("invalid WAV file: missing data chunk")
	}
	if audioFormat != 1 {
		return nil, fmt.Errorf("unsupported audio format: %d (only PCM is supported)", audioFormat)
	}
	if numChannels < 1 || numChannels > 2 {
		return nil, fmt.Errorf("unsupported channel count: %d (only mono and stereo are supported)", numChannels)
	}
	if sampleRate == 0 {
		return nil, fmt.Errorf("invalid sample rate: 0")
	}

	bytesPerSample := int(bitsPerSample) / 8
	switch bitsPerSample {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("unsupported bit depth: %d", bitsPerSample)
	}

	frameSize := bytesPerSample * int(numChannels)
	numFrames := len(pcmData) / frameSize
	if numFrames == 0 {
		return nil, fmt.Errorf("no audio data found")
	}
	// Drop a trailing partial frame rather than rejecting the clip.
	pcmData = pcmData[:numFrames*frameSize]

	samples := make([]float64, 0, numFrames*int(numChannels))
	for i := 0; i < len(pcmData); i += bytesPerSample {
		samples = append(samples, decodeSample(pcmData[i:i+bytesPerSample], bitsPerSample))
	}

	return &PCM{
		SampleRate: int(sampleRate),
		Channels:   int(numChannels),
		BitDepth:   int(bitsPerSample),
		Samples:    samples,
	}, nil
}

func decodeSample(b []byte, bits uint16) float64 {
	switch bits {
	case 8:
		// 8-bit WAV samples are unsigned.
		return (float64(b[0]) - 128) / 128
	case 16:
		v := int16(binary.LittleEndian.Uint16(b))
		return float64(v) / 32768
	case 24:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		if v&0x800000 != 0 {
			v |= ^int32(0xffffff)
		}
		return float64(v) / 8388608
	default: // 32
		v := int32(binary.LittleEndian.Uint32(b))
		return float64(v) / 2147483648
	}
}
