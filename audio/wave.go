package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// Wave is a buffer of synthesized audio samples. Data always holds
// normalized float32 samples in [-1, 1], interleaved per channel;
// SampleSize records the bit depth used when exporting.
type Wave struct {
	SampleCount int // Total sample count across all channels
	SampleRate  int // Samples per second per channel
	SampleSize  int // Export bit depth (8, 16 or 32)
	Channels    int // Channel count (1 or 2)
	Data        []float32
}

// Duration returns the wave length in seconds.
func (w *Wave) Duration() float64 {
	if w.SampleRate == 0 || w.Channels == 0 {
		return 0
	}
	return float64(w.SampleCount) / float64(w.SampleRate*w.Channels)
}

// Format converts wave data to the desired sample rate, bit depth and
// channel count. Rate conversion picks the nearest source frame; channel
// conversion duplicates mono to stereo or averages stereo down to mono.
// Bit depth only takes effect when the wave is written out.
func (w *Wave) Format(sampleRate, sampleSize, channels int) {
	if sampleRate != w.SampleRate && w.SampleRate > 0 && w.Channels > 0 {
		frames := w.SampleCount / w.Channels
		newFrames := int(int64(frames) * int64(sampleRate) / int64(w.SampleRate))
		data := make([]float32, newFrames*w.Channels)

		for i := 0; i < newFrames; i++ {
			src := int(int64(i) * int64(frames) / int64(newFrames))
			for c := 0; c < w.Channels; c++ {
				data[i*w.Channels+c] = w.Data[src*w.Channels+c]
			}
		}

		w.Data = data
		w.SampleRate = sampleRate
		w.SampleCount = len(data)
	}

	if channels != w.Channels && w.Channels > 0 {
		frames := w.SampleCount / w.Channels
		data := make([]float32, frames*channels)

		for i := 0; i < frames; i++ {
			switch {
			case channels == 2 && w.Channels == 1:
				data[i*2] = w.Data[i]
				data[i*2+1] = w.Data[i]
			case channels == 1 && w.Channels == 2:
				data[i] = (w.Data[i*2] + w.Data[i*2+1]) / 2
			}
		}

		w.Data = data
		w.Channels = channels
		w.SampleCount = len(data)
	}

	w.SampleSize = sampleSize
}

// wavHeader is the RIFF/WAVE header written ahead of sample data.
type wavHeader struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// WriteWAV writes the wave as a RIFF/WAVE stream at the wave's current
// format. 8- and 16-bit waves are written as integer PCM, 32-bit as IEEE
// float.
func WriteWAV(w *Wave, out io.Writer) error {
	sampleSize := w.SampleSize
	switch sampleSize {
	case 8, 16, 32:
	default:
		return fmt.Errorf("unsupported sample size: %d", sampleSize)
	}

	format := uint16(wavFormatPCM)
	if sampleSize == 32 {
		format = wavFormatFloat
	}

	dataSize := uint32(w.SampleCount * sampleSize / 8)
	header := wavHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   format,
		NumChannels:   uint16(w.Channels),
		SampleRate:    uint32(w.SampleRate),
		ByteRate:      uint32(w.SampleRate * w.Channels * sampleSize / 8),
		BlockAlign:    uint16(w.Channels * sampleSize / 8),
		BitsPerSample: uint16(sampleSize),
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	if err := binary.Write(out, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}

	var err error
	switch sampleSize {
	case 8:
		buf := make([]uint8, w.SampleCount)
		for i, s := range w.Data[:w.SampleCount] {
			buf[i] = uint8(clampSample(s)*127 + 128)
		}
		err = binary.Write(out, binary.LittleEndian, buf)
	case 16:
		buf := make([]int16, w.SampleCount)
		for i, s := range w.Data[:w.SampleCount] {
			buf[i] = int16(clampSample(s) * 32767)
		}
		err = binary.Write(out, binary.LittleEndian, buf)
	case 32:
		err = binary.Write(out, binary.LittleEndian, w.Data[:w.SampleCount])
	}
	if err != nil {
		return fmt.Errorf("write wav data: %w", err)
	}

	return nil
}

// ExportWAV writes the wave to a .wav file.
func ExportWAV(w *Wave, fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("create wav file: %w", err)
	}

	if err := WriteWAV(w, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Bytes returns the wave samples encoded as little-endian float32, the
// layout audio playback backends consume directly.
func (w *Wave) Bytes() []byte {
	buf := make([]byte, w.SampleCount*4)
	for i, s := range w.Data[:w.SampleCount] {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(s))
	}
	return buf
}

func clampSample(s float32) float32 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}
