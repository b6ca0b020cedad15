package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-eq/dsp/audio"
)

// ErrUnsupportedFormat is returned for containers that cannot be decoded.
var ErrUnsupportedFormat = errors.New("codec: unsupported format")

// Decoded is one channel of decoded audio.
type Decoded struct {
	Raw        audio.RawBuffer
	SampleRate int
	// Channels is the channel count of the source; only channel 0 is in Raw.
	Channels int
	// BitDepth is the source sample width in bits.
	BitDepth int
}

// Signal normalizes the decoded samples.
func (d Decoded) Signal() (audio.Signal, error) {
	return audio.NewSignal(d.Raw, d.SampleRate)
}

// Format names a supported container.
type Format string

const (
	FormatWAV  Format = "wav"
	FormatFLAC Format = "flac"
)

// FormatFromPath picks a container from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return FormatWAV, nil
	case ".flac":
		return FormatFLAC, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Decode reads r as the given container.
func Decode(r io.ReadSeeker, f Format) (Decoded, error) {
	switch f {
	case FormatWAV:
		return DecodeWAV(r)
	case FormatFLAC:
		return DecodeFLAC(r)
	default:
		return Decoded{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// firstChannel returns every chans-th sample of interleaved data.
func firstChannel[T any](data []T, chans int) []T {
	if chans <= 1 {
		return data
	}
	out := make([]T, 0, len(data)/chans)
	for i := 0; i < len(data); i += chans {
		out = append(out, data[i])
	}
	return out
}

// leftJustify moves bits-wide signed samples into the top of an int32 so
// that full scale of the source width is full scale of int32.
func leftJustify[T int | int32](data []T, bits int) []int32 {
	shift := 32 - bits
	out := make([]int32, len(data))
	for i, v := range data {
		out[i] = int32(v) << shift
	}
	return out
}
