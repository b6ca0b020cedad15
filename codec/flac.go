package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"

	"github.com/cwbudde/algo-eq/dsp/audio"
)

// DecodeFLAC reads a FLAC stream. 8-, 16- and 32-bit streams keep their
// width; any other width up to 32 bits is left-justified into int32.
func DecodeFLAC(r io.Reader) (Decoded, error) {
	stream, err := flac.New(r)
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: flac: %v", ErrUnsupportedFormat, err)
	}
	defer stream.Close()

	var samples []int32
	for {
		f, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Decoded{}, fmt.Errorf("codec: flac frame: %w", err)
		}
		if len(f.Subframes) == 0 {
			continue
		}
		samples = append(samples, f.Subframes[0].Samples...)
	}

	bits := int(stream.Info.BitsPerSample)
	var raw audio.RawBuffer
	switch bits {
	case 8:
		// FLAC stores signed samples; shift to the unsigned WAV convention.
		out := make([]uint8, len(samples))
		for i, v := range samples {
			out[i] = uint8(v + 128)
		}
		raw = audio.FromUint8(out)
	case 16:
		out := make([]int16, len(samples))
		for i, v := range samples {
			out[i] = int16(v)
		}
		raw = audio.FromInt16(out)
	case 32:
		raw = audio.FromInt32(samples)
	default:
		if bits < 4 || bits > 32 {
			return Decoded{}, fmt.Errorf("%w: %d-bit flac", audio.ErrUnsupportedEncoding, bits)
		}
		raw = audio.FromInt32(leftJustify(samples, bits))
	}

	return Decoded{
		Raw:        raw,
		SampleRate: int(stream.Info.SampleRate),
		Channels:   int(stream.Info.NChannels),
		BitDepth:   bits,
	}, nil
}
