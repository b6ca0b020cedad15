package codec

import (
	"fmt"
	"io"
	"math"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/riff"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-eq/dsp/audio"
	"github.com/cwbudde/algo-eq/dsp/core"
)

const (
	wavFormatPCM        = 1
	wavFormatFloat      = 3
	wavFormatExtensible = 0xFFFE
)

// wavFormat returns the sample format code of the stream's fmt chunk. For
// WAVE_FORMAT_EXTENSIBLE it is the code carried in the first two bytes of
// the SubFormat GUID. The reader is rewound to the start before returning.
func wavFormat(r io.ReadSeeker) (uint16, error) {
	defer func() { _, _ = r.Seek(0, io.SeekStart) }()

	p := riff.New(r)
	if err := p.ParseHeaders(); err != nil {
		return 0, err
	}
	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, err
		}
		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}
		var format uint16
		if err := ch.ReadLE(&format); err != nil {
			return 0, err
		}
		if format != wavFormatExtensible {
			return format, nil
		}
		// channels(2) rate(4) avg bytes(4) block align(2) bits(2)
		// cbSize(2) valid bits(2) channel mask(4)
		var skip [22]byte
		var guid [16]byte
		if err := ch.ReadLE(&skip); err != nil {
			return 0, err
		}
		if err := ch.ReadLE(&guid); err != nil {
			return 0, err
		}
		return uint16(guid[0]) | uint16(guid[1])<<8, nil
	}
}

// DecodeWAV reads a RIFF/WAVE stream. 8-bit data is unsigned, 16- and
// 32-bit integer data are signed and 32-bit IEEE float is float32. Integer
// widths between 8 and 32 bits other than 16 are left-justified into
// int32, so a 24-bit stream keeps its true level. WAVE_FORMAT_EXTENSIBLE
// is resolved through its SubFormat.
func DecodeWAV(r io.ReadSeeker) (Decoded, error) {
	format, err := wavFormat(r)
	if err != nil {
		return Decoded{}, fmt.Errorf("%w: not a wav stream", ErrUnsupportedFormat)
	}
	if format != wavFormatPCM && format != wavFormatFloat {
		return Decoded{}, fmt.Errorf("%w: wav format 0x%04x", audio.ErrUnsupportedEncoding, format)
	}

	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Decoded{}, fmt.Errorf("%w: not a wav stream", ErrUnsupportedFormat)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Decoded{}, fmt.Errorf("codec: wav: %w", err)
	}

	chans := int(dec.NumChans)
	data := firstChannel(buf.Data, chans)
	bits := int(dec.BitDepth)

	var raw audio.RawBuffer
	switch {
	case format == wavFormatFloat && bits == 32:
		out := make([]float32, len(data))
		for i, v := range data {
			out[i] = math.Float32frombits(uint32(v))
		}
		raw = audio.FromFloat32(out)
	case format == wavFormatFloat:
		return Decoded{}, fmt.Errorf("%w: %d-bit float wav", audio.ErrUnsupportedEncoding, bits)
	case bits == 8:
		out := make([]uint8, len(data))
		for i, v := range data {
			out[i] = uint8(v)
		}
		raw = audio.FromUint8(out)
	case bits == 16:
		out := make([]int16, len(data))
		for i, v := range data {
			out[i] = int16(v)
		}
		raw = audio.FromInt16(out)
	case bits == 32:
		out := make([]int32, len(data))
		for i, v := range data {
			out[i] = int32(v)
		}
		raw = audio.FromInt32(out)
	case bits > 8 && bits < 32:
		raw = audio.FromInt32(leftJustify(data, bits))
	default:
		return Decoded{}, fmt.Errorf("%w: %d-bit wav", audio.ErrUnsupportedEncoding, bits)
	}

	return Decoded{
		Raw:        raw,
		SampleRate: int(dec.SampleRate),
		Channels:   chans,
		BitDepth:   bits,
	}, nil
}

// EncodeWAV writes sig as mono 16-bit PCM. Samples are clipped to [-1, 1].
func EncodeWAV(w io.WriteSeeker, sig audio.Signal) error {
	if sig.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", audio.ErrInvalidSignal, sig.SampleRate)
	}

	data := make([]int, len(sig.Samples))
	for i, s := range sig.Samples {
		data[i] = int(math.Round(core.ClipUnit(float64(s)) * math.MaxInt16))
	}
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sig.SampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(w, sig.SampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("codec: wav write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("codec: wav close: %w", err)
	}
	return nil
}
