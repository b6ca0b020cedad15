package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-eq/dsp/audio"
	"github.com/cwbudde/algo-eq/internal/testutil"
)

// writeWAV encodes interleaved data with the go-audio encoder and reopens
// the file for reading.
func writeWAV(t *testing.T, rate, bits, chans, format int, data []int) *os.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc := wav.NewEncoder(f, rate, bits, chans, format)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: chans, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bits,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestDecodeWAVEncodings(t *testing.T) {
	tests := []struct {
		name     string
		bits     int
		format   int
		data     []int
		encoding audio.Encoding
		want     []float64
	}{
		{"int16", 16, 1, []int{0, 16384, -32768}, audio.EncodingInt16, []float64{0, 0.5, -1}},
		{"uint8", 8, 1, []int{128, 192, 0}, audio.EncodingUint8, []float64{0, 0.5, -1}},
		{"int32", 32, 1, []int{0, 1 << 30, -1 << 31}, audio.EncodingInt32, []float64{0, 0.5, -1}},
		{"int24", 24, 1, []int{0, 1 << 22, -1 << 23}, audio.EncodingInt32, []float64{0, 0.5, -1}},
		// A quiet 24-bit stream keeps its level instead of being rescaled to full scale.
		{"int24 -20dBFS", 24, 1, []int{0, 838861, -838861}, audio.EncodingInt32, []float64{0, 838861.0 / (1 << 23), -838861.0 / (1 << 23)}},
		{
			"float32", 32, wavFormatFloat,
			[]int{
				int(int32(math.Float32bits(0.25))),
				int(int32(math.Float32bits(-0.75))),
			},
			audio.EncodingFloat32, []float64{0.25, -0.75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DecodeWAV(writeWAV(t, 8000, tt.bits, 1, tt.format, tt.data))
			if err != nil {
				t.Fatal(err)
			}
			if d.Raw.Encoding != tt.encoding {
				t.Fatalf("encoding = %s, want %s", d.Raw.Encoding, tt.encoding)
			}
			if d.SampleRate != 8000 || d.BitDepth != tt.bits {
				t.Fatalf("rate/bits = %d/%d", d.SampleRate, d.BitDepth)
			}
			sig, err := d.Signal()
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceNearlyEqual(t, testutil.ToFloat64(sig.Samples), tt.want, 1e-6)
		})
	}
}

// extensibleWAV builds a mono WAVE_FORMAT_EXTENSIBLE stream whose SubFormat
// GUID carries subFormat.
func extensibleWAV(subFormat uint16, bits int, payload []byte) []byte {
	const rate = 8000
	align := bits / 8

	var fmtChunk bytes.Buffer
	for _, v := range []any{
		uint16(wavFormatExtensible), uint16(1), uint32(rate), uint32(rate * align),
		uint16(align), uint16(bits), uint16(22), uint16(bits), uint32(4),
		subFormat, [14]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71},
	} {
		_ = binary.Write(&fmtChunk, binary.LittleEndian, v)
	}

	var b bytes.Buffer
	b.WriteString("RIFF")
	_ = binary.Write(&b, binary.LittleEndian, uint32(4+8+fmtChunk.Len()+8+len(payload)))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	_ = binary.Write(&b, binary.LittleEndian, uint32(fmtChunk.Len()))
	b.Write(fmtChunk.Bytes())
	b.WriteString("data")
	_ = binary.Write(&b, binary.LittleEndian, uint32(len(payload)))
	b.Write(payload)
	return b.Bytes()
}

func TestDecodeWAVExtensible(t *testing.T) {
	var float32Data bytes.Buffer
	_ = binary.Write(&float32Data, binary.LittleEndian, []float32{0.25, -0.75, 0.5})
	var int16Data bytes.Buffer
	_ = binary.Write(&int16Data, binary.LittleEndian, []int16{0, 16384, -32768})

	tests := []struct {
		name      string
		subFormat uint16
		bits      int
		payload   []byte
		encoding  audio.Encoding
		want      []float64
	}{
		{"float32", wavFormatFloat, 32, float32Data.Bytes(), audio.EncodingFloat32, []float64{0.25, -0.75, 0.5}},
		{"pcm16", wavFormatPCM, 16, int16Data.Bytes(), audio.EncodingInt16, []float64{0, 0.5, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := DecodeWAV(bytes.NewReader(extensibleWAV(tt.subFormat, tt.bits, tt.payload)))
			if err != nil {
				t.Fatal(err)
			}
			if d.Raw.Encoding != tt.encoding {
				t.Fatalf("encoding = %s, want %s", d.Raw.Encoding, tt.encoding)
			}
			sig, err := d.Signal()
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceNearlyEqual(t, testutil.ToFloat64(sig.Samples), tt.want, 1e-6)
		})
	}
}

func TestDecodeWAVRejectsUnknownSubFormat(t *testing.T) {
	// 0x0002 is Microsoft ADPCM.
	_, err := DecodeWAV(bytes.NewReader(extensibleWAV(0x0002, 16, make([]byte, 8))))
	if !errors.Is(err, audio.ErrUnsupportedEncoding) {
		t.Fatalf("err = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestDecodeWAVKeepsFirstChannel(t *testing.T) {
	interleaved := []int{100, -1, 200, -2, 300, -3}
	d, err := DecodeWAV(writeWAV(t, 44100, 16, 2, 1, interleaved))
	if err != nil {
		t.Fatal(err)
	}
	if d.Channels != 2 {
		t.Fatalf("channels = %d", d.Channels)
	}
	want := []int16{100, 200, 300}
	if len(d.Raw.Int16) != len(want) {
		t.Fatalf("len = %d, want %d", len(d.Raw.Int16), len(want))
	}
	for i := range want {
		if d.Raw.Int16[i] != want[i] {
			t.Fatalf("sample %d = %d, want %d", i, d.Raw.Int16[i], want[i])
		}
	}
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	_, err := DecodeWAV(bytes.NewReader([]byte("definitely not riff data")))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestEncodeWAVRoundTrip(t *testing.T) {
	sig := audio.Signal{Samples: []float32{0, 0.5, -0.5, 1.5, -2}, SampleRate: 22050}

	path := filepath.Join(t.TempDir(), "out.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := EncodeWAV(f, sig); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	d, err := DecodeWAV(r)
	if err != nil {
		t.Fatal(err)
	}
	if d.Raw.Encoding != audio.EncodingInt16 || d.SampleRate != 22050 || d.Channels != 1 {
		t.Fatalf("decoded = %s %d Hz %d ch", d.Raw.Encoding, d.SampleRate, d.Channels)
	}
	got, err := d.Signal()
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0.5, -0.5, 1, -1}
	testutil.RequireSliceNearlyEqual(t, testutil.ToFloat64(got.Samples), want, 1e-4)
}

func TestEncodeWAVRejectsBadRate(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	err = EncodeWAV(f, audio.Signal{Samples: []float32{0}})
	if !errors.Is(err, audio.ErrInvalidSignal) {
		t.Fatalf("err = %v, want ErrInvalidSignal", err)
	}
}

func TestDecodeFLACRejectsGarbage(t *testing.T) {
	_, err := DecodeFLAC(bytes.NewReader([]byte("RIFF....WAVE")))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"song.wav", FormatWAV, false},
		{"VOICE.WAV", FormatWAV, false},
		{"a/b/take.flac", FormatFLAC, false},
		{"clip.mp3", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.err {
			t.Fatalf("%s: err = %v", tt.path, err)
		}
		if got != tt.want {
			t.Fatalf("%s: format = %q, want %q", tt.path, got, tt.want)
		}
		if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("%s: err = %v, want ErrUnsupportedFormat", tt.path, err)
		}
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode(bytes.NewReader(nil), Format("ogg"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("err = %v", err)
	}
}

func TestLeftJustify(t *testing.T) {
	tests := []struct {
		bits int
		in   []int32
		want []int32
	}{
		{24, []int32{0, 1 << 22, -1 << 23, 1<<23 - 1}, []int32{0, 1 << 30, -1 << 31, (1<<23 - 1) << 8}},
		{20, []int32{1, -1}, []int32{1 << 12, -1 << 12}},
		{32, []int32{7}, []int32{7}},
	}
	for _, tt := range tests {
		got := leftJustify(tt.in, tt.bits)
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Fatalf("%d bits: sample %d = %d, want %d", tt.bits, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFirstChannel(t *testing.T) {
	got := firstChannel([]int{1, 2, 3, 4, 5, 6}, 3)
	if len(got) != 2 || got[0] != 1 || got[1] != 4 {
		t.Fatalf("firstChannel = %v", got)
	}
	mono := []int{7, 8}
	if got := firstChannel(mono, 1); &got[0] != &mono[0] {
		t.Fatal("mono input should be returned as-is")
	}
}
