package audio

import (
	"errors"
	"math"
	"testing"
)

func TestNormalizeFixedPoint(t *testing.T) {
	tests := []struct {
		name string
		raw  RawBuffer
		want []float32
	}{
		{
			name: "int16",
			raw:  FromInt16([]int16{0, 16384, -32768, 32767, -1}),
			want: []float32{0, 0.5, -1, 32767.0 / 32768.0, -1.0 / 32768.0},
		},
		{
			name: "int32",
			raw:  FromInt32([]int32{0, 1 << 30, math.MinInt32}),
			want: []float32{0, 0.5, -1},
		},
		{
			name: "uint8",
			raw:  FromUint8([]uint8{128, 0, 255, 192}),
			want: []float32{0, -1, 127.0 / 128.0, 0.5},
		},
		{
			name: "float32 passthrough",
			raw:  FromFloat32([]float32{0.25, -1.05, 1.2}),
			want: []float32{0.25, -1.05, 1.2},
		},
		{
			name: "float64 narrowed",
			raw:  FromFloat64([]float64{0.125, -0.5, 1.01}),
			want: []float32{0.125, -0.5, float32(1.01)},
		},
		{
			name: "other peak",
			raw:  FromOther([]int64{4194304, -8388608, 0, 2097152}),
			want: []float32{0.5, -1, 0, 0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(float64(got[i]-tt.want[i])) > 1e-7 {
					t.Fatalf("index %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeInt16Exact(t *testing.T) {
	for v := math.MinInt16; v <= math.MaxInt16; v += 97 {
		got, err := Normalize(FromInt16([]int16{int16(v)}))
		if err != nil {
			t.Fatal(err)
		}
		if want := float32(v) / 32768.0; got[0] != want {
			t.Fatalf("Normalize(%d) = %v, want %v", v, got[0], want)
		}
	}
}

func TestNormalizeZeroPeak(t *testing.T) {
	got, err := Normalize(FromOther(make([]int64, 16)))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 16 {
		t.Fatalf("len = %d, want 16", len(got))
	}
	for i, v := range got {
		if v != 0 || math.IsNaN(float64(v)) {
			t.Fatalf("got[%d] = %v, want 0", i, v)
		}
	}
}

func TestNormalizeDoesNotAliasInput(t *testing.T) {
	in := []float32{0.1, 0.2}
	out, err := Normalize(FromFloat32(in))
	if err != nil {
		t.Fatal(err)
	}
	out[0] = 9
	if in[0] != 0.1 {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	got, err := Normalize(FromInt16(nil))
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %#v, want empty non-nil slice", got)
	}
}

func TestNormalizeUnsupportedEncoding(t *testing.T) {
	for _, enc := range []Encoding{EncodingUnknown, Encoding(42)} {
		_, err := Normalize(RawBuffer{Encoding: enc, Int16: []int16{1}})
		if !errors.Is(err, ErrUnsupportedEncoding) {
			t.Fatalf("encoding %v: err = %v, want ErrUnsupportedEncoding", enc, err)
		}
	}
}

func TestRawBufferLen(t *testing.T) {
	if n := FromUint8(make([]uint8, 7)).Len(); n != 7 {
		t.Fatalf("Len() = %d, want 7", n)
	}
	if n := (RawBuffer{Int16: make([]int16, 3)}).Len(); n != 0 {
		t.Fatalf("unknown encoding Len() = %d, want 0", n)
	}
}
