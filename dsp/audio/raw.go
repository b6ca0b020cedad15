package audio

import "fmt"

// Encoding identifies the sample representation of a [RawBuffer].
type Encoding int

const (
	EncodingUnknown Encoding = iota
	EncodingInt16
	EncodingInt32
	EncodingUint8
	EncodingFloat32
	EncodingFloat64
	// EncodingOther is fixed-point data of unknown width widened to int64.
	// It is peak-normalized.
	EncodingOther
)

var encodingNames = map[Encoding]string{
	EncodingUnknown: "unknown",
	EncodingInt16:   "int16",
	EncodingInt32:   "int32",
	EncodingUint8:   "uint8",
	EncodingFloat32: "float32",
	EncodingFloat64: "float64",
	EncodingOther:   "other",
}

func (e Encoding) String() string {
	if s, ok := encodingNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// RawBuffer holds single-channel samples in their source encoding. Exactly
// one payload slice is meaningful, selected by Encoding; use the From*
// constructors to build a consistent value.
type RawBuffer struct {
	Encoding Encoding

	Int16   []int16
	Int32   []int32
	Uint8   []uint8
	Float32 []float32
	Float64 []float64
	Other   []int64
}

// FromInt16 wraps 16-bit signed PCM samples.
func FromInt16(s []int16) RawBuffer { return RawBuffer{Encoding: EncodingInt16, Int16: s} }

// FromInt32 wraps 32-bit signed PCM samples.
func FromInt32(s []int32) RawBuffer { return RawBuffer{Encoding: EncodingInt32, Int32: s} }

// FromUint8 wraps 8-bit unsigned PCM samples (128 is silence).
func FromUint8(s []uint8) RawBuffer { return RawBuffer{Encoding: EncodingUint8, Uint8: s} }

// FromFloat32 wraps IEEE float32 samples.
func FromFloat32(s []float32) RawBuffer { return RawBuffer{Encoding: EncodingFloat32, Float32: s} }

// FromFloat64 wraps IEEE float64 samples.
func FromFloat64(s []float64) RawBuffer { return RawBuffer{Encoding: EncodingFloat64, Float64: s} }

// FromOther wraps fixed-point samples of unknown width.
func FromOther(s []int64) RawBuffer { return RawBuffer{Encoding: EncodingOther, Other: s} }

// Len returns the number of samples of the active payload.
func (r RawBuffer) Len() int {
	switch r.Encoding {
	case EncodingInt16:
		return len(r.Int16)
	case EncodingInt32:
		return len(r.Int32)
	case EncodingUint8:
		return len(r.Uint8)
	case EncodingFloat32:
		return len(r.Float32)
	case EncodingFloat64:
		return len(r.Float64)
	case EncodingOther:
		return len(r.Other)
	default:
		return 0
	}
}
