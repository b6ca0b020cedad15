package audio

import "fmt"

const (
	int16Scale = 32768.0
	int32Scale = 2147483648.0
	uint8Bias  = 128
	uint8Scale = 128.0
)

// Normalize converts raw samples into canonical float32 samples.
//
// Float inputs are not range-checked; minor overshoot beyond [-1, 1] is
// passed through. An empty buffer yields an empty, non-nil slice.
func Normalize(raw RawBuffer) ([]float32, error) {
	switch raw.Encoding {
	case EncodingInt16:
		out := make([]float32, len(raw.Int16))
		for i, v := range raw.Int16 {
			out[i] = float32(v) / int16Scale
		}
		return out, nil
	case EncodingInt32:
		out := make([]float32, len(raw.Int32))
		for i, v := range raw.Int32 {
			out[i] = float32(float64(v) / int32Scale)
		}
		return out, nil
	case EncodingUint8:
		out := make([]float32, len(raw.Uint8))
		for i, v := range raw.Uint8 {
			out[i] = float32(int(v)-uint8Bias) / uint8Scale
		}
		return out, nil
	case EncodingFloat32:
		out := make([]float32, len(raw.Float32))
		copy(out, raw.Float32)
		return out, nil
	case EncodingFloat64:
		out := make([]float32, len(raw.Float64))
		for i, v := range raw.Float64 {
			out[i] = float32(v)
		}
		return out, nil
	case EncodingOther:
		return peakNormalize(raw.Other), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, raw.Encoding)
	}
}

func peakNormalize(in []int64) []float32 {
	out := make([]float32, len(in))

	var peak float64
	for _, v := range in {
		av := float64(v)
		if av < 0 {
			av = -av
		}
		if av > peak {
			peak = av
		}
	}
	if peak == 0 {
		return out
	}

	for i, v := range in {
		out[i] = float32(float64(v) / peak)
	}
	return out
}
