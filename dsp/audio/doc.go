// Package audio defines the canonical single-channel signal type and the
// normalization of raw sample encodings into it.
//
// A [Signal] always carries float32 samples nominally in [-1, 1] plus an
// integer sample rate. [Normalize] converts a [RawBuffer] of one of the
// supported encodings into that representation:
//
//	int16    x / 32768
//	int32    x / 2147483648
//	uint8    (x - 128) / 128
//	float32  unchanged
//	float64  narrowed to float32, unscaled
//	other    x / max|x| (peak normalization; all-zero input stays zero)
//
// Every function returns freshly allocated buffers; caller-owned slices are
// never modified or retained.
package audio
