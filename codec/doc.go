// Package codec decodes audio containers into single-channel raw buffers and
// writes processed signals back out.
//
// Only the first channel of multi-channel input is kept. Samples are handed
// over in their source encoding so that [audio.Normalize] can apply the
// scaling rule that matches it.
package codec
