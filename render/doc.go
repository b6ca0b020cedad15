// Package render converts spectrogram grids into images.
//
// It is the image-encoding boundary: numeric intensities are mapped through
// a [Gradient] (inferno by default) into an RGBA raster with time on the x
// axis and frequency rising upwards, optionally rescaled to a target size,
// and encoded by an [Encoder].
package render
