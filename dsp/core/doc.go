// Package core holds small numeric helpers shared by the equalizer and the
// spectrogram packages.
package core
