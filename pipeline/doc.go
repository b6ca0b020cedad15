// Package pipeline runs the equalize-then-render flow for one or more
// tracks that share a gain profile.
//
// Each run gets a fresh identifier, so artifacts of concurrent runs never
// collide. Tracks are independent and are processed concurrently.
package pipeline
