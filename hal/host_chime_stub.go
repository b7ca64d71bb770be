//go:build !tinygo && !cgo

package hal

// silentChime is used when no audio backend is available.
type silentChime struct{}

func newHostChime() silentChime { return silentChime{} }

func (silentChime) Ring() {}
