//go:build !tinygo && !cgo

package hal

import "errors"

// RunWindow is unavailable without cgo; use -headless or -terminal.
func RunWindow(func(HAL) func() error) error {
	return errors.New("window mode needs cgo; rebuild with CGO_ENABLED=1 or pass -headless / -terminal")
}
