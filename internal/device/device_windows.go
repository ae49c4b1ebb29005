// internal/device/device_windows.go
//go:build windows

package device

import (
	"fmt"

	"github.com/lxn/win"

	"github.com/sychotixdev/Kalon/internal/motion"
)

// screenCursor drives the real Windows pointer through user32.
type screenCursor struct{}

// NewScreenCursor returns a Cursor backed by the OS pointer.
func NewScreenCursor() Cursor {
	return screenCursor{}
}

func (screenCursor) Position() (motion.Point, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return motion.Point{}, fmt.Errorf("GetCursorPos: %w", ErrPlatform)
	}
	return motion.Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

func (screenCursor) MoveTo(p motion.Point) error {
	if !win.SetCursorPos(int32(p.X), int32(p.Y)) {
		return fmt.Errorf("SetCursorPos %s: %w", p, ErrPlatform)
	}
	return nil
}
