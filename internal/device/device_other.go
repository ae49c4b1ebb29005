// internal/device/device_other.go
//go:build !windows

package device

import "github.com/sychotixdev/Kalon/internal/motion"

// screenCursor is the stub used on platforms without a native pointer
// implementation. Planning (path generation and scheduling) still works;
// only replay against the real cursor is unavailable.
type screenCursor struct{}

// NewScreenCursor returns a Cursor whose calls fail with ErrUnsupported.
func NewScreenCursor() Cursor {
	return screenCursor{}
}

func (screenCursor) Position() (motion.Point, error) {
	return motion.Point{}, ErrUnsupported
}

func (screenCursor) MoveTo(motion.Point) error {
	return ErrUnsupported
}
