// internal/device/device.go

// Package device wraps the operating-system pointer behind a small
// interface so the movement pipeline can be driven against a real screen
// cursor in production and a recording fake in tests.
package device

import (
	"errors"

	"github.com/sychotixdev/Kalon/internal/motion"
)

// ErrPlatform indicates that an underlying OS cursor call reported failure.
// The cursor state is ambiguous after such a failure, so callers must not
// retry silently.
var ErrPlatform = errors.New("device: platform cursor call failed")

// ErrUnsupported is returned by the screen cursor on platforms without a
// native implementation.
var ErrUnsupported = errors.New("device: screen cursor not supported on this platform")

// Cursor abstracts the OS pointer.
type Cursor interface {
	// Position returns the current pointer coordinate.
	Position() (motion.Point, error)
	// MoveTo places the pointer at the given coordinate.
	MoveTo(p motion.Point) error
}

// fixedCursor reports a constant position and swallows writes. It backs the
// dry-run planning surface, which must not touch the real pointer.
type fixedCursor struct {
	p motion.Point
}

// Fixed returns a Cursor pinned at p.
func Fixed(p motion.Point) Cursor {
	return fixedCursor{p: p}
}

func (f fixedCursor) Position() (motion.Point, error) { return f.p, nil }

func (fixedCursor) MoveTo(motion.Point) error { return nil }
