// internal/replay/player.go

// Package replay applies a scheduled movement sequence to the OS cursor.
package replay

import (
	"fmt"
	"iter"
	"time"

	"go.uber.org/zap"

	"github.com/sychotixdev/Kalon/internal/device"
	"github.com/sychotixdev/Kalon/internal/motion"
)

// Player replays movements against a cursor. Playback is synchronous and
// has no cancellation mechanism: it runs until the sequence is exhausted or
// a cursor call fails. A mid-sequence failure aborts the remaining
// movements with no rollback, so the cursor may be left mid-path.
type Player struct {
	cursor device.Cursor
	logger *zap.Logger
}

// NewPlayer creates a Player that drives the given cursor.
func NewPlayer(cursor device.Cursor, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{cursor: cursor, logger: logger}
}

// Play visits every point of every movement in order, waiting each
// movement's delay after its points have been applied. The first failed
// cursor write is returned immediately; retrying a failed write could
// compound mis-positioning.
//
// Delays are honored with a tight elapsed-time poll rather than a sleep:
// scheduler wakeup granularity would otherwise stretch 1 ms steps by an
// order of magnitude. Playback therefore occupies a CPU core for its full
// duration.
func (p *Player) Play(movements iter.Seq[motion.Movement]) error {
	steps := 0
	began := time.Now()
	for m := range movements {
		for _, pt := range m.Points {
			if err := p.cursor.MoveTo(pt); err != nil {
				return fmt.Errorf("replay: step %d: %w", steps, err)
			}
		}
		wait(m.Delay)
		steps++
	}
	p.logger.Debug("replay finished",
		zap.Int("steps", steps),
		zap.Duration("elapsed", time.Since(began)),
	)
	return nil
}

// wait busy-waits for d, re-basing its timer on entry so drift from the
// previous step does not accumulate.
func wait(d time.Duration) {
	start := time.Now()
	for time.Since(start) < d {
	}
}
