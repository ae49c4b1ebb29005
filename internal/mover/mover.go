// internal/mover/mover.go

// Package mover ties the movement pipeline together: it validates a move
// request, reads the current cursor position, generates a humanized path,
// schedules it over the requested duration, and replays it.
package mover

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sychotixdev/Kalon/internal/config"
	"github.com/sychotixdev/Kalon/internal/device"
	"github.com/sychotixdev/Kalon/internal/motion"
	"github.com/sychotixdev/Kalon/internal/replay"
)

// ErrNegativeCoordinate is returned for targets with a negative component.
var ErrNegativeCoordinate = errors.New("mover: target coordinates must be non-negative")

// ErrInvalidDuration is returned for durations under one whole millisecond.
var ErrInvalidDuration = errors.New("mover: duration must be at least one millisecond")

// Mover performs humanized cursor moves. It is safe for concurrent use as
// long as the injected Rand is; concurrent moves will interleave on the
// single OS cursor, which is the caller's problem to avoid.
type Mover struct {
	cursor    device.Cursor
	logger    *zap.Logger
	generator *motion.PathGenerator
	scheduler *motion.Scheduler
	player    *replay.Player
}

// New creates a Mover from configuration. A nil rng wires a process-wide
// locked source seeded from cfg.Seed.
func New(cfg config.MotionConfig, cursor device.Cursor, rng motion.Rand, logger *zap.Logger) *Mover {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = motion.NewLockedRand(cfg.Seed)
	}
	return &Mover{
		cursor:    cursor,
		logger:    logger,
		generator: motion.NewPathGenerator(cfg.Resolution, rng),
		scheduler: motion.NewScheduler(rng),
		player:    replay.NewPlayer(cursor, logger),
	}
}

// MoveTo moves the cursor from its current position to target over roughly
// d, tracing a randomized arc. Validation happens before any OS call or
// path generation; platform failures are returned unretried.
func (m *Mover) MoveTo(target motion.Point, d time.Duration) error {
	movements, err := m.plan(target, d)
	if err != nil {
		return err
	}
	return m.player.Play(movements)
}

// Plan builds the movement schedule for a move to target without touching
// the cursor beyond the initial position query. Used by the dry-run surface.
func (m *Mover) Plan(target motion.Point, d time.Duration) ([]motion.Movement, error) {
	movements, err := m.plan(target, d)
	if err != nil {
		return nil, err
	}
	var out []motion.Movement
	for mv := range movements {
		out = append(out, mv)
	}
	return out, nil
}

func (m *Mover) plan(target motion.Point, d time.Duration) (iter.Seq[motion.Movement], error) {
	if target.X < 0 || target.Y < 0 {
		return nil, fmt.Errorf("target %s: %w", target, ErrNegativeCoordinate)
	}
	if d < time.Millisecond {
		return nil, fmt.Errorf("duration %s: %w", d, ErrInvalidDuration)
	}

	start, err := m.cursor.Position()
	if err != nil {
		return nil, fmt.Errorf("mover: query cursor position: %w", err)
	}

	m.logger.Debug("planned cursor move",
		zap.String("move_id", uuid.NewString()),
		zap.Stringer("from", start),
		zap.Stringer("to", target),
		zap.Duration("duration", d),
		zap.Int("waypoints", m.generator.Resolution()),
	)

	path := m.generator.Generate(start, target)
	return m.scheduler.Schedule(path, m.generator.Resolution(), d), nil
}
