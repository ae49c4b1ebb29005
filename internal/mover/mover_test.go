// internal/mover/mover_test.go
package mover

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sychotixdev/Kalon/internal/config"
	"github.com/sychotixdev/Kalon/internal/device"
	"github.com/sychotixdev/Kalon/internal/motion"
)

// mockCursor implements device.Cursor, recording every interaction so tests
// can assert exactly which OS calls a request triggered.
type mockCursor struct {
	mu sync.Mutex

	pos    motion.Point
	posErr error

	moveErr    error
	failOnCall int // MoveTo call number that starts failing; 0 disables.

	positionCalls int
	moved         []motion.Point
}

func (m *mockCursor) Position() (motion.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positionCalls++
	if m.posErr != nil {
		return motion.Point{}, m.posErr
	}
	return m.pos, nil
}

func (m *mockCursor) MoveTo(p motion.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.moveErr != nil && m.failOnCall > 0 && len(m.moved)+1 >= m.failOnCall {
		return m.moveErr
	}
	m.moved = append(m.moved, p)
	return nil
}

// newTestMover wires a Mover with a tiny path resolution and a fixed seed so
// tests stay fast and deterministic.
func newTestMover(cursor device.Cursor, resolution int) *Mover {
	cfg := config.MotionConfig{Resolution: resolution}
	rng := rand.New(rand.NewSource(12345))
	return New(cfg, cursor, rng, zap.NewNop())
}

func TestMoveToRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		target   motion.Point
		duration time.Duration
		wantErr  error
	}{
		{name: "negative_x", target: motion.Point{X: -1, Y: 10}, duration: time.Second, wantErr: ErrNegativeCoordinate},
		{name: "negative_y", target: motion.Point{X: 10, Y: -1}, duration: time.Second, wantErr: ErrNegativeCoordinate},
		{name: "both_negative", target: motion.Point{X: -5, Y: -5}, duration: time.Second, wantErr: ErrNegativeCoordinate},
		{name: "zero_duration", target: motion.Point{X: 10, Y: 10}, duration: 0, wantErr: ErrInvalidDuration},
		{name: "negative_duration", target: motion.Point{X: 10, Y: 10}, duration: -time.Second, wantErr: ErrInvalidDuration},
		{name: "sub_millisecond", target: motion.Point{X: 10, Y: 10}, duration: 500 * time.Microsecond, wantErr: ErrInvalidDuration},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cursor := &mockCursor{pos: motion.Point{X: 1, Y: 1}}
			m := newTestMover(cursor, 50)

			err := m.MoveTo(tc.target, tc.duration)

			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			// Fail fast: no OS interaction of any kind before validation.
			assert.Zero(t, cursor.positionCalls, "position must not be queried for invalid input")
			assert.Empty(t, cursor.moved, "cursor must not be moved for invalid input")
		})
	}
}

func TestMoveToHappyPath(t *testing.T) {
	t.Parallel()

	start := motion.Point{X: 5, Y: 5}
	target := motion.Point{X: 200, Y: 120}
	cursor := &mockCursor{pos: start}
	m := newTestMover(cursor, 40)

	began := time.Now()
	err := m.MoveTo(target, 20*time.Millisecond)
	elapsed := time.Since(began)

	require.NoError(t, err)
	assert.Equal(t, 1, cursor.positionCalls, "position is queried exactly once per request")
	require.Len(t, cursor.moved, 40, "every waypoint is applied exactly once")
	assert.Equal(t, start, cursor.moved[0])
	assert.Equal(t, target, cursor.moved[len(cursor.moved)-1], "cursor must land on the target")
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond, "playback honors the requested duration")
}

func TestMoveToSurfacesPositionError(t *testing.T) {
	t.Parallel()

	cursor := &mockCursor{posErr: device.ErrUnsupported}
	m := newTestMover(cursor, 40)

	err := m.MoveTo(motion.Point{X: 10, Y: 10}, 5*time.Millisecond)

	require.Error(t, err)
	assert.ErrorIs(t, err, device.ErrUnsupported)
	assert.Empty(t, cursor.moved, "no movement after a failed position query")
}

func TestMoveToAbortsOnFailedWrite(t *testing.T) {
	t.Parallel()

	cursor := &mockCursor{
		pos:        motion.Point{X: 0, Y: 0},
		moveErr:    device.ErrPlatform,
		failOnCall: 5,
	}
	m := newTestMover(cursor, 40)

	err := m.MoveTo(motion.Point{X: 300, Y: 300}, 5*time.Millisecond)

	require.Error(t, err)
	assert.ErrorIs(t, err, device.ErrPlatform)
	// Remaining movements are abandoned: only the writes before the failure
	// landed, and nothing was retried.
	assert.Len(t, cursor.moved, 4)
}

func TestPlanMatchesRequest(t *testing.T) {
	t.Parallel()

	start := motion.Point{X: 10, Y: 10}
	target := motion.Point{X: 500, Y: 250}
	m := newTestMover(&mockCursor{pos: start}, 0) // default resolution

	movements, err := m.Plan(target, 2500*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, movements, 2500)

	var total time.Duration
	points := 0
	for _, mv := range movements {
		total += mv.Delay
		points += len(mv.Points)
	}
	assert.Equal(t, 2500*time.Millisecond, total)
	assert.Equal(t, motion.DefaultResolution, points)

	first := movements[0].Points[0]
	lastMv := movements[len(movements)-1]
	last := lastMv.Points[len(lastMv.Points)-1]
	assert.Equal(t, start, first)
	assert.Equal(t, target, last)
}

func TestPlanRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	m := newTestMover(&mockCursor{}, 40)

	_, err := m.Plan(motion.Point{X: -3, Y: 0}, time.Second)
	assert.ErrorIs(t, err, ErrNegativeCoordinate)

	_, err = m.Plan(motion.Point{X: 3, Y: 0}, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
