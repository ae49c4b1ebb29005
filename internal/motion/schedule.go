// internal/motion/schedule.go
package motion

import (
	"iter"
	"time"
)

// Movement is a single scheduled replay step: visit Points in order, then
// hold for Delay before the next step begins.
type Movement struct {
	Delay  time.Duration
	Points []Point
}

// Scheduler partitions a waypoint sequence and a total duration into
// Movements. Two invariants hold in every case: the movement delays sum to
// exactly the requested duration, and the movement point slices concatenate
// to exactly the input path.
type Scheduler struct {
	rng Rand
}

// NewScheduler creates a Scheduler drawing its remainder distribution from
// the given randomness source.
func NewScheduler(rng Rand) *Scheduler {
	return &Scheduler{rng: rng}
}

// Schedule distributes count waypoints across total, producing a one-shot
// lazy sequence of Movements in path order. total is interpreted in whole
// milliseconds and must be at least one millisecond; count must match the
// actual length of points. Both are validated by the caller.
//
// When there are at least as many waypoints as milliseconds, every movement
// lasts one millisecond and carries a near-equal share of the waypoints.
// Otherwise every movement carries one waypoint and the milliseconds are
// spread near-equally across them. Either way the indivisible remainder is
// handed out one unit at a time to a uniformly shuffled subset of movement
// indices, so no region of the path is systematically faster or slower.
func (s *Scheduler) Schedule(points iter.Seq[Point], count int, total time.Duration) iter.Seq[Movement] {
	ms := int(total / time.Millisecond)
	if ms <= count {
		return s.packPoints(points, count, ms)
	}
	return s.spreadDelays(points, count, ms)
}

// packPoints emits ms movements of one millisecond each, consuming the path
// sequentially. The movement index, not its content, decides which
// movements receive an extra waypoint.
func (s *Scheduler) packPoints(points iter.Seq[Point], count, ms int) iter.Seq[Movement] {
	perMovement := count / ms
	extras := selectIndices(ms, count-ms*perMovement, s.rng)

	return func(yield func(Movement) bool) {
		next, stop := iter.Pull(points)
		defer stop()
		for i := 0; i < ms; i++ {
			n := perMovement
			if _, ok := extras[i]; ok {
				n++
			}
			pts := make([]Point, 0, n)
			for j := 0; j < n; j++ {
				p, ok := next()
				if !ok {
					break
				}
				pts = append(pts, p)
			}
			if !yield(Movement{Delay: time.Millisecond, Points: pts}) {
				return
			}
		}
	}
}

// spreadDelays emits one movement per waypoint, distributing ms across them.
func (s *Scheduler) spreadDelays(points iter.Seq[Point], count, ms int) iter.Seq[Movement] {
	perMovement := ms / count
	extras := selectIndices(count, ms-count*perMovement, s.rng)

	return func(yield func(Movement) bool) {
		i := 0
		for p := range points {
			delay := perMovement
			if _, ok := extras[i]; ok {
				delay++
			}
			i++
			if !yield(Movement{
				Delay:  time.Duration(delay) * time.Millisecond,
				Points: []Point{p},
			}) {
				return
			}
		}
	}
}

// selectIndices picks howMany distinct indices uniformly from [0, count) by
// shuffling the full index range and taking the prefix. The shuffle iterates
// from the last index down and swaps with a uniform index in [0, i], which
// is the unbiased Fisher-Yates form.
func selectIndices(count, howMany int, rng Rand) map[int]struct{} {
	chosen := make(map[int]struct{}, howMany)
	if howMany <= 0 {
		return chosen
	}
	indices := make([]int, count)
	for i := range indices {
		indices[i] = i
	}
	for i := count - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}
	for _, idx := range indices[:howMany] {
		chosen[idx] = struct{}{}
	}
	return chosen
}
