// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package rotation turns a stream of pointer positions around a center
// into discrete full-revolution spin events.
package rotation

import (
	"math"
)

const (
	// FullTurn is one revolution in degrees.
	FullTurn = 360.0

	// PrimaryPointer is the pointer id used by the single-pointer helpers.
	PrimaryPointer = 0

	// turnEpsilon absorbs floating point drift when summing many small deltas.
	turnEpsilon = 1e-9
)

// Point is a position in screen coordinates (y grows downward).
type Point struct {
	X float64
	Y float64
}

// SpinEvent is emitted once per completed revolution.
type SpinEvent struct {
	Point     Point
	Direction int // +1 clockwise on screen, -1 counter-clockwise
	Sequence  int64
}

// Config controls a Tracker.
type Config struct {
	Center Point

	// KeepPartialOnRelease carries an unfinished revolution over to the next
	// gesture instead of discarding it on Begin.
	KeepPartialOnRelease bool
}

// Tracker accumulates signed angle deltas of the primary pointer.
// It is not safe for concurrent use; callers serialize access.
type Tracker struct {
	cfg Config

	active      bool
	pointerID   int
	lastAngle   float64
	accumulated float64
	rotation    float64
	sequence    int64
}

// NewTracker creates an inactive tracker.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// SetCenter moves the reference point, e.g. after a layout change.
func (t *Tracker) SetCenter(c Point) {
	t.cfg.Center = c
}

// Center returns the current reference point.
func (t *Tracker) Center() Point {
	return t.cfg.Center
}

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// Rotation is the unbounded display rotation in degrees.
func (t *Tracker) Rotation() float64 {
	return t.rotation
}

// Accumulated is the progress towards the next spin, in signed degrees.
func (t *Tracker) Accumulated() float64 {
	return t.accumulated
}

// Begin starts a gesture with the primary pointer.
func (t *Tracker) Begin(x, y float64) {
	t.BeginPointer(PrimaryPointer, x, y)
}

// Move feeds a primary pointer position.
func (t *Tracker) Move(x, y float64) (SpinEvent, bool) {
	return t.MovePointer(PrimaryPointer, x, y)
}

// End finishes the gesture of the primary pointer.
func (t *Tracker) End() {
	t.EndPointer(PrimaryPointer)
}

// BeginPointer starts a gesture. While a gesture is active, contacts from
// other pointers are ignored and false is returned.
func (t *Tracker) BeginPointer(id int, x, y float64) bool {
	if t.active && id != t.pointerID {
		return false
	}

	t.active = true
	t.pointerID = id
	t.lastAngle = Angle(t.cfg.Center, Point{X: x, Y: y})
	if !t.cfg.KeepPartialOnRelease {
		t.accumulated = 0
	}
	return true
}

// MovePointer feeds a pointer position and returns a spin event when a full
// revolution has been accumulated. The accumulator restarts from zero after
// each event.
func (t *Tracker) MovePointer(id int, x, y float64) (SpinEvent, bool) {
	if !t.active || id != t.pointerID {
		return SpinEvent{}, false
	}

	current := Angle(t.cfg.Center, Point{X: x, Y: y})
	delta := AngleDelta(t.lastAngle, current)
	t.lastAngle = current
	t.accumulated += delta
	t.rotation += delta

	if math.Abs(t.accumulated) < FullTurn-turnEpsilon {
		return SpinEvent{}, false
	}

	dir := 1
	if t.accumulated < 0 {
		dir = -1
	}
	t.accumulated = 0
	t.sequence++

	return SpinEvent{
		Point:     Point{X: x, Y: y},
		Direction: dir,
		Sequence:  t.sequence,
	}, true
}

// EndPointer deactivates the tracker if id owns the gesture.
func (t *Tracker) EndPointer(id int) {
	if !t.active || id != t.pointerID {
		return
	}
	t.active = false
}

// Angle returns the direction from center to p in degrees, in (-180, 180].
func Angle(center, p Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
}

// AngleDelta returns the signed change from prev to cur, corrected for the
// wraparound at ±180 so a small physical motion never reads as a large one.
func AngleDelta(prev, cur float64) float64 {
	d := cur - prev
	if d > 180 {
		d -= FullTurn
	}
	if d < -180 {
		d += FullTurn
	}
	return d
}
