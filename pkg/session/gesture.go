package session

import (
	"context"

	"github.com/AccelByte/extend-macaroni-spin/pkg/haptics"
	"github.com/AccelByte/extend-macaroni-spin/pkg/popup"
	"github.com/AccelByte/extend-macaroni-spin/pkg/rotation"
)

// SetCenter updates the plate center used for angle computation.
func (s *Session) SetCenter(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.SetCenter(rotation.Point{X: x, Y: y})
}

// BeginGesture starts tracking pointerID. Returns false when another pointer owns the gesture.
func (s *Session) BeginGesture(pointerID int, x, y float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.BeginPointer(pointerID, x, y)
}

// MoveGesture feeds a pointer position. When it completes a revolution the
// spin is applied and persisted and the outcome is returned; otherwise nil.
func (s *Session) MoveGesture(ctx context.Context, pointerID int, x, y float64) (*SpinOutcome, error) {
	s.mu.Lock()
	ev, ok := s.tracker.MovePointer(pointerID, x, y)
	if !ok {
		s.mu.Unlock()
		return nil, nil
	}
	out, vibrate, err := s.spinLocked(ctx, ev)
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if vibrate {
		haptics.Pulse(ctx, s.vibrator, haptics.SpinPulse)
	}
	return &out, nil
}

// EndGesture releases pointerID.
func (s *Session) EndGesture(pointerID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.EndPointer(pointerID)
}

// Rotation is the plate's display rotation in degrees.
func (s *Session) Rotation() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Rotation()
}

// Popups lists the live score popups.
func (s *Session) Popups() []popup.Popup {
	return s.popups.Active()
}

// DismissPopup removes a popup early. Unknown ids are ignored.
func (s *Session) DismissPopup(id string) bool {
	return s.popups.Dismiss(id)
}
