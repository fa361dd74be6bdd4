// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

// Package capture implements the "listening for input" period during which a
// logical controller input is rebound. The package is driven entirely by the
// caller: hardware events are fed in with Push() and evaluated on Tick(). It
// has no knowledge of SDL or of any GUI toolkit, which keeps it testable in
// isolation.
//
// At most one capture Session is active at a time. Starting a new session
// implicitly cancels the previous one.
package capture

import (
	"github.com/jetsetilly/gopher64/keyspec"
)

// Deadzone is the magnitude an axis sample must exceed before it qualifies
// as a directional input. Samples at exactly the deadzone do not qualify.
const Deadzone = 16384

// Event is a raw hardware event fed to the session by the caller.
type Event interface{}

// EventButton is sent when a joystick button is pressed.
type EventButton struct {
	Button int
}

// EventAxis is sent when a joystick axis moves. Amount is the raw sample.
type EventAxis struct {
	Axis   int
	Amount int16
}

// HatPosition is the position reported by a joystick hat.
type HatPosition int

// List of valid HatPosition values. Only the four cardinal positions can
// qualify as a capture; diagonals and centre are ignored.
const (
	HatCentre HatPosition = iota
	HatUp
	HatDown
	HatLeft
	HatRight
	HatUpLeft
	HatUpRight
	HatDownLeft
	HatDownRight
)

// EventHat is sent when a joystick hat changes position.
type EventHat struct {
	Hat      int
	Position HatPosition
}

// Handle represents the opened hardware device owned by the session for its
// lifetime. A nil Handle is allowed; keyboard capture works without one.
type Handle interface {
	Close()
}

// Session is the capture state machine. The zero value is an idle session.
type Session struct {
	active    bool
	name      string
	parameter int
	handle    Handle
	pending   []Event
}

// Start listening for input on behalf of the named logical input. A session
// that is already active is cancelled first: its handle is closed and its
// queued events are discarded, so a stale session can never commit.
//
// The caller should flush any hardware events queued before the session
// began. Without the flush, the input that triggered the rebind can itself
// be captured.
func (s *Session) Start(name string, parameter int, handle Handle) {
	if s.active {
		s.Cancel()
	}

	s.active = true
	s.name = name
	s.parameter = parameter
	s.handle = handle
	s.pending = s.pending[:0]
}

// Cancel the session with no commit. A no-op if the session is not active.
func (s *Session) Cancel() {
	if !s.active {
		return
	}
	if s.handle != nil {
		s.handle.Close()
		s.handle = nil
	}
	s.active = false
	s.pending = s.pending[:0]
}

// Active returns true while the session is listening.
func (s *Session) Active() bool {
	return s.active
}

// Target returns the logical input name and parameter slot the session is
// listening on behalf of. Only meaningful while Active().
func (s *Session) Target() (string, int) {
	return s.name, s.parameter
}

// Push queues a hardware event for evaluation on the next Tick(). Events
// pushed while the session is idle are discarded.
func (s *Session) Push(ev Event) {
	if !s.active {
		return
	}
	s.pending = append(s.pending, ev)
}

// Tick evaluates all events queued since the previous tick. If a qualifying
// event is found the session ends and the captured KeySpec is returned with
// true. Qualifying rules:
//
//   - any button press
//   - an axis sample beyond the deadzone; the sign records which half
//   - a hat at one of the four cardinal positions
//
// At most one commit occurs per session. Later qualifying events in the same
// tick are discarded along with the rest of the queue.
func (s *Session) Tick() (keyspec.KeySpec, bool) {
	if !s.active {
		return keyspec.KeySpec{}, false
	}

	var key keyspec.KeySpec
	var got bool

	for _, ev := range s.pending {
		switch ev := ev.(type) {
		case EventButton:
			key = keyspec.KeySpec{
				Type:   keyspec.TypeButton,
				Values: []keyspec.Value{{Number: ev.Button}},
			}
			got = true

		case EventAxis:
			sign := keyspec.SignNone
			if ev.Amount > Deadzone {
				sign = keyspec.SignPlus
			} else if ev.Amount < -Deadzone {
				sign = keyspec.SignMinus
			}
			if sign != keyspec.SignNone {
				key = keyspec.KeySpec{
					Type:   keyspec.TypeAxis,
					Values: []keyspec.Value{{Number: ev.Axis, Sign: sign}},
				}
				got = true
			}

		case EventHat:
			dir := keyspec.DirNone
			switch ev.Position {
			case HatUp:
				dir = keyspec.DirUp
			case HatDown:
				dir = keyspec.DirDown
			case HatLeft:
				dir = keyspec.DirLeft
			case HatRight:
				dir = keyspec.DirRight
			}
			if dir != keyspec.DirNone {
				key = keyspec.KeySpec{
					Type:   keyspec.TypeHat,
					Values: []keyspec.Value{{Number: ev.Hat, Direction: dir}},
				}
				got = true
			}
		}

		if got {
			break
		}
	}

	s.pending = s.pending[:0]

	if got {
		s.Cancel()
		return key, true
	}

	return keyspec.KeySpec{}, false
}

// Key commits a keyboard key press. Keyboard events arrive through the GUI
// toolkit rather than the hardware event stream and qualify unconditionally.
// The session ends and the captured KeySpec is returned. A no-op if the
// session is not active.
func (s *Session) Key(code int) (keyspec.KeySpec, bool) {
	if !s.active {
		return keyspec.KeySpec{}, false
	}

	s.Cancel()

	return keyspec.KeySpec{
		Type:   keyspec.TypeKey,
		Values: []keyspec.Value{{Number: code}},
	}, true
}
