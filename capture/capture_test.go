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

package capture_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/capture"
	"github.com/jetsetilly/gopher64/keyspec"
	"github.com/jetsetilly/gopher64/test"
)

// mockHandle counts Close() calls in place of a real joystick handle.
type mockHandle struct {
	closed int
}

func (h *mockHandle) Close() {
	h.closed++
}

func TestButtonCapture(t *testing.T) {
	var s capture.Session
	h := &mockHandle{}

	s.Start("A Button", -1, h)
	test.ExpectEquality(t, s.Active(), true)

	// a tick with no events commits nothing and the session stays active
	_, ok := s.Tick()
	test.ExpectEquality(t, ok, false)
	test.ExpectEquality(t, s.Active(), true)

	s.Push(capture.EventButton{Button: 5})
	key, ok := s.Tick()
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, key.String(), "BUTTON 5")

	// commit ends the session and releases the handle
	test.ExpectEquality(t, s.Active(), false)
	test.ExpectEquality(t, h.closed, 1)
}

func TestAxisDeadzone(t *testing.T) {
	var s capture.Session

	// at exactly the deadzone the sample does not qualify
	s.Start("X Axis", 0, nil)
	s.Push(capture.EventAxis{Axis: 1, Amount: capture.Deadzone})
	_, ok := s.Tick()
	test.ExpectEquality(t, ok, false)
	test.ExpectEquality(t, s.Active(), true)

	s.Push(capture.EventAxis{Axis: 1, Amount: -capture.Deadzone})
	_, ok = s.Tick()
	test.ExpectEquality(t, ok, false)

	// one past the deadzone qualifies, with the corresponding sign
	s.Push(capture.EventAxis{Axis: 1, Amount: capture.Deadzone + 1})
	key, ok := s.Tick()
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, key.String(), "AXIS 1 +")

	s.Start("X Axis", 1, nil)
	s.Push(capture.EventAxis{Axis: 1, Amount: -capture.Deadzone - 1})
	key, ok = s.Tick()
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, key.String(), "AXIS 1 -")
}

func TestHatCardinalsOnly(t *testing.T) {
	var s capture.Session

	s.Start("DPad U", -1, nil)

	// diagonals and centre never qualify
	for _, p := range []capture.HatPosition{
		capture.HatCentre,
		capture.HatUpLeft, capture.HatUpRight,
		capture.HatDownLeft, capture.HatDownRight,
	} {
		s.Push(capture.EventHat{Hat: 0, Position: p})
		_, ok := s.Tick()
		test.ExpectEquality(t, ok, false)
		test.ExpectEquality(t, s.Active(), true)
	}

	s.Push(capture.EventHat{Hat: 0, Position: capture.HatUp})
	key, ok := s.Tick()
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, key.String(), "HAT 0 UP")
}

func TestFirstQualifyingEventWins(t *testing.T) {
	var s capture.Session

	s.Start("B Button", -1, nil)

	// a below-deadzone wobble before the button press is skipped over
	s.Push(capture.EventAxis{Axis: 0, Amount: 100})
	s.Push(capture.EventButton{Button: 2})
	s.Push(capture.EventButton{Button: 9})

	key, ok := s.Tick()
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, key.String(), "BUTTON 2")

	// the session has ended. the remaining queued events are gone and a new
	// push is discarded
	s.Push(capture.EventButton{Button: 9})
	_, ok = s.Tick()
	test.ExpectEquality(t, ok, false)
}

func TestSessionExclusivity(t *testing.T) {
	var s capture.Session
	h1 := &mockHandle{}
	h2 := &mockHandle{}

	s.Start("A Button", -1, h1)
	s.Push(capture.EventButton{Button: 3})

	// starting a second session releases the first handle and discards the
	// first session's stale events
	s.Start("B Button", -1, h2)
	test.ExpectEquality(t, h1.closed, 1)
	test.ExpectEquality(t, h2.closed, 0)

	_, ok := s.Tick()
	test.ExpectEquality(t, ok, false)

	name, parameter := s.Target()
	test.ExpectEquality(t, name, "B Button")
	test.ExpectEquality(t, parameter, -1)

	s.Push(capture.EventButton{Button: 7})
	key, ok := s.Tick()
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, key.String(), "BUTTON 7")
	test.ExpectEquality(t, h2.closed, 1)
}

func TestKeyboardCommit(t *testing.T) {
	var s capture.Session
	h := &mockHandle{}

	// keyboard keys commit unconditionally, even with a hardware handle open
	s.Start("Start", -1, h)
	key, ok := s.Key(13)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, key.String(), "KEY 13")
	test.ExpectEquality(t, s.Active(), false)
	test.ExpectEquality(t, h.closed, 1)

	// and are ignored when the session is idle
	_, ok = s.Key(13)
	test.ExpectEquality(t, ok, false)
}

func TestCancel(t *testing.T) {
	var s capture.Session
	h := &mockHandle{}

	s.Start("Z Trig", -1, h)
	s.Push(capture.EventButton{Button: 1})
	s.Cancel()

	test.ExpectEquality(t, s.Active(), false)
	test.ExpectEquality(t, h.closed, 1)

	// cancelling an idle session is a no-op
	s.Cancel()
	test.ExpectEquality(t, h.closed, 1)

	_, ok := s.Tick()
	test.ExpectEquality(t, ok, false)
}

// the merge of a captured keyspec into an existing binding is the
// responsibility of the keyspec package but the two halves are designed to
// meet: a capture always carries exactly one value
func TestCaptureMergesCleanly(t *testing.T) {
	var s capture.Session

	s.Start("Y Axis", 0, nil)
	s.Push(capture.EventAxis{Axis: 3, Amount: 20000})
	key, ok := s.Tick()
	test.DemandEquality(t, ok, true)

	keys := keyspec.Merge(nil, key, 0)
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0].String(), "AXIS 3 + 3 -")
}
