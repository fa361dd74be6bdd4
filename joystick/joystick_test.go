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

package joystick_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/capture"
	"github.com/jetsetilly/gopher64/joystick"
	"github.com/jetsetilly/gopher64/test"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateButton(t *testing.T) {
	ev, ok := joystick.Translate(&sdl.JoyButtonEvent{
		Which:  2,
		Button: 5,
		State:  sdl.PRESSED,
	}, 2)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, ev.(capture.EventButton).Button, 5)

	// button releases are not capture events
	_, ok = joystick.Translate(&sdl.JoyButtonEvent{
		Which:  2,
		Button: 5,
		State:  sdl.RELEASED,
	}, 2)
	test.ExpectEquality(t, ok, false)
}

func TestTranslateFiltersByDevice(t *testing.T) {
	_, ok := joystick.Translate(&sdl.JoyButtonEvent{
		Which:  3,
		Button: 0,
		State:  sdl.PRESSED,
	}, 2)
	test.ExpectEquality(t, ok, false)

	_, ok = joystick.Translate(&sdl.JoyAxisEvent{
		Which: 3,
		Axis:  0,
		Value: 32000,
	}, 2)
	test.ExpectEquality(t, ok, false)
}

func TestTranslateAxisPassesThrough(t *testing.T) {
	// small axis samples still translate. the deadzone is applied by the
	// capture session, not here
	ev, ok := joystick.Translate(&sdl.JoyAxisEvent{
		Which: 1,
		Axis:  2,
		Value: 100,
	}, 1)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, ev.(capture.EventAxis).Axis, 2)
	test.ExpectEquality(t, ev.(capture.EventAxis).Amount, 100)
}

func TestTranslateHat(t *testing.T) {
	ev, ok := joystick.Translate(&sdl.JoyHatEvent{
		Which: 1,
		Hat:   0,
		Value: sdl.HAT_LEFT,
	}, 1)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, ev.(capture.EventHat).Position, capture.HatLeft)

	ev, ok = joystick.Translate(&sdl.JoyHatEvent{
		Which: 1,
		Hat:   0,
		Value: sdl.HAT_RIGHTDOWN,
	}, 1)
	test.DemandEquality(t, ok, true)
	test.ExpectEquality(t, ev.(capture.EventHat).Position, capture.HatDownRight)
}

func TestTranslateIgnoresOtherEvents(t *testing.T) {
	_, ok := joystick.Translate(&sdl.KeyboardEvent{}, 1)
	test.ExpectEquality(t, ok, false)
}
