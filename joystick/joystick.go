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

// Package joystick is a thin wrapper around the SDL joystick subsystem. It
// opens devices and translates raw SDL joystick events into the hardware
// events understood by the capture package. Nothing else in the program
// touches SDL joystick functions directly.
package joystick

import (
	"fmt"

	"github.com/jetsetilly/gopher64/capture"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Init the SDL joystick subsystem. Safe to call when the subsystem is
// already initialised.
func Init() error {
	err := sdl.InitSubSystem(sdl.INIT_JOYSTICK)
	if err != nil {
		return fmt.Errorf("joystick: %w", err)
	}
	return nil
}

// Quit the SDL joystick subsystem.
func Quit() {
	sdl.QuitSubSystem(sdl.INIT_JOYSTICK)
}

// NumDevices returns the number of attached joystick devices.
func NumDevices() int {
	return sdl.NumJoysticks()
}

// Device is an opened joystick. Implements the capture.Handle interface, the
// capture session keeps the device open for the session's lifetime.
type Device struct {
	joy *sdl.Joystick
}

// Open the joystick at the given device index.
func Open(index int) (*Device, error) {
	joy := sdl.JoystickOpen(index)
	if joy == nil {
		return nil, fmt.Errorf("joystick: cannot open device %d", index)
	}

	logger.Logf("joystick", "opened %s", joy.Name())

	return &Device{joy: joy}, nil
}

// Name of the device as reported by the driver.
func (d *Device) Name() string {
	return d.joy.Name()
}

// InstanceID identifies the device in SDL joystick events.
func (d *Device) InstanceID() sdl.JoystickID {
	return d.joy.InstanceID()
}

// Close implements the capture.Handle interface.
func (d *Device) Close() {
	d.joy.Close()
}

// Translate an SDL event into a capture event. Returns false for events that
// are not joystick events, for events from other devices, and for button
// releases. Axis and hat events are passed through regardless of magnitude
// or position, qualification is the capture session's business.
func Translate(ev sdl.Event, id sdl.JoystickID) (capture.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.JoyButtonEvent:
		if ev.Which != id || ev.State != sdl.PRESSED {
			return nil, false
		}
		return capture.EventButton{Button: int(ev.Button)}, true

	case *sdl.JoyAxisEvent:
		if ev.Which != id {
			return nil, false
		}
		return capture.EventAxis{Axis: int(ev.Axis), Amount: ev.Value}, true

	case *sdl.JoyHatEvent:
		if ev.Which != id {
			return nil, false
		}
		return capture.EventHat{Hat: int(ev.Hat), Position: hatPosition(ev.Value)}, true
	}

	return nil, false
}

func hatPosition(v uint8) capture.HatPosition {
	switch v {
	case sdl.HAT_UP:
		return capture.HatUp
	case sdl.HAT_DOWN:
		return capture.HatDown
	case sdl.HAT_LEFT:
		return capture.HatLeft
	case sdl.HAT_RIGHT:
		return capture.HatRight
	case sdl.HAT_LEFTUP:
		return capture.HatUpLeft
	case sdl.HAT_RIGHTUP:
		return capture.HatUpRight
	case sdl.HAT_LEFTDOWN:
		return capture.HatDownLeft
	case sdl.HAT_RIGHTDOWN:
		return capture.HatDownRight
	}
	return capture.HatCentre
}

// Flush discards every joystick event queued so far. Called when a capture
// session begins so that the input that asked for the rebind cannot commit
// the capture by itself.
func Flush() {
	sdl.PumpEvents()
	sdl.FlushEvents(sdl.JOYAXISMOTION, sdl.JOYDEVICEREMOVED)
}
