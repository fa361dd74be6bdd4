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

// Package keyspec describes how a logical controller input is bound to the
// physical world. A KeySpec binds one input to a joystick button, a joystick
// axis, a joystick hat or a keyboard key.
//
// A KeySpec carries one Value per "parameter slot". Most inputs have a single
// slot but an analogue input, the N64 control stick for example, has two: one
// for each direction of travel. The two slots of such an input can be bound
// independently (see the Merge() function).
//
// KeySpecs have a textual form which is used when persisting to the plugin
// configuration file. See Parse() and the String() functions.
package keyspec

// Type differentiates the kinds of physical input a KeySpec can describe.
type Type int

// List of valid Type values.
const (
	TypeButton Type = iota
	TypeAxis
	TypeHat
	TypeKey
)

func (t Type) String() string {
	switch t {
	case TypeButton:
		return "BUTTON"
	case TypeAxis:
		return "AXIS"
	case TypeHat:
		return "HAT"
	case TypeKey:
		return "KEY"
	}
	return "unknown"
}

// Sign indicates which half of an axis a Value refers to.
type Sign int

// List of valid Sign values. SignNone is only valid for an unbound Value.
const (
	SignNone Sign = iota
	SignPlus
	SignMinus
)

func (s Sign) String() string {
	switch s {
	case SignPlus:
		return "+"
	case SignMinus:
		return "-"
	}
	return ""
}

// Direction indicates which hat direction a Value refers to. Only the four
// cardinal directions can be bound.
type Direction int

// List of valid Direction values. DirNone is only valid for an unbound Value.
const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirLeft:
		return "LEFT"
	case DirRight:
		return "RIGHT"
	}
	return ""
}

// Value is one parameter slot of a KeySpec. Number is the hardware index
// (button, axis or hat index) or the raw key code. A negative Number means
// the slot is unbound.
type Value struct {
	Number    int
	Sign      Sign
	Direction Direction
}

// Unset returns the Value representing an unbound parameter slot.
func Unset() Value {
	return Value{Number: -1}
}

// Unbound returns true if the Value does not bind anything.
func (v Value) Unbound() bool {
	return v.Number < 0
}

// InvertedSign returns the Value for the opposite half of the same axis. Used
// to fill the companion slot when one half of an axis is rebound.
func (v Value) InvertedSign() Value {
	i := v
	switch v.Sign {
	case SignPlus:
		i.Sign = SignMinus
	case SignMinus:
		i.Sign = SignPlus
	}
	return i
}

// InvertedDirection returns the Value for the opposite direction of the same
// hat. The companion of a hat direction is the opposing cardinal.
func (v Value) InvertedDirection() Value {
	i := v
	switch v.Direction {
	case DirUp:
		i.Direction = DirDown
	case DirDown:
		i.Direction = DirUp
	case DirLeft:
		i.Direction = DirRight
	case DirRight:
		i.Direction = DirLeft
	}
	return i
}

// KeySpec binds one logical controller input to a physical input. The Values
// field is indexed by parameter slot.
type KeySpec struct {
	Type   Type
	Values []Value
}
