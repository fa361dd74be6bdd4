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

package bindings

import (
	"strconv"
	"strings"
)

// Control pairs the config key of a logical controller input with a
// parameter slot. A Parameter of -1 means the control owns the whole keyspec
// list for that key. A Parameter >= 0 means the control owns only one slot
// of a shared keyspec, which is how the two directions of an analogue axis
// are presented as two separate controls.
type Control struct {
	Name      string
	Parameter int
}

// N64Controls is the list of logical inputs on an N64 controller, in the
// order they are presented by the input dialog. The Name field is the config
// key used by the input plugin.
var N64Controls = []Control{
	{"X Axis", 0},
	{"X Axis", 1},
	{"Y Axis", 0},
	{"Y Axis", 1},
	{"A Button", -1},
	{"B Button", -1},
	{"Start", -1},
	{"L Trig", -1},
	{"R Trig", -1},
	{"Z Trig", -1},
	{"C Button U", -1},
	{"C Button D", -1},
	{"C Button L", -1},
	{"C Button R", -1},
	{"DPad U", -1},
	{"DPad D", -1},
	{"DPad L", -1},
	{"DPad R", -1},
	{"Mempak switch", -1},
	{"Rumblepak switch", -1},
}

// Label returns the name to display for the control. Parameterised controls
// share a config key so the slot is included to tell them apart.
func (c Control) Label() string {
	if c.Parameter < 0 {
		return c.Name
	}
	return c.Name + " " + strconv.Itoa(c.Parameter)
}

// SectionName derives the config section name for one controller slot from
// the input plugin's name. The convention is the mupen64plus one: the
// "mupen64plus-" prefix is dropped and "-controlN" appended.
func SectionName(pluginName string, controllerNumber int) string {
	return strings.TrimPrefix(pluginName, "mupen64plus-") + "-control" + strconv.Itoa(controllerNumber)
}
