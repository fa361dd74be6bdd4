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

package bindings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher64/bindings"
	"github.com/jetsetilly/gopher64/keyspec"
	"github.com/jetsetilly/gopher64/test"
)

const inputPlugin = "mupen64plus-input-sdl"

func TestSectionName(t *testing.T) {
	test.ExpectEquality(t, bindings.SectionName(inputPlugin, 1), "input-sdl-control1")
	test.ExpectEquality(t, bindings.SectionName(inputPlugin, 4), "input-sdl-control4")

	// a plugin without the conventional prefix is used as is
	test.ExpectEquality(t, bindings.SectionName("myplugin", 2), "myplugin-control2")
}

func TestMissingFileIsEmptyStore(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "gopher64.cfg")

	store, err := bindings.Load(pth)
	test.DemandSuccess(t, err)

	c, err := bindings.NewController(store, inputPlugin, 1)
	test.DemandSuccess(t, err)

	// nothing is bound
	for _, ctrl := range bindings.N64Controls {
		test.ExpectEquality(t, c.Display(ctrl.Name, ctrl.Parameter), "")
	}
}

func TestLoadPersisted(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "gopher64.cfg")

	err := os.WriteFile(pth, []byte(`[input-sdl-control1]
X Axis = AXIS 1 + AXIS 1 -
A Button = BUTTON 3
Start = KEY 13
DPad U = HAT 0 UP
`), 0600)
	test.DemandSuccess(t, err)

	store, err := bindings.Load(pth)
	test.DemandSuccess(t, err)

	c, err := bindings.NewController(store, inputPlugin, 1)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, c.Display("A Button", -1), "BUTTON 3")
	test.ExpectEquality(t, c.Display("Start", -1), "KEY 13")
	test.ExpectEquality(t, c.Display("DPad U", -1), "HAT 0 UP")
	test.ExpectEquality(t, c.Display("B Button", -1), "")

	// the X Axis value is two single-slot alternatives. slot projection of a
	// keyspec without the requested slot displays as unbound, with nothing
	// worse happening
	test.ExpectEquality(t, c.Display("X Axis", -1), "AXIS 1 + AXIS 1 -")
	test.ExpectEquality(t, c.Display("X Axis", 1), "")
}

func TestProjection(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "gopher64.cfg")

	err := os.WriteFile(pth, []byte(`[input-sdl-control1]
X Axis = AXIS 2 + 2 -
Y Axis = AXIS 3 + -1
`), 0600)
	test.DemandSuccess(t, err)

	store, err := bindings.Load(pth)
	test.DemandSuccess(t, err)

	c, err := bindings.NewController(store, inputPlugin, 1)
	test.DemandSuccess(t, err)

	// a two-slot axis projects one slot per control
	test.ExpectEquality(t, c.Display("X Axis", 0), "AXIS 2 +")
	test.ExpectEquality(t, c.Display("X Axis", 1), "AXIS 2 -")

	// an unbound slot projects as unbound even though the keyspec is present
	test.ExpectEquality(t, c.Display("Y Axis", 0), "AXIS 3 +")
	test.ExpectEquality(t, c.Display("Y Axis", 1), "")
}

func TestApplyAndSave(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "gopher64.cfg")

	store, err := bindings.Load(pth)
	test.DemandSuccess(t, err)

	c, err := bindings.NewController(store, inputPlugin, 1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Changed, false)

	c.Apply("A Button", keyspec.KeySpec{
		Type:   keyspec.TypeButton,
		Values: []keyspec.Value{{Number: 5}},
	}, -1)
	test.ExpectEquality(t, c.Changed, true)

	c.Apply("X Axis", keyspec.KeySpec{
		Type:   keyspec.TypeAxis,
		Values: []keyspec.Value{{Number: 0, Sign: keyspec.SignMinus}},
	}, 0)

	err = c.Save()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.Changed, false)

	// reload from disk and check the round trip
	store2, err := bindings.Load(pth)
	test.DemandSuccess(t, err)

	c2, err := bindings.NewController(store2, inputPlugin, 1)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, c2.Display("A Button", -1), "BUTTON 5")
	test.ExpectEquality(t, c2.Display("X Axis", 0), "AXIS 0 -")
	test.ExpectEquality(t, c2.Display("X Axis", 1), "AXIS 0 +")
	test.ExpectEquality(t, c2.Section.GetString("mode"), "0")
}

func TestControllersAreIndependent(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "gopher64.cfg")

	store, err := bindings.Load(pth)
	test.DemandSuccess(t, err)

	var controllers [4]*bindings.Controller
	for i := 0; i < 4; i++ {
		controllers[i], err = bindings.NewController(store, inputPlugin, i+1)
		test.DemandSuccess(t, err)
	}

	controllers[2].Apply("Z Trig", keyspec.KeySpec{
		Type:   keyspec.TypeButton,
		Values: []keyspec.Value{{Number: 9}},
	}, -1)

	test.ExpectEquality(t, controllers[2].Changed, true)
	test.ExpectEquality(t, controllers[0].Changed, false)
	test.ExpectEquality(t, controllers[0].Display("Z Trig", -1), "")
	test.ExpectEquality(t, controllers[2].Display("Z Trig", -1), "BUTTON 9")
}
