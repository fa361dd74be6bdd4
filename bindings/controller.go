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
	"fmt"

	"github.com/jetsetilly/gopher64/keyspec"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/plugin"
)

// Binding is the keyspec list persisted for one logical input.
type Binding struct {
	Name string
	Keys []keyspec.KeySpec
}

// Controller owns the bindings for one of the four controller slots. Edits
// accumulate in memory and reach the config store only on Save().
type Controller struct {
	Number  int
	Section plugin.ConfigSection

	// whether there are unsaved edits
	Changed bool

	// bindings are loaded from the section on first use. one entry per
	// unique config key in N64Controls, in order
	bindings []Binding
	loaded   bool
}

// NewController opens the config section for controller slot number (1 to 4)
// of the named input plugin.
func NewController(store plugin.ConfigStore, pluginName string, number int) (*Controller, error) {
	sec, err := store.OpenSection(SectionName(pluginName, number))
	if err != nil {
		return nil, fmt.Errorf("controller %d: %w", number, err)
	}

	return &Controller{
		Number:  number,
		Section: sec,
	}, nil
}

// load bindings from the config section. the parse is tolerant, a malformed
// value simply yields fewer keyspecs.
func (c *Controller) load() {
	if c.loaded {
		return
	}

	for _, ctrl := range N64Controls {
		// parameterised controls share a config key. only load it once
		if ctrl.Parameter > 0 {
			continue
		}
		c.bindings = append(c.bindings, Binding{
			Name: ctrl.Name,
			Keys: keyspec.Parse(c.Section.GetString(ctrl.Name)),
		})
	}

	c.loaded = true
}

// Bindings returns the current binding list, loading it from the config
// section if necessary.
func (c *Controller) Bindings() []Binding {
	c.load()
	return c.bindings
}

// Apply a captured keyspec to the named input, merging it into the existing
// binding according to the parameter slot. Marks the controller as changed.
func (c *Controller) Apply(name string, key keyspec.KeySpec, parameter int) {
	c.load()

	for i := range c.bindings {
		if c.bindings[i].Name == name {
			c.bindings[i].Keys = keyspec.Merge(c.bindings[i].Keys, key, parameter)
			c.Changed = true
			return
		}
	}

	logger.Logf("bindings", "apply to unknown input %s", name)
}

// Display returns the text to show for a control. The empty string means
// the control is unbound.
//
// For a parameterised control only the requested slot of each keyspec is
// shown. A keyspec without that slot is a configuration format error: a
// warning is logged and the control displays as unbound.
func (c *Controller) Display(name string, parameter int) string {
	c.load()

	var keys []keyspec.KeySpec
	for i := range c.bindings {
		if c.bindings[i].Name == name {
			keys = c.bindings[i].Keys
			break
		}
	}

	if parameter < 0 {
		return keyspec.Join(keys)
	}

	sliced := make([]keyspec.KeySpec, 0, len(keys))
	for _, k := range keys {
		if parameter >= len(k.Values) {
			logger.Logf("bindings", "parameter %d not found in '%s'", parameter, k.String())
			return ""
		}
		if k.Values[parameter].Unbound() {
			return ""
		}
		sliced = append(sliced, keyspec.KeySpec{
			Type:   k.Type,
			Values: []keyspec.Value{k.Values[parameter]},
		})
	}

	return keyspec.Join(sliced)
}

// Save writes the controller's bindings back to the config store. The
// binding values are only rewritten when there are unsaved edits but the
// section itself is always saved, which creates missing sections on first
// run.
func (c *Controller) Save() error {
	if c.Changed {
		// mode 0 tells the input plugin to take the bindings as they are
		// rather than autoconfiguring
		c.Section.SetInt("mode", 0)

		for _, b := range c.bindings {
			c.Section.SetString(b.Name, keyspec.Join(b.Keys))
		}
	}

	err := c.Section.Save()
	if err != nil {
		return fmt.Errorf("controller %d: %w", c.Number, err)
	}

	c.Changed = false

	return nil
}
