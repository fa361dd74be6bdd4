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

// Package bindings persists the mapping of physical controller inputs to
// logical N64 controller inputs. The mapping lives in the plugin
// configuration file, which is ini shaped in the manner of the mupen64plus
// config: one section per controller slot, one key per logical input, and a
// keyspec list as the value.
package bindings

import (
	"fmt"

	"github.com/jetsetilly/gopher64/plugin"
	"gopkg.in/ini.v1"
)

// ConfigFile is the name of the plugin configuration file, relative to the
// resources base path.
const ConfigFile = "gopher64.cfg"

// Store is the ini backed implementation of plugin.ConfigStore.
type Store struct {
	path string
	file *ini.File
}

// Load the configuration store at path. A missing file is not an error, it
// is an empty store that will be created on the first Save().
func Load(path string) (*Store, error) {
	f, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("bindings: %w", err)
	}

	return &Store{
		path: path,
		file: f,
	}, nil
}

// OpenSection implements the plugin.ConfigStore interface. The section is
// created if it does not yet exist.
func (s *Store) OpenSection(name string) (plugin.ConfigSection, error) {
	if name == "" {
		return nil, fmt.Errorf("bindings: section name is empty")
	}

	sec, err := s.file.GetSection(name)
	if err != nil {
		sec, err = s.file.NewSection(name)
		if err != nil {
			return nil, fmt.Errorf("bindings: %w", err)
		}
	}

	return &Section{store: s, sec: sec}, nil
}

// Save implements the plugin.ConfigStore interface.
func (s *Store) Save() error {
	err := s.file.SaveTo(s.path)
	if err != nil {
		return fmt.Errorf("bindings: %w", err)
	}
	return nil
}

// Section is one named section of the Store. Implements the
// plugin.ConfigSection interface.
type Section struct {
	store *Store
	sec   *ini.Section
}

// GetString implements the plugin.ConfigSection interface.
func (s *Section) GetString(key string) string {
	return s.sec.Key(key).String()
}

// SetString implements the plugin.ConfigSection interface.
func (s *Section) SetString(key string, value string) {
	s.sec.Key(key).SetValue(value)
}

// SetInt implements the plugin.ConfigSection interface.
func (s *Section) SetInt(key string, value int) {
	s.sec.Key(key).SetValue(fmt.Sprintf("%d", value))
}

// Save implements the plugin.ConfigSection interface. The ini format has no
// per-section save so the whole store is written.
func (s *Section) Save() error {
	return s.store.Save()
}
