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

// Package plugin defines the boundary between the front-end and the plugins
// that do the actual emulation work. The host plugin interface is an opaque
// capability: the front-end starts a plugin up, hands it the configuration
// store, and shuts it down. It never reaches inside.
//
// Native plugins are dynamically loaded by the core and are outside the scope
// of this program. The builtin plugins registered with this package stand
// behind the same interface so the rest of the front-end does not care about
// the difference.
package plugin

// Type classifies a plugin by the system it provides.
type Type int

// List of valid Type values.
const (
	TypeInput Type = iota
	TypeVideo
	TypeAudio
	TypeRSP
)

func (t Type) String() string {
	switch t {
	case TypeInput:
		return "input"
	case TypeVideo:
		return "video"
	case TypeAudio:
		return "audio"
	case TypeRSP:
		return "rsp"
	}
	return "unknown"
}

// ConfigSection is one named section of the configuration store. Keys are
// read and written as they appear in the persisted file.
type ConfigSection interface {
	// GetString returns the raw persisted value. An absent key returns the
	// empty string.
	GetString(key string) string

	SetString(key string, value string)
	SetInt(key string, value int)

	// Save the section to persistent storage.
	Save() error
}

// ConfigStore is the configuration store shared by the front-end and its
// plugins. It mirrors the config contract of the core's plugin interface.
type ConfigStore interface {
	OpenSection(name string) (ConfigSection, error)
	Save() error
}

// Plugin is the lifecycle every plugin presents to the front-end.
type Plugin interface {
	Name() string
	PluginType() Type

	// Startup is called once, before any other use of the plugin. The plugin
	// reads whatever it needs from the configuration store.
	Startup(cfg ConfigStore) error

	// Shutdown releases the plugin's resources. The plugin must not be used
	// after Shutdown.
	Shutdown() error
}
