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

package plugin

import (
	"fmt"
	"sort"
	"sync"
)

// registry of builtin plugins. plugins register themselves from their init()
// functions so access is guarded, although in practice registration is over
// before anything else runs.
var registry = struct {
	sync.Mutex
	plugins map[string]Plugin
}{
	plugins: make(map[string]Plugin),
}

// Register a builtin plugin. Registering two plugins with the same name is a
// programming error.
func Register(p Plugin) {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.plugins[p.Name()]; ok {
		panic(fmt.Sprintf("plugin: %s registered twice", p.Name()))
	}
	registry.plugins[p.Name()] = p
}

// Lookup a builtin plugin by name.
func Lookup(name string) (Plugin, error) {
	registry.Lock()
	defer registry.Unlock()

	p, ok := registry.plugins[name]
	if !ok {
		return nil, fmt.Errorf("plugin: %s is not a builtin plugin", name)
	}
	return p, nil
}

// List the registered builtin plugins, sorted by name.
func List() []Plugin {
	registry.Lock()
	defer registry.Unlock()

	l := make([]Plugin, 0, len(registry.plugins))
	for _, p := range registry.plugins {
		l = append(l, p)
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].Name() < l[j].Name()
	})
	return l
}
