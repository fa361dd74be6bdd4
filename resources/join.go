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

// Package resources contains functions to prepare paths for gopher64
// resources, such as the plugin configuration file.
package resources

import (
	"os"
	"path/filepath"
)

// the base path for all resources. if a directory of this name exists in the
// current working directory then that directory is used (a "portable"
// installation), otherwise the user's config directory is used.
const baseResourcePath = ".gopher64"

// JoinPath prepends the supplied path with an OS specific base path.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	b := baseResourcePath

	// the unadorned baseResourcePath in the current directory takes precedence
	// over the user's config directory
	if _, err := os.Stat(b); err != nil {
		home, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		b = filepath.Join(home, baseResourcePath[1:])
	}

	p := filepath.Join(b, filepath.Join(path...))

	// check if path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	// create path if necessary
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
