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

package keyspec

// Merge commits a newly captured KeySpec into an existing KeySpec list and
// returns the resulting list. The key argument always carries exactly one
// Value, the one just captured.
//
// A negative parameter means the capture defines the whole binding: the new
// key replaces the list entirely.
//
// A non-negative parameter means the capture defines one slot of a
// multi-slot binding. If the existing list is empty, or its first entry is of
// a different type to the new key, a fresh KeySpec is started; slots other
// than parameter are filled with the companion of the captured value (the
// opposite axis sign or hat direction) so that rebinding one half of a stick
// does not leave the other half unbound. If the existing first entry is of
// the same type, only the parameter slot is overwritten.
//
// The caller's list is not modified.
func Merge(keys []KeySpec, key KeySpec, parameter int) []KeySpec {
	if parameter < 0 {
		return []KeySpec{key}
	}

	if len(keys) == 0 || keys[0].Type != key.Type {
		n := parameter + 1
		if len(keys) > 0 && len(keys[0].Values) > n {
			n = len(keys[0].Values)
		}

		// because parameter >= 0 we know there must be at least two slots
		if n < 2 {
			n = 2
		}

		var fill Value
		switch key.Type {
		case TypeAxis:
			fill = key.Values[0].InvertedSign()
		case TypeHat:
			fill = key.Values[0].InvertedDirection()
		default:
			fill = Unset()
		}

		k := KeySpec{Type: key.Type, Values: make([]Value, n)}
		for i := range k.Values {
			k.Values[i] = fill
		}
		k.Values[parameter] = key.Values[0]

		return []KeySpec{k}
	}

	// patch the parameter slot of the existing, compatible KeySpec. any
	// alternative KeySpecs beyond the first are dropped, as they are when the
	// whole binding is replaced
	k := KeySpec{Type: keys[0].Type, Values: make([]Value, len(keys[0].Values))}
	copy(k.Values, keys[0].Values)

	for len(k.Values) <= parameter {
		k.Values = append(k.Values, Unset())
	}
	k.Values[parameter] = key.Values[0]

	return []KeySpec{k}
}
