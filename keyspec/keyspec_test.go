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

package keyspec_test

import (
	"testing"

	"github.com/jetsetilly/gopher64/keyspec"
	"github.com/jetsetilly/gopher64/test"
)

func TestRoundTrip(t *testing.T) {
	// a representative list of every type, including a multi-slot axis and an
	// unbound slot
	keys := []keyspec.KeySpec{
		{Type: keyspec.TypeButton, Values: []keyspec.Value{{Number: 3}}},
		{Type: keyspec.TypeAxis, Values: []keyspec.Value{
			{Number: 2, Sign: keyspec.SignPlus},
			{Number: 2, Sign: keyspec.SignMinus},
		}},
		{Type: keyspec.TypeHat, Values: []keyspec.Value{{Number: 0, Direction: keyspec.DirUp}}},
		{Type: keyspec.TypeKey, Values: []keyspec.Value{{Number: 97}}},
		{Type: keyspec.TypeButton, Values: []keyspec.Value{keyspec.Unset(), {Number: 5}}},
	}

	s := keyspec.Join(keys)
	test.ExpectEquality(t, s, "BUTTON 3 AXIS 2 + 2 - HAT 0 UP KEY 97 BUTTON -1 5")

	parsed := keyspec.Parse(s)
	test.DemandEquality(t, len(parsed), len(keys))
	for i := range keys {
		test.ExpectEquality(t, parsed[i].Type, keys[i].Type)
		test.DemandEquality(t, len(parsed[i].Values), len(keys[i].Values))
		for j := range keys[i].Values {
			test.ExpectEquality(t, parsed[i].Values[j], keys[i].Values[j])
		}
	}

	// the re-serialised form is identical
	test.ExpectEquality(t, keyspec.Join(parsed), s)
}

func TestPartialParse(t *testing.T) {
	// a malformed remainder truncates the parse. the valid prefix is kept
	keys := keyspec.Parse("BUTTON 3 GARBAGE")
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0].Type, keyspec.TypeButton)
	test.DemandEquality(t, len(keys[0].Values), 1)
	test.ExpectEquality(t, keys[0].Values[0].Number, 3)

	// an axis value without a sign is malformed
	keys = keyspec.Parse("BUTTON 7 AXIS 1")
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0].Type, keyspec.TypeButton)

	// as is an axis value with an unrecognised sign
	keys = keyspec.Parse("AXIS 1 plus")
	test.ExpectEquality(t, len(keys), 0)

	// a hat value with a diagonal direction never appears in a valid
	// configuration and is rejected
	keys = keyspec.Parse("HAT 0 UPLEFT")
	test.ExpectEquality(t, len(keys), 0)

	// empty and garbage-only strings yield nothing
	test.ExpectEquality(t, len(keyspec.Parse("")), 0)
	test.ExpectEquality(t, len(keyspec.Parse("mouse(0)")), 0)
}

func TestParseAlternatives(t *testing.T) {
	// two space-separated KeySpecs for the same input. the slot boundary is
	// found because a type tag is not a number
	keys := keyspec.Parse("AXIS 1 + AXIS 1 -")
	test.DemandEquality(t, len(keys), 2)
	test.ExpectEquality(t, keys[0].Type, keyspec.TypeAxis)
	test.ExpectEquality(t, keys[1].Type, keyspec.TypeAxis)
	test.DemandEquality(t, len(keys[0].Values), 1)
	test.DemandEquality(t, len(keys[1].Values), 1)
	test.ExpectEquality(t, keys[0].Values[0], keyspec.Value{Number: 1, Sign: keyspec.SignPlus})
	test.ExpectEquality(t, keys[1].Values[0], keyspec.Value{Number: 1, Sign: keyspec.SignMinus})

	// order is preserved on re-serialisation
	test.ExpectEquality(t, keyspec.Join(keys), "AXIS 1 + AXIS 1 -")
}

func TestMergeWholeBinding(t *testing.T) {
	key := keyspec.KeySpec{Type: keyspec.TypeButton, Values: []keyspec.Value{{Number: 5}}}

	keys := keyspec.Merge(nil, key, -1)
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0].Type, keyspec.TypeButton)
	test.DemandEquality(t, len(keys[0].Values), 1)
	test.ExpectEquality(t, keys[0].Values[0].Number, 5)

	// a whole-binding capture replaces any existing list, whatever its type
	old := keyspec.Parse("AXIS 1 + AXIS 1 -")
	keys = keyspec.Merge(old, key, -1)
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0].Type, keyspec.TypeButton)
}

func TestMergeFreshMultiSlot(t *testing.T) {
	// capturing one half of an axis with no existing binding fills the
	// companion slot with the inverted sign
	key := keyspec.KeySpec{Type: keyspec.TypeAxis, Values: []keyspec.Value{{Number: 2, Sign: keyspec.SignPlus}}}

	keys := keyspec.Merge(nil, key, 0)
	test.DemandEquality(t, len(keys), 1)
	test.DemandEquality(t, len(keys[0].Values), 2)
	test.ExpectEquality(t, keys[0].Values[0], keyspec.Value{Number: 2, Sign: keyspec.SignPlus})
	test.ExpectEquality(t, keys[0].Values[1], keyspec.Value{Number: 2, Sign: keyspec.SignMinus})

	// the same for the other slot
	keys = keyspec.Merge(nil, key, 1)
	test.DemandEquality(t, len(keys), 1)
	test.DemandEquality(t, len(keys[0].Values), 2)
	test.ExpectEquality(t, keys[0].Values[0], keyspec.Value{Number: 2, Sign: keyspec.SignMinus})
	test.ExpectEquality(t, keys[0].Values[1], keyspec.Value{Number: 2, Sign: keyspec.SignPlus})

	// hats use the opposing cardinal as the companion
	hat := keyspec.KeySpec{Type: keyspec.TypeHat, Values: []keyspec.Value{{Number: 0, Direction: keyspec.DirLeft}}}
	keys = keyspec.Merge(nil, hat, 0)
	test.DemandEquality(t, len(keys), 1)
	test.DemandEquality(t, len(keys[0].Values), 2)
	test.ExpectEquality(t, keys[0].Values[0], keyspec.Value{Number: 0, Direction: keyspec.DirLeft})
	test.ExpectEquality(t, keys[0].Values[1], keyspec.Value{Number: 0, Direction: keyspec.DirRight})

	// buttons and keys have no companion. the other slot is left unbound
	btn := keyspec.KeySpec{Type: keyspec.TypeButton, Values: []keyspec.Value{{Number: 4}}}
	keys = keyspec.Merge(nil, btn, 0)
	test.DemandEquality(t, len(keys), 1)
	test.DemandEquality(t, len(keys[0].Values), 2)
	test.ExpectEquality(t, keys[0].Values[0].Number, 4)
	test.ExpectEquality(t, keys[0].Values[1].Unbound(), true)
}

func TestMergeTypeChangePreservesSlotCount(t *testing.T) {
	// an existing binding with three slots keeps its slot count when the
	// capture starts a fresh KeySpec of a different type
	old := []keyspec.KeySpec{
		{Type: keyspec.TypeButton, Values: []keyspec.Value{{Number: 1}, {Number: 2}, {Number: 3}}},
	}
	key := keyspec.KeySpec{Type: keyspec.TypeAxis, Values: []keyspec.Value{{Number: 0, Sign: keyspec.SignMinus}}}

	keys := keyspec.Merge(old, key, 0)
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0].Type, keyspec.TypeAxis)
	test.DemandEquality(t, len(keys[0].Values), 3)
	test.ExpectEquality(t, keys[0].Values[0], keyspec.Value{Number: 0, Sign: keyspec.SignMinus})
	test.ExpectEquality(t, keys[0].Values[1], keyspec.Value{Number: 0, Sign: keyspec.SignPlus})
	test.ExpectEquality(t, keys[0].Values[2], keyspec.Value{Number: 0, Sign: keyspec.SignPlus})
}

func TestMergePatchExisting(t *testing.T) {
	old := keyspec.Parse("AXIS 2 + 2 -")
	test.DemandEquality(t, len(old), 1)

	key := keyspec.KeySpec{Type: keyspec.TypeAxis, Values: []keyspec.Value{{Number: 7, Sign: keyspec.SignPlus}}}

	// only the requested slot changes
	keys := keyspec.Merge(old, key, 0)
	test.DemandEquality(t, len(keys), 1)
	test.DemandEquality(t, len(keys[0].Values), 2)
	test.ExpectEquality(t, keys[0].Values[0], keyspec.Value{Number: 7, Sign: keyspec.SignPlus})
	test.ExpectEquality(t, keys[0].Values[1], keyspec.Value{Number: 2, Sign: keyspec.SignMinus})

	// the caller's list is untouched
	test.ExpectEquality(t, old[0].Values[0], keyspec.Value{Number: 2, Sign: keyspec.SignPlus})

	// a parameter beyond the current slot count grows the value list, with
	// intervening slots left unbound
	keys = keyspec.Merge(old, key, 3)
	test.DemandEquality(t, len(keys), 1)
	test.DemandEquality(t, len(keys[0].Values), 4)
	test.ExpectEquality(t, keys[0].Values[2].Unbound(), true)
	test.ExpectEquality(t, keys[0].Values[3], keyspec.Value{Number: 7, Sign: keyspec.SignPlus})
}
