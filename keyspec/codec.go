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

import (
	"strconv"
	"strings"
)

// The textual form of a KeySpec is the type tag followed by one token group
// per Value. For example:
//
//	BUTTON 3
//	KEY 97
//	AXIS 1 +
//	AXIS 2 + 2 -
//	HAT 0 UP
//
// An unbound Value is written as -1 with no sign or direction token. Multiple
// KeySpecs for the same input are separated by a single space.

func (v Value) text(t Type) string {
	if v.Unbound() {
		return "-1"
	}

	s := strconv.Itoa(v.Number)
	switch t {
	case TypeAxis:
		s += " " + v.Sign.String()
	case TypeHat:
		s += " " + v.Direction.String()
	}
	return s
}

func (k KeySpec) String() string {
	s := strings.Builder{}
	s.WriteString(k.Type.String())
	for _, v := range k.Values {
		s.WriteString(" ")
		s.WriteString(v.text(k.Type))
	}
	return s.String()
}

// Join returns the textual form of a list of KeySpecs, suitable for
// persisting to the plugin configuration.
func Join(keys []KeySpec) string {
	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, k.String())
	}
	return strings.Join(s, " ")
}

// Parse the textual form of a KeySpec list. Parsing is tolerant of malformed
// input: the malformed remainder is discarded and the KeySpecs parsed up to
// that point are returned. Configuration files can be hand edited so this is
// never treated as a fatal error.
func Parse(s string) []KeySpec {
	tok := strings.Fields(s)

	var ret []KeySpec

	i := 0
	for i < len(tok) {
		k, n := parseOne(tok[i:])
		if n == 0 {
			break
		}
		ret = append(ret, k)
		i += n
	}

	return ret
}

// parseOne extracts a single KeySpec from the token stream. It returns the
// number of tokens consumed, zero if no KeySpec could be extracted.
func parseOne(tok []string) (KeySpec, int) {
	var k KeySpec

	switch tok[0] {
	case "BUTTON":
		k.Type = TypeButton
	case "AXIS":
		k.Type = TypeAxis
	case "HAT":
		k.Type = TypeHat
	case "KEY":
		k.Type = TypeKey
	default:
		return KeySpec{}, 0
	}

	i := 1
	for i < len(tok) {
		n, err := strconv.Atoi(tok[i])
		if err != nil {
			// not a value. the next token may be the type tag of the next
			// KeySpec in the list
			break
		}
		i++

		if n < 0 {
			k.Values = append(k.Values, Unset())
			continue
		}

		v := Value{Number: n}

		// axis and hat values require a qualifying token
		switch k.Type {
		case TypeAxis:
			if i >= len(tok) {
				return KeySpec{}, 0
			}
			switch tok[i] {
			case "+":
				v.Sign = SignPlus
			case "-":
				v.Sign = SignMinus
			default:
				return KeySpec{}, 0
			}
			i++
		case TypeHat:
			if i >= len(tok) {
				return KeySpec{}, 0
			}
			switch tok[i] {
			case "UP":
				v.Direction = DirUp
			case "DOWN":
				v.Direction = DirDown
			case "LEFT":
				v.Direction = DirLeft
			case "RIGHT":
				v.Direction = DirRight
			default:
				return KeySpec{}, 0
			}
			i++
		}

		k.Values = append(k.Values, v)
	}

	if len(k.Values) == 0 {
		return KeySpec{}, 0
	}

	return k, i
}
