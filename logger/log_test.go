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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}

	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// reset the builder before continuing, makes comparisons easier to manage
	w.Reset()

	logger.Log("test2", "this is another test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	logger.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	logger.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestFirstEntry(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}

	// the very first entry must be stored even when it equals the zero
	// value of Entry
	logger.Log("", "")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), ": \n")

	w.Reset()
	logger.Log("", "")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), ":  (repeat x2)\n")
}

func TestRepeatCollapse(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}

	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: same detail (repeat x3)\n")

	// a different tag with the same detail is a new entry
	w.Reset()
	logger.Log("other", "same detail")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: same detail (repeat x3)\nother: same detail\n")
}
