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

package sdlimgui

import (
	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that the service loop sleeps for at most
// while waiting for an SDL event. the shorter capture period keeps the
// "Select..." feedback and the evaluation of queued capture events prompt.
const (
	capturePeriod = 50
	idlePeriod    = 500
)

type polling struct {
	img *SdlImgui

	// wake preempts the timeout for one iteration. used to communicate
	// between iterations of the service loop. for example, closing a capture
	// session would feel laggy without it
	wake bool
}

func newPolling(img *SdlImgui) *polling {
	return &polling{img: img}
}

// alert forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

// wait for an SDL event or until the timeout period has elapsed.
func (pol *polling) wait() sdl.Event {
	var timeout int

	if pol.wake {
		pol.wake = false
	} else {
		if pol.img.session.Active() {
			timeout = capturePeriod
		} else {
			timeout = idlePeriod
		}
	}

	return sdl.WaitEventTimeout(timeout)
}
