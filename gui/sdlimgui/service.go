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
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher64/joystick"
)

// Service the GUI for one frame. To be called in a tight loop from the
// goroutine that created the SdlImgui.
func (img *SdlImgui) Service() {
	// poll for sdl event or timeout
	ev := img.polling.wait()

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit()

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(string(ev.Text[:]))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseButtonEvent:
			if ev.Type == sdl.MOUSEBUTTONDOWN {
				switch ev.Button {
				case sdl.BUTTON_LEFT:
					img.plt.buttonsDown[0] = true
				case sdl.BUTTON_RIGHT:
					img.plt.buttonsDown[1] = true
				case sdl.BUTTON_MIDDLE:
					img.plt.buttonsDown[2] = true
				}
			}

			// trigger service wake in time for the next Service() iteration.
			// without this the result of the mouse click is not seen until
			// the polling timeout has elapsed
			img.polling.alert()

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(deltaX, deltaY)

		default:
			// joystick events are queued on the capture session. events from
			// devices other than the session's device are discarded
			if img.session.Active() && img.win.device != nil {
				if cev, ok := joystick.Translate(ev, img.win.device.InstanceID()); ok {
					img.session.Push(cev)
					img.polling.alert()
				}
			}
		}
	}

	// evaluate queued capture events. the target must be read before Tick()
	// because a commit ends the session
	if img.session.Active() {
		name, parameter := img.session.Target()
		if key, ok := img.session.Tick(); ok {
			img.win.controller().Apply(name, key, parameter)
			img.win.device = nil
		}
	}

	img.renderFrame()
}

func (img *SdlImgui) renderFrame() {
	img.plt.newFrame()
	imgui.NewFrame()

	img.win.draw()

	// this call only creates the draw data list. actual rendering to the
	// framebuffer is done below
	imgui.Render()

	img.glsl.preRender()
	img.glsl.render()
	img.plt.postRender()
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat == 1 {
		return
	}

	if ev.Type == sdl.KEYDOWN {
		// any key press during a capture session binds the key, Escape
		// included. the keyspec records the SDL keycode, not the scancode,
		// matching what the input plugin expects
		if img.session.Active() {
			name, parameter := img.session.Target()
			if key, ok := img.session.Key(int(ev.Keysym.Sym)); ok {
				img.win.controller().Apply(name, key, parameter)
				img.win.device = nil
			}
			return
		}

		// with no session ESC closes the dialog without saving
		if ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
			img.quit()
			return
		}
	}

	// remaining keypresses forwarded to the imgui io system
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	}
}
