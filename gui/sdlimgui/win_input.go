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
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher64/bindings"
	"github.com/jetsetilly/gopher64/joystick"
	"github.com/jetsetilly/gopher64/logger"
)

const winInputID = "Input Configuration"

// label on a binding button for an unbound control.
const selectLabel = "Select..."

// label on a binding button while its capture session is listening.
const listeningLabel = "Listening..."

// width of every binding button. wide enough for the longest keyspec we
// expect to display.
const bindingButtonWidth = 180

// winInput is the input configuration dialog. One controller slot is shown
// at a time, selected with a combo. Edits accumulate in the bindings
// controllers and reach the disk only through the OK button.
type winInput struct {
	img *SdlImgui

	// the controller slot being edited (0 to 3)
	controllerIdx int

	// the joystick device index used for the next capture session
	deviceIdx int

	// the device opened for the active capture session. owned by the
	// session, which closes it when the session ends. nil when the session
	// is keyboard only or not active
	device *joystick.Device
}

func newWinInput(img *SdlImgui) *winInput {
	return &winInput{img: img}
}

// the controller currently being edited.
func (win *winInput) controller() *bindings.Controller {
	return win.img.controllers[win.controllerIdx]
}

func (win *winInput) draw() {
	displaySize := win.img.plt.displaySize()

	imgui.SetNextWindowPos(imgui.Vec2{X: 0, Y: 0})
	imgui.SetNextWindowSize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	imgui.BeginV(winInputID, nil,
		imgui.WindowFlagsNoCollapse|imgui.WindowFlagsNoMove|
			imgui.WindowFlagsNoResize|imgui.WindowFlagsNoTitleBar)
	defer imgui.End()

	win.drawControllerSelect()
	win.drawDeviceSelect()

	imgui.Spacing()
	imgui.Separator()
	imgui.Spacing()

	win.drawBindings()

	imgui.Spacing()
	imgui.Separator()
	imgui.Spacing()

	win.drawButtons()
}

func (win *winInput) drawControllerSelect() {
	preview := fmt.Sprintf("Controller %d", win.controllerIdx+1)
	if imgui.BeginCombo("##controller", preview) {
		for i := range win.img.controllers {
			label := fmt.Sprintf("Controller %d", i+1)
			if imgui.SelectableV(label, i == win.controllerIdx, 0, imgui.Vec2{}) {
				if i != win.controllerIdx {
					// a capture session for the previous controller must not
					// commit to the new one
					win.img.session.Cancel()
					win.device = nil
					win.controllerIdx = i
				}
			}
		}
		imgui.EndCombo()
	}
}

func (win *winInput) drawDeviceSelect() {
	num := joystick.NumDevices()
	if num == 0 {
		imgui.Text("No joystick attached. Keyboard capture only.")
		win.deviceIdx = 0
		return
	}
	if win.deviceIdx >= num {
		win.deviceIdx = 0
	}

	preview := fmt.Sprintf("%d: %s", win.deviceIdx, sdl.JoystickNameForIndex(win.deviceIdx))
	if imgui.BeginCombo("##device", preview) {
		for i := 0; i < num; i++ {
			label := fmt.Sprintf("%d: %s", i, sdl.JoystickNameForIndex(i))
			if imgui.SelectableV(label, i == win.deviceIdx, 0, imgui.Vec2{}) {
				win.deviceIdx = i
			}
		}
		imgui.EndCombo()
	}
}

// bindingLabel is the text shown on a binding button. A listening control
// says so, an unbound control invites selection, anything else shows the
// projected binding.
func bindingLabel(display string, listening bool) string {
	if listening {
		return listeningLabel
	}
	if display == "" {
		return selectLabel
	}
	return display
}

func (win *winInput) drawBindings() {
	// two controls per row
	const columns = 2

	if win.controller() == nil {
		imgui.Text("This controller slot is unavailable.")
		return
	}

	sessionName, sessionParameter := win.img.session.Target()

	for i, ctrl := range bindings.N64Controls {
		if i%columns != 0 {
			imgui.SameLineV(float32(bindingButtonWidth+220), 0)
		}

		imgui.PushID(fmt.Sprintf("binding%d", i))

		imgui.AlignTextToFramePadding()
		imgui.Text(ctrl.Label())
		imgui.SameLineV(140+float32(i%columns)*(bindingButtonWidth+220), 0)

		listening := win.img.session.Active() &&
			sessionName == ctrl.Name && sessionParameter == ctrl.Parameter
		label := bindingLabel(win.controller().Display(ctrl.Name, ctrl.Parameter), listening)

		if imgui.ButtonV(fmt.Sprintf("%s##select", label), imgui.Vec2{X: bindingButtonWidth, Y: 0}) {
			win.startCapture(ctrl)
		}

		imgui.PopID()
	}
}

// startCapture begins a capture session for the given control. Joystick
// events queued before this moment must not commit the capture so the queue
// is flushed first.
func (win *winInput) startCapture(ctrl bindings.Control) {
	joystick.Flush()

	win.device = nil
	if joystick.NumDevices() > 0 {
		dev, err := joystick.Open(win.deviceIdx)
		if err != nil {
			logger.Logf("sdlimgui", "%v", err)
		} else {
			win.device = dev
		}
	}

	if win.device != nil {
		win.img.session.Start(ctrl.Name, ctrl.Parameter, win.device)
	} else {
		win.img.session.Start(ctrl.Name, ctrl.Parameter, nil)
	}

	win.img.polling.alert()
}

// saveControllers writes every controller slot back to the config store. A
// save failure is reported through the log but never prevents the dialog
// from closing.
func saveControllers(controllers [4]*bindings.Controller) {
	for _, c := range controllers {
		if c == nil {
			continue
		}
		if err := c.Save(); err != nil {
			logger.Logf("sdlimgui", "%v", err)
		}
	}
}

func (win *winInput) drawButtons() {
	if imgui.Button("OK") {
		win.img.session.Cancel()
		win.device = nil
		saveControllers(win.img.controllers)
		win.img.quit()
	}

	imgui.SameLine()

	if imgui.Button("Cancel") {
		win.img.session.Cancel()
		win.device = nil
		win.img.quit()
	}
}
