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

// Package sdlimgui is the SDL2 and Dear Imgui implementation of the input
// configuration dialog. The caller must run all functions of this package in
// the same goroutine and that goroutine must be locked to the main OS thread.
package sdlimgui

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/jetsetilly/gopher64/bindings"
	"github.com/jetsetilly/gopher64/capture"
	"github.com/jetsetilly/gopher64/joystick"
	"github.com/jetsetilly/gopher64/logger"
)

// SdlImgui is the top level type of the GUI. There can be only one instance
// at a time.
type SdlImgui struct {
	// the mechanical requirements of the GUI
	context *imgui.Context
	io      imgui.IO
	plt     *platform
	glsl    *glsl
	polling *polling

	// the input configuration dialog
	win *winInput

	// the active capture session, if any. shared by the service loop and the
	// dialog but always from the same goroutine
	session capture.Session

	// controller bindings being edited. one per controller slot. a nil
	// entry is a slot whose config section could not be opened
	store       *bindings.Store
	controllers [4]*bindings.Controller

	// the gui is to terminate. done is closed at the same moment so that
	// other goroutines can wait for the dialog to finish
	quitting bool
	done     chan struct{}
}

// NewSdlImgui creates the GUI and opens the window. The bindings for all four
// controller slots of the named input plugin are opened for editing.
func NewSdlImgui(store *bindings.Store, pluginName string) (*SdlImgui, error) {
	img := &SdlImgui{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		store:   store,
		done:    make(chan struct{}),
	}

	img.controllers = openControllers(store, pluginName)

	var err error

	img.plt, err = newPlatform(img)
	if err != nil {
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	img.glsl, err = newGlsl(img)
	if err != nil {
		return nil, fmt.Errorf("sdlimgui: %w", err)
	}

	// joystick subsystem failure leaves keyboard capture working
	err = joystick.Init()
	if err != nil {
		logger.Logf("sdlimgui", "%v", err)
	}

	img.polling = newPolling(img)
	img.win = newWinInput(img)

	return img, nil
}

// openControllers opens the config section of each controller slot. A slot
// whose section cannot be opened is left nil: the dialog presents it as
// unavailable and the other slots remain editable.
func openControllers(store *bindings.Store, pluginName string) [4]*bindings.Controller {
	var controllers [4]*bindings.Controller
	for i := range controllers {
		c, err := bindings.NewController(store, pluginName, i+1)
		if err != nil {
			logger.Logf("sdlimgui", "%v", err)
			continue
		}
		controllers[i] = c
	}
	return controllers
}

// Destroy the GUI and all resources held by it. Unsaved binding edits are
// lost.
func (img *SdlImgui) Destroy() {
	img.session.Cancel()
	joystick.Quit()
	img.glsl.destroy()
	img.plt.destroy()
	img.context.Destroy()
}

// Done returns a channel that is closed once the user has asked for the
// dialog to close, either through the window manager or with the OK or
// Cancel buttons. Safe to wait on from any goroutine.
func (img *SdlImgui) Done() <-chan struct{} {
	return img.done
}

func (img *SdlImgui) quit() {
	if !img.quitting {
		img.quitting = true
		close(img.done)
	}
}
