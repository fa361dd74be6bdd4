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

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher64/bindings"
	"github.com/jetsetilly/gopher64/gui/sdlimgui"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/modalflag"
	"github.com/jetsetilly/gopher64/plugin"
	"github.com/jetsetilly/gopher64/resources"
	"github.com/jetsetilly/gopher64/statsview"
	"github.com/jetsetilly/gopher64/version"

	// builtin plugins register themselves on import
	_ "github.com/jetsetilly/gopher64/plugin/wavdump"
)

// the input plugin whose bindings are edited unless told otherwise.
const defaultInputPlugin = "mupen64plus-input-sdl"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy()

	// Service() should not pause or loop longer than necessary (if at all).
	// It MUST ONLY be called as part of a larger loop from the main thread.
	// It should service all gui events that are not safe to do in
	// sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two
	// channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with a reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with the reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy()
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy()
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses the mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "KEYS", "PLUGINS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "KEYS":
		err = keys(md)

	case "PLUGINS":
		err = plugins(md)

	case "VERSION":
		fmt.Printf("Gopher64 v%s\n", version.Version)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.Path(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// run opens the input configuration dialog.
func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	pluginName := md.AddString("plugin", defaultInputPlugin, "input plugin whose bindings to edit")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "launch statistics server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		// reports its own unavailability in builds without the statsview
		// constraint
		statsview.Launch(os.Stdout)
	}

	pth, err := resources.JoinPath(bindings.ConfigFile)
	if err != nil {
		return err
	}

	store, err := bindings.Load(pth)
	if err != nil {
		return err
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlimgui.NewSdlImgui(store, *pluginName)
	}

	// wait for creator result
	var scr *sdlimgui.SdlImgui
	select {
	case g := <-sync.creation:
		scr = g.(*sdlimgui.SdlImgui)
	case err := <-sync.creationError:
		return err
	}

	// the dialog saves through its own buttons. nothing to do here except
	// wait for it to finish
	<-scr.Done()

	return nil
}

// keys prints the bindings of one controller slot.
func keys(md *modalflag.Modes) error {
	md.NewMode()

	pluginName := md.AddString("plugin", defaultInputPlugin, "input plugin whose bindings to show")
	control := md.AddInt("control", 1, "controller slot to show (1 to 4)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *control < 1 || *control > 4 {
		return fmt.Errorf("controller slot must be 1 to 4")
	}

	pth, err := resources.JoinPath(bindings.ConfigFile)
	if err != nil {
		return err
	}

	store, err := bindings.Load(pth)
	if err != nil {
		return err
	}

	c, err := bindings.NewController(store, *pluginName, *control)
	if err != nil {
		return err
	}

	for _, ctrl := range bindings.N64Controls {
		display := c.Display(ctrl.Name, ctrl.Parameter)
		if display == "" {
			display = "(unbound)"
		}
		fmt.Printf("%-20s %s\n", ctrl.Label(), display)
	}

	return nil
}

// plugins lists the builtin plugins.
func plugins(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, pl := range plugin.List() {
		fmt.Printf("%-20s %s\n", pl.Name(), pl.PluginType())
	}

	return nil
}
