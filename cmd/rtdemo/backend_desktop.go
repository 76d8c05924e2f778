//go:build !js

package main

import (
	"github.com/hubastard/stimgrove/engine/core"
	glbackend "github.com/hubastard/stimgrove/engine/gfx/gl"
	"github.com/hubastard/stimgrove/engine/platform"
)

// platformBackends opens a glfw window with an OpenGL renderer. release
// destroys the window once the run loop has returned.
func platformBackends() (func(core.Config) (core.Window, error), func(core.Window, core.Config) (core.Renderer, error), func()) {
	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg)
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	}
	release := func() {
		if win != nil {
			win.Destroy()
		}
	}
	return newWindow, glbackend.Factory, release
}
