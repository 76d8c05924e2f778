//go:build js && wasm

package main

import (
	"github.com/hubastard/stimgrove/engine/core"
	"github.com/hubastard/stimgrove/engine/platform/web"
)

// platformBackends draws on a page canvas.
func platformBackends() (func(core.Config) (core.Window, error), func(core.Window, core.Config) (core.Renderer, error), func()) {
	var win *web.Window
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := web.NewWindow(cfg)
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	}
	release := func() {
		if win != nil {
			win.Release()
		}
	}
	return newWindow, web.RendererFactory, release
}
