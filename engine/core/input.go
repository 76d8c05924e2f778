package core

// dispatch routes a platform event to the input manager and viewport, then
// to the app and the layers.
func (e *Engine) dispatch(app App, ev Event) {
	switch v := ev.(type) {
	case EventKey:
		if v.Down {
			t := v.Time
			if t == 0 {
				t = e.now()
			}
			e.Input.KeyDown(v.Code, v.Key, v.KeyCode, t)
		}
	case EventMouseButton:
		pos := [2]float64{v.X, v.Y}
		if v.Down {
			e.Input.ButtonDown(v.Button, pos)
		} else {
			e.Input.ButtonUp(v.Button, pos)
		}
	case EventMouseMove:
		e.Input.Move([2]float64{v.X, v.Y})
	case EventScroll:
		e.Input.Wheel(v.Xoff, v.Yoff)
	case EventCloseRequested:
		e.Window.RequestClose()
	case EventResize:
		e.Viewport.OnViewportChange()
		e.Frames.FullRefresh()
	}

	app.OnEvent(e, ev)
	e.Layers.ForEachReverse(func(l Layer) bool {
		return l.OnEvent(e, ev)
	})
}
