package core

// Layer is one stage of an experiment (instructions, a trial routine, a
// debug overlay). Layers run in push order each frame and receive events
// top first.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnFrame(e *Engine)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

type LayerStack struct{ list []Layer }

// Push attaches l on top of the stack.
func (ls *LayerStack) Push(e *Engine, l Layer) {
	ls.list = append(ls.list, l)
	l.OnAttach(e)
}

// Pop detaches and returns the top layer.
func (ls *LayerStack) Pop(e *Engine) (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	l.OnDetach(e)
	return l, true
}

// Top returns the most recently pushed layer.
func (ls *LayerStack) Top() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	return ls.list[len(ls.list)-1], true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

// ForEach visits layers bottom to top. Layers pushed or popped by f take
// effect from the next call.
func (ls *LayerStack) ForEach(f func(Layer)) {
	list := ls.list
	for _, l := range list {
		f(l)
	}
}

// ForEachReverse visits layers top to bottom until f returns true.
func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	list := ls.list
	for i := len(list) - 1; i >= 0; i-- {
		if stop := f(list[i]); stop {
			break
		}
	}
}
