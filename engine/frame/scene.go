package frame

import "slices"

// Drawable is a visual element whose attribute changes are recorded when
// made and only applied by the frame loop before a render.
type Drawable interface {
	NeedsUpdate() bool
	MarkNeedsUpdate()
	ApplyPendingUpdate()
}

// Scene is the ordered draw list handed to the renderer. Earlier drawables
// are painted first.
type Scene struct {
	nodes []Drawable
}

// Add appends d to the top of the paint order. Adding a drawable already in
// the scene does nothing.
func (s *Scene) Add(d Drawable) {
	if s.Index(d) >= 0 {
		return
	}
	s.nodes = append(s.nodes, d)
}

// Remove takes d out of the scene.
func (s *Scene) Remove(d Drawable) {
	if i := s.Index(d); i >= 0 {
		s.nodes = slices.Delete(s.nodes, i, i+1)
	}
}

// Index returns the paint position of d, or -1.
func (s *Scene) Index(d Drawable) int {
	for i, n := range s.nodes {
		if n == d {
			return i
		}
	}
	return -1
}

// Len returns the number of drawables in the scene.
func (s *Scene) Len() int { return len(s.nodes) }

// Nodes returns the drawables in paint order. The slice must not be
// modified.
func (s *Scene) Nodes() []Drawable { return s.nodes }

// detach removes the drawable at i and returns it.
func (s *Scene) detach(i int) Drawable {
	d := s.nodes[i]
	s.nodes = slices.Delete(s.nodes, i, i+1)
	return d
}

// attach inserts d at i.
func (s *Scene) attach(i int, d Drawable) {
	s.nodes = slices.Insert(s.nodes, i, d)
}
