package sim

import "github.com/vovakirdan/crystal-run/internal/core"

// Handle addresses an object in a Registry. The zero Handle is never
// issued and means "no parent".
type Handle uint32

// Registry is the object store the simulation writes into. Every object
// carries a flat transform and a visibility flag; parents exist for
// grouping only and do not compose transforms.
//
// Accessors report ok=false for handles that were never issued or have
// been destroyed.
type Registry interface {
	Create(parent Handle) Handle
	Destroy(h Handle)
	Alive(h Handle) bool
	Parent(h Handle) (Handle, bool)
	Transform(h Handle) (core.Transform, bool)
	SetTransform(h Handle, t core.Transform) bool
	Visible(h Handle) (bool, bool)
	SetVisible(h Handle, visible bool) bool
}

type object struct {
	parent    Handle
	children  []Handle
	transform core.Transform
	visible   bool
}

// World is the in-memory Registry. Handles are never reused, so a stale
// handle stays stale.
type World struct {
	next    Handle
	objects map[Handle]*object
}

var _ Registry = (*World)(nil)

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{objects: make(map[Handle]*object)}
}

// Create adds a visible object at the origin. A parent that is not alive
// is ignored.
func (w *World) Create(parent Handle) Handle {
	w.next++
	h := w.next
	obj := &object{transform: core.NewTransform(core.Vec3{}), visible: true}
	if p, ok := w.objects[parent]; ok {
		obj.parent = parent
		p.children = append(p.children, h)
	}
	w.objects[h] = obj
	return h
}

// Destroy removes h and all of its descendants.
func (w *World) Destroy(h Handle) {
	obj, ok := w.objects[h]
	if !ok {
		return
	}
	for _, c := range obj.children {
		w.Destroy(c)
	}
	if p, ok := w.objects[obj.parent]; ok {
		for i, c := range p.children {
			if c == h {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	delete(w.objects, h)
}

// Alive reports whether h exists.
func (w *World) Alive(h Handle) bool {
	_, ok := w.objects[h]
	return ok
}

// Parent returns the parent of h, 0 for a root object.
func (w *World) Parent(h Handle) (Handle, bool) {
	obj, ok := w.objects[h]
	if !ok {
		return 0, false
	}
	return obj.parent, true
}

// Children returns a copy of the direct children of h.
func (w *World) Children(h Handle) []Handle {
	obj, ok := w.objects[h]
	if !ok {
		return nil
	}
	return append([]Handle(nil), obj.children...)
}

// Transform returns the transform of h.
func (w *World) Transform(h Handle) (core.Transform, bool) {
	obj, ok := w.objects[h]
	if !ok {
		return core.Transform{}, false
	}
	return obj.transform, true
}

// SetTransform replaces the transform of h. It returns false for a stale handle.
func (w *World) SetTransform(h Handle, t core.Transform) bool {
	obj, ok := w.objects[h]
	if !ok {
		return false
	}
	obj.transform = t
	return true
}

// Visible returns the visibility flag of h. The second result is false for a stale handle.
func (w *World) Visible(h Handle) (bool, bool) {
	obj, ok := w.objects[h]
	if !ok {
		return false, false
	}
	return obj.visible, true
}

// SetVisible sets the visibility flag of h. It returns false for a stale handle.
func (w *World) SetVisible(h Handle, visible bool) bool {
	obj, ok := w.objects[h]
	if !ok {
		return false
	}
	obj.visible = visible
	return true
}

// Len returns the number of live objects.
func (w *World) Len() int {
	return len(w.objects)
}
