package sim

import (
	"testing"

	"github.com/vovakirdan/crystal-run/internal/core"
)

func TestWorldDestroyCascades(t *testing.T) {
	w := NewWorld()
	root := w.Create(0)
	child := w.Create(root)
	grandchild := w.Create(child)
	other := w.Create(0)

	if p, ok := w.Parent(grandchild); !ok || p != child {
		t.Errorf("Parent(grandchild) = %v, %v", p, ok)
	}

	w.Destroy(root)
	for _, h := range []Handle{root, child, grandchild} {
		if w.Alive(h) {
			t.Errorf("handle %d survived its ancestor", h)
		}
	}
	if !w.Alive(other) {
		t.Error("unrelated object destroyed")
	}
	if w.Len() != 1 {
		t.Errorf("Len = %d, expected 1", w.Len())
	}
}

func TestWorldStaleHandles(t *testing.T) {
	w := NewWorld()
	h := w.Create(0)
	w.Destroy(h)

	if _, ok := w.Transform(h); ok {
		t.Error("Transform on stale handle reported ok")
	}
	if w.SetTransform(h, core.NewTransform(core.V3(1, 2, 3))) {
		t.Error("SetTransform on stale handle reported ok")
	}
	if w.SetVisible(h, false) {
		t.Error("SetVisible on stale handle reported ok")
	}
	if w.Create(0) == h {
		t.Error("handle reused")
	}
	w.Destroy(h) // no-op
}

func TestWorldChildDetachesFromParent(t *testing.T) {
	w := NewWorld()
	root := w.Create(0)
	a := w.Create(root)
	b := w.Create(root)
	w.Destroy(a)

	kids := w.Children(root)
	if len(kids) != 1 || kids[0] != b {
		t.Errorf("Children = %v, expected [%d]", kids, b)
	}
}

func TestWorldTransformRoundTrip(t *testing.T) {
	w := NewWorld()
	h := w.Create(0)
	tr, ok := w.Transform(h)
	if !ok || tr.Scale != 1 {
		t.Fatalf("new object transform = %+v, %v", tr, ok)
	}
	want := core.LookAt(core.V3(1, 0, 0), core.V3(1, 0, 5))
	w.SetTransform(h, want)
	if got, _ := w.Transform(h); got != want {
		t.Errorf("Transform = %+v, expected %+v", got, want)
	}
}

func TestChannelFansOut(t *testing.T) {
	var ch Channel[SpawnEvent]
	a := ch.Subscribe()
	b := ch.Subscribe()
	ch.Emit(SpawnEvent{Seq: 1})
	ch.Emit(SpawnEvent{Seq: 2})

	got := a.Drain()
	if len(got) != 2 || got[0].Seq != 1 || got[1].Seq != 2 {
		t.Errorf("a drained %v", got)
	}
	if a.Len() != 0 || a.Drain() != nil {
		t.Error("drain did not empty the queue")
	}
	if b.Len() != 2 {
		t.Errorf("b.Len = %d, expected 2", b.Len())
	}
}
