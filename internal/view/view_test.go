package view

import (
	"testing"

	"github.com/quoinwm/quoin/internal/geom"
)

func TestEffectiveHeight(t *testing.T) {
	v := &View{Geometry: geom.Rect{Width: 100, Height: 200}}
	if got := v.EffectiveHeight(); got != 200 {
		t.Fatalf("EffectiveHeight() = %d, want 200", got)
	}
	v.RenderedHeight = 50 // mid-shade
	if got := v.EffectiveHeight(); got != 50 {
		t.Fatalf("EffectiveHeight() = %d, want 50", got)
	}
}

func TestIsFloating(t *testing.T) {
	tests := []struct {
		name string
		v    *View
		want bool
	}{
		{"nil", nil, false},
		{"plain", &View{}, true},
		{"maximized", &View{Maximized: true}, false},
		{"fullscreen", &View{Fullscreen: true}, false},
		{"tiled", &View{Tiled: EdgeLeft}, false},
	}
	for _, tt := range tests {
		if got := tt.v.IsFloating(); got != tt.want {
			t.Errorf("%s: IsFloating() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRegistryStackOrder(t *testing.T) {
	r := NewRegistry()
	a := r.Add(&View{Title: "a"})
	b := r.Add(&View{Title: "b"})
	c := r.Add(&View{Title: "c"})

	stack := r.Stack()
	if len(stack) != 3 || stack[0] != c || stack[1] != b || stack[2] != a {
		t.Fatalf("stack order wrong: %v", stack)
	}

	r.Raise(a)
	if r.Stack()[0] != a {
		t.Fatal("Raise did not move the view to the top")
	}

	if a.ID == 0 || a.ID == b.ID {
		t.Fatalf("bad ID assignment: a=%d b=%d", a.ID, b.ID)
	}
	if r.Get(b.ID) != b {
		t.Fatal("Get(b.ID) != b")
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	a := r.Add(&View{Title: "a"})
	b := r.Add(&View{Title: "b"})

	r.Remove(a)
	if r.Len() != 1 || r.Get(a.ID) != nil {
		t.Fatal("Remove left the view behind")
	}
	r.Remove(a) // removing twice is a no-op
	r.Remove(nil)
	if r.Len() != 1 || r.Get(b.ID) != b {
		t.Fatal("no-op removes disturbed the registry")
	}
}

type recordingWatcher struct {
	destroyed []*View
}

func (w *recordingWatcher) ViewDestroyed(v *View) {
	w.destroyed = append(w.destroyed, v)
}

func TestRegistryWatchers(t *testing.T) {
	r := NewRegistry()
	w := &recordingWatcher{}
	r.Watch(w)
	r.Watch(w) // double subscribe collapses to one

	a := r.Add(&View{Title: "a"})
	r.Remove(a)
	if len(w.destroyed) != 1 || w.destroyed[0] != a {
		t.Fatalf("watcher saw %v, want [a]", w.destroyed)
	}

	r.Unwatch(w)
	b := r.Add(&View{Title: "b"})
	r.Remove(b)
	if len(w.destroyed) != 1 {
		t.Fatal("watcher notified after Unwatch")
	}
}

func TestHandleLiveness(t *testing.T) {
	r := NewRegistry()
	v := r.Add(&View{Title: "a"})
	h := r.HandleFor(v)

	if h.Zero() {
		t.Fatal("handle for a live view is zero")
	}
	if h.Resolve() != v {
		t.Fatal("Resolve() != v")
	}
	if !h.Refers(v) {
		t.Fatal("Refers(v) = false")
	}

	r.Remove(v)
	if h.Resolve() != nil {
		t.Fatal("Resolve() returned a destroyed view")
	}
	// Refers still identifies the dead view, for cancellation paths.
	if !h.Refers(v) {
		t.Fatal("Refers(v) = false after destroy")
	}

	var zero Handle
	if !zero.Zero() || zero.Resolve() != nil || zero.Refers(v) {
		t.Fatal("zero handle misbehaves")
	}
	if !r.HandleFor(nil).Zero() {
		t.Fatal("HandleFor(nil) is not zero")
	}
}

func TestCriteriaMatches(t *testing.T) {
	c := CriteriaCurrentWorkspace | CriteriaNoSkipSwitcher | CriteriaNoMinimized

	tests := []struct {
		name string
		v    *View
		want bool
	}{
		{"nil", nil, false},
		{"unfocusable", &View{Workspace: "1"}, false},
		{"match", &View{Focusable: true, Workspace: "1"}, true},
		{"other workspace", &View{Focusable: true, Workspace: "2"}, false},
		{"omnipresent elsewhere", &View{Focusable: true, Omnipresent: true, Workspace: "2"}, true},
		{"skip switcher", &View{Focusable: true, Workspace: "1", SkipSwitcher: true}, false},
		{"minimized", &View{Focusable: true, Workspace: "1", Minimized: true}, false},
	}
	for _, tt := range tests {
		if got := c.Matches(tt.v, "1"); got != tt.want {
			t.Errorf("%s: Matches = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCycleNextPrev(t *testing.T) {
	r := NewRegistry()
	a := r.Add(&View{Title: "a", Focusable: true, Workspace: "1"})
	b := r.Add(&View{Title: "b", Focusable: true, Workspace: "1"})
	c := r.Add(&View{Title: "c", Focusable: true, Workspace: "1"})
	// Stack: c, b, a.

	var crit Criteria

	if got := r.Next(nil, crit, "1"); got != c {
		t.Fatalf("Next(nil) = %v, want c", got)
	}
	if got := r.Prev(nil, crit, "1"); got != a {
		t.Fatalf("Prev(nil) = %v, want a", got)
	}
	if got := r.Next(c, crit, "1"); got != b {
		t.Fatalf("Next(c) = %v, want b", got)
	}
	if got := r.Next(a, crit, "1"); got != c {
		t.Fatalf("Next(a) = %v, want c (wrap)", got)
	}
	if got := r.Prev(c, crit, "1"); got != a {
		t.Fatalf("Prev(c) = %v, want a (wrap)", got)
	}
}

func TestCycleLoneView(t *testing.T) {
	r := NewRegistry()
	a := r.Add(&View{Title: "a", Focusable: true, Workspace: "1"})

	// The full-ring walk finds the start view itself again.
	if got := r.Next(a, 0, "1"); got != a {
		t.Fatalf("Next(a) = %v, want a", got)
	}
}

func TestCycleEmptyAndNoMatch(t *testing.T) {
	r := NewRegistry()
	if got := r.Next(nil, 0, "1"); got != nil {
		t.Fatalf("Next on empty registry = %v", got)
	}

	v := r.Add(&View{Title: "a", Workspace: "1"}) // not focusable
	if got := r.Next(nil, 0, "1"); got != nil {
		t.Fatalf("Next with no match = %v", got)
	}
	_ = v
}
