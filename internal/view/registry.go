package view

// DestroyWatcher is notified when a view is removed from the registry.
// Components that cache view references (grab state, switcher) subscribe
// exactly once and are unsubscribed when they shut down.
type DestroyWatcher interface {
	ViewDestroyed(v *View)
}

// Registry tracks live views in stacking order, topmost first.
type Registry struct {
	stack    []*View
	byID     map[ID]*View
	watchers []DestroyWatcher
	nextID   ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[ID]*View),
		nextID: 1,
	}
}

// Add inserts v at the top of the stack, assigning it an ID if it has
// none, and returns it.
func (r *Registry) Add(v *View) *View {
	if v.ID == 0 {
		v.ID = r.nextID
		r.nextID++
	}
	r.stack = append([]*View{v}, r.stack...)
	r.byID[v.ID] = v
	return v
}

// Remove drops v from the registry and notifies destroy watchers.
// Removing an unknown view is a no-op.
func (r *Registry) Remove(v *View) {
	if v == nil || r.byID[v.ID] != v {
		return
	}
	delete(r.byID, v.ID)
	for i, sv := range r.stack {
		if sv == v {
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
			break
		}
	}
	for _, w := range r.watchers {
		w.ViewDestroyed(v)
	}
}

// Raise moves v to the top of the stack.
func (r *Registry) Raise(v *View) {
	for i, sv := range r.stack {
		if sv == v {
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
			r.stack = append([]*View{v}, r.stack...)
			return
		}
	}
}

// Get returns the live view with the given ID, or nil.
func (r *Registry) Get(id ID) *View {
	return r.byID[id]
}

// Stack returns the views in stacking order, topmost first. The returned
// slice is shared; callers must not mutate it.
func (r *Registry) Stack() []*View {
	return r.stack
}

// Len returns the number of live views.
func (r *Registry) Len() int {
	return len(r.stack)
}

// Watch subscribes w to destroy notifications. Subscribing the same
// watcher twice is a no-op.
func (r *Registry) Watch(w DestroyWatcher) {
	for _, existing := range r.watchers {
		if existing == w {
			return
		}
	}
	r.watchers = append(r.watchers, w)
}

// Unwatch removes a previously subscribed watcher.
func (r *Registry) Unwatch(w DestroyWatcher) {
	for i, existing := range r.watchers {
		if existing == w {
			r.watchers = append(r.watchers[:i], r.watchers[i+1:]...)
			return
		}
	}
}

// Handle is a weak reference to a view. It resolves through the registry
// with a liveness check, so holders never touch a destroyed view.
type Handle struct {
	reg *Registry
	id  ID
}

// HandleFor returns a weak handle to v.
func (r *Registry) HandleFor(v *View) Handle {
	if v == nil {
		return Handle{}
	}
	return Handle{reg: r, id: v.ID}
}

// Resolve returns the referenced view if it is still alive, else nil.
func (h Handle) Resolve() *View {
	if h.reg == nil || h.id == 0 {
		return nil
	}
	return h.reg.Get(h.id)
}

// Refers reports whether the handle points at v (alive or not).
func (h Handle) Refers(v *View) bool {
	return v != nil && h.id == v.ID && h.id != 0
}

// Zero reports whether the handle references nothing.
func (h Handle) Zero() bool {
	return h.id == 0
}
