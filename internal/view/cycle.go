package view

// Criteria filters which views the window switcher considers.
type Criteria uint32

const (
	// CriteriaCurrentWorkspace restricts cycling to views on the
	// current workspace.
	CriteriaCurrentWorkspace Criteria = 1 << iota
	// CriteriaNoSkipSwitcher excludes views that opted out of the
	// switcher.
	CriteriaNoSkipSwitcher
	// CriteriaNoMinimized excludes minimized views.
	CriteriaNoMinimized
)

// Matches reports whether v satisfies the criteria relative to the
// given current workspace name.
func (c Criteria) Matches(v *View, currentWorkspace string) bool {
	if v == nil || !v.Focusable {
		return false
	}
	if c&CriteriaCurrentWorkspace != 0 &&
		!v.Omnipresent && v.Workspace != currentWorkspace {
		return false
	}
	if c&CriteriaNoSkipSwitcher != 0 && v.SkipSwitcher {
		return false
	}
	if c&CriteriaNoMinimized != 0 && v.Minimized {
		return false
	}
	return true
}

// Next returns the first view after start (in stacking order, wrapping
// past the end) that matches the criteria. With start == nil iteration
// begins at the top of the stack. Returns nil when nothing matches.
func (r *Registry) Next(start *View, c Criteria, currentWorkspace string) *View {
	return r.cycle(start, c, currentWorkspace, +1)
}

// Prev is Next in the opposite direction.
func (r *Registry) Prev(start *View, c Criteria, currentWorkspace string) *View {
	return r.cycle(start, c, currentWorkspace, -1)
}

func (r *Registry) cycle(start *View, c Criteria, currentWorkspace string, dir int) *View {
	n := len(r.stack)
	if n == 0 {
		return nil
	}

	// With no start view the walk begins just outside the stack so the
	// first candidate is the topmost (forward) or bottommost (backward)
	// view.
	from := -1
	if dir < 0 {
		from = 0
	}
	if start != nil {
		for i, v := range r.stack {
			if v == start {
				from = i
				break
			}
		}
	}

	// Walk the full ring once so a lone matching view is still found
	// even when it is the start view itself.
	idx := from
	for range n {
		idx += dir
		idx = (idx%n + n) % n
		if c.Matches(r.stack[idx], currentWorkspace) {
			return r.stack[idx]
		}
	}
	return nil
}
