// Package workspace manages the named workspaces views live on.
// Advertising workspace state to clients is out of scope; this is the
// compositor-internal model only.
package workspace

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/quoinwm/quoin/internal/seat"
	"github.com/quoinwm/quoin/internal/view"
)

// Workspace is one named workspace.
type Workspace struct {
	Name string
}

// Manager owns the workspace list and the current/last pointers.
type Manager struct {
	seat   *seat.Seat
	logger *slog.Logger

	all     []*Workspace
	current *Workspace
	last    *Workspace
}

// NewManager creates the configured workspaces, making the first one
// current.
func NewManager(names []string, s *seat.Seat, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{seat: s, logger: logger}
	for _, name := range names {
		m.all = append(m.all, &Workspace{Name: name})
	}
	if len(m.all) > 0 {
		m.current = m.all[0]
	}
	return m
}

// All returns the workspaces in configured order.
func (m *Manager) All() []*Workspace {
	return m.all
}

// Current returns the active workspace.
func (m *Manager) Current() *Workspace {
	return m.current
}

// Last returns the previously active workspace, or nil.
func (m *Manager) Last() *Workspace {
	return m.last
}

// parseWorkspaceIndex parses a 1-based workspace index. Only positive
// numbers spanning the whole string count:
//
//	"2nd desktop" -> 0
//	"-50"         -> 0
//	"0"           -> 0
//	"124"         -> 124
//	"1.24"        -> 0
func parseWorkspaceIndex(name string) int {
	index, err := strconv.Atoi(name)
	if err != nil || index < 0 {
		return 0
	}
	return index
}

// Find resolves a workspace by reference: a 1-based index, "current",
// "last", "left"/"right" relative to anchor (wrapping if wrap is set),
// or a case-insensitive name. Returns nil and logs when nothing
// matches.
func (m *Manager) Find(anchor *Workspace, name string, wrap bool) *Workspace {
	if anchor == nil || name == "" {
		return nil
	}
	if wantsIndex := parseWorkspaceIndex(name); wantsIndex > 0 {
		if wantsIndex <= len(m.all) {
			return m.all[wantsIndex-1]
		}
	} else if strings.EqualFold(name, "current") {
		return anchor
	} else if strings.EqualFold(name, "last") {
		return m.last
	} else if strings.EqualFold(name, "left") {
		return m.relative(anchor, -1, wrap)
	} else if strings.EqualFold(name, "right") {
		return m.relative(anchor, +1, wrap)
	} else {
		for _, ws := range m.all {
			if strings.EqualFold(ws.Name, name) {
				return ws
			}
		}
	}
	m.logger.Error("workspace not found", "name", name)
	return nil
}

func (m *Manager) relative(anchor *Workspace, dir int, wrap bool) *Workspace {
	idx := -1
	for i, ws := range m.all {
		if ws == anchor {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	target := idx + dir
	if target < 0 || target >= len(m.all) {
		if !wrap {
			return nil
		}
		target = (target + len(m.all)) % len(m.all)
	}
	return m.all[target]
}

// SwitchTo activates target. Omnipresent views follow along; with
// updateFocus set, focus moves to the topmost view of the new workspace
// unless an omnipresent view already holds it. updateFocus is false
// only when switching as a side effect of focusing a view, to avoid
// focus recursion.
func (m *Manager) SwitchTo(target *Workspace, updateFocus bool) {
	if target == nil || target == m.current {
		return
	}

	for _, v := range m.seat.Views().Stack() {
		if v.Omnipresent && v.Workspace == m.current.Name {
			v.Workspace = target.Name
		}
	}

	m.last = m.current
	m.current = target

	if updateFocus {
		focused := m.seat.FocusedView()
		if focused == nil || !focused.Omnipresent {
			m.FocusTopmost()
		}
	}
}

// FocusTopmost focuses the topmost focusable view on the current
// workspace, or clears focus when the workspace is empty.
func (m *Manager) FocusTopmost() {
	for _, v := range m.seat.Views().Stack() {
		if v.Focusable && !v.Minimized &&
			(v.Omnipresent || v.Workspace == m.current.Name) {
			m.seat.Focus(v)
			return
		}
	}
	m.seat.Focus(nil)
}

// MoveView assigns v to target.
func (m *Manager) MoveView(v *view.View, target *Workspace) {
	if v == nil || target == nil {
		return
	}
	v.Workspace = target.Name
}

// Reconfigure reconciles the workspace list with a new set of names:
// existing workspaces are renamed in place, extra names are appended,
// and surplus workspaces are destroyed with their views moved to the
// first workspace.
func (m *Manager) Reconfigure(names []string) {
	for i, name := range names {
		if i < len(m.all) {
			if m.all[i].Name != name {
				m.logger.Debug("renaming workspace",
					"from", m.all[i].Name, "to", name)
				m.renameViews(m.all[i].Name, name)
				m.all[i].Name = name
			}
			continue
		}
		m.logger.Debug("adding workspace", "name", name)
		m.all = append(m.all, &Workspace{Name: name})
	}

	if len(m.all) <= len(names) {
		return
	}

	m.seat.HideOverlay()
	first := m.all[0]
	for _, ws := range m.all[len(names):] {
		m.logger.Debug("destroying workspace", "name", ws.Name)
		for _, v := range m.seat.Views().Stack() {
			if v.Workspace == ws.Name {
				m.MoveView(v, first)
			}
		}
		if m.current == ws {
			m.SwitchTo(first, true)
		}
		if m.last == ws {
			m.last = first
		}
	}
	m.all = m.all[:len(names)]
}

func (m *Manager) renameViews(from, to string) {
	for _, v := range m.seat.Views().Stack() {
		if v.Workspace == from {
			v.Workspace = to
		}
	}
}
