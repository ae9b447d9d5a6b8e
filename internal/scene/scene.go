// Package scene provides the minimal node hierarchy decorations hang off.
//
// It is not a renderer. Nodes carry just enough structure for hit testing:
// a parent link, an enabled flag and a marker for nodes that wrap client
// surface content. Nodes are value-addressed through stable NodeIDs into
// an arena, so lookups never depend on pointer identity and a registry can
// safely outlive reallocation of the backing store.
package scene

// NodeID is a stable index of a node within its Tree's arena.
type NodeID int

// NoNode is the sentinel for "no node here".
const NoNode NodeID = -1

type node struct {
	parent  NodeID
	surface bool
	enabled bool
}

// Tree is an arena of nodes forming a single hierarchy.
type Tree struct {
	nodes []node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// NewNode allocates a node under parent (NoNode for a root) and returns
// its ID. Nodes start enabled.
func (t *Tree) NewNode(parent NodeID) NodeID {
	t.nodes = append(t.nodes, node{parent: parent, enabled: true})
	return NodeID(len(t.nodes) - 1)
}

// NewSurfaceNode allocates a node marked as wrapping client surface
// content. Hit tests on such nodes always resolve to the client region.
func (t *Tree) NewSurfaceNode(parent NodeID) NodeID {
	id := t.NewNode(parent)
	t.nodes[id].surface = true
	return id
}

// Valid reports whether id refers to a node in this tree.
func (t *Tree) Valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Parent returns the parent of id, or NoNode for roots and invalid IDs.
func (t *Tree) Parent(id NodeID) NodeID {
	if !t.Valid(id) {
		return NoNode
	}
	return t.nodes[id].parent
}

// Ancestor returns the n-th ancestor of id (1 = parent, 2 = grandparent),
// or NoNode if the walk runs off the top of the hierarchy.
func (t *Tree) Ancestor(id NodeID, n int) NodeID {
	for ; n > 0 && id != NoNode; n-- {
		id = t.Parent(id)
	}
	return id
}

// HasSurface reports whether id wraps client surface content.
func (t *Tree) HasSurface(id NodeID) bool {
	return t.Valid(id) && t.nodes[id].surface
}

// SetEnabled toggles node visibility. Disabled sub-trees are still part
// of the hierarchy; visibility is a presentation concern.
func (t *Tree) SetEnabled(id NodeID, enabled bool) {
	if t.Valid(id) {
		t.nodes[id].enabled = enabled
	}
}

// Enabled reports the visibility flag of id.
func (t *Tree) Enabled(id NodeID) bool {
	return t.Valid(id) && t.nodes[id].enabled
}
