package scene

import "testing"

func TestTreeHierarchy(t *testing.T) {
	tr := NewTree()
	root := tr.NewNode(NoNode)
	child := tr.NewNode(root)
	grandchild := tr.NewNode(child)

	if tr.Parent(root) != NoNode {
		t.Fatal("root has a parent")
	}
	if tr.Parent(grandchild) != child || tr.Parent(child) != root {
		t.Fatal("parent links wrong")
	}

	if tr.Ancestor(grandchild, 1) != child {
		t.Fatal("Ancestor(1) != parent")
	}
	if tr.Ancestor(grandchild, 2) != root {
		t.Fatal("Ancestor(2) != grandparent")
	}
	if tr.Ancestor(grandchild, 3) != NoNode {
		t.Fatal("Ancestor walk off the top != NoNode")
	}
	if tr.Ancestor(grandchild, 10) != NoNode {
		t.Fatal("deep Ancestor walk != NoNode")
	}
}

func TestTreeValidity(t *testing.T) {
	tr := NewTree()
	n := tr.NewNode(NoNode)

	if !tr.Valid(n) {
		t.Fatal("fresh node invalid")
	}
	if tr.Valid(NoNode) || tr.Valid(NodeID(99)) {
		t.Fatal("invalid IDs pass Valid")
	}
	if tr.Parent(NodeID(99)) != NoNode {
		t.Fatal("Parent of invalid ID != NoNode")
	}
}

func TestSurfaceNodes(t *testing.T) {
	tr := NewTree()
	plain := tr.NewNode(NoNode)
	surface := tr.NewSurfaceNode(NoNode)

	if tr.HasSurface(plain) {
		t.Fatal("plain node has surface")
	}
	if !tr.HasSurface(surface) {
		t.Fatal("surface node lost its marker")
	}
	if tr.HasSurface(NoNode) {
		t.Fatal("NoNode has surface")
	}
}

func TestEnabledFlag(t *testing.T) {
	tr := NewTree()
	n := tr.NewNode(NoNode)

	if !tr.Enabled(n) {
		t.Fatal("nodes must start enabled")
	}
	tr.SetEnabled(n, false)
	if tr.Enabled(n) {
		t.Fatal("SetEnabled(false) ignored")
	}
	tr.SetEnabled(NoNode, true) // harmless
	if tr.Enabled(NoNode) {
		t.Fatal("NoNode reports enabled")
	}
}
