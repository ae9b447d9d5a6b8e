package frame

import "testing"

func allParts() []PartType {
	var parts []PartType
	for t := PartNone; t <= PartAll; t++ {
		parts = append(parts, t)
	}
	return parts
}

func TestContainsReflexive(t *testing.T) {
	for _, p := range allParts() {
		if !Contains(p, p) {
			t.Errorf("Contains(%v, %v) = false, want true", p, p)
		}
	}
}

func TestContainsAll(t *testing.T) {
	for _, p := range allParts() {
		if !Contains(PartAll, p) {
			t.Errorf("Contains(PartAll, %v) = false, want true", p)
		}
	}
}

func TestContainsButton(t *testing.T) {
	buttons := []PartType{
		ButtonClose, ButtonMaximize, ButtonIconify, ButtonWindowMenu,
		ButtonWindowIcon, ButtonShade, ButtonOmnipresent,
	}
	for _, b := range buttons {
		if !Contains(PartButton, b) {
			t.Errorf("Contains(PartButton, %v) = false, want true", b)
		}
	}
	for _, p := range []PartType{PartNone, PartTitlebar, PartTitle, PartTop, PartClient, CornerTopLeft} {
		if Contains(PartButton, p) {
			t.Errorf("Contains(PartButton, %v) = true, want false", p)
		}
	}
}

func TestContainsTitlebar(t *testing.T) {
	// The titlebar aggregate covers every button plus the background
	// and the title text.
	inside := []PartType{
		ButtonClose, ButtonMaximize, ButtonIconify, ButtonWindowMenu,
		ButtonWindowIcon, ButtonShade, ButtonOmnipresent,
		PartTitlebar, PartTitle,
	}
	for _, p := range inside {
		if !Contains(PartTitlebar, p) {
			t.Errorf("Contains(PartTitlebar, %v) = false, want true", p)
		}
	}
	for _, p := range []PartType{PartNone, CornerTopLeft, PartTop, PartClient} {
		if Contains(PartTitlebar, p) {
			t.Errorf("Contains(PartTitlebar, %v) = true, want false", p)
		}
	}
}

func TestContainsTitleIncludesBackground(t *testing.T) {
	// "Title" as a mouse context means the whole draggable strip.
	if !Contains(PartTitle, PartTitlebar) {
		t.Fatal("Contains(PartTitle, PartTitlebar) = false, want true")
	}
	if Contains(PartTitle, ButtonClose) {
		t.Fatal("Contains(PartTitle, ButtonClose) = true, want false")
	}
}

func TestContainsFrame(t *testing.T) {
	for p := ButtonClose; p <= PartClient; p++ {
		if !Contains(PartFrame, p) {
			t.Errorf("Contains(PartFrame, %v) = false, want true", p)
		}
	}
	for _, p := range []PartType{PartNone, PartButton, PartAll} {
		if Contains(PartFrame, p) {
			t.Errorf("Contains(PartFrame, %v) = true, want false", p)
		}
	}
}

func TestContainsEdgeCorners(t *testing.T) {
	tests := []struct {
		edge    PartType
		corners []PartType
		not     []PartType
	}{
		{PartTop, []PartType{CornerTopLeft, CornerTopRight}, []PartType{CornerBottomLeft, CornerBottomRight, PartLeft}},
		{PartRight, []PartType{CornerTopRight, CornerBottomRight}, []PartType{CornerTopLeft, CornerBottomLeft, PartTop}},
		{PartBottom, []PartType{CornerBottomLeft, CornerBottomRight}, []PartType{CornerTopLeft, CornerTopRight}},
		{PartLeft, []PartType{CornerTopLeft, CornerBottomLeft}, []PartType{CornerTopRight, CornerBottomRight}},
	}
	for _, tt := range tests {
		for _, c := range tt.corners {
			if !Contains(tt.edge, c) {
				t.Errorf("Contains(%v, %v) = false, want true", tt.edge, c)
			}
		}
		for _, c := range tt.not {
			if Contains(tt.edge, c) {
				t.Errorf("Contains(%v, %v) = true, want false", tt.edge, c)
			}
		}
	}
}

func TestContainsCornerDoesNotContainEdge(t *testing.T) {
	// Containment between edges and corners is one-directional.
	if Contains(CornerTopLeft, PartTop) {
		t.Fatal("Contains(CornerTopLeft, PartTop) = true, want false")
	}
	if Contains(CornerTopLeft, PartLeft) {
		t.Fatal("Contains(CornerTopLeft, PartLeft) = true, want false")
	}
}

func TestStringUnique(t *testing.T) {
	seen := make(map[string]PartType)
	for _, p := range allParts() {
		s := p.String()
		if s == "unknown" {
			t.Errorf("%d.String() = %q", int(p), s)
		}
		if prev, ok := seen[s]; ok {
			t.Errorf("String collision: %v and %v both %q", prev, p, s)
		}
		seen[s] = p
	}
}

func TestResizeEdges(t *testing.T) {
	tests := []struct {
		part PartType
		want EdgeMask
	}{
		{PartTop, EdgeMaskTop},
		{PartRight, EdgeMaskRight},
		{PartBottom, EdgeMaskBottom},
		{PartLeft, EdgeMaskLeft},
		{CornerTopLeft, EdgeMaskTop | EdgeMaskLeft},
		{CornerTopRight, EdgeMaskTop | EdgeMaskRight},
		{CornerBottomRight, EdgeMaskBottom | EdgeMaskRight},
		{CornerBottomLeft, EdgeMaskBottom | EdgeMaskLeft},
		{PartNone, EdgeNone},
		{PartTitlebar, EdgeNone},
		{PartTitle, EdgeNone},
		{PartClient, EdgeNone},
		{ButtonClose, EdgeNone},
	}
	for _, tt := range tests {
		if got := ResizeEdges(tt.part); got != tt.want {
			t.Errorf("ResizeEdges(%v) = %#x, want %#x", tt.part, got, tt.want)
		}
	}
}

func TestCornerEdgesAreUnionOfAdjacent(t *testing.T) {
	tests := []struct {
		corner PartType
		a, b   PartType
	}{
		{CornerTopLeft, PartTop, PartLeft},
		{CornerTopRight, PartTop, PartRight},
		{CornerBottomRight, PartBottom, PartRight},
		{CornerBottomLeft, PartBottom, PartLeft},
	}
	for _, tt := range tests {
		want := ResizeEdges(tt.a) | ResizeEdges(tt.b)
		if got := ResizeEdges(tt.corner); got != want {
			t.Errorf("ResizeEdges(%v) = %#x, want %v|%v = %#x", tt.corner, got, tt.a, tt.b, want)
		}
	}
}
