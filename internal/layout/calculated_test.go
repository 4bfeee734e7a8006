package layout

import "testing"

func TestCalculatedLayout_AssignWidth(t *testing.T) {
	parent := Size{Width: 100, Height: 50}

	type tc struct {
		start       Rect
		pinned      []Edge
		gravity     Gravity
		width       float64
		left, right float64
	}

	tests := map[string]tc{
		"leading pinned": {
			start:  NewRect(10, 0, 5, 0),
			pinned: []Edge{EdgeLeft},
			width:  30,
			left:   10,
			right:  40,
		},
		"trailing pinned": {
			start:  NewRect(10, 0, 50, 0),
			pinned: []Edge{EdgeRight},
			width:  30,
			left:   30,
			right:  60,
		},
		"both pinned": {
			start:  NewRect(10, 0, 50, 0),
			pinned: []Edge{EdgeLeft, EdgeRight},
			width:  30,
			left:   10,
			right:  60,
		},
		"free centered": {
			start:   NewRect(3, 0, 4, 0),
			gravity: NewGravity(CenterHorizontal, Zero, Zero),
			width:   30,
			left:    35,
			right:   65,
		},
		"free mirrored": {
			start:   NewRect(3, 0, 4, 0),
			gravity: NewGravity(GravityRight, Pixels(-10), Zero),
			width:   30,
			left:    60,
			right:   90,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := newWritableLayout(NewNode(name), newScreenLayout(parent))
			c.setRect(tt.start)
			for _, e := range tt.pinned {
				c.own[e] = &dimensionLink{}
			}

			c.AssignWidth(tt.width, tt.gravity, parent)

			if c.Left() != tt.left || c.Right() != tt.right {
				t.Errorf("AssignWidth(%g) = [%g, %g], want [%g, %g]", tt.width, c.Left(), c.Right(), tt.left, tt.right)
			}
		})
	}
}

func TestCalculatedLayout_ChildContainerSize(t *testing.T) {
	n := NewNode("n").SetMargin(EdgeAll(3)).SetPadding(EdgeTRBL(1, 2, 1, 2))
	c := newWritableLayout(n, nil)
	c.setRect(NewRect(0, 0, 20, 10))
	if got, want := c.ChildContainerSize(), (Size{Width: 10, Height: 2}); got != want {
		t.Errorf("ChildContainerSize() = %+v, want %+v", got, want)
	}

	c.setRect(NewRect(0, 0, 4, 4))
	if got := c.ChildContainerSize(); got != (Size{}) {
		t.Errorf("ChildContainerSize() = %+v, want zero for a box smaller than its insets", got)
	}

	screen := newScreenLayout(Size{Width: 640, Height: 480})
	if got := screen.ChildContainerSize(); got != (Size{Width: 640, Height: 480}) {
		t.Errorf("screen ChildContainerSize() = %+v, want the viewport", got)
	}
}

func TestCalculatedLayout_ReadOnlyIgnoresWrites(t *testing.T) {
	n := NewNode("n")
	n.SetGeometry(Geometry{Left: 1, Top: 2, Width: 3, Height: 4})
	c := newMirrorLayout(n, nil)
	c.setEdge(EdgeLeft, 50)
	c.AssignWidth(99, Gravity{}, Size{Width: 100})
	if got := c.Rect(); got != NewRect(1, 2, 3, 4) {
		t.Errorf("Rect() = %+v, want the host geometry", got)
	}
}

func TestDimensionLink_ChangeDoesNotRepeat(t *testing.T) {
	parent := newScreenLayout(Size{Width: 100, Height: 100})
	anchor := newWritableLayout(NewNode("anchor"), parent)
	dep := newWritableLayout(NewNode("dep"), parent)
	l := newDimensionLink(dep, anchor, Constraint{Relation: LeftToRightOf, Offset: Pixels(2)})
	dep.own[EdgeLeft] = l
	anchor.dependents[EdgeRight] = append(anchor.dependents[EdgeRight], l)

	watcher := newWritableLayout(NewNode("watcher"), parent)
	dep.dependents[EdgeLeft] = append(dep.dependents[EdgeLeft], &dimensionLink{
		dependent: watcher,
		anchor:    dep,
		relation:  LeftToLeftOf,
		offset:    Zero,
	})
	watcher.own[EdgeLeft] = dep.dependents[EdgeLeft][0]

	anchor.setEdges(EdgeLeft, 0, EdgeRight, 10)
	if dep.Left() != 12 || watcher.Left() != 12 {
		t.Fatalf("after move dep.Left = %g, watcher.Left = %g, want 12", dep.Left(), watcher.Left())
	}

	watcher.setRect(Rect{})
	anchor.setEdge(EdgeRight, 10)
	if watcher.Left() != 0 {
		t.Error("writing an unchanged edge propagated")
	}
}
