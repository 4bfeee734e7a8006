package layout

import (
	"fmt"
	"strings"
)

type axisNode struct {
	layout *CalculatedLayout
	axis   Axis
}

const (
	unvisited uint8 = iota
	visiting
	visited
)

// detectCycles walks the sibling links of every writable layout per axis and
// fails on the first cycle. Parent links cannot form cycles because the
// parent is sized before its children are positioned.
func (p *pass) detectCycles() error {
	state := make(map[axisNode]uint8)
	var stack []axisNode

	var visit func(n axisNode) error
	visit = func(n axisNode) error {
		switch state[n] {
		case visited:
			return nil
		case visiting:
			return cycleError(stack, n)
		}
		state[n] = visiting
		stack = append(stack, n)

		lead, trail := axisEdges(n.axis)
		for _, e := range [...]Edge{lead, trail} {
			l := n.layout.own[e]
			if l == nil || l.anchor == n.layout.parent {
				continue
			}
			if err := visit(axisNode{layout: l.anchor, axis: n.axis}); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		state[n] = visited
		return nil
	}

	for _, c := range p.writable {
		for _, axis := range [...]Axis{Horizontal, Vertical} {
			if err := visit(axisNode{layout: c, axis: axis}); err != nil {
				return err
			}
		}
	}
	return nil
}

func cycleError(stack []axisNode, n axisNode) error {
	start := 0
	for i, s := range stack {
		if s == n {
			start = i
			break
		}
	}
	names := make([]string, 0, len(stack)-start+1)
	for _, s := range stack[start:] {
		names = append(names, boxLabel(s.layout.box))
	}
	names = append(names, boxLabel(n.layout.box))
	return fmt.Errorf("%w on %s axis: %s", ErrConstraintCycle, n.axis, strings.Join(names, " -> "))
}
