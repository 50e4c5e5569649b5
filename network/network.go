// Package network walks the haunted desert's node network: from each node a
// left or right instruction picks one of two successors, and the
// instruction list repeats forever.
package network

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/gridwalk/grid"
)

var (
	// ErrMalformed indicates the network description cannot be read.
	ErrMalformed = errors.New("network: malformed input")
	// ErrUnknownNode indicates a walk reached a node with no definition.
	ErrUnknownNode = errors.New("network: unknown node")
	// ErrUnreachable indicates the walk cycles without ever reaching an end.
	ErrUnreachable = errors.New("network: end is unreachable")
)

// Network is a parsed instruction list plus node table.
type Network struct {
	Instructions string
	Nodes        map[string][2]string
}

// Parse reads
//
//	LLR
//
//	AAA = (BBB, BBB)
//	BBB = (AAA, ZZZ)
func Parse(text string) (*Network, error) {
	lines := grid.Lines(text)
	if len(lines) < 3 || lines[1] != "" {
		return nil, fmt.Errorf("%w: want instructions, a blank line, then nodes", ErrMalformed)
	}
	n := &Network{Instructions: lines[0], Nodes: make(map[string][2]string, len(lines)-2)}
	if n.Instructions == "" || strings.Trim(n.Instructions, "LR") != "" {
		return nil, fmt.Errorf("%w: instructions %q", ErrMalformed, n.Instructions)
	}
	for i, line := range lines[2:] {
		name, rest, ok := strings.Cut(line, " = ")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, i+3, line)
		}
		rest, ok = strings.CutPrefix(rest, "(")
		if ok {
			rest, ok = strings.CutSuffix(rest, ")")
		}
		left, right, found := strings.Cut(rest, ", ")
		if !ok || !found || name == "" || left == "" || right == "" {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, i+3, line)
		}
		if _, dup := n.Nodes[name]; dup {
			return nil, fmt.Errorf("%w: node %s defined twice", ErrMalformed, name)
		}
		n.Nodes[name] = [2]string{left, right}
	}
	return n, nil
}

type state struct {
	node string
	at   int
}

// Steps follows the instructions from the node named from and returns how
// many steps it takes to land on a node for which isEnd is true. The start
// node itself does not count until the walk returns to it.
// Returns ErrUnknownNode or, when a (node, instruction index) state repeats
// before any end is reached, ErrUnreachable.
func (n *Network) Steps(from string, isEnd func(string) bool) (int, error) {
	seen := make(map[state]struct{})
	cur := from
	for steps := 0; ; steps++ {
		at := steps % len(n.Instructions)
		s := state{cur, at}
		if _, dup := seen[s]; dup {
			return 0, fmt.Errorf("%w: from %s", ErrUnreachable, from)
		}
		seen[s] = struct{}{}

		next, ok := n.Nodes[cur]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownNode, cur)
		}
		if n.Instructions[at] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
		if isEnd(cur) {
			return steps + 1, nil
		}
	}
}

// Starts returns every node whose name ends in A, sorted.
func (n *Network) Starts() []string {
	starts := maps.Keys(n.Nodes)
	starts = slices.DeleteFunc(starts, func(s string) bool { return !strings.HasSuffix(s, "A") })
	slices.Sort(starts)
	return starts
}

// GhostSteps walks every start node at once and returns the step on which
// all of them stand on nodes ending in Z. Each walk is timed separately
// and the per-start counts are combined with LCM, which assumes each walk
// revisits its first end at a fixed period equal to the count.
func (n *Network) GhostSteps() (int, error) {
	starts := n.Starts()
	if len(starts) == 0 {
		return 0, fmt.Errorf("%w: no start nodes", ErrUnreachable)
	}
	periods := make([]int, len(starts))
	for i, s := range starts {
		p, err := n.Steps(s, isGhostEnd)
		if err != nil {
			return 0, err
		}
		periods[i] = p
	}
	return LCM(periods...), nil
}

func isGhostEnd(name string) bool { return strings.HasSuffix(name, "Z") }

// IsEnd reports whether name is the single-walker goal ZZZ.
func IsEnd(name string) bool { return name == "ZZZ" }
