package graph

import (
	"slices"
	"strings"

	"github.com/pomviz/pomviz/coords"
)

// Cycle is one closed dependency walk: consecutive artifacts are
// connected by a depends-on edge and the last artifact depends on the
// first. Identity is the member set — the same loop discovered from a
// different starting artifact is the same cycle.
type Cycle struct {
	nodes   []*Artifact
	members map[coords.Coordinates]struct{}
}

func newCycle(nodes []*Artifact) *Cycle {
	c := &Cycle{
		nodes:   nodes,
		members: make(map[coords.Coordinates]struct{}, len(nodes)),
	}
	for _, a := range nodes {
		c.members[a.Coords] = struct{}{}
	}
	return c
}

// Artifacts returns the cycle members in traversal order.
func (c *Cycle) Artifacts() []*Artifact {
	return c.nodes
}

// Len returns the number of artifacts on the cycle.
func (c *Cycle) Len() int {
	return len(c.nodes)
}

// Contains reports whether a is a member of this cycle.
func (c *Cycle) Contains(a *Artifact) bool {
	_, ok := c.members[a.Coords]
	return ok
}

func (c *Cycle) sameMembers(other *Cycle) bool {
	if len(c.members) != len(other.members) {
		return false
	}
	for m := range c.members {
		if _, ok := other.members[m]; !ok {
			return false
		}
	}
	return true
}

// String renders the closed walk, e.g. "org.x:a -> org.x:b -> org.x:a".
func (c *Cycle) String() string {
	if len(c.nodes) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, a := range c.nodes {
		sb.WriteString(a.Coords.String())
		sb.WriteString(" -> ")
	}
	sb.WriteString(c.nodes[0].Coords.String())
	return sb.String()
}

// CycleDetector computes the set of distinct shortest dependency cycles
// for a registry snapshot and answers the edge-membership queries used
// for rendering. Results are cached and recomputed transparently after
// any registry mutation, so queries never run against a stale cycle
// list.
type CycleDetector struct {
	reg        *Registry
	generation uint64
	cycles     []*Cycle
	fresh      bool
}

// NewCycleDetector creates a detector bound to reg.
func NewCycleDetector(reg *Registry) *CycleDetector {
	return &CycleDetector{reg: reg}
}

// Cycles returns one shortest cycle per artifact that lies on any
// cycle, deduplicated by member set. The result is empty (never nil)
// for an acyclic graph: absence of cycles is an ordinary success state,
// not an error.
func (d *CycleDetector) Cycles() []*Cycle {
	if !d.fresh || d.generation != d.reg.generation {
		d.scan()
	}
	return d.cycles
}

// HasCycles reports whether the current snapshot contains any cycle.
func (d *CycleDetector) HasCycles() bool {
	return len(d.Cycles()) > 0
}

// IsOnShortestCycle reports whether the directed edge from -> to lies
// on some recorded shortest cycle, i.e. whether any cached cycle
// contains both endpoints.
func (d *CycleDetector) IsOnShortestCycle(from, to *Artifact) bool {
	for _, c := range d.Cycles() {
		if c.Contains(from) && c.Contains(to) {
			return true
		}
	}
	return false
}

// scan runs the per-node search over every artifact, skipping any cycle
// whose member set was already recorded.
func (d *CycleDetector) scan() {
	d.cycles = []*Cycle{}
	for a := range d.reg.All() {
		found := d.ShortestCycleThrough(a)
		if found == nil {
			continue
		}
		dup := false
		for _, known := range d.cycles {
			if known.sameMembers(found) {
				dup = true
				break
			}
		}
		if !dup {
			d.cycles = append(d.cycles, found)
		}
	}
	d.generation = d.reg.generation
	d.fresh = true
}

// ShortestCycleThrough runs a breadth-first search from start over
// depends-on edges and returns the first cycle that closes back to
// start, which BFS guarantees to be a shortest one. Returns nil when
// start lies on no cycle.
//
// The parent links live in a per-search map allocated here, never on
// the artifacts themselves, so independent searches need no reset pass
// over the graph.
func (d *CycleDetector) ShortestCycleThrough(start *Artifact) *Cycle {
	parents := make(map[coords.Coordinates]*Artifact, d.reg.Len())
	visited := make(map[coords.Coordinates]bool, d.reg.Len())

	queue := []*Artifact{start}
	visited[start.Coords] = true

	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		for child := range parent.DependsOn() {
			if child == start {
				// Cycle closed: walk the parent links back to the
				// start, then reverse into forward order.
				var path []*Artifact
				for cur := parent; cur != nil; cur = parents[cur.Coords] {
					path = append(path, cur)
				}
				slices.Reverse(path)
				return newCycle(path)
			}
			if !visited[child.Coords] {
				parents[child.Coords] = parent
				visited[child.Coords] = true
				queue = append(queue, child)
			}
		}
	}
	return nil
}
