package graph

import (
	"errors"
	"fmt"
	"iter"

	"github.com/pomviz/pomviz/coords"
)

// ErrNotRegistered indicates an edge endpoint that was never passed
// through GetOrCreate. AddDependency refuses to create dangling edges.
var ErrNotRegistered = errors.New("artifact not registered")

// Registry is the exclusive owner and lookup table for every Artifact
// in one graph instance. All node and edge mutation goes through it, so
// the dependsOn/requiredBy maps stay mutual inverses and removal never
// leaves a dangling edge.
type Registry struct {
	artifacts map[coords.Coordinates]*Artifact
	order     []coords.Coordinates

	// generation increments on every mutation; cycle detectors use it
	// to invalidate cached results.
	generation uint64
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{artifacts: make(map[coords.Coordinates]*Artifact)}
}

// GetOrCreate returns the artifact registered under c, creating and
// storing a new one on first use. Repeated calls with equal coordinates
// return the same instance.
func (r *Registry) GetOrCreate(c coords.Coordinates) *Artifact {
	if a, ok := r.artifacts[c]; ok {
		return a
	}
	a := newArtifact(c)
	r.artifacts[c] = a
	r.order = append(r.order, c)
	r.generation++
	return a
}

// Get returns the artifact registered under c, or nil if not found.
func (r *Registry) Get(c coords.Coordinates) *Artifact {
	return r.artifacts[c]
}

// Contains reports whether c is registered.
func (r *Registry) Contains(c coords.Coordinates) bool {
	_, ok := r.artifacts[c]
	return ok
}

// Len returns the number of registered artifacts.
func (r *Registry) Len() int {
	return len(r.artifacts)
}

// AddDependency installs the directed edge from -> to, updating both
// artifacts' edge maps in one operation. Both coordinates must already
// be registered via GetOrCreate; otherwise ErrNotRegistered is returned
// rather than silently creating a dangling edge. Duplicate edges are
// no-ops.
func (r *Registry) AddDependency(from, to coords.Coordinates) error {
	src, ok := r.artifacts[from]
	if !ok {
		return fmt.Errorf("add dependency %s -> %s: %s: %w", from, to, from, ErrNotRegistered)
	}
	dst, ok := r.artifacts[to]
	if !ok {
		return fmt.Errorf("add dependency %s -> %s: %s: %w", from, to, to, ErrNotRegistered)
	}
	if _, dup := src.dependsOn[to]; dup {
		return nil
	}
	src.dependsOn[to] = dst
	src.depOrder = append(src.depOrder, to)
	dst.requiredBy[from] = src
	r.generation++
	return nil
}

// All returns a lazy, restartable sequence over all registered
// artifacts in insertion order. Callers may rely on the order for
// stable output numbering, not for correctness.
func (r *Registry) All() iter.Seq[*Artifact] {
	return func(yield func(*Artifact) bool) {
		for _, c := range r.order {
			if !yield(r.artifacts[c]) {
				return
			}
		}
	}
}

// Remove deletes the given artifacts from the registry and strips every
// edge referencing them from the survivors. Afterwards no remaining
// artifact mentions a removed coordinate in either edge map.
func (r *Registry) Remove(toRemove map[coords.Coordinates]struct{}) {
	if len(toRemove) == 0 {
		return
	}
	for c := range toRemove {
		delete(r.artifacts, c)
	}
	kept := r.order[:0]
	for _, c := range r.order {
		if _, gone := toRemove[c]; !gone {
			kept = append(kept, c)
		}
	}
	r.order = kept

	for _, a := range r.artifacts {
		pruned := a.depOrder[:0]
		for _, c := range a.depOrder {
			if _, gone := toRemove[c]; gone {
				delete(a.dependsOn, c)
			} else {
				pruned = append(pruned, c)
			}
		}
		a.depOrder = pruned
		for c := range toRemove {
			delete(a.requiredBy, c)
		}
	}
	r.generation++
}
