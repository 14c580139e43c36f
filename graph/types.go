package graph

import (
	"iter"

	"github.com/pomviz/pomviz/coords"
)

// Artifact is a node in the dependency graph: one coordinate plus its
// outgoing ("depends on") and incoming ("required by") edge sets.
//
// Artifacts are created and owned exclusively by a Registry. An
// artifact may exist with no outgoing edges if it was first seen as a
// dependency target of some other descriptor.
type Artifact struct {
	// Coords uniquely identifies this artifact. Set at construction,
	// never changes.
	Coords coords.Coordinates

	dependsOn  map[coords.Coordinates]*Artifact
	requiredBy map[coords.Coordinates]*Artifact

	// depOrder remembers dependency insertion order so that rendering
	// an unchanged registry is deterministic.
	depOrder []coords.Coordinates
}

func newArtifact(c coords.Coordinates) *Artifact {
	return &Artifact{
		Coords:     c,
		dependsOn:  make(map[coords.Coordinates]*Artifact),
		requiredBy: make(map[coords.Coordinates]*Artifact),
	}
}

// DependsOn returns the direct dependencies of this artifact in
// insertion order. The sequence is restartable.
func (a *Artifact) DependsOn() iter.Seq[*Artifact] {
	return func(yield func(*Artifact) bool) {
		for _, c := range a.depOrder {
			if !yield(a.dependsOn[c]) {
				return
			}
		}
	}
}

// RequiredBy returns the artifacts that directly depend on this one.
// Order is unspecified.
func (a *Artifact) RequiredBy() iter.Seq[*Artifact] {
	return func(yield func(*Artifact) bool) {
		for _, dep := range a.requiredBy {
			if !yield(dep) {
				return
			}
		}
	}
}

// HasDependency reports whether c is a direct dependency of this
// artifact.
func (a *Artifact) HasDependency(c coords.Coordinates) bool {
	_, ok := a.dependsOn[c]
	return ok
}

// IsRequiredBy reports whether the artifact registered under c directly
// depends on this one.
func (a *Artifact) IsRequiredBy(c coords.Coordinates) bool {
	_, ok := a.requiredBy[c]
	return ok
}

// NumDependencies returns the number of direct dependencies.
func (a *Artifact) NumDependencies() int { return len(a.dependsOn) }

// NumDependents returns the number of artifacts depending on this one.
func (a *Artifact) NumDependents() int { return len(a.requiredBy) }

// DependsOnCoordinates reports whether this artifact directly or
// transitively depends on the given group/artifact id pair. An artifact
// counts as depending on its own coordinates.
func (a *Artifact) DependsOnCoordinates(groupID, artifactID string) bool {
	visited := make(map[coords.Coordinates]bool)
	stack := []*Artifact{a}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur.Coords] {
			continue
		}
		visited[cur.Coords] = true
		if cur.Coords.Matches(groupID, artifactID) {
			return true
		}
		for _, c := range cur.depOrder {
			stack = append(stack, cur.dependsOn[c])
		}
	}
	return false
}

// String returns the coordinate string form.
func (a *Artifact) String() string {
	return a.Coords.String()
}
