// Package filter compiles user-supplied boolean expressions into graph
// predicates.
//
// Expressions use expr-lang syntax and see three variables per
// artifact:
//
//	artifact    the artifact under test; fields GroupID and ArtifactID,
//	            method DependsOn(group, artifact) for transitive checks
//	groupId     shorthand for artifact.GroupID
//	artifactId  shorthand for artifact.ArtifactID
//
// Examples:
//
//	groupId == "org.example"
//	artifactId matches "-api$"
//	not artifact.DependsOn("org.example", "legacy-core")
//
// The expression must yield a boolean; anything else is a fatal
// configuration error, reported at compile time where possible and at
// evaluation time otherwise.
package filter

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/pomviz/pomviz/graph"
)

// ArtifactEnv is the view of an artifact exposed to filter expressions.
type ArtifactEnv struct {
	GroupID    string
	ArtifactID string

	artifact *graph.Artifact
}

// DependsOn reports whether the artifact directly or transitively
// depends on the given coordinates. An artifact depends on itself.
func (e ArtifactEnv) DependsOn(groupID, artifactID string) bool {
	if e.artifact == nil {
		return false
	}
	return e.artifact.DependsOnCoordinates(groupID, artifactID)
}

// Compile turns an expression into a predicate. An empty expression
// compiles to the always-true predicate.
func Compile(src string) (graph.Predicate, error) {
	if src == "" {
		return func(*graph.Artifact) (bool, error) { return true, nil }, nil
	}
	program, err := expr.Compile(src, expr.Env(envFor(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression %q: %w", src, err)
	}
	return func(a *graph.Artifact) (bool, error) {
		out, err := expr.Run(program, envFor(a))
		if err != nil {
			return false, fmt.Errorf("filter expression %q: %w", src, err)
		}
		keep, ok := out.(bool)
		if !ok {
			return false, fmt.Errorf("filter expression %q: yielded %T, want bool", src, out)
		}
		return keep, nil
	}, nil
}

func envFor(a *graph.Artifact) map[string]any {
	env := ArtifactEnv{artifact: a}
	if a != nil {
		env.GroupID = a.Coords.GroupID
		env.ArtifactID = a.Coords.ArtifactID
	}
	return map[string]any{
		"artifact":   env,
		"groupId":    env.GroupID,
		"artifactId": env.ArtifactID,
	}
}
