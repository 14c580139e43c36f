// Package coords provides the two-part identity used to key artifacts
// in a dependency graph.
//
// A Coordinates value pairs a Maven group id with an artifact id
// (e.g. "org.example:core"). Values are immutable and comparable: two
// coordinates are equal iff both parts match, which makes them usable
// directly as map keys.
package coords

import "fmt"

// Coordinates identifies one build artifact by group id and artifact id.
type Coordinates struct {
	GroupID    string
	ArtifactID string
}

// New creates Coordinates from a group id and an artifact id.
// Any two strings are valid; there are no failure modes.
func New(groupID, artifactID string) Coordinates {
	return Coordinates{GroupID: groupID, ArtifactID: artifactID}
}

// Matches reports whether both parts equal the given ids.
func (c Coordinates) Matches(groupID, artifactID string) bool {
	return c.GroupID == groupID && c.ArtifactID == artifactID
}

// String returns the canonical "group:artifact" form, used both for
// debug output and as the display label of a graph node.
func (c Coordinates) String() string {
	return fmt.Sprintf("%s:%s", c.GroupID, c.ArtifactID)
}
