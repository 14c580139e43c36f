// Package pom is the descriptor source for the graph engine: it finds
// pom.xml files under a directory tree, extracts artifact coordinates
// and declared dependencies from them, and feeds the result into a
// graph.Registry.
//
// A descriptor that cannot yield coordinates (no resolvable groupId, no
// artifactId) is an error for that single file; whether the surrounding
// scan continues is the caller's policy.
package pom
