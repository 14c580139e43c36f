// Package graph implements the dependency graph engine: the artifact
// registry, shortest-cycle detection, filtering, and DOT serialization.
//
// A Registry owns every Artifact and keeps the forward (depends-on) and
// reverse (required-by) edge maps in sync. A CycleDetector finds one
// shortest cycle through each artifact with a breadth-first search,
// deduplicates cycles by member set, and answers "is this edge on a
// cycle" queries used to highlight the rendered output.
//
// # Building a graph
//
//	reg := graph.NewRegistry()
//	core := reg.GetOrCreate(coords.New("org.example", "core"))
//	util := reg.GetOrCreate(coords.New("org.example", "util"))
//	_ = reg.AddDependency(core.Coords, util.Coords)
//
// # Rendering
//
//	det := graph.NewCycleDetector(reg)
//	_ = graph.WriteDOT(os.Stdout, reg, det)
//
// None of the types in this package are safe for concurrent use: one
// graph instance is built, filtered, analyzed and rendered by a single
// logical thread of control.
package graph
