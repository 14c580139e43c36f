// Package pomviz builds Maven dependency graphs from pom.xml trees and
// renders them as Graphviz DOT, highlighting dependency cycles.
//
// # Quick start
//
//	err := pomviz.Generate(ctx, os.Stdout, []string{"./services"})
//
// With a depth limit and an artifact filter:
//
//	pred, _ := filter.Compile(`groupId startsWith "org.example"`)
//	err := pomviz.Generate(ctx, out, folders,
//	    pomviz.WithMaxDepth(3),
//	    pomviz.WithFilter(pred),
//	    pomviz.WithLogger(slog.Default()),
//	)
//
// The output is valid Graphviz input: one node statement per artifact,
// one edge statement per declared dependency, and
// [color=red,penwidth=2] on every edge that lies on a shortest
// dependency cycle.
package pomviz

import (
	"context"
	"fmt"
	"io"

	"github.com/pomviz/pomviz/graph"
	"github.com/pomviz/pomviz/pom"
)

// Generate scans folders for pom.xml descriptors, builds the dependency
// graph, applies the configured filter, detects shortest cycles, and
// writes the DOT rendering of the result to out.
//
// Malformed descriptors are fatal for their own file only: by default
// they are logged and skipped, with WithStrict they abort the run.
func Generate(ctx context.Context, out io.Writer, folders []string, opts ...Option) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}
	log := cfg.log()

	reg := graph.NewRegistry()
	loader := pom.NewLoader(reg, log)
	for _, folder := range folders {
		err := pom.Scan(ctx, folder, cfg.maxDepth, func(path string) error {
			if err := loader.LoadFile(path); err != nil {
				if cfg.strict {
					return err
				}
				log.Warn("skipping descriptor", "error", err)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("scan %s: %w", folder, err)
		}
	}
	log.Debug("graph built", "artifacts", reg.Len())

	if cfg.filter != nil {
		before := reg.Len()
		if err := graph.ApplyFilter(reg, cfg.filter); err != nil {
			return err
		}
		log.Debug("filter applied", "removed", before-reg.Len(), "kept", reg.Len())
	}

	det := graph.NewCycleDetector(reg)
	for _, c := range det.Cycles() {
		log.Warn("dependency cycle", "cycle", c.String(), "length", c.Len())
	}
	return graph.WriteDOT(out, reg, det)
}
