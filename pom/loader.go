package pom

import (
	"fmt"
	"log/slog"

	"github.com/pomviz/pomviz/graph"
)

// Loader feeds parsed descriptors into a graph registry.
type Loader struct {
	reg *graph.Registry
	log *slog.Logger
}

// NewLoader creates a loader that registers descriptors in reg. A nil
// logger disables logging.
func NewLoader(reg *graph.Registry, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{reg: reg, log: logger}
}

// LoadFile parses the pom.xml at path and registers the project, its
// dependencies, and the edges between them. An unparseable descriptor
// is an error for this file only; the registry is left untouched.
func (l *Loader) LoadFile(path string) error {
	desc, err := ParseFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := l.Load(desc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	l.log.Debug("scanned descriptor",
		"path", path,
		"project", desc.Project,
		"dependencies", len(desc.Dependencies))
	return nil
}

// Load registers one descriptor. Dependency artifacts are created on
// first reference, so a dependency target may exist in the registry
// before its own descriptor is seen.
func (l *Loader) Load(desc *Descriptor) error {
	project := l.reg.GetOrCreate(desc.Project)
	for _, dep := range desc.Dependencies {
		l.reg.GetOrCreate(dep)
		if err := l.reg.AddDependency(project.Coords, dep); err != nil {
			return err
		}
	}
	return nil
}
