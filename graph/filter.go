package graph

import (
	"fmt"

	"github.com/pomviz/pomviz/coords"
)

// Predicate decides whether an artifact stays in the graph. A non-nil
// error aborts filtering: evaluation failures are fatal configuration
// errors, never a silent false.
type Predicate func(*Artifact) (bool, error)

// ApplyFilter evaluates pred exactly once per registered artifact and
// removes every artifact it rejects, together with all edges touching
// it. Afterwards no surviving artifact mentions a rejected coordinate
// in either edge map and the rejected artifacts are absent from All().
func ApplyFilter(reg *Registry, pred Predicate) error {
	rejected := make(map[coords.Coordinates]struct{})
	for a := range reg.All() {
		keep, err := pred(a)
		if err != nil {
			return fmt.Errorf("filter %s: %w", a.Coords, err)
		}
		if !keep {
			rejected[a.Coords] = struct{}{}
		}
	}
	reg.Remove(rejected)
	return nil
}
