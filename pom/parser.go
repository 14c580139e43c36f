package pom

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"

	"github.com/pomviz/pomviz/coords"
)

// Sentinel errors for descriptors that cannot yield coordinates.
var (
	// ErrNoGroupID indicates neither the project nor its parent
	// declares a group id.
	ErrNoGroupID = errors.New("no resolvable groupId")

	// ErrNoArtifactID indicates a missing artifact id.
	ErrNoArtifactID = errors.New("no artifactId")
)

// Descriptor is the extracted content of one pom.xml: the project's own
// coordinates and the coordinates of every declared dependency.
type Descriptor struct {
	Project      coords.Coordinates
	Dependencies []coords.Coordinates
}

// ParseFile reads and parses a pom.xml from disk.
func ParseFile(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read pom: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse extracts a Descriptor from pom.xml content. The project group
// id falls back to the parent-declared group id when absent; a pom with
// neither, or without an artifact id, is rejected. Each declared
// dependency must carry both ids.
func Parse(r io.Reader) (*Descriptor, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse pom: %w", err)
	}
	project := doc.SelectElement("project")
	if project == nil {
		return nil, fmt.Errorf("parse pom: no <project> element")
	}

	groupID := elementText(project.SelectElement("groupId"))
	if groupID == "" {
		groupID = elementText(project.FindElement("parent/groupId"))
	}
	if groupID == "" {
		return nil, ErrNoGroupID
	}
	artifactID := elementText(project.SelectElement("artifactId"))
	if artifactID == "" {
		return nil, ErrNoArtifactID
	}

	d := &Descriptor{Project: coords.New(groupID, artifactID)}
	for _, dep := range project.FindElements("dependencies/dependency") {
		depGroup := elementText(dep.SelectElement("groupId"))
		if depGroup == "" {
			return nil, fmt.Errorf("dependency of %s: %w", d.Project, ErrNoGroupID)
		}
		depArtifact := elementText(dep.SelectElement("artifactId"))
		if depArtifact == "" {
			return nil, fmt.Errorf("dependency of %s: %w", d.Project, ErrNoArtifactID)
		}
		d.Dependencies = append(d.Dependencies, coords.New(depGroup, depArtifact))
	}
	return d, nil
}

func elementText(e *etree.Element) string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text())
}
