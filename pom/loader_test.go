package pom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomviz/pomviz/coords"
	"github.com/pomviz/pomviz/graph"
)

func TestLoadRegistersProjectAndDependencies(t *testing.T) {
	reg := graph.NewRegistry()
	loader := NewLoader(reg, nil)

	desc := &Descriptor{
		Project: coords.New("org.example", "app"),
		Dependencies: []coords.Coordinates{
			coords.New("org.example", "core"),
			coords.New("com.vendor", "client"),
		},
	}
	require.NoError(t, loader.Load(desc))

	assert.Equal(t, 3, reg.Len())
	app := reg.Get(desc.Project)
	require.NotNil(t, app)
	assert.True(t, app.HasDependency(coords.New("org.example", "core")))
	assert.True(t, app.HasDependency(coords.New("com.vendor", "client")))
	assert.True(t, reg.Get(coords.New("org.example", "core")).IsRequiredBy(desc.Project))
}

func TestLoadDependencyBeforeOwnDescriptor(t *testing.T) {
	reg := graph.NewRegistry()
	loader := NewLoader(reg, nil)

	core := coords.New("org.example", "core")
	require.NoError(t, loader.Load(&Descriptor{
		Project:      coords.New("org.example", "app"),
		Dependencies: []coords.Coordinates{core},
	}))
	placeholder := reg.Get(core)
	require.NotNil(t, placeholder)
	assert.Equal(t, 0, placeholder.NumDependencies())

	// core's own descriptor arrives later and fleshes out the same node.
	require.NoError(t, loader.Load(&Descriptor{
		Project:      core,
		Dependencies: []coords.Coordinates{coords.New("org.example", "util")},
	}))
	assert.Same(t, placeholder, reg.Get(core))
	assert.Equal(t, 1, placeholder.NumDependencies())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DescriptorFileName)
	content := `<project>
  <groupId>org.example</groupId>
  <artifactId>app</artifactId>
  <dependencies>
    <dependency><groupId>org.example</groupId><artifactId>core</artifactId></dependency>
  </dependencies>
</project>`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	reg := graph.NewRegistry()
	require.NoError(t, NewLoader(reg, nil).LoadFile(path))
	assert.Equal(t, 2, reg.Len())
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DescriptorFileName)
	require.NoError(t, os.WriteFile(path, []byte(`<project><artifactId>x</artifactId></project>`), 0o644))

	reg := graph.NewRegistry()
	err := NewLoader(reg, nil).LoadFile(path)
	require.ErrorIs(t, err, ErrNoGroupID)
	assert.Contains(t, err.Error(), path)
	assert.Equal(t, 0, reg.Len())
}
