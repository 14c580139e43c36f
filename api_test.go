package pomviz_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomviz/pomviz"
	"github.com/pomviz/pomviz/filter"
)

// writePom places a pom.xml under dir/rel declaring the given project
// and dependencies, all in the org.e2e group.
func writePom(t *testing.T, dir, rel, artifactID string, deps ...string) {
	t.Helper()
	var sb bytes.Buffer
	sb.WriteString("<project>\n")
	sb.WriteString("  <groupId>org.e2e</groupId>\n")
	sb.WriteString("  <artifactId>" + artifactID + "</artifactId>\n")
	sb.WriteString("  <dependencies>\n")
	for _, dep := range deps {
		sb.WriteString("    <dependency><groupId>org.e2e</groupId><artifactId>" + dep + "</artifactId></dependency>\n")
	}
	sb.WriteString("  </dependencies>\n")
	sb.WriteString("</project>\n")

	path := filepath.Join(dir, filepath.FromSlash(rel), "pom.xml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, sb.Bytes(), 0o644))
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	writePom(t, dir, "app", "app", "core")
	writePom(t, dir, "core", "core", "util")
	writePom(t, dir, "util", "util")

	var out bytes.Buffer
	require.NoError(t, pomviz.Generate(context.Background(), &out, []string{dir}))

	dot := out.String()
	assert.Contains(t, dot, "digraph {")
	assert.Contains(t, dot, `[label="org.e2e:app"]`)
	assert.Contains(t, dot, `[label="org.e2e:core"]`)
	assert.Contains(t, dot, `[label="org.e2e:util"]`)
	assert.NotContains(t, dot, "color=red")
}

func TestGenerateHighlightsCycle(t *testing.T) {
	dir := t.TempDir()
	writePom(t, dir, "a", "a", "b")
	writePom(t, dir, "b", "b", "a")

	var out bytes.Buffer
	require.NoError(t, pomviz.Generate(context.Background(), &out, []string{dir}))
	assert.Contains(t, out.String(), "[color=red,penwidth=2]")
}

func TestGenerateMultipleFolders(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writePom(t, first, ".", "app", "core")
	writePom(t, second, ".", "core")

	var out bytes.Buffer
	require.NoError(t, pomviz.Generate(context.Background(), &out, []string{first, second}))
	assert.Contains(t, out.String(), `[label="org.e2e:app"]`)
	assert.Contains(t, out.String(), `[label="org.e2e:core"]`)
}

func TestGenerateWithFilter(t *testing.T) {
	dir := t.TempDir()
	writePom(t, dir, "app", "app", "legacy")
	writePom(t, dir, "legacy", "legacy")

	pred, err := filter.Compile(`artifactId != "legacy"`)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, pomviz.Generate(context.Background(), &out, []string{dir},
		pomviz.WithFilter(pred)))

	assert.Contains(t, out.String(), `[label="org.e2e:app"]`)
	assert.NotContains(t, out.String(), "legacy")
}

func TestGenerateWithMaxDepth(t *testing.T) {
	dir := t.TempDir()
	writePom(t, dir, ".", "top")
	writePom(t, dir, "deep/nested", "buried")

	var out bytes.Buffer
	require.NoError(t, pomviz.Generate(context.Background(), &out, []string{dir},
		pomviz.WithMaxDepth(1)))

	assert.Contains(t, out.String(), `[label="org.e2e:top"]`)
	assert.NotContains(t, out.String(), "buried")
}

func TestGenerateSkipsMalformedByDefault(t *testing.T) {
	dir := t.TempDir()
	writePom(t, dir, "good", "good")
	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.MkdirAll(bad, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(bad, "pom.xml"), []byte("not xml"), 0o644))

	var out bytes.Buffer
	require.NoError(t, pomviz.Generate(context.Background(), &out, []string{dir}))
	assert.Contains(t, out.String(), `[label="org.e2e:good"]`)
}

func TestGenerateStrictAbortsOnMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pom.xml"), []byte("not xml"), 0o644))

	var out bytes.Buffer
	err := pomviz.Generate(context.Background(), &out, []string{dir}, pomviz.WithStrict())
	require.Error(t, err)
}

func TestGenerateNilFilterRejected(t *testing.T) {
	err := pomviz.Generate(context.Background(), &bytes.Buffer{}, []string{t.TempDir()},
		pomviz.WithFilter(nil))
	require.Error(t, err)
}

func TestGenerateMissingFolder(t *testing.T) {
	err := pomviz.Generate(context.Background(), &bytes.Buffer{},
		[]string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}

func TestGenerateCanceledContext(t *testing.T) {
	dir := t.TempDir()
	writePom(t, dir, ".", "app")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pomviz.Generate(ctx, &bytes.Buffer{}, []string{dir})
	require.ErrorIs(t, err, context.Canceled)
}
