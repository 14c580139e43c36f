package pom

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
)

// DescriptorFileName is the file name the scanner looks for.
const DescriptorFileName = "pom.xml"

// Scan walks the directory tree rooted at root and calls visit for
// every pom.xml found. maxDepth limits how many subdirectory levels
// below root are searched; negative means unlimited. A non-nil error
// from visit stops the walk, as does context cancellation.
func Scan(ctx context.Context, root string, maxDepth int, visit func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if maxDepth >= 0 && depthBelow(root, path) > maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() != DescriptorFileName {
			return nil
		}
		return visit(path)
	})
}

// depthBelow counts directory levels between root and path.
func depthBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
