// Command pomviz searches directory trees for pom.xml files and writes
// the Maven dependency graph as Graphviz DOT to standard output, with
// dependency cycles highlighted in red.
//
// Usage:
//
//	pomviz [-v] [--maxdepth N] [--filter EXPR] [-o FILE] <folder> [<folder>...]
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pomviz/pomviz"
	"github.com/pomviz/pomviz/filter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// fileConfig holds defaults loadable from a yaml config file.
// Explicitly set flags take precedence over config values.
type fileConfig struct {
	MaxDepth *int    `yaml:"maxdepth"`
	Filter   *string `yaml:"filter"`
	Verbose  *bool   `yaml:"verbose"`
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		maxDepth   int
		filterExpr string
		output     string
		strict     bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "pomviz [flags] <folder> [<folder>...]",
		Short: "Render a Maven dependency graph as Graphviz DOT",
		Long: `pomviz searches the given folders for pom.xml files, builds the
dependency graph of all discovered artifacts, and writes it in Graphviz
DOT format. Edges that lie on a dependency cycle are colored red.

The --filter expression decides per artifact whether it appears in the
graph. It sees the variables groupId and artifactId plus an artifact
object with a transitive DependsOn(group, artifact) method:

  pomviz --filter 'groupId == "org.example"' .
  pomviz --filter 'artifact.DependsOn("org.example", "core")' ./repos`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fc, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				flags := cmd.Flags()
				if fc.MaxDepth != nil && !flags.Changed("maxdepth") {
					maxDepth = *fc.MaxDepth
				}
				if fc.Filter != nil && !flags.Changed("filter") {
					filterExpr = *fc.Filter
				}
				if fc.Verbose != nil && !flags.Changed("verbose") {
					verbose = *fc.Verbose
				}
			}

			seen := make(map[string]bool, len(args))
			for _, folder := range args {
				if seen[folder] {
					return fmt.Errorf("duplicate folder: %s", folder)
				}
				seen[folder] = true
				info, err := os.Stat(folder)
				if err != nil {
					return err
				}
				if !info.IsDir() {
					return fmt.Errorf("%s is not a directory", folder)
				}
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			opts := []pomviz.Option{
				pomviz.WithMaxDepth(maxDepth),
				pomviz.WithLogger(logger),
			}
			if strict {
				opts = append(opts, pomviz.WithStrict())
			}
			if filterExpr != "" {
				pred, err := filter.Compile(filterExpr)
				if err != nil {
					return err
				}
				opts = append(opts, pomviz.WithFilter(pred))
			}

			var out io.Writer = os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return pomviz.Generate(cmd.Context(), out, args, opts...)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
	cmd.Flags().IntVar(&maxDepth, "maxdepth", -1, "how many subdirectory levels to search (negative = unlimited)")
	cmd.Flags().StringVar(&filterExpr, "filter", "", "boolean expression deciding whether an artifact is included")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write DOT output to a file instead of stdout")
	cmd.Flags().BoolVar(&strict, "strict", false, "abort on the first malformed pom.xml")
	cmd.Flags().StringVar(&configPath, "config", "", "yaml file with defaults for maxdepth, filter and verbose")

	return cmd
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}
