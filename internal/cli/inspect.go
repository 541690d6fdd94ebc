package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxflow/pkg/layout"
	"github.com/matzehuels/boxflow/pkg/manifest"
	"github.com/matzehuels/boxflow/pkg/pipeline"
)

// inspectCommand creates the inspect command for browsing a solved tree.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		width  float64
		height float64
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [layout.toml]",
		Short: "Browse a solved layout tree interactively",
		Long: `Browse a solved layout tree interactively.

The inspect command solves the manifest against the given frame and opens
an interactive tree browser showing each node's solved size, position, and
constraints. Nodes with overflow or out-of-bounds findings are highlighted.

Use --plain to print the tree to stdout instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], width, height, plain)
		},
	}

	cmd.Flags().Float64Var(&width, "width", pipeline.DefaultWidth, "frame width")
	cmd.Flags().Float64Var(&height, "height", pipeline.DefaultHeight, "frame height")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the tree instead of opening the browser")

	return cmd
}

// runInspect solves the manifest and opens the tree browser.
func (c *CLI) runInspect(ctx context.Context, input string, width, height float64, plain bool) error {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", input, err)
	}

	var spec *manifest.Spec
	if sourceForPath(input) == pipeline.SourceJSON {
		spec, err = manifest.ParseJSON(data)
	} else {
		spec, err = manifest.Parse(data)
	}
	if err != nil {
		return err
	}

	root, err := spec.Build()
	if err != nil {
		return err
	}

	frame := layout.Size{Width: width, Height: height}
	findings := layout.Solve(root, frame)
	logger.Debugf("Solved %d nodes with %d findings", layout.Count(root), len(findings))

	if plain {
		if err := layout.DumpTree(os.Stdout, root); err != nil {
			return err
		}
		for _, f := range findings {
			printWarning("%s", f.Error())
		}
		return nil
	}

	model := newInspectModel(root, findings, frame)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}
