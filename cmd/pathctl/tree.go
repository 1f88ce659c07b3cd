package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathkit/pkg/printer"
)

var (
	treeDepth  int
	treeValues bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeValues, "values", false, "Show values too")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <doc> [path]",
		Short: "Display tree structure",
		Long: `The tree command displays a hierarchical view of the document.

Example:
  pathctl tree config.yaml
  pathctl tree config.yaml services --depth 2
  pathctl tree config.yaml --values --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	doc, err := loadDocument(args[0], false)
	if err != nil {
		return err
	}
	var path string
	if len(args) > 1 {
		path = args[1]
	}

	// Configure printer options
	opts := printer.DefaultOptions()
	opts.ShowValues = treeValues
	opts.MaxDepth = treeDepth
	opts.Color = colorEnabled()

	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	if err := printer.Print(os.Stdout, doc.tree, path, opts); err != nil {
		return fmt.Errorf("failed to display tree: %w", err)
	}
	return nil
}
