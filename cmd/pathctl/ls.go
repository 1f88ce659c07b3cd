package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newLsCmd())
}

func newLsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls <doc> [path]",
		Short: "List the children of a node",
		Long: `The ls command prints the names of the direct children of path (the root
by default) in lexicographic order.

Example:
  pathctl ls config.yaml
  pathctl ls config.yaml services --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLs(args)
		},
	}
	return cmd
}

func runLs(args []string) error {
	doc, err := loadDocument(args[0], false)
	if err != nil {
		return err
	}
	var path string
	if len(args) > 1 {
		path = args[1]
	}

	names, err := doc.tree.ListDirectory(path)
	if err != nil {
		return fmt.Errorf("failed to list directory: %w", err)
	}

	if jsonOut {
		return printJSON(names)
	}
	for _, name := range names {
		printInfo("%s\n", name)
	}
	return nil
}
