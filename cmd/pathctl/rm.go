package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmTree bool

func init() {
	cmd := newRmCmd()
	cmd.Flags().BoolVar(&rmTree, "tree", false, "Remove the whole subtree at path")
	rootCmd.AddCommand(cmd)
}

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <doc> <path>",
		Short: "Remove a value or a subtree",
		Long: `The rm command removes the value stored at path, keeping any children.
With --tree it removes the node and everything below it. Directories left
empty by the removal are pruned.

Example:
  pathctl rm config.yaml db/port
  pathctl rm config.yaml services --tree`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRm(args)
		},
	}
	return cmd
}

func runRm(args []string) error {
	docPath := args[0]
	path := args[1]

	doc, err := loadDocument(docPath, false)
	if err != nil {
		return err
	}

	result := map[string]any{
		"document": docPath,
		"path":     path,
	}
	var message string
	if rmTree {
		sub, err := doc.tree.RemoveTree(path)
		if err != nil {
			return fmt.Errorf("failed to remove subtree: %w", err)
		}
		result["values"] = sub.Len()
		message = fmt.Sprintf("✓ Removed %s (%d values)\n", path, sub.Len())
	} else {
		prev, removed, err := doc.tree.Remove(path)
		if err != nil {
			return fmt.Errorf("failed to remove value: %w", err)
		}
		result["removed"] = removed
		if removed {
			result["value"] = prev
			message = fmt.Sprintf("✓ Removed %s = %v\n", path, prev)
		} else {
			message = fmt.Sprintf("No value stored at %s\n", path)
		}
	}

	if err := doc.save(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(result)
	}
	printInfo("%s", message)
	return nil
}
