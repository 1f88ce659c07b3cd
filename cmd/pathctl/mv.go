package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newMvCmd())
}

func newMvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mv <doc> <src> <dst>",
		Short: "Merge the subtree at src into dst",
		Long: `The mv command detaches the subtree at src and merges it into dst,
creating dst if needed. Where both sides hold a value the one from src
wins. dst must not lie inside src.

Example:
  pathctl mv config.yaml staging production
  pathctl mv config.yaml old/db db`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMv(args)
		},
	}
	return cmd
}

func runMv(args []string) error {
	docPath := args[0]
	src := args[1]
	dst := args[2]

	doc, err := loadDocument(docPath, false)
	if err != nil {
		return err
	}
	if err := doc.tree.Merge(src, dst); err != nil {
		return fmt.Errorf("failed to merge: %w", err)
	}
	if err := doc.save(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"document": docPath,
			"src":      src,
			"dst":      dst,
			"success":  true,
		})
	}
	printInfo("✓ Merged %s into %s\n", src, dst)
	return nil
}
