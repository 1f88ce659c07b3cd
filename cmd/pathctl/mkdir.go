package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newMkdirCmd())
}

func newMkdirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mkdir <doc> <path>",
		Short: "Create a directory and any missing ancestors",
		Long: `The mkdir command creates the directory at path, along with any missing
intermediate directories. Existing nodes are left untouched.

Example:
  pathctl mkdir config.yaml services/web
  pathctl mkdir new.json a/b/c`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMkdir(args)
		},
	}
	return cmd
}

func runMkdir(args []string) error {
	docPath := args[0]
	path := args[1]

	doc, err := loadDocument(docPath, true)
	if err != nil {
		return err
	}
	if err := doc.tree.CreateDirectory(path); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := doc.save(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"document": docPath,
			"path":     path,
			"success":  true,
		})
	}
	printInfo("✓ Created %s\n", path)
	return nil
}
