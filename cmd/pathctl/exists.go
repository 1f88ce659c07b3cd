package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newExistsCmd())
}

func newExistsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exists <doc> <path>",
		Short: "Test whether a node exists",
		Long: `The exists command reports whether a node (value or directory) exists at
path. The exit status is 1 when it does not.

Example:
  pathctl exists config.yaml db/host && echo present`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := runExists(args)
			if err != nil {
				return err
			}
			if !found {
				return errSilentExit
			}
			return nil
		},
	}
	return cmd
}

func runExists(args []string) (bool, error) {
	doc, err := loadDocument(args[0], false)
	if err != nil {
		return false, err
	}

	found, err := doc.tree.Exists(args[1])
	if err != nil {
		return false, fmt.Errorf("failed to check path: %w", err)
	}

	if jsonOut {
		return found, printJSON(map[string]any{
			"path":   args[1],
			"exists": found,
		})
	}
	printInfo("%t\n", found)
	return found, nil
}
