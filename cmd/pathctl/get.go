package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pathkit/pkg/printer"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <doc> <path>",
		Short: "Print the value stored at a path",
		Long: `The get command prints the value stored at path. It fails if path does
not exist or names a directory without a value.

Example:
  pathctl get config.yaml db/host
  pathctl get config.yaml db/port --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	doc, err := loadDocument(args[0], false)
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.MaxValueRunes = 0
	opts.Color = colorEnabled()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	if err := printer.New(doc.tree, os.Stdout, opts).PrintValue(args[1]); err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}
	return nil
}
