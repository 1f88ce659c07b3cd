package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setStrict bool

func init() {
	cmd := newSetCmd()
	cmd.Flags().BoolVar(&setStrict, "strict", false, "Fail if a value is already stored at path")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <doc> <path> <value>",
		Short: "Store a value",
		Long: `The set command stores a value at path, creating missing directories.
The value is read as a YAML scalar: 42, true and null keep their types,
anything else is stored as a string.

Example:
  pathctl set config.yaml db/host localhost
  pathctl set config.yaml db/port 5432
  pathctl set config.yaml db/port 5433 --strict`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	docPath := args[0]
	path := args[1]
	value := parseValue(args[2])

	doc, err := loadDocument(docPath, true)
	if err != nil {
		return err
	}

	var (
		prev     any
		replaced bool
	)
	if setStrict {
		err = doc.tree.Insert(path, value)
	} else {
		prev, replaced, err = doc.tree.Add(path, value)
	}
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	if err := doc.save(); err != nil {
		return err
	}

	if jsonOut {
		result := map[string]any{
			"document": docPath,
			"path":     path,
			"value":    value,
			"replaced": replaced,
			"success":  true,
		}
		if replaced {
			result["previous"] = prev
		}
		return printJSON(result)
	}

	if replaced {
		printVerbose("Replaced previous value: %v\n", prev)
	}
	printInfo("✓ Set %s = %v\n", path, value)
	return nil
}
