package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/pathkit/pkg/codec"
)

func init() {
	rootCmd.AddCommand(newConvertCmd())
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <doc> <out>",
		Short: "Rewrite a document in another format",
		Long: `The convert command decodes doc and writes the same tree to out, in the
format named by out's extension. Input in UTF-16 or a legacy 8-bit
encoding can be read with --encoding; output is always UTF-8.

Example:
  pathctl convert config.json config.yaml
  pathctl convert legacy.json clean.json --encoding windows-1252`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args)
		},
	}
	return cmd
}

func runConvert(args []string) error {
	in, err := loadDocument(args[0], false)
	if err != nil {
		return err
	}
	outFormat, err := codec.FormatFromExtension(args[1])
	if err != nil {
		return err
	}

	out := &document{path: args[1], format: outFormat, tree: in.tree}
	if err := out.save(); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{
			"input":   args[0],
			"output":  args[1],
			"format":  string(outFormat),
			"values":  in.tree.Len(),
			"success": true,
		})
	}
	printVerbose("Read %s as %s\n", args[0], in.format)
	printInfo("✓ Wrote %s (%s, %d values)\n", args[1], outFormat, in.tree.Len())
	return nil
}

