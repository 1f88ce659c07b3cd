package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCrawlCmd())
}

func newCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl <doc> [path]",
		Short: "Print every stored value below a node",
		Long: `The crawl command prints each value stored at or below path as
"path = value", in pre-order with siblings sorted by name.

Example:
  pathctl crawl config.yaml
  pathctl crawl config.yaml db --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrawl(args)
		},
	}
	return cmd
}

type crawlEntry struct {
	Path  string `json:"path"`
	Value any    `json:"value"`
}

func runCrawl(args []string) error {
	doc, err := loadDocument(args[0], false)
	if err != nil {
		return err
	}
	var path string
	if len(args) > 1 {
		path = args[1]
	}

	seq, err := doc.tree.Crawl(path)
	if err != nil {
		return fmt.Errorf("failed to crawl: %w", err)
	}

	if jsonOut {
		entries := []crawlEntry{}
		for p, v := range seq {
			entries = append(entries, crawlEntry{Path: p, Value: v})
		}
		return printJSON(entries)
	}
	for p, v := range seq {
		printInfo("%s = %v\n", p, v)
	}
	return nil
}
