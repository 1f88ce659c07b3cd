package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/joshuapare/pathkit/internal/logger"
)

const (
	envFormat  = "PATHCTL_FORMAT"
	envNoColor = "PATHCTL_NO_COLOR"
)

var (
	// Global flags
	verbose       bool
	quiet         bool
	jsonOut       bool
	noColor       bool
	formatName    string
	logLevel      string
	inputEncoding string
)

// errSilentExit makes execute exit with status 1 without printing anything.
var errSilentExit = errors.New("silent exit")

var rootCmd = &cobra.Command{
	Use:   "pathctl",
	Short: "Inspect and manipulate path-addressed tree documents",
	Long: `pathctl reads a tree document (JSON or YAML), applies one tree operation
to it and, for mutating commands, writes the document back.

Paths are "/"-separated segment lists; "" and "/" name the root.`,
	Version:       "0.1.0",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&formatName, "format", "", "Document format (json, yaml); default from the file extension or $"+envFormat)
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log to stderr at this level (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		StringVar(&inputEncoding, "encoding", "", "Input character encoding (utf-8, utf-16, utf-16le, utf-16be, latin1, windows-1252)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilentExit) {
			printError("%v\n", err)
		}
		os.Exit(1)
	}
}

// initLogging enables the process logger when --verbose or --log-level asks
// for it.
func initLogging() error {
	if !verbose && logLevel == "" {
		logger.Init(logger.Options{})
		return nil
	}
	level := slog.LevelDebug
	if logLevel != "" {
		var err error
		if level, err = logger.ParseLevel(logLevel); err != nil {
			return err
		}
	}
	logger.Init(logger.Options{Enabled: true, Level: level})
	return nil
}

// colorEnabled reports whether text output should carry ANSI colours.
func colorEnabled() bool {
	if noColor || os.Getenv(envNoColor) != "" || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
