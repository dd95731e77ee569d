package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bashate/internal/version"
)

// errDiagnostics: ошибки уже напечатаны, нужен только код выхода 1.
var errDiagnostics = errors.New("bashate errors found")

// errUsage: usage уже напечатан.
var errUsage = errors.New("no files given")

func newRootCmd() *cobra.Command {
	opts := &checkOptions{}
	rootCmd := &cobra.Command{
		Use:   "bashate [flags] FILE...",
		Short: "A bash script style checker",
		Long: `bashate checks shell scripts for style problems: indentation, keyword
placement, trailing whitespace, here-documents and a few risky constructs.
Files are also run through "bash -n" to catch syntax errors.`,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setupRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	opts.register(rootCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "do not print the summary lines")
	rootCmd.PersistentFlags().Bool("timings", false, "print phase timings to stderr")
	rootCmd.PersistentFlags().String("trace", "", "write a trace to FILE (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace verbosity (off|run|file|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")

	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// main runs the root command and maps any error to exit status 1.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errDiagnostics) && !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "bashate: %v\n", err)
		}
		os.Exit(1)
	}
}
