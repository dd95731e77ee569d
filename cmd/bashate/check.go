package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"bashate/internal/config"
	"bashate/internal/diag"
	"bashate/internal/diagfmt"
	"bashate/internal/driver"
	"bashate/internal/observ"
	"bashate/internal/syntax"
)

type checkOptions struct {
	ignore        string
	warn          string
	errors        string
	verbose       bool
	show          bool
	maxLineLength int
	format        string
	configPath    string
	jobs          int
	cache         bool
	clearCache    bool
	noSyntaxCheck bool
	shell         string
}

func (o *checkOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.ignore, "ignore", "i", "", "rules to ignore, e.g. E010,E011")
	flags.StringVarP(&o.warn, "warn", "w", "", "rules to report as warnings")
	flags.StringVarP(&o.errors, "error", "e", "", "rules to report as errors")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "print the name of each file before checking it")
	flags.BoolVarP(&o.show, "show", "s", false, "list the checks and exit")
	flags.IntVar(&o.maxLineLength, "max-line-length", 79, "longest allowed line (E006)")
	flags.StringVar(&o.format, "format", "pep8", "output format (pep8|long|json)")
	flags.StringVar(&o.configPath, "config", "", "settings file (default: search for .bashate.toml/.yaml upwards)")
	flags.IntVar(&o.jobs, "jobs", 1, "files checked in parallel (0 = number of CPUs)")
	flags.BoolVar(&o.cache, "cache", false, "reuse results of unchanged files")
	flags.BoolVar(&o.clearCache, "clear-cache", false, "remove cached results before checking")
	flags.BoolVar(&o.noSyntaxCheck, "no-syntax-check", false, "do not run the shell in syntax-check mode")
	flags.StringVar(&o.shell, "shell", syntax.DefaultShell, "shell used for the syntax check")
}

// applyConfig fills every option the user did not set on the command line
// from cfg.
func (o *checkOptions) applyConfig(cmd *cobra.Command, cfg config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("ignore") && cfg.Ignore != nil {
		o.ignore = cfg.Ignore.Join()
	}
	if !flags.Changed("warn") && cfg.Warn != nil {
		o.warn = cfg.Warn.Join()
	}
	if !flags.Changed("error") && cfg.Error != nil {
		o.errors = cfg.Error.Join()
	}
	if !flags.Changed("max-line-length") && cfg.MaxLineLength != nil {
		o.maxLineLength = *cfg.MaxLineLength
	}
	if !flags.Changed("format") && cfg.Format != nil {
		o.format = *cfg.Format
	}
	if !flags.Changed("shell") && cfg.Shell != nil {
		o.shell = *cfg.Shell
	}
	if !flags.Changed("no-syntax-check") && cfg.SyntaxCheck != nil {
		o.noSyntaxCheck = !*cfg.SyntaxCheck
	}
	if !flags.Changed("jobs") && cfg.Jobs != nil {
		o.jobs = *cfg.Jobs
	}
}

func (o *checkOptions) overrides() diag.Overrides {
	return diag.Overrides{
		Ignore: diag.ParseIDList(o.ignore),
		Warn:   diag.ParseIDList(o.warn),
		Error:  diag.ParseIDList(o.errors),
	}
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover(".")
}

func clearCache(cmd *cobra.Command, verbose bool) error {
	c, err := driver.OpenDiskCache("bashate")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := c.DropAll(); err != nil {
		return fmt.Errorf("failed to clear cache %s: %w", c.Dir(), err)
	}
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared cache %s\n", c.Dir())
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string, opts *checkOptions) error {
	if opts.show {
		return showCatalog(cmd)
	}
	if opts.clearCache {
		if err := clearCache(cmd, opts.verbose); err != nil {
			return err
		}
		if len(args) == 0 {
			return nil
		}
	}
	if len(args) == 0 {
		_ = cmd.Usage()
		return errUsage
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	opts.applyConfig(cmd, cfg)

	if opts.maxLineLength < 1 {
		return fmt.Errorf("--max-line-length must be positive, got %d", opts.maxLineLength)
	}
	format, err := diagfmt.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	colorOn, err := colorEnabled(cmd)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	out := cmd.OutOrStdout()
	sink := diag.NewSink(opts.overrides(), diagfmt.New(out, format, diagfmt.Options{Color: colorOn}))

	runOpts := driver.Options{
		MaxLineLength: opts.maxLineLength,
		Jobs:          opts.jobs,
	}
	if runOpts.Jobs == 0 {
		runOpts.Jobs = runtime.NumCPU()
	}
	if !opts.noSyntaxCheck {
		runOpts.Syntax = syntax.Bash{Shell: opts.shell}
	}
	if opts.cache {
		// Кэш необязателен: без него просто медленнее
		if c, cacheErr := driver.OpenDiskCache("bashate"); cacheErr == nil {
			runOpts.Cache = c
		}
	}
	if opts.verbose {
		runOpts.OnFile = func(path string) {
			fmt.Fprintf(out, "Running bashate on %s\n", path)
		}
	}
	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
		runOpts.Timer = timer
	}

	runErr := driver.Run(cmd.Context(), args, runOpts, sink)
	if runErr != nil {
		return runErr
	}
	if err := sink.Err(); err != nil {
		return fmt.Errorf("failed to write diagnostics: %w", err)
	}

	if !quiet {
		if err := diagfmt.Summary(out, sink.Errors(), sink.Warnings()); err != nil {
			return err
		}
	}
	if timer != nil {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}

	if sink.Errors() > 0 {
		return errDiagnostics
	}
	return nil
}
