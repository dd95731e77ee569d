package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"bashate/internal/checks"
	"bashate/internal/diag"
	"bashate/internal/observ"
	"bashate/internal/source"
	"bashate/internal/syntax"
	"bashate/internal/trace"
	"bashate/internal/version"
)

// Options configures one run.
type Options struct {
	// MaxLineLength is the E006 limit; 0 means checks.DefaultMaxLineLength.
	MaxLineLength int
	// Syntax is the external syntax check; nil disables it.
	Syntax syntax.Checker
	// Jobs > 1 scans files concurrently. Output order does not change.
	Jobs int
	// Cache, when set, stores and replays per-file findings.
	Cache *DiskCache
	// OnFile is called before the findings of each file are reported.
	OnFile func(path string)
	// Timer receives per-phase durations; may be nil.
	Timer *observ.Timer
}

func (o Options) maxLineLength() int {
	if o.MaxLineLength < 1 {
		return checks.DefaultMaxLineLength
	}
	return o.MaxLineLength
}

// fingerprinter is implemented by syntax checkers whose results depend on an
// external binary.
type fingerprinter interface {
	Fingerprint() string
}

func (o Options) keyParams() keyParams {
	p := keyParams{
		toolVersion:   version.Version,
		maxLineLength: o.maxLineLength(),
		syntaxCheck:   o.Syntax != nil,
	}
	if fp, ok := o.Syntax.(fingerprinter); ok {
		p.shell = fp.Fingerprint()
	}
	return p
}

// Run checks paths in order and reports every finding to r. Findings of a
// file are always reported after those of the files before it, whatever
// Jobs is. The first file that cannot be read stops the run; findings of
// the files before it have already been reported.
func Run(ctx context.Context, paths []string, opts Options, r diag.Reporter) error {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeRun, "run", trace.ParentFrom(ctx))
	span.WithExtra("files", strconv.Itoa(len(paths)))
	ctx = trace.WithSpan(ctx, span)

	var err error
	if opts.Jobs > 1 && len(paths) > 1 {
		err = runParallel(ctx, paths, opts, r)
	} else {
		err = runSequential(ctx, paths, opts, r)
	}

	detail := "ok"
	if err != nil {
		detail = err.Error()
	}
	span.End(detail)
	return err
}

func runSequential(ctx context.Context, paths []string, opts Options, r diag.Reporter) error {
	fileSet := source.NewFileSet()
	params := opts.keyParams()

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		file, err := loadFile(fileSet, path, opts.Timer)
		if err != nil {
			return err
		}
		if opts.OnFile != nil {
			opts.OnFile(path)
		}
		checkFile(ctx, file, opts, params, r)
	}
	return nil
}

func runParallel(ctx context.Context, paths []string, opts Options, r diag.Reporter) error {
	// Загружаем все файлы заранее: FileSet не потокобезопасен
	fileSet := source.NewFileSet()
	files := make([]*source.File, len(paths))
	loadErrors := make([]error, len(paths))
	for i, path := range paths {
		file, err := loadFile(fileSet, path, opts.Timer)
		if err != nil {
			loadErrors[i] = err
			continue
		}
		files[i] = file
	}

	params := opts.keyParams()
	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	bags := make([]*diag.Bag, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.Jobs, len(paths)))
	for i, file := range files {
		if file == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bag := diag.NewBag(file.Path)
			checkFile(gctx, file, opts, params, bag)
			bags[i] = bag
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		if loadErrors[i] != nil {
			return loadErrors[i]
		}
		if opts.OnFile != nil {
			opts.OnFile(path)
		}
		bags[i].Replay(r)
	}
	return nil
}

func loadFile(fileSet *source.FileSet, path string, timer *observ.Timer) (*source.File, error) {
	start := time.Now()
	id, err := fileSet.Load(path)
	timer.Add("load", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return fileSet.Get(id), nil
}

// checkFile reports the findings of one file, from the cache when possible.
func checkFile(ctx context.Context, file *source.File, opts Options, params keyParams, r diag.Reporter) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "file", trace.ParentFrom(ctx))
	ctx = trace.WithSpan(ctx, span)

	var key [32]byte
	if opts.Cache != nil {
		key = resultKey(file.Path, file.Hash, params)
		var payload DiskPayload
		start := time.Now()
		hit, err := opts.Cache.Get(key, &payload)
		opts.Timer.Add("cache", time.Since(start))
		if err == nil && hit {
			diag.NewBagFrom(file.Path, payloadToFindings(&payload)).Replay(r)
			span.WithExtra("cache", "hit").End(file.Path)
			return
		}
	}

	var (
		syntaxFindings []diag.Finding
		syntaxRan      bool
	)
	if opts.Syntax != nil {
		start := time.Now()
		found, err := opts.Syntax.Check(ctx, file.Path)
		opts.Timer.Add("syntax", time.Since(start))
		if err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "syntax", err.Error(), span.ID())
		} else {
			syntaxFindings, syntaxRan = found, true
		}
	}

	// при кэшировании копим находки параллельно с выдачей
	var captured *diag.Bag
	if opts.Cache != nil {
		captured = diag.NewBag(file.Path)
		r = diag.MultiReporter{r, captured}
	}

	start := time.Now()
	ScanFile(ctx, file, opts.maxLineLength(), syntaxRan, syntaxFindings, r)
	opts.Timer.Add("scan", time.Since(start))

	if captured != nil {
		payload := findingsToPayload(file.Path, file.Hash, captured.Items())
		if err := opts.Cache.Put(key, payload); err != nil {
			trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache", err.Error(), span.ID())
		}
	}
	span.End(file.Path)
}
