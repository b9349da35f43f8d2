package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"conffmt/internal/diag"
	"conffmt/internal/format"
	"conffmt/internal/source"
)

// FormatOptions configures a formatting run.
type FormatOptions struct {
	// Check reports whether files would change without writing anything.
	Check bool
	// Stdout returns formatted content in the results instead of writing
	// files.
	Stdout bool
	// MaxDiagnostics bounds the per-file diagnostic bag. Defaults to 256.
	MaxDiagnostics int
	// Options is passed through to the renderer.
	Options format.Options
	// Extensions selects files when walking directories. Defaults to
	// DefaultExtensions.
	Extensions []string
	// Jobs caps parallel workers. Defaults to GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, skips files already known to be canonical.
	Cache *DiskCache
	// Events, when non-nil, receives progress notifications.
	Events chan<- Event
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	FileID    source.FileID
	Changed   bool
	Err       error
	Formatted []byte
	Bag       *diag.Bag
	// FromCache marks results served without reprocessing.
	FromCache bool
}

// FormatPaths formats the given files and directories. Results come back in
// the sorted file order. The returned FileSet resolves the spans inside the
// per-file bags. A non-nil error means the run itself failed; per-file
// problems live in the results.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) (*source.FileSet, []FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	files, err := CollectConfigFiles(ctx, paths, opts.Extensions)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, errors.New("format: no config files found")
	}

	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 256
	}

	// Preload sequentially; FileSet mutation is not thread-safe.
	fileSet := source.NewFileSet()
	results := make([]FormatResult, len(files))
	for i, path := range files {
		results[i] = FormatResult{Path: path}
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			bag := diag.NewBag(maxDiag)
			bag.Add(diag.NewError(diag.IOReadFailed, source.Span{}, loadErr.Error()))
			results[i].Err = loadErr
			results[i].Bag = bag
			continue
		}
		results[i].FileID = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range results {
		if results[i].Err != nil {
			continue
		}
		g.Go(func(i int) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				formatOne(fileSet, &results[i], maxDiag, opts)
				return nil
			}
		}(i))
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	if opts.Check || opts.Stdout {
		return fileSet, results, nil
	}

	// Write-back is sequential; it touches distinct files but keeps error
	// reporting ordered.
	for i := range results {
		res := &results[i]
		if res.Err != nil || !res.Changed {
			continue
		}
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(res.Path); statErr == nil {
			mode = info.Mode()
		}
		if writeErr := os.WriteFile(res.Path, res.Formatted, mode.Perm()); writeErr != nil {
			res.Err = writeErr
			res.Bag.Add(diag.NewError(diag.IOWriteFailed, source.Span{}, writeErr.Error()))
		}
	}

	return fileSet, results, nil
}

func formatOne(fileSet *source.FileSet, res *FormatResult, maxDiag int, opts FormatOptions) {
	emit(opts.Events, Event{Path: res.Path, Kind: EventStart})

	sf := fileSet.Get(res.FileID)
	bag := diag.NewBag(maxDiag)
	res.Bag = bag

	key := CacheKey(sf.Hash, opts.Options.IndentWidth)
	if opts.Cache.IsCanonical(key) {
		res.Changed = false
		res.FromCache = true
		if opts.Stdout {
			res.Formatted = sf.Content
		}
		emit(opts.Events, Event{Path: res.Path, Kind: EventSkipped})
		return
	}

	formatted, err := format.Source(sf, opts.Options, diag.BagReporter{Bag: bag})
	if err != nil {
		res.Err = err
		emit(opts.Events, Event{Path: res.Path, Kind: EventFailed})
		return
	}

	res.Formatted = formatted
	res.Changed = !bytes.Equal(sf.Content, formatted)

	// Cache only clean canonical files, so warnings keep reappearing on
	// later runs.
	if !res.Changed && bag.Len() == 0 {
		_ = opts.Cache.MarkCanonical(key, res.Path)
	}

	emit(opts.Events, Event{Path: res.Path, Kind: EventDone, Changed: res.Changed})
}
