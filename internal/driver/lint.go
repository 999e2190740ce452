package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"squill/internal/diag"
	"squill/internal/parser"
	"squill/internal/rules"
	"squill/internal/segment"
	"squill/internal/source"
)

// Options configures a lint run.
type Options struct {
	MaxDiagnostics int
	DisabledRules  []string
	NoCache        bool
	CacheDir       string // override the default cache location
	Jobs           int    // parallel workers for LintDir, 0 = GOMAXPROCS

	// OnFile, when set, is invoked from LintDir once per finished file.
	// Calls may come from multiple goroutines.
	OnFile func(DirResult)
}

func openCache(opts Options) *DiskCache {
	if opts.NoCache {
		return nil
	}
	if opts.CacheDir != "" {
		if c, err := OpenDiskCacheAt(opts.CacheDir); err == nil {
			return c
		}
		return nil
	}
	if c, err := OpenDiskCache("squill"); err == nil {
		return c
	}
	return nil
}

// Result is the outcome of linting one file. Root is nil when the
// diagnostics came from the disk cache.
type Result struct {
	FileSet *source.FileSet
	FileID  source.FileID
	File    *source.File
	Root    *segment.Segment
	Bag     *diag.Bag
}

// Lint loads, parses, and checks one file.
func Lint(ctx context.Context, path string, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return lintLoaded(ctx, fs, fileID, opts)
}

// LintVirtual lints in-memory content. The cache is bypassed: virtual files
// have no stable identity on disk.
func LintVirtual(ctx context.Context, name string, content []byte, opts Options) (*Result, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	opts.NoCache = true
	return lintLoaded(ctx, fs, fileID, opts)
}

func lintLoaded(ctx context.Context, fs *source.FileSet, fileID source.FileID, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)

	cache := openCache(opts)

	key := cacheKey(file.Hash, opts.DisabledRules)
	if cache != nil {
		var payload DiskPayload
		if ok, err := cache.Get(key, &payload); err == nil && ok {
			payload.fill(bag, fileID)
			return &Result{FileSet: fs, FileID: fileID, File: file, Bag: bag}, nil
		}
	}

	p := parser.New(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	root := p.ParseFile()

	rules.Crawl(file, root, rules.All(opts.DisabledRules), &diag.BagReporter{Bag: bag})
	bag.Sort()

	if cache != nil {
		// Cache write failures are not the caller's problem.
		_ = cache.Put(key, newDiskPayload(bag))
	}

	return &Result{FileSet: fs, FileID: fileID, File: file, Root: root, Bag: bag}, nil
}

// DirResult is the per-file outcome of LintDir.
type DirResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
}

// LintDir lints every *.sql file under dir in parallel. The returned results
// are in sorted path order regardless of completion order.
func LintDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []DirResult, error) {
	files, err := listSQLFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Preload sequentially: the FileSet is not safe for concurrent Add.
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	cache := openCache(opts)
	ruleSet := rules.All(opts.DisabledRules)
	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(opts.MaxDiagnostics)

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
				results[i] = DirResult{Path: path, Bag: bag}
				notify(opts, results[i])
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			key := cacheKey(file.Hash, opts.DisabledRules)
			if cache != nil {
				var payload DiskPayload
				if ok, err := cache.Get(key, &payload); err == nil && ok {
					payload.fill(bag, fileID)
					results[i] = DirResult{Path: path, FileID: fileID, Bag: bag}
					notify(opts, results[i])
					return nil
				}
			}

			p := parser.New(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
			root := p.ParseFile()
			rules.Crawl(file, root, ruleSet, &diag.BagReporter{Bag: bag})
			bag.Sort()

			if cache != nil {
				_ = cache.Put(key, newDiskPayload(bag))
			}

			results[i] = DirResult{Path: path, FileID: fileID, Bag: bag}
			notify(opts, results[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func notify(opts Options, res DirResult) {
	if opts.OnFile != nil {
		opts.OnFile(res)
	}
}

// ListSQLFiles returns every *.sql path under dir in sorted order. LintDir
// visits exactly this list.
func ListSQLFiles(dir string) ([]string, error) {
	return listSQLFiles(dir)
}

func listSQLFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(path), ".sql") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
