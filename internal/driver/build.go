package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"mackerel/internal/ast"
	"mackerel/internal/buildpipeline"
	"mackerel/internal/diag"
	"mackerel/internal/lexer"
	"mackerel/internal/logger"
	"mackerel/internal/parser"
	"mackerel/internal/render"
	"mackerel/internal/source"
	"mackerel/internal/token"
)

// SourceExt is the extension of documents picked up by BuildDir.
const SourceExt = ".md"

type BuildOptions struct {
	Src string
	Out string
	// Jobs bounds parallel rendering; <= 0 means GOMAXPROCS.
	Jobs           int
	Render         RenderOptions
	Cache          *DiskCache
	Progress       buildpipeline.ProgressSink
	Logger         *logger.Logger
	MaxDiagnostics int
}

// FileResult is the outcome for one source document.
type FileResult struct {
	Path    string // relative to Src, slash separated
	Output  string // absolute destination
	FileSet *source.FileSet
	Bag     *diag.Bag
	Cached  bool
	Bytes   int
	Err     error
}

type BuildResult struct {
	Files    []FileResult
	Rendered int
	Cached   int
	Failed   int
	Written  uint64
	Timings  buildpipeline.Timings
	Duration time.Duration
}

// Summary is the one-line report printed after a build.
func (r *BuildResult) Summary() string {
	return fmt.Sprintf("%d files: %d rendered, %d cached, %d failed; wrote %s in %s",
		len(r.Files), r.Rendered, r.Cached, r.Failed,
		humanize.Bytes(r.Written), r.Duration.Round(time.Millisecond))
}

// CollectSources lists every document under dir, relative and sorted.
func CollectSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != SourceExt {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	sort.Strings(files)
	return files, nil
}

// OutputPath maps a relative source path to its HTML destination under out.
func OutputPath(out, rel string) string {
	return filepath.Join(out, filepath.FromSlash(strings.TrimSuffix(rel, SourceExt)+".html"))
}

// BuildDir renders every document under opts.Src into opts.Out, mirroring the
// directory layout. Files are independent: a failing file is recorded in the
// result and the rest of the build continues. The returned error is reserved
// for setup failures and cancellation.
func BuildDir(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	start := time.Now()
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	info, err := os.Stat(opts.Src)
	if err != nil {
		return nil, fmt.Errorf("source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", opts.Src)
	}
	files, err := CollectSources(opts.Src)
	if err != nil {
		return nil, err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	opts.Logger.BuildStarted(opts.Src, opts.Out, len(files), jobs)

	for _, rel := range files {
		buildpipeline.Emit(opts.Progress, buildpipeline.Event{File: rel, Status: buildpipeline.StatusQueued})
	}

	b := &builder{opts: opts}
	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, rel := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = b.buildFile(rel)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &BuildResult{Files: results, Timings: b.timings}
	for i := range results {
		fr := &results[i]
		switch {
		case fr.Err != nil:
			res.Failed++
		case fr.Cached:
			res.Cached++
		default:
			res.Rendered++
		}
		if fr.Err == nil {
			res.Written += uint64(fr.Bytes)
		}
	}
	res.Duration = time.Since(start)
	opts.Logger.BuildCompleted(res.Rendered, res.Cached, res.Failed, humanize.Bytes(res.Written), res.Duration)
	return res, nil
}

type builder struct {
	opts BuildOptions

	mu      sync.Mutex
	timings buildpipeline.Timings
}

func (b *builder) emit(rel string, stage buildpipeline.Stage, status buildpipeline.Status, err error, elapsed time.Duration) {
	buildpipeline.Emit(b.opts.Progress, buildpipeline.Event{
		File:    rel,
		Stage:   stage,
		Status:  status,
		Err:     err,
		Elapsed: elapsed,
	})
}

// stage runs fn as one pipeline stage of rel, reporting start and duration.
func (b *builder) stage(rel string, stage buildpipeline.Stage, fn func() error) error {
	b.emit(rel, stage, buildpipeline.StatusWorking, nil, 0)
	began := time.Now()
	err := fn()
	b.record(stage, time.Since(began))
	return err
}

func (b *builder) record(stage buildpipeline.Stage, d time.Duration) {
	b.mu.Lock()
	b.timings.Add(stage, d)
	b.mu.Unlock()
}

// renderDoc runs the render stage. Rendering a parsed tree cannot fail, so it
// is timed directly rather than through stage.
func (b *builder) renderDoc(rel string, doc *ast.Document) string {
	b.emit(rel, buildpipeline.StageRender, buildpipeline.StatusWorking, nil, 0)
	began := time.Now()
	html := render.HTML(doc, b.opts.Render.options()...)
	b.record(buildpipeline.StageRender, time.Since(began))
	return html
}

func (b *builder) fail(fr FileResult, stage buildpipeline.Stage, err error, began time.Time) FileResult {
	fr.Err = err
	b.opts.Logger.FileError(fr.Path, err)
	b.emit(fr.Path, stage, buildpipeline.StatusError, err, time.Since(began))
	return fr
}

func (b *builder) buildFile(rel string) FileResult {
	began := time.Now()
	fr := FileResult{
		Path:    rel,
		Output:  OutputPath(b.opts.Out, rel),
		FileSet: source.NewFileSet(),
		Bag:     diag.NewBag(b.opts.MaxDiagnostics),
	}
	reporter := diag.BagReporter{Bag: fr.Bag}

	var (
		file   *source.File
		tokens []token.Token
	)
	err := b.stage(rel, buildpipeline.StageScan, func() error {
		path := filepath.Join(b.opts.Src, filepath.FromSlash(rel))
		id, err := fr.FileSet.Load(path)
		if err != nil {
			// placeholder so the diagnostic has a file to point at
			at := source.Span{File: fr.FileSet.AddVirtual(path, nil)}
			diag.ReportError(reporter, diag.IOLoadFileError, at, err.Error()).Emit()
			return fmt.Errorf("failed to load %s: %w", rel, err)
		}
		file = fr.FileSet.Get(id)
		tokens = lexer.Scan(file)
		return nil
	})
	if err != nil {
		return b.fail(fr, buildpipeline.StageScan, err, began)
	}

	key := b.opts.Render.CacheKey(file.Hash)
	var payload DiskPayload
	hit, err := b.opts.Cache.Get(key, &payload)
	if err != nil {
		// unreadable entries are rebuilt
		b.opts.Logger.Warn("cache read failed", "file", rel, "error", err)
		hit = false
	}
	if hit {
		b.opts.Logger.CacheHit(rel, key.String())
		if err := b.write(&fr, file, payload.HTML); err != nil {
			return b.fail(fr, buildpipeline.StageWrite, err, began)
		}
		fr.Cached = true
		b.emit(rel, buildpipeline.StageWrite, buildpipeline.StatusCached, nil, time.Since(began))
		return fr
	}

	var doc *ast.Document
	err = b.stage(rel, buildpipeline.StageParse, func() error {
		var err error
		doc, err = parser.Parse(tokens, parser.Options{Reporter: reporter})
		return err
	})
	if err != nil {
		return b.fail(fr, buildpipeline.StageParse, fmt.Errorf("%s: %w", rel, err), began)
	}

	html := b.renderDoc(rel, doc)

	if err := b.write(&fr, file, html); err != nil {
		return b.fail(fr, buildpipeline.StageWrite, err, began)
	}
	err = b.opts.Cache.Put(key, &DiskPayload{
		Source:      rel,
		ContentHash: file.Hash,
		HTML:        html,
		RenderedAt:  time.Now().Unix(),
	})
	if err != nil {
		b.opts.Logger.Warn("cache write failed", "file", rel, "error", err)
	}
	b.opts.Logger.FileRendered(rel, fr.Output)
	b.emit(rel, buildpipeline.StageWrite, buildpipeline.StatusDone, nil, time.Since(began))
	return fr
}

func (b *builder) write(fr *FileResult, file *source.File, html string) error {
	return b.stage(fr.Path, buildpipeline.StageWrite, func() error {
		err := os.MkdirAll(filepath.Dir(fr.Output), 0o755)
		if err == nil {
			err = os.WriteFile(fr.Output, []byte(html), 0o644)
		}
		if err != nil {
			at := source.Span{File: file.ID}
			diag.ReportError(diag.BagReporter{Bag: fr.Bag}, diag.IOWriteError, at, err.Error()).Emit()
			return fmt.Errorf("failed to write %s: %w", fr.Output, err)
		}
		fr.Bytes = len(html)
		return nil
	})
}

// Err joins the first per-file failure, in source order, with a failure count.
// It is nil when every file succeeded.
func (r *BuildResult) Err() error {
	var errs []error
	for _, fr := range r.Files {
		if fr.Err != nil {
			errs = append(errs, fr.Err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs[0], fmt.Errorf("%d of %d files failed", r.Failed, len(r.Files)))
}
