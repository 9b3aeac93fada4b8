package release

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/yomigen/internal/config"
	"github.com/heartmarshall/yomigen/internal/dict"
	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/kaikki"
	"github.com/heartmarshall/yomigen/internal/paths"
	"github.com/heartmarshall/yomigen/internal/wikidb"
	"github.com/heartmarshall/yomigen/internal/yomitan"
)

// Options tunes one run.
type Options struct {
	// Force redownloads dumps even when they are already on disk.
	Force bool
	// First caps accepted records per combination; zero means no cap.
	First int
	// Rules is the global record filter shared by every combination.
	Rules *dict.Rules
	// DownloadProgress supplies a progress sink per edition download.
	DownloadProgress func(edition domain.Edition) io.Writer
	// ImportProgress supplies a line-count callback per cache import.
	ImportProgress func(edition domain.Edition) func(lines int)
}

// Runner drives dictionary builds: it prepares each edition's record
// cache, expands the configured matrix into combinations and runs them
// under bounded worker pools.
type Runner struct {
	cfg   *config.Config
	paths *paths.Manager
	log   *slog.Logger
}

// NewRunner creates a Runner over the configured data root.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:   cfg,
		paths: paths.New(cfg.DataDir),
		log:   logger.With("component", "release"),
	}
}

// Paths exposes the data-root layout the runner writes into.
func (r *Runner) Paths() *paths.Manager { return r.paths }

// Run executes the full release matrix. Every combination runs in
// isolation: one failure is logged, counted and does not stop the
// others. The run fails only after all combinations have finished.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	log := r.log.With(slog.String("run_id", uuid.NewString()))

	source, err := r.Prepare(ctx, r.cfg.Release.EditionList, opts)
	if err != nil {
		return err
	}
	defer source.Close()

	normal, heavy := r.jobs(source, opts)
	total := len(normal) + len(heavy)
	log.InfoContext(ctx, "release matrix built",
		slog.Int("combinations", total),
		slog.Int("heavy", len(heavy)),
	)

	var failed atomic.Int64
	runPool := func(jobs []job, limit int) {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(limit)
		for _, j := range jobs {
			g.Go(func() error {
				if err := j.run(gctx); err != nil {
					failed.Add(1)
					log.ErrorContext(gctx, "combination failed",
						slog.String("kind", j.kind),
						slog.String("source", j.source.String()),
						slog.String("target", j.target.String()),
						slog.String("error", err.Error()),
					)
				}
				return nil
			})
		}
		// Job errors are swallowed above, so Wait only reflects ctx state.
		_ = g.Wait()
	}

	runPool(normal, r.workers())
	runPool(heavy, r.cfg.Release.HeavyWorkers)

	if err := ctx.Err(); err != nil {
		return err
	}
	if n := failed.Load(); n > 0 {
		return fmt.Errorf("release: %d of %d combinations failed", n, total)
	}

	log.InfoContext(ctx, "release complete", slog.Int("combinations", total))
	return nil
}

// Prepare downloads any missing dumps and fills each edition's record
// cache. Population runs sequentially, one edition at a time; builds
// must not start before every cache is ready.
func (r *Runner) Prepare(ctx context.Context, editions []domain.Edition, opts Options) (*Source, error) {
	if len(editions) == 0 {
		return nil, errors.New("release: no editions to prepare")
	}
	if err := r.paths.EnsureBaseDirs(); err != nil {
		return nil, err
	}

	dl := kaikki.NewDownloader(kaikki.DownloadOptions{
		BaseURL:    r.cfg.Download.BaseURL,
		Timeout:    r.cfg.Download.Timeout,
		Retries:    r.cfg.Download.Retries,
		RetryDelay: r.cfg.Download.RetryDelay,
	}, r.log)

	source := &Source{stores: make(map[domain.Edition]*wikidb.Store, len(editions))}
	for _, edition := range editions {
		if err := r.prepareEdition(ctx, dl, source, edition, opts); err != nil {
			source.Close()
			return nil, fmt.Errorf("prepare %s: %w", edition, err)
		}
	}
	return source, nil
}

func (r *Runner) prepareEdition(ctx context.Context, dl *kaikki.Downloader, source *Source, edition domain.Edition, opts Options) error {
	dataset := r.paths.DatasetPath(edition)

	fetchOpts := kaikki.FetchOptions{Force: opts.Force}
	if opts.DownloadProgress != nil {
		fetchOpts.Progress = opts.DownloadProgress(edition)
	}
	if err := dl.Fetch(ctx, edition, dataset, fetchOpts); err != nil {
		return err
	}

	store, err := wikidb.Open(ctx, r.paths.DBPath(edition), edition)
	if err != nil {
		return err
	}

	populated, err := store.Populated(ctx)
	if err != nil {
		store.Close()
		return err
	}
	if !populated {
		if err := r.populate(ctx, store, edition, dataset, opts); err != nil {
			store.Close()
			return err
		}
	}

	source.stores[edition] = store
	return nil
}

func (r *Runner) populate(ctx context.Context, store *wikidb.Store, edition domain.Edition, dataset string, opts Options) error {
	f, err := os.Open(dataset)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrDatasetMissing, dataset)
	}
	if err != nil {
		return err
	}
	defer f.Close()

	var progress func(int)
	if opts.ImportProgress != nil {
		progress = opts.ImportProgress(edition)
	}

	r.log.InfoContext(ctx, "populating record cache", slog.String("edition", edition.String()))
	n, err := store.Populate(ctx, f, progress)
	if err != nil {
		return err
	}
	r.log.InfoContext(ctx, "record cache populated",
		slog.String("edition", edition.String()),
		slog.Int("records", n),
	)
	return nil
}

// job is one runnable (kind, source, target) combination.
type job struct {
	kind   string
	source domain.Lang
	target domain.Lang
	run    func(ctx context.Context) error
}

type jobDeps struct {
	source  *Source
	writer  *DictWriter
	paths   *paths.Manager
	log     *slog.Logger
	collect bool
}

func (r *Runner) jobDeps(source *Source) jobDeps {
	return jobDeps{
		source:  source,
		writer:  NewDictWriter(r.paths, r.publisher(), r.log),
		paths:   r.paths,
		log:     r.log,
		collect: r.cfg.Diagnostics,
	}
}

// jobs expands the configured matrix into runnable combinations,
// dropping the pairs the validity rules exclude. The cross glossary is
// returned separately: it holds every edition's items for a pair in
// memory at once and runs under the lower worker ceiling.
func (r *Runner) jobs(source *Source, opts Options) (normal, heavy []job) {
	deps := r.jobDeps(source)
	editions := r.cfg.Release.EditionList

	for _, edition := range editions {
		target := edition.Lang()
		for _, lang := range r.languages() {
			if dict.CheckCombination(dict.ScopePerEdition, edition, lang, target) != nil {
				continue
			}
			req := dict.Request{Editions: []domain.Edition{edition}, Source: lang, Target: target}
			normal = append(normal,
				newJob(dict.Glossary{}, deps, req, opts),
				newJob(dict.IPA{}, deps, req, opts),
			)
		}
	}

	for _, lang := range r.languages() {
		if dict.CheckCombination(dict.ScopeAllEditions, "", lang, lang) != nil {
			continue
		}
		req := dict.Request{Editions: editions, Source: lang, Target: lang}
		normal = append(normal, newJob(dict.IPAMerged{}, deps, req, opts))
	}

	cross := r.crossLanguages()
	for _, s := range cross {
		for _, t := range cross {
			if s == t || dict.CheckCombination(dict.ScopeAllEditions, "", s, t) != nil {
				continue
			}
			req := dict.Request{Editions: editions, Source: s, Target: t}
			heavy = append(heavy, newJob(dict.CrossGlossary{}, deps, req, opts))
		}
	}

	return normal, heavy
}

// newJob binds one kind to one combination. The run closure owns its
// own diagnostics sink; nothing is shared between combinations except
// the read-only record source.
func newJob[I any](kind dict.Kind[I], deps jobDeps, req dict.Request, opts Options) job {
	return job{
		kind:   kind.Name(),
		source: req.Source,
		target: req.Target,
		run: func(ctx context.Context) error {
			var diag *dict.Diagnostics
			if deps.collect {
				diag = dict.NewDiagnostics()
			}

			err := dict.NewPipeline(kind, deps.source, deps.writer, deps.log).Run(ctx, req, dict.Options{
				First:       opts.First,
				Rules:       opts.Rules,
				Diagnostics: diag,
			})
			if err != nil {
				return err
			}

			if !diag.Empty() {
				path := filepath.Join(deps.paths.DiagnosticsDir(req.Source, req.Target), kind.Name()+"-tags.json")
				if err := diag.WriteFile(path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// Build prepares the caches one kind needs and runs it for a single
// combination. The single-kind commands go through here.
func Build[I any](ctx context.Context, r *Runner, kind dict.Kind[I], req dict.Request, opts Options) error {
	source, err := r.Prepare(ctx, req.Editions, opts)
	if err != nil {
		return err
	}
	defer source.Close()

	return newJob(kind, r.jobDeps(source), req, opts).run(ctx)
}

func (r *Runner) workers() int {
	if r.cfg.Release.Workers > 0 {
		return r.cfg.Release.Workers
	}
	return runtime.NumCPU()
}

// languages is the source side of the per-edition matrix.
func (r *Runner) languages() []domain.Lang {
	if len(r.cfg.Release.LanguageList) > 0 {
		return r.cfg.Release.LanguageList
	}
	return domain.AllLangs()
}

// crossLanguages is the pair matrix for the cross glossary. Empty
// config falls back to the configured editions' own languages.
func (r *Runner) crossLanguages() []domain.Lang {
	if len(r.cfg.Release.CrossLanguageList) > 0 {
		return r.cfg.Release.CrossLanguageList
	}
	langs := make([]domain.Lang, 0, len(r.cfg.Release.EditionList))
	for _, e := range r.cfg.Release.EditionList {
		if e == domain.EditionSimple {
			continue
		}
		langs = append(langs, e.Lang())
	}
	return langs
}

func (r *Runner) publisher() yomitan.Publisher {
	return yomitan.Publisher{
		Author:   r.cfg.Publish.Author,
		Homepage: r.cfg.Publish.Homepage,
		BaseURL:  r.cfg.Publish.BaseURL,
	}
}
