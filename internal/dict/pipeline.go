package dict

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/kaikki"
	"github.com/heartmarshall/yomigen/internal/yomitan"
)

// scanProgressInterval is how many scanned records pass between two
// Progress callbacks.
const scanProgressInterval = 10_000

// errStopScan aborts a record stream once the First limit is reached.
var errStopScan = errors.New("stop scan")

// RecordSource streams the cached records of one language out of one
// edition's dataset, in stable order.
type RecordSource interface {
	Records(ctx context.Context, edition domain.Edition, lang domain.Lang, fn func(entry *kaikki.WordEntry) error) error
}

// Writer receives the finished entry sets of one dictionary and
// persists them in the viewer's format.
type Writer interface {
	WriteDict(source, target domain.Lang, kind string, sets []yomitan.EntrySet) error
}

// Pipeline drives one dictionary kind through a full build: stream the
// cached records of every requested edition, funnel the survivors
// through the kind's transform into aggregation buckets, then reduce
// and emit each bucket to the writer.
type Pipeline[I any] struct {
	kind   Kind[I]
	source RecordSource
	writer Writer
	log    *slog.Logger
}

// NewPipeline wires a kind to its record source and writer.
func NewPipeline[I any](kind Kind[I], source RecordSource, writer Writer, logger *slog.Logger) *Pipeline[I] {
	return &Pipeline[I]{
		kind:   kind,
		source: source,
		writer: writer,
		log:    logger.With("kind", kind.Name()),
	}
}

// Run builds every dictionary the request names. All combinations are
// validated before any records are read, so a bad pair fails fast
// instead of after a long scan.
func (p *Pipeline[I]) Run(ctx context.Context, req Request, opts Options) error {
	if len(req.Editions) == 0 {
		return fmt.Errorf("%s: no editions requested", p.kind.Name())
	}
	for _, edition := range req.Editions {
		if err := CheckCombination(p.kind.Scope(), edition, req.Source, req.Target); err != nil {
			return err
		}
	}

	buckets := make(map[Key]*Bucket[I])
	scanned, accepted := 0, 0

	for _, edition := range req.Editions {
		langs := Langs{Edition: edition, Source: req.Source, Target: req.Target}
		recordLang := p.kind.RecordLang(langs)
		key := resolveKey(p.kind.Scope(), langs)

		editionStart := scanned
		err := p.source.Records(ctx, edition, recordLang, func(entry *kaikki.WordEntry) error {
			scanned++
			if opts.Progress != nil && scanned%scanProgressInterval == 0 {
				opts.Progress(scanned)
			}

			if opts.Rules.Rejected(entry) {
				return nil
			}
			if !p.kind.Keep(recordLang, entry) {
				return nil
			}

			bucket, ok := buckets[key]
			if !ok {
				bucket = &Bucket[I]{Diag: opts.Diagnostics}
				buckets[key] = bucket
			}
			p.kind.Preprocess(langs, entry, bucket)
			p.kind.Process(langs, entry, bucket)

			accepted++
			if opts.First > 0 && accepted >= opts.First {
				return errStopScan
			}
			return nil
		})

		limited := errors.Is(err, errStopScan)
		if err != nil && !limited {
			return fmt.Errorf("%s: scan %s records: %w", p.kind.Name(), edition, err)
		}

		p.log.InfoContext(ctx, "records scanned",
			slog.String("edition", edition.String()),
			slog.String("lang", recordLang.String()),
			slog.Int("records", scanned-editionStart),
		)

		if limited {
			p.log.InfoContext(ctx, "record limit reached", slog.Int("accepted", accepted))
			break
		}
	}

	return p.drain(ctx, buckets)
}

// drain reduces and writes every non-empty bucket.
func (p *Pipeline[I]) drain(ctx context.Context, buckets map[Key]*Bucket[I]) error {
	for key, bucket := range buckets {
		if bucket.Len() == 0 {
			p.log.DebugContext(ctx, "empty bucket skipped",
				slog.String("source", key.Source.String()),
				slog.String("target", key.Target.String()),
			)
			continue
		}

		p.kind.Postprocess(bucket)

		langs := key.Langs()
		sets := p.kind.Emit(langs, bucket)
		if err := p.writer.WriteDict(langs.Source, langs.Target, p.kind.Name(), sets); err != nil {
			return fmt.Errorf("%s: write %s-%s: %w", p.kind.Name(), langs.Source, langs.Target, err)
		}

		p.log.InfoContext(ctx, "dictionary written",
			slog.String("source", langs.Source.String()),
			slog.String("target", langs.Target.String()),
			slog.Int("items", bucket.Len()),
		)
	}
	return nil
}
