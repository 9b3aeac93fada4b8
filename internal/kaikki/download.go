package kaikki

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/heartmarshall/yomigen/internal/domain"
)

const defaultBaseURL = "https://kaikki.org"

// Downloader fetches raw wiktextract dumps from kaikki.org, gunzipping
// them on the fly into plain JSONL files.
type Downloader struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	retryDelay time.Duration
	log        *slog.Logger
}

// DownloadOptions configures the dump fetcher. Zero values fall back to
// the kaikki.org defaults.
type DownloadOptions struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
}

// NewDownloader creates a Downloader for the configured mirror.
func NewDownloader(opts DownloadOptions, logger *slog.Logger) *Downloader {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Downloader{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		retries:    opts.Retries,
		retryDelay: opts.RetryDelay,
		log:        logger.With("adapter", "kaikki"),
	}
}

// DumpURL returns the download URL of an edition's raw dump. The
// English edition lives under /dictionary, every other edition under
// /{code}wiktionary.
func (d *Downloader) DumpURL(edition domain.Edition) string {
	if edition == "en" {
		return d.baseURL + "/dictionary/raw-wiktextract-data.jsonl.gz"
	}
	return fmt.Sprintf("%s/%swiktionary/raw-wiktextract-data.jsonl.gz", d.baseURL, edition)
}

// FetchOptions tunes one Fetch call.
type FetchOptions struct {
	// Force redownloads even when the destination file already exists.
	Force bool
	// Progress, when set, receives the compressed bytes as they arrive.
	Progress io.Writer
}

// Fetch downloads an edition's dump to dest. The gzip stream is
// decompressed in flight and the destination is written atomically:
// a partial download never replaces an existing file.
func (d *Downloader) Fetch(ctx context.Context, edition domain.Edition, dest string, opts FetchOptions) error {
	if !opts.Force {
		if _, err := os.Stat(dest); err == nil {
			d.log.InfoContext(ctx, "dump already present",
				slog.String("edition", edition.String()),
				slog.String("path", dest),
			)
			return nil
		}
	}

	url := d.DumpURL(edition)
	d.log.InfoContext(ctx, "downloading dump",
		slog.String("edition", edition.String()),
		slog.String("url", url),
	)

	resp, err := d.get(ctx, url)
	if err != nil {
		return fmt.Errorf("download %s: %w", edition, err)
	}
	defer resp.Body.Close()

	if lm := resp.Header.Get("Last-Modified"); lm != "" {
		d.log.InfoContext(ctx, "upstream dump timestamp",
			slog.String("edition", edition.String()),
			slog.String("last_modified", lm),
		)
	}

	body := io.Reader(resp.Body)
	if opts.Progress != nil {
		body = io.TeeReader(body, opts.Progress)
	}

	gz, err := gzip.NewReader(body)
	if err != nil {
		return fmt.Errorf("download %s: open gzip stream: %w", edition, err)
	}
	defer gz.Close()

	if err := writeAtomic(dest, gz); err != nil {
		return fmt.Errorf("download %s: %w", edition, err)
	}

	d.log.InfoContext(ctx, "dump downloaded",
		slog.String("edition", edition.String()),
		slog.String("path", dest),
	)
	return nil
}

// get issues the request, retrying network failures and 5xx responses.
// Client errors are final: a missing dump will not appear by retrying.
func (d *Downloader) get(ctx context.Context, url string) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= d.retries; attempt++ {
		if attempt > 0 {
			d.log.WarnContext(ctx, "retrying download",
				slog.Int("attempt", attempt),
				slog.String("error", lastErr.Error()),
			)
			select {
			case <-time.After(d.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}

		resp, err := d.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
			continue
		}
		if resp.StatusCode == http.StatusOK {
			return resp, nil
		}
		resp.Body.Close()
		lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
		if resp.StatusCode < http.StatusInternalServerError && resp.StatusCode != http.StatusTooManyRequests {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

// writeAtomic streams r into a temp file next to dest and renames it
// into place once the copy completes.
func writeAtomic(dest string, r io.Reader) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(dest)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dest)
}
