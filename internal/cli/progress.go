package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/heartmarshall/yomigen/internal/domain"
)

// interactive reports whether progress bars should render. Bars write
// to stderr, so they follow the stderr TTY, and --quiet disables them.
func interactive() bool {
	if quiet {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newByteBar returns an indeterminate byte-counting bar; dump downloads
// have no reliable Content-Length after compression.
func newByteBar(desc string) *progressbar.ProgressBar {
	return progressbar.DefaultBytes(-1, desc)
}

// downloadProgress feeds one edition's download into a byte bar.
func downloadProgress(edition domain.Edition) io.Writer {
	return newByteBar(edition.String() + " dump")
}

// importProgress feeds one edition's cache import into a line-count bar.
func importProgress(edition domain.Edition) func(lines int) {
	bar := progressbar.Default(-1, edition.String()+" records")
	return func(lines int) {
		_ = bar.Set(lines)
	}
}

// importProgressLog is the non-TTY fallback: the import already reports
// at a coarse interval, so every callback becomes one log line.
func importProgressLog(edition domain.Edition) func(lines int) {
	return func(lines int) {
		log.Info("importing records",
			slog.String("edition", edition.String()),
			slog.Int("lines", lines),
		)
	}
}
