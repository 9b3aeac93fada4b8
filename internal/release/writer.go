package release

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/paths"
	"github.com/heartmarshall/yomigen/internal/yomitan"
)

// DictName is the canonical artifact name of one dictionary.
func DictName(source, target domain.Lang, kind string) string {
	return fmt.Sprintf("yomigen-%s-%s-%s", source, target, kind)
}

// DictWriter places finished dictionaries under the data root in the
// viewer's zip format.
type DictWriter struct {
	paths  *paths.Manager
	writer *yomitan.Writer
	log    *slog.Logger
}

// NewDictWriter wires the zip writer to the data-root layout.
func NewDictWriter(pm *paths.Manager, pub yomitan.Publisher, logger *slog.Logger) *DictWriter {
	return &DictWriter{
		paths:  pm,
		writer: yomitan.NewWriter(pub),
		log:    logger.With("component", "dictwriter"),
	}
}

// WriteDict packages one dictionary's entry sets into its zip under
// dict/{target}/{source}.
func (w *DictWriter) WriteDict(source, target domain.Lang, kind string, sets []yomitan.EntrySet) error {
	dir, err := w.paths.EnsureDictDir(source, target)
	if err != nil {
		return err
	}

	name := DictName(source, target, kind)
	path, err := w.writer.Write(dir, name, source, target, sets)
	if err != nil {
		return err
	}

	w.log.Info("dictionary packaged", slog.String("path", path))
	return nil
}
