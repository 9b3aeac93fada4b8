package yomitan

import (
	"archive/zip"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/heartmarshall/yomigen/internal/domain"
)

// bankSize is the maximum number of rows per bank file. The viewer loads
// banks one at a time, so smaller files keep import memory flat.
const bankSize = 10_000

// Writer packages labeled entry sets into zipped Yomitan dictionaries.
type Writer struct {
	pub Publisher
	now func() time.Time
}

// NewWriter creates a writer publishing under the given identity.
func NewWriter(pub Publisher) *Writer {
	return &Writer{pub: pub, now: time.Now}
}

// bankGroup is one label's worth of rows, feeding one bank sequence.
type bankGroup struct {
	label string
	terms []TermEntry
	metas []TermMeta
}

// Write assembles one dictionary archive at dir/name.zip: index.json plus
// chunked bank files, each set routed by its label into that label's
// {label}_bank_N.json / {label}_meta_bank_N.json sequence. The archive is
// staged in a temp file and renamed into place, so rerunning overwrites
// atomically. Returns the archive path.
func (w *Writer) Write(dir, name string, source, target domain.Lang, sets []EntrySet) (string, error) {
	groups, err := groupByLabel(sets)
	if err != nil {
		return "", fmt.Errorf("yomitan: write %s: %w", name, err)
	}

	seq := int64(0)
	for _, g := range groups {
		for i := range g.terms {
			seq++
			g.terms[i].Sequence = seq
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("yomitan: create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, name+"-*.zip.tmp")
	if err != nil {
		return "", fmt.Errorf("yomitan: create temp archive: %w", err)
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := w.writeArchive(tmp, name, source, target, groups); err != nil {
		return "", fmt.Errorf("yomitan: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("yomitan: close temp archive: %w", err)
	}

	path := filepath.Join(dir, name+".zip")
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("yomitan: publish %s: %w", name, err)
	}

	return path, nil
}

// groupByLabel merges sets sharing a label, in first-appearance order.
func groupByLabel(sets []EntrySet) ([]bankGroup, error) {
	var groups []bankGroup
	index := make(map[string]int, len(sets))

	for _, set := range sets {
		if set.Label == "" {
			return nil, errors.New("entry set without a label")
		}
		i, ok := index[set.Label]
		if !ok {
			i = len(groups)
			index[set.Label] = i
			groups = append(groups, bankGroup{label: set.Label})
		}
		groups[i].terms = append(groups[i].terms, set.Terms...)
		groups[i].metas = append(groups[i].metas, set.Metas...)
	}

	return groups, nil
}

func (w *Writer) writeArchive(f *os.File, name string, source, target domain.Lang, groups []bankGroup) error {
	zw := zip.NewWriter(f)

	index := NewIndex(name, source, target, w.pub, w.now())
	if err := addPrettyJSON(zw, "index.json", index); err != nil {
		return err
	}

	for _, g := range groups {
		bank := 0
		for chunk := range slices.Chunk(g.terms, bankSize) {
			bank++
			if err := addJSON(zw, fmt.Sprintf("%s_bank_%d.json", g.label, bank), chunk); err != nil {
				return err
			}
		}

		bank = 0
		for chunk := range slices.Chunk(g.metas, bankSize) {
			bank++
			if err := addJSON(zw, fmt.Sprintf("%s_meta_bank_%d.json", g.label, bank), chunk); err != nil {
				return err
			}
		}
	}

	return zw.Close()
}

func addJSON(zw *zip.Writer, name string, v any) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}
	if err := json.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return nil
}

func addPrettyJSON(zw *zip.Writer, name string, v any) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("add %s: %w", name, err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return nil
}
