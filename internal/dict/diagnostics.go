package dict

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/heartmarshall/yomigen/internal/kaikki"
	"github.com/heartmarshall/yomigen/internal/tags"
)

type tagStat struct {
	count int
	first string
}

// Diagnostics counts, per part-of-speech tag, how many entries were
// accepted or rejected by the tag lookup, remembering the first word
// that triggered each tag. Purely observational. A nil *Diagnostics is
// a valid no-op sink.
type Diagnostics struct {
	accepted map[string]*tagStat
	rejected map[string]*tagStat
}

// NewDiagnostics returns an empty sink.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{
		accepted: make(map[string]*tagStat),
		rejected: make(map[string]*tagStat),
	}
}

// Accept records a recognized tag and the word that carried it.
func (d *Diagnostics) Accept(tag, word string) {
	if d == nil {
		return
	}
	record(d.accepted, tag, word)
}

// Reject records an unrecognized tag and the word that carried it.
func (d *Diagnostics) Reject(tag, word string) {
	if d == nil {
		return
	}
	record(d.rejected, tag, word)
}

func record(m map[string]*tagStat, tag, word string) {
	if s, ok := m[tag]; ok {
		s.count++
		return
	}
	m[tag] = &tagStat{count: 1, first: word}
}

// Empty reports whether nothing has been recorded.
func (d *Diagnostics) Empty() bool {
	return d == nil || (len(d.accepted) == 0 && len(d.rejected) == 0)
}

// MarshalJSON renders both sections with tags ordered by descending
// count (ties by tag name), each tag mapping to [count, firstWord].
func (d *Diagnostics) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"rejected":`)
	if err := marshalSection(&buf, d.rejected); err != nil {
		return nil, err
	}
	buf.WriteString(`,"accepted":`)
	if err := marshalSection(&buf, d.accepted); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalSection(buf *bytes.Buffer, m map[string]*tagStat) error {
	type entry struct {
		tag  string
		stat *tagStat
	}

	ordered := make([]entry, 0, len(m))
	for tag, stat := range m {
		ordered = append(ordered, entry{tag, stat})
	}
	slices.SortFunc(ordered, func(a, b entry) int {
		if c := cmp.Compare(b.stat.count, a.stat.count); c != 0 {
			return c
		}
		return cmp.Compare(a.tag, b.tag)
	})

	buf.WriteByte('{')
	for i, e := range ordered {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.tag)
		if err != nil {
			return err
		}
		val, err := json.Marshal([]any{e.stat.count, e.stat.first})
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return nil
}

// WriteFile writes the report as indented JSON, creating parent
// directories as needed.
func (d *Diagnostics) WriteFile(path string) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("diagnostics: marshal: %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("diagnostics: indent: %w", err)
	}
	out.WriteByte('\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("diagnostics: %w", err)
	}
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("diagnostics: %w", err)
	}
	return nil
}

// defTag resolves the viewer tag for an entry's part of speech and
// reports the lookup outcome. Unknown POS names fall through unchanged.
func defTag(entry *kaikki.WordEntry, diag *Diagnostics) string {
	if short, ok := tags.ShortPOS(entry.POS); ok {
		diag.Accept(short, entry.Word)
		return short
	}
	diag.Reject(entry.POS, entry.Word)
	return entry.POS
}
