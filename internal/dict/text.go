package dict

import (
	"strings"

	"github.com/heartmarshall/yomigen/internal/kaikki"
)

// dedup drops repeated strings, keeping first occurrences in order.
// Dump translation tables routinely list the same word under several
// senses.
func dedup(ss []string) []string {
	if len(ss) < 2 {
		return ss
	}

	seen := make(map[string]struct{}, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// normalizeTranslations rewrites translation fields in place before
// the transform reads them.
func normalizeTranslations(entry *kaikki.WordEntry) {
	for i := range entry.Translations {
		t := &entry.Translations[i]
		t.Sense = kaikki.CleanSense(t.Sense)
		t.Word = strings.TrimSpace(t.Word)
	}
}

// readingOf falls back to the head word when the entry carries no
// explicit reading form.
func readingOf(entry *kaikki.WordEntry) string {
	if r := entry.Reading(); r != "" {
		return r
	}
	return entry.Word
}
