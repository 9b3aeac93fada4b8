// Package yomitan renders dictionary entries into the Yomitan dictionary
// format (format version 3) and packages them into importable zip archives.
package yomitan

import "encoding/json"

// TermEntry is one term_bank row: a head word with its definitions.
// Sequence is assigned by the writer; entries sharing a sequence are
// grouped by the viewer, so every entry gets its own.
type TermEntry struct {
	Expression  string
	Reading     string
	DefTags     string
	Rules       string
	Definitions []Definition
	Sequence    int64
}

// MarshalJSON renders the v3 term bank row:
// [expression, reading, definitionTags, rules, score, glossary, sequence, termTags].
func (e TermEntry) MarshalJSON() ([]byte, error) {
	defs := e.Definitions
	if defs == nil {
		defs = []Definition{}
	}
	return json.Marshal([]any{
		e.Expression, e.Reading, e.DefTags, e.Rules, 0, defs, e.Sequence, "",
	})
}

// TermMeta is one term_meta_bank row carrying phonetic transcriptions.
type TermMeta struct {
	Expression     string
	Reading        string
	Transcriptions []string
}

// MarshalJSON renders the meta row: [expression, "ipa", {reading, transcriptions}].
func (m TermMeta) MarshalJSON() ([]byte, error) {
	type transcription struct {
		IPA string `json:"ipa"`
	}

	ts := make([]transcription, 0, len(m.Transcriptions))
	for _, t := range m.Transcriptions {
		ts = append(ts, transcription{IPA: t})
	}

	data := struct {
		Reading        string          `json:"reading"`
		Transcriptions []transcription `json:"transcriptions"`
	}{m.Reading, ts}

	return json.Marshal([]any{m.Expression, "ipa", data})
}

// EntrySet is one labeled batch of entries produced by a dictionary kind.
// The label is the bank family stem inside the archive: "term" sets fill
// the standard term_bank / term_meta_bank files. Sets sharing a label
// feed one bank sequence.
type EntrySet struct {
	Label string
	Terms []TermEntry
	Metas []TermMeta
}

// Empty reports whether the set carries no entries at all.
func (s EntrySet) Empty() bool {
	return len(s.Terms) == 0 && len(s.Metas) == 0
}
