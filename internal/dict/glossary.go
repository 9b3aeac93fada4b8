package dict

import (
	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/kaikki"
	"github.com/heartmarshall/yomigen/internal/yomitan"
)

// GlossaryItem is one source-language head word with its grouped
// target-language definitions.
type GlossaryItem struct {
	Word        string
	Reading     string
	Tag         string
	Definitions []yomitan.Definition
}

// Glossary builds per-edition bilingual dictionaries: source-language
// head words defined by their translations into the edition's own
// language.
type Glossary struct{}

var _ Kind[GlossaryItem] = Glossary{}

func (Glossary) Name() string        { return "gloss" }
func (Glossary) Scope() EditionScope { return ScopePerEdition }

// RecordLang reads the source language's records out of the edition
// dataset; the target side comes from their translation tables.
func (Glossary) RecordLang(langs Langs) domain.Lang { return langs.Source }

func (Glossary) Keep(_ domain.Lang, entry *kaikki.WordEntry) bool {
	return len(entry.Translations) > 0
}

// Preprocess normalizes the translation fields the transform reads:
// sense labels carry wiki markup in the raw dumps, words stray
// whitespace.
func (Glossary) Preprocess(_ Langs, entry *kaikki.WordEntry, _ *Bucket[GlossaryItem]) {
	normalizeTranslations(entry)
}

func (Glossary) Process(langs Langs, entry *kaikki.WordEntry, bucket *Bucket[GlossaryItem]) {
	defs := translationDefs(entry, langs.Target)
	if len(defs) == 0 {
		return
	}
	bucket.Push(GlossaryItem{
		Word:        entry.Word,
		Reading:     readingOf(entry),
		Tag:         defTag(entry, bucket.Diag),
		Definitions: defs,
	})
}

func (Glossary) Postprocess(*Bucket[GlossaryItem]) {}

func (Glossary) Emit(_ Langs, bucket *Bucket[GlossaryItem]) []yomitan.EntrySet {
	terms := make([]yomitan.TermEntry, 0, bucket.Len())
	for _, it := range bucket.Items {
		terms = append(terms, yomitan.TermEntry{
			Expression:  it.Word,
			Reading:     it.Reading,
			DefTags:     it.Tag,
			Rules:       it.Tag,
			Definitions: it.Definitions,
		})
	}
	return []yomitan.EntrySet{{Label: "term", Terms: terms}}
}

// translationDefs groups the entry's translations into the target
// language by sense label. Unlabeled translations become flat text
// definitions; each labeled sense becomes one structured block with
// the sense text above the word list.
func translationDefs(entry *kaikki.WordEntry, target domain.Lang) []yomitan.Definition {
	var flat, labels []string
	bySense := make(map[string][]string)

	for _, t := range entry.Translations {
		if t.Trivial() || domain.Lang(t.Code) != target {
			continue
		}
		word := translationText(t)
		if t.Sense == "" {
			flat = append(flat, word)
			continue
		}
		if _, ok := bySense[t.Sense]; !ok {
			labels = append(labels, t.Sense)
		}
		bySense[t.Sense] = append(bySense[t.Sense], word)
	}

	defs := make([]yomitan.Definition, 0, len(flat)+len(labels))
	for _, w := range dedup(flat) {
		defs = append(defs, yomitan.Text(w))
	}
	for _, label := range labels {
		defs = append(defs, senseBlock(label, dedup(bySense[label])))
	}
	return defs
}

func senseBlock(sense string, words []string) yomitan.Definition {
	items := make([]*yomitan.Node, 0, len(words))
	for _, w := range words {
		items = append(items, yomitan.Elem("li", yomitan.TextNode(w)))
	}
	return yomitan.Structured(yomitan.Elem("div",
		yomitan.Elem("span", yomitan.TextNode(sense)),
		yomitan.Elem("ul", items...),
	))
}

// translationText renders one translated word, with its romanization
// in parentheses when the dump provides one.
func translationText(t kaikki.Translation) string {
	if t.Roman != "" {
		return t.Word + " (" + t.Roman + ")"
	}
	return t.Word
}
