package dict

import (
	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/kaikki"
	"github.com/heartmarshall/yomigen/internal/yomitan"
)

// CrossItem is one target-language lemma paired with the source-side
// words that shared a translation sense with it, tagged by the edition
// that contributed it.
type CrossItem struct {
	Lemma       string
	Tag         string
	Edition     domain.Edition
	Definitions []string
}

// CrossGlossary builds the merged cross-language dictionary. Every
// edition's own-language records act as pivots: a pivot whose
// translation table references both requested languages under the same
// sense links each target-side word to the full source-side word list.
type CrossGlossary struct{}

var _ Kind[CrossItem] = CrossGlossary{}

func (CrossGlossary) Name() string        { return "xgloss" }
func (CrossGlossary) Scope() EditionScope { return ScopeAllEditions }

// RecordLang reads the edition's own words; only they carry translation
// tables wide enough to bridge two foreign languages.
func (CrossGlossary) RecordLang(langs Langs) domain.Lang { return langs.Edition.Lang() }

func (CrossGlossary) Keep(_ domain.Lang, entry *kaikki.WordEntry) bool {
	return len(entry.Translations) > 0
}

func (CrossGlossary) Preprocess(_ Langs, entry *kaikki.WordEntry, _ *Bucket[CrossItem]) {
	normalizeTranslations(entry)
}

func (CrossGlossary) Process(langs Langs, entry *kaikki.WordEntry, bucket *Bucket[CrossItem]) {
	type sides struct {
		source, target []string
	}
	var order []string
	senses := make(map[string]*sides)

	for _, t := range entry.Translations {
		if t.Trivial() {
			continue
		}
		code := domain.Lang(t.Code)
		if code != langs.Source && code != langs.Target {
			continue
		}
		s, ok := senses[t.Sense]
		if !ok {
			s = &sides{}
			senses[t.Sense] = s
			order = append(order, t.Sense)
		}
		if code == langs.Source {
			s.source = append(s.source, t.Word)
		} else {
			s.target = append(s.target, t.Word)
		}
	}

	var tag string
	tagged := false
	for _, label := range order {
		s := senses[label]
		// A sense missing either side cannot link the two languages.
		if len(s.source) == 0 || len(s.target) == 0 {
			continue
		}
		if !tagged {
			tag = defTag(entry, bucket.Diag)
			tagged = true
		}
		defs := dedup(s.source)
		for _, lemma := range dedup(s.target) {
			bucket.Push(CrossItem{
				Lemma:       lemma,
				Tag:         tag,
				Edition:     langs.Edition,
				Definitions: defs,
			})
		}
	}
}

// Postprocess merges items by lemma: definition lists union into one
// duplicate-free list, and the first seen tag and edition win.
func (CrossGlossary) Postprocess(bucket *Bucket[CrossItem]) {
	var order []string
	merged := make(map[string]*CrossItem)
	seen := make(map[string]map[string]struct{})

	for _, it := range bucket.Items {
		m, ok := merged[it.Lemma]
		if !ok {
			first := it
			first.Definitions = nil
			merged[it.Lemma] = &first
			seen[it.Lemma] = make(map[string]struct{})
			order = append(order, it.Lemma)
			m = &first
		}
		set := seen[it.Lemma]
		for _, d := range it.Definitions {
			if _, dup := set[d]; dup {
				continue
			}
			set[d] = struct{}{}
			m.Definitions = append(m.Definitions, d)
		}
	}

	items := make([]CrossItem, 0, len(order))
	for _, lemma := range order {
		items = append(items, *merged[lemma])
	}
	bucket.Items = items
}

func (CrossGlossary) Emit(_ Langs, bucket *Bucket[CrossItem]) []yomitan.EntrySet {
	terms := make([]yomitan.TermEntry, 0, bucket.Len())
	for _, it := range bucket.Items {
		defs := make([]yomitan.Definition, 0, len(it.Definitions))
		for _, d := range it.Definitions {
			defs = append(defs, yomitan.Text(d))
		}
		terms = append(terms, yomitan.TermEntry{
			Expression:  it.Lemma,
			Reading:     it.Lemma,
			DefTags:     crossTags(it),
			Rules:       it.Tag,
			Definitions: defs,
		})
	}
	return []yomitan.EntrySet{{Label: "term", Terms: terms}}
}

// crossTags joins the part-of-speech tag with the contributing edition
// so merged entries keep their provenance visible in the viewer.
func crossTags(it CrossItem) string {
	if it.Tag == "" {
		return it.Edition.String()
	}
	return it.Tag + " " + it.Edition.String()
}
