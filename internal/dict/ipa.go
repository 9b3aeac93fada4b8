package dict

import (
	"cmp"
	"slices"
	"strings"

	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/kaikki"
	"github.com/heartmarshall/yomigen/internal/yomitan"
)

// IPAItem is one head word with its reading and phonetic transcriptions.
type IPAItem struct {
	Word           string
	Reading        string
	Transcriptions []string
}

// IPA builds per-edition pronunciation dictionaries from the phonetic
// transcriptions attached to the source language's records.
type IPA struct{}

var _ Kind[IPAItem] = IPA{}

func (IPA) Name() string        { return "ipa" }
func (IPA) Scope() EditionScope { return ScopePerEdition }

func (IPA) RecordLang(langs Langs) domain.Lang { return langs.Source }

// Keep drops records without transcriptions: they cannot contribute
// pronunciation entries.
func (IPA) Keep(_ domain.Lang, entry *kaikki.WordEntry) bool {
	return len(entry.IPAs()) > 0
}

func (IPA) Preprocess(Langs, *kaikki.WordEntry, *Bucket[IPAItem]) {}

func (IPA) Process(_ Langs, entry *kaikki.WordEntry, bucket *Bucket[IPAItem]) {
	bucket.Push(IPAItem{
		Word:           entry.Word,
		Reading:        readingOf(entry),
		Transcriptions: dedup(entry.IPAs()),
	})
}

func (IPA) Postprocess(*Bucket[IPAItem]) {}

func (IPA) Emit(_ Langs, bucket *Bucket[IPAItem]) []yomitan.EntrySet {
	metas := make([]yomitan.TermMeta, 0, bucket.Len())
	for _, it := range bucket.Items {
		metas = append(metas, yomitan.TermMeta{
			Expression:     it.Word,
			Reading:        it.Reading,
			Transcriptions: it.Transcriptions,
		})
	}
	return []yomitan.EntrySet{{Label: "term", Metas: metas}}
}

// IPAMerged collapses every edition's pronunciation records for one
// language into a single deduplicated, word-sorted dictionary.
type IPAMerged struct {
	IPA
}

var _ Kind[IPAItem] = IPAMerged{}

func (IPAMerged) Name() string        { return "ipa-merged" }
func (IPAMerged) Scope() EditionScope { return ScopeAllEditions }

// Postprocess deduplicates by word plus transcription list, keeping the
// first occurrence (and its reading), then sorts by word. The sort is
// stable: equal words stay in insertion order.
func (IPAMerged) Postprocess(bucket *Bucket[IPAItem]) {
	seen := make(map[string]struct{}, len(bucket.Items))
	kept := bucket.Items[:0]
	for _, it := range bucket.Items {
		k := ipaKey(it)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		kept = append(kept, it)
	}
	bucket.Items = kept

	slices.SortStableFunc(bucket.Items, func(a, b IPAItem) int {
		return cmp.Compare(a.Word, b.Word)
	})
}

func ipaKey(it IPAItem) string {
	return it.Word + "\x00" + strings.Join(it.Transcriptions, "\x00")
}
