// Package dict is the transform pipeline and aggregation engine: it turns
// cached kaikki records into Yomitan entry sets. Each dictionary kind plugs
// its own selection, transformation, merging and projection logic into the
// shared pipeline contract.
package dict

import (
	"fmt"

	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/kaikki"
	"github.com/heartmarshall/yomigen/internal/yomitan"
)

// Langs identifies one (edition, source, target) build combination.
type Langs struct {
	Edition domain.Edition
	Source  domain.Lang
	Target  domain.Lang
}

// EditionScope says whether a kind's buckets belong to one edition or
// collapse every edition into a shared bucket.
type EditionScope int

const (
	// ScopePerEdition keys buckets by (edition, source, target).
	ScopePerEdition EditionScope = iota
	// ScopeAllEditions collapses all editions into one (source, target) bucket.
	ScopeAllEditions
)

// Key is the aggregation identity of one IR bucket.
type Key struct {
	Scope   EditionScope
	Edition domain.Edition // unset when Scope is ScopeAllEditions
	Source  domain.Lang
	Target  domain.Lang
}

// Langs returns the triple handed to Emit. Merged-scope keys carry an
// empty edition: no single edition owns a collapsed bucket.
func (k Key) Langs() Langs {
	return Langs{Edition: k.Edition, Source: k.Source, Target: k.Target}
}

func resolveKey(scope EditionScope, langs Langs) Key {
	if scope == ScopeAllEditions {
		return Key{Scope: ScopeAllEditions, Source: langs.Source, Target: langs.Target}
	}
	return Key{Scope: ScopePerEdition, Edition: langs.Edition, Source: langs.Source, Target: langs.Target}
}

// Kind is the contract one dictionary kind implements. The pipeline calls
// the operations in order: Keep (after the global rules), Preprocess,
// Process while scanning, then Postprocess and Emit once per drained bucket.
type Kind[I any] interface {
	// Name is the short kind tag used in artifact names and logs.
	Name() string

	// Scope decides the bucket identity rule for this kind.
	Scope() EditionScope

	// RecordLang picks which language's cached records feed this kind for
	// the given combination.
	RecordLang(langs Langs) domain.Lang

	// Keep reports whether the record enters the transform at all.
	Keep(lang domain.Lang, entry *kaikki.WordEntry) bool

	// Preprocess may mutate the entry in place and push preliminary items.
	Preprocess(langs Langs, entry *kaikki.WordEntry, bucket *Bucket[I])

	// Process appends zero or more IR items derived from the entry.
	Process(langs Langs, entry *kaikki.WordEntry, bucket *Bucket[I])

	// Postprocess reduces a completed bucket in place.
	Postprocess(bucket *Bucket[I])

	// Emit projects a post-processed bucket into labeled entry sets.
	// It must not mutate anything outside the returned sets.
	Emit(langs Langs, bucket *Bucket[I]) []yomitan.EntrySet
}

// CheckCombination validates a combination before any pipeline work starts.
//
// The simple placeholder edition only pairs with the simple language, and
// within one edition the source must differ from the edition's own
// language: the self pair carries no cross-language data. Merged scope has
// no owning edition, so there the placeholder is rejected outright.
func CheckCombination(scope EditionScope, edition domain.Edition, source, target domain.Lang) error {
	if scope == ScopeAllEditions {
		if source == domain.LangSimple || target == domain.LangSimple {
			return fmt.Errorf("%w: %s-%s: simple is not a real language in merged scope",
				domain.ErrBadCombination, source, target)
		}
		return nil
	}

	editionLang := edition.Lang()
	simple := 0
	for _, l := range []domain.Lang{editionLang, source, target} {
		if l == domain.LangSimple {
			simple++
		}
	}
	if simple != 0 && simple != 3 {
		return fmt.Errorf("%w: %s edition with %s-%s: simple only pairs with itself",
			domain.ErrBadCombination, edition, source, target)
	}

	if source == editionLang && source != domain.LangSimple {
		return fmt.Errorf("%w: source %s equals the %s edition's own language",
			domain.ErrBadCombination, source, edition)
	}

	return nil
}
