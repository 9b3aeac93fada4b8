// Package release prepares the per-edition record caches and fans the
// dictionary build matrix out across bounded worker pools.
package release

import (
	"context"
	"fmt"

	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/kaikki"
	"github.com/heartmarshall/yomigen/internal/wikidb"
)

// Source adapts the per-edition record caches to the pipeline's record
// source port. Stores are opened once during preparation and then
// shared read-only by every build worker.
type Source struct {
	stores map[domain.Edition]*wikidb.Store
}

// Records streams one language's cached records out of one edition.
func (s *Source) Records(ctx context.Context, edition domain.Edition, lang domain.Lang, fn func(*kaikki.WordEntry) error) error {
	store, ok := s.stores[edition]
	if !ok {
		return fmt.Errorf("%w: edition %s has no prepared cache", domain.ErrDatasetMissing, edition)
	}
	return store.ByLanguage(ctx, lang, fn)
}

// Close closes every open cache.
func (s *Source) Close() error {
	var firstErr error
	for _, store := range s.stores {
		if err := store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
