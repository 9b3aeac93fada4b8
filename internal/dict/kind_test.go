package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/yomigen/internal/domain"
)

func TestCheckCombination_PerEdition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edition domain.Edition
		source  domain.Lang
		target  domain.Lang
		wantErr bool
	}{
		{name: "foreign source into edition lang", edition: "en", source: "ru", target: "en"},
		{name: "source equals edition lang", edition: "en", source: "en", target: "en", wantErr: true},
		{name: "simple source under real edition", edition: "en", source: "simple", target: "en", wantErr: true},
		{name: "simple target under real edition", edition: "de", source: "ru", target: "simple", wantErr: true},
		{name: "real source under simple edition", edition: "simple", source: "ru", target: "simple", wantErr: true},
		{name: "all simple", edition: "simple", source: "simple", target: "simple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckCombination(ScopePerEdition, tt.edition, tt.source, tt.target)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrBadCombination)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCheckCombination_AllEditions(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckCombination(ScopeAllEditions, "en", "ru", "de"))
	// Merged kinds may pair a language with itself.
	require.NoError(t, CheckCombination(ScopeAllEditions, "en", "de", "de"))

	err := CheckCombination(ScopeAllEditions, "en", "simple", "de")
	require.ErrorIs(t, err, domain.ErrBadCombination)
	err = CheckCombination(ScopeAllEditions, "en", "de", "simple")
	require.ErrorIs(t, err, domain.ErrBadCombination)
}

func TestResolveKey(t *testing.T) {
	t.Parallel()

	langs := Langs{Edition: "en", Source: "ru", Target: "de"}

	per := resolveKey(ScopePerEdition, langs)
	assert.Equal(t, Key{Scope: ScopePerEdition, Edition: "en", Source: "ru", Target: "de"}, per)

	merged := resolveKey(ScopeAllEditions, langs)
	assert.Equal(t, Key{Scope: ScopeAllEditions, Source: "ru", Target: "de"}, merged)
	assert.Empty(t, merged.Edition)

	// Every edition funnels into the same merged key.
	other := resolveKey(ScopeAllEditions, Langs{Edition: "fr", Source: "ru", Target: "de"})
	assert.Equal(t, merged, other)
}

func TestKeyLangs_MergedHasNoEdition(t *testing.T) {
	t.Parallel()

	key := resolveKey(ScopeAllEditions, Langs{Edition: "en", Source: "ru", Target: "de"})
	langs := key.Langs()
	assert.Empty(t, langs.Edition)
	assert.Equal(t, domain.Lang("ru"), langs.Source)
	assert.Equal(t, domain.Lang("de"), langs.Target)
}
