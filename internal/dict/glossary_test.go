package dict

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/yomigen/internal/domain"
	"github.com/heartmarshall/yomigen/internal/kaikki"
	"github.com/heartmarshall/yomigen/internal/yomitan"
)

func glossaryLangs() Langs {
	return Langs{Edition: "en", Source: "ru", Target: "en"}
}

func TestGlossary_Process_GroupsBySense(t *testing.T) {
	t.Parallel()

	entry := &kaikki.WordEntry{
		Word:     "собака",
		POS:      "noun",
		LangCode: "ru",
		Translations: []kaikki.Translation{
			{Code: "en", Word: "dog"},
			{Code: "en", Word: "hound", Sense: "hunting dog"},
			{Code: "en", Word: "gundog", Sense: "hunting dog"},
			{Code: "en", Word: "mutt"},
		},
	}

	bucket := &Bucket[GlossaryItem]{}
	Glossary{}.Process(glossaryLangs(), entry, bucket)

	require.Equal(t, 1, bucket.Len())
	item := bucket.Items[0]
	assert.Equal(t, "собака", item.Word)
	assert.Equal(t, "собака", item.Reading)
	assert.Equal(t, "n", item.Tag)

	// Two flat definitions, then one structured sense block.
	require.Len(t, item.Definitions, 3)
	assert.Equal(t, "dog", item.Definitions[0].Text)
	assert.Equal(t, "mutt", item.Definitions[1].Text)

	block, err := json.Marshal(item.Definitions[2])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "structured-content",
		"content": {"tag": "div", "content": [
			{"tag": "span", "content": "hunting dog"},
			{"tag": "ul", "content": [
				{"tag": "li", "content": "hound"},
				{"tag": "li", "content": "gundog"}
			]}
		]}
	}`, string(block))
}

func TestGlossary_Process_IgnoresOtherTargets(t *testing.T) {
	t.Parallel()

	entry := &kaikki.WordEntry{
		Word: "собака",
		POS:  "noun",
		Translations: []kaikki.Translation{
			{Code: "de", Word: "Hund"},
			{Code: "fr", Word: "chien"},
		},
	}

	bucket := &Bucket[GlossaryItem]{}
	Glossary{}.Process(glossaryLangs(), entry, bucket)

	assert.Equal(t, 0, bucket.Len())
}

func TestGlossary_Process_SkipsTrivialTranslations(t *testing.T) {
	t.Parallel()

	entry := &kaikki.WordEntry{
		Word: "кошка",
		POS:  "noun",
		Translations: []kaikki.Translation{
			{Code: "en", Word: ""},
			{Code: "", Word: "cat"},
		},
	}

	bucket := &Bucket[GlossaryItem]{}
	Glossary{}.Process(glossaryLangs(), entry, bucket)

	assert.Equal(t, 0, bucket.Len())
}

func TestGlossary_Process_DeduplicatesWords(t *testing.T) {
	t.Parallel()

	entry := &kaikki.WordEntry{
		Word: "кошка",
		POS:  "noun",
		Translations: []kaikki.Translation{
			{Code: "en", Word: "cat"},
			{Code: "en", Word: "cat"},
		},
	}

	bucket := &Bucket[GlossaryItem]{}
	Glossary{}.Process(glossaryLangs(), entry, bucket)

	require.Equal(t, 1, bucket.Len())
	require.Len(t, bucket.Items[0].Definitions, 1)
	assert.Equal(t, "cat", bucket.Items[0].Definitions[0].Text)
}

func TestGlossary_Process_AppendsRomanization(t *testing.T) {
	t.Parallel()

	entry := &kaikki.WordEntry{
		Word: "dog",
		POS:  "noun",
		Translations: []kaikki.Translation{
			{Code: "ru", Word: "собака", Roman: "sobaka"},
		},
	}

	langs := Langs{Edition: "en", Source: "en", Target: "ru"}
	bucket := &Bucket[GlossaryItem]{}
	Glossary{}.Process(langs, entry, bucket)

	require.Equal(t, 1, bucket.Len())
	assert.Equal(t, "собака (sobaka)", bucket.Items[0].Definitions[0].Text)
}

func TestGlossary_Process_UnknownPOSKeptRaw(t *testing.T) {
	t.Parallel()

	entry := &kaikki.WordEntry{
		Word: "ой",
		POS:  "exclamation",
		Translations: []kaikki.Translation{
			{Code: "en", Word: "oops"},
		},
	}

	diag := NewDiagnostics()
	bucket := &Bucket[GlossaryItem]{Diag: diag}
	Glossary{}.Process(glossaryLangs(), entry, bucket)

	require.Equal(t, 1, bucket.Len())
	assert.Equal(t, "exclamation", bucket.Items[0].Tag)
	assert.False(t, diag.Empty())
}

func TestGlossary_Preprocess_NormalizesTranslations(t *testing.T) {
	t.Parallel()

	entry := &kaikki.WordEntry{
		Word: "замок",
		POS:  "noun",
		Translations: []kaikki.Translation{
			{Code: "en", Word: " castle ", Sense: "a [[fortress|fortified]] building"},
		},
	}

	Glossary{}.Preprocess(glossaryLangs(), entry, nil)

	assert.Equal(t, "castle", entry.Translations[0].Word)
	assert.Equal(t, "a fortified building", entry.Translations[0].Sense)
}

func TestGlossary_Keep(t *testing.T) {
	t.Parallel()

	with := &kaikki.WordEntry{Translations: []kaikki.Translation{{Code: "en", Word: "dog"}}}
	without := &kaikki.WordEntry{}

	assert.True(t, Glossary{}.Keep(domain.Lang("ru"), with))
	assert.False(t, Glossary{}.Keep(domain.Lang("ru"), without))
}

func TestGlossary_Emit(t *testing.T) {
	t.Parallel()

	bucket := &Bucket[GlossaryItem]{}
	bucket.Push(GlossaryItem{
		Word:    "собака",
		Reading: "собака",
		Tag:     "n",
		Definitions: []yomitan.Definition{
			yomitan.Text("dog"),
			yomitan.Text("hound"),
		},
	})

	sets := Glossary{}.Emit(glossaryLangs(), bucket)

	require.Len(t, sets, 1)
	assert.Equal(t, "term", sets[0].Label)
	require.Len(t, sets[0].Terms, 1)
	term := sets[0].Terms[0]
	assert.Equal(t, "собака", term.Expression)
	assert.Equal(t, "n", term.DefTags)
	assert.Equal(t, "n", term.Rules)
	assert.Empty(t, sets[0].Metas)
}

func TestGlossary_RecordLang(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.Lang("ru"), Glossary{}.RecordLang(glossaryLangs()))
}
