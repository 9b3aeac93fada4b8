// Package kaikki models the raw Wiktionary word entries extracted by
// kaikki.org and streams them out of JSONL dumps.
package kaikki

// WordEntry is one lexical record from a Kaikki JSONL dump: a head word
// in one language plus its senses, translation cross-references, sounds
// and inflected forms. Only the fields the pipelines consume are kept.
type WordEntry struct {
	Word         string        `json:"word"`
	POS          string        `json:"pos"`
	Lang         string        `json:"lang,omitempty"`
	LangCode     string        `json:"lang_code"`
	Senses       []Sense       `json:"senses,omitempty"`
	Translations []Translation `json:"translations,omitempty"`
	Sounds       []Sound       `json:"sounds,omitempty"`
	Forms        []Form        `json:"forms,omitempty"`
}

// Sense is one meaning of a word entry.
type Sense struct {
	Glosses []string `json:"glosses,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Translation is one cross-reference to a word in another language,
// optionally disambiguated by a sense label.
type Translation struct {
	Lang  string `json:"lang,omitempty"`
	Code  string `json:"code"`
	Sense string `json:"sense,omitempty"`
	Word  string `json:"word"`
	Roman string `json:"roman,omitempty"`
}

// Sound is one pronunciation record. Entries mix IPA transcriptions
// with audio links; only transcriptions carry a non-empty IPA.
type Sound struct {
	IPA  string   `json:"ipa,omitempty"`
	Tags []string `json:"tags,omitempty"`
}

// Form is one inflected or alternative written form of the head word.
type Form struct {
	Form string   `json:"form"`
	Tags []string `json:"tags,omitempty"`
}

// Trivial reports whether the translation carries no usable target:
// empty word or missing language code.
func (t Translation) Trivial() bool {
	return t.Word == "" || t.Code == ""
}

// IPAs collects the entry's non-empty IPA transcriptions in order.
func (e *WordEntry) IPAs() []string {
	var ipas []string
	for _, s := range e.Sounds {
		if s.IPA != "" {
			ipas = append(ipas, s.IPA)
		}
	}
	return ipas
}

// Reading resolves the reading of the head word from its forms
// (kana for Japanese entries, romanization where provided).
// Returns "" when the entry carries none; callers fall back to the
// head word itself.
func (e *WordEntry) Reading() string {
	for _, f := range e.Forms {
		if f.Form == "" || f.Form == e.Word {
			continue
		}
		for _, tag := range f.Tags {
			switch tag {
			case "hiragana", "katakana", "romanization":
				return f.Form
			}
		}
	}
	return ""
}
