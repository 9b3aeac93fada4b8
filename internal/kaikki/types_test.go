package kaikki

import "testing"

func TestTranslationTrivial(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tr   Translation
		want bool
	}{
		{name: "full translation", tr: Translation{Code: "fr", Word: "chien"}, want: false},
		{name: "missing word", tr: Translation{Code: "fr"}, want: true},
		{name: "missing code", tr: Translation{Word: "chien"}, want: true},
		{name: "empty", tr: Translation{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.tr.Trivial(); got != tt.want {
				t.Errorf("Trivial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWordEntryIPAs(t *testing.T) {
	t.Parallel()

	e := &WordEntry{
		Word: "dog",
		Sounds: []Sound{
			{IPA: "/dɒɡ/", Tags: []string{"UK"}},
			{Tags: []string{"audio"}}, // audio-only sound, no transcription
			{IPA: "/dɔɡ/", Tags: []string{"US"}},
		},
	}

	got := e.IPAs()
	want := []string{"/dɒɡ/", "/dɔɡ/"}
	if len(got) != len(want) {
		t.Fatalf("IPAs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IPAs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	empty := &WordEntry{Word: "dog"}
	if ipas := empty.IPAs(); ipas != nil {
		t.Errorf("IPAs() on entry without sounds = %v, want nil", ipas)
	}
}

func TestWordEntryReading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry WordEntry
		want  string
	}{
		{
			name: "hiragana form",
			entry: WordEntry{
				Word: "犬",
				Forms: []Form{
					{Form: "いぬ", Tags: []string{"hiragana"}},
					{Form: "inu", Tags: []string{"romanization"}},
				},
			},
			want: "いぬ",
		},
		{
			name: "romanization only",
			entry: WordEntry{
				Word:  "собака",
				Forms: []Form{{Form: "sobaka", Tags: []string{"romanization"}}},
			},
			want: "sobaka",
		},
		{
			name: "inflections are not readings",
			entry: WordEntry{
				Word:  "dog",
				Forms: []Form{{Form: "dogs", Tags: []string{"plural"}}},
			},
			want: "",
		},
		{
			name: "form equal to head word ignored",
			entry: WordEntry{
				Word:  "inu",
				Forms: []Form{{Form: "inu", Tags: []string{"romanization"}}},
			},
			want: "",
		},
		{
			name:  "no forms",
			entry: WordEntry{Word: "dog"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.entry.Reading(); got != tt.want {
				t.Errorf("Reading() = %q, want %q", got, tt.want)
			}
		})
	}
}
