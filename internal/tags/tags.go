// Package tags maps Kaikki part-of-speech names to the short tags the
// dictionary viewer displays next to a definition.
package tags

import "strings"

// shortPOS maps lowercase Kaikki POS strings to viewer tag names.
var shortPOS = map[string]string{
	"adj":          "adj",
	"adjective":    "adj",
	"adv":          "adv",
	"adverb":       "adv",
	"article":      "art",
	"character":    "char",
	"conj":         "conj",
	"conjunction":  "conj",
	"det":          "det",
	"determiner":   "det",
	"infix":        "infix",
	"interfix":     "interfix",
	"intj":         "intj",
	"interjection": "intj",
	"name":         "name",
	"noun":         "n",
	"num":          "num",
	"particle":     "part",
	"phrase":       "phrase",
	"postp":        "postp",
	"prefix":       "prefix",
	"prep":         "prep",
	"preposition":  "prep",
	"prep_phrase":  "prep",
	"pron":         "pron",
	"pronoun":      "pron",
	"proverb":      "proverb",
	"punct":        "punct",
	"suffix":       "suffix",
	"symbol":       "sym",
	"verb":         "v",
}

// ShortPOS returns the short viewer tag for a Kaikki POS name.
// The lookup is case-insensitive. The second return reports whether
// the POS was recognized; callers fall back to the raw name when not.
func ShortPOS(pos string) (string, bool) {
	short, ok := shortPOS[strings.ToLower(pos)]
	return short, ok
}
