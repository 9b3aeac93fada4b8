package dict

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/yomigen/internal/kaikki"
)

// Rule is one field-value equality check against a record. Valid fields:
// word, pos, lang, lang_code.
type Rule struct {
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// Rules is the globally configured record filter, applied to every record
// before any kind-specific selection.
type Rules struct {
	// Filter keeps only records matching every rule.
	Filter []Rule `yaml:"filter"`
	// Reject drops records matching any rule.
	Reject []Rule `yaml:"reject"`
}

// LoadRules reads a rule file (YAML with filter/reject lists).
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: read %s: %w", path, err)
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("rules: parse %s: %w", path, err)
	}

	for _, rule := range append(append([]Rule{}, r.Filter...), r.Reject...) {
		if !knownField(rule.Field) {
			return nil, fmt.Errorf("rules: unknown field %q in %s", rule.Field, path)
		}
	}

	return &r, nil
}

// ParseRule parses the command-line form "field=value".
func ParseRule(s string) (Rule, error) {
	field, value, ok := strings.Cut(s, "=")
	if !ok {
		return Rule{}, fmt.Errorf("rules: %q is not field=value", s)
	}
	field = strings.TrimSpace(field)
	if !knownField(field) {
		return Rule{}, fmt.Errorf("rules: unknown field %q", field)
	}
	return Rule{Field: field, Value: value}, nil
}

// Rejected reports whether the record is dropped by the global rules:
// it matches any reject rule, or fails to match some filter rule.
func (r *Rules) Rejected(entry *kaikki.WordEntry) bool {
	if r == nil {
		return false
	}

	for _, rule := range r.Reject {
		if fieldValue(rule.Field, entry) == rule.Value {
			return true
		}
	}
	for _, rule := range r.Filter {
		if fieldValue(rule.Field, entry) != rule.Value {
			return true
		}
	}

	return false
}

func knownField(field string) bool {
	switch field {
	case "word", "pos", "lang", "lang_code":
		return true
	}
	return false
}

func fieldValue(field string, entry *kaikki.WordEntry) string {
	switch field {
	case "word":
		return entry.Word
	case "pos":
		return entry.POS
	case "lang":
		return entry.Lang
	case "lang_code":
		return entry.LangCode
	}
	return ""
}
