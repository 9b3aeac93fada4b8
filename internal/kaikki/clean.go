package kaikki

import (
	"regexp"
	"strings"
)

// Sense labels in raw dumps keep fragments of wiki syntax: html tags
// left by expanded templates and [[target|display]] links. Removing
// them leaves runs of whitespace behind.
var (
	tagRe  = regexp.MustCompile(`<[^>]*>`)
	linkRe = regexp.MustCompile(`\[\[(?:[^|\]]*\|)?([^\]]*)\]\]`)
	gapRe  = regexp.MustCompile(`\s{2,}`)
)

// CleanSense normalizes a raw sense label for use as a grouping key:
// wiki markup resolves to its display text and whitespace collapses to
// single spaces. Tags are stripped before links so markup nested inside
// a link body does not survive into the result.
func CleanSense(s string) string {
	if s == "" {
		return ""
	}
	s = linkRe.ReplaceAllString(tagRe.ReplaceAllString(s, ""), "$1")
	return strings.TrimSpace(gapRe.ReplaceAllString(s, " "))
}
