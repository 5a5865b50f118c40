package catalog

import (
	"regexp"
	"strings"
)

// Variant suffixes that distinguish releases of the same recording:
// remixes, live takes, featured-artist credits and so on. Stripping
// them lets the dedupe pass collapse near-identical search hits.
var variantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*\((?:[^)]*(?:remix|reprise|version|edit|feat\.|featuring|ft\.|with|from|soundtrack|original|instrumental|acoustic|live|radio|remaster|lofi|lo-fi)[^)]*)\)`),
	regexp.MustCompile(`(?i)\s*-\s*.*(?:remix|version|edit|remaster|lofi|lo-fi|slowed|reverb|live|acoustic).*$`),
}

var (
	nonWord    = regexp.MustCompile(`[^\w\s]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// normalizeTitle reduces a track title to a comparable form for
// duplicate detection.
func normalizeTitle(title string) string {
	name := strings.ToLower(title)

	for _, p := range variantPatterns {
		name = p.ReplaceAllString(name, "")
	}

	name = nonWord.ReplaceAllString(name, "")
	name = whitespace.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// dedupe removes candidates that repeat an already-seen catalog ID or
// normalized title, preserving input order.
func dedupe(candidates []Candidate) []Candidate {
	seenIDs := make(map[string]bool, len(candidates))
	seenTitles := make(map[string]bool, len(candidates))

	var unique []Candidate
	for _, c := range candidates {
		title := normalizeTitle(c.Title)
		if seenIDs[c.ID] || seenTitles[title] {
			continue
		}
		seenIDs[c.ID] = true
		seenTitles[title] = true
		unique = append(unique, c)
	}
	return unique
}
