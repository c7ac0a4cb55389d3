package readme

import "strings"

const (
	// maxKeywords bounds the keyword list.
	maxKeywords = 10

	// Heading-derived keywords must have 2 < len < 20; anything shorter is
	// an abbreviation, anything longer is a sentence.
	minHeadingKeywordLen = 3
	maxHeadingKeywordLen = 19
)

func (e *Extractor) extractKeywords(doc string) []string {
	if strings.TrimSpace(doc) == "" {
		return nil
	}

	lower := strings.ToLower(doc)
	seen := make(map[string]bool)
	var out []string
	add := func(kw string) {
		if kw == "" || seen[kw] {
			return
		}
		seen[kw] = true
		out = append(out, kw)
	}

	// Vocabulary matches come first so truncation order is stable.
	for _, term := range e.cfg.Vocabulary {
		canonical := toLowerTrim(term)
		if canonical != "" && strings.Contains(lower, canonical) {
			add(canonical)
		}
	}

	// Then short heading texts, in document order.
	lines := splitLines(doc)
	for _, h := range scanHeadings(lines, 0, len(lines)) {
		text := toLowerTrim(h.text)
		if len(text) >= minHeadingKeywordLen && len(text) <= maxHeadingKeywordLen {
			add(text)
		}
	}

	if len(out) > maxKeywords {
		out = out[:maxKeywords]
	}
	return out
}
