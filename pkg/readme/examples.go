package readme

import (
	"fmt"
	"strings"
)

const (
	// maxExamples bounds the response payload regardless of how many code
	// blocks a README contains.
	maxExamples = 10

	// minCodeLength filters out trivial blocks ("$ ls", "...").
	minCodeLength = 10

	// minDescriptionLength filters out noise descriptions ("e.g.:", "Then:").
	minDescriptionLength = 10

	// maxDescriptionLines caps the backward scan for a block description.
	maxDescriptionLines = 3

	// fallbackTitle names examples found by the whole-document fallback.
	fallbackTitle = "Usage Example"
)

func (e *Extractor) extractExamples(doc string) []UsageExample {
	lines := splitLines(doc)
	headings := scanHeadings(lines, 0, len(lines))

	var candidates []UsageExample

	usage := e.usageHeadings(headings)
	if len(usage) == 0 {
		// No recognized heading scheme: fall back to every fenced block in
		// the document so code is not lost entirely.
		for _, b := range scanBlocks(lines, 0, len(lines)) {
			candidates = append(candidates, UsageExample{
				Title:       fallbackTitle,
				Description: e.describeBlock(lines, b.start),
				Code:        b.body,
				Language:    e.normalizeLanguage(b.lang),
			})
		}
	} else {
		for _, h := range usage {
			end := sectionEnd(headings, h, len(lines))
			blocks := scanBlocks(lines, h.line+1, end)
			for i, b := range blocks {
				title := h.text
				if len(blocks) > 1 {
					title = fmt.Sprintf("%s %d", h.text, i+1)
				}
				candidates = append(candidates, UsageExample{
					Title:       title,
					Description: e.describeBlock(lines, b.start),
					Code:        b.body,
					Language:    e.normalizeLanguage(b.lang),
				})
			}
		}
	}

	var out []UsageExample
	for _, c := range candidates {
		if !validExample(c.Code) {
			continue
		}
		c.Title = strings.TrimSpace(c.Title)
		c.Description = strings.TrimSpace(c.Description)
		c.Code = strings.TrimSpace(c.Code)
		c.Language = strings.TrimSpace(c.Language)
		out = append(out, c)
		if len(out) == maxExamples {
			break
		}
	}
	return out
}

// usageHeadings filters headings down to those whose text contains one of
// the configured usage-indicating phrases (case-insensitive).
func (e *Extractor) usageHeadings(headings []heading) []heading {
	var usage []heading
	for _, h := range headings {
		text := strings.ToLower(h.text)
		for _, phrase := range e.cfg.UsageHeadings {
			if strings.Contains(text, strings.ToLower(phrase)) {
				usage = append(usage, h)
				break
			}
		}
	}
	return usage
}

// sectionEnd returns the line where the section opened by h ends: the next
// heading of any level, or the end of the document.
func sectionEnd(headings []heading, h heading, docLen int) int {
	for _, other := range headings {
		if other.line > h.line {
			return other.line
		}
	}
	return docLen
}

// describeBlock derives a description for the block opening at fenceLine by
// scanning backward through up to maxDescriptionLines non-empty lines,
// stopping early at a heading or another fence. Collected lines are joined
// with single spaces in document order; short results are discarded as
// noise.
func (e *Extractor) describeBlock(lines []string, fenceLine int) string {
	var collected []string
	for i := fenceLine - 1; i >= 0 && len(collected) < maxDescriptionLines; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if isFence(lines[i]) {
			break
		}
		if _, _, ok := parseHeading(lines[i]); ok {
			break
		}
		collected = append(collected, line)
	}

	// Reverse back into document order.
	for l, r := 0, len(collected)-1; l < r; l, r = l+1, r-1 {
		collected[l], collected[r] = collected[r], collected[l]
	}
	desc := strings.Join(collected, " ")
	if len(desc) <= minDescriptionLength {
		return ""
	}
	return desc
}

// validExample applies the noise filter: too-short code, import/comment-only
// blocks, and shell transcripts are not usage examples.
func validExample(code string) bool {
	code = strings.TrimSpace(code)
	if len(code) < minCodeLength {
		return false
	}
	if importsAndCommentsOnly(code) {
		return false
	}
	if looksLikeTranscript(code) {
		return false
	}
	return true
}

// importsAndCommentsOnly reports whether every non-blank line is an import
// statement or a comment.
func importsAndCommentsOnly(code string) bool {
	for _, line := range strings.Split(code, "\n") {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		if isImportLine(t) || isCommentLine(t) {
			continue
		}
		return false
	}
	return true
}

func isImportLine(t string) bool {
	return t == "import" ||
		strings.HasPrefix(t, "import ") ||
		strings.HasPrefix(t, "@testable import ")
}

func isCommentLine(t string) bool {
	return strings.HasPrefix(t, "//") ||
		strings.HasPrefix(t, "/*") ||
		strings.HasPrefix(t, "*") ||
		strings.HasPrefix(t, "#")
}

// looksLikeTranscript detects captured shell output: checkmark and arrow
// glyphs, or lines starting with a "$ " prompt.
func looksLikeTranscript(code string) bool {
	if strings.ContainsRune(code, '✓') || strings.ContainsRune(code, '→') {
		return true
	}
	for _, line := range strings.Split(code, "\n") {
		t := strings.TrimSpace(line)
		if t == "$" || strings.HasPrefix(t, "$ ") {
			return true
		}
	}
	return false
}

func toLowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
