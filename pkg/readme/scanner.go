package readme

import "strings"

// heading is a parsed ATX markdown heading.
type heading struct {
	line  int    // line index in the document
	level int    // 1..6
	text  string // heading text with markers and surrounding space removed
}

// codeBlock is a fenced code block with its fence lines excluded.
type codeBlock struct {
	start int    // line index of the opening fence
	end   int    // line index of the closing fence (or last line if unterminated)
	lang  string // raw fence tag, may be empty
	body  string // verbatim body, leading/trailing blank lines trimmed
}

// splitLines splits a document into lines, handling both LF and CRLF.
func splitLines(doc string) []string {
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// parseHeading parses an ATX heading (1-6 leading '#' followed by a space
// or end of line). Returns ok=false for anything else, including fence
// lines and setext underlines, which this scanner does not treat as
// headings.
func parseHeading(line string) (level int, text string, ok bool) {
	trimmed := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(trimmed, "#") {
		return 0, "", false
	}
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level > 6 {
		return 0, "", false
	}
	rest := trimmed[level:]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return 0, "", false
	}
	// Trailing closing hashes ("## Usage ##") are decoration.
	text = strings.TrimSpace(rest)
	text = strings.TrimRight(text, "#")
	return level, strings.TrimSpace(text), true
}

// isFence reports whether a line opens or closes a triple-backtick fence.
func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "```")
}

// fenceTag returns the language tag following the opening fence markers.
func fenceTag(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.TrimSpace(strings.TrimLeft(trimmed, "`"))
}

// scanBlocks walks lines[from:to] with a simple in-fence/out-of-fence state
// machine and returns every fenced code block found. An unterminated fence
// extends to the end of the range.
func scanBlocks(lines []string, from, to int) []codeBlock {
	var blocks []codeBlock

	inFence := false
	var current codeBlock
	var body []string

	for i := from; i < to; i++ {
		line := lines[i]
		if !inFence {
			if isFence(line) {
				inFence = true
				current = codeBlock{start: i, lang: fenceTag(line)}
				body = body[:0]
			}
			continue
		}
		if isFence(line) {
			current.end = i
			current.body = trimBlankEdges(body)
			blocks = append(blocks, current)
			inFence = false
			continue
		}
		body = append(body, line)
	}

	if inFence {
		current.end = to - 1
		current.body = trimBlankEdges(body)
		blocks = append(blocks, current)
	}
	return blocks
}

// scanHeadings returns every ATX heading in lines[from:to].
func scanHeadings(lines []string, from, to int) []heading {
	var hs []heading
	inFence := false
	for i := from; i < to; i++ {
		if isFence(lines[i]) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if level, text, ok := parseHeading(lines[i]); ok {
			hs = append(hs, heading{line: i, level: level, text: text})
		}
	}
	return hs
}

// trimBlankEdges joins body lines, dropping leading and trailing blank lines
// while preserving interior spacing verbatim.
func trimBlankEdges(body []string) string {
	start, end := 0, len(body)
	for start < end && strings.TrimSpace(body[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(body[end-1]) == "" {
		end--
	}
	return strings.Join(body[start:end], "\n")
}
