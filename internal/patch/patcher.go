// Package patch applies anchor-based text injections to source files that this
// tool did not author. It never parses the host language: every insertion point
// is found by a small, enumerable set of textual rules.
//
// All functions are pure. The same text and descriptor always produce the same
// output and nothing here touches the filesystem.
package patch

import (
	"regexp"
	"strings"
)

// Apply applies d to text and returns the new text with the outcome.
// When the outcome is not Applied the returned text is the input, unmodified.
func Apply(text string, d Descriptor) (string, Result) {
	marker := d.IdempotenceMarker
	if marker == "" {
		marker = d.Payload
	}
	// The idempotence gate runs before any anchor search.
	if marker != "" && strings.Contains(unquote(text), unquote(marker)) {
		return text, AlreadyApplied
	}

	switch d.Rule.Kind {
	case AfterLastImport:
		return insertAfterLastImport(text, d.Payload), Applied
	case AppendAtTop:
		lines, eol := splitLines(text)
		return joinLines(insertAt(lines, 0, normalizePayload(d.Payload, eol)), eol), Applied
	case BeforeFirstOccurrenceOfPattern:
		return insertAtFirstMatch(text, d.Rule.Pattern, d.Payload)
	case ReplaceFirstMatch:
		return replaceFirstMatch(text, d.Rule.Pattern, d.Payload)
	default:
		return text, AnchorNotFound
	}
}

// ApplyAll applies descriptors in order against the same text.
// Each descriptor sees the output of the previous one.
func ApplyAll(text string, ds []Descriptor) (string, []Result) {
	results := make([]Result, 0, len(ds))
	for _, d := range ds {
		var r Result
		text, r = Apply(text, d)
		results = append(results, r)
	}
	return text, results
}

func insertAfterLastImport(text, payload string) string {
	lines, eol := splitLines(text)
	payload = normalizePayload(payload, eol)

	last := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if isImportLine(lines[i]) {
			last = i
			break
		}
	}
	if last == -1 {
		return joinLines(insertAt(lines, 0, payload), eol)
	}

	// A multi-line "import {" block ends at the first line carrying the closing brace.
	end := last
	if strings.Contains(lines[last], "{") && !strings.Contains(lines[last], "}") {
		for j := last + 1; j < len(lines); j++ {
			if strings.Contains(lines[j], "}") {
				end = j
				break
			}
		}
	}

	return joinLines(insertAt(lines, end+1, payload), eol)
}

func insertAtFirstMatch(text, pattern, payload string) (string, Result) {
	re, err := regexp.Compile(pattern)
	if err != nil || pattern == "" {
		return text, AnchorNotFound
	}
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text, AnchorNotFound
	}

	eol := lineEnding(text)
	payload = normalizePayload(payload, eol)

	// Indent follows the line holding the end of the match.
	last := loc[1]
	if last > loc[0] {
		last--
	}
	lineStart := strings.LastIndex(text[:last], "\n") + 1
	indent := leadingWhitespace(text[lineStart:])
	inner := indent + "  "

	rest := text[loc[1]:]
	lineEnd := strings.Index(rest, "\n")
	if lineEnd == -1 {
		lineEnd = len(rest)
	}
	sameLine := strings.TrimRight(rest[:lineEnd], "\r")
	skip := len(sameLine) - len(strings.TrimLeft(sameLine, " \t"))
	trailing := sameLine[skip:]

	var b strings.Builder
	b.WriteString(text[:loc[1]])
	b.WriteString(eol)
	b.WriteString(inner)
	b.WriteString(payload)

	switch {
	case trailing == "":
		b.WriteString(rest)
	case isClosing(trailing[0]):
		b.WriteString(eol)
		b.WriteString(indent)
		b.WriteString(rest[skip:])
	default:
		b.WriteString(eol)
		b.WriteString(inner)
		b.WriteString(rest[skip:])
	}

	return b.String(), Applied
}

func replaceFirstMatch(text, pattern, payload string) (string, Result) {
	re, err := regexp.Compile(pattern)
	if err != nil || pattern == "" {
		return text, AnchorNotFound
	}
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text, AnchorNotFound
	}
	payload = normalizePayload(payload, lineEnding(text))
	return text[:loc[0]] + payload + text[loc[1]:], Applied
}

// isImportLine reports whether line starts an ES module import statement.
// Dynamic import() calls are not statements and do not count.
func isImportLine(line string) bool {
	t := strings.TrimSpace(line)
	if !strings.HasPrefix(t, "import") || len(t) == len("import") {
		return false
	}
	switch t[len("import")] {
	case ' ', '\t', '{', '*', '\'', '"':
		return true
	}
	return false
}

// unquote maps every string quote to a single quote so markers match
// regardless of the formatter's quote style.
func unquote(s string) string {
	return quoteFolder.Replace(s)
}

var quoteFolder = strings.NewReplacer(`"`, "'", "`", "'")

func isClosing(c byte) bool {
	return c == ']' || c == '}' || c == ')'
}

func lineEnding(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

func splitLines(text string) ([]string, string) {
	eol := lineEnding(text)
	return strings.Split(text, eol), eol
}

func joinLines(lines []string, eol string) string {
	return strings.Join(lines, eol)
}

func normalizePayload(payload, eol string) string {
	payload = strings.ReplaceAll(payload, "\r\n", "\n")
	if eol == "\n" {
		return payload
	}
	return strings.ReplaceAll(payload, "\n", eol)
}

func insertAt(lines []string, idx int, line string) []string {
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:idx]...)
	out = append(out, line)
	return append(out, lines[idx:]...)
}

func leadingWhitespace(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return s[:i]
		}
	}
	return s
}
