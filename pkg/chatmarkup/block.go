// Copyright 2024-2026 Aiku AI

package chatmarkup

import (
	"regexp"
	"strings"
)

const quotePrefix = "> "

var (
	bulletRe   = regexp.MustCompile(`^[*-]\s+(.+)`)
	numberedRe = regexp.MustCompile(`^(\d+)\.\s+(.+)`)
)

// Parse converts a chat markup message into a [Document].
// Every line of text becomes exactly one [Line].
// The empty string parses to a document with no lines.
func Parse(text string) *Document {
	if text == "" {
		return &Document{}
	}

	rawLines := strings.Split(text, "\n")
	doc := &Document{Lines: make([]Line, 0, len(rawLines))}
	for _, raw := range rawLines {
		kind, number, content := ClassifyLine(raw)
		doc.Lines = append(doc.Lines, Line{
			Kind:    kind,
			Number:  number,
			Content: FormatInline(content),
		})
	}
	return doc
}

// ClassifyLine decides the block kind of a single raw line and returns the
// content left once the block prefix is removed. Lines are checked for a
// quote prefix first, then a bullet marker, then a list number; anything
// else is a [PlainLine] with the line itself as content.
func ClassifyLine(raw string) (kind LineKind, number, content string) {
	if rest, ok := strings.CutPrefix(raw, quotePrefix); ok {
		return QuoteLine, "", rest
	}

	// Only a marker character can start a list line.
	if raw == "" || !isListStart(raw[0]) {
		return PlainLine, "", raw
	}

	if m := bulletRe.FindStringSubmatch(raw); len(m) >= 2 {
		return BulletLine, "", m[1]
	}

	if m := numberedRe.FindStringSubmatch(raw); len(m) >= 3 {
		return NumberedLine, m[1], m[2]
	}

	return PlainLine, "", raw
}

func isListStart(c byte) bool {
	return c == '*' || c == '-' || ('0' <= c && c <= '9')
}
