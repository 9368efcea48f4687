// Copyright 2024-2026 Aiku AI

package chatmarkup

import (
	"fmt"
	"strings"
)

// Document is the result of parsing one message.
type Document struct {
	Lines []Line
}

// Line is one newline-delimited line of a message.
type Line struct {
	Kind LineKind
	// Number is the verbatim list number of a [NumberedLine].
	Number  string
	Content []Span
}

// Span is a run of line content with a single formatting kind.
// Text never includes the delimiters.
type Span struct {
	Kind SpanKind
	Text string
}

// LineKind is an enumeration of values for [Line.Kind].
type LineKind uint8

const (
	PlainLine LineKind = 1 + iota
	QuoteLine
	BulletLine
	NumberedLine
)

var lineKindNames = map[LineKind]string{
	PlainLine:    "plain",
	QuoteLine:    "quote",
	BulletLine:   "bullet",
	NumberedLine: "numbered",
}

func (k LineKind) String() string {
	if name, ok := lineKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("LineKind(%d)", uint8(k))
}

func (k LineKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// SpanKind is an enumeration of values for [Span.Kind].
type SpanKind uint8

const (
	TextSpan SpanKind = 1 + iota
	CodeBlockSpan
	InlineCodeSpan
	BoldSpan
	ItalicSpan
	StrikethroughSpan
)

var spanKindNames = map[SpanKind]string{
	TextSpan:          "text",
	CodeBlockSpan:     "code_block",
	InlineCodeSpan:    "inline_code",
	BoldSpan:          "bold",
	ItalicSpan:        "italic",
	StrikethroughSpan: "strikethrough",
}

func (k SpanKind) String() string {
	if name, ok := spanKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SpanKind(%d)", uint8(k))
}

func (k SpanKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Delimiter returns the marker that opens and closes spans of kind k,
// or the empty string for [TextSpan].
func (k SpanKind) Delimiter() string {
	for _, f := range inlineFormats {
		if f.kind == k {
			return f.delim
		}
	}
	return ""
}

// Markup returns the span as it appeared in the source,
// delimiters included.
func (s Span) Markup() string {
	d := s.Kind.Delimiter()
	return d + s.Text + d
}

// Text returns the line content with all delimiters removed.
func (l Line) Text() string {
	var sb strings.Builder
	for _, span := range l.Content {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// Markup returns the line content as it appeared in the source,
// without the block prefix.
func (l Line) Markup() string {
	var sb strings.Builder
	for _, span := range l.Content {
		sb.WriteString(span.Markup())
	}
	return sb.String()
}

// IsFormatted reports whether the line needs more than plain text to render.
func (l Line) IsFormatted() bool {
	if l.Kind != PlainLine {
		return true
	}
	for _, span := range l.Content {
		if span.Kind != TextSpan {
			return true
		}
	}
	return false
}

// Text returns the document's visible text: block prefixes and span
// delimiters are dropped and lines are joined with newlines.
// Calling Text on nil returns the empty string.
func (d *Document) Text() string {
	if d == nil {
		return ""
	}
	lines := make([]string, len(d.Lines))
	for i, line := range d.Lines {
		lines[i] = line.Text()
	}
	return strings.Join(lines, "\n")
}

// HasFormatting reports whether any line of the document is formatted.
func (d *Document) HasFormatting() bool {
	if d == nil {
		return false
	}
	for _, line := range d.Lines {
		if line.IsFormatted() {
			return true
		}
	}
	return false
}
