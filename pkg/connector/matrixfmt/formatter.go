// Copyright 2024-2026 Aiku AI

// Package matrixfmt renders chat markup as Matrix HTML message content.
package matrixfmt

import (
	"html"
	"strings"

	"maunium.net/go/mautrix/event"

	"github.com/aiku/chatmarkup/pkg/chatmarkup"
)

// DefaultBulletGlyph replaces the `-` and `*` markers of bullet lines.
const DefaultBulletGlyph = "•"

// Options controls how a document is rendered.
type Options struct {
	BulletGlyph string
}

var spanTags = map[chatmarkup.SpanKind][2]string{
	chatmarkup.CodeBlockSpan:     {"<pre><code>", "</code></pre>"},
	chatmarkup.InlineCodeSpan:    {"<code>", "</code>"},
	chatmarkup.BoldSpan:          {"<strong>", "</strong>"},
	chatmarkup.ItalicSpan:        {"<em>", "</em>"},
	chatmarkup.StrikethroughSpan: {"<del>", "</del>"},
}

// Parse converts a chat markup message to Matrix event content
// using the default options.
func Parse(text string) *event.MessageEventContent {
	return Render(chatmarkup.Parse(text), text, Options{})
}

// Render converts a parsed document to Matrix event content. The plain
// body is always the original source text; the HTML body is only set when
// the document contains formatting.
func Render(doc *chatmarkup.Document, source string, opts Options) *event.MessageEventContent {
	content := &event.MessageEventContent{
		MsgType: event.MsgText,
		Body:    source,
	}
	if !doc.HasFormatting() {
		return content
	}
	content.Format = event.FormatHTML
	content.FormattedBody = HTML(doc, opts)
	return content
}

// HTML renders every line of the document, separated by line breaks.
func HTML(doc *chatmarkup.Document, opts Options) string {
	if doc == nil {
		return ""
	}
	glyph := opts.BulletGlyph
	if glyph == "" {
		glyph = DefaultBulletGlyph
	}

	var sb strings.Builder
	for i, line := range doc.Lines {
		if i > 0 {
			sb.WriteString("<br/>")
		}
		switch line.Kind {
		case chatmarkup.QuoteLine:
			sb.WriteString("<blockquote>")
			writeSpans(&sb, line.Content)
			sb.WriteString("</blockquote>")
		case chatmarkup.BulletLine:
			sb.WriteString(html.EscapeString(glyph))
			sb.WriteByte(' ')
			writeSpans(&sb, line.Content)
		case chatmarkup.NumberedLine:
			sb.WriteString(html.EscapeString(line.Number))
			sb.WriteString(". ")
			writeSpans(&sb, line.Content)
		default:
			writeSpans(&sb, line.Content)
		}
	}
	return sb.String()
}

func writeSpans(sb *strings.Builder, spans []chatmarkup.Span) {
	for _, span := range spans {
		tags, ok := spanTags[span.Kind]
		if !ok {
			sb.WriteString(html.EscapeString(span.Text))
			continue
		}
		sb.WriteString(tags[0])
		sb.WriteString(html.EscapeString(span.Text))
		sb.WriteString(tags[1])
	}
}
