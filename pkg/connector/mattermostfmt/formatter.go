// Copyright 2024-2026 Aiku AI

// Package mattermostfmt renders chat markup as Mattermost markdown.
package mattermostfmt

import (
	"strings"

	"github.com/mattermost/mattermost/server/public/model"

	"github.com/aiku/chatmarkup/pkg/chatmarkup"
)

// Code blocks never span lines in chat markup, so they render as inline code.
var spanMarkers = map[chatmarkup.SpanKind][2]string{
	chatmarkup.CodeBlockSpan:     {"`", "`"},
	chatmarkup.InlineCodeSpan:    {"`", "`"},
	chatmarkup.BoldSpan:          {"**", "**"},
	chatmarkup.ItalicSpan:        {"_", "_"},
	chatmarkup.StrikethroughSpan: {"~~", "~~"},
}

// Parse converts a chat markup message to Mattermost markdown.
func Parse(text string) string {
	return Render(chatmarkup.Parse(text))
}

// Render converts a parsed document to Mattermost markdown, one output line
// per document line.
func Render(doc *chatmarkup.Document) string {
	if doc == nil {
		return ""
	}
	lines := make([]string, len(doc.Lines))
	for i, line := range doc.Lines {
		var sb strings.Builder
		switch line.Kind {
		case chatmarkup.QuoteLine:
			sb.WriteString("> ")
		case chatmarkup.BulletLine:
			sb.WriteString("- ")
		case chatmarkup.NumberedLine:
			sb.WriteString(line.Number)
			sb.WriteString(". ")
		}
		for j, span := range line.Content {
			text := span.Text
			if !isCode(span.Kind) {
				text = escapeText(text, j == 0)
			}
			markers, ok := spanMarkers[span.Kind]
			if !ok {
				sb.WriteString(text)
				continue
			}
			sb.WriteString(markers[0])
			sb.WriteString(text)
			sb.WriteString(markers[1])
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func isCode(kind chatmarkup.SpanKind) bool {
	return kind == chatmarkup.CodeBlockSpan || kind == chatmarkup.InlineCodeSpan
}

// escapeText backslash-escapes characters Mattermost would read as markdown.
// Heading and blockquote markers only matter at the start of a line.
func escapeText(text string, lineStart bool) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case strings.IndexByte("\\*_~`", c) >= 0:
			sb.WriteByte('\\')
		case lineStart && i == 0 && (c == '#' || c == '>'):
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Post builds an outgoing Mattermost post for a chat markup message.
func Post(channelID, text string) *model.Post {
	return &model.Post{
		ChannelId: channelID,
		Message:   Parse(text),
	}
}
