// Copyright 2024-2026 Aiku AI

package chatmarkup

import "strings"

// inlineFormats lists the delimited span kinds in the order they are tried
// at each position.
var inlineFormats = [...]struct {
	kind  SpanKind
	delim string
	// singleLine forbids newlines in the span content.
	singleLine bool
}{
	{CodeBlockSpan, "```", false},
	{InlineCodeSpan, "`", false},
	{BoldSpan, "*", true},
	{ItalicSpan, "_", true},
	{StrikethroughSpan, "~", true},
}

type inlineParser struct {
	s       string
	emitted int // s[:emitted] has been turned into spans
	spans   []Span
}

// emit flushes any literal text before i as a text span.
func (p *inlineParser) emit(i int) {
	if p.emitted < i {
		p.spans = append(p.spans, Span{Kind: TextSpan, Text: p.s[p.emitted:i]})
		p.emitted = i
	}
}

func (p *inlineParser) skip(i int) {
	p.emitted = i
}

// FormatInline splits one line of content into spans.
// The text of the returned spans, with delimiters restored,
// concatenates back to text.
// The empty string yields no spans.
func FormatInline(text string) []Span {
	p := inlineParser{s: text}
	for i := 0; i < len(text); {
		if span, end, ok := matchSpan(text, i); ok {
			p.emit(i)
			p.spans = append(p.spans, span)
			i = end
			p.skip(i)
			continue
		}
		i++
	}
	p.emit(len(text))
	return p.spans
}

// matchSpan tries every delimited format at s[i:] in precedence order.
// It returns the span and the offset just past its closing delimiter.
func matchSpan(s string, i int) (Span, int, bool) {
	if !isDelimiterByte(s[i]) {
		return Span{}, i, false
	}
	for _, f := range inlineFormats {
		if !strings.HasPrefix(s[i:], f.delim) {
			continue
		}
		start := i + len(f.delim)
		end := start
		for end < len(s) && s[end] != f.delim[0] && !(f.singleLine && s[end] == '\n') {
			end++
		}
		if end == start || !strings.HasPrefix(s[end:], f.delim) {
			continue
		}
		return Span{Kind: f.kind, Text: s[start:end]}, end + len(f.delim), true
	}
	return Span{}, i, false
}

func isDelimiterByte(c byte) bool {
	switch c {
	case '`', '*', '_', '~':
		return true
	default:
		return false
	}
}
