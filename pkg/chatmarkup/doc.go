// Copyright 2024-2026 Aiku AI

// Package chatmarkup parses the WhatsApp-style chat markup dialect into a
// structured [Document].
//
// Parsing happens in two passes. The block pass splits the message on
// newlines and classifies each line as a quote (`> `), a bullet item
// (`- ` or `* `), a numbered item (`1. `) or plain text. The inline pass then
// tokenizes the remaining line content into [Span] values:
//
//	```code block```   `inline code`   *bold*   _italic_   ~strikethrough~
//
// At every position the formats are tried in that order, so backtick content
// is never read as emphasis. Formatting does not nest and there is no escape
// syntax. Unterminated markers stay literal text, so every input string
// parses.
//
// Rendering is left to the caller; see the matrixfmt and mattermostfmt
// packages for the renderers the bridge uses.
package chatmarkup
