// Copyright 2024-2026 Aiku AI

package mattermostfmt

import (
	"strings"
	"testing"
)

func TestParseEmpty(t *testing.T) {
	t.Parallel()
	if result := Parse(""); result != "" {
		t.Errorf("empty input: got %q, want empty", result)
	}
}

func TestRenderNil(t *testing.T) {
	t.Parallel()
	if result := Render(nil); result != "" {
		t.Errorf("nil document: got %q, want empty", result)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello world", "hello world"},
		{"bold", "*bold*", "**bold**"},
		{"italic", "_soft_", "_soft_"},
		{"strikethrough", "~gone~", "~~gone~~"},
		{"inline code", "run `make`", "run `make`"},
		{"code block", "```x := 1```", "`x := 1`"},
		{"code block in quote", "> see ```x```", "> see `x`"},
		{"code block in bullet", "- run ```make``` now", "- run `make` now"},
		{"code keeps backslashes", "`a\\b`", "`a\\b`"},
		{"unterminated", "*open", "\\*open"},
		{"literal delimiters", "a __b__", "a \\__b_\\_"},
		{"heading", "# x", "\\# x"},
		{"hash mid line", "a # b", "a # b"},
		{"heading in bullet", "- # x", "- \\# x"},
		{"blockquote marker", ">x", "\\>x"},
		{"backslash", `a\b`, `a\\b`},
		{"quote", "> said *this*", "> said **this**"},
		{"star bullet normalised", "* item", "- item"},
		{"numbered kept", "7. seven", "7. seven"},
		{"multiple lines", "a\n\n- b\n2. c", "a\n\n- b\n2. c"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if result := Parse(test.input); result != test.want {
				t.Errorf("Parse(%q): got %q, want %q", test.input, result, test.want)
			}
		})
	}
}

func TestPost(t *testing.T) {
	t.Parallel()
	post := Post("chan1", "*hi* there")
	if post.ChannelId != "chan1" {
		t.Errorf("ChannelId: got %q, want %q", post.ChannelId, "chan1")
	}
	if post.Message != "**hi** there" {
		t.Errorf("Message: got %q, want %q", post.Message, "**hi** there")
	}
}

// FuzzParse verifies that rendering never panics and keeps one output line
// per input line.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("*a* _b_ ~c~ `d`")
	f.Add("> q\n- b\n1. n")
	f.Add("- run ```make``` now\n2. ```x```")
	f.Add(strings.Repeat("~", 100))

	f.Fuzz(func(t *testing.T, input string) {
		result := Parse(input)
		if input != "" && strings.Count(result, "\n") != strings.Count(input, "\n") {
			t.Errorf("line count changed: %q -> %q", input, result)
		}
	})
}
