package markdown

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "Heading and emphasis",
			input:    "# Morning\n\nA **bold** start",
			contains: []string{"<h1>Morning</h1>", "<strong>bold</strong>"},
		},
		{
			name:     "Hard wraps",
			input:    "line one\nline two",
			contains: []string{"line one<br>"},
		},
		{
			name:     "GFM task list",
			input:    "- [x] done\n- [ ] todo",
			contains: []string{`type="checkbox"`, "done", "todo"},
		},
		{
			name:     "Raw HTML is not passed through",
			input:    "<script>alert(1)</script>",
			contains: []string{"<!-- raw HTML omitted -->"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.input)
			if err != nil {
				t.Fatalf("ToHTML error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output %q does not contain %q", got, want)
				}
			}
		})
	}
}

func TestTerminal_Structure(t *testing.T) {
	input := "# Title\n\nSome *text* and `code`.\n\n- a\n- b\n\n1. x\n2. y\n\n---\n\n```\nfenced\n```"
	got := ansi.Strip(Terminal(input, DefaultStyles, 40))

	for _, want := range []string{"Title", "Some text and code.", "• a", "• b", "1. x", "2. y", "  fenced", "────"} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
	for _, unwanted := range []string{"# ", "*text*", "`", "```"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("output should not contain markdown syntax %q:\n%s", unwanted, got)
		}
	}
}

func TestTerminal_HighlightsFencedCode(t *testing.T) {
	input := "```go\nfunc main() {}\n```"
	got := Terminal(input, DefaultStyles, 40)
	if plain := ansi.Strip(got); !strings.Contains(plain, "  func main() {}") {
		t.Errorf("highlighted block lost its text:\n%s", plain)
	}

	noColor := DefaultStyles
	noColor.Highlight = ""
	if got := ansi.Strip(Terminal(input, noColor, 40)); got != "  func main() {}" {
		t.Errorf("got %q, want plain indented code", got)
	}
}

func TestTerminal_Wraps(t *testing.T) {
	input := "The quick brown fox jumps over the lazy dog while the clock keeps turning through the hours."
	got := Terminal(input, DefaultStyles, 20)

	for _, line := range strings.Split(got, "\n") {
		if w := ansi.StringWidth(line); w > 20 {
			t.Errorf("line %q is %d columns wide", ansi.Strip(line), w)
		}
	}
}

func TestTerminal_SoftBreaksReflow(t *testing.T) {
	got := ansi.Strip(Terminal("one\ntwo", DefaultStyles, 80))
	if got != "one two" {
		t.Errorf("got %q, want %q", got, "one two")
	}
}

func TestTerminal_Empty(t *testing.T) {
	if got := Terminal("", DefaultStyles, 80); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
