package markdown

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Styles used by the terminal renderer.
type Styles struct {
	Heading lipgloss.Style
	Text    lipgloss.Style
	Code    lipgloss.Style
	Rule    lipgloss.Style

	// Chroma style for fenced code blocks with a language. Empty disables
	// highlighting.
	Highlight string
}

// DefaultStyles is the gold-on-black palette of the clock.
var DefaultStyles = Styles{
	Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D4AF37")),
	Text:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0")),
	Code:    lipgloss.NewStyle().Foreground(lipgloss.Color("#AA771C")),
	Rule:    lipgloss.NewStyle().Foreground(lipgloss.Color("#AA771C")),

	Highlight: "monokai",
}

// Terminal renders note content as styled text wrapped at width columns.
// Soft line breaks become spaces so hard-wrapped notes reflow.
func Terminal(content string, styles Styles, width int) string {
	if content == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}
	source := []byte(content)
	document := parser().Parser().Parse(text.NewReader(source))

	r := &terminalRenderer{source: source, styles: styles, width: width}
	_ = ast.Walk(document, r.walk)
	return strings.TrimRight(r.output.String(), "\n")
}

type terminalRenderer struct {
	source []byte
	styles Styles
	width  int

	output strings.Builder
	inline strings.Builder

	boldCount          int
	italicCount        int
	strikethroughCount int

	// One entry per open list: the next ordinal, or 0 for bullet lists.
	lists []int
}

func (r *terminalRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		if !entering {
			r.flush(false)
		}

	case *ast.Heading:
		if !entering {
			r.flush(true)
		}

	case *ast.List:
		if entering {
			next := 0
			if n.IsOrdered() {
				next = n.Start
			}
			r.lists = append(r.lists, next)
		} else {
			r.lists = r.lists[:len(r.lists)-1]
			if len(r.lists) == 0 {
				r.blankLine()
			}
		}

	case *ast.ListItem:
		if entering {
			r.inline.WriteString(r.bullet())
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			r.writeCode(node)
		}
		return ast.WalkSkipChildren, nil

	case *ast.ThematicBreak:
		if entering {
			r.output.WriteString(r.styles.Rule.Render(strings.Repeat("─", r.width)))
			r.output.WriteString("\n\n")
		}

	case *ast.Text:
		if entering {
			r.inline.WriteString(r.styled(string(n.Segment.Value(r.source))))
			if n.SoftLineBreak() {
				r.inline.WriteString(" ")
			}
			if n.HardLineBreak() {
				r.inline.WriteString("\n")
			}
		}

	case *ast.String:
		if entering {
			r.inline.WriteString(r.styled(string(n.Value)))
		}

	case *ast.Emphasis:
		delta := 1
		if !entering {
			delta = -1
		}
		if n.Level >= 2 {
			r.boldCount += delta
		} else {
			r.italicCount += delta
		}

	case *extast.Strikethrough:
		if entering {
			r.strikethroughCount++
		} else {
			r.strikethroughCount--
		}

	case *ast.CodeSpan:
		if entering {
			var code strings.Builder
			for child := n.FirstChild(); child != nil; child = child.NextSibling() {
				if t, ok := child.(*ast.Text); ok {
					code.Write(t.Segment.Value(r.source))
				}
			}
			r.inline.WriteString(r.styles.Code.Render(code.String()))
		}
		return ast.WalkSkipChildren, nil

	case *ast.HTMLBlock, *ast.RawHTML:
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

func (r *terminalRenderer) bullet() string {
	depth := len(r.lists)
	indent := strings.Repeat("  ", depth-1)
	next := r.lists[depth-1]
	if next == 0 {
		return indent + "• "
	}
	r.lists[depth-1]++
	return indent + strconv.Itoa(next) + ". "
}

func (r *terminalRenderer) styled(s string) string {
	style := r.styles.Text
	if r.boldCount > 0 {
		style = style.Bold(true)
	}
	if r.italicCount > 0 {
		style = style.Italic(true)
	}
	if r.strikethroughCount > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(s)
}

// flush wraps the collected inline content and writes it as one block.
// Headings drop inline styling in favour of the heading style.
func (r *terminalRenderer) flush(heading bool) {
	content := r.inline.String()
	r.inline.Reset()
	if content == "" {
		return
	}
	if heading {
		content = r.styles.Heading.Render(ansi.Strip(content))
	}
	r.output.WriteString(ansi.Wrap(content, r.width, " ,.;-+|"))
	r.output.WriteString("\n")
	if len(r.lists) == 0 {
		r.output.WriteString("\n")
	}
}

func (r *terminalRenderer) writeCode(node ast.Node) {
	var code strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		code.Write(segment.Value(r.source))
	}

	language := ""
	if fenced, ok := node.(*ast.FencedCodeBlock); ok {
		language = string(fenced.Language(r.source))
	}

	for _, line := range strings.Split(r.highlight(code.String(), language), "\n") {
		r.output.WriteString("  " + line + "\n")
	}
	r.blankLine()
}

// highlight colours code with chroma when the language is known, and falls
// back to the plain code style otherwise.
func (r *terminalRenderer) highlight(code, language string) string {
	code = strings.TrimRight(code, "\n")
	if language != "" && r.styles.Highlight != "" {
		var out strings.Builder
		if err := quick.Highlight(&out, code, language, "terminal256", r.styles.Highlight); err == nil {
			return strings.TrimRight(out.String(), "\n")
		}
	}
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		lines[i] = r.styles.Code.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (r *terminalRenderer) blankLine() {
	s := r.output.String()
	if s == "" || strings.HasSuffix(s, "\n\n") {
		return
	}
	if strings.HasSuffix(s, "\n") {
		r.output.WriteString("\n")
		return
	}
	r.output.WriteString("\n\n")
}
