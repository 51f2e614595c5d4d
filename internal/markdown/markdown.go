// Package markdown renders note content for display. Notes are stored as
// raw text; nothing here feeds back into the store.
package markdown

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	parserInstance goldmark.Markdown
	parserOnce     sync.Once
)

// parser returns the shared goldmark instance. Its configuration never
// changes and Convert/Parse keep per-call state, so sharing is safe.
func parser() goldmark.Markdown {
	parserOnce.Do(func() {
		parserInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		)
	})
	return parserInstance
}

// ToHTML converts note content to an HTML fragment. Raw HTML in the source
// is escaped (goldmark's default unsafe=false).
func ToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := parser().Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
