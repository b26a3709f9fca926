package view

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
)

// RenderMarkdown converts Markdown to HTML for the page's About section.
// Raw HTML in the source is not passed through.
func RenderMarkdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert(src, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
