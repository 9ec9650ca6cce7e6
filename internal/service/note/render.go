package note

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// Raw HTML in note content is omitted from the output.
var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Typographer,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
	),
)

// RenderMarkdown converts markdown text to an HTML fragment.
func RenderMarkdown(text string) (string, error) {
	var out bytes.Buffer
	if err := markdownEngine.Convert([]byte(text), &out); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out.String(), nil
}

// RenderHTML renders the content of one of the owner's notes as HTML.
func (s *Service) RenderHTML(ctx context.Context, noteID uuid.UUID) (string, error) {
	n, err := s.Get(ctx, noteID)
	if err != nil {
		return "", err
	}
	return RenderMarkdown(n.Content)
}
