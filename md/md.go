package md

import (
	"bytes"

	"github.com/k1LoW/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Render converts slide content into HTML.
// Grid blocks are expanded first, then the whole text is converted, each
// card is converted on its own and mermaid code blocks are rewritten for the
// diagram script.
func Render(src string) (_ string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	var cards []string
	text := expandGrid(src, func(content string) string {
		cards = append(cards, content)
		return cardPlaceholder(len(cards) - 1)
	})
	out, err := convert(text)
	if err != nil {
		return "", err
	}
	out, err = fillCards(out, cards)
	if err != nil {
		return "", err
	}
	return ConvertMermaid(out), nil
}

// newMarkdown returns a fresh converter so no parser state is shared between calls.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
			extension.TaskList,
			extension.Footnote,
			extension.DefinitionList,
		),
		goldmark.WithParserOptions(
			parser.WithAttribute(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)
}

func convert(src string) (string, error) {
	var buf bytes.Buffer
	if err := newMarkdown().Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
