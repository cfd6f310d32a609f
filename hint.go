package dunoslide

import (
	"fmt"
	"strings"
)

type hintKey struct {
	scope string
	field string
}

const (
	scopePresentation = "presentation"
	scopeSummaryItem  = "summary_item"
)

var hints = buildHints()

func buildHints() map[hintKey]string {
	bg := fmt.Sprintf("Slide background color, one of %s.", quoteList(Backgrounds))
	h := map[hintKey]string{
		{scopePresentation, "title"}:        "Presentation title, used as the HTML document title.",
		{scopePresentation, "slides"}:       "Ordered list of slides. Each slide needs a layout and a background.",
		{scopePresentation, "aspect_ratio"}: fmt.Sprintf("Slide aspect ratio, one of %s.", quoteList(AspectRatios)),
		{scopePresentation, "theme"}:        "Name of a registered theme.",

		{scopeSummaryItem, "title"}:       "Item title shown in bold.",
		{scopeSummaryItem, "description"}: "Optional text shown under the item title.",
		{scopeSummaryItem, "empty"}:       "Marks a placeholder item that renders as an empty cell.",
	}
	for _, l := range Layouts {
		scope := string(l)
		h[hintKey{scope, "layout"}] = fmt.Sprintf("Slide layout, one of %s.", quoteList(Layouts))
		h[hintKey{scope, "background"}] = bg
	}
	for _, l := range []Layout{LayoutCoverTitleRight, LayoutCoverTitleLeft} {
		scope := string(l)
		h[hintKey{scope, "title"}] = "Cover title (required)."
		h[hintKey{scope, "subtitle"}] = "Optional line shown under the cover title."
	}
	h[hintKey{string(LayoutDefault), "title"}] = "Optional slide heading."
	h[hintKey{string(LayoutDefault), "content"}] = "Slide body in Markdown. Supports ::: grid / ::: card blocks and mermaid code blocks."
	h[hintKey{string(LayoutDefault), "vertical_align"}] = fmt.Sprintf("Vertical alignment of the content, one of %s.", quoteList(VerticalAligns))
	h[hintKey{string(LayoutDefault), "footer"}] = "Optional footer text."
	h[hintKey{string(LayoutSummary), "title"}] = "Optional slide heading."
	h[hintKey{string(LayoutSummary), "items"}] = "Items laid out in two balanced columns."
	h[hintKey{string(LayoutSummary), "footer"}] = "Optional footer text."
	return h
}

func hint(scope, field string) string {
	return hints[hintKey{scope, field}]
}

func quoteList[T ~string](values []T) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, fmt.Sprintf("'%s'", v))
	}
	return strings.Join(quoted, ", ")
}

func orList[T ~string](values []T) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, fmt.Sprintf("'%s'", v))
	}
	if len(quoted) < 2 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}
