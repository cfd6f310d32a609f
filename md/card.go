package md

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// cardPlaceholder stands in for a card body while the surrounding text is
// converted. It has no blank line, so the grid stays a single HTML block.
func cardPlaceholder(i int) string {
	return fmt.Sprintf("<!--grid-card-%d-->", i)
}

// fillCards replaces the placeholders in src with the cards. A card is
// converted on its own unless it already contains HTML, in which case it is
// kept as written.
func fillCards(src string, cards []string) (string, error) {
	if len(cards) == 0 {
		return src, nil
	}
	pairs := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		raw := strings.TrimSpace(c)
		body := raw
		hasHTML, err := containsHTML(raw)
		if err != nil {
			return "", err
		}
		if !hasHTML {
			converted, err := convert(raw)
			if err != nil {
				return "", err
			}
			body = strings.TrimSpace(converted)
		}
		pairs = append(pairs, cardPlaceholder(i), body)
	}
	return strings.NewReplacer(pairs...).Replace(src), nil
}

// containsHTML reports whether raw has any node other than text, such as an
// element or a comment.
func containsHTML(raw string) (bool, error) {
	if !strings.Contains(raw, "<") {
		return false, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return false, err
	}
	found := false
	doc.Find("head, body").Contents().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) != "#text" {
			found = true
			return false
		}
		return true
	})
	return found, nil
}
