package md

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	gridOpen     = "::: grid"
	cardOpen     = "::: card"
	blockClose   = ":::"
	nestedPrefix = "::: "
	defaultCols  = "2"
)

var colsRe = regexp.MustCompile(`cols-(\d+)`)

// ProcessGrid rewrites ::: grid blocks into grid containers.
//
//	::: grid cols-3
//	::: card
//	**A**
//	:::
//	:::
//
// Card contents are left as raw Markdown. An unterminated grid is closed at
// the end of the input.
func ProcessGrid(src string) string {
	return expandGrid(src, func(content string) string {
		return content
	})
}

// expandGrid rewrites grid blocks, writing card(content) as the body of each
// card.
func expandGrid(src string, card func(content string) string) string {
	lines := strings.Split(src, "\n")
	result := make([]string, 0, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !strings.HasPrefix(strings.TrimSpace(line), gridOpen) {
			result = append(result, line)
			continue
		}
		cols := defaultCols
		if m := colsRe.FindStringSubmatch(line); m != nil {
			cols = m[1]
		}

		var body []string
		depth := 1
		for i++; i < len(lines); i++ {
			current := strings.TrimSpace(lines[i])
			if current == blockClose {
				depth--
				if depth == 0 {
					break
				}
			} else if strings.HasPrefix(current, nestedPrefix) {
				depth++
			}
			body = append(body, lines[i])
		}

		result = append(result, fmt.Sprintf(`<div class="grid grid-cols-%s">`, cols))
		for _, c := range splitCards(body) {
			result = append(result, `<div class="grid-card">`, card(c), "</div>")
		}
		result = append(result, "</div>")
	}
	return strings.Join(result, "\n")
}

// splitCards extracts the contents of ::: card blocks. Lines outside of a
// card are dropped.
func splitCards(lines []string) []string {
	var (
		cards   []string
		content []string
		inCard  bool
	)
	flush := func() {
		if len(content) > 0 {
			cards = append(cards, strings.Join(content, "\n"))
			content = nil
		}
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == cardOpen:
			if inCard {
				flush()
			}
			inCard = true
		case trimmed == blockClose && inCard:
			flush()
			inCard = false
		case inCard:
			content = append(content, line)
		}
	}
	flush()
	return cards
}
