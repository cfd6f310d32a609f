package export

import (
	"fmt"
	"strconv"
	"strings"
)

// PageRange is an inclusive range of 1-indexed slides.
type PageRange struct {
	From int
	To   int
}

func (r PageRange) String() string {
	if r.From == r.To {
		return strconv.Itoa(r.From)
	}
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// Selection is a set of slides to export. The empty selection selects every
// slide.
type Selection []PageRange

// ParseSelection parses a comma separated list of slides and ranges such as
// "1,3-5". An open range ("-2", "4-") runs to the first or last of total
// slides.
func ParseSelection(s string, total int) (Selection, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var sel Selection
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		r, err := parseRange(part, total)
		if err != nil {
			return nil, err
		}
		if r.From < 1 || r.To > total || r.From > r.To {
			return nil, fmt.Errorf("slide %s is out of range (the presentation has %d slides)", part, total)
		}
		sel = append(sel, r)
	}
	return sel, nil
}

func parseRange(part string, total int) (PageRange, error) {
	from, to, isRange := strings.Cut(part, "-")
	if !isRange {
		n, err := atoi(part)
		return PageRange{n, n}, err
	}
	if strings.Contains(to, "-") {
		return PageRange{}, fmt.Errorf("invalid slide range: %s", part)
	}
	r := PageRange{1, total}
	var err error
	if from != "" {
		if r.From, err = atoi(from); err != nil {
			return PageRange{}, err
		}
	}
	if to != "" {
		if r.To, err = atoi(to); err != nil {
			return PageRange{}, err
		}
	}
	return r, nil
}

func atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid slide number: %q", s)
	}
	return n, nil
}

// Contains reports whether slide page is selected.
func (s Selection) Contains(page int) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if page >= r.From && page <= r.To {
			return true
		}
	}
	return false
}

// String formats s the way Chrome's page ranges expect, e.g. "1,3-5".
func (s Selection) String() string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}
