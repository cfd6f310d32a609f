package dunoslide

import (
	"fmt"
	"maps"
	"slices"
)

var (
	presentationFields = []string{"title", "slides", "aspect_ratio", "theme"}
	coverFields        = []string{"layout", "background", "title", "subtitle"}
	defaultFields      = []string{"layout", "background", "title", "content", "vertical_align", "footer"}
	summaryFields      = []string{"layout", "background", "title", "items", "footer"}
	summaryItemFields  = []string{"title", "description", "empty"}
)

// Decode validates an untyped document and converts it into a Presentation.
// It reports every violation at once through *ValidationError.
func Decode(raw map[string]any) (*Presentation, error) {
	d := &decoder{}
	p := d.presentation(raw)
	if len(d.errs) > 0 {
		return nil, &ValidationError{Errors: d.errs}
	}
	return p, nil
}

type decoder struct {
	errs []*FieldError
}

func (d *decoder) fail(path []any, scope, field, msg, expected string, given any) {
	d.errs = append(d.errs, &FieldError{
		Path:     path,
		Message:  msg,
		Expected: expected,
		Given:    given,
		Hint:     hint(scope, field),
	})
}

func (d *decoder) presentation(raw map[string]any) *Presentation {
	p := &Presentation{
		AspectRatio: DefaultAspectRatio,
		Theme:       DefaultTheme,
	}
	scope := scopePresentation
	d.rejectExtra(nil, scope, raw, presentationFields)

	if v, ok := d.requireString(nil, scope, raw, "title"); ok {
		p.Title = v
	}
	if v, ok := optionalEnum(d, nil, scope, raw, "aspect_ratio", AspectRatios); ok {
		p.AspectRatio = v
	}
	if v, ok := d.optionalString(nil, scope, raw, "theme"); ok && v != nil {
		p.Theme = *v
	}

	v, ok := raw["slides"]
	if !ok {
		d.fail(path(nil, "slides"), scope, "slides", "field required", "list", nil)
		return p
	}
	items, ok := toList(v)
	if !ok {
		d.fail(path(nil, "slides"), scope, "slides", "input should be a valid list", "list", v)
		return p
	}
	p.Slides = make([]Slide, 0, len(items))
	for i, item := range items {
		if s := d.slide(path(nil, "slides", i), item); s != nil {
			p.Slides = append(p.Slides, s)
		}
	}
	return p
}

func (d *decoder) slide(at []any, v any) Slide {
	raw, ok := toMap(v)
	if !ok {
		d.fail(at, scopePresentation, "slides", "input should be a valid dictionary", "dictionary", v)
		return nil
	}
	tag, ok := raw["layout"]
	if !ok {
		d.fail(path(at, "layout"), string(LayoutDefault), "layout",
			"unable to extract tag using discriminator 'layout'", quoteList(Layouts), nil)
		return nil
	}
	name, ok := tag.(string)
	if !ok || !slices.Contains(Layouts, Layout(name)) {
		d.fail(path(at, "layout"), string(LayoutDefault), "layout",
			fmt.Sprintf("input tag '%v' found using 'layout' does not match any of the expected tags: %s", tag, quoteList(Layouts)),
			quoteList(Layouts), tag)
		return nil
	}
	layout := Layout(name)
	scope := string(layout)
	b := base{layout: layout}
	switch layout {
	case LayoutCoverTitleRight, LayoutCoverTitleLeft:
		d.rejectExtra(at, scope, raw, coverFields)
		b.background = d.background(at, scope, raw)
		s := &CoverSlide{base: b}
		if v, ok := d.requireString(at, scope, raw, "title"); ok {
			s.Title = v
		}
		s.Subtitle, _ = d.optionalString(at, scope, raw, "subtitle")
		return s
	case LayoutDefault:
		d.rejectExtra(at, scope, raw, defaultFields)
		b.background = d.background(at, scope, raw)
		s := &DefaultSlide{base: b, VerticalAlign: VerticalAlignTop}
		s.Title, _ = d.optionalString(at, scope, raw, "title")
		s.Content, _ = d.optionalString(at, scope, raw, "content")
		if v, ok := optionalEnum(d, at, scope, raw, "vertical_align", VerticalAligns); ok {
			s.VerticalAlign = v
		}
		s.Footer, _ = d.optionalString(at, scope, raw, "footer")
		return s
	default:
		d.rejectExtra(at, scope, raw, summaryFields)
		b.background = d.background(at, scope, raw)
		s := &SummarySlide{base: b}
		s.Title, _ = d.optionalString(at, scope, raw, "title")
		s.Footer, _ = d.optionalString(at, scope, raw, "footer")
		s.Items = d.summaryItems(at, scope, raw)
		return s
	}
}

func (d *decoder) summaryItems(at []any, scope string, raw map[string]any) []*SummaryItem {
	v, ok := raw["items"]
	if !ok {
		d.fail(path(at, "items"), scope, "items", "field required", "list", nil)
		return nil
	}
	list, ok := toList(v)
	if !ok {
		d.fail(path(at, "items"), scope, "items", "input should be a valid list", "list", v)
		return nil
	}
	items := make([]*SummaryItem, 0, len(list))
	for i, iv := range list {
		ip := path(at, "items", i)
		m, ok := toMap(iv)
		if !ok {
			d.fail(ip, scope, "items", "input should be a valid dictionary", "dictionary", iv)
			continue
		}
		d.rejectExtra(ip, scopeSummaryItem, m, summaryItemFields)
		item := &SummaryItem{}
		if t, ok := d.optionalString(ip, scopeSummaryItem, m, "title"); ok && t != nil {
			item.Title = *t
		}
		item.Description, _ = d.optionalString(ip, scopeSummaryItem, m, "description")
		if ev, ok := m["empty"]; ok {
			if b, ok := ev.(bool); ok {
				item.Empty = b
			} else {
				d.fail(path(ip, "empty"), scopeSummaryItem, "empty", "input should be a valid boolean", "boolean", ev)
			}
		}
		items = append(items, item)
	}
	return items
}

func (d *decoder) background(at []any, scope string, raw map[string]any) Background {
	if _, ok := raw["background"]; !ok {
		d.fail(path(at, "background"), scope, "background", "field required", quoteList(Backgrounds), nil)
		return ""
	}
	v, _ := optionalEnum(d, at, scope, raw, "background", Backgrounds)
	return v
}

func (d *decoder) requireString(at []any, scope string, raw map[string]any, field string) (string, bool) {
	if _, ok := raw[field]; !ok {
		d.fail(path(at, field), scope, field, "field required", "string", nil)
		return "", false
	}
	v, ok := d.optionalString(at, scope, raw, field)
	if !ok {
		return "", false
	}
	if v == nil {
		d.fail(path(at, field), scope, field, "input should be a valid string", "string", nil)
		return "", false
	}
	return *v, true
}

// optionalString returns (nil, true) when the field is absent or null.
func (d *decoder) optionalString(at []any, scope string, raw map[string]any, field string) (*string, bool) {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil, true
	}
	s, ok := v.(string)
	if !ok {
		d.fail(path(at, field), scope, field, "input should be a valid string", "string", v)
		return nil, false
	}
	return &s, true
}

// optionalEnum reports ok only when the field is present and valid.
func optionalEnum[T ~string](d *decoder, at []any, scope string, raw map[string]any, field string, allowed []T) (T, bool) {
	v, ok := raw[field]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || !slices.Contains(allowed, T(s)) {
		d.fail(path(at, field), scope, field, fmt.Sprintf("input should be %s", orList(allowed)), quoteList(allowed), v)
		return "", false
	}
	return T(s), true
}

func (d *decoder) rejectExtra(at []any, scope string, raw map[string]any, allowed []string) {
	for _, k := range slices.Sorted(maps.Keys(raw)) {
		if slices.Contains(allowed, k) {
			continue
		}
		d.errs = append(d.errs, &FieldError{
			Path:    path(at, k),
			Message: "extra inputs are not permitted",
			Given:   raw[k],
			Hint:    hint(scope, k),
		})
	}
}

func path(at []any, elems ...any) []any {
	p := make([]any, 0, len(at)+len(elems))
	p = append(p, at...)
	return append(p, elems...)
}

func toMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, vv := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = vv
		}
		return out, true
	default:
		return nil, false
	}
}

func toList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	default:
		return nil, false
	}
}
