package dunoslide

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T {
	return &v
}

func TestDecode(t *testing.T) {
	raw := map[string]any{
		"title":        "Talk",
		"aspect_ratio": "4:3",
		"theme":        "custom",
		"slides": []any{
			map[string]any{"layout": "cover_title_right", "background": "red", "title": "Hello", "subtitle": "world"},
			map[string]any{"layout": "cover_title_left", "background": "pink", "title": "Left"},
			map[string]any{"layout": "default", "background": "blue", "content": "<p>x</p>", "vertical_align": "center", "footer": "f"},
			map[string]any{"layout": "default", "background": "green"},
			map[string]any{"layout": "summary", "background": "yellow", "items": []any{
				map[string]any{"title": "a", "description": "desc"},
				map[string]any{},
				map[string]any{"title": "c", "empty": true},
			}},
		},
	}
	got, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	want := &Presentation{
		Title:       "Talk",
		AspectRatio: AspectRatio4x3,
		Theme:       "custom",
		Slides: []Slide{
			&CoverSlide{base: base{LayoutCoverTitleRight, BackgroundRed}, Title: "Hello", Subtitle: ptr("world")},
			&CoverSlide{base: base{LayoutCoverTitleLeft, BackgroundPink}, Title: "Left"},
			&DefaultSlide{base: base{LayoutDefault, BackgroundBlue}, Content: ptr("<p>x</p>"), VerticalAlign: VerticalAlignCenter, Footer: ptr("f")},
			&DefaultSlide{base: base{LayoutDefault, BackgroundGreen}, VerticalAlign: VerticalAlignTop},
			&SummarySlide{base: base{LayoutSummary, BackgroundYellow}, Items: []*SummaryItem{
				{Title: "a", Description: ptr("desc")},
				{},
				{Title: "c", Empty: true},
			}},
		},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(CoverSlide{}, DefaultSlide{}, SummarySlide{}, base{})); diff != "" {
		t.Error(diff)
	}
}

func TestDecodeDefaults(t *testing.T) {
	got, err := Decode(map[string]any{
		"title":  "t",
		"slides": []any{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.AspectRatio != AspectRatio16x9 {
		t.Errorf("got aspect ratio %s", got.AspectRatio)
	}
	if got.Theme != DefaultTheme {
		t.Errorf("got theme %s", got.Theme)
	}
	if len(got.Slides) != 0 {
		t.Errorf("got %d slides", len(got.Slides))
	}
}

func TestDecodeTOMLShapes(t *testing.T) {
	// BurntSushi/toml decodes arrays of tables as []map[string]any.
	raw := map[string]any{
		"title": "t",
		"slides": []map[string]any{
			{"layout": "summary", "background": "red", "items": []map[string]any{{"title": "a"}}},
		},
	}
	got, err := Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	s, ok := got.Slides[0].(*SummarySlide)
	if !ok {
		t.Fatalf("got %T", got.Slides[0])
	}
	if len(s.Items) != 1 || s.Items[0].Title != "a" {
		t.Errorf("got %#v", s.Items)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want []*FieldError
	}{
		{
			name: "three independent errors",
			raw: map[string]any{
				"title":        "t",
				"aspect_ratio": "21:9",
				"slides": []any{
					map[string]any{"layout": "default", "background": "purple"},
					map[string]any{"layout": "cover_title_left", "background": "red"},
				},
			},
			want: []*FieldError{
				{
					Path:     []any{"aspect_ratio"},
					Message:  "input should be '16:9' or '4:3'",
					Expected: "'16:9', '4:3'",
					Given:    "21:9",
					Hint:     "Slide aspect ratio, one of '16:9', '4:3'.",
				},
				{
					Path:     []any{"slides", 0, "background"},
					Message:  "input should be 'red', 'green', 'yellow', 'blue', 'lavender' or 'pink'",
					Expected: "'red', 'green', 'yellow', 'blue', 'lavender', 'pink'",
					Given:    "purple",
					Hint:     "Slide background color, one of 'red', 'green', 'yellow', 'blue', 'lavender', 'pink'.",
				},
				{
					Path:     []any{"slides", 1, "title"},
					Message:  "field required",
					Expected: "string",
					Hint:     "Cover title (required).",
				},
			},
		},
		{
			name: "missing title and slides",
			raw:  map[string]any{},
			want: []*FieldError{
				{Path: []any{"title"}, Message: "field required", Expected: "string", Hint: "Presentation title, used as the HTML document title."},
				{Path: []any{"slides"}, Message: "field required", Expected: "list", Hint: "Ordered list of slides. Each slide needs a layout and a background."},
			},
		},
		{
			name: "extra fields are rejected",
			raw: map[string]any{
				"title":  "t",
				"author": "me",
				"slides": []any{
					map[string]any{"layout": "default", "background": "red", "subtitle": "typo"},
				},
			},
			want: []*FieldError{
				{Path: []any{"author"}, Message: "extra inputs are not permitted", Given: "me"},
				{Path: []any{"slides", 0, "subtitle"}, Message: "extra inputs are not permitted", Given: "typo"},
			},
		},
		{
			name: "wrong types",
			raw: map[string]any{
				"title": int64(1),
				"slides": []any{
					map[string]any{"layout": "summary", "background": "red", "items": []any{
						map[string]any{"title": "a", "empty": "yes"},
						"not a table",
					}},
				},
			},
			want: []*FieldError{
				{Path: []any{"title"}, Message: "input should be a valid string", Expected: "string", Given: int64(1), Hint: "Presentation title, used as the HTML document title."},
				{Path: []any{"slides", 0, "items", 0, "empty"}, Message: "input should be a valid boolean", Expected: "boolean", Given: "yes", Hint: "Marks a placeholder item that renders as an empty cell."},
				{Path: []any{"slides", 0, "items", 1}, Message: "input should be a valid dictionary", Expected: "dictionary", Given: "not a table", Hint: "Items laid out in two balanced columns."},
			},
		},
		{
			name: "missing layout",
			raw: map[string]any{
				"title":  "t",
				"slides": []any{map[string]any{"background": "red"}},
			},
			want: []*FieldError{
				{
					Path:     []any{"slides", 0, "layout"},
					Message:  "unable to extract tag using discriminator 'layout'",
					Expected: "'cover_title_right', 'cover_title_left', 'default', 'summary'",
					Hint:     "Slide layout, one of 'cover_title_right', 'cover_title_left', 'default', 'summary'.",
				},
			},
		},
		{
			name: "summary without items",
			raw: map[string]any{
				"title":  "t",
				"slides": []any{map[string]any{"layout": "summary", "background": "red"}},
			},
			want: []*FieldError{
				{Path: []any{"slides", 0, "items"}, Message: "field required", Expected: "list", Hint: "Items laid out in two balanced columns."},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("error should match ErrValidation: %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %T", err)
			}
			if diff := cmp.Diff(tt.want, verr.Errors); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestDecodeUnknownLayout(t *testing.T) {
	_, err := Decode(map[string]any{
		"title": "t",
		"slides": []any{
			map[string]any{"layout": "default", "background": "red"},
			map[string]any{"layout": "two_columns", "background": "red"},
		},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v", err)
	}
	if len(verr.Errors) != 1 {
		t.Fatalf("got %d errors: %v", len(verr.Errors), verr)
	}
	fe := verr.Errors[0]
	if diff := cmp.Diff([]any{"slides", 1, "layout"}, fe.Path); diff != "" {
		t.Error(diff)
	}
	if fe.Given != "two_columns" {
		t.Errorf("got given %v", fe.Given)
	}
	for _, l := range Layouts {
		if !strings.Contains(fe.Message, string(l)) || !strings.Contains(fe.Expected, string(l)) {
			t.Errorf("error should list %s: %v", l, fe)
		}
	}
	if got := fe.Loc(" → "); got != "slides → 1 → layout" {
		t.Errorf("got loc %q", got)
	}
}

func TestDecodeNullOptionalFields(t *testing.T) {
	got, err := Decode(map[string]any{
		"title": "t",
		"theme": nil,
		"slides": []any{
			map[string]any{"layout": "cover_title_right", "background": "red", "title": "Hello", "subtitle": nil},
			map[string]any{"layout": "default", "background": "blue", "title": nil, "content": nil, "footer": nil},
			map[string]any{"layout": "summary", "background": "pink", "title": nil, "items": []any{
				map[string]any{"title": "a", "description": nil},
			}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := &Presentation{
		Title:       "t",
		AspectRatio: DefaultAspectRatio,
		Theme:       DefaultTheme,
		Slides: []Slide{
			&CoverSlide{base: base{LayoutCoverTitleRight, BackgroundRed}, Title: "Hello"},
			&DefaultSlide{base: base{LayoutDefault, BackgroundBlue}, VerticalAlign: VerticalAlignTop},
			&SummarySlide{base: base{LayoutSummary, BackgroundPink}, Items: []*SummaryItem{{Title: "a"}}},
		},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(CoverSlide{}, DefaultSlide{}, SummarySlide{}, base{})); diff != "" {
		t.Error(diff)
	}
}

func TestDecodeNullRequiredTitle(t *testing.T) {
	_, err := Decode(map[string]any{
		"title": "t",
		"slides": []any{
			map[string]any{"layout": "cover_title_left", "background": "red", "title": nil},
		},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v", err)
	}
	if len(verr.Errors) != 1 {
		t.Fatalf("got %d errors: %v", len(verr.Errors), verr)
	}
	fe := verr.Errors[0]
	if got := fe.Loc("."); got != "slides.0.title" {
		t.Errorf("got loc %q", got)
	}
	if fe.Message != "input should be a valid string" {
		t.Errorf("got message %q", fe.Message)
	}
}
