package dunoslide

import (
	"fmt"
	"html/template"
)

// Layout is the discriminant tag of a slide.
type Layout string

const (
	LayoutCoverTitleRight Layout = "cover_title_right"
	LayoutCoverTitleLeft  Layout = "cover_title_left"
	LayoutDefault         Layout = "default"
	LayoutSummary         Layout = "summary"
)

// Layouts is the closed set of slide layouts, in declaration order.
var Layouts = []Layout{
	LayoutCoverTitleRight,
	LayoutCoverTitleLeft,
	LayoutDefault,
	LayoutSummary,
}

// Background is a named slide background color.
type Background string

const (
	BackgroundRed      Background = "red"
	BackgroundGreen    Background = "green"
	BackgroundYellow   Background = "yellow"
	BackgroundBlue     Background = "blue"
	BackgroundLavender Background = "lavender"
	BackgroundPink     Background = "pink"
)

var Backgrounds = []Background{
	BackgroundRed,
	BackgroundGreen,
	BackgroundYellow,
	BackgroundBlue,
	BackgroundLavender,
	BackgroundPink,
}

// VerticalAlign positions the content of a default slide.
type VerticalAlign string

const (
	VerticalAlignTop    VerticalAlign = "top"
	VerticalAlignCenter VerticalAlign = "center"
	VerticalAlignBottom VerticalAlign = "bottom"
)

var VerticalAligns = []VerticalAlign{
	VerticalAlignTop,
	VerticalAlignCenter,
	VerticalAlignBottom,
}

// AspectRatio of the rendered slides.
type AspectRatio string

const (
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio4x3  AspectRatio = "4:3"
)

var AspectRatios = []AspectRatio{
	AspectRatio16x9,
	AspectRatio4x3,
}

// Size returns the slide size in pixels.
func (a AspectRatio) Size() (width, height int, err error) {
	switch a {
	case AspectRatio16x9:
		return 1280, 720, nil
	case AspectRatio4x3:
		return 1024, 768, nil
	default:
		return 0, 0, fmt.Errorf("unsupported aspect ratio: %q", string(a))
	}
}

const (
	DefaultTitle       = "Untitled Presentation"
	DefaultAspectRatio = AspectRatio16x9
	DefaultTheme       = "dunossauro"
)

// Slide is one member of the slide union. The concrete type is selected by Layout.
type Slide interface {
	Layout() Layout
	Background() Background
}

type base struct {
	layout     Layout
	background Background
}

func (b base) Layout() Layout         { return b.layout }
func (b base) Background() Background { return b.background }

// CoverSlide is used by both cover_title_right and cover_title_left.
type CoverSlide struct {
	base
	Title    string
	Subtitle *string
}

// DefaultSlide holds free-form content rendered from Markdown.
type DefaultSlide struct {
	base
	Title *string
	// Content holds HTML produced by the Markdown pipeline.
	Content       *string
	VerticalAlign VerticalAlign
	Footer        *string
}

// ContentHTML marks the pre-rendered content as trusted for html/template.
func (s *DefaultSlide) ContentHTML() template.HTML {
	if s.Content == nil {
		return ""
	}
	return template.HTML(*s.Content) //nolint:gosec
}

// SummarySlide lists items in two balanced columns.
type SummarySlide struct {
	base
	Title  *string
	Items  []*SummaryItem
	Footer *string
}

// SummaryItem is one entry of a summary slide. An empty item keeps its
// place in the columns without content.
type SummaryItem struct {
	Title       string
	Description *string
	Empty       bool
}

// balancedItems returns a copy of Items padded to an even count.
func (s *SummarySlide) balancedItems() []*SummaryItem {
	items := make([]*SummaryItem, len(s.Items), len(s.Items)+1)
	copy(items, s.Items)
	if len(items)%2 != 0 {
		items = append(items, &SummaryItem{Empty: true})
	}
	return items
}

// LeftColumnItems returns the first half of the items, padded to an even
// count with an empty item.
func (s *SummarySlide) LeftColumnItems() []*SummaryItem {
	items := s.balancedItems()
	return items[:len(items)/2]
}

// RightColumnItems returns the items after LeftColumnItems.
func (s *SummarySlide) RightColumnItems() []*SummaryItem {
	items := s.balancedItems()
	return items[len(items)/2:]
}

// Presentation is the validated document. It is not modified after Decode.
type Presentation struct {
	Title       string
	Slides      []Slide
	AspectRatio AspectRatio
	Theme       string
}

// Size returns the slide size of the presentation in pixels.
func (p *Presentation) Size() (width, height int, err error) {
	return p.AspectRatio.Size()
}
