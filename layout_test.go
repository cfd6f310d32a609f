package dunoslide

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSummaryColumns(t *testing.T) {
	for n := range 8 {
		t.Run(fmt.Sprintf("%d items", n), func(t *testing.T) {
			items := make([]*SummaryItem, n)
			for i := range items {
				items[i] = &SummaryItem{Title: fmt.Sprintf("item %d", i)}
			}
			s := &SummarySlide{Items: items}
			left := s.LeftColumnItems()
			right := s.RightColumnItems()

			if len(left) != (n+1)/2 {
				t.Errorf("left column has %d items, want %d", len(left), (n+1)/2)
			}
			if len(left) != len(right) {
				t.Errorf("columns are not balanced: %d and %d", len(left), len(right))
			}
			want := append([]*SummaryItem{}, items...)
			if n%2 != 0 {
				want = append(want, &SummaryItem{Empty: true})
			}
			if diff := cmp.Diff(want, append(left, right...)); diff != "" {
				t.Error(diff)
			}
			if len(s.Items) != n {
				t.Errorf("items were modified: %d", len(s.Items))
			}
		})
	}
}

func TestSummaryColumnsRecomputed(t *testing.T) {
	s := &SummarySlide{Items: []*SummaryItem{{Title: "a"}}}
	first := s.RightColumnItems()
	s.Items = append(s.Items, &SummaryItem{Title: "b"})
	second := s.RightColumnItems()
	if !first[0].Empty {
		t.Errorf("got %#v", first[0])
	}
	if second[0].Title != "b" {
		t.Errorf("got %#v", second[0])
	}
}

func TestAspectRatioSize(t *testing.T) {
	tests := []struct {
		in      AspectRatio
		w, h    int
		wantErr bool
	}{
		{AspectRatio16x9, 1280, 720, false},
		{AspectRatio4x3, 1024, 768, false},
		{AspectRatio("21:9"), 0, 0, true},
		{AspectRatio(""), 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			w, h, err := tt.in.Size()
			if (err != nil) != tt.wantErr {
				t.Fatalf("got error %v", err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("got %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestDefaultSlideContentHTML(t *testing.T) {
	if got := (&DefaultSlide{}).ContentHTML(); got != "" {
		t.Errorf("got %q", got)
	}
	if got := (&DefaultSlide{Content: ptr("<p>x</p>")}).ContentHTML(); got != "<p>x</p>" {
		t.Errorf("got %q", got)
	}
}
