package bar

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	cases := []struct {
		percent float64
		filled  int
		suffix  string
	}{
		{0, 0, "0.0%"},
		{30, 6, "30.0%"},
		{33.3, 6, "33.3%"},
		{50, 10, "50.0%"},
		{100, 20, "100.0%"},
	}
	for _, c := range cases {
		got := Render(c.percent)
		if n := strings.Count(got, "█"); n != c.filled {
			t.Fatalf("Render(%v) filled %d cells, want %d: %q", c.percent, n, c.filled, got)
		}
		if !strings.HasSuffix(got, c.suffix) {
			t.Fatalf("Render(%v) = %q, want suffix %q", c.percent, got, c.suffix)
		}
	}
}

func TestRenderClamps(t *testing.T) {
	if got := Render(150); strings.Count(got, "█") != 20 {
		t.Fatalf("over 100%% should fill the whole bar: %q", got)
	}
	if got := Render(-10); strings.Count(got, "█") != 0 {
		t.Fatalf("negative should fill nothing: %q", got)
	}
}
