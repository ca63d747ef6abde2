package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		maxWidth int
		want     string
	}{
		{"fits", "Veggie", 10, "Veggie"},
		{"exact", "Veggie", 6, "Veggie"},
		{"cut", "Macarrão com pimentão", 10, "Macarrão …"},
		{"newlines flattened", "line one\nline two", 40, "line one line two"},
		{"zero width", "abc", 0, ""},
		{"only room for ellipsis", "abc", 1, "…"},
		{"wide runes", "寿司寿司寿司", 5, "寿司…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.maxWidth)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxWidth, got, tt.want)
			}
			if VisualWidth(got) > tt.maxWidth && tt.maxWidth > 0 {
				t.Errorf("result %q wider than %d", got, tt.maxWidth)
			}
		})
	}
}

func TestPadRightVisual(t *testing.T) {
	if got := PadRightVisual("Name", 8); got != "Name    " {
		t.Errorf("PadRightVisual = %q", got)
	}
	if got := PadRightVisual("Description", 5); got != "Desc…" {
		t.Errorf("PadRightVisual overflow = %q", got)
	}
}
