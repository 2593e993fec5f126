package measure

import (
	"testing"
)

func TestCells_Width(t *testing.T) {
	type tc struct {
		text     string
		expected float64
	}

	tests := map[string]tc{
		"empty":      {text: "", expected: 0},
		"ascii":      {text: "Submit", expected: 6},
		"wide runes": {text: "表单", expected: 4},
		"multiline":  {text: "ok\nCancel\nno", expected: 6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := (Cells{}).Width(tt.text); got != tt.expected {
				t.Errorf("Width(%q) = %g, want %g", tt.text, got, tt.expected)
			}
		})
	}
	if got := (Cells{}).LineHeight(); got != 1 {
		t.Errorf("LineHeight() = %d, want 1", got)
	}
}

func TestFace(t *testing.T) {
	f, err := NewFace(DefaultFontSize)
	if err != nil {
		t.Fatalf("NewFace() error = %v", err)
	}
	defer f.Close()

	if got := f.LineHeight(); got != DefaultFontSize+3 {
		t.Errorf("LineHeight() = %d, want %d", got, DefaultFontSize+3)
	}
	short, long := f.Width("ab"), f.Width("abab")
	if short <= 0 {
		t.Fatalf("Width(%q) = %g, want > 0", "ab", short)
	}
	if long <= short {
		t.Errorf("Width(%q) = %g, not wider than Width(%q) = %g", "abab", long, "ab", short)
	}
	if got := f.Width("ab\nab"); got != short {
		t.Errorf("Width of two equal lines = %g, want %g", got, short)
	}
}

func TestNewFace_Errors(t *testing.T) {
	if _, err := NewFace(0); err == nil {
		t.Error("NewFace(0) should fail")
	}
	if _, err := NewFaceFrom([]byte("not a font"), 12); err == nil {
		t.Error("NewFaceFrom(garbage) should fail")
	}
}

func TestLines(t *testing.T) {
	if got := len(Lines("")); got != 1 {
		t.Errorf("len(Lines(\"\")) = %d, want 1", got)
	}
	if got := len(Lines("a\nb\n")); got != 3 {
		t.Errorf("len(Lines(\"a\\nb\\n\")) = %d, want 3", got)
	}
}
