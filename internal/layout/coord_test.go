package layout

import "testing"

func TestCoord_ParentDependent(t *testing.T) {
	type tc struct {
		coord    Coord
		expected bool
	}

	tests := map[string]tc{
		"start":           {coord: X, expected: false},
		"size":            {coord: H, expected: false},
		"end":             {coord: X2, expected: true},
		"start plus size": {coord: YH, expected: false},
		"end plus size":   {coord: Y2H, expected: true},
		"vertical end":    {coord: Y2, expected: true},
		"far edge":        {coord: XW, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.coord.ParentDependent(); got != tt.expected {
				t.Errorf("%s.ParentDependent() = %v, want %v", tt.coord, got, tt.expected)
			}
		})
	}
}

func TestCoord_CatalogIsDistinct(t *testing.T) {
	seen := make(map[int]Coord)
	for _, c := range AllCoords {
		if prev, ok := seen[c.index()]; ok {
			t.Fatalf("%s and %s share slot %d", prev, c, c.index())
		}
		seen[c.index()] = c
	}
	if len(seen) != 10 {
		t.Errorf("catalog has %d coordinates, want 10", len(seen))
	}
}

func TestParseCoord(t *testing.T) {
	for _, c := range AllCoords {
		got, err := ParseCoord(c.String())
		if err != nil {
			t.Fatalf("ParseCoord(%q) error = %v", c.String(), err)
		}
		if got != c {
			t.Errorf("ParseCoord(%q) = %v, want %v", c.String(), got, c)
		}
	}
	if _, err := ParseCoord("z"); err == nil {
		t.Error("ParseCoord(\"z\") should fail")
	}
}

func TestParseAxis(t *testing.T) {
	type tc struct {
		input    string
		expected Axis
		wantErr  bool
	}

	tests := map[string]tc{
		"horizontal": {input: "horizontal", expected: Horizontal},
		"x alias":    {input: "X", expected: Horizontal},
		"vertical":   {input: " vertical ", expected: Vertical},
		"y alias":    {input: "y", expected: Vertical},
		"unknown":    {input: "diagonal", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseAxis(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAxis(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.expected {
				t.Errorf("ParseAxis(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
