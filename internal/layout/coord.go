package layout

import (
	"fmt"
	"strings"
)

// Axis selects one of the two independent coordinate systems.
type Axis uint8

const (
	Horizontal Axis = iota // Left to right
	Vertical               // Top to bottom
)

// Axes lists both axes in solving order.
var Axes = [...]Axis{Horizontal, Vertical}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// ParseAxis accepts "horizontal"/"x" and "vertical"/"y".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "x", "h":
		return Horizontal, nil
	case "vertical", "y", "v":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// CoordKind identifies one of the five derivable quantities on an axis.
type CoordKind uint8

const (
	Start         CoordKind = iota // Distance from the parent's near edge
	Size                           // Extent along the axis
	End                            // Distance from the parent's far edge
	StartPlusSize                  // Far edge, measured from the parent's near edge
	EndPlusSize                    // Near edge, measured from the parent's far edge
)

const kindsPerAxis = 5

// Coord identifies a quantity on one axis. Coord values are comparable.
type Coord struct {
	Axis Axis
	Kind CoordKind
}

// The ten coordinates of the catalog.
var (
	X   = Coord{Horizontal, Start}
	Y   = Coord{Vertical, Start}
	W   = Coord{Horizontal, Size}
	H   = Coord{Vertical, Size}
	X2  = Coord{Horizontal, End}
	Y2  = Coord{Vertical, End}
	XW  = Coord{Horizontal, StartPlusSize}
	YH  = Coord{Vertical, StartPlusSize}
	X2W = Coord{Horizontal, EndPlusSize}
	Y2H = Coord{Vertical, EndPlusSize}
)

// AllCoords lists every coordinate in the catalog.
var AllCoords = [...]Coord{X, Y, W, H, X2, Y2, XW, YH, X2W, Y2H}

var coordNames = [2][kindsPerAxis]string{
	{"x", "w", "x2", "xw", "x2w"},
	{"y", "h", "y2", "yh", "y2h"},
}

// NewCoord returns the coordinate of the given kind on axis.
func NewCoord(axis Axis, kind CoordKind) Coord {
	return Coord{Axis: axis, Kind: kind}
}

// ParentDependent reports whether deriving c requires the parent's Size.
func (c Coord) ParentDependent() bool {
	return c.Kind == End || c.Kind == EndPlusSize
}

// Valid reports whether c names one of the ten catalog coordinates.
func (c Coord) Valid() bool {
	return c.Axis <= Vertical && c.Kind <= EndPlusSize
}

func (c Coord) String() string {
	if !c.Valid() {
		return "?"
	}
	return coordNames[c.Axis][c.Kind]
}

// index maps a coordinate to its slot.
func (c Coord) index() int {
	return int(c.Axis)*kindsPerAxis + int(c.Kind)
}

// ParseCoord parses the short names used by String ("x", "w", "x2w", ...).
func ParseCoord(s string) (Coord, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllCoords {
		if coordNames[c.Axis][c.Kind] == s {
			return c, nil
		}
	}
	return Coord{}, fmt.Errorf("unknown coordinate %q", s)
}
