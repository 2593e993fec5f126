package layout

import "math"

// Description explains which geometric relationship a constraint represents.
// It is informational only; nothing in the solver reads it.
type Description struct {
	Kind    ConstraintKind
	Color   string
	Summary string

	// Parent is the control whose coordinate space the segments are in.
	Parent   NodeID
	Segments []Segment
}

// Segment is a measured distance drawn for one (control, coordinate) pair.
type Segment struct {
	Node     NodeID
	Coord    Coord
	From, To Point
}

// Translate moves the segment by offset, for example into the root's space.
func (s Segment) Translate(offset Point) Segment {
	s.From = s.From.Add(offset)
	s.To = s.To.Add(offset)
	return s
}

var overlayColors = [...]string{
	KindAlign:   "orange",
	KindStatic:  "cornflowerblue",
	KindFill:    "purple",
	KindContent: "green",
	KindCenter:  "pink",
}

// Describe returns the overlay description of a constraint using the
// geometry of the last layout pass. Pairs whose control is not fully
// resolved are left out of Segments.
func (t *Tree) Describe(id ConstraintID) (Description, error) {
	c, err := t.constraint(id)
	if err != nil {
		return Description{}, err
	}
	k := c.body.kind()
	d := Description{
		Kind:    k,
		Color:   overlayColors[k],
		Summary: t.Summary(id),
		Parent:  c.parent,
	}
	for i, r := range c.refs {
		offset := 0
		switch k {
		case KindAlign:
			offset = 10 * (i + 1)
		case KindFill:
			offset = 30
		}
		if s, ok := t.segment(r, offset); ok {
			d.Segments = append(d.Segments, s)
		}
	}
	return d, nil
}

// segment measures the distance a coordinate stands for, a third of the
// way into the control and shifted by offset across the axis.
func (t *Tree) segment(r Ref, offset int) (Segment, bool) {
	rect, ok := t.Rect(r.Node)
	if !ok {
		return Segment{}, false
	}
	var pw, ph int
	if p := t.nodes[r.Node].parent; p != NoNode {
		pw, _ = t.nodes[p].get(W)
		ph, _ = t.nodes[p].get(H)
	}
	xmid := rect.X + int(math.Round(float64(rect.Width)/3))
	ymid := rect.Y + int(math.Round(float64(rect.Height)/3))
	if r.Coord.Axis == Horizontal {
		ymid += offset
	} else {
		xmid += offset
	}

	s := Segment{Node: r.Node, Coord: r.Coord}
	switch r.Coord {
	case X:
		s.From, s.To = Point{0, ymid}, Point{rect.X, ymid}
	case Y:
		s.From, s.To = Point{xmid, 0}, Point{xmid, rect.Y}
	case W:
		s.From, s.To = Point{rect.X, ymid}, Point{rect.Right(), ymid}
	case H:
		s.From, s.To = Point{xmid, rect.Y}, Point{xmid, rect.Bottom()}
	case X2:
		s.From, s.To = Point{pw, ymid}, Point{rect.Right(), ymid}
	case Y2:
		s.From, s.To = Point{xmid, ph}, Point{xmid, rect.Bottom()}
	case XW:
		s.From, s.To = Point{0, ymid}, Point{rect.Right(), ymid}
	case YH:
		s.From, s.To = Point{xmid, 0}, Point{xmid, rect.Bottom()}
	case X2W:
		s.From, s.To = Point{pw, ymid}, Point{rect.X, ymid}
	case Y2H:
		s.From, s.To = Point{xmid, ph}, Point{xmid, rect.Y}
	default:
		return Segment{}, false
	}
	return s, true
}
