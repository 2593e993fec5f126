// Package formfile reads declarative form documents written in YAML and
// builds them into constraint trees.
//
// A document lists controls, optionally nested, and the constraints
// between them. Coordinates are referenced as "name.coord", for example
// "ok.x2" or "panel.w":
//
//	surface: {width: 320, height: 200}
//	controls:
//	  - name: ok
//	    place: {x2: 10, y2: 10, w: 80}
//	  - name: cancel
//	constraints:
//	  - align: {a: cancel.x2, b: ok.x2w, offset: 10}
//	  - align: {a: cancel.y, b: ok.y}
package formfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Document is a parsed form document.
type Document struct {
	Surface     Surface      `yaml:"surface"`
	Controls    []Control    `yaml:"controls"`
	Constraints []Constraint `yaml:"constraints"`
}

// Surface optionally fixes the size and units the form is solved against.
// Zero values leave the caller's surface alone.
type Surface struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Units  string `yaml:"units"`
}

// Control kinds.
const (
	KindBox   = "box"
	KindLabel = "label"
	KindCover = "cover"
	KindRow   = "row"
)

// Control declares one control and its children.
type Control struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// Text is the label text. A label without a name is named by its text.
	Text string `yaml:"text"`
	// Fit turns label self-sizing off when false.
	Fit *bool `yaml:"fit"`

	// Place fixes coordinates by short name, such as {x: 10, w: 80}.
	Place map[string]float64 `yaml:"place"`

	Children []Control `yaml:"children"`
}

// Constraint declares exactly one constraint.
type Constraint struct {
	Align      *Align      `yaml:"align"`
	Static     *Static     `yaml:"static"`
	Fill       *Fill       `yaml:"fill"`
	Fit        *Fit        `yaml:"fit"`
	Center     *Center     `yaml:"center"`
	Size       *Size       `yaml:"size"`
	FillParent *FillParent `yaml:"fill_parent"`
}

// Align keeps A equal to B plus Offset.
type Align struct {
	A      string `yaml:"a"`
	B      string `yaml:"b"`
	Offset int    `yaml:"offset"`
}

// Static fixes Ref to Value, optionally animating it.
type Static struct {
	Ref     string   `yaml:"ref"`
	Value   float64  `yaml:"value"`
	Animate *Animate `yaml:"animate"`
}

// Animate moves a static value from the declared value to To.
type Animate struct {
	To       float64       `yaml:"to"`
	Duration time.Duration `yaml:"duration"`
	Easing   string        `yaml:"easing"`
	Loop     bool          `yaml:"loop"`
}

// Fill shares a size between Refs by Ratios.
type Fill struct {
	Refs   []string `yaml:"refs"`
	Ratios []int    `yaml:"ratios"`
}

// Fit sizes Control on Axis to its children.
type Fit struct {
	Control string `yaml:"control"`
	Axis    string `yaml:"axis"`
	Padding int    `yaml:"padding"`
	Min     int    `yaml:"min"`
}

// Center centres Control on Axis, fixing its size first when Size is set.
type Center struct {
	Control string   `yaml:"control"`
	Axis    string   `yaml:"axis"`
	Size    *float64 `yaml:"size"`
}

// Size fixes the width and height of Control.
type Size struct {
	Control string  `yaml:"control"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// FillParent spreads Controls across their parent on Axis.
type FillParent struct {
	Controls []string `yaml:"controls"`
	Axis     string   `yaml:"axis"`
	Spacing  int      `yaml:"spacing"`
}

// ErrEmpty is returned for a document with no content.
var ErrEmpty = errors.New("empty form document")

// Parse decodes a document. Unknown fields are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("parsing form: %w", err)
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// kinds names the constraints set in c. A valid entry sets exactly one.
func (c Constraint) kinds() []string {
	var kinds []string
	if c.Align != nil {
		kinds = append(kinds, "align")
	}
	if c.Static != nil {
		kinds = append(kinds, "static")
	}
	if c.Fill != nil {
		kinds = append(kinds, "fill")
	}
	if c.Fit != nil {
		kinds = append(kinds, "fit")
	}
	if c.Center != nil {
		kinds = append(kinds, "center")
	}
	if c.Size != nil {
		kinds = append(kinds, "size")
	}
	if c.FillParent != nil {
		kinds = append(kinds, "fill_parent")
	}
	return kinds
}
