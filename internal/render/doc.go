// Package render draws laid-out forms: as box-drawing outlines on a
// character grid for terminal previews, and as PNG images with an optional
// overlay of the constraint segments.
package render
