package anim

import (
	"fmt"
	"slices"
	"strings"
)

// Easing maps linear progress t in [0, 1] to eased progress.
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func InQuad(t float64) float64  { return t * t }
func OutQuad(t float64) float64 { return t * (2 - t) }
func InOutQuad(t float64) float64 {
	if t < .5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func InCubic(t float64) float64 { return t * t * t }
func OutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}
func InOutCubic(t float64) float64 {
	if t < .5 {
		return 4 * t * t * t
	}
	return (t-1)*(2*t-2)*(2*t-2) + 1
}

func InQuart(t float64) float64 { return t * t * t * t }
func OutQuart(t float64) float64 {
	t--
	return 1 - t*t*t*t
}
func InOutQuart(t float64) float64 {
	if t < .5 {
		return 8 * t * t * t * t
	}
	t--
	return 1 - 8*t*t*t*t
}

func InQuint(t float64) float64 { return t * t * t * t * t }
func OutQuint(t float64) float64 {
	t--
	return 1 + t*t*t*t*t
}
func InOutQuint(t float64) float64 {
	if t < .5 {
		return 16 * t * t * t * t * t
	}
	t--
	return 1 + 16*t*t*t*t*t
}

var easings = map[string]Easing{
	"linear":            Linear,
	"ease-in-quad":      InQuad,
	"ease-out-quad":     OutQuad,
	"ease-in-out-quad":  InOutQuad,
	"ease-in-cubic":     InCubic,
	"ease-out-cubic":    OutCubic,
	"ease-in-out-cubic": InOutCubic,
	"ease-in-quart":     InQuart,
	"ease-out-quart":    OutQuart,
	"ease-in-out-quart": InOutQuart,
	"ease-in-quint":     InQuint,
	"ease-out-quint":    OutQuint,
	"ease-in-out-quint": InOutQuint,
}

// Lookup returns the easing registered under name, e.g. "ease-in-out-cubic".
func Lookup(name string) (Easing, error) {
	e, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return e, nil
}

// Names lists the registered easings in sorted order.
func Names() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
