package forms

import "testing"

func TestNew_InvalidOptions(t *testing.T) {
	type tc struct {
		opts []FormOption
	}

	tests := map[string]tc{
		"zero frame rate":       {opts: []FormOption{WithFrameRate(0)}},
		"frame rate too high":   {opts: []FormOption{WithFrameRate(241)}},
		"zero rounds":           {opts: []FormOption{WithMaxRounds(0)}},
		"zero queue":            {opts: []FormOption{WithQueueSize(0)}},
		"negative default size": {opts: []FormOption{WithDefaultSize(-1, 10)}},
		"negative surface":      {opts: []FormOption{WithSurface(Surface{Width: -1})}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := New(tt.opts...); err == nil {
				t.Error("New() should fail")
			}
		})
	}
}

func TestNew_DefaultsReachControls(t *testing.T) {
	f := newTestForm(t,
		WithSurface(CellSurface(80, 24)),
		WithDefaultSize(10, 2),
		WithDefaultStart(4, 5),
		WithFrameRate(30),
		WithMaxRounds(3),
	)
	a, err := f.Add(f.Root(), Named("a"))
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := f.Layout(); err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	r, _ := f.Rect(a)
	if want := NewRect(4, 5, 10, 2); r != want {
		t.Errorf("Rect() = %+v, want %+v", r, want)
	}
	if f.frameDuration.Milliseconds() != 33 {
		t.Errorf("frame duration = %v, want 33ms", f.frameDuration)
	}
}
