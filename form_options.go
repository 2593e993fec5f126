package forms

import (
	"fmt"
	"time"
)

// FormOption is a functional option for configuring a Form.
type FormOption func(*Form) error

// WithSurface sets the hosting surface. Apply it before the options that
// adjust the surface's defaults.
func WithSurface(s Surface) FormOption {
	return func(f *Form) error {
		f.surface = s
		return nil
	}
}

// WithDefaultSize sets the size given to controls nothing else sizes.
func WithDefaultSize(width, height int) FormOption {
	return func(f *Form) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("default size %dx%d must not be negative", width, height)
		}
		f.surface.Defaults.Width = width
		f.surface.Defaults.Height = height
		return nil
	}
}

// WithDefaultStart sets the offset given to controls nothing else places.
func WithDefaultStart(x, y int) FormOption {
	return func(f *Form) error {
		f.surface.Defaults.StartX = x
		f.surface.Defaults.StartY = y
		return nil
	}
}

// WithMaxRounds bounds the refinement rounds of one layout pass.
// Default is 20. Must be at least 1.
func WithMaxRounds(n int) FormOption {
	return func(f *Form) error {
		if n < 1 {
			return fmt.Errorf("max rounds must be at least 1")
		}
		f.maxRounds = n
		return nil
	}
}

// WithFrameRate sets the target frame rate for Run.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) FormOption {
	return func(f *Form) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		f.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithPainter sets what draws the form after each layout.
func WithPainter(p Painter) FormOption {
	return func(f *Form) error {
		f.painter = p
		return nil
	}
}

// WithQueueSize sets the capacity of the update queue used by Queue.
// Default is 256. Must be at least 1.
func WithQueueSize(size int) FormOption {
	return func(f *Form) error {
		if size < 1 {
			return fmt.Errorf("queue size must be at least 1")
		}
		f.queueSize = size
		return nil
	}
}
