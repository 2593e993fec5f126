package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	forms "github.com/grindlemire/go-forms"
	"github.com/grindlemire/go-forms/internal/formfile"
	"github.com/grindlemire/go-forms/internal/render"
)

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// runPlay implements the play subcommand.
// It runs the form's frame loop, redrawing the terminal on every painted
// frame until the animations finish, the time limit passes or the user
// interrupts.
func runPlay(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(w)
	var pf previewFlags
	pf.register(fs)
	fps := fs.Int("fps", 30, "Frames per second")
	limit := fs.Duration("for", 0, "Stop after this long (default: when animations finish)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("play takes exactly one form file")
	}

	cfg, border, err := pf.setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *limit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *limit)
		defer cancel()
	}

	bounded := *limit > 0
	painter := forms.PainterFunc(func(f *forms.Form) error {
		fmt.Fprint(w, clearScreen+render.Draw(f, border).StringTrimmed()+"\n")
		if !bounded && !f.Animating() {
			f.Stop()
		}
		return nil
	})
	o, err := pf.open(fs.Arg(0), cfg, forms.WithFrameRate(*fps), forms.WithPainter(painter))
	if err != nil {
		return err
	}
	if !bounded && hasLoop(o.doc) {
		return errors.New("the form loops forever; give a time limit with -for")
	}

	start := time.Now()
	if err := o.form.Run(ctx); err != nil {
		return err
	}
	fmt.Fprintf(w, "Played %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// hasLoop reports whether any animation in doc repeats forever.
func hasLoop(doc *formfile.Document) bool {
	for _, c := range doc.Constraints {
		if c.Static != nil && c.Static.Animate != nil && c.Static.Animate.Loop {
			return true
		}
	}
	return false
}
