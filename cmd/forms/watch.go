package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/grindlemire/go-forms/internal/debug"
)

// settle coalesces the burst of events editors produce for one save.
const settle = 50 * time.Millisecond

// runWatch implements the watch subcommand.
// It draws the form, then draws it again each time the file is written,
// until interrupted. Errors are printed in place of the form.
func runWatch(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(w)
	var pf previewFlags
	pf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("watch takes exactly one form file")
	}

	cfg, border, err := pf.setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return watchFile(ctx, w, fs.Arg(0), func() {
		fmt.Fprint(w, clearScreen)
		if err := drawPreview(w, fs.Arg(0), cfg, border, &pf); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	})
}

// watchFile calls redraw once, then after every change to path until ctx is
// done. The directory is watched so editors that replace the file on save
// are still seen.
func watchFile(ctx context.Context, w io.Writer, path string, redraw func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	redraw()
	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			debug.Log("watch: %s", ev)
			timer = time.After(settle)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w, "watch error: %v\n", err)
		case <-timer:
			timer = nil
			redraw()
		}
	}
}
