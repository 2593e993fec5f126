package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/sync/errgroup"

	forms "github.com/grindlemire/go-forms"
	"github.com/grindlemire/go-forms/internal/config"
)

// checkResult is the outcome of laying out one file.
type checkResult struct {
	path        string
	controls    int
	constraints int
	rounds      int
	bounds      forms.Rect
	err         error
}

// runCheck implements the check subcommand.
// Every file is built into its own form and laid out once.
func runCheck(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(w)
	verbose := fs.Bool("v", false, "Print a summary table")
	jobs := fs.Int("j", runtime.NumCPU(), "Files checked in parallel")
	configPath := fs.String("config", config.DefaultFile, "Configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobs < 1 {
		return fmt.Errorf("-j must be at least 1, got %d", *jobs)
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectFormFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no form files found")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	results := make([]checkResult, len(files))
	var g errgroup.Group
	g.SetLimit(*jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = checkFile(path, cfg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errorCount int
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(w, "%v\n", r.err)
			errorCount++
		}
	}
	if *verbose {
		fmt.Fprintln(w, checkTable(results))
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	if *verbose {
		fmt.Fprintf(w, "All %d file(s) laid out\n", len(files))
	}
	return nil
}

// checkFile builds and lays out a single form. Each call owns its form, so
// files can be checked concurrently.
func checkFile(path string, cfg config.Config) checkResult {
	r := checkResult{path: path}
	o, err := openForm(path, cfg, "", 0, 0)
	if err != nil {
		r.err = err
		return r
	}
	tree := o.form.Tree()
	r.controls, r.constraints = count(tree)
	if err := o.form.Layout(); err != nil {
		r.err = fmt.Errorf("%s: %w", path, err)
		return r
	}
	r.rounds = tree.Rounds()
	r.bounds = bounds(tree)
	return r
}

// count returns the controls below the root and the constraints they own.
func count(tree *forms.Tree) (controls, constraints int) {
	root := tree.Root()
	tree.Walk(root, func(id forms.NodeID) {
		if id != root {
			controls++
		}
		constraints += len(tree.Owned(id))
	})
	return controls, constraints
}

// bounds returns the smallest rectangle holding every solved control.
func bounds(tree *forms.Tree) forms.Rect {
	var b forms.Rect
	root := tree.Root()
	tree.Walk(root, func(id forms.NodeID) {
		if id == root {
			return
		}
		if r, ok := tree.AbsRect(id); ok {
			b = b.Union(r)
		}
	})
	return b
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	okStyle     = cellStyle.Foreground(lipgloss.Color("2"))
	failStyle   = cellStyle.Foreground(lipgloss.Color("1"))
)

func checkTable(results []checkResult) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("File", "Controls", "Constraints", "Rounds", "Bounds", "Result")
	for _, r := range results {
		status := "ok"
		if r.err != nil {
			status = "failed"
		}
		extent := "-"
		if !r.bounds.IsEmpty() {
			extent = fmt.Sprintf("%d,%d %dx%d", r.bounds.X, r.bounds.Y, r.bounds.Width, r.bounds.Height)
		}
		t.Row(r.path, strconv.Itoa(r.controls), strconv.Itoa(r.constraints), strconv.Itoa(r.rounds), extent, status)
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case col == 5 && results[row].err != nil:
			return failStyle
		case col == 5:
			return okStyle
		}
		return cellStyle
	})
	return t.String()
}
