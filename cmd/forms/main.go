// Package main provides the forms CLI for checking, rendering and previewing
// declarative form documents.
//
// Usage:
//
//	forms check [path...]     Lay out form files and report errors
//	forms render file         Render a form to PNG
//	forms preview file        Draw a form in the terminal
//	forms play file           Run a form's animations in the terminal
//	forms watch file          Re-draw a form whenever it changes
//	forms help                Show help
package main

import (
	"fmt"
	"os"
)

const version = "0.1.0"

const usage = `forms - constraint layout for form documents

Usage:
  forms <command> [options] [path...]

Commands:
  check       Lay out form files and report errors
  render      Render a form to a PNG image
  preview     Draw a form with box characters in the terminal
  play        Run a form's animations in the terminal
  watch       Re-draw a form in the terminal whenever the file changes
  version     Print version information
  help        Show this help message

Options:
  -config     Configuration file (default forms.toml)
  -v          Verbose output (check)
  -j          Files checked in parallel (check)
  -o          Output file (render)
  -overlay    Draw constraint segments (render)
  -scale      Scale factor (render)
  -terminal   Render at the terminal window's pixel size (render)
  -border     single, double, rounded, thick or ascii (preview, play, watch)

Examples:
  forms check ./...                   Recursively check all form files
  forms check -v -j 8 forms/          Check a directory with a summary table
  forms render -o login.png login.yaml
  forms render -overlay login.yaml    Render with the constraint overlay
  forms preview login.yaml            Draw the form at the terminal size
  forms watch login.yaml              Re-draw on every save
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "check":
		err = runCheck(args, os.Stdout)
	case "render":
		err = runRender(args, os.Stdout)
	case "preview":
		err = runPreview(args, os.Stdout)
	case "play":
		err = runPlay(args, os.Stdout)
	case "watch":
		err = runWatch(args, os.Stdout)
	case "version":
		fmt.Printf("forms version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
