package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	forms "github.com/grindlemire/go-forms"
)

const validForm = `
surface: {width: 320, height: 200}
controls:
  - name: ok
    place: {x2: 10, y2: 10, w: 80}
  - name: cancel
constraints:
  - align: {a: cancel.x2, b: ok.x2w, offset: 10}
  - align: {a: cancel.y, b: ok.y}
`

const cyclicForm = `
controls: [{name: a}, {name: b}]
constraints:
  - align: {a: a.x, b: b.x}
  - align: {a: b.x, b: a.x}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// noConfig points -config at a file that does not exist, so defaults apply.
func noConfig(t *testing.T) []string {
	return []string{"-config", filepath.Join(t.TempDir(), "none.toml")}
}

func TestCollectFormFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "")
	writeFile(t, dir, "b.yml", "")
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, "sub/c.yaml", "")

	type tc struct {
		paths []string
		want  []string
	}

	tests := map[string]tc{
		"directory": {
			paths: []string{dir},
			want:  []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yml")},
		},
		"recursive": {
			paths: []string{dir + "/..."},
			want:  []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yml"), filepath.Join(dir, "sub", "c.yaml")},
		},
		"file": {
			paths: []string{filepath.Join(dir, "sub", "c.yaml")},
			want:  []string{filepath.Join(dir, "sub", "c.yaml")},
		},
		"other extension": {
			paths: []string{filepath.Join(dir, "notes.txt")},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := collectFormFiles(tt.paths)
			if err != nil {
				t.Fatalf("collectFormFiles() error = %v", err)
			}
			slices.Sort(got)
			if !slices.Equal(got, tt.want) {
				t.Errorf("collectFormFiles() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := collectFormFiles([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Error("collectFormFiles(missing) error = nil, want error")
	}
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", validForm)

	var out bytes.Buffer
	args := append(noConfig(t), "-v", "-j", "2", good)
	if err := runCheck(args, &out); err != nil {
		t.Fatalf("runCheck() error = %v\n%s", err, out.String())
	}
	for _, want := range []string{"good.yaml", "ok", "60,158 250x32", "All 1 file(s) laid out"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	bad := writeFile(t, dir, "bad.yaml", cyclicForm)
	out.Reset()
	err := runCheck(append(noConfig(t), good, bad), &out)
	if err == nil || !strings.Contains(err.Error(), "1 file(s) had errors") {
		t.Errorf("runCheck() error = %v, want one failed file", err)
	}
	if !strings.Contains(out.String(), "bad.yaml") {
		t.Errorf("output does not name the failing file:\n%s", out.String())
	}

	if err := runCheck(append(noConfig(t), "-j", "0", good), &out); err == nil {
		t.Error("runCheck(-j 0) error = nil, want error")
	}
	if err := runCheck(append(noConfig(t), t.TempDir()), &out); err == nil {
		t.Error("runCheck(empty dir) error = nil, want error")
	}
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "login.yaml", validForm)

	var out bytes.Buffer
	if err := runRender(append(noConfig(t), "-overlay", path), &out); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}
	png := filepath.Join(dir, "login.png")
	if info, err := os.Stat(png); err != nil || info.Size() == 0 {
		t.Errorf("Stat(%s) = %v, %v; want a non-empty image", png, info, err)
	}

	custom := filepath.Join(dir, "out", "custom.png")
	if err := os.MkdirAll(filepath.Dir(custom), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := runRender(append(noConfig(t), "-o", custom, "-scale", "2", path), &out); err != nil {
		t.Fatalf("runRender(-o) error = %v", err)
	}
	if !strings.Contains(out.String(), "Wrote "+custom) {
		t.Errorf("output = %q, want it to name %s", out.String(), custom)
	}

	if err := runRender(noConfig(t), &out); err == nil {
		t.Error("runRender() with no file error = nil, want error")
	}
}

func TestRunPreview(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "box.yaml", "controls: [{name: ok, place: {x: 1, y: 1, w: 6, h: 3}}]\n")

	var out bytes.Buffer
	args := append(noConfig(t), "-border", "ascii", "-width", "12", "-height", "5", path)
	if err := runPreview(args, &out); err != nil {
		t.Fatalf("runPreview() error = %v", err)
	}
	if want := "\n +----+\n |ok  |\n +----+\n"; !strings.HasPrefix(out.String(), want) {
		t.Errorf("preview =\n%q\nwant prefix\n%q", out.String(), want)
	}
	for _, want := range []string{"Control", "ok"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("rect table missing %q:\n%s", want, out.String())
		}
	}

	if err := runPreview(append(noConfig(t), "-border", "dotted", "-width", "1", "-height", "1", path), &out); err == nil {
		t.Error("runPreview(-border dotted) error = nil, want error")
	}
}

func TestRunPlay(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "slide.yaml", `
controls: [{name: a, place: {y: 0, w: 4, h: 3}}]
constraints:
  - static: {ref: a.x, value: 0, animate: {to: 5, duration: 30ms}}
`)

	var out bytes.Buffer
	args := append(noConfig(t), "-width", "12", "-height", "4", "-fps", "120", path)
	if err := runPlay(args, &out); err != nil {
		t.Fatalf("runPlay() error = %v", err)
	}
	if !strings.Contains(out.String(), "Played") {
		t.Errorf("output missing the summary:\n%s", out.String())
	}

	loop := writeFile(t, dir, "loop.yaml", `
controls: [{name: a, place: {y: 0, w: 4, h: 3}}]
constraints:
  - static: {ref: a.x, value: 0, animate: {to: 5, duration: 30ms, loop: true}}
`)
	if err := runPlay(append(noConfig(t), "-width", "12", "-height", "4", loop), &out); err == nil {
		t.Error("runPlay(loop) error = nil, want a request for -for")
	}
	if err := runPlay(append(noConfig(t), "-width", "12", "-height", "4", "-for", "50ms", loop), &out); err != nil {
		t.Errorf("runPlay(loop, -for) error = %v", err)
	}
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "form.yaml", "controls: []\n")
	writeFile(t, dir, "other.yaml", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	redraws := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, &bytes.Buffer{}, path, func() { redraws <- struct{}{} })
	}()

	wait := func(what string) {
		t.Helper()
		select {
		case <-redraws:
		case <-ctx.Done():
			t.Fatalf("timed out waiting for %s", what)
		}
	}
	wait("the initial draw")

	if err := os.WriteFile(path, []byte("controls: [{name: a}]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wait("a redraw after the write")

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watchFile() error = %v", err)
	}
}

func TestExampleFormsLayOut(t *testing.T) {
	var out bytes.Buffer
	if err := runCheck(append(noConfig(t), "-v", "../../examples/forms"), &out); err != nil {
		t.Fatalf("runCheck(examples) error = %v\n%s", err, out.String())
	}
}

func TestCheckFile_Bounds(t *testing.T) {
	path := writeFile(t, t.TempDir(), "form.yaml", validForm)
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "none.toml"))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	r := checkFile(path, cfg)
	if r.err != nil {
		t.Fatalf("checkFile() error = %v", r.err)
	}
	if r.controls != 2 || r.constraints != 5 {
		t.Errorf("controls, constraints = %d, %d, want 2, 5", r.controls, r.constraints)
	}
	// cancel spans 60..220 and ok 230..310, both at y 158
	if want := (forms.Rect{X: 60, Y: 158, Width: 250, Height: 32}); r.bounds != want {
		t.Errorf("bounds = %+v, want %+v", r.bounds, want)
	}
}
