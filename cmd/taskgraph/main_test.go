package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/taskgraph"
	"github.com/iw2rmb/taskgraph/editor"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func missingConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.toml")
}

func TestSnapshot_WritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "graph.png")

	got, err := execute(t, "snapshot", "--config", missingConfig(t),
		"--nodes", "3", "--connect", "--width", "320", "--height", "240", "--out", out)
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if !strings.Contains(got, "3 nodes, 2 edges") {
		t.Fatalf("unexpected output %q", got)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("png size: got %dx%d, want 320x240", b.Dx(), b.Dy())
	}
}

func TestWriteSnapshot_SeedIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	opts := snapshotOptions{nodes: 4, seed: 7, out: filepath.Join(dir, "a.png")}

	a, err := writeSnapshot(opts)
	if err != nil {
		t.Fatalf("first snapshot: %v", err)
	}
	opts.out = filepath.Join(dir, "b.png")
	b, err := writeSnapshot(opts)
	if err != nil {
		t.Fatalf("second snapshot: %v", err)
	}

	an, bn := a.Nodes(), b.Nodes()
	if len(an) != 4 || len(bn) != 4 {
		t.Fatalf("node counts: got %d and %d, want 4", len(an), len(bn))
	}
	for i := range an {
		if an[i].X != bn[i].X || an[i].Y != bn[i].Y {
			t.Fatalf("node %d: positions differ (%v,%v) vs (%v,%v)", i, an[i].X, an[i].Y, bn[i].X, bn[i].Y)
		}
	}
	if a.EdgeCount() != 0 {
		t.Fatalf("edges without --connect: got %d, want 0", a.EdgeCount())
	}
}

func TestSnapshot_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, "snapshot", "--config", missingConfig(t), "--nodes=-1",
		"--out", filepath.Join(dir, "x.png")); err == nil {
		t.Fatalf("expected error for negative node count")
	}

	if _, err := execute(t, "snapshot", "--config", missingConfig(t),
		"--out", filepath.Join(dir, "missing", "x.png")); err == nil {
		t.Fatalf("expected error for unwritable output path")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[editor]\nedge_hit = \"curve\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := execute(t, "snapshot", "--config", bad, "--out", filepath.Join(dir, "y.png"))
	if err == nil || !strings.Contains(err.Error(), "edge_hit") && !strings.Contains(err.Error(), "edgehit") {
		t.Fatalf("expected config validation error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(got, "taskgraph "+taskgraph.VersionTag()) {
		t.Fatalf("version output: got %q", got)
	}
}

func TestApp_Quit(t *testing.T) {
	a := newApp(editor.New(editor.Config{}))

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c must return tea.Quit")
	}

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q must quit outside the rename prompt")
	}
}

func TestApp_ForwardsToEditor(t *testing.T) {
	a := newApp(editor.New(editor.Config{}))

	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})

	got := m.(app).editor.Graph().NodeCount()
	if got != 1 {
		t.Fatalf("node count: got %d, want 1", got)
	}
	if m.View() == "" {
		t.Fatalf("expected non-empty view")
	}
}
