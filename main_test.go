package main

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.ppm")
	args := []string{"spheretrace", "-q", "render", "--width", "8", "--aspect", "2", "--spp", "1", "--depth", "2", "-t", "2", "--seed", "7", "-o", out, "default"}
	if err := newApp().Run(args); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 3+8*4 {
		t.Fatalf("expected 3 header lines and 32 pixel lines; got %d lines", len(lines))
	}
	if lines[0] != "P3" || lines[1] != "8 4" || lines[2] != "255" {
		t.Fatalf("unexpected PPM header %v", lines[:3])
	}
}

func TestRenderCommandErrors(t *testing.T) {
	specs := [][]string{
		{"spheretrace", "-q", "render"},
		{"spheretrace", "-q", "render", "--width", "8", "--aspect", "2", "-t", "3", "default"},
		{"spheretrace", "-q", "render", "--width", "8", "--aspect", "0", "default"},
		{"spheretrace", "-q", "render", "--width", "8", "--aspect", "2", "-o", filepath.Join(t.TempDir(), "frame.bmp"), "default"},
		{"spheretrace", "-q", "render", "--width", "8", "--aspect", "2", "missing.obj"},
	}

	for index, args := range specs {
		if err := newApp().Run(args); err == nil {
			t.Fatalf("[spec %d] expected command %v to fail", index, args)
		}
	}
}

func TestSceneCommands(t *testing.T) {
	if err := newApp().Run([]string{"spheretrace", "-q", "scene", "info", "random"}); err != nil {
		t.Fatal(err)
	}
	if err := newApp().Run([]string{"spheretrace", "-q", "scene", "list"}); err != nil {
		t.Fatal(err)
	}
	if err := newApp().Run([]string{"spheretrace", "-q", "scene", "info"}); err == nil {
		t.Fatal("expected scene info without a scene argument to fail")
	}
}
