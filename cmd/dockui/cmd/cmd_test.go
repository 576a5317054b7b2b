package cmd

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/dockui/pkg/graphics"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in      string
		want    graphics.Size
		wantErr bool
	}{
		{in: "640x480", want: graphics.Size{Width: 640, Height: 480}},
		{in: "800X600", want: graphics.Size{Width: 800, Height: 600}},
		{in: "640", wantErr: true},
		{in: "0x480", wantErr: true},
		{in: "640xabc", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseWindow(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseWindow(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseWindow(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestExecuteVersion(t *testing.T) {
	out := captureOutput(t)
	if err := Execute([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("version output = %q", out.String())
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	captureOutput(t)
	if err := Execute([]string{"frobnicate"}); err == nil {
		t.Error("unknown command should fail")
	}
}

func TestLayoutCommand(t *testing.T) {
	path := writeTemp(t, "main.yaml", `
widgets:
  - type: panel
    name: sidebar
    dock: {state: left, size: 100}
    children:
      - type: panel
        name: far
        position: {x: 150, dim_x: pixel, y: 10, dim_y: pixel}
        size: {x: 20, dim_x: pixel, y: 20, dim_y: pixel}
  - type: label
    name: status
    text: Ready
    dock: {state: bottom, size: 20}
`)
	out := captureOutput(t)
	if err := Execute([]string{"layout", path, "--window", "400x300"}); err != nil {
		t.Fatalf("layout: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Window: 400x300",
		"viewport viewport rect=(0,0 400x300)",
		"  panel sidebar rect=(0,0 100x300)",
		"scroll=(0,0 170x300)",
		"    panel far rect=(150,10 20x20) clip=(150,10 0x20)",
		`  label status rect=(100,280 300x20) clip=(100,280 300x20) text="Ready"`,
		"Draw calls:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	good := writeTemp(t, "good.yaml", "widgets:\n  - type: panel\n")
	bad := writeTemp(t, "bad.yaml", "widgets:\n  - type: panel\n    color: [1, 2, 3]\n")

	out := captureOutput(t)
	if err := Execute([]string{"check", good}); err != nil {
		t.Errorf("check good: %v", err)
	}
	if err := Execute([]string{"check", good, bad}); err == nil {
		t.Error("check with a bad file should fail")
	}
	if !strings.Contains(out.String(), "FAIL "+bad) {
		t.Errorf("output does not name the bad file:\n%s", out.String())
	}
}

func TestThemeCommand(t *testing.T) {
	path := writeTemp(t, "theme.toml", "[slider]\nwidth = 9\n[text]\ncolor = \"#112233\"\n")
	out := captureOutput(t)
	if err := Execute([]string{"theme", "--theme=" + path}); err != nil {
		t.Fatalf("theme: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "slider.width        9") || !strings.Contains(got, "#112233ff") {
		t.Errorf("theme output:\n%s", got)
	}
}

func TestLayoutCommandTextures(t *testing.T) {
	path := writeTemp(t, "main.yaml", `
widgets:
  - type: panel
    name: crate
    texture: wood.png
    size: {x: 50, dim_x: pixel, y: 50, dim_y: pixel}
`)
	f, err := os.Create(filepath.Join(filepath.Dir(path), "wood.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	out := captureOutput(t)
	if err := Execute([]string{"layout", path, "--window", "400x300"}); err != nil {
		t.Fatalf("layout: %v", err)
	}
	got := out.String()
	for _, want := range []string{"panel crate rect=(0,0 50x50)", "texture=1", "Textures: 1 (64 bytes)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
