package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/dockui/pkg/graphics"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/tools/editor/v2\n\ngo 1.24\n")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.ModulePath != "example.com/tools/editor/v2" {
		t.Errorf("ModulePath = %q", cfg.ModulePath)
	}
	if cfg.AppName != "editor" {
		t.Errorf("AppName = %q, want editor", cfg.AppName)
	}
	if cfg.Window != DefaultWindow {
		t.Errorf("Window = %+v, want %+v", cfg.Window, DefaultWindow)
	}
	if cfg.ThemePath != "" || cfg.LayoutPath != "" {
		t.Errorf("unexpected paths %q %q", cfg.ThemePath, cfg.LayoutPath)
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, `
app:
  name: inspector
window:
  width: 640
theme: theme.toml
layout: ui/main.yaml
`)

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.AppName != "inspector" {
		t.Errorf("AppName = %q", cfg.AppName)
	}
	if want := (graphics.Size{Width: 640, Height: DefaultWindow.Height}); cfg.Window != want {
		t.Errorf("Window = %+v, want %+v", cfg.Window, want)
	}
	if want := filepath.Join(dir, "theme.toml"); cfg.ThemePath != want {
		t.Errorf("ThemePath = %q, want %q", cfg.ThemePath, want)
	}
	if want := filepath.Join(dir, "ui", "main.yaml"); cfg.LayoutPath != want {
		t.Errorf("LayoutPath = %q, want %q", cfg.LayoutPath, want)
	}
}

func TestResolveWithoutModule(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.AppName != filepath.Base(dir) {
		t.Errorf("AppName = %q, want %q", cfg.AppName, filepath.Base(dir))
	}
}

func TestResolveRejects(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
	}{
		{"bad yaml", FileName, "window: [\n"},
		{"negative window", FileName, "window:\n  width: -1\n"},
		{"empty module", "go.mod", "go 1.24\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.data)
			if _, err := Resolve(dir); err == nil {
				t.Error("Resolve succeeded, want error")
			}
		})
	}
}
