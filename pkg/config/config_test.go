package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/snippetdocs/pkg/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.Colorize != DefaultColorize {
		t.Errorf("Colorize = %q, want %q", cfg.Colorize, DefaultColorize)
	}
	if !cfg.MarkdownEnabled() {
		t.Error("Markdown should default to enabled")
	}
	if cfg.Serve.Addr != DefaultServeAddr {
		t.Errorf("Serve.Addr = %q, want %q", cfg.Serve.Addr, DefaultServeAddr)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
input = "snippets"
output = "public"
title = "Team snippets"
colorize = "client"
seed = 42
markdown = false

[serve]
addr = ":9000"
watch = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Input != filepath.Join(dir, "snippets") {
		t.Errorf("Input = %q, want resolved against config dir", cfg.Input)
	}
	if cfg.Output != filepath.Join(dir, "public") {
		t.Errorf("Output = %q, want resolved against config dir", cfg.Output)
	}
	if cfg.Title != "Team snippets" || cfg.Colorize != "client" || cfg.Seed != 42 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.MarkdownEnabled() {
		t.Error("markdown = false should disable Markdown")
	}
	if cfg.Serve.Addr != ":9000" || !cfg.Serve.Watch {
		t.Errorf("Serve = %+v", cfg.Serve)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `title = "Only title"`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want default %q", cfg.Output, DefaultOutput)
	}
	if cfg.Colorize != DefaultColorize {
		t.Errorf("Colorize = %q, want default", cfg.Colorize)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"syntax", `title = `, errors.ErrCodeInvalidConfig},
		{"unknown key", `titel = "typo"`, errors.ErrCodeInvalidConfig},
		{"wrong type", `seed = "abc"`, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Find("", dir)
	if err != nil {
		t.Fatalf("Find() without file error: %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Find() without file Path = %q, want empty", cfg.Path)
	}

	writeConfig(t, dir, `title = "Found"`)
	cfg, err = Find("", dir)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if cfg.Title != "Found" {
		t.Errorf("Title = %q, want Found", cfg.Title)
	}

	other := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(other, []byte(`title = "Explicit"`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Find(other, dir)
	if err != nil {
		t.Fatalf("Find(explicit) error: %v", err)
	}
	if cfg.Title != "Explicit" {
		t.Errorf("Title = %q, want Explicit", cfg.Title)
	}
}
