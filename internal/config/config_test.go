package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	cfg, err := parse(defaultYAML, Config{})
	if err != nil {
		t.Fatalf("parse(default.yaml) failed: %v", err)
	}
	want := Default()

	if cfg.Console != want.Console || cfg.FPS != want.FPS || cfg.Log != want.Log ||
		cfg.Map != want.Map || cfg.Rules != want.Rules || cfg.Telemetry != want.Telemetry {
		t.Errorf("default.yaml = %+v, want %+v", cfg, want)
	}
	for k, v := range want.Palette {
		if cfg.Palette[k] != v {
			t.Errorf("palette[%s] = %q, want %q", k, cfg.Palette[k], v)
		}
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Console.Width != 80 || cfg.Console.Height != 50 {
		t.Errorf("Console = %+v, want 80x50", cfg.Console)
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "custom.yaml", "fps: 30\npalette:\n  wall: \"#ffffff\"\nrules:\n  collision: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, want 30", cfg.FPS)
	}
	if !cfg.Rules.Collision {
		t.Error("Rules.Collision = false, want true")
	}
	if cfg.Palette["wall"] != "#ffffff" || cfg.Palette["grass"] != "#73a055" {
		t.Errorf("Palette = %v, want wall overridden and grass kept", cfg.Palette)
	}
	if cfg.Log.Capacity != 100 {
		t.Errorf("Log.Capacity = %d, want default 100", cfg.Log.Capacity)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)
	writeConfig(t, ".", filepath.Join("configs", "verbonia.yaml"), "fps: 20\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.FPS != 20 {
		t.Errorf("FPS from ./configs = %d, want 20", cfg.FPS)
	}

	writeConfig(t, home, filepath.Join(".verbonia", "config.yaml"), "fps: 10\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.FPS != 10 {
		t.Errorf("FPS from ~/.verbonia = %d, want 10", cfg.FPS)
	}
}

func TestLoadErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}
	if _, err := Load(writeConfig(t, dir, "bad.yaml", "fps: [1, 2\n")); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
	if _, err := Load(writeConfig(t, dir, "small.yaml", "console:\n  width: 10\n  height: 5\n")); err == nil {
		t.Error("Load() should reject a console below the minimum size")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"zero fps", func(c *Config) { c.FPS = 0 }, true},
		{"negative capacity", func(c *Config) { c.Log.Capacity = -1 }, true},
		{"narrow console", func(c *Config) { c.Console.Width = MinWidth - 1 }, true},
		{"minimum console", func(c *Config) { c.Console = ConsoleConfig{MinWidth, MinHeight} }, false},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		if err := cfg.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
