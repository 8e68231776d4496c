package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	os.Setenv("HOME", dir)
	viper.Reset()
	t.Cleanup(func() { viper.Reset() })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Output.Color {
		t.Error("default output.color should be true")
	}
	if cfg.Output.Dir != "." {
		t.Errorf("default output.dir = %q", cfg.Output.Dir)
	}
	if cfg.Demo.Seed != 42 {
		t.Errorf("default demo.seed = %d", cfg.Demo.Seed)
	}
	if cfg.Watch.Debounce != 500 {
		t.Errorf("default watch.debounce = %d", cfg.Watch.Debounce)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)

	cfgDir := filepath.Join(dir, ".decksmith")
	if err := os.MkdirAll(cfgDir, 0700); err != nil {
		t.Fatal(err)
	}
	content := "superstore:\n  data: /data/superstore.csv\ndemo:\n  seed: 7\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Superstore.Data != "/data/superstore.csv" {
		t.Errorf("superstore.data = %q", cfg.Superstore.Data)
	}
	if cfg.Demo.Seed != 7 {
		t.Errorf("demo.seed = %d", cfg.Demo.Seed)
	}
	// Untouched keys keep their defaults.
	if !cfg.Output.Color {
		t.Error("output.color should default to true")
	}
}

func TestSetAndGet(t *testing.T) {
	isolate(t)
	if _, err := Load(); err != nil {
		t.Fatal(err)
	}

	if err := Set("output.dir", "/tmp/decks"); err != nil {
		t.Fatal(err)
	}
	if got := Get("output.dir"); got != "/tmp/decks" {
		t.Errorf("Get(output.dir) = %q", got)
	}
}

func TestShowConfig(t *testing.T) {
	isolate(t)
	if _, err := Load(); err != nil {
		t.Fatal(err)
	}

	out := ShowConfig()
	if !strings.Contains(out, "output.color") {
		t.Error("ShowConfig should list output.color")
	}
	if !strings.Contains(out, "(not set)") {
		t.Error("ShowConfig should mark empty keys")
	}
}

func TestResetConfig(t *testing.T) {
	isolate(t)
	if _, err := Load(); err != nil {
		t.Fatal(err)
	}

	if err := Set("demo.seed", "99"); err != nil {
		t.Fatal(err)
	}
	if err := ResetConfig(); err != nil {
		t.Fatal(err)
	}
	if viper.GetInt64("demo.seed") != 42 {
		t.Errorf("demo.seed should reset to 42, got %d", viper.GetInt64("demo.seed"))
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()
	if !strings.Contains(path, ".decksmith") || !strings.HasSuffix(path, "config.yaml") {
		t.Errorf("unexpected path: %q", path)
	}
}
