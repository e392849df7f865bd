package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBreakoutConfig()) {
		t.Errorf("embedded defaults differ from DefaultBreakoutConfig():\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestDefaultGeometry(t *testing.T) {
	cfg := DefaultBreakoutConfig()

	if got := cfg.PaddleY(); got != 430 {
		t.Errorf("PaddleY() = %v, expected 430", got)
	}
	if got := cfg.GridWidth(); got != 300 {
		t.Errorf("GridWidth() = %v, expected 300", got)
	}
}

func TestLoadPartialYAML(t *testing.T) {
	path := writeFile(t, "custom.yaml", `
gameplay:
  lives: 5
rules:
  paddle_hit: strict
`)

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	if cfg.Rules.PaddleHit != PaddleHitStrict {
		t.Errorf("PaddleHit = %q, expected strict", cfg.Rules.PaddleHit)
	}
	// Untouched sections keep defaults
	if cfg.Bricks.Rows != 4 || cfg.Gameplay.MaxLevel != 5 {
		t.Errorf("unset values should keep defaults, got rows=%d max=%d", cfg.Bricks.Rows, cfg.Gameplay.MaxLevel)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "custom.toml", `
[paddle]
width = 80
step = 6

[rules]
reset_speed_on_life_loss = true
`)

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Paddle.Width != 80 || cfg.Paddle.Step != 6 {
		t.Errorf("paddle = %+v, expected width 80 step 6", cfg.Paddle)
	}
	if !cfg.Rules.ResetSpeedOnLifeLoss {
		t.Error("ResetSpeedOnLifeLoss should be true")
	}
	if cfg.Paddle.Height != 20 {
		t.Errorf("Paddle.Height = %v, expected default 20", cfg.Paddle.Height)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := writeFile(t, "bad.yaml", "paddle: [not, a, map]")
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := writeFile(t, "invalid.yaml", "paddle:\n  width: 1000\n")
	_, err := LoadBreakout(invalid)
	if err == nil {
		t.Fatal("paddle wider than canvas should fail validation")
	}
	if !strings.Contains(err.Error(), "paddle.width") {
		t.Errorf("error should name the field, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		field  string
	}{
		{"zero radius", func(c *BreakoutConfig) { c.Ball.Radius = 0 }, "ball.radius"},
		{"shrinking speed", func(c *BreakoutConfig) { c.Ball.SpeedGrowth = 0.9 }, "ball.speed_growth"},
		{"grid too wide", func(c *BreakoutConfig) { c.Bricks.Columns = 10 }, "brick grid width"},
		{"grid into paddle", func(c *BreakoutConfig) { c.Bricks.Rows = 30 }, "overlaps the paddle"},
		{"no lives", func(c *BreakoutConfig) { c.Gameplay.Lives = 0 }, "gameplay.lives"},
		{"unknown paddle mode", func(c *BreakoutConfig) { c.Rules.PaddleHit = "fuzzy" }, "rules.paddle_hit"},
		{"no colors", func(c *BreakoutConfig) { c.Bricks.Colors = nil }, "bricks.colors"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.field)
			}
		})
	}
}

func TestMarshalReloads(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Gameplay.MaxLevel = 7

	out, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	path := writeFile(t, "dump.yaml", string(out))

	loaded, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if loaded.Gameplay.MaxLevel != 7 {
		t.Errorf("MaxLevel = %d, expected 7", loaded.Gameplay.MaxLevel)
	}
}
