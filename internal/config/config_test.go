package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.SolidFaceColor {
		t.Error("expected solid_face_color to be false by default")
	}
	if !cfg.Graphics.BackfaceCulling {
		t.Error("expected backface_culling to be true by default")
	}
	if cfg.Bake.Workers != 0 {
		t.Errorf("expected 0 workers, got %d", cfg.Bake.Workers)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  solid_face_color: true
  backface_culling: false

bake:
  workers: 4

logging:
  level: debug
  log_file: bake.log
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if !cfg.Graphics.SolidFaceColor {
		t.Error("expected solid_face_color true from file")
	}
	if cfg.Graphics.BackfaceCulling {
		t.Error("expected backface_culling false from file")
	}
	if cfg.Bake.Workers != 4 {
		t.Errorf("expected 4 workers, got %d", cfg.Bake.Workers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "bake.log" {
		t.Errorf("expected bake.log, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("graphics:\n  solid_face_color: true\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if !cfg.Graphics.SolidFaceColor {
		t.Error("expected solid_face_color true from file")
	}
	// untouched sections keep their defaults
	if !cfg.Graphics.BackfaceCulling {
		t.Error("expected backface_culling to keep its default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("graphics: [not a mapping"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.SolidFaceColor = true
	cfg.Bake.Workers = 8

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	reloaded := Default()
	if err := loadFromFile(reloaded, configPath); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reloaded.Graphics.SolidFaceColor {
		t.Error("solid_face_color not round-tripped")
	}
	if reloaded.Bake.Workers != 8 {
		t.Errorf("workers = %d, want 8", reloaded.Bake.Workers)
	}
}
