package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Printer.SpacesBeforeListItem != 0 {
		t.Errorf("SpacesBeforeListItem = %d, want 0", cfg.Printer.SpacesBeforeListItem)
	}
	if cfg.Printer.DefaultFrontmatterFormat != "yaml" {
		t.Errorf("DefaultFrontmatterFormat = %q, want \"yaml\"", cfg.Printer.DefaultFrontmatterFormat)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color = false, want true")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want \":8080\"", cfg.Server.Addr)
	}
}

func TestLoadNonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/that/does/not/exist")
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.Printer.DefaultFrontmatterFormat != "yaml" {
		t.Errorf("DefaultFrontmatterFormat = %q, want \"yaml\"", cfg.Printer.DefaultFrontmatterFormat)
	}
}

func TestLoadAndSave(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{
		Printer: PrinterConfig{
			SpacesBeforeListItem:     0,
			DefaultFrontmatterFormat: "toml",
		},
		Output: OutputConfig{Color: false},
		Server: ServerConfig{Addr: ":9090"},
	}

	if err := cfg.Save(tmpDir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	configPath := filepath.Join(tmpDir, ConfigFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loaded, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Printer.DefaultFrontmatterFormat != "toml" {
		t.Errorf("DefaultFrontmatterFormat = %q, want \"toml\"", loaded.Printer.DefaultFrontmatterFormat)
	}
	if loaded.Output.Color {
		t.Error("Output.Color = true, want false")
	}
	if loaded.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want \":9090\"", loaded.Server.Addr)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ConfigFile)

	minimal := "[output]\ncolor = false\n"
	if err := os.WriteFile(configPath, []byte(minimal), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Printer.DefaultFrontmatterFormat != "yaml" {
		t.Errorf("DefaultFrontmatterFormat default not applied: got %q, want \"yaml\"", cfg.Printer.DefaultFrontmatterFormat)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr default not applied: got %q, want \":8080\"", cfg.Server.Addr)
	}
	if cfg.Output.Color {
		t.Error("Output.Color = true, want false (explicit override)")
	}
}

func TestLoadDirectFilePath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.toml")
	if err := os.WriteFile(path, []byte("[server]\naddr = \":1234\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":1234" {
		t.Errorf("Server.Addr = %q, want \":1234\"", cfg.Server.Addr)
	}
}
