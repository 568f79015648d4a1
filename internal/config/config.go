package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the filename searched for in the current directory.
const ConfigFile = "md-splice.toml"

// Config holds the settings that influence rendering and command defaults.
type Config struct {
	Printer PrinterConfig `toml:"printer"`
	Output  OutputConfig  `toml:"output"`
	Server  ServerConfig  `toml:"server"`
}

// PrinterConfig controls how the block tree is rendered back to Markdown.
type PrinterConfig struct {
	// SpacesBeforeListItem is the number of spaces written before a list
	// item's marker. It is loaded and saved with the config file, but
	// mdprinter.Print takes no configuration and always uses the core's
	// convention of 0.
	SpacesBeforeListItem int `toml:"spaces_before_list_item"`
	// DefaultFrontmatterFormat is used when frontmatter is created on a
	// document that previously had none and no explicit format was given.
	DefaultFrontmatterFormat string `toml:"default_frontmatter_format"`
}

// OutputConfig controls CLI presentation.
type OutputConfig struct {
	Color bool `toml:"color"`
}

// ServerConfig controls the `md-splice serve` HTTP automation surface.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{
		Printer: PrinterConfig{
			SpacesBeforeListItem:     0,
			DefaultFrontmatterFormat: "yaml",
		},
		Output: OutputConfig{
			Color: true,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads configuration from path (a directory containing ConfigFile, or
// a direct path to a TOML file). Returns defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	candidate := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		candidate = filepath.Join(path, ConfigFile)
	}

	data, err := os.ReadFile(candidate)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Printer.DefaultFrontmatterFormat == "" {
		cfg.Printer.DefaultFrontmatterFormat = "yaml"
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}

	return cfg, nil
}

// Save writes the configuration to dir/ConfigFile.
func (c *Config) Save(dir string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ConfigFile), data, 0644)
}
