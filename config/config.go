package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

type Config struct {
	LogFile string `yaml:"log_file"`
	Image   string `yaml:"image"`
	Theme   Theme  `yaml:"theme"`
}

// Theme colours are tcell colour names or #rrggbb values. Empty means the
// terminal default.
type Theme struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Accent     string `yaml:"accent"`
}

func Default() Config {
	return Config{
		LogFile: "cellkit.log",
		Theme: Theme{
			Accent: "yellow",
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Theme.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

func (t Theme) Validate() error {
	for _, name := range []string{t.Foreground, t.Background, t.Accent} {
		if name != "" && tcell.GetColor(name) == tcell.ColorDefault {
			return fmt.Errorf("unknown colour %q", name)
		}
	}
	return nil
}

// Style is the base text style.
func (t Theme) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(color(t.Foreground)).Background(color(t.Background))
}

// AccentStyle is the base style with the accent foreground.
func (t Theme) AccentStyle() tcell.Style {
	return t.Style().Foreground(color(t.Accent))
}

func color(name string) tcell.Color {
	if name == "" {
		return tcell.ColorDefault
	}
	return tcell.GetColor(name)
}
