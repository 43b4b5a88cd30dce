package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cellkit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load(write(t, "image: cat.png\ntheme:\n  background: \"#001040\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Image != "cat.png" || cfg.LogFile != "cellkit.log" || cfg.Theme.Accent != "yellow" {
		t.Errorf("unexpected config %+v", cfg)
	}
	_, bg, _ := cfg.Theme.Style().Decompose()
	if bg != tcell.NewHexColor(0x001040) {
		t.Errorf("unexpected background %v", bg)
	}
	fg, _, _ := cfg.Theme.AccentStyle().Decompose()
	if fg != tcell.ColorYellow {
		t.Errorf("unexpected accent %v", fg)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	for _, content := range []string{
		"theme: [1, 2]\n",
		"theme:\n  accent: not-a-colour\n",
	} {
		if _, err := Load(write(t, content)); err == nil {
			t.Errorf("expected error for %q", content)
		}
	}
}
