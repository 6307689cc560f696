package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file returned error: %v", err)
	}
	if settings != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestLoadSettingsPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[stage]
width = 96
height = 80

[spawn]
zombies = 50
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.Stage.Width != 96 || settings.Stage.Height != 80 {
		t.Errorf("stage = %+v, want 96x80", settings.Stage)
	}
	if settings.Spawn.Zombies != 50 {
		t.Errorf("zombies = %d, want 50", settings.Spawn.Zombies)
	}

	// Untouched sections keep their defaults.
	defaults := DefaultSettings()
	if settings.Spawn.Chickens != defaults.Spawn.Chickens {
		t.Errorf("chickens = %d, want default %d", settings.Spawn.Chickens, defaults.Spawn.Chickens)
	}
	if settings.Audio != defaults.Audio {
		t.Errorf("audio = %+v, want defaults", settings.Audio)
	}
}

func TestLoadSettingsRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{"tiny stage", "[stage]\nwidth = 4\nheight = 4\n"},
		{"zero window", "[window]\nwidth = 0\n"},
		{"volume out of range", "[audio]\nmusic_volume = 1.5\n"},
		{"bad syntax", "not toml at all ["},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(c.toml), 0o644); err != nil {
				t.Fatal(err)
			}
			settings, err := LoadSettings(path)
			if err == nil {
				t.Fatal("invalid settings accepted")
			}
			if settings != DefaultSettings() {
				t.Error("invalid file did not fall back to defaults")
			}
		})
	}
}
