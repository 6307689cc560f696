package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings holds the tunable values read from config.toml. Layout facts
// (tile pixel size, panel sizes) stay as constants in screen.go.
type Settings struct {
	Window WindowSettings `toml:"window"`
	Audio  AudioSettings  `toml:"audio"`
	Stage  StageSettings  `toml:"stage"`
	Spawn  SpawnSettings  `toml:"spawn"`
}

type WindowSettings struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

type AudioSettings struct {
	MusicVolume float64 `toml:"music_volume"`
	SfxVolume   float64 `toml:"sfx_volume"`
}

type StageSettings struct {
	Width  int   `toml:"width"`
	Height int   `toml:"height"`
	Seed   int64 `toml:"seed"` // 0 means pick one from the clock
}

type SpawnSettings struct {
	Zombies  int `toml:"zombies"`
	Chickens int `toml:"chickens"`
}

// DefaultSettings returns the values used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowSettings{
			Title:      "Wilds",
			Width:      WindowWidth,
			Height:     WindowHeight,
			Fullscreen: false,
		},
		Audio: AudioSettings{
			MusicVolume: 0.8,
			SfxVolume:   1.0,
		},
		Stage: StageSettings{
			Width:  64,
			Height: 64,
			Seed:   0,
		},
		Spawn: SpawnSettings{
			Zombies:  24,
			Chickens: 12,
		},
	}
}

// LoadSettings reads a TOML settings file, filling any absent sections with
// defaults. A missing file is not an error; the caller decides whether to
// log it.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings %s: %w", path, err)
	}

	if err := settings.validate(); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

func (s *Settings) validate() error {
	if s.Stage.Width < 16 || s.Stage.Height < 16 {
		return fmt.Errorf("stage dimensions %dx%d too small (minimum 16x16)", s.Stage.Width, s.Stage.Height)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window dimensions %dx%d invalid", s.Window.Width, s.Window.Height)
	}
	if s.Audio.MusicVolume < 0 || s.Audio.MusicVolume > 1 || s.Audio.SfxVolume < 0 || s.Audio.SfxVolume > 1 {
		return fmt.Errorf("audio volumes must be in [0,1]")
	}
	return nil
}
