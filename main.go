package main

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	"ebiten-wilds/audio"
	"ebiten-wilds/config"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the settings file")
	assetsDir := flag.String("assets", "assets", "path to the sounds and music directory")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Warn("settings not loaded, using defaults", "err", err)
	}
	log.Info("starting",
		"stage", settings.Stage,
		"zombies", settings.Spawn.Zombies,
		"chickens", settings.Spawn.Chickens)

	au := audio.New(*assetsDir, settings.Audio.MusicVolume, settings.Audio.SfxVolume)

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetFullscreen(settings.Window.Fullscreen)

	if err := ebiten.RunGame(NewGame(settings, au)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal("game crashed", "err", err)
	}
}
