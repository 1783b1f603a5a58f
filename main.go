package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/aaratha/rope-survivor/pkg/simulation"
)

func main() {
	configPath := flag.String("config", "", "JSON file overlaid on the selected variant")
	variant := flag.String("variant", "", "variant preset: drag, pointer or growth")
	verbose := flag.Bool("v", false, "log game events")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}

	cfg, err := simulation.Resolve(
		orEnv(*variant, "ROPE_SURVIVOR_VARIANT"),
		orEnv(*configPath, "ROPE_SURVIVOR_CONFIG"),
	)
	if err != nil {
		log.Fatal(err)
	}

	var opts []simulation.Option
	if *verbose {
		opts = append(opts, simulation.WithLogger(log.Default()))
	}
	game, err := NewGame(cfg, opts...)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(cfg.Viewport.X), int(cfg.Viewport.Y))
	ebiten.SetWindowTitle("Rope Survivor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	log.Printf("starting: targeting %s, growth %v", cfg.Targeting, cfg.Score.GrowthEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// orEnv returns v, or the environment variable key when v is empty
func orEnv(v, key string) string {
	if v != "" {
		return v
	}
	return os.Getenv(key)
}
