package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvLevel  = "KICKABOUT_LEVEL"
	EnvWidth  = "KICKABOUT_WIDTH"
	EnvHeight = "KICKABOUT_HEIGHT"
	EnvFPS    = "KICKABOUT_FPS"
	EnvWatch  = "KICKABOUT_WATCH"
)

// Config is the host setup. An empty LevelPath means the built-in level.
type Config struct {
	LevelPath  string
	Width      int32
	Height     int32
	TargetFPS  int32
	WatchLevel bool
}

func Default() Config {
	return Config{
		Width:      1280,
		Height:     720,
		TargetFPS:  60,
		WatchLevel: true,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// environment and builds a Config from it. Missing .env files are not an
// error; variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
		log.Printf("Loaded environment from %s", f)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.LevelPath = os.Getenv(EnvLevel)

	var err error
	if cfg.Width, err = intVar(EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = intVar(EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.TargetFPS, err = intVar(EnvFPS, cfg.TargetFPS); err != nil {
		return Config{}, err
	}

	if v := os.Getenv(EnvWatch); v != "" {
		watch, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvWatch, err)
		}
		cfg.WatchLevel = watch
	}

	// Nothing to watch without a level file
	if cfg.LevelPath == "" {
		cfg.WatchLevel = false
	}
	return cfg, nil
}

func intVar(name string, def int32) (int32, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", name, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %d", name, n)
	}
	return int32(n), nil
}
