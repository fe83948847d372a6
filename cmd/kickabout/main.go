package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"kickabout/internal/config"
	"kickabout/internal/game"
)

func main() {
	// A level path on the command line wins over the environment
	if len(os.Args) > 1 {
		path, err := filepath.Abs(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		os.Setenv(config.EnvLevel, path)
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}
