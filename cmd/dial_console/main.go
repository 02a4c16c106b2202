// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"log"
	"os"

	"github.com/relabs-tech/interval_chime/internal/app"
	"github.com/relabs-tech/interval_chime/internal/config"
	"github.com/relabs-tech/interval_chime/internal/logger"
)

func main() {
	configPath := flag.String("config", "./chime_config.txt", "path to configuration file")
	mock := flag.Bool("mock", false, "use simulated dials")
	flag.Parse()

	log.Println("starting dial console (angle and position per dial)")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Get()

	zl, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zl.Sync()

	if err := app.RunDialConsole(cfg, zl, *mock, os.Stdout); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
