package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pikachu0310/metronome-sounds/internal/config"
	"github.com/pikachu0310/metronome-sounds/internal/sounds"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	loadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	gen := sounds.NewGenerator(cfg.OutputDir, cfg.SampleRate, cfg.Amplitude, logger)
	if _, err := gen.Generate(sounds.DefaultTones()); err != nil {
		logger.Fatal("failed to generate sounds", zap.Error(err))
	}
}

func newLogger(cfg config.Config) *zap.Logger {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zcfg.DisableStacktrace = true
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	return logger
}

func loadDotEnv() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("load .env: %v", err)
		}
		return
	} else if !os.IsNotExist(err) {
		log.Printf("stat .env: %v", err)
	}
}
