package main

import (
	"github.com/yonasBSD/solidtime/internal/config"
	"github.com/yonasBSD/solidtime/internal/mockserver"
	"github.com/yonasBSD/solidtime/internal/solidtime"
	"github.com/yonasBSD/solidtime/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger := utils.New(cfg)

	s := mockserver.New(cfg, logger, solidtime.API())
	s.StubExamples()

	if cfg.FixturesFile != "" {
		fixtures, err := mockserver.LoadFixtures(cfg.FixturesFile)
		if err != nil {
			logger.Fatal("failed to load fixtures: ", err)
		}
		if err := s.StubFixtures(fixtures); err != nil {
			logger.Fatal("failed to register fixtures: ", err)
		}
	}

	if err := s.Start(); err != nil {
		logger.Fatal("server failed to start: ", err)
	}
}
