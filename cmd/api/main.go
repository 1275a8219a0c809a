package main

import (
	"log"
	"os"

	"portfoliometrics/cmd"
	"portfoliometrics/internal/logger"
	"portfoliometrics/internal/util"
)

func main() {
	cfg, err := util.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	deps, err := cmd.InitializeDependencies(cfg)
	if err != nil {
		log.Fatal(err)
	}

	logger.Info("starting api on port %d with %s prices, commit %s", cfg.Port, cfg.PriceProvider, os.Getenv("commit_hash"))
	err = deps.ApiHandler.StartApi(cfg.Port)
	if err != nil {
		log.Fatal(err)
	}
}
