package main

import (
	"context"

	"github.com/labstack/gommon/log"

	"notekeep/internal/config"
	"notekeep/internal/devstore"
	"notekeep/internal/uid"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	uid.Init(1)

	db, err := devstore.InitDB(cfg.DevStoreDBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	srv := devstore.NewServer(db, cfg.DevStoreSecret)
	log.Infof("dev document store listening on %s", cfg.DevStoreAddr)
	if err := srv.Start(cfg.DevStoreAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
