package main

import (
	"fmt"
	"log"

	"github.com/manusware/context-manager/internal/api"
	"github.com/manusware/context-manager/internal/config"
	"github.com/manusware/context-manager/internal/crypto"
	"github.com/manusware/context-manager/internal/repository"
	"github.com/manusware/context-manager/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := repository.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	if cfg.TokenKey == "" {
		log.Println("MANUS_TOKEN_KEY not set; git access tokens will be stored unencrypted")
	}
	s := store.New(db.DB, crypto.NewTokenCipher(cfg.TokenKey))

	r := api.NewRouter(s)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
