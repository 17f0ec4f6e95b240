package main

import (
	"context"
	"os"

	"github.com/Veda150698/Food-Delivery-System/configs"
	"github.com/Veda150698/Food-Delivery-System/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := configs.LoadConfig()

	ctx := context.Background()
	store, err := configs.ConnectStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid mongo configuration")
	}
	defer store.Disconnect(ctx)

	r := gin.Default()
	routes.RegisterRoutes(r, store)

	log.Info().Str("port", cfg.Port).Msg("starting the server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
