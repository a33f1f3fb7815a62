// Standalone GraphQL server over the catalog and Color Bar options: go run ./cmd/graphql
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	graphqlApi "companion.GO/api/graphql"
	"companion.GO/config"
	"companion.GO/core/logger"
	"companion.GO/server"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadAppConfig()
	if err := logger.Init(cfg.Debug); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.L()

	config.InitRedis()
	config.PingRedis(context.Background())
	deps, err := server.BuildDeps(context.Background(), cfg)
	if err != nil {
		log.Fatal("dependencies", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	graphqlApi.RegisterGraphQLRoutes(e, deps)

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "doom", "larry3d", "puffy"}
	figure.NewFigure("Companion GQL", gqlFonts[rand.IntN(len(gqlFonts))], true).Print()
	fmt.Println()

	log.Info("standalone GraphQL server",
		zap.String("graphql", "http://localhost:"+cfg.Port+"/graphql"),
		zap.String("playground", "http://localhost:"+cfg.Port+"/playground"))
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
