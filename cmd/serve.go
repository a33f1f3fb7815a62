package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"companion.GO/config"
	"companion.GO/core/logger"
	"companion.GO/cron"
	"companion.GO/server"
	"companion.GO/service/session"
)

var bannerFonts = []string{"banner", "big", "block", "slant", "standard", "small", "doom", "larry3d", "puffy", "speed"}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and GraphQL server with the session sweeper",
	RunE: func(cmd *cobra.Command, args []string) error {
		return Serve()
	},
}

func sweepJob(m *session.Manager, schedule string) map[string]cron.Job {
	return map[string]cron.Job{
		"sessions:sweep": {Schedule: schedule, Run: func(...string) { m.Sweep() }},
	}
}

// Serve runs the server until SIGINT or SIGTERM.
func Serve() error {
	cfg := config.LoadAppConfig()
	log := logger.L()

	config.InitRedis()
	ctx := context.Background()
	if config.PingRedis(ctx) {
		log.Info("Redis connection successful, catalog caching enabled")
	} else {
		log.Info("Redis not configured or not reachable, catalog caching disabled")
	}

	deps, err := server.BuildDeps(ctx, cfg)
	if err != nil {
		return err
	}
	if deps.DB != nil {
		sqldb, err := deps.DB.DB()
		if err == nil {
			err = sqldb.Ping()
		}
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		log.Info("Database connection successful")
	}

	c, err := cron.StartCron(sweepJob(deps.Sessions, cfg.SweepSchedule))
	if err != nil {
		return err
	}
	defer c.Stop()

	e := server.New(deps)

	figure.NewFigure(cfg.AppName, bannerFonts[rand.IntN(len(bannerFonts))], true).Print()
	fmt.Println()
	log.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Env),
		zap.String("graphql", "/graphql"),
		zap.String("storefront", cfg.StorefrontURL))

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case s := <-sig:
		log.Info("shutting down", zap.String("signal", s.String()))
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func init() {
	Register(serveCmd)
}
