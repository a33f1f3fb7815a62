package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"companion.GO/config"
	"companion.GO/core/logger"
	"companion.GO/cron"
	catalogService "companion.GO/service/catalog"
)

var jobName string

var cronStartCmd = &cobra.Command{
	Use:   "cron:start",
	Short: "Start the cron scheduler or run a single job by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jobName != "" {
			name := strings.ToLower(jobName)
			j, ok := cron.Jobs()[name]
			if !ok {
				return fmt.Errorf("unknown job: %s (known: %s)", jobName, strings.Join(cron.Names(cron.Jobs()), ", "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Running cron job: %s\n", name)
			j.Run(args...)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Starting cron scheduler...")
		c, err := cron.StartCron(nil)
		if err != nil {
			return err
		}
		defer c.Stop()
		fmt.Fprintln(cmd.OutOrStdout(), "Cron scheduler started. Press Ctrl+C to exit.")
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		return nil
	},
}

// warmCatalogCache reloads the catalog groups from the database into redis.
func warmCatalogCache(...string) {
	log := logger.L()
	cfg := config.LoadAppConfig()
	if cfg.CatalogSource != config.CatalogSourceDB {
		log.Debug("catalog:warm skipped, static catalog")
		return
	}
	config.InitRedis()
	if !config.PingRedis(context.Background()) {
		log.Info("catalog:warm skipped, redis not available")
		return
	}
	db, err := config.NewDB()
	if err != nil {
		log.Error("catalog:warm: database connection failed", zap.Error(err))
		return
	}
	p := catalogService.NewCachedProvider(catalogService.NewRepositoryProvider(db), config.RedisClient, cfg.CatalogCacheTTL)
	groups, err := p.Warm(context.Background())
	if err != nil {
		log.Error("catalog:warm failed", zap.Error(err))
		return
	}
	log.Info("catalog cache warmed", zap.Int("groups", len(groups)))
}

func init() {
	cron.Register("catalog:warm", "@every 5m", warmCatalogCache)
	cronStartCmd.Flags().StringVarP(&jobName, "job", "j", "", "Run a single cron job by name and exit")
	Register(cronStartCmd)
}
