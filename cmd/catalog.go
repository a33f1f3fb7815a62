package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"companion.GO/config"
	"companion.GO/server"
	catalogService "companion.GO/service/catalog"
)

var (
	importFile  string
	importBatch int
	importGroup string
)

var seedCmd = &cobra.Command{
	Use:   "catalog:seed",
	Short: "Write the built-in jewelry catalog and Color Bar options to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		if err := server.SeedDefaults(db); err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Catalog seeded.")
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "catalog:import",
	Short: "Import products and group membership from CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("failed to open CSV: %w", err)
		}
		defer f.Close()

		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}

		res, err := catalogService.ImportCSV(db, f, catalogService.ImportOptions{
			BatchSize:    importBatch,
			DefaultGroup: importGroup,
		})
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, w := range res.Warnings {
			fmt.Fprintf(out, "  [warn] %s\n", w)
		}
		fmt.Fprintf(out, `
=== Import Report ===
CSV rows:       %d
Created:        %d
Updated:        %d
Skipped:        %d
Memberships:    %d
Total time:     %s
  - Processing: %s
  - DB upsert:  %s
=====================
`, res.TotalRows, res.Created, res.Updated, res.Skipped, res.Memberships,
			res.TotalTime.Round(time.Millisecond),
			res.ProcessTime.Round(time.Millisecond),
			res.DBTime.Round(time.Millisecond))

		// Drop the stale redis copy so servers see the import.
		config.InitRedis()
		if config.PingRedis(context.Background()) {
			warm := catalogService.NewCachedProvider(catalogService.NewRepositoryProvider(db), config.RedisClient, config.LoadAppConfig().CatalogCacheTTL)
			if _, err := warm.Warm(context.Background()); err != nil {
				fmt.Fprintf(out, "  [warn] cache warm failed: %v\n", err)
			}
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().IntVar(&importBatch, "batch-size", 500, "Batch size for DB operations")
	importCmd.Flags().StringVar(&importGroup, "group", "", "Recommendation group for rows without a group column")
	Register(seedCmd)
	Register(importCmd)
}
