//go:build !cli
// +build !cli

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"companion.GO/cmd"
	"companion.GO/config"
	"companion.GO/core/logger"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadAppConfig()
	if err := logger.Init(cfg.Debug); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	if err := cmd.Serve(); err != nil {
		logger.L().Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
