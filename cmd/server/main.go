package main

import (
	"fmt"
	"os"

	"lucky-draw-backend/config"
	"lucky-draw-backend/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
)

const programName = "lucky-draw"

var configFile string

// commonRun 調整 GOMAXPROCS 並讀取設定
func commonRun() (*config.Config, *zap.Logger) {
	log := logger.WithComponent("cmd")

	_, err := maxprocs.Set(maxprocs.Logger(func(format string, v ...any) {
		log.Info(fmt.Sprintf(format, v...))
	}))
	if err != nil {
		log.Fatal("Failed to set GOMAXPROCS", zap.Error(err))
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatal("Failed to load config", zap.Error(err))
	}
	return cfg, log
}

func main() {
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "Lucky draw ticketing backend",
		Run: func(cmd *cobra.Command, args []string) {
			serveRun(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to YAML config file")

	rootCmd.AddCommand(
		serveCommand(),
		migrateCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
