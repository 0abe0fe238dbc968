package main

import (
	"fmt"

	"lucky-draw-backend/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func migrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, log := commonRun()
			if err := database.MigrateDown(&cfg.Database, steps); err != nil {
				log.Fatal("Migration down failed", zap.Error(err))
			}
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Run: func(cmd *cobra.Command, args []string) {
				cfg, log := commonRun()
				if err := database.MigrateUp(&cfg.Database); err != nil {
					log.Fatal("Migration up failed", zap.Error(err))
				}
			},
		},
		down,
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Run: func(cmd *cobra.Command, args []string) {
				cfg, log := commonRun()
				version, dirty, err := database.MigrationVersion(&cfg.Database)
				if err != nil {
					log.Fatal("Failed to read migration version", zap.Error(err))
				}
				fmt.Printf("version=%d dirty=%t\n", version, dirty)
			},
		},
	)
	return cmd
}
