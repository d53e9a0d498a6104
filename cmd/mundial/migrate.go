package main

import (
	"github.com/spf13/cobra"

	"github.com/mohammad-safakhou/mundial/config"
	srv "github.com/mohammad-safakhou/mundial/internal/server"
)

func migrateCMD() *cobra.Command {
	var migDir string
	migDirDefault := "file://migrations"
	var direction string
	var steps int
	var cfgPath string

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Run workflow store migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig(cfgPath)
			if migDir == "" {
				migDir = migDirDefault
			}
			return srv.Migrate(cfg.Storage.Postgres, migDir, direction, steps)
		},
	}
	migrate.Flags().StringVar(&migDir, "dir", migDirDefault, "migrations source (file://migrations)")
	migrate.Flags().StringVar(&direction, "direction", "up", "up or down")
	migrate.Flags().IntVar(&steps, "steps", 0, "number of steps (0 = all)")
	migrate.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	return migrate
}
