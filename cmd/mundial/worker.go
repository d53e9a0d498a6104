package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	srv "github.com/mohammad-safakhou/mundial/internal/server"
)

func workerCMD() *cobra.Command {
	var cfgPath string
	worker := &cobra.Command{
		Use:   "worker",
		Short: "Run the source refresh scheduler without the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cfgPath)
			if err != nil {
				return err
			}
			defer a.Close()

			cron := a.cfg.Sources.RefreshCron
			if cron == "" {
				cron = "@daily"
			}
			sched := srv.NewScheduler(a.src, a.rdb, cron)
			sched.Start()
			defer sched.Stop()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()
			return nil
		},
	}
	worker.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	return worker
}
