package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	srv "github.com/mohammad-safakhou/mundial/internal/server"
)

func serveCMD() *cobra.Command {
	var serveAddr string
	var cfgPath string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cfgPath)
			if err != nil {
				return err
			}
			defer a.Close()
			if serveAddr != "" {
				host, port, err := net.SplitHostPort(serveAddr)
				if err != nil {
					return fmt.Errorf("parse --addr: %w", err)
				}
				a.cfg.Server.Host, a.cfg.Server.Port = host, port
			}

			if cron := a.cfg.Sources.RefreshCron; cron != "" {
				sched := srv.NewScheduler(a.src, a.rdb, cron)
				sched.Start()
				defer sched.Stop()
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.New(*a.cfg, a.eng, a.store, a.tel).Start(ctx)
		},
	}
	serve.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serve.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	return serve
}
