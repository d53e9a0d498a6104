package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mohammad-safakhou/mundial/internal/workflow"
)

func runCMD() *cobra.Command {
	var goal string
	var cfgPath string
	run := &cobra.Command{
		Use:   "run",
		Short: "Plan and execute one prediction goal, print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(goal) == "" {
				return fmt.Errorf("--goal is required")
			}
			a, err := buildApp(cfgPath)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			res, err := a.eng.Execute(ctx, a.eng.Plan(goal))
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if res.Status == workflow.StatusError {
				return res.Err
			}
			return nil
		},
	}
	run.Flags().StringVar(&goal, "goal", "", `prediction goal, e.g. "Who will win the World Cup 2026?"`)
	run.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (default is .)")
	return run
}
