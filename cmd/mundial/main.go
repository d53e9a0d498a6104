package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{Use: "mundial", Short: "World Cup 2026 prediction workflow service"}
	root.AddCommand(serveCMD(), runCMD(), migrateCMD(), workerCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
