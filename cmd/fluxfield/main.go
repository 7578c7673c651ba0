package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "fluxfield",
		Short: "fluxfield - parameter-driven audiovisual installation engine",
		Long: `fluxfield runs a 64-dimension parameter simulation that drives
generative visuals and drone audio. The engine evolves autonomously and
responds to keyboard, pointer, and injected stimuli.`,
	}

	rootCmd.PersistentFlags().Uint64("seed", 0, "RNG seed (0 = random per run)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newDimsCmd(),
		newSnapshotCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fluxfield version %s\n", version)
		},
	}
}
