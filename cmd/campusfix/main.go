package main

import (
	"os"

	"github.com/spf13/cobra"

	"campusfix/internal/interfaces/cli/migrate"
	"campusfix/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campusfix",
		Short: "campusfix - campus facility damage reporting",
		Long:  `campusfix tracks facility damage reports through assignment, repair, and verification.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
