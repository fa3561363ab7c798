package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vault",
	Short: "Personal credential vault service",
	Long: `vault stores credentials and access keys encrypted at rest behind a
password login with an optional TOTP second factor.

Configuration is read from the environment (VAULT_DATA_DIR, APP_SECRET_KEY,
PORT, ...). Flags override the environment.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newServeCmd(), newMigrateCmd(), newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("vault: %v", err)
	}
}
