package command

// root.go defines the root command for the agencyhub CLI.
// set up the global flags and configuration here.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiURL string // Global flag for API server URL
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "agencyhub",
	Short: "agencyhub - talent agency dashboard from the terminal",
	Long: `agencyhub is a tool to interact with the AgencyHub API. Use it to:
- Log in to your account
- Read your notification feed
- Watch the realtime update channel for new content and announcements

Use "agencyhub command -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")
}
