package command

import (
	"fmt"

	"agencyhub/cmd/cli/authentication"
	"agencyhub/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

// auth.go handles authentication commands for the agencyhub CLI.

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the AgencyHub API server. Supports login and logout.`,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to your AgencyHub account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var c client.LoginRequest
		c.Email, _ = cmd.Flags().GetString("email")
		c.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.Login(&c)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		err = authentication.StoreTokens(&authentication.StoredCredentials{
			AccessToken:  response.AccessToken,
			RefreshToken: response.RefreshToken,
			Email:        response.User.Email,
		})
		if err != nil {
			return fmt.Errorf("could not store tokens: %w", err)
		}

		fmt.Printf("✓ Logged in as %s (%s)\n", response.User.Name, response.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from your AgencyHub account",
	RunE: func(cmd *cobra.Command, args []string) error {
		creds, err := authentication.GetTokens()
		if err == nil && creds.RefreshToken != "" {
			httpClient := client.NewHTTPClient(apiURL)
			// best effort; local tokens go away regardless
			_ = httpClient.Logout(creds.RefreshToken)
		}

		if err := authentication.DeleteTokens(); err != nil {
			return fmt.Errorf("could not clear tokens: %w", err)
		}

		fmt.Println("✓ Logged out.")
		return nil
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringP("email", "e", "", "Account email address")
	loginCmd.Flags().StringP("password", "p", "", "Account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(authCmd)
}
