package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inkwell-vtt/inkwell/pkg/config"
	"github.com/inkwell-vtt/inkwell/pkg/server/middleware"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage API tokens",
	Long:  `Manage API tokens for the Inkwell server.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'token' requires a subcommand (issue)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// tokenIssueCmd represents the token issue command
var tokenIssueCmd = &cobra.Command{
	Use:   "issue <subject>",
	Short: "Issue an API token for a subject",
	Long: `Issue a signed API token for a subject.

The token is signed with INKWELL_TOKEN_SECRET and is valid for the
configured token TTL.

Example:
  inkwellctl token issue gm
  curl -H "Authorization: Bearer $(inkwellctl token issue gm)" localhost:8000/folders/journal/campaign`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		subject := args[0]

		auth, err := middleware.NewTokenAuthenticatorFromEnv()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		token, err := auth.IssueToken(subject, config.Get().TokenLifetime())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenIssueCmd)
}
