package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/approvebot/internal/github"
)

var approveCmd = &cobra.Command{
	Use:   "approve [reference]",
	Short: "Submits an approval review for a pull request",
	Long: `Submits an APPROVE review for a pull request under the token's
identity. If that identity has already approved, nothing is written.

Examples:
  approvebot-cli approve https://github.com/owner/repo/pull/123
  approvebot-cli approve owner/repo#123`,
	Args: cobra.ExactArgs(1),
	RunE: runApprove,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	rootCmd.AddCommand(approveCmd)
}

func runApprove(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	snap, err := fetchSnapshot(ctx, args[0])
	if err != nil {
		return err
	}

	titleColor.Printf("%s — %s\n", snap.Ref.String(), snap.Title)
	dimColor.Printf("   state: %s, author: %s\n\n", snap.State, snap.Author)

	token := viper.GetString("GITHUB_TOKEN")
	logger := newCLILogger()
	gateway := github.NewGateway(github.NewPATClient(ctx, token, logger), logger)

	fmt.Println("Submitting approval...")
	outcome := gateway.SubmitApproval(ctx, snap.Ref)
	if !outcome.Approved {
		errorColor.Printf("✗ %s\n", outcome.Message)
		return fmt.Errorf("approval was not submitted")
	}

	successColor.Printf("✓ %s\n", outcome.Message)
	dimColor.Printf("   %s\n", outcome.URL)
	return nil
}
