package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/approvebot/internal/core"
	"github.com/sevigo/approvebot/internal/github"
	"github.com/sevigo/approvebot/internal/refparse"
)

var outputJSON bool

// Color definitions
var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

var statusCmd = &cobra.Command{
	Use:   "status [reference]",
	Short: "Shows the current state of a pull request",
	Long: `Shows the current state of a pull request, including its review list.

Examples:
  approvebot-cli status https://github.com/owner/repo/pull/123
  approvebot-cli status owner/repo#123
  approvebot-cli status --repo owner/repo '#123'`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	statusCmd.Flags().BoolVar(&outputJSON, "json", false, "Output the snapshot as JSON")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	snap, err := fetchSnapshot(ctx, args[0])
	if err != nil {
		return err
	}

	if outputJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(snap)
	}

	printSnapshot(snap)
	return nil
}

// fetchSnapshot resolves a reference argument and reads the pull
// request through the gateway. Shared by status and approve.
func fetchSnapshot(ctx context.Context, arg string) (*core.Snapshot, error) {
	ref, ok := refparse.Extract(arg, viper.GetString("DEFAULT_REPO"))
	if !ok {
		return nil, fmt.Errorf("not a pull request reference: %q\n\nExpected https://github.com/owner/repo/pull/123, owner/repo#123, or #123 with --repo set", arg)
	}

	token := viper.GetString("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is not set\n\nTip: pass --github-token or export GITHUB_TOKEN")
	}

	logger := newCLILogger()
	gateway := github.NewGateway(github.NewPATClient(ctx, token, logger), logger)

	snap, err := gateway.FetchSnapshot(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %s: %w", ref, err)
	}
	return snap, nil
}

func printSnapshot(snap *core.Snapshot) {
	titleColor.Printf("%s — %s\n", snap.Ref.String(), snap.Title)
	dimColor.Printf("   %s\n\n", snap.HTMLURL)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "STATE\tAUTHOR\tDRAFT\tMERGEABLE\n")
	fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", snap.State, snap.Author, snap.Draft, mergeableString(snap.Mergeable))
	w.Flush()

	if len(snap.Reviews) == 0 {
		fmt.Println()
		dimColor.Println("No reviews yet.")
		return
	}

	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "REVIEWER\tSTATE")
	for _, r := range snap.Reviews {
		fmt.Fprintf(w, "%s\t%s\n", r.Reviewer, r.State)
	}
	w.Flush()
}

func mergeableString(mergeable *bool) string {
	if mergeable == nil {
		return "unknown"
	}
	if *mergeable {
		return "yes"
	}
	return "no"
}
