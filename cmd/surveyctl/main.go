// Command surveyctl is the operator tool for the survey stores: it exports
// the collected responses, prints statistics and wipes the local store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SAP-F-2025/influencer-survey/internal/config"
	"github.com/SAP-F-2025/influencer-survey/internal/utils"
	"github.com/SAP-F-2025/influencer-survey/pkg"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	timeout time.Duration

	logger *slog.Logger
	rt     *pkg.Runtime
)

// openRuntime is replaced in tests.
var openRuntime = func(ctx context.Context, logger *slog.Logger) (*pkg.Runtime, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return pkg.NewRuntime(ctx, cfg, logger)
}

var rootCmd = &cobra.Command{
	Use:   "surveyctl",
	Short: "Operate the influencer survey response stores",
	Long: `surveyctl reads the same configuration as the survey server
(.env and SURVEY_* variables) and works on the same stores.

Exports and statistics read from the remote store when it is configured and
reachable, otherwise from the local fallback store.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env := "production"
		if verbose {
			env = "development"
		}
		logger = utils.NewLogger(env, cmd.ErrOrStderr())

		// A failed RunE skips the post-run hook.
		if rt != nil {
			_ = rt.Close()
		}
		var err error
		rt, err = openRuntime(cmd.Context(), logger)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if rt == nil {
			return nil
		}
		err := rt.Close()
		rt = nil
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format: json, csv or xlsx")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: generated name in the current directory, - for stdout)")
	clearCmd.Flags().BoolVar(&clearConfirmed, "yes", false, "Confirm deletion of all locally stored responses")

	rootCmd.AddCommand(exportCmd, statsCmd, clearCmd, statusCmd)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
