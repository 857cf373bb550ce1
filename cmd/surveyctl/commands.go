package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/spf13/cobra"
)

var (
	exportFormat   string
	exportOut      string
	clearConfirmed bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all responses as JSON, CSV or XLSX",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print summary statistics as JSON",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all locally stored responses",
	Long: `Reset the local fallback store to an empty collection.

Responses already saved to the remote store are not touched.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which store is active and how many drafts are open",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	req := models.ExportRequest{Format: models.ExportFormat(exportFormat)}
	if err := rt.Validator.Validate(req); err != nil {
		return fmt.Errorf("invalid export format %q: %w", exportFormat, err)
	}

	result, err := rt.Services.Export().Export(ctx, req.Format)
	if err != nil {
		return err
	}

	if exportOut == "-" {
		_, err = cmd.OutOrStdout().Write(result.Data)
		return err
	}

	path := exportOut
	if path == "" {
		path = result.Filename
	}
	if err := os.WriteFile(path, result.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d responses to %s\n", result.Count, path)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	summary := rt.Services.Stats().Summary(ctx)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearConfirmed {
		return errors.New("refusing to clear without --yes")
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	rt.Services.Survey().ClearAll(ctx)
	fmt.Fprintln(cmd.OutOrStdout(), "Local responses cleared")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	status := rt.Services.Gateway().Status(ctx)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "remote store: %v\n", status.PrimaryAvailable)
	if status.RemoteCount != nil {
		fmt.Fprintf(out, "remote responses: %d\n", *status.RemoteCount)
	}
	fmt.Fprintf(out, "local responses: %d\nopen drafts: %d\n", status.LocalCount, status.OpenDrafts)
	return nil
}
