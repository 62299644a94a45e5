package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sitelint/sitelint/internal/adapters/outbound/config"
	"github.com/sitelint/sitelint/internal/adapters/outbound/gitinfo"
	"github.com/sitelint/sitelint/internal/adapters/outbound/history"
	"github.com/sitelint/sitelint/internal/adapters/outbound/homepage"
	"github.com/sitelint/sitelint/internal/adapters/outbound/probe"
	"github.com/sitelint/sitelint/internal/adapters/outbound/scanner"
	"github.com/sitelint/sitelint/internal/adapters/outbound/tui"
	"github.com/sitelint/sitelint/internal/application"
	"github.com/sitelint/sitelint/internal/domain"
	"github.com/spf13/cobra"
)

func newAuditCmd() *cobra.Command {
	var (
		jsonOutput  bool
		ciMode      bool
		minScore    int
		badge       bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Audit a built site's structural health",
		Long:  "Scan a static site directory, resolve every internal link, detect orphan pages, probe external references and produce a 0-100 health score.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewAuditService(
				config.New(),
				homepage.New(),
				scanner.New(),
				scanner.NewOracle(),
				probe.New(),
			)

			res, err := svc.Audit(cmd.Context(), absPath)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			// Attach git commit hash if available
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(absPath); err == nil {
				res.CommitHash = hash
			}

			// Save to history
			hist := history.New()
			entry := domain.AuditEntry{
				Timestamp:    time.Now().Format(time.RFC3339),
				CommitHash:   res.CommitHash,
				Score:        res.Score,
				Grade:        res.Grade(),
				PagesScanned: res.PagesScanned,
			}
			_ = hist.Save(absPath, entry) // best-effort

			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, res); err != nil {
					return err
				}
			case badge:
				renderBadge(cmd, res)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(res))
			}

			if ciMode && res.Score < minScore {
				return fmt.Errorf("score %d is below minimum %d", res.Score, minScore)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show audit history")

	return cmd
}

func renderJSON(cmd *cobra.Command, res *domain.AuditResult) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func renderBadge(cmd *cobra.Command, res *domain.AuditResult) {
	color := domain.BadgeColor(res.Score)
	url := fmt.Sprintf("https://img.shields.io/badge/sitelint-%d%%2F100-%s", res.Score, color)
	fmt.Fprintln(cmd.OutOrStdout(), url)
}
