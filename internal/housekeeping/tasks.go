// filepath: internal/housekeeping/tasks.go
package housekeeping

import (
	"context"
	"fmt"
	"strings"

	"watchlist/internal/logging"
	"watchlist/internal/logging/audit"
	"watchlist/internal/models"
)

// Dependencies defines the required services for the housekeeping tasks.
type Dependencies struct {
	DB      DBTX
	Auditor audit.Auditor
}

// Options selects the housekeeping tasks to run.
type Options struct {
	PruneGenres bool // remove genres no movie refers to
	Vacuum      bool // compact the store file
	DryRun      bool // report what would be done without changing anything
}

// Run executes the selected housekeeping tasks once.
func Run(ctx context.Context, deps Dependencies, opts Options) (*models.HousekeepingReport, error) {
	if deps.Auditor == nil {
		deps.Auditor = audit.Nop{}
	}
	report := &models.HousekeepingReport{DryRun: opts.DryRun}

	before, err := deps.DB.GetStoreStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get store stats: %w", err)
	}

	// 1. Unused genres
	if opts.PruneGenres {
		if err := pruneUnusedGenres(ctx, deps, opts.DryRun, report); err != nil {
			return report, err
		}
	}

	// 2. Compaction
	if opts.Vacuum && !opts.DryRun {
		if err := deps.DB.Vacuum(ctx); err != nil {
			return report, err
		}
	}

	after := before
	if !opts.DryRun {
		if after, err = deps.DB.GetStoreStats(ctx); err != nil {
			return report, fmt.Errorf("could not get store stats: %w", err)
		}
	}
	if freed := before.SizeBytes - after.SizeBytes; freed > 0 {
		report.SpaceFreedBytes = freed
	}
	report.Stats = *after

	report.Message = summary(report)
	logging.Log.Infof("Housekeeping: %s", report.Message)
	return report, nil
}

// pruneUnusedGenres deletes every genre no movie refers to.
func pruneUnusedGenres(ctx context.Context, deps Dependencies, dryRun bool, report *models.HousekeepingReport) error {
	genres, err := deps.DB.ListUnusedGenres(ctx)
	if err != nil {
		return fmt.Errorf("could not query for unused genres: %w", err)
	}
	if len(genres) == 0 {
		logging.Log.Debug("Housekeeping: no unused genres.")
		return nil
	}

	logging.Log.Infof("Housekeeping: found %d unused genre(s).", len(genres))
	for _, g := range genres {
		if dryRun {
			report.Genres = append(report.Genres, g.Name)
			continue
		}

		deleted, err := deps.DB.DeleteGenre(ctx, g.ID)
		if err != nil {
			logging.Log.Errorf("Housekeeping: failed to delete genre '%s' (ID %d): %v", g.Name, g.ID, err)
			continue // Skip to the next genre
		}
		if !deleted {
			continue
		}

		report.GenresDeleted++
		report.Genres = append(report.Genres, g.Name)
		deps.Auditor.Log(ctx, "genre.delete", fmt.Sprintf("Genre:%d", g.ID), map[string]interface{}{
			"name":   g.Name,
			"reason": "unused",
		})
	}
	return nil
}

func summary(report *models.HousekeepingReport) string {
	var head string
	switch {
	case report.DryRun && len(report.Genres) == 0:
		head = "Dry run: nothing to clean up."
	case report.DryRun:
		head = fmt.Sprintf("Dry run: would delete %d unused genre(s): %s.", len(report.Genres), strings.Join(report.Genres, ", "))
	default:
		head = fmt.Sprintf("Housekeeping complete. %d unused genre(s) deleted, freeing %s.",
			report.GenresDeleted, formatBytes(report.SpaceFreedBytes))
	}
	s := report.Stats
	return fmt.Sprintf("%s Store holds %d genre(s), %d movie(s), %d user(s) and %d review(s).",
		head, s.Genres, s.Movies, s.Users, s.Reviews)
}

// formatBytes renders a byte count with a binary unit, e.g. "1.5 KB".
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
