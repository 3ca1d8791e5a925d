package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gamedata-sync/core/config"
	"gamedata-sync/core/logger"
	"gamedata-sync/feature/catalog"
	"gamedata-sync/feature/catalog/models"
	"gamedata-sync/feature/extract"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// componentCmd represents the top-level component command
var componentCmd = &cobra.Command{
	Use:   "component [id]",
	Short: "View details and baseline status of a component family",
	Long: `Regenerates the catalogs from the configured extract and shows one family's
entry by its friendly id (e.g. 'ionEngine'), including per-tier layouts and
whether the persisted baseline already matches it.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runComponentDetail(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(componentCmd)
}

func runComponentDetail(ctx context.Context, id string) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	src, err := newExtractSource(ctx, cfg)
	if err != nil {
		logg.Fatal("Failed to open extract source", zap.Error(err))
	}

	logg.Info("Checking component...", zap.String("id", id))
	res, err := extract.Load(ctx, src)
	if err != nil {
		logg.Fatal("Failed to load extract", zap.Error(err))
	}
	set := catalog.BuildAll(res.Components, res.Shapes)

	file, entry, found := findEntry(set, id)
	if !found {
		logg.Fatal("Component not found in any catalog", zap.String("id", id))
	}

	status, note := baselineStatus(catalog.NewStore(cfg.Data.Dir), file, entry)

	// Pretty Console Output
	fmt.Println("\n--- Component Detail View ---")
	fmt.Printf("Query:       %s\n", id)
	fmt.Printf("ID:          %s\n", entry.ID)
	fmt.Printf("Name:        %s\n", entry.Name)
	fmt.Printf("Category:    %s\n", entry.Category)
	fmt.Printf("Catalog:     %s\n", file)
	if level, ok := lookupPowerLevel(res.Components, entry.ID); ok {
		fmt.Printf("Power Level: %g\n", level)
	}
	fmt.Println("-----------------------------")

	for _, tier := range entry.Tiers.SortedKeys() {
		p := entry.Tiers[tier]
		if p.Grid != nil {
			fmt.Printf("Tier %-3s     power %d (protected %d, unprotected %d)\n",
				tier, p.PowerGeneration, p.ProtectedPower, p.UnprotectedPower)
		} else {
			fmt.Printf("Tier %-3s     shape %s\n", tier, shapeDims(p.Shape))
		}
	}
	fmt.Println("-----------------------------")

	statusColor := "\033[32m" // Green
	if status == "CHANGED" {
		statusColor = "\033[31m" // Red
	} else if status != "UNCHANGED" {
		statusColor = "\033[33m" // Yellow
	}
	resetColor := "\033[0m"

	fmt.Printf("Baseline:    %s%s%s\n", statusColor, status, resetColor)
	if note != "" {
		fmt.Printf("Note:        %s\n", note)
	}
	fmt.Println("-----------------------------")
}

// findEntry looks an id up across the three catalogs, returning the file it
// belongs to.
func findEntry(set *catalog.CatalogSet, id string) (string, models.Entry, bool) {
	for _, f := range set.Files() {
		if entry, ok := f.Catalog[id]; ok {
			return f.Name, entry, true
		}
	}
	return "", models.Entry{}, false
}

// baselineStatus compares one generated entry against its persisted
// counterpart: UNCHANGED, CHANGED, NEW when the baseline lacks the entry, or
// NO BASELINE when the document has not been generated yet.
func baselineStatus(store *catalog.Store, file string, entry models.Entry) (string, string) {
	existing, err := store.Load(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "NO BASELINE", fmt.Sprintf("no catalog at %s, run sync first", store.Path(file))
		}
		return "NO BASELINE", err.Error()
	}

	base, ok := existing[entry.ID]
	if !ok {
		return "NEW", fmt.Sprintf("not present in %s yet", file)
	}

	report := catalog.Diff(
		models.Catalog{entry.ID: entry},
		models.Catalog{entry.ID: base},
	)
	if report.Empty() {
		return "UNCHANGED", ""
	}
	return "CHANGED", fmt.Sprintf("%d tier difference(s), run compare for details", len(report.TierDiffs))
}

// lookupPowerLevel recovers the representative record's power level for a
// catalog id. The value is informational and never persisted, so it has to
// come from the raw records.
func lookupPowerLevel(records []models.RawComponent, id string) (float64, bool) {
	for _, fam := range catalog.Group(records, nil) {
		famID, _ := catalog.Identity(fam)
		if famID == id {
			return fam.Representative().PowerLevel, true
		}
	}
	return 0, false
}

func shapeDims(shape models.Grid) string {
	rows := len(shape)
	cols := 0
	if rows > 0 {
		cols = len(shape[0])
	}
	return fmt.Sprintf("%dx%d %v", rows, cols, shape)
}
