package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gamedata-sync/core/config"
	"gamedata-sync/core/logger"
	"gamedata-sync/feature/catalog"
	"gamedata-sync/feature/catalog/models"
	"gamedata-sync/feature/extract"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	compareSource   string
	compareBaseline string
	compareJSONOut  bool
)

// changedPreviewLimit bounds how many changed tiers print their full layouts.
const changedPreviewLimit = 3

// catalogComparison pairs one catalog's name with its diff for the JSON report.
type catalogComparison struct {
	Catalog string              `json:"catalog"`
	Report  *catalog.DiffReport `json:"report"`
}

// compareCmd diffs freshly generated catalogs against the persisted ones.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare generated catalogs against the persisted baseline",
	Long: `Compare regenerates the catalogs from the configured extract in memory and
diffs them against the documents in the data directory, without writing
anything. It reports entries new in the game, entries that vanished, and
tiers whose grid or shape changed.

Examples:
  # Console report against the configured data directory
  gamedata-sync compare

  # Compare another extract against another baseline
  gamedata-sync compare --source /tmp/extract --baseline /srv/catalogs

  # Also write a machine-readable report (compare_<timestamp>.json)
  gamedata-sync compare --json`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareSource, "source", "", "Extract location (directory path, or object prefix in bucket mode)")
	compareCmd.Flags().StringVar(&compareBaseline, "baseline", "", "Directory holding the catalogs to compare against")
	compareCmd.Flags().BoolVar(&compareJSONOut, "json", false, "Write the full report to compare_<timestamp>.json")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applySourceOverride(cfg, compareSource)
	if compareBaseline != "" {
		cfg.Data.Dir = compareBaseline
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	// Regenerate the catalogs in memory
	src, err := newExtractSource(ctx, cfg)
	if err != nil {
		return err
	}
	res, err := extract.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to load extract: %w", err)
	}
	set := catalog.BuildAll(res.Components, res.Shapes)

	// Diff each catalog against its persisted counterpart
	store := catalog.NewStore(cfg.Data.Dir)
	comparisons := make([]catalogComparison, 0, 3)
	var summary catalog.DiffSummary

	for _, f := range set.Files() {
		existing, err := store.Load(f.Name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// A missing baseline is expected on first runs.
				fmt.Printf("\n[%s] No existing file at %s\n", f.Name, store.Path(f.Name))
				continue
			}
			return fmt.Errorf("failed to load baseline %s: %w", f.Name, err)
		}

		report := catalog.Diff(f.Catalog, existing)
		printComparison(f.Name, f.Catalog, report)
		comparisons = append(comparisons, catalogComparison{Catalog: f.Name, Report: report})

		summary.Added += report.Summary.Added
		summary.Removed += report.Summary.Removed
		summary.NewTiers += report.Summary.NewTiers
		summary.ChangedTiers += report.Summary.ChangedTiers
	}

	if compareJSONOut {
		filename := fmt.Sprintf("compare_%d.json", time.Now().Unix())
		data, err := json.MarshalIndent(comparisons, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal comparison report: %w", err)
		}
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to save comparison report: %w", err)
		}
		l.Info("Comparison report saved", zap.String("file", filename))
	}

	l.Info("Comparison finished",
		zap.Int("added", summary.Added),
		zap.Int("removed", summary.Removed),
		zap.Int("new_tiers", summary.NewTiers),
		zap.Int("changed_tiers", summary.ChangedTiers))
	return nil
}

// printComparison renders one catalog's diff as a console block.
func printComparison(name string, generated models.Catalog, report *catalog.DiffReport) {
	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("COMPARISON: %s\n", name)
	fmt.Println(strings.Repeat("=", 60))

	if len(report.Added) > 0 {
		fmt.Printf("\n[+] NEW in game (%d):\n", len(report.Added))
		for _, id := range report.Added {
			entry := generated[id]
			fmt.Printf("    + %s: %s (tiers %v)\n", id, entry.Name, entry.Tiers.SortedKeys())
		}
	}

	if len(report.Removed) > 0 {
		fmt.Printf("\n[-] In file but NOT in game (%d):\n", len(report.Removed))
		for _, id := range report.Removed {
			fmt.Printf("    - %s\n", id)
		}
	}

	if len(report.TierDiffs) > 0 {
		fmt.Println("\n[~] Tier differences:")
		previewed := 0
		for _, d := range report.TierDiffs {
			switch d.Kind {
			case catalog.DiffNew:
				fmt.Printf("    + %s tier %s: NEW\n", d.ID, d.Tier)
			case catalog.DiffChanged:
				fmt.Printf("    ~ %s tier %s: grid/shape differs\n", d.ID, d.Tier)
				if previewed < changedPreviewLimit {
					fmt.Printf("        Existing: %v\n", d.Existing)
					fmt.Printf("        Game:     %v\n", d.Generated)
					previewed++
				}
			}
		}
	}

	if report.Empty() {
		fmt.Println("\n[OK] All data matches!")
	}
}
