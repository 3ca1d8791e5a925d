package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"gamedata-sync/core/config"
	"gamedata-sync/core/logger"
	"gamedata-sync/core/storage"
	"gamedata-sync/feature/catalog"
	"gamedata-sync/feature/catalog/models"
	"gamedata-sync/feature/extract"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncSource  string
	syncOutput  string
	syncDryRun  bool
	syncPublish bool
)

// syncCmd regenerates the three catalog documents from a game data extract.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Generate the component catalogs from a game data extract",
	Long: `Sync reads a decoded game data extract (strings.json, plugs.json,
components.json), normalizes the per-tier component records into families,
and writes the three catalog documents the power grid optimizer consumes:
components.json, reactors.json, and auxGenerators.json.

Examples:
  # Generate catalogs from the configured extract into the data directory
  gamedata-sync sync

  # Inspect what would be generated without writing anything
  gamedata-sync sync --dry-run

  # Read another extract and write somewhere else
  gamedata-sync sync --source /tmp/extract --output /tmp/data

  # Also upload the generated catalogs to object storage
  gamedata-sync sync --publish`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncSource, "source", "", "Extract location (directory path, or object prefix in bucket mode)")
	syncCmd.Flags().StringVar(&syncOutput, "output", "", "Directory to write the catalog documents to")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Show what would be generated without writing files")
	syncCmd.Flags().BoolVar(&syncPublish, "publish", false, "Upload the generated catalogs to object storage")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applySourceOverride(cfg, syncSource)
	if syncOutput != "" {
		cfg.Data.Dir = syncOutput
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	// Open the extract source and decode the documents
	src, err := newExtractSource(ctx, cfg)
	if err != nil {
		return err
	}

	l.Info("Loading game data extract",
		zap.String("mode", cfg.Source.Mode),
		zap.String("location", sourceLocation(cfg)))

	res, err := extract.Load(ctx, src)
	if err != nil {
		return fmt.Errorf("failed to load extract: %w", err)
	}
	for _, skip := range res.Skipped {
		l.Warn("Skipped unusable record",
			zap.String("identifier", skip.Identifier),
			zap.String("reason", skip.Reason))
	}
	l.Info("Extract decoded",
		zap.Int("records", len(res.Components)),
		zap.Int("plug_shapes", len(res.Shapes)),
		zap.Int("skipped", len(res.Skipped)))

	// Generate the catalogs
	set := catalog.BuildAll(res.Components, res.Shapes)
	l.Info("Catalogs generated",
		zap.Int("components", len(set.Components)),
		zap.Int("reactors", len(set.Reactors)),
		zap.Int("aux_generators", len(set.AuxGenerators)))

	if syncDryRun {
		printDryRun(set)
		return nil
	}

	// Persist
	store := catalog.NewStore(cfg.Data.Dir)
	written, err := store.WriteAll(set)
	if err != nil {
		return fmt.Errorf("failed to write catalogs: %w", err)
	}
	for _, path := range written {
		fmt.Printf("Saved: %s\n", path)
	}

	// Optionally mirror to object storage
	if syncPublish {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		if err := catalog.Publish(ctx, client, cfg.Storage.Bucket, cfg.Data.Prefix, set); err != nil {
			return fmt.Errorf("failed to publish catalogs: %w", err)
		}
		l.Info("Catalogs published",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", cfg.Data.Prefix))
	}

	fmt.Println("\nGrid values (game encoding): 0=powered, 1=protected, 4=blocked")
	return nil
}

// applySourceOverride points both source modes at the location given on the
// command line, leaving the configuration untouched when the flag is unset.
func applySourceOverride(cfg *config.Config, location string) {
	if location == "" {
		return
	}
	cfg.Source.Path = location
	cfg.Source.Prefix = location
}

// sourceLocation names the configured extract location for log output.
func sourceLocation(cfg *config.Config) string {
	if cfg.Source.Mode == config.SourceModeBucket {
		return cfg.Storage.Bucket + "/" + cfg.Source.Prefix
	}
	return cfg.Source.Path
}

// newExtractSource builds the configured extract source. Bucket mode checks
// the bucket up front so a bad location fails before any build work starts.
func newExtractSource(ctx context.Context, cfg *config.Config) (extract.Source, error) {
	if !cfg.Source.IsValidMode() {
		return nil, fmt.Errorf("unsupported source mode %q (want %q or %q)",
			cfg.Source.Mode, config.SourceModeDir, config.SourceModeBucket)
	}

	if cfg.Source.Mode == config.SourceModeDir {
		return extract.NewDir(cfg.Source.Path), nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", cfg.Storage.Bucket)
	}
	return extract.NewBucket(client, cfg.Storage.Bucket, cfg.Source.Prefix), nil
}

// printDryRun shows the catalog counts plus a few rendered entries without
// touching the output directory.
func printDryRun(set *catalog.CatalogSet) {
	fmt.Println("\n[DRY RUN] Would generate:")
	for _, f := range set.Files() {
		fmt.Printf("  - %s (%d entries)\n", f.Name, len(f.Catalog))
	}

	fmt.Println("\nSample components:")
	printSampleEntries(set.Components, 2)
	fmt.Println("\nSample reactor:")
	printSampleEntries(set.Reactors, 1)
}

// printSampleEntries renders up to max entries the way they would appear in
// the persisted document.
func printSampleEntries(c models.Catalog, max int) {
	for i, id := range c.SortedIDs() {
		if i >= max {
			return
		}
		data, err := json.MarshalIndent(models.Catalog{id: c[id]}, "", "  ")
		if err != nil {
			continue
		}
		fmt.Println(string(data))
	}
}
