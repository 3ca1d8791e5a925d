package extract

import (
	"context"
	"encoding/json"
	"fmt"

	"gamedata-sync/feature/catalog"
	"gamedata-sync/feature/catalog/models"

	"golang.org/x/sync/errgroup"
)

// Extract document names produced by the game data exporter.
const (
	StringsDoc    = "strings.json"
	PlugsDoc      = "plugs.json"
	ComponentsDoc = "components.json"
)

// Source provides the three documents of one game data extract. An extract
// is read as a unit; implementations fetch from a local directory or an
// object storage prefix.
type Source interface {
	// LocalizationTable returns localized display strings keyed by the
	// decimal string form of their table id. A source may return an empty
	// table when the extract carries no localization bundle.
	LocalizationTable(ctx context.Context) (map[string]string, error)
	// ShapeTable returns plug footprints keyed by plug name.
	ShapeTable(ctx context.Context) (map[string]PlugShape, error)
	// RawComponents returns the per-tier component records.
	RawComponents(ctx context.Context) ([]Record, error)
}

// PlugShape is one entry of the exporter's plug document.
type PlugShape struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Grid   models.Grid `json:"grid"`
}

// LocKey is a localization table reference. The exporter emits the game's
// 64-bit table ids as JSON numbers; hand-edited extracts often quote them.
// Both forms decode to the exact decimal string used for table lookup.
// Decoding through float64 instead would corrupt ids above 2^53.
type LocKey string

// UnmarshalJSON accepts both the string and the number form.
func (k *LocKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*k = LocKey(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("name key is neither string nor number: %w", err)
	}
	*k = LocKey(n.String())
	return nil
}

// Record is one row of the exporter's component document.
type Record struct {
	GameName   string      `json:"gameName"`
	NameKey    LocKey      `json:"nameKey"`
	Tier       int         `json:"tier"`
	PlugName   string      `json:"plugName"`
	Category   string      `json:"category"`
	PowerLevel float64     `json:"powerLevel"`
	PowerGrid  models.Grid `json:"powerGrid"`
}

// SkipDiagnostic names one record dropped during decoding and why.
type SkipDiagnostic struct {
	Identifier string `json:"identifier"`
	Reason     string `json:"reason"`
}

// Result is the decoded outcome of one extract load.
type Result struct {
	Components []models.RawComponent
	Shapes     catalog.ShapeTable
	Skipped    []SkipDiagnostic
}

// Load fetches the three extract documents concurrently, then decodes the
// component records against the localization table. Records that fail
// validation are dropped and reported through Result.Skipped, never as
// errors; a document that cannot be fetched fails the whole load.
func Load(ctx context.Context, src Source) (*Result, error) {
	var (
		loc     map[string]string
		plugs   map[string]PlugShape
		records []Record
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		loc, err = src.LocalizationTable(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		plugs, err = src.ShapeTable(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = src.RawComponents(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Components: make([]models.RawComponent, 0, len(records)),
		Shapes:     make(catalog.ShapeTable, len(plugs)),
		Skipped:    []SkipDiagnostic{},
	}
	for name, plug := range plugs {
		res.Shapes[name] = plug.Grid
	}
	for i, rec := range records {
		comp := models.RawComponent{
			GameName:    rec.GameName,
			DisplayName: loc[string(rec.NameKey)],
			Tier:        rec.Tier,
			PlugName:    rec.PlugName,
			Category:    models.ParseCategory(rec.Category),
			PowerLevel:  rec.PowerLevel,
			PowerGrid:   rec.PowerGrid,
		}
		if reason := comp.Validate(); reason != "" {
			res.Skipped = append(res.Skipped, SkipDiagnostic{
				Identifier: skipIdentifier(rec, i),
				Reason:     reason,
			})
			continue
		}
		res.Components = append(res.Components, comp)
	}
	return res, nil
}

// skipIdentifier names a dropped record in diagnostics; nameless rows fall
// back to their position in the document.
func skipIdentifier(rec Record, index int) string {
	if rec.GameName != "" {
		return rec.GameName
	}
	return fmt.Sprintf("record[%d]", index)
}
