package catalog

import (
	"sort"
	"strconv"
	"strings"

	"gamedata-sync/feature/catalog/models"
)

// ShapeTable maps plug names to their footprint grids.
type ShapeTable map[string]models.Grid

// Display labels for the two fixed-category catalogs.
const (
	reactorLabel = "REACTORS"
	auxLabel     = "AUX GENERATORS"
)

// NoneEntryID keys the synthetic aux generator entry that represents an
// empty generator slot in the optimizer.
const NoneEntryID = "none"

// categoryLabels maps source categories to their catalog display labels.
var categoryLabels = map[models.Category]string{
	models.CategoryEngine:          "ENGINES",
	models.CategoryPilotCannon:     "PILOT CANNONS",
	models.CategoryMultiTurret:     "MULTI-TURRET SYSTEMS",
	models.CategoryReactor:         reactorLabel,
	models.CategorySensor:          "SENSORS",
	models.CategoryShieldGenerator: "SHIELD GENERATORS",
	models.CategorySpecialWeapon:   "SPECIAL WEAPONS",
	models.CategoryAuxiliary:       auxLabel,
}

// displayCategory renders a category's catalog label. Categories without a
// curated label, which today means only CategoryOther, fall back to the
// uppercased token so nothing ships with an empty category.
func displayCategory(c models.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return strings.ToUpper(string(c))
}

// CatalogSet bundles the three catalogs produced from one extract.
type CatalogSet struct {
	Components    models.Catalog
	Reactors      models.Catalog
	AuxGenerators models.Catalog
}

// BuildAll generates the three catalogs from one extract's decoded records.
func BuildAll(records []models.RawComponent, shapes ShapeTable) *CatalogSet {
	return &CatalogSet{
		Components:    BuildComponents(records, shapes),
		Reactors:      BuildReactors(records),
		AuxGenerators: BuildAuxGenerators(records),
	}
}

// BuildComponents generates the general component catalog. Reactor and
// auxiliary records are excluded since their catalogs persist power layouts
// instead of footprint shapes. Each tier resolves its shape through the plug
// table, defaulting to a single occupied cell when the record names no plug
// or an unknown one.
func BuildComponents(records []models.RawComponent, shapes ShapeTable) models.Catalog {
	families := Group(records, func(c models.Category) bool {
		return c != models.CategoryReactor && c != models.CategoryAuxiliary
	})
	return buildCatalog(families,
		func(f *Family) string { return displayCategory(f.Representative().Category) },
		func(rec models.RawComponent) models.TierPayload {
			shape := defaultShape()
			if rec.PlugName != "" {
				if s, ok := shapes[rec.PlugName]; ok {
					shape = s
				}
			}
			return models.TierPayload{Shape: shape}
		})
}

// BuildReactors generates the reactor catalog. Every tier carries its power
// grid and the stats counted from it; records without a grid get the default
// fully blocked 4x8 layout.
func BuildReactors(records []models.RawComponent) models.Catalog {
	families := Group(records, func(c models.Category) bool {
		return c == models.CategoryReactor
	})
	return buildCatalog(families,
		func(*Family) string { return reactorLabel },
		powerPayload(defaultReactorGrid))
}

// BuildAuxGenerators generates the aux generator catalog and guarantees the
// synthetic none entry: a fully blocked 2x8 single-tier layout the optimizer
// uses for an empty slot. A real family whose id works out to none keeps its
// own entry, matching how the seeded placeholder has always been overridable.
func BuildAuxGenerators(records []models.RawComponent) models.Catalog {
	families := Group(records, func(c models.Category) bool {
		return c == models.CategoryAuxiliary
	})
	out := buildCatalog(families,
		func(*Family) string { return auxLabel },
		powerPayload(defaultAuxGrid))
	if _, taken := out[NoneEntryID]; !taken {
		out[NoneEntryID] = noneEntry()
	}
	return out
}

// Identity resolves a family's catalog id and display name from its
// representative record. A missing localized name falls back to the
// title-cased base key before the id is derived; an id that camel-cases
// to nothing falls back to the base key itself.
func Identity(f *Family) (string, string) {
	name := f.Representative().DisplayName
	if name == "" {
		name = TitleName(f.BaseKey)
	}
	id, ok := FriendlyID(name)
	if !ok {
		id = f.BaseKey
	}
	return id, name
}

// buildCatalog renders grouped families into catalog entries. Families are
// visited in ascending base-key order, so when two distinct families derive
// the same friendly id, the last one in that order wins deterministically.
// Within a family, a tier recorded twice keeps the later record.
func buildCatalog(families map[string]*Family, categoryOf func(*Family) string, payload func(models.RawComponent) models.TierPayload) models.Catalog {
	keys := make([]string, 0, len(families))
	for key := range families {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make(models.Catalog, len(families))
	for _, key := range keys {
		fam := families[key]
		id, name := Identity(fam)
		tiers := make(models.TierMap, len(fam.Records))
		for _, rec := range fam.Records {
			tiers[strconv.Itoa(rec.Tier)] = payload(rec)
		}
		out[id] = models.Entry{
			ID:       id,
			Name:     name,
			Category: categoryOf(fam),
			Tiers:    tiers,
		}
	}
	return out
}

// powerPayload builds the tier renderer for the power-grid catalogs: resolve
// the record's grid, fall back to the catalog's default layout, and count
// stats from whichever grid ends up persisted.
func powerPayload(defaultGrid func() models.Grid) func(models.RawComponent) models.TierPayload {
	return func(rec models.RawComponent) models.TierPayload {
		grid := rec.PowerGrid
		if grid == nil {
			grid = defaultGrid()
		}
		return models.TierPayload{PowerStats: grid.Stats(), Grid: grid}
	}
}

func noneEntry() models.Entry {
	grid := noneAuxGrid()
	return models.Entry{
		ID:       NoneEntryID,
		Name:     "None",
		Category: auxLabel,
		Tiers: models.TierMap{
			"1": {PowerStats: grid.Stats(), Grid: grid},
		},
	}
}

// Default grids for records whose source carries no layout. Constructed per
// call so a caller mutating one catalog cannot corrupt the next build.
func defaultShape() models.Grid {
	return models.Grid{{1}}
}

func defaultReactorGrid() models.Grid {
	return models.UniformGrid(4, 8, models.CellBlocked)
}

func defaultAuxGrid() models.Grid {
	return models.UniformGrid(2, 8, models.CellUnprotected)
}

func noneAuxGrid() models.Grid {
	return models.UniformGrid(2, 8, models.CellBlocked)
}
