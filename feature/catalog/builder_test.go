package catalog_test

import (
	"encoding/json"
	"testing"

	"gamedata-sync/feature/catalog"
	"gamedata-sync/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildComponents(t *testing.T) {
	records := []models.RawComponent{
		{GameName: "Component_Ion_Engine_01", DisplayName: "Ion Engine", Tier: 1, PlugName: "engine_plug", Category: models.CategoryEngine},
		{GameName: "Component_Ion_Engine_02", DisplayName: "Ion Engine", Tier: 2, PlugName: "engine_plug", Category: models.CategoryEngine},
	}
	shapes := catalog.ShapeTable{"engine_plug": models.Grid{{1, 1}}}

	out := catalog.BuildComponents(records, shapes)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"ionEngine": {
			"id": "ionEngine",
			"name": "Ion Engine",
			"category": "ENGINES",
			"tiers": {
				"1": {"shape": [[1,1]]},
				"2": {"shape": [[1,1]]}
			}
		}
	}`, string(data))
}

func TestBuildComponentsShapeFallback(t *testing.T) {
	records := []models.RawComponent{
		{GameName: "Component_Sensor_Array_01", Tier: 1, Category: models.CategorySensor},
		{GameName: "Component_Sensor_Array_02", Tier: 2, PlugName: "missing_plug", Category: models.CategorySensor},
	}

	out := catalog.BuildComponents(records, catalog.ShapeTable{})
	entry, ok := out["sensorArray"]
	require.True(t, ok)

	// No plug and unknown plug both land on the single-cell default.
	assert.Equal(t, models.Grid{{1}}, entry.Tiers["1"].Shape)
	assert.Equal(t, models.Grid{{1}}, entry.Tiers["2"].Shape)
}

func TestBuildComponentsExcludesPowerCategories(t *testing.T) {
	records := []models.RawComponent{
		{GameName: "Component_Ion_Engine_01", Tier: 1, Category: models.CategoryEngine},
		{GameName: "Component_Fusion_Core_01", Tier: 1, Category: models.CategoryReactor},
		{GameName: "Component_Battery_Pack_01", Tier: 1, Category: models.CategoryAuxiliary},
	}

	out := catalog.BuildComponents(records, nil)
	assert.Equal(t, []string{"ionEngine"}, out.SortedIDs())
}

func TestBuildComponentsUnknownCategoryLabel(t *testing.T) {
	records := []models.RawComponent{
		{GameName: "Component_Mystery_Box_01", Tier: 1, Category: models.ParseCategory("turbolaser")},
	}

	out := catalog.BuildComponents(records, nil)
	entry, ok := out["mysteryBox"]
	require.True(t, ok)
	assert.Equal(t, "OTHER", entry.Category)
}

func TestBuildComponentsNameFallback(t *testing.T) {
	records := []models.RawComponent{
		{GameName: "Component_Ion_Engine_01", Tier: 1, Category: models.CategoryEngine},
	}

	out := catalog.BuildComponents(records, nil)
	entry, ok := out["ionEngine"]
	require.True(t, ok, "id derives from the title-cased base key when localization is missing")
	assert.Equal(t, "Ion Engine", entry.Name)
}

func TestBuildComponentsIDFallback(t *testing.T) {
	records := []models.RawComponent{
		{GameName: "Component_Weird_Thing_01", DisplayName: "!!!", Tier: 1, Category: models.CategorySensor},
	}

	out := catalog.BuildComponents(records, nil)
	entry, ok := out["weird_thing"]
	require.True(t, ok, "an id that camel-cases to nothing falls back to the base key")
	assert.Equal(t, "!!!", entry.Name)
}

func TestBuildComponentsDuplicateTierLastWins(t *testing.T) {
	records := []models.RawComponent{
		{GameName: "Component_Ion_Engine_01", DisplayName: "Ion Engine", Tier: 1, PlugName: "first", Category: models.CategoryEngine},
		{GameName: "Component_Ion_Engine_02", DisplayName: "Ion Engine", Tier: 1, PlugName: "second", Category: models.CategoryEngine},
	}
	shapes := catalog.ShapeTable{
		"first":  models.Grid{{1}},
		"second": models.Grid{{1, 1}},
	}

	out := catalog.BuildComponents(records, shapes)
	entry := out["ionEngine"]
	require.Len(t, entry.Tiers, 1)
	assert.Equal(t, models.Grid{{1, 1}}, entry.Tiers["1"].Shape)
}

func TestBuildComponentsIDCollisionLastKeyWins(t *testing.T) {
	records := []models.RawComponent{
		{GameName: "Component_Alpha_Cannon_01", DisplayName: "Pulse Cannon", Tier: 1, Category: models.CategoryPilotCannon},
		{GameName: "Component_Beta_Cannon_01", DisplayName: "Pulse-Cannon", Tier: 3, Category: models.CategoryPilotCannon},
	}

	out := catalog.BuildComponents(records, nil)
	require.Len(t, out, 1)
	entry := out["pulseCannon"]
	assert.Equal(t, "Pulse-Cannon", entry.Name, "the last base key in ascending order wins the id")
	_, hasTier3 := entry.Tiers["3"]
	assert.True(t, hasTier3)
}

func TestBuildReactors(t *testing.T) {
	grid := models.Grid{
		{0, 0, 1, 1, 1, 1, 0, 0},
		{0, 1, 4, 4, 4, 4, 1, 0},
		{0, 1, 4, 4, 4, 4, 1, 0},
		{0, 0, 1, 1, 1, 1, 0, 0},
	}
	records := []models.RawComponent{
		{GameName: "Component_Fusion_Core_01", DisplayName: "Fusion Core", Tier: 1, Category: models.CategoryReactor, PowerGrid: grid},
		{GameName: "Component_Fusion_Core_02", DisplayName: "Fusion Core", Tier: 2, Category: models.CategoryReactor},
	}

	out := catalog.BuildReactors(records)
	entry, ok := out["fusionCore"]
	require.True(t, ok)
	assert.Equal(t, "REACTORS", entry.Category)

	tier1 := entry.Tiers["1"]
	assert.Equal(t, grid, tier1.Grid)
	assert.Equal(t, models.PowerStats{PowerGeneration: 24, ProtectedPower: 12, UnprotectedPower: 12}, tier1.PowerStats)

	// A record without a grid gets the fully blocked default layout.
	tier2 := entry.Tiers["2"]
	assert.Equal(t, models.UniformGrid(4, 8, models.CellBlocked), tier2.Grid)
	assert.Equal(t, models.PowerStats{}, tier2.PowerStats)
}

func TestBuildAuxGenerators(t *testing.T) {
	records := []models.RawComponent{
		{GameName: "Component_Battery_Pack_01", DisplayName: "Battery Pack", Tier: 1, Category: models.CategoryAuxiliary},
	}

	out := catalog.BuildAuxGenerators(records)

	pack, ok := out["batteryPack"]
	require.True(t, ok)
	assert.Equal(t, "AUX GENERATORS", pack.Category)
	tier1 := pack.Tiers["1"]
	assert.Equal(t, models.UniformGrid(2, 8, models.CellUnprotected), tier1.Grid)
	assert.Equal(t, models.PowerStats{PowerGeneration: 16, UnprotectedPower: 16}, tier1.PowerStats)
}

func TestBuildAuxGeneratorsNoneEntry(t *testing.T) {
	out := catalog.BuildAuxGenerators(nil)
	require.Len(t, out, 1, "the none entry is present even with no aux records")

	data, err := json.Marshal(out[catalog.NoneEntryID])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "none",
		"name": "None",
		"category": "AUX GENERATORS",
		"tiers": {
			"1": {
				"powerGeneration": 0,
				"protectedPower": 0,
				"unprotectedPower": 0,
				"grid": [[4,4,4,4,4,4,4,4],[4,4,4,4,4,4,4,4]]
			}
		}
	}`, string(data))
}

func TestBuildAuxGeneratorsNoneNotOverwritingRealEntry(t *testing.T) {
	records := []models.RawComponent{
		{GameName: "Component_None_01", DisplayName: "None", Tier: 1, Category: models.CategoryAuxiliary,
			PowerGrid: models.Grid{{0, 0}}},
	}

	out := catalog.BuildAuxGenerators(records)
	require.Len(t, out, 1)
	entry := out[catalog.NoneEntryID]
	assert.Equal(t, models.Grid{{0, 0}}, entry.Tiers["1"].Grid, "a real family keeps its entry over the placeholder")
}

func TestBuildAll(t *testing.T) {
	records := []models.RawComponent{
		{GameName: "Component_Ion_Engine_01", DisplayName: "Ion Engine", Tier: 1, Category: models.CategoryEngine},
		{GameName: "Component_Fusion_Core_01", DisplayName: "Fusion Core", Tier: 1, Category: models.CategoryReactor},
		{GameName: "Component_Battery_Pack_01", DisplayName: "Battery Pack", Tier: 1, Category: models.CategoryAuxiliary},
	}

	set := catalog.BuildAll(records, nil)
	assert.Equal(t, []string{"ionEngine"}, set.Components.SortedIDs())
	assert.Equal(t, []string{"fusionCore"}, set.Reactors.SortedIDs())
	assert.Equal(t, []string{"batteryPack", "none"}, set.AuxGenerators.SortedIDs())
}
