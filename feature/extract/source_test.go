package extract_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gamedata-sync/feature/catalog"
	"gamedata-sync/feature/catalog/models"
	"gamedata-sync/feature/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves canned documents and optional per-document failures.
type fakeSource struct {
	loc        map[string]string
	plugs      map[string]extract.PlugShape
	records    []extract.Record
	locErr     error
	plugsErr   error
	recordsErr error
}

func (f *fakeSource) LocalizationTable(ctx context.Context) (map[string]string, error) {
	return f.loc, f.locErr
}

func (f *fakeSource) ShapeTable(ctx context.Context) (map[string]extract.PlugShape, error) {
	return f.plugs, f.plugsErr
}

func (f *fakeSource) RawComponents(ctx context.Context) ([]extract.Record, error) {
	return f.records, f.recordsErr
}

func TestLoad(t *testing.T) {
	src := &fakeSource{
		loc: map[string]string{
			"1001": "Ion Engine",
			"1002": "Fusion Core",
		},
		plugs: map[string]extract.PlugShape{
			"engine_plug": {Width: 2, Height: 1, Grid: models.Grid{{1, 1}}},
		},
		records: []extract.Record{
			{GameName: "Component_Ion_Engine_01", NameKey: "1001", Tier: 1, PlugName: "engine_plug", Category: "engine", PowerLevel: 12.5},
			{GameName: "Component_Fusion_Core_01", NameKey: "1002", Tier: 1, Category: "reactor", PowerGrid: models.Grid{{0, 1}}},
			{GameName: "Component_Unlocalized_01", NameKey: "9999", Tier: 2, Category: "sensor"},
		},
	}

	res, err := extract.Load(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, res.Components, 3)
	assert.Empty(t, res.Skipped)

	engine := res.Components[0]
	assert.Equal(t, "Ion Engine", engine.DisplayName)
	assert.Equal(t, models.CategoryEngine, engine.Category)
	assert.Equal(t, 12.5, engine.PowerLevel)

	core := res.Components[1]
	assert.Equal(t, models.CategoryReactor, core.Category)
	assert.Equal(t, models.Grid{{0, 1}}, core.PowerGrid)

	// A name key the table does not know leaves the display name empty for
	// the builder's fallback chain.
	assert.Equal(t, "", res.Components[2].DisplayName)

	assert.Equal(t, catalog.ShapeTable{"engine_plug": models.Grid{{1, 1}}}, res.Shapes)
}

func TestLoadSkipsInvalidRecords(t *testing.T) {
	src := &fakeSource{
		loc:   map[string]string{},
		plugs: map[string]extract.PlugShape{},
		records: []extract.Record{
			{GameName: "Component_Good_01", Tier: 1, Category: "engine"},
			{GameName: "Rogue_Row_01", Tier: 1, Category: "engine"},
			{GameName: "", Tier: 1, Category: "engine"},
			{GameName: "Component_No_Tier_01", Tier: 0, Category: "engine"},
		},
	}

	res, err := extract.Load(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, res.Components, 1)
	assert.Equal(t, "Component_Good_01", res.Components[0].GameName)

	require.Len(t, res.Skipped, 3)
	assert.Equal(t, "Rogue_Row_01", res.Skipped[0].Identifier)
	assert.Equal(t, "record[2]", res.Skipped[1].Identifier, "nameless rows are identified by position")
	assert.Equal(t, "Component_No_Tier_01", res.Skipped[2].Identifier)
	for _, skip := range res.Skipped {
		assert.NotEmpty(t, skip.Reason)
	}
}

func TestLoadUnknownCategoryKept(t *testing.T) {
	src := &fakeSource{
		records: []extract.Record{
			{GameName: "Component_Mystery_01", Tier: 1, Category: "turbolaser"},
		},
	}

	res, err := extract.Load(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, res.Components, 1)
	assert.Equal(t, models.CategoryOther, res.Components[0].Category)
	assert.Empty(t, res.Skipped, "an unknown category is not a reason to drop a record")
}

func TestLoadDocumentFailureFailsTheRun(t *testing.T) {
	boom := errors.New("storage unreachable")

	for name, src := range map[string]*fakeSource{
		"localization": {locErr: boom},
		"plugs":        {plugsErr: boom},
		"components":   {recordsErr: boom},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := extract.Load(context.Background(), src)
			require.Error(t, err)
			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestLocKeyUnmarshal(t *testing.T) {
	var doc struct {
		Key extract.LocKey `json:"key"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"key": "1001"}`), &doc))
	assert.Equal(t, extract.LocKey("1001"), doc.Key)

	require.NoError(t, json.Unmarshal([]byte(`{"key": 1001}`), &doc))
	assert.Equal(t, extract.LocKey("1001"), doc.Key)

	// Table ids can exceed 2^53; the decimal text must survive untouched.
	require.NoError(t, json.Unmarshal([]byte(`{"key": 9007199254740993}`), &doc))
	assert.Equal(t, extract.LocKey("9007199254740993"), doc.Key)

	err := json.Unmarshal([]byte(`{"key": {"nested": true}}`), &doc)
	assert.Error(t, err)
}
