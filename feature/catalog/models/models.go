package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// GameNamePrefix is the identifier prefix every usable component record
// carries in the game data extract.
const GameNamePrefix = "Component_"

// Category identifies the game's component classification. Values are the
// lowercase tokens the extract uses on the wire.
type Category string

const (
	CategoryEngine          Category = "engine"
	CategoryPilotCannon     Category = "pilotcannon"
	CategoryMultiTurret     Category = "multiturret"
	CategoryReactor         Category = "reactor"
	CategorySensor          Category = "sensor"
	CategoryShieldGenerator Category = "shieldgenerator"
	CategorySpecialWeapon   Category = "specialweapon"
	CategoryAuxiliary       Category = "auxiliary"
	// CategoryOther collects records whose category token is unknown. They
	// stay in the pipeline rather than failing the run, so a new game patch
	// cannot silently drop components.
	CategoryOther Category = "other"
)

// ParseCategory normalizes a raw category token from the extract. Unknown
// tokens map to CategoryOther.
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	switch c {
	case CategoryEngine, CategoryPilotCannon, CategoryMultiTurret, CategoryReactor,
		CategorySensor, CategoryShieldGenerator, CategorySpecialWeapon, CategoryAuxiliary:
		return c
	}
	return CategoryOther
}

// RawComponent is one decoded per-tier component record, ready for grouping.
// DisplayName is already resolved against the localization table and empty
// when the table had no entry for the record's name key.
type RawComponent struct {
	GameName    string
	DisplayName string
	Tier        int
	PlugName    string
	Category    Category
	PowerLevel  float64
	PowerGrid   Grid
}

// Validate checks that a record is usable for catalog generation. It returns
// an empty string if the record is valid, or a reason string if not.
func (c RawComponent) Validate() string {
	if c.GameName == "" {
		return "missing game identifier"
	}
	if !strings.HasPrefix(c.GameName, GameNamePrefix) {
		return "game identifier lacks component prefix"
	}
	if c.Tier < 1 {
		return "invalid tier"
	}
	return ""
}

// Entry is one persisted catalog entry: a component family with its
// per-tier payloads.
type Entry struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Tiers    TierMap `json:"tiers"`
}

// TierPayload is the persisted content of a single tier. General component
// tiers carry a footprint Shape; reactor and aux generator tiers carry a
// power Grid plus its stats. Exactly one of Grid and Shape is set.
type TierPayload struct {
	PowerStats
	Grid  Grid
	Shape Grid
}

// StructuralGrid returns the grid a tier is compared by: the power grid when
// present, otherwise the footprint shape.
func (p TierPayload) StructuralGrid() Grid {
	if p.Grid != nil {
		return p.Grid
	}
	return p.Shape
}

type powerForm struct {
	PowerGeneration  int  `json:"powerGeneration"`
	ProtectedPower   int  `json:"protectedPower"`
	UnprotectedPower int  `json:"unprotectedPower"`
	Grid             Grid `json:"grid"`
}

type shapeForm struct {
	Shape Grid `json:"shape"`
}

// MarshalJSON emits the power form when a power grid is present and the
// shape form otherwise. The stats fields always appear in the power form,
// including when they are zero, so an all-blocked grid keeps its explicit
// zero counts.
func (p TierPayload) MarshalJSON() ([]byte, error) {
	if p.Grid != nil {
		return json.Marshal(powerForm{
			PowerGeneration:  p.PowerGeneration,
			ProtectedPower:   p.ProtectedPower,
			UnprotectedPower: p.UnprotectedPower,
			Grid:             p.Grid,
		})
	}
	return json.Marshal(shapeForm{Shape: p.Shape})
}

// UnmarshalJSON accepts either payload form.
func (p *TierPayload) UnmarshalJSON(data []byte) error {
	var raw struct {
		PowerGeneration  int  `json:"powerGeneration"`
		ProtectedPower   int  `json:"protectedPower"`
		UnprotectedPower int  `json:"unprotectedPower"`
		Grid             Grid `json:"grid"`
		Shape            Grid `json:"shape"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = TierPayload{
		PowerStats: PowerStats{
			PowerGeneration:  raw.PowerGeneration,
			ProtectedPower:   raw.ProtectedPower,
			UnprotectedPower: raw.UnprotectedPower,
		},
		Grid:  raw.Grid,
		Shape: raw.Shape,
	}
	return nil
}

// TierMap maps tier numbers, as decimal strings, to their payloads.
type TierMap map[string]TierPayload

// SortedKeys returns the tier keys in ascending numeric order. Keys that do
// not parse as integers sort lexicographically after the numeric ones.
func (m TierMap) SortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.Atoi(keys[i])
		b, berr := strconv.Atoi(keys[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		if aerr == nil {
			return true
		}
		if berr == nil {
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}

// MarshalJSON emits tiers in ascending numeric order. The default map
// encoding would sort keys as strings and place tier "10" before tier "2".
func (m TierMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.SortedKeys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Catalog maps friendly ids to entries. The default map encoding emits keys
// in ascending order, which is exactly the persisted entry order.
type Catalog map[string]Entry

// SortedIDs returns the entry ids in ascending order.
func (c Catalog) SortedIDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
