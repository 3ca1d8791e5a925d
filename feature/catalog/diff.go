package catalog

import (
	"gamedata-sync/feature/catalog/models"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// DiffKind classifies a tier-level difference.
type DiffKind string

const (
	// DiffNew marks a tier present in the generated catalog only.
	DiffNew DiffKind = "NEW"
	// DiffChanged marks a tier whose layout differs from the baseline.
	DiffChanged DiffKind = "CHANGED"
)

// TierDiff describes one tier-level difference. Changed tiers carry both
// layouts; new tiers carry the generated one only.
type TierDiff struct {
	ID        string      `json:"id"`
	Tier      string      `json:"tier"`
	Kind      DiffKind    `json:"kind"`
	Generated models.Grid `json:"generated,omitempty"`
	Existing  models.Grid `json:"existing,omitempty"`
}

// DiffSummary aggregates a report into counts.
type DiffSummary struct {
	Added        int `json:"added"`
	Removed      int `json:"removed"`
	NewTiers     int `json:"new_tiers"`
	ChangedTiers int `json:"changed_tiers"`
}

// DiffReport is the outcome of comparing a freshly generated catalog against
// a persisted baseline. Added and Removed list whole entries by id; TierDiffs
// covers tiers of entries present on both sides. All slices come out sorted,
// ids ascending and tiers in numeric order, so reports are reproducible.
type DiffReport struct {
	Added     []string    `json:"added"`
	Removed   []string    `json:"removed"`
	TierDiffs []TierDiff  `json:"tier_diffs"`
	Summary   DiffSummary `json:"summary"`
}

// Empty reports whether the two catalogs agree completely.
func (r *DiffReport) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.TierDiffs) == 0
}

// Diff compares generated against existing. The comparison is structural and
// pure: neither catalog is modified, names and stats are not compared, and
// only the grid or shape of each tier decides equality. A tier present in the
// baseline but missing from the generated side is not reported; entries that
// vanish entirely surface under Removed.
func Diff(generated, existing models.Catalog) *DiffReport {
	report := &DiffReport{
		Added:     []string{},
		Removed:   []string{},
		TierDiffs: []TierDiff{},
	}

	for _, id := range generated.SortedIDs() {
		if _, ok := existing[id]; !ok {
			report.Added = append(report.Added, id)
		}
	}
	for _, id := range existing.SortedIDs() {
		if _, ok := generated[id]; !ok {
			report.Removed = append(report.Removed, id)
		}
	}

	for _, id := range generated.SortedIDs() {
		exEntry, ok := existing[id]
		if !ok {
			continue
		}
		genEntry := generated[id]
		for _, tier := range genEntry.Tiers.SortedKeys() {
			genGrid := genEntry.Tiers[tier].StructuralGrid()
			exPayload, ok := exEntry.Tiers[tier]
			if !ok {
				report.TierDiffs = append(report.TierDiffs, TierDiff{
					ID:        id,
					Tier:      tier,
					Kind:      DiffNew,
					Generated: genGrid,
				})
				report.Summary.NewTiers++
				continue
			}
			exGrid := exPayload.StructuralGrid()
			// A grid that round-trips through JSON decodes with empty rows
			// where nil rows went in; treat those as equal.
			if !cmp.Equal(genGrid, exGrid, cmpopts.EquateEmpty()) {
				report.TierDiffs = append(report.TierDiffs, TierDiff{
					ID:        id,
					Tier:      tier,
					Kind:      DiffChanged,
					Generated: genGrid,
					Existing:  exGrid,
				})
				report.Summary.ChangedTiers++
			}
		}
	}

	report.Summary.Added = len(report.Added)
	report.Summary.Removed = len(report.Removed)
	return report
}
