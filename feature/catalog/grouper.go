package catalog

import (
	"sort"

	"gamedata-sync/feature/catalog/models"
)

// Family collects the per-tier records of one component family, identified
// by their shared base key. Records are ordered by ascending tier; ties keep
// their input order.
type Family struct {
	BaseKey string
	Records []models.RawComponent
}

// Representative returns the record naming decisions are taken from: the
// lowest-tier record. Group never creates a family without records.
func (f *Family) Representative() models.RawComponent {
	return f.Records[0]
}

// Group buckets records into families by base key. The keep filter decides
// which categories participate; a nil filter keeps everything. Records are
// never mutated or merged, only partitioned, so grouping the same input
// twice yields the same families.
func Group(records []models.RawComponent, keep func(models.Category) bool) map[string]*Family {
	families := make(map[string]*Family)
	for _, rec := range records {
		if keep != nil && !keep(rec.Category) {
			continue
		}
		key := BaseKey(rec.GameName)
		fam := families[key]
		if fam == nil {
			fam = &Family{BaseKey: key}
			families[key] = fam
		}
		fam.Records = append(fam.Records, rec)
	}
	for _, fam := range families {
		sort.SliceStable(fam.Records, func(i, j int) bool {
			return fam.Records[i].Tier < fam.Records[j].Tier
		})
	}
	return families
}
