// Package catalog implements the component catalog generation feature.
//
// It turns the per-tier component records of a decoded game data extract into
// the three normalized catalog documents the power grid optimizer consumes:
//  1. components.json: general components keyed by friendly id, with per-tier
//     footprint shapes resolved through the plug table.
//  2. reactors.json: reactor families with per-tier power grids and the
//     stats counted from them.
//  3. auxGenerators.json: aux generator families plus the synthetic "none"
//     entry representing an empty generator slot.
//
// # Pipeline
//
// Records are grouped into families by base key (BaseKey), named through the
// localization fallback chain (Identity), and rendered per catalog by the
// Build functions. The whole pipeline is deterministic: same extract in, same
// documents out, with entries sorted by id and tiers in numeric order.
//
// # Components
//
//   - Builders: BuildComponents, BuildReactors, BuildAuxGenerators, BuildAll.
//   - Diff: structural comparison of a generated catalog against a persisted
//     baseline, reporting added/removed entries and new/changed tiers.
//   - Store: reads and writes the three documents under the data directory,
//     staging each write so a failed run cannot corrupt the previous set, and
//     publishes them to object storage.
//   - Handler: exposes the generated documents over HTTP.
//
// # HTTP Endpoints
//
//   - GET /catalogs/:name : Serve one generated document (e.g. 'reactors.json').
package catalog
