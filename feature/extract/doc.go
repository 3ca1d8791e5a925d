// Package extract reads and decodes game data extracts.
//
// An extract is the exporter's snapshot of the game's component data, made
// of three JSON documents read as one unit:
//
//   - strings.json: localized display strings keyed by table id. Optional;
//     the exporter omits it when the localization bundle is unavailable.
//   - plugs.json: plug footprints keyed by plug name.
//   - components.json: the per-tier component records.
//
// # Sources
//
// Two Source implementations cover the deployment shapes in use:
//
//   - Dir reads from a local directory, the exporter's native output.
//   - Bucket reads from an object storage prefix for pipelines where
//     extracts are uploaded rather than shared on disk.
//
// # Loading
//
// Load fetches the three documents concurrently and decodes the records:
// name keys resolve against the localization table, category tokens are
// normalized, and records failing validation are dropped with a diagnostic
// instead of failing the run. Name keys decode through LocKey, which
// preserves 64-bit table ids whether the document carries them as JSON
// numbers or strings.
//
// # Usage
//
//	src := extract.NewDir("extract")
//	res, err := extract.Load(ctx, src)
package extract
