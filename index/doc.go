// Package index defines the contract shared by all record layouts.
//
// rbestore supports four layouts:
//
//   - inverted: Primary key map plus node -> rows multi-map (reference layout)
//   - bitmap: Primary key map plus node -> Roaring bitmap of rows
//   - primary: Primary key map only; reverse lookups scan every record
//   - longtable: One row per (element, dependent) pair; every lookup scans
//
// # Layout Selection
//
// Choose based on how often reverse lookups happen:
//
//   - inverted: reverse lookups are common, postings keep per-occurrence order
//   - bitmap: reverse lookups are common and posting lists are large or dense
//   - primary: reverse lookups are rare; cheapest build after longtable
//   - longtable: baseline only, never for production use at scale
//
// # Index Interface
//
// All layouts satisfy the core Index interface:
//
//	type Index interface {
//	    LookupByID(id model.ElementID) (model.Record, error)
//	    LookupByIDs(ids []model.ElementID) []model.Record
//	    LookupByNode(node model.NodeID) []model.Record
//	    Len() int
//	    Stats() Stats
//	}
//
// Given the same records, every layout returns the same records for the same
// query; only cost differs. Results are in build order.
//
// # Errors
//
// Building fails with *DuplicateIDError when an element id repeats; nothing
// of the partial build is returned. LookupByID fails with *NotFoundError. All
// other queries treat unknown keys as an empty result.
package index
