// Package inverted provides the reference record layout: a primary key map
// plus a reverse multi-map from dependent node to the rows referencing it.
//
// # Posting Order
//
// Postings are appended while records are ingested, so each bucket lists rows
// in build order. A record that names the same node twice is appended twice;
// NodeRefs exposes this raw fan-out. Record-level queries collapse repeats.
//
// # Complexity
//
//   - Build: O(total dependents)
//   - LookupByID: O(1) expected
//   - LookupByNode: O(bucket size)
package inverted
