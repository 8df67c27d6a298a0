// Package longtable provides a denormalized baseline layout.
//
// Every record is expanded into one row per dependent, each row repeating
// the element id, driving node and component mask. Nothing is indexed: every
// lookup scans all rows and regroups matching rows into records. The layout
// exists to characterize the cost of not indexing and should never be chosen
// for production use at scale.
//
// A record without dependents is stored as a single row carrying no
// dependent so that it stays reachable by id.
package longtable
