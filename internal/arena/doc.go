// Package arena provides a dense record arena addressed by RowID handles.
//
// Records are laid out as fixed-size headers plus one shared slab holding the
// dependents of every record back to back. A record is addressed by the RowID
// returned from Append; the arena never moves or rewrites a record once appended.
//
// # Concurrency Model
//
// Append is not safe for concurrent use. Once the build phase is over the arena
// is read-only and any number of goroutines may call Get, Dependents and Rows.
package arena
