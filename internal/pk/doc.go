// Package pk provides the primary key index of a store.
//
// The index maps an ElementID to the RowID of its record in the arena. Keys
// are unique: Insert refuses a key that is already present so callers can
// surface the duplicate instead of silently overwriting the earlier record.
//
// # Implementation
//
// A plain Go map, sized up front when the record count is known. The index
// is only written during the build phase; afterwards reads need no locking.
package pk
