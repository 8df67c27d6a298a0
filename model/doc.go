// Package model defines core types used throughout rbestore.
//
// # Identity Types
//
//   - ElementID: Unique key of an RBE2 element (uint32)
//   - NodeID: Grid node reference, used for the driving node and the dependents (uint32)
//   - RowID: Dense, build-local position of a record inside a store (uint32)
//
// # Data Types
//
//   - Record: One rigid-constraint element (driving node, component mask, dependent nodes)
//   - ComponentMask: Constrained degrees of freedom packed as decimal digits (e.g. 123456)
//
// Records are plain values. Constructing one never fails; validation happens
// when a store is built.
//
//	rec := model.NewRecord(1, 1, 123, 10, 11, 12)
//	fmt.Println(rec) // RBE2(eid=1,gd=1,ci=123,gis=[10 11 12])
package model
