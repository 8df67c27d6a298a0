// Package testutil provides testing utilities for rbestore.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for generating RBE2 records and the
// small fixed scenario used across the test suites.
//
// # Random Record Generation
//
//	rng := testutil.NewRNG(seed)
//	records := rng.RecordSlice(500_000, testutil.RecordSpec{MaxNode: 1000})
//	store, _ := rbestore.Build(rng.Records(n, testutil.RecordSpec{Skew: 1.2}))
//
// Generators never touch global random state: identical seeds produce
// identical records.
package testutil
