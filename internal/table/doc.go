// Package table implements the arena + primary key core shared by the
// indexed layouts.
//
// A Table owns a copy of every ingested record in an arena and maps element
// ids to arena rows. Layouts add their own reverse strategy on top through
// the visit callback passed to Build, and resolve rows back to records with
// Resolve, which collapses repeats and restores build order.
package table
