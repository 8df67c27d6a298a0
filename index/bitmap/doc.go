// Package bitmap provides a record layout whose reverse index stores one
// Roaring bitmap of rows per dependent node.
//
// Compared with the inverted layout, postings are sets: a record naming the
// same node twice is posted once, and posting lists compress well when many
// records share a node. Queries return the same records as every other layout.
package bitmap
