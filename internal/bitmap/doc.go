// Package bitmap wraps 32-bit Roaring Bitmaps for row and id sets.
//
// Stores use it in three places:
//
//   - resolving a batch of rows: adding rows to a bitmap collapses repeats and
//     iterating it yields them in ascending (build) order
//   - compressed posting lists of the bitmap layout (node -> rows)
//   - set membership when a scan filters on many element ids at once
//
// A Bitmap is not safe for concurrent mutation. Bitmaps that are only read
// after construction may be shared between goroutines.
package bitmap
