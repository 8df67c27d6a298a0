package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap implements a 32-bit Roaring Bitmap.
// It wraps the official roaring implementation.
type Bitmap struct {
	rb *roaring.Bitmap
}

// New creates a new empty bitmap.
func New() *Bitmap {
	return &Bitmap{
		rb: roaring.New(),
	}
}

// Of creates a bitmap holding values.
func Of(values ...uint32) *Bitmap {
	return &Bitmap{
		rb: roaring.BitmapOf(values...),
	}
}

// Add adds v to the bitmap.
func (b *Bitmap) Add(v uint32) {
	b.rb.Add(v)
}

// Contains checks if v is in the bitmap.
func (b *Bitmap) Contains(v uint32) bool {
	return b.rb.Contains(v)
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of elements in the bitmap.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Or computes the union of two bitmaps.
func (b *Bitmap) Or(other *Bitmap) {
	b.rb.Or(other.rb)
}

// Values iterates the bitmap in ascending order.
func (b *Bitmap) Values() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// ToArray returns the values in ascending order.
func (b *Bitmap) ToArray() []uint32 {
	return b.rb.ToArray()
}

// Optimize converts containers to run-length encoding where that is smaller.
// Call it once a bitmap is complete.
func (b *Bitmap) Optimize() {
	b.rb.RunOptimize()
}

// GetSizeInBytes returns the size of the bitmap in bytes.
func (b *Bitmap) GetSizeInBytes() uint64 {
	return b.rb.GetSizeInBytes()
}
