package dict

// Bucket accumulates one aggregation key's IR items in insertion order.
// Diag is the run's diagnostics sink; kinds report tag outcomes through it.
type Bucket[I any] struct {
	Items []I
	Diag  *Diagnostics
}

// Push appends items to the bucket.
func (b *Bucket[I]) Push(items ...I) {
	b.Items = append(b.Items, items...)
}

// Len returns the number of accumulated items.
func (b *Bucket[I]) Len() int {
	return len(b.Items)
}
