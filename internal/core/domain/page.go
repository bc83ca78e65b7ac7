package domain

// Page is a bounded slice of a larger, ordered result set.
type Page[T any] struct {
	Items         []T
	PageNumber    int   // Zero-based
	PageSize      int
	TotalElements int64 // Size of the whole result set, not of Items
}

// HasContent reports whether the page holds any items.
func (p Page[T]) HasContent() bool {
	return len(p.Items) > 0
}

// TotalPages returns the number of pages of PageSize needed for TotalElements.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// MapPage converts every item of a page while keeping its metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	items := make([]R, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return Page[R]{
		Items:         items,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
	}
}
