package pagination

import "math"

// Offset returns how many rows precede the zero-based page of the given size.
// Negative input is treated as zero. An offset that does not fit in an int
// saturates at math.MaxInt, which is past the end of any result set.
func Offset(page, size int) int {
	if page <= 0 || size <= 0 {
		return 0
	}
	if page > math.MaxInt/size {
		return math.MaxInt
	}
	return page * size
}

// Bounds returns the half-open [start, end) window of a zero-based page over
// total items, clamped to [0, total]. A page past the end yields start == end.
func Bounds(total, page, size int) (start, end int) {
	if total <= 0 || size <= 0 {
		return 0, 0
	}
	start = Offset(page, size)
	if start >= total {
		return total, total
	}
	end = start + size
	if end > total || end < start {
		end = total
	}
	return start, end
}
