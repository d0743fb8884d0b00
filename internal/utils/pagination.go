package utils

import "math"

// PageOffset returns the number of items that precede page. Pages below one
// count as the first page. ok is false when the offset overflows int64.
func PageOffset(page, pageSize int) (offset int64, ok bool) {
	if page < 1 || pageSize < 1 {
		return 0, true
	}
	prev := int64(page - 1)
	if prev > math.MaxInt64/int64(pageSize) {
		return 0, false
	}
	return prev * int64(pageSize), true
}
