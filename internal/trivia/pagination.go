package trivia

import "fmt"

// PageSize is fixed for every listing endpoint and deliberately not
// configurable through external input.
const PageSize = 10

// PageBounds computes the row offset of a 1-indexed page within an ordered
// result set of total rows. A page whose first index falls outside the set
// is ErrNotFound, including page 1 of an empty set: an empty or overshot
// page keeps "not found" semantics instead of succeeding silently.
func PageBounds(page, size, total int) (int, error) {
	offset := (page - 1) * size
	if offset >= total {
		return 0, fmt.Errorf("page %d of %d rows: %w", page, total, ErrNotFound)
	}
	return offset, nil
}

// Paginate slices an already-materialized ordered set into its page-th
// window and reports the unpaged total. Pure over its inputs.
func Paginate[T any](items []T, page, size int) ([]T, int, error) {
	total := len(items)
	offset, err := PageBounds(page, size, total)
	if err != nil {
		return nil, 0, err
	}
	end := offset + size
	if end > total {
		end = total
	}
	return items[offset:end], total, nil
}
