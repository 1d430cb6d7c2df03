package domain

type PageResponse[T any] struct {
	Content       []T
	PageNumber    int
	PageSize      int
	TotalElements int
	TotalPages    int
	First         bool
	Last          bool
}

// Paginate slices items into the requested page. The page number is clamped
// into [0, totalPages-1] when there is at least one page; an empty input
// yields page 0 of 0 with both boundary flags set.
func Paginate[T any](items []T, page, size int) PageResponse[T] {
	total := len(items)
	totalPages := 0
	if size > 0 {
		totalPages = (total + size - 1) / size
	}

	if totalPages == 0 {
		return PageResponse[T]{
			Content:       []T{},
			PageNumber:    0,
			PageSize:      size,
			TotalElements: total,
			TotalPages:    0,
			First:         true,
			Last:          true,
		}
	}

	if page < 0 {
		page = 0
	}
	if page > totalPages-1 {
		page = totalPages - 1
	}

	start := page * size
	end := start + size
	if end > total {
		end = total
	}

	return PageResponse[T]{
		Content:       items[start:end],
		PageNumber:    page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}
