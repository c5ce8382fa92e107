package pagination

// DefaultPageSize is the fixed page size for post listings.
const DefaultPageSize = 10

// Window describes one page of an ordered sequence. Start and End are slice
// bounds into that sequence.
type Window struct {
	Start       int  `json:"-"`
	End         int  `json:"-"`
	Page        int  `json:"page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate computes the page window over a sequence of total items. Pages are
// 1-based. Out-of-range page numbers clamp to the nearest valid page instead
// of erroring; an empty sequence yields a single empty page.
func Paginate(total, page, size int) Window {
	if size <= 0 {
		size = DefaultPageSize
	}

	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Window{
		Start:       start,
		End:         end,
		Page:        page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
