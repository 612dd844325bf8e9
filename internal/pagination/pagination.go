// Package pagination splits a chapter's verses into fixed-size pages and
// builds the page-number strip shown under the reader.
package pagination

// VersesPerPage is the page size used by the reader and by verse-count
// estimates in statistics.
const VersesPerPage = 10

// MaxPagesDisplay is the largest page count shown without gaps.
const MaxPagesDisplay = 10

// Pagination describes how a list of verses splits into pages.
type Pagination struct {
	TotalItems int
	PageSize   int
	TotalPages int
}

// PageBounds is the half-open index range [Start, End) of a page.
type PageBounds struct {
	Start int
	End   int
}

// Paginate splits totalItems into pages of pageSize. There is always at
// least one page, even for an empty list. A pageSize below 1 is treated as 1.
func Paginate(totalItems, pageSize int) Pagination {
	if pageSize < 1 {
		pageSize = 1
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return Pagination{
		TotalItems: totalItems,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// PageOf returns the index range of the 1-based page n. End stops at
// TotalItems, so the last page may be short. n is not clamped; use Clamp
// first when it comes from a user.
func (p Pagination) PageOf(n int) PageBounds {
	start := (n - 1) * p.PageSize
	return PageBounds{Start: start, End: min(start+p.PageSize, p.TotalItems)}
}

// Visible clips the bounds to a list of length n. Only a page number that
// was never clamped needs it.
func (b PageBounds) Visible(n int) PageBounds {
	if b.Start < 0 {
		b.Start = 0
	}
	if b.End > n {
		b.End = n
	}
	if b.Start > b.End {
		b.Start = b.End
	}
	return b
}

// Clamp limits page to [1, totalPages].
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// State is the navigation state of the reader for one page.
type State struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

func NewState(currentPage, totalPages int) State {
	return State{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		HasNext:     currentPage < totalPages,
		HasPrev:     currentPage > 1,
	}
}
