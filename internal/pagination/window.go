package pagination

// Gap marks an elided run of pages in a Window.
const Gap = 0

// Window returns the page numbers to show for the current page, with Gap
// standing for "...". Up to MaxPagesDisplay pages are listed in full. Longer
// chapters show the first page, up to five pages from two before the current
// one, and the last page, with gaps where pages are skipped.
func Window(current, totalPages int) []int {
	if totalPages <= MaxPagesDisplay {
		pages := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	pages := []int{1}
	if current > 4 {
		pages = append(pages, Gap)
	}

	start := current - 2
	if start < 2 {
		start = 2
	}
	for i := 0; i < 5; i++ {
		page := start + i
		if page >= totalPages {
			break
		}
		pages = append(pages, page)
	}

	if current < totalPages-3 {
		pages = append(pages, Gap)
	}
	pages = append(pages, totalPages)

	return pages
}
