package storefront

import "strconv"

// Ellipsis marks skipped pages in a page range
const Ellipsis = "…"

const (
	onEachSide = 1
	onEnds     = 1
)

// PageRange returns the elided page numbers around current, keeping one
// page on each side and one page at each end. It is nil for a single page.
func PageRange(current, totalPages int) []string {
	if totalPages <= 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	var out []string
	appendRange := func(from, to int) {
		for i := from; i <= to; i++ {
			out = append(out, strconv.Itoa(i))
		}
	}

	if totalPages <= (onEachSide+onEnds)*2 {
		appendRange(1, totalPages)
		return out
	}

	if current > 1+onEachSide+onEnds+1 {
		appendRange(1, onEnds)
		out = append(out, Ellipsis)
		appendRange(current-onEachSide, current)
	} else {
		appendRange(1, current)
	}

	if current < totalPages-onEachSide-onEnds-1 {
		appendRange(current+1, current+onEachSide)
		out = append(out, Ellipsis)
		appendRange(totalPages-onEnds+1, totalPages)
	} else {
		appendRange(current+1, totalPages)
	}
	return out
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
