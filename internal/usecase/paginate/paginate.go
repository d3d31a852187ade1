// Package paginate slices a result list into page windows and derives the
// page-control view model.
package paginate

import (
	"strconv"

	"github.com/kailas-cloud/sitesearch/internal/domain"
	"github.com/kailas-cloud/sitesearch/internal/domain/view"
)

// DefaultPageSize is the number of result cards per page. Configurable at
// wiring time, never user-facing.
const DefaultPageSize = 9

// buttonSpan is the width of the numbered-button window.
const buttonSpan = 5

// Pagination control labels.
const (
	labelFirst = "«"
	labelPrev  = "‹"
	labelNext  = "›"
	labelLast  = "»"
)

// Page slices results down to the requested page window. A page past the end
// yields an empty slice, not an error: the caller renders "no results".
func Page(results []domain.Document, pageSize, page int) []domain.Document {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(results) {
		return nil
	}
	end := start + pageSize
	if end > len(results) {
		end = len(results)
	}
	return results[start:end]
}

// TotalPages returns ceil(total/pageSize), at least 1 even for zero results.
func TotalPages(total, pageSize int) int {
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Controls builds the pagination view model: a numbered window of up to five
// buttons centred on the current page, first/previous controls only past
// page 1, next/last controls only before the final page.
func Controls(total, pageSize, page int) view.Pagination {
	if page < 1 {
		page = 1
	}
	totalPages := TotalPages(total, pageSize)
	// A request past the end renders an empty page, but its controls must
	// still only target pages inside [1, totalPages].
	if page > totalPages {
		page = totalPages
	}

	start := clamp(page-2, 1, max(1, totalPages-buttonSpan+1))
	end := clamp(page+2, min(buttonSpan, totalPages), totalPages)

	buttons := make([]view.Button, 0, buttonSpan+4)
	if page > 1 {
		buttons = append(buttons,
			view.Button{Label: labelFirst, Page: 1},
			view.Button{Label: labelPrev, Page: page - 1},
		)
	}
	for n := start; n <= end; n++ {
		buttons = append(buttons, view.Button{
			Label:  strconv.Itoa(n),
			Page:   n,
			Active: n == page,
		})
	}
	if page < totalPages {
		buttons = append(buttons,
			view.Button{Label: labelNext, Page: page + 1},
			view.Button{Label: labelLast, Page: totalPages},
		)
	}

	return view.Pagination{
		Buttons:      buttons,
		TotalPages:   totalPages,
		TotalResults: total,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
