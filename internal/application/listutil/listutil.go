package listutil

import (
	"net/url"
	"strconv"
)

// SearchParams carries the user-search widget's query parameters.
// The backend's LIST_USERS endpoint pages by offset/limit.
type SearchParams struct {
	Query  string // username/email prefix
	Offset int
	Limit  int
}

// DefaultSearchLimit is the page size for candidate search results.
const DefaultSearchLimit = 10

// MaxSearchLimit caps the page size a client may request.
const MaxSearchLimit = 50

// ParseSearchParams extracts q/offset/limit from URL query values.
// POST: Offset >= 0 and 0 < Limit <= MaxSearchLimit
func ParseSearchParams(q url.Values) SearchParams {
	offset, _ := strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 || limit > MaxSearchLimit {
		limit = DefaultSearchLimit
	}
	return SearchParams{Query: q.Get("q"), Offset: offset, Limit: limit}
}

// PageParams carries pagination parameters for admin tables.
type PageParams struct {
	Page    int // 1-indexed page number
	PerPage int // rows per page
}

// PageInfo carries pagination metadata for rendering.
type PageInfo struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// DefaultPerPage is the default number of rows per page.
const DefaultPerPage = 20

// PerPageOptions are the allowed rows-per-page values.
var PerPageOptions = []int{10, 20, 50, 100}

// ParsePageParams extracts page and per_page from URL query values.
// POST: returns valid PageParams with defaults applied
func ParsePageParams(q url.Values) PageParams {
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if !isValidPerPage(perPage) {
		perPage = DefaultPerPage
	}
	return PageParams{Page: page, PerPage: perPage}
}

// NewPageInfo computes pagination metadata.
// PRE: total >= 0
// POST: returns PageInfo with TotalPages computed; Page clamped to valid range
func NewPageInfo(page, perPage, total int) PageInfo {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return PageInfo{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Slice returns the [start, end) bounds for a page over a total count.
func (p PageInfo) Slice() (int, int) {
	start := (p.Page - 1) * p.PerPage
	if start > p.Total {
		start = p.Total
	}
	end := start + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	return start, end
}

func isValidPerPage(n int) bool {
	for _, opt := range PerPageOptions {
		if n == opt {
			return true
		}
	}
	return false
}
