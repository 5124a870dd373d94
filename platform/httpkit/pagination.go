// Package httpkit provides HTTP utilities including pagination math.
package httpkit

// Pagination defaults shared by all listing endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination describes the page window of a list response.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Paginate computes the row offset and pagination metadata for a page/limit
// pair against a total row count. Zero values fall back to the defaults;
// a page beyond the last one yields an empty page, not an error.
func Paginate(page, limit, totalCount int) (skip int, meta Pagination) {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	totalPages := (totalCount + limit - 1) / limit

	meta = Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}

	return (page - 1) * limit, meta
}
