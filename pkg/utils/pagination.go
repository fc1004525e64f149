package utils

// PageQuery is the page/limit pair bound from list endpoints.
type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// NormalizePageQuery clamps the raw pair. Pages start at 1; a limit of zero
// (or a negative one) means the whole result set.
func NormalizePageQuery(page, limit int) PageQuery {
	if page < 1 {
		page = 1
	}
	if limit < 0 {
		limit = 0
	}
	return PageQuery{Page: page, Limit: limit}
}

// Offset returns how many rows the query skips.
func (q PageQuery) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// PageMeta describes the slice of the result set a list response carries.
type PageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// NewPageMeta derives the response metadata for a normalized query. An
// unlimited query collapses to a single page spanning every row.
func NewPageMeta(total int64, q PageQuery) PageMeta {
	if q.Limit < 1 {
		return PageMeta{Page: 1, Limit: int(total), TotalCount: total, TotalPages: 1}
	}
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return PageMeta{Page: q.Page, Limit: q.Limit, TotalCount: total, TotalPages: pages}
}
