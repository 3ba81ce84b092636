package models

// PaginationQuery binds common paging parameters
type PaginationQuery struct {
	Page     int  `form:"page" json:"page"`
	PageSize int  `form:"page_size" json:"page_size"`
	Desc     bool `form:"desc" json:"desc"`
}

// Normalize clamps paging parameters to sane values
func (q *PaginationQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 10
	}
}

// Offset returns the row offset for the current page
func (q *PaginationQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}
