package models

// Page is the paginated list wrapper returned by every admin list endpoint.
type Page[T any] struct {
	Records []T   `json:"records"`
	Total   int64 `json:"total"`
	Size    int   `json:"size"`
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
}

// PageQuery carries the common pagination parameters. Page numbers start at 1.
type PageQuery struct {
	Page int
	Size int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize clamps the query the way the admin API expects it.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Size < 1 {
		q.Size = DefaultPageSize
	}
	if q.Size > MaxPageSize {
		q.Size = MaxPageSize
	}
	return q
}
