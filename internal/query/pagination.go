package query

import (
	"fmt"
	"strings"
)

// Pagination is the metadata object attached to list responses.
// swagger:model Pagination
type Pagination struct {
	// Total number of pages for the applied filters and limit
	TotalPages int `json:"total_pages"`

	// Total number of matching records
	TotalRecords int `json:"total_records"`

	// URL of the current page, all non-page query parameters preserved
	CurrentPage string `json:"current_page"`

	// URL of the previous page; absent on the first page
	PreviousPage string `json:"previous_page,omitempty"`

	// URL of the next page; absent on the last page
	NextPage string `json:"next_page,omitempty"`
}

// Paginate computes the pagination envelope for the request these Params
// were parsed from. A page past the end still yields full metadata; the
// caller serves it with an empty data list.
func (p *Params) Paginate(totalRecords int) Pagination {
	totalPages := 0
	if totalRecords > 0 {
		totalPages = (totalRecords + p.Limit - 1) / p.Limit
	}

	pg := Pagination{
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		CurrentPage:  p.pageURL(p.Page),
	}
	if p.Page > 1 {
		pg.PreviousPage = p.pageURL(p.Page - 1)
	}
	if p.Page < totalPages {
		pg.NextPage = p.pageURL(p.Page + 1)
	}
	return pg
}

// pageURL rebuilds the request URL with an explicit page number first and
// every other original query parameter preserved in its original order.
func (p *Params) pageURL(page int) string {
	parts := []string{fmt.Sprintf("page=%d", page)}
	for _, kv := range strings.Split(p.rawQuery, "&") {
		if kv == "" || kv == "page" || strings.HasPrefix(kv, "page=") {
			continue
		}
		parts = append(parts, kv)
	}
	return p.path + "?" + strings.Join(parts, "&")
}
