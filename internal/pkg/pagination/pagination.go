package pagination

import (
	"fmt"
	"net/http"
	"net/url"
)

type Links struct {
	Next string `json:"next"`
	Prev string `json:"prev"`
}

type Pagination struct {
	Links      Links `json:"links"`
	TotalItems int64 `json:"total_items"`
}

// DefaultPage and DefaultLimit apply when the query omits them.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// New builds next/prev links for a listing response. Filter parameters in
// the request query are preserved; page and limit are rewritten. Links are
// empty strings past either end of the range.
func New(r *http.Request, total int64, page, limit int) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	base := pathWithFilters(r)

	var links Links
	if page < totalPages {
		links.Next = fmt.Sprintf("%spage=%d&limit=%d", base, page+1, limit)
	}
	if page > 1 {
		links.Prev = fmt.Sprintf("%spage=%d&limit=%d", base, page-1, limit)
	}

	return Pagination{Links: links, TotalItems: total}
}

func pathWithFilters(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	base := fmt.Sprintf("%s://%s%s?", scheme, r.Host, r.URL.Path)
	for key, values := range r.URL.Query() {
		if key == "page" || key == "limit" {
			continue
		}
		for _, v := range values {
			base += fmt.Sprintf("%s=%s&", key, url.QueryEscape(v))
		}
	}
	return base
}
