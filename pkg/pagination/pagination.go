// Package pagination implements page-number pagination with display serial
// numbers. Pages are 1-based; a requested page past the end is clamped to the
// last page, never below 1.
package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const DefaultLimit = 10

// Params holds the pagination parameters of a list request.
type Params struct {
	Page    int
	Limit   int
	Keyword string
}

// FromContext extracts pagination parameters from the echo context,
// applying the defaults page=1 and limit=10.
func FromContext(c echo.Context) Params {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit, Keyword: c.QueryParam("keyword")}
}

// Paginator describes one page of a result set.
type Paginator struct {
	ItemCount   int  `json:"itemCount"`
	Limit       int  `json:"limit"`
	PageCount   int  `json:"pageCount"`
	Page        int  `json:"page"`
	SlNo        int  `json:"slNo"`
	HasPrevPage bool `json:"hasPrevPage"`
	HasNextPage bool `json:"hasNextPage"`
	PrevPage    *int `json:"prevPage"`
	NextPage    *int `json:"nextPage"`
}

// New computes the paginator for itemCount rows with the given limit and
// requested page. The page is clamped to [1, max(1, pageCount)]; SlNo is the
// 1-based serial number of the first item on the page.
func New(itemCount, limit, page int) Paginator {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if page <= 0 {
		page = 1
	}

	pageCount := (itemCount + limit - 1) / limit

	if page > pageCount && page != 1 {
		page = pageCount
	}
	if page < 1 {
		page = 1
	}

	slNo := 1
	if page > 1 {
		slNo = (page-1)*limit - 1 + 1
	}

	p := Paginator{
		ItemCount:   itemCount,
		Limit:       limit,
		PageCount:   pageCount,
		Page:        page,
		SlNo:        slNo,
		HasPrevPage: page > 1,
		HasNextPage: page < pageCount,
	}

	if p.HasPrevPage {
		prev := page - 1
		p.PrevPage = &prev
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}

	return p
}

// Offset returns the row offset for the resolved page.
func (p Paginator) Offset() int {
	if p.Page == 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
