// Package pagination holds the page/limit arithmetic shared by every paginated listing.
package pagination

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
	// MaxLimit keeps one page well inside the 16MB document the $facet stage returns.
	MaxLimit = 100
)

var (
	ErrInvalidPage  = errors.New("page must be a positive integer")
	ErrInvalidLimit = errors.New("limit must be an integer between 1 and 100")
)

// Params selects one page of a result set. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// ParseParams converts raw query values. Empty values take the defaults;
// anything else must parse as a positive integer.
func ParseParams(page, limit string) (Params, error) {
	p := Params{Page: DefaultPage, Limit: DefaultLimit}

	if s := strings.TrimSpace(page); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Params{}, ErrInvalidPage
		}
		p.Page = v
	}
	if s := strings.TrimSpace(limit); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return Params{}, ErrInvalidLimit
		}
		p.Limit = v
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate rejects non-positive values, limits above MaxLimit and pages whose offset does
// not fit in an int64.
func (p Params) Validate() error {
	if p.Limit < 1 || p.Limit > MaxLimit {
		return ErrInvalidLimit
	}
	if p.Page < 1 {
		return ErrInvalidPage
	}
	if int64(p.Page-1) > math.MaxInt64/int64(p.Limit) {
		return ErrInvalidPage
	}
	return nil
}

// Skip is the number of matching entities before the first one on this page.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// Page is the envelope returned for every paginated listing.
type Page[T any] struct {
	Results      []T   `json:"results"`
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int64 `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
}

// TotalPages returns ceil(total / limit).
func TotalPages(total int64, limit int) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	l := int64(limit)
	return (total + l - 1) / l
}

// NewPage builds the envelope. totalResults must be the size of the filtered set,
// not of the whole collection.
func NewPage[T any](results []T, p Params, totalResults int64) Page[T] {
	if results == nil {
		results = []T{}
	}
	return Page[T]{
		Results:      results,
		CurrentPage:  p.Page,
		TotalPages:   TotalPages(totalResults, p.Limit),
		TotalResults: totalResults,
	}
}

// Map converts the results of a page while keeping its metadata.
func Map[From, To any](page Page[From], converter func(From) To) Page[To] {
	out := make([]To, len(page.Results))
	for i := range page.Results {
		out[i] = converter(page.Results[i])
	}
	return Page[To]{
		Results:      out,
		CurrentPage:  page.CurrentPage,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}
}
