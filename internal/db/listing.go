package db

import (
	"math"
	"time"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListOptions carries the recognized filter, search, and pagination
// parameters of a list request. Each store only reads the fields it
// recognizes; a zero value or "all" means no filter.
type ListOptions struct {
	Page     int
	Limit    int
	Status   string
	Type     string
	Category string
	Search   string
	Active   *bool
	// Date range is inclusive on both ends and only applies when both
	// bounds are set.
	StartDate *time.Time
	EndDate   *time.Time
}

func (o ListOptions) page() int {
	if o.Page < 1 {
		return defaultPage
	}
	return o.Page
}

func (o ListOptions) limit() int {
	if o.Limit < 1 {
		return defaultLimit
	}
	return o.Limit
}

func (o ListOptions) skip() int64 {
	return int64(o.page()-1) * int64(o.limit())
}

// TotalPages computes the page count for a given total match count.
func (o ListOptions) TotalPages(total int64) int {
	return int(math.Ceil(float64(total) / float64(o.limit())))
}

// CurrentPage is the normalized 1-based page number.
func (o ListOptions) CurrentPage() int {
	return o.page()
}

// hasFilter reports whether a filter value is active; "all" and the empty
// string mean no filter.
func hasFilter(v string) bool {
	return v != "" && v != "all"
}

// hasDateRange reports whether both bounds of the date range are present.
func (o ListOptions) hasDateRange() bool {
	return o.StartDate != nil && o.EndDate != nil
}
