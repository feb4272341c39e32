package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fleetops/fleet-backoffice/internal/db"
)

// listOptions reads the recognized list parameters from the query string.
// Malformed values never fail the request; they fall back to defaults or
// "no filter".
func listOptions(c *gin.Context) db.ListOptions {
	opts := db.ListOptions{
		Status:   c.Query("status"),
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		opts.Limit = limit
	}
	if active, err := strconv.ParseBool(c.Query("isActive")); err == nil {
		opts.Active = &active
	}
	opts.StartDate = parseDate(c.Query("startDate"))
	opts.EndDate = parseDate(c.Query("endDate"))
	return opts
}

// dateWindow reads the optional report window. Both bounds must parse for
// the window to apply.
func dateWindow(c *gin.Context) db.DateWindow {
	return db.DateWindow{
		Start: parseDate(c.Query("startDate")),
		End:   parseDate(c.Query("endDate")),
	}
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	return nil
}

// listResponse is the envelope shared by all list endpoints.
func listResponse(c *gin.Context, opts db.ListOptions, items any, total int64) {
	c.JSON(200, gin.H{
		"items":       items,
		"totalPages":  opts.TotalPages(total),
		"currentPage": opts.CurrentPage(),
		"total":       total,
	})
}
