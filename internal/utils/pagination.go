package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Pagination request/response header names
const (
	HeaderRequestedPage  = "X-Requested-Page"
	HeaderRequestedLimit = "X-Requested-Limit"
	HeaderTotalCount     = "X-Total-Count"
	HeaderTotalPages     = "X-Total-Pages"
	HeaderCurrentPage    = "X-Current-Page"
	HeaderLimit          = "X-Limit"
)

// GetPaginationParams extracts page/limit from request headers.
// Defaults: page 1, limit 10.
func GetPaginationParams(c echo.Context) (page, limit, skip int64) {
	page = headerAsInt64(c, HeaderRequestedPage, 1)
	limit = headerAsInt64(c, HeaderRequestedLimit, 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	skip = (page - 1) * limit
	return page, limit, skip
}

// SetPaginationHeaders writes pagination metadata onto the response
func SetPaginationHeaders(c echo.Context, total, totalPages, page, limit int64) {
	h := c.Response().Header()
	h.Set(HeaderTotalCount, strconv.FormatInt(total, 10))
	h.Set(HeaderTotalPages, strconv.FormatInt(totalPages, 10))
	h.Set(HeaderCurrentPage, strconv.FormatInt(page, 10))
	h.Set(HeaderLimit, strconv.FormatInt(limit, 10))
}

func headerAsInt64(c echo.Context, name string, defaultValue int64) int64 {
	raw := c.Request().Header.Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
