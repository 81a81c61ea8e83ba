package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// ListQuery is the raw paging and filter input of a list endpoint.
// Offset/Limit are the legacy parameters; when either is set they win over Page/PageSize.
type ListQuery struct {
	Page          *int   `form:"page" binding:"omitempty,gte=1"`
	PageSize      *int   `form:"page_size" binding:"omitempty,gte=1,lte=100"`
	Offset        *int   `form:"offset" binding:"omitempty,gte=0"`
	Limit         *int   `form:"limit" binding:"omitempty,gte=1,lte=100"`
	TripID        *int64 `form:"trip_id" binding:"omitempty,gte=1"`
	DestinationID *int64 `form:"destination_id" binding:"omitempty,gte=1"`
}

// Pagination carries the resolved window and totals.
type Pagination struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Offset   int `json:"offset"`
	Limit    int `json:"limit"`
}

// Page is one window of a list response.
type Page[T any] struct {
	Items []T        `json:"items"`
	Meta  Pagination `json:"meta"`
}

// Resolve checks the paging input and turns it into an offset/limit window.
func (q ListQuery) Resolve() (Pagination, error) {
	if q.Offset != nil || q.Limit != nil {
		offset, limit := 0, DefaultPageSize
		if q.Offset != nil {
			offset = *q.Offset
		}
		if q.Limit != nil {
			limit = *q.Limit
		}
		if offset < 0 {
			return Pagination{}, ValidationError{Field: "offset", Msg: "must be greater than or equal to 0"}
		}
		if limit < 1 || limit > MaxPageSize {
			return Pagination{}, ValidationError{Field: "limit", Msg: fmt.Sprintf("must be between 1 and %d", MaxPageSize)}
		}
		return Pagination{Page: offset/limit + 1, PageSize: limit, Offset: offset, Limit: limit}, nil
	}

	page, size := 1, DefaultPageSize
	if q.Page != nil {
		page = *q.Page
	}
	if q.PageSize != nil {
		size = *q.PageSize
	}
	if page < 1 {
		return Pagination{}, ValidationError{Field: "page", Msg: "must be greater than or equal to 1"}
	}
	if size < 1 || size > MaxPageSize {
		return Pagination{}, ValidationError{Field: "page_size", Msg: fmt.Sprintf("must be between 1 and %d", MaxPageSize)}
	}
	return Pagination{Page: page, PageSize: size, Offset: (page - 1) * size, Limit: size}, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Timestamp is a UTC instant that scans from every supported driver,
// whether it hands back time.Time or text.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Microsecond)}
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("timestamp: unsupported type %T", src)
	}
}

func (t *Timestamp) parse(s string) error {
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("timestamp: cannot parse %q", s)
}

func (t Timestamp) Value() (driver.Value, error) {
	return t.Time.UTC(), nil
}
