package pagination

import (
	"math"
	"strconv"
)

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// ParseOffsetRequest builds a normalized request from raw query values.
// Unparsable values fall back to the defaults.
func ParseOffsetRequest(page, size string) OffsetRequest {
	r := OffsetRequest{}
	if page != "" {
		r.Page, _ = strconv.Atoi(page)
	}
	if size != "" {
		r.Size, _ = strconv.Atoi(size)
	}
	r.Normalize()
	return r
}

// Normalize clamps page and size into their allowed ranges.
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	// keeps Offset()+Size within int
	if maxPage := math.MaxInt / r.Size; r.Page > maxPage {
		r.Page = maxPage
	}
}

func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
