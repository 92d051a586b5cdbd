package pagination

import (
	"errors"
	"math"
)

var (
	ErrNegativePage   = errors.New("page and size must not be negative")
	ErrPageOutOfRange = errors.New("page is too large for the page size")
)

// OffsetRequest is a 1-based page request.
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Validate rejects negative values and fills defaults for zero ones.
// Sizes above PageMaxSize are clamped. Pages whose offset does not fit in an
// int are rejected.
func (r *OffsetRequest) Validate() error {
	if r.Page < 0 || r.Size < 0 {
		return ErrNegativePage
	}
	if r.Page == 0 {
		r.Page = 1
	}
	if r.Size == 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
	if r.Page-1 > math.MaxInt/r.Size {
		return ErrPageOutOfRange
	}
	return nil
}

// Offset is the number of items before this page. Call Validate first.
func (r OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
