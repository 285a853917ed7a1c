package pagination

// OffsetResult represents traditional offset-based pagination
type OffsetResult[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	HasMore bool  `json:"has_more"`
}

// NewOffsetResult creates a new offset-based result
func NewOffsetResult[T any](items []T, total int64, req OffsetRequest) *OffsetResult[T] {
	if items == nil {
		items = make([]T, 0)
	}
	hasMore := int64(req.Offset()+req.Size) < total

	return &OffsetResult[T]{
		Items:   items,
		Total:   total,
		Page:    req.Page,
		Size:    req.Size,
		HasMore: hasMore,
	}
}
