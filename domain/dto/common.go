package dto

// Paginated is the page envelope shared by the API and the client:
// {data, total, page, limit, totalPages}.
type Paginated[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginated builds the envelope. totalPages is ceil(total/limit); page and
// limit are echoed back as supplied, there is no clamping here.
func NewPaginated[T any](data []T, total int64, page, limit int) Paginated[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Paginated[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
