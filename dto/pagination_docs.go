package dto

// PaginationPostDTO is a concrete swagger-friendly type for paginated posts response.
// At runtime handlers return pagination.Page[PostDTO], which has the same JSON shape.
// swagger:model PaginationPostDTO
type PaginationPostDTO struct {
	Results      []PostDTO `json:"results"`
	CurrentPage  int       `json:"currentPage" example:"1"`
	TotalPages   int64     `json:"totalPages" example:"2"`
	TotalResults int64     `json:"totalResults" example:"7"`
}
