package dto

import (
	"time"

	"blog-api/models"
)

// PostDTO is a post as returned to API consumers.
// ID is a hex string and Tags are resolved to {id, name} in the post's stored order.
type PostDTO struct {
	ID          string    `json:"id" example:"665f1c2e9b1e8a3d4c2b1a00"`
	Title       string    `json:"title" example:"Ownership in Rust"`
	Description string    `json:"description" example:"A tour of borrowing rules"`
	Image       *string   `json:"image" example:"https://cdn.example.com/posts/cover.png"`
	Tags        []TagDTO  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewPostDTO constructs PostDTO from models.Post. tags must already be resolved.
func NewPostDTO(p models.Post, tags []TagDTO) PostDTO {
	if tags == nil {
		tags = []TagDTO{}
	}
	return PostDTO{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Tags:        tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CreatePostRequestDTO is the JSON body of POST /api/posts.
type CreatePostRequestDTO struct {
	Title       string   `json:"title" example:"Ownership in Rust"`
	Description string   `json:"description" example:"A tour of borrowing rules"`
	Image       string   `json:"image" example:"https://cdn.example.com/posts/cover.png"`
	Tags        []string `json:"tags" example:"665f1c2e9b1e8a3d4c2b1a01"`
}

// CreatePostResponseDTO is returned with 201 after a post is stored.
type CreatePostResponseDTO struct {
	Message string  `json:"message" example:"Post created successfully"`
	Post    PostDTO `json:"post"`
}
