package dto

import "blog-api/models"

type TagDTO struct {
	ID   string `json:"id" example:"665f1c2e9b1e8a3d4c2b1a01"`
	Name string `json:"name" example:"rust"`
}

func NewTagDTO(t models.Tag) TagDTO {
	return TagDTO{ID: t.ID.Hex(), Name: t.Name}
}

// CreateTagRequestDTO is the JSON body of POST /api/tags.
type CreateTagRequestDTO struct {
	Name string `json:"name" example:"rust"`
}

// CreateTagResponseDTO is returned with 201 after a tag is stored.
type CreateTagResponseDTO struct {
	Message string `json:"message" example:"Tag created successfully"`
	Tag     TagDTO `json:"tag"`
}
