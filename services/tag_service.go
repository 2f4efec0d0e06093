package services

import (
	"context"
	"errors"
	"strings"

	"blog-api/dto"
	"blog-api/events"
	"blog-api/models"
	"blog-api/repositories"
)

// TagService encapsulates business logic for tags and DTO mapping
type TagService struct {
	tags     TagStore
	notifier *Notifier
}

func NewTagService(tags TagStore, notifier *Notifier) *TagService {
	return &TagService{tags: tags, notifier: notifier}
}

// List returns every tag ordered by name.
func (s *TagService) List(ctx context.Context) ([]dto.TagDTO, error) {
	items, err := s.tags.List(ctx)
	if err != nil {
		return nil, upstream("list tags", err)
	}
	out := make([]dto.TagDTO, 0, len(items))
	for _, t := range items {
		out = append(out, dto.NewTagDTO(t))
	}
	return out, nil
}

type CreateTagInput struct {
	Name string
}

// Create stores a tag. Names are unique.
func (s *TagService) Create(ctx context.Context, in CreateTagInput) (*dto.TagDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name", "name is required")
	}

	tag := &models.Tag{Name: name}
	if err := s.tags.Insert(ctx, tag); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, invalid("name", "tag already exists")
		}
		return nil, upstream("insert tag", err)
	}

	s.notifier.notify(ctx, events.NewTagCreated(*tag))

	d := dto.NewTagDTO(*tag)
	return &d, nil
}
