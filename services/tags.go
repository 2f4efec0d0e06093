package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/dto"
	"blog-api/models"
)

// resolveTags loads every tag referenced by posts with a single query.
func resolveTags(ctx context.Context, store TagStore, posts []models.Post) (map[primitive.ObjectID]dto.TagDTO, error) {
	seen := make(map[primitive.ObjectID]struct{})
	ids := make([]primitive.ObjectID, 0)
	for i := range posts {
		for _, id := range posts[i].Tags {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	byID := make(map[primitive.ObjectID]dto.TagDTO, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	tags, err := store.FindByIDs(ctx, ids)
	if err != nil {
		return nil, upstream("load tags", err)
	}
	for _, t := range tags {
		byID[t.ID] = dto.NewTagDTO(t)
	}
	return byID, nil
}

// tagsFor maps ids in order. Ids of deleted tags are skipped.
func tagsFor(ids []primitive.ObjectID, byID map[primitive.ObjectID]dto.TagDTO) []dto.TagDTO {
	out := make([]dto.TagDTO, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}
