package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/eventbus"
	"blog-api/models"
	"blog-api/pagination"
	"blog-api/repositories"
	"blog-api/storage"
)

// PostStore is implemented by *repositories.PostRepository.
type PostStore interface {
	List(ctx context.Context, q repositories.PostQuery) (pagination.Page[models.Post], error)
	Insert(ctx context.Context, p *models.Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
}

// TagStore is implemented by *repositories.TagRepository.
type TagStore interface {
	List(ctx context.Context) ([]models.Tag, error)
	FindByName(ctx context.Context, name string) (*models.Tag, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Tag, error)
	Insert(ctx context.Context, t *models.Tag) error
}

// ImageUploader is implemented by *storage.S3Uploader.
type ImageUploader interface {
	Upload(ctx context.Context, img storage.Image) (string, error)
}

// EventPublisher is implemented by every eventbus.EventBus.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event eventbus.Event) error
}
