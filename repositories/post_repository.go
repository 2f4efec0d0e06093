package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-api/db"
	"blog-api/models"
	"blog-api/pagination"
)

// ErrNotFound is returned by single-document lookups when nothing matches.
var ErrNotFound = errors.New("document not found")

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(d *mongo.Database) *PostRepository {
	return &PostRepository{col: d.Collection(db.CollectionPosts)}
}

// PostQuery is one paginated read of the posts collection.
type PostQuery struct {
	Filter PostFilter
	Sort   Sort
	Page   pagination.Params
}

// List returns the requested page of posts matching q.Filter, ordered by q.Sort.
func (r *PostRepository) List(ctx context.Context, q PostQuery) (pagination.Page[models.Post], error) {
	return Paginate[models.Post](ctx, r.col, q.Filter.BSON(), q.Sort.BSON(), q.Page)
}

// Insert stores a new post and fills in its id and timestamps.
func (r *PostRepository) Insert(ctx context.Context, p *models.Post) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []primitive.ObjectID{}
	}

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// FindByID returns a post by its ObjectID
func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
