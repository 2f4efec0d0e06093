package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a blog post document.
// Collection: posts
//
// Tags holds Tag ids in the order the author supplied them. They are weak references:
// deleting a tag does not touch the posts that point to it.
type Post struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updated_at"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Image       *string              `bson:"image" json:"image"`
	Tags        []primitive.ObjectID `bson:"tags" json:"tags"`
}
