package events

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/models"
)

// EventType 이벤트 타입 정의
type EventType string

const (
	PostCreated EventType = "post.created"
	TagCreated  EventType = "tag.created"
)

const (
	SourceAPI     = "api"
	SchemaVersion = "1.0"
)

// Event 저장이 끝난 뒤 발행되는 도메인 이벤트
type Event interface {
	Meta() BaseEvent
	// PartitionKey 같은 문서의 이벤트를 같은 파티션으로 보낸다
	PartitionKey() string
}

// BaseEvent 모든 이벤트의 기본 구조
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

func newBaseEvent(t EventType) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      t,
		Timestamp: time.Now().UTC(),
		Source:    SourceAPI,
		Version:   SchemaVersion,
	}
}

func (e BaseEvent) Meta() BaseEvent { return e }

// PostCreatedEvent 새 포스트가 저장된 뒤 발행되는 이벤트
type PostCreatedEvent struct {
	BaseEvent
	PostID primitive.ObjectID   `json:"post_id"`
	Title  string               `json:"title"`
	Image  *string              `json:"image"`
	TagIDs []primitive.ObjectID `json:"tag_ids"`
}

func NewPostCreated(p models.Post) PostCreatedEvent {
	return PostCreatedEvent{
		BaseEvent: newBaseEvent(PostCreated),
		PostID:    p.ID,
		Title:     p.Title,
		Image:     p.Image,
		TagIDs:    p.Tags,
	}
}

func (e PostCreatedEvent) PartitionKey() string { return e.PostID.Hex() }

// TagCreatedEvent 새 태그가 저장된 뒤 발행되는 이벤트
type TagCreatedEvent struct {
	BaseEvent
	TagID primitive.ObjectID `json:"tag_id"`
	Name  string             `json:"name"`
}

func NewTagCreated(t models.Tag) TagCreatedEvent {
	return TagCreatedEvent{
		BaseEvent: newBaseEvent(TagCreated),
		TagID:     t.ID,
		Name:      t.Name,
	}
}

func (e TagCreatedEvent) PartitionKey() string { return e.TagID.Hex() }
