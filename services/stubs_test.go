package services

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/eventbus"
	"blog-api/models"
	"blog-api/pagination"
	"blog-api/repositories"
	"blog-api/storage"
)

// stubPostStore is a manual stub implementation of PostStore
type stubPostStore struct {
	listFunc     func(ctx context.Context, q repositories.PostQuery) (pagination.Page[models.Post], error)
	insertFunc   func(ctx context.Context, p *models.Post) error
	findByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.Post, error)

	listCalls   int
	insertCalls int
}

func (s *stubPostStore) List(ctx context.Context, q repositories.PostQuery) (pagination.Page[models.Post], error) {
	s.listCalls++
	if s.listFunc != nil {
		return s.listFunc(ctx, q)
	}
	return pagination.NewPage[models.Post](nil, q.Page, 0), nil
}

func (s *stubPostStore) Insert(ctx context.Context, p *models.Post) error {
	s.insertCalls++
	if s.insertFunc != nil {
		return s.insertFunc(ctx, p)
	}
	p.ID = primitive.NewObjectID()
	return nil
}

func (s *stubPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	if s.findByIDFunc != nil {
		return s.findByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

// stubTagStore is a manual stub implementation of TagStore
type stubTagStore struct {
	listFunc       func(ctx context.Context) ([]models.Tag, error)
	findByNameFunc func(ctx context.Context, name string) (*models.Tag, error)
	findByIDsFunc  func(ctx context.Context, ids []primitive.ObjectID) ([]models.Tag, error)
	insertFunc     func(ctx context.Context, t *models.Tag) error

	findByIDsCalls int
}

func (s *stubTagStore) List(ctx context.Context) ([]models.Tag, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx)
	}
	return []models.Tag{}, nil
}

func (s *stubTagStore) FindByName(ctx context.Context, name string) (*models.Tag, error) {
	if s.findByNameFunc != nil {
		return s.findByNameFunc(ctx, name)
	}
	return nil, repositories.ErrNotFound
}

func (s *stubTagStore) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Tag, error) {
	s.findByIDsCalls++
	if s.findByIDsFunc != nil {
		return s.findByIDsFunc(ctx, ids)
	}
	return []models.Tag{}, nil
}

func (s *stubTagStore) Insert(ctx context.Context, t *models.Tag) error {
	if s.insertFunc != nil {
		return s.insertFunc(ctx, t)
	}
	t.ID = primitive.NewObjectID()
	return nil
}

// tagsByID serves FindByName and FindByIDs from a fixed set of tags.
func tagsByID(tags ...models.Tag) *stubTagStore {
	return &stubTagStore{
		findByNameFunc: func(_ context.Context, name string) (*models.Tag, error) {
			for i := range tags {
				if tags[i].Name == name {
					t := tags[i]
					return &t, nil
				}
			}
			return nil, repositories.ErrNotFound
		},
		findByIDsFunc: func(_ context.Context, ids []primitive.ObjectID) ([]models.Tag, error) {
			out := []models.Tag{}
			for _, t := range tags {
				if slices.Contains(ids, t.ID) {
					out = append(out, t)
				}
			}
			return out, nil
		},
	}
}

// memPosts emulates the repository over an already sorted slice.
type memPosts struct {
	mu    sync.Mutex
	posts []models.Post
}

func (m *memPosts) store() *stubPostStore {
	return &stubPostStore{
		listFunc: func(_ context.Context, q repositories.PostQuery) (pagination.Page[models.Post], error) {
			m.mu.Lock()
			defer m.mu.Unlock()

			matched := []models.Post{}
			for _, p := range m.posts {
				if matchesFilter(p, q.Filter) {
					matched = append(matched, p)
				}
			}
			total := int64(len(matched))
			start := min(q.Page.Skip(), total)
			end := min(start+int64(q.Page.Limit), total)
			return pagination.NewPage(matched[start:end], q.Page, total), nil
		},
		insertFunc: func(_ context.Context, p *models.Post) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			p.ID = primitive.NewObjectID()
			m.posts = append(m.posts, *p)
			return nil
		},
		findByIDFunc: func(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			for _, p := range m.posts {
				if p.ID == id {
					found := p
					return &found, nil
				}
			}
			return nil, repositories.ErrNotFound
		},
	}
}

func matchesFilter(p models.Post, f repositories.PostFilter) bool {
	if strings.TrimSpace(f.Keyword) != "" {
		kw := strings.ToLower(f.Keyword)
		if !strings.Contains(strings.ToLower(p.Title), kw) && !strings.Contains(strings.ToLower(p.Description), kw) {
			return false
		}
	}
	if f.TagID != nil && !slices.Contains(p.Tags, *f.TagID) {
		return false
	}
	return true
}

type stubUploader struct {
	uploadFunc func(ctx context.Context, img storage.Image) (string, error)
	calls      int
}

func (s *stubUploader) Upload(ctx context.Context, img storage.Image) (string, error) {
	s.calls++
	if s.uploadFunc != nil {
		return s.uploadFunc(ctx, img)
	}
	return "https://cdn.example.com/posts/" + img.Filename, nil
}

type publishedEvent struct {
	topic string
	event eventbus.Event
}

// stubPublisher records publishes. When release is set, Publish blocks until it is closed.
type stubPublisher struct {
	err     error
	release chan struct{}

	mu        sync.Mutex
	published []publishedEvent
}

func (s *stubPublisher) Publish(_ context.Context, topic string, event eventbus.Event) error {
	if s.release != nil {
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, publishedEvent{topic: topic, event: event})
	return s.err
}

func (s *stubPublisher) events() []publishedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]publishedEvent(nil), s.published...)
}
