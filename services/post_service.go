package services

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/dto"
	"blog-api/events"
	"blog-api/logger"
	"blog-api/models"
	"blog-api/pagination"
	"blog-api/repositories"
	"blog-api/storage"
)

// PostService encapsulates business logic for posts and DTO mapping
type PostService struct {
	posts    PostStore
	tags     TagStore
	uploader ImageUploader
	notifier *Notifier
}

// NewPostService wires the stores. uploader and notifier may be nil: binary uploads are then
// rejected and no events are published.
func NewPostService(posts PostStore, tags TagStore, uploader ImageUploader, notifier *Notifier) *PostService {
	return &PostService{posts: posts, tags: tags, uploader: uploader, notifier: notifier}
}

// ListPostsInput carries the raw query values of GET /api/posts.
type ListPostsInput struct {
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
	Keyword   string
	TagName   string
}

// List returns one page of all posts, optionally narrowed by keyword and tag.
func (s *PostService) List(ctx context.Context, in ListPostsInput) (pagination.Page[dto.PostDTO], error) {
	params, err := parsePage(in.Page, in.Limit)
	if err != nil {
		return pagination.Page[dto.PostDTO]{}, err
	}
	sort, err := repositories.ParseSort(in.SortBy, in.SortOrder)
	if err != nil {
		field := "sortBy"
		if errors.Is(err, repositories.ErrInvalidSortOrder) {
			field = "sortOrder"
		}
		return pagination.Page[dto.PostDTO]{}, invalid(field, err.Error())
	}

	if err := validText("keyword", in.Keyword); err != nil {
		return pagination.Page[dto.PostDTO]{}, err
	}
	filter := repositories.PostFilter{Keyword: in.Keyword}
	if name := strings.TrimSpace(in.TagName); name != "" {
		tagID, err := s.tagIDByName(ctx, name)
		if err != nil {
			return pagination.Page[dto.PostDTO]{}, err
		}
		filter.TagID = &tagID
	}

	return s.query(ctx, repositories.PostQuery{Filter: filter, Sort: sort, Page: params})
}

type SearchPostsInput struct {
	Page    string
	Limit   string
	Keyword string
}

// Search returns posts whose title or description contains the keyword.
func (s *PostService) Search(ctx context.Context, in SearchPostsInput) (pagination.Page[dto.PostDTO], error) {
	if strings.TrimSpace(in.Keyword) == "" {
		return pagination.Page[dto.PostDTO]{}, invalid("keyword", "keyword parameter is required")
	}
	if err := validText("keyword", in.Keyword); err != nil {
		return pagination.Page[dto.PostDTO]{}, err
	}
	params, err := parsePage(in.Page, in.Limit)
	if err != nil {
		return pagination.Page[dto.PostDTO]{}, err
	}
	return s.query(ctx, repositories.PostQuery{
		Filter: repositories.PostFilter{Keyword: in.Keyword},
		Sort:   repositories.DefaultSort,
		Page:   params,
	})
}

type FilterPostsInput struct {
	Page    string
	Limit   string
	TagName string
}

// FilterByTag returns posts carrying the named tag. An unknown tag is a client error and
// no post query is issued.
func (s *PostService) FilterByTag(ctx context.Context, in FilterPostsInput) (pagination.Page[dto.PostDTO], error) {
	if strings.TrimSpace(in.TagName) == "" {
		return pagination.Page[dto.PostDTO]{}, invalid("tagName", "tagName parameter is required")
	}
	params, err := parsePage(in.Page, in.Limit)
	if err != nil {
		return pagination.Page[dto.PostDTO]{}, err
	}
	tagID, err := s.tagIDByName(ctx, strings.TrimSpace(in.TagName))
	if err != nil {
		return pagination.Page[dto.PostDTO]{}, err
	}
	return s.query(ctx, repositories.PostQuery{
		Filter: repositories.PostFilter{TagID: &tagID},
		Sort:   repositories.DefaultSort,
		Page:   params,
	})
}

// GetByID loads a post by its ObjectID hex and returns a DTO
func (s *PostService) GetByID(ctx context.Context, hexID string) (*dto.PostDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, invalid("id", "invalid post id")
	}
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, upstream("find post", err)
	}

	byID, err := resolveTags(ctx, s.tags, []models.Post{*p})
	if err != nil {
		return nil, err
	}
	d := dto.NewPostDTO(*p, tagsFor(p.Tags, byID))
	return &d, nil
}

// CreatePostInput is a new post as submitted by a client.
// Image is set for multipart uploads, ImageURL when the client already hosts the image.
type CreatePostInput struct {
	Title       string
	Description string
	ImageURL    string
	Image       *storage.Image
	TagIDs      []string
}

// Validate checks the input before anything is stored or uploaded.
func (in CreatePostInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return invalid("description", "description is required")
	}
	if in.Image != nil && strings.TrimSpace(in.ImageURL) != "" {
		return invalid("image", "provide either an image file or an image URL, not both")
	}
	if _, err := parseTagIDs(in.TagIDs); err != nil {
		return err
	}
	return nil
}

// Create validates, uploads the image if one was sent, then stores the post.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*dto.PostDTO, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	tagIDs, _ := parseTagIDs(in.TagIDs)

	post := &models.Post{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Tags:        tagIDs,
	}

	byID, err := resolveTags(ctx, s.tags, []models.Post{*post})
	if err != nil {
		return nil, err
	}

	if in.Image != nil {
		url, err := s.upload(ctx, *in.Image)
		if err != nil {
			return nil, err
		}
		post.Image = &url
	} else if u := strings.TrimSpace(in.ImageURL); u != "" {
		post.Image = &u
	}

	if err := s.posts.Insert(ctx, post); err != nil {
		return nil, upstream("insert post", err)
	}

	s.notifier.notify(ctx, events.NewPostCreated(*post))

	d := dto.NewPostDTO(*post, tagsFor(post.Tags, byID))
	return &d, nil
}

func (s *PostService) upload(ctx context.Context, img storage.Image) (string, error) {
	if s.uploader == nil {
		return "", invalid("image", "image uploads are not enabled")
	}
	url, err := s.uploader.Upload(ctx, img)
	if err != nil {
		logger.ErrorWithFields("image upload failed", logger.Fields{
			"filename": img.Filename,
			"error":    err.Error(),
		})
		if errors.Is(err, storage.ErrEmptyImage) || errors.Is(err, storage.ErrUnsupportedImage) {
			return "", invalid("image", err.Error())
		}
		return "", invalid("image", "image upload failed")
	}
	return url, nil
}

func (s *PostService) tagIDByName(ctx context.Context, name string) (primitive.ObjectID, error) {
	if err := validText("tagName", name); err != nil {
		return primitive.NilObjectID, err
	}
	tag, err := s.tags.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return primitive.NilObjectID, invalid("tagName", "invalid tag name")
		}
		return primitive.NilObjectID, upstream("find tag", err)
	}
	return tag.ID, nil
}

// query is the single path every listing goes through: one paginated read, then one
// batched tag lookup for the whole page.
func (s *PostService) query(ctx context.Context, q repositories.PostQuery) (pagination.Page[dto.PostDTO], error) {
	page, err := s.posts.List(ctx, q)
	if err != nil {
		return pagination.Page[dto.PostDTO]{}, upstream("list posts", err)
	}

	byID, err := resolveTags(ctx, s.tags, page.Results)
	if err != nil {
		return pagination.Page[dto.PostDTO]{}, err
	}

	return pagination.Map(page, func(p models.Post) dto.PostDTO {
		return dto.NewPostDTO(p, tagsFor(p.Tags, byID))
	}), nil
}

// validText rejects query text the server cannot compile into a regex or match as a string.
func validText(field, v string) error {
	if !utf8.ValidString(v) {
		return invalid(field, field+" must be valid UTF-8")
	}
	return nil
}

func parsePage(page, limit string) (pagination.Params, error) {
	p, err := pagination.ParseParams(page, limit)
	switch {
	case errors.Is(err, pagination.ErrInvalidPage):
		return p, invalid("page", err.Error())
	case errors.Is(err, pagination.ErrInvalidLimit):
		return p, invalid("limit", err.Error())
	case err != nil:
		return p, invalid("page", err.Error())
	}
	return p, nil
}

// parseTagIDs converts hex ids, keeping the first occurrence of duplicates.
func parseTagIDs(raw []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(raw))
	seen := make(map[primitive.ObjectID]struct{}, len(raw))
	for _, s := range raw {
		id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
		if err != nil {
			return nil, invalid("tags", "invalid tag id: "+s)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
