package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-api/dto"
	"blog-api/pagination"
	"blog-api/services"
	"blog-api/storage"
)

// PostService is implemented by *services.PostService.
type PostService interface {
	List(ctx context.Context, in services.ListPostsInput) (pagination.Page[dto.PostDTO], error)
	Search(ctx context.Context, in services.SearchPostsInput) (pagination.Page[dto.PostDTO], error)
	FilterByTag(ctx context.Context, in services.FilterPostsInput) (pagination.Page[dto.PostDTO], error)
	GetByID(ctx context.Context, hexID string) (*dto.PostDTO, error)
	Create(ctx context.Context, in services.CreatePostInput) (*dto.PostDTO, error)
}

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List posts with sorting, pagination, keyword search and tag filtering
// @Tags         posts
// @Param        page       query  int     false  "Page number (1-based)"  default(1)
// @Param        limit      query  int     false  "Page size"  default(5)
// @Param        sortBy     query  string  false  "Sort field"  Enums(createdAt, updatedAt, title)
// @Param        sortOrder  query  string  false  "Sort direction"  Enums(asc, desc)
// @Param        keyword    query  string  false  "Case-insensitive substring of title or description"
// @Param        tagName    query  string  false  "Exact tag name"
// @Produce      json
// @Success      200  {object}  dto.PaginationPostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts [get]
func ListPostsHandler(svc PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.List(c.Request.Context(), services.ListPostsInput{
			Page:      c.Query("page"),
			Limit:     c.Query("limit"),
			SortBy:    c.Query("sortBy"),
			SortOrder: c.Query("sortOrder"),
			Keyword:   c.Query("keyword"),
			TagName:   c.Query("tagName"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// SearchPostsHandler godoc
// @Summary      Search posts
// @Description  Posts whose title or description contains the keyword
// @Tags         posts
// @Param        keyword  query  string  true   "Keyword"
// @Param        page     query  int     false  "Page number (1-based)"  default(1)
// @Param        limit    query  int     false  "Page size"  default(5)
// @Produce      json
// @Success      200  {object}  dto.PaginationPostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts/search [get]
func SearchPostsHandler(svc PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.Search(c.Request.Context(), services.SearchPostsInput{
			Page:    c.Query("page"),
			Limit:   c.Query("limit"),
			Keyword: c.Query("keyword"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// FilterPostsHandler godoc
// @Summary      Filter posts by tag
// @Description  Posts carrying the tag with the given name
// @Tags         posts
// @Param        tagName  query  string  true   "Exact tag name"
// @Param        page     query  int     false  "Page number (1-based)"  default(1)
// @Param        limit    query  int     false  "Page size"  default(5)
// @Produce      json
// @Success      200  {object}  dto.PaginationPostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts/filter [get]
func FilterPostsHandler(svc PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.FilterByTag(c.Request.Context(), services.FilterPostsInput{
			Page:    c.Query("page"),
			Limit:   c.Query("limit"),
			TagName: c.Query("tagName"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Description  Get a single post by ObjectID
// @Tags         posts
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [get]
func GetPostHandler(svc PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// CreatePostHandler godoc
// @Summary      Create post
// @Description  Create a post from JSON, or from multipart form data with an optional image file
// @Tags         posts
// @Accept       json
// @Accept       mpfd
// @Param        body         body      dto.CreatePostRequestDTO  false  "Post (JSON)"
// @Param        title        formData  string  false  "Title (multipart)"
// @Param        description  formData  string  false  "Description (multipart)"
// @Param        tags         formData  []string  false  "Tag ids, repeated or comma-separated (multipart)"
// @Param        image        formData  file    false  "Image file (multipart)"
// @Produce      json
// @Success      201  {object}  dto.CreatePostResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /posts [post]
func CreatePostHandler(svc PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.CreatePostInput
		if c.ContentType() == gin.MIMEMultipartPOSTForm {
			closeFile, err := bindMultipartPost(c, &in)
			if err != nil {
				c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid multipart form"))
				return
			}
			defer closeFile()
		} else {
			var req dto.CreatePostRequestDTO
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
				return
			}
			in = services.CreatePostInput{
				Title:       req.Title,
				Description: req.Description,
				ImageURL:    req.Image,
				TagIDs:      splitTagIDs(req.Tags),
			}
		}

		post, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.CreatePostResponseDTO{
			Message: "Post created successfully",
			Post:    *post,
		})
	}
}

// bindMultipartPost fills in from the form. The returned func closes the uploaded file, if any.
func bindMultipartPost(c *gin.Context, in *services.CreatePostInput) (func(), error) {
	noop := func() {}
	if _, err := c.MultipartForm(); err != nil {
		return noop, err
	}

	in.Title = c.PostForm("title")
	in.Description = c.PostForm("description")
	in.TagIDs = splitTagIDs(c.PostFormArray("tags"))

	fh, err := c.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		in.ImageURL = c.PostForm("image")
		return noop, nil
	case err != nil:
		return noop, err
	}

	f, err := fh.Open()
	if err != nil {
		return noop, err
	}
	in.Image = &storage.Image{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}
	return func() { _ = f.Close() }, nil
}

// splitTagIDs accepts repeated values and comma-separated lists, dropping empty entries.
func splitTagIDs(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
