package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/dto"
	"blog-api/services"
)

// TagService is implemented by *services.TagService.
type TagService interface {
	List(ctx context.Context) ([]dto.TagDTO, error)
	Create(ctx context.Context, in services.CreateTagInput) (*dto.TagDTO, error)
}

// ListTagsHandler godoc
// @Summary      List tags
// @Tags         tags
// @Produce      json
// @Success      200  {array}   dto.TagDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /tags [get]
func ListTagsHandler(svc TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tags, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tags)
	}
}

// CreateTagHandler godoc
// @Summary      Create tag
// @Tags         tags
// @Accept       json
// @Param        body  body  dto.CreateTagRequestDTO  true  "Tag"
// @Produce      json
// @Success      201  {object}  dto.CreateTagResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /tags [post]
func CreateTagHandler(svc TagService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateTagRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
			return
		}

		tag, err := svc.Create(c.Request.Context(), services.CreateTagInput{Name: req.Name})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.CreateTagResponseDTO{
			Message: "Tag created successfully",
			Tag:     *tag,
		})
	}
}
