package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-api/api/handlers"
	"blog-api/api/middleware"
	"blog-api/dto"
	_ "blog-api/docs"
)

// Deps are the services the routes are bound to.
type Deps struct {
	Posts  handlers.PostService
	Tags   handlers.TagService
	Health handlers.Pinger
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Health check
	r.GET("/health", handlers.HealthHandler(d.Health))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/posts", handlers.ListPostsHandler(d.Posts))
		api.GET("/posts/search", handlers.SearchPostsHandler(d.Posts))
		api.GET("/posts/filter", handlers.FilterPostsHandler(d.Posts))
		api.GET("/posts/:id", handlers.GetPostHandler(d.Posts))
		api.POST("/posts", handlers.CreatePostHandler(d.Posts))

		api.GET("/tags", handlers.ListTagsHandler(d.Tags))
		api.POST("/tags", handlers.CreateTagHandler(d.Tags))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not Found - " + c.Request.URL.Path))
	})

	return r
}

// NewHandler wraps the engine with CORS. An empty origin list allows any origin.
func NewHandler(engine http.Handler, allowedOrigins []string) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return c.Handler(engine)
}
