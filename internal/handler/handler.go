package handler

import (
	"errors"
	"net/http"

	"github.com/BloggingApp/story-service/internal/config"
	"github.com/BloggingApp/story-service/internal/dto"
	"github.com/BloggingApp/story-service/internal/model"
	"github.com/BloggingApp/story-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	services *service.Service
	auth     config.AuthConfig
	gatherer prometheus.Gatherer
}

func New(services *service.Service, auth config.AuthConfig, gatherer prometheus.Gatherer) *Handler {
	return &Handler{
		services: services,
		auth:     auth,
		gatherer: gatherer,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.ClientOrigin()},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	if h.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/api/v1")
	{
		blogAuth := h.services.BlogAuth
		blog := v1.Group("/blog")
		{
			h.initAuthRoutes(blog, blogAuth)

			posts := blog.Group("/posts")
			{
				posts.GET("", listContent(h.services.Posts))
				posts.POST("", h.authMiddleware(blogAuth), h.postsCreate)

				post := posts.Group("/:postID")
				{
					post.GET("", getContent(h.services.Posts, "postID"))
					post.PATCH("", h.authMiddleware(blogAuth), h.postsEdit)
					post.DELETE("", h.adminMiddleware(blogAuth), removeContent(h.services.Posts, "postID"))
				}
			}
		}

		mediumAuth := h.services.MediumAuth
		medium := v1.Group("/medium")
		{
			h.initAuthRoutes(medium, mediumAuth)

			stories := medium.Group("/stories")
			{
				stories.GET("", listContent(h.services.Stories))
				stories.POST("", h.authMiddleware(mediumAuth), h.storiesCreate)

				story := stories.Group("/:storyID")
				{
					story.GET("", getContent(h.services.Stories, "storyID"))
					story.PATCH("", h.authMiddleware(mediumAuth), h.storiesEdit)
					story.DELETE("", h.adminMiddleware(mediumAuth), removeContent(h.services.Stories, "storyID"))
					story.POST("/clap", clapContent(h.services.Stories, "storyID"))
				}
			}
		}
	}

	return r
}

func (h *Handler) initAuthRoutes(group *gin.RouterGroup, session *service.Session) {
	group.POST("/login", h.login(session))
	group.POST("/logout", h.logout(session))
	group.GET("/me", h.authMiddleware(session), h.me)
}

func (h *Handler) getUserFromRequest(c *gin.Context) *model.User {
	userReq, _ := c.Get("user")

	user, ok := userReq.(model.User)
	if !ok {
		return nil
	}

	return &user
}

func abortWithError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(err))
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUnknownAuthor), errors.Is(err, service.ErrEngagementUnsupported):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
