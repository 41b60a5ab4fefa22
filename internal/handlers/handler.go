package handlers

import (
	"cinelog/internal/config"
	"cinelog/internal/logger"
	"cinelog/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cors     config.CORS
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cors config.CORS) *Handler {
	return &Handler{services: services, log: log, cors: cors}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public account endpoints
	router.POST("/user", h.register)
	router.POST("/user/login", h.login)
	router.POST("/user/forgot-password", h.forgotPassword)
	router.PUT("/user/reset-password", h.resetPassword)

	// Everything below requires a bearer token.
	protected := router.Group("/", h.authMiddleware)
	{
		h.registerAccountRoutes(protected)
		h.registerTitleRoutes(protected)
		h.registerReviewRoutes(protected)
		h.registerCommentRoutes(protected)
		h.registerSocialRoutes(protected)

		// Live activity feed, served off the same port via HTTP upgrade.
		protected.GET("/ws", h.wsActivity)
	}

	return router
}

func (h *Handler) registerAccountRoutes(r *gin.RouterGroup) {
	r.POST("/users", h.searchUsers)
	r.GET("/user/:id", h.getUser)
	r.PUT("/user/:id", h.updateUser)
	r.DELETE("/user/:id", h.deleteUser)
}

func (h *Handler) registerTitleRoutes(r *gin.RouterGroup) {
	r.POST("/movie-series", h.upsertTitle)
	r.GET("/movie-series/findAll", h.listTitles)
	r.GET("/movie-series/:id", h.getTitle)
	r.PUT("/movie-series/:id", h.updateTitle)
	r.DELETE("/movie-series/:id", h.deleteTitle)
	r.POST("/movie-series/watchlist", h.toggleWatchlist)
}

func (h *Handler) registerReviewRoutes(r *gin.RouterGroup) {
	r.POST("/review", h.createReview)
	r.GET("/reviews/movie-series/:movie_series_id", h.reviewsByTitle)
}

func (h *Handler) registerCommentRoutes(r *gin.RouterGroup) {
	r.POST("/comment", h.createComment)
	r.PUT("/comment/:id", h.updateComment)
	r.DELETE("/comment/:id", h.deleteComment)
}

func (h *Handler) registerSocialRoutes(r *gin.RouterGroup) {
	r.POST("/follower", h.toggleFollow)
	r.GET("/followers/:user_id", h.listFollowers)
	r.GET("/following/:user_id", h.listFollowing)
	r.POST("/favorite", h.toggleFavorite)
	r.GET("/favorites/:user_id", h.listFavorites)
	r.GET("/watchlist/:user_id", h.listWatchlist)
}
