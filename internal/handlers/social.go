package handlers

import (
	"context"
	"net/http"

	"cinelog/internal/models"

	"github.com/gin-gonic/gin"
)

type followRequest struct {
	UserID string `json:"user_id" binding:"required"` // account to (un)follow
}

type titleEdgeRequest struct {
	MovieSeriesID string `json:"movie_series_id" binding:"required"`
}

// @Summary      Toggle follow edge
// @Description  Follows the target account, or unfollows when already following.
// @Tags         social
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /follower [post]
// @Security     BearerAuth
func (h *Handler) toggleFollow(c *gin.Context) {
	var input followRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	added, err := h.services.Social.ToggleFollow(c.Request.Context(), c.GetString(ctxUserID), input.UserID)
	if err != nil {
		h.respondServiceError(c, err, "toggle_follow_failed", "target", input.UserID)
		return
	}

	if added {
		c.JSON(http.StatusOK, gin.H{"message": "Followed successfully"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed successfully"})
}

func (h *Handler) toggleFavorite(c *gin.Context) {
	var input titleEdgeRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	added, err := h.services.Social.ToggleFavorite(c.Request.Context(), c.GetString(ctxUserID), input.MovieSeriesID)
	if err != nil {
		h.respondServiceError(c, err, "toggle_favorite_failed", "movie_series_id", input.MovieSeriesID)
		return
	}

	if added {
		c.JSON(http.StatusCreated, gin.H{"message": "Added to favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

func (h *Handler) toggleWatchlist(c *gin.Context) {
	var input titleEdgeRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	added, err := h.services.Social.ToggleWatchlist(c.Request.Context(), c.GetString(ctxUserID), input.MovieSeriesID)
	if err != nil {
		h.respondServiceError(c, err, "toggle_watchlist_failed", "movie_series_id", input.MovieSeriesID)
		return
	}

	if added {
		c.JSON(http.StatusCreated, gin.H{"message": "Added to watchlist"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from watchlist"})
}

func (h *Handler) listFollowers(c *gin.Context) {
	h.listUserEdges(c, h.services.Social.Followers)
}

func (h *Handler) listFollowing(c *gin.Context) {
	h.listUserEdges(c, h.services.Social.Following)
}

func (h *Handler) listUserEdges(c *gin.Context, list func(ctx context.Context, userID string) ([]models.UserSummary, error)) {
	userID := c.Param("user_id")
	users, err := list(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err, "list_follow_edges_failed", "user_id", userID)
		return
	}
	if users == nil {
		users = []models.UserSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

func (h *Handler) listFavorites(c *gin.Context) {
	h.listTitleEdges(c, h.services.Social.Favorites, "favorites")
}

func (h *Handler) listWatchlist(c *gin.Context) {
	h.listTitleEdges(c, h.services.Social.Watchlist, "watchlist")
}

func (h *Handler) listTitleEdges(c *gin.Context, list func(ctx context.Context, userID string) ([]models.TitleEdge, error), key string) {
	userID := c.Param("user_id")
	edges, err := list(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err, "list_title_edges_failed", "user_id", userID)
		return
	}
	if edges == nil {
		edges = []models.TitleEdge{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(edges), key: edges})
}
