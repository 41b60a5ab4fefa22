package handlers

import (
	"net/http"

	"cinelog/internal/models"
	"cinelog/internal/service"

	"github.com/gin-gonic/gin"
)

type reviewRequest struct {
	MovieSeriesID string `json:"movie_series_id" binding:"required"`
	Rating        int    `json:"rating" binding:"required"`
	Comment       string `json:"comment"`
}

// @Summary      Create review
// @Tags         review
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /review [post]
// @Security     BearerAuth
func (h *Handler) createReview(c *gin.Context) {
	var input reviewRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	review, err := h.services.Reviews.CreateReview(c.Request.Context(), service.ReviewParams{
		UserID:        c.GetString(ctxUserID),
		MovieSeriesID: input.MovieSeriesID,
		Rating:        input.Rating,
		Comment:       input.Comment,
	})
	if err != nil {
		h.respondServiceError(c, err, "create_review_failed", "movie_series_id", input.MovieSeriesID)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review created successfully", "review": review})
}

// reviewsByTitle lists reviews for a title. A title with no reviews
// yields an empty list, not an error.
func (h *Handler) reviewsByTitle(c *gin.Context) {
	id := c.Param("movie_series_id")
	reviews, err := h.services.Reviews.ReviewsByTitle(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err, "list_reviews_failed", "movie_series_id", id)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}
