package handlers

import (
	"net/http"

	"cinelog/internal/service"

	"github.com/gin-gonic/gin"
)

type commentRequest struct {
	ReviewID      string `json:"review_id"`
	MovieSeriesID string `json:"movie_series_id"`
	Content       string `json:"content" binding:"required"`
}

type updateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) createComment(c *gin.Context) {
	var input commentRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	comment, err := h.services.Comments.CreateComment(c.Request.Context(), service.CommentParams{
		UserID:        c.GetString(ctxUserID),
		ReviewID:      input.ReviewID,
		MovieSeriesID: input.MovieSeriesID,
		Content:       input.Content,
	})
	if err != nil {
		h.respondServiceError(c, err, "create_comment_failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment created successfully", "comment": comment})
}

func (h *Handler) updateComment(c *gin.Context) {
	var input updateCommentRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.Comments.UpdateComment(c.Request.Context(), c.Param("id"), c.GetString(ctxUserID), input.Content)
	if err != nil {
		h.respondServiceError(c, err, "update_comment_failed", "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment updated successfully"})
}

func (h *Handler) deleteComment(c *gin.Context) {
	err := h.services.Comments.DeleteComment(c.Request.Context(), c.Param("id"), c.GetString(ctxUserID))
	if err != nil {
		h.respondServiceError(c, err, "delete_comment_failed", "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
