package handlers

import (
	"net/http"

	"cinelog/internal/models"
	"cinelog/internal/service"

	"github.com/gin-gonic/gin"
)

type titleRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	ReleaseYear int      `json:"release_year"`
	Genres      []string `json:"genres"`
}

type updateTitleRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ReleaseYear int      `json:"release_year"`
	Genres      []string `json:"genres"`
}

// @Summary      Create or update a title by name
// @Tags         movie-series
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /movie-series [post]
// @Security     BearerAuth
func (h *Handler) upsertTitle(c *gin.Context) {
	var input titleRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	title, created, err := h.services.Titles.Upsert(c.Request.Context(), service.TitleParams{
		Title:       input.Title,
		Description: input.Description,
		ReleaseYear: input.ReleaseYear,
		Genres:      input.Genres,
		CreatedBy:   c.GetString(ctxUserID),
	})
	if err != nil {
		h.respondServiceError(c, err, "upsert_title_failed", "title", input.Title)
		return
	}

	status := http.StatusOK
	message := "Movie updated successfully"
	if created {
		status = http.StatusCreated
		message = "Movie created successfully"
	}
	c.JSON(status, gin.H{"message": message, "movie": title})
}

func (h *Handler) listTitles(c *gin.Context) {
	titles, err := h.services.Titles.ListTitles(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err, "list_titles_failed")
		return
	}
	if titles == nil {
		titles = []models.MovieSeries{}
	}
	c.JSON(http.StatusOK, gin.H{"count": len(titles), "movies": titles})
}

// @Summary      Title detail with reviews, comments and genres
// @Tags         movie-series
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /movie-series/{id} [get]
// @Security     BearerAuth
func (h *Handler) getTitle(c *gin.Context) {
	title, err := h.services.Titles.GetTitle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "get_title_failed", "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"movie": title})
}

func (h *Handler) updateTitle(c *gin.Context) {
	var input updateTitleRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.Titles.UpdateTitle(c.Request.Context(), c.Param("id"), service.TitleParams{
		Title:       input.Title,
		Description: input.Description,
		ReleaseYear: input.ReleaseYear,
		Genres:      input.Genres,
	})
	if err != nil {
		h.respondServiceError(c, err, "update_title_failed", "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movie updated successfully"})
}

func (h *Handler) deleteTitle(c *gin.Context) {
	if err := h.services.Titles.DeleteTitle(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err, "delete_title_failed", "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted successfully"})
}
