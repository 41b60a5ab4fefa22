package handlers

import (
	"net/http"

	"cinelog/internal/models"
	"cinelog/internal/service"

	"github.com/gin-gonic/gin"
)

type searchUsersRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type updateUserRequest struct {
	Username     *string `json:"username"`
	Name         *string `json:"name"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profile_image"`
}

// searchUsers lists accounts, optionally filtered by partial username
// or (case-insensitive) name. An empty body lists everyone.
func (h *Handler) searchUsers(c *gin.Context) {
	var input searchUsersRequest
	// The filter body is optional; ignore binding errors for an empty body.
	_ = c.ShouldBindJSON(&input)

	users, err := h.services.Accounts.Search(c.Request.Context(), models.UserFilter{
		Username: input.Username,
		Name:     input.Name,
	})
	if err != nil {
		h.respondServiceError(c, err, "search_users_failed")
		return
	}
	if users == nil {
		users = []models.UserProfile{}
	}

	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// @Summary      Account detail
// @Tags         user
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /user/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUser(c *gin.Context) {
	user, err := h.services.Accounts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err, "get_user_failed", "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) updateUser(c *gin.Context) {
	var input updateUserRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.Accounts.UpdateAccount(c.Request.Context(), c.Param("id"), service.UpdateAccountParams{
		Username:     input.Username,
		Name:         input.Name,
		Bio:          input.Bio,
		ProfileImage: input.ProfileImage,
	})
	if err != nil {
		h.respondServiceError(c, err, "update_user_failed", "id", c.Param("id"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.services.Accounts.DeleteAccount(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err, "delete_user_failed", "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
