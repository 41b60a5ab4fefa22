package handlers

import (
	"net/http"

	"cinelog/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Username     string `json:"username" binding:"required"`
	Name         string `json:"name"`
	Password     string `json:"password" binding:"required"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profile_image"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Register account
// @Tags         user
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /user [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, err := h.services.Register(c.Request.Context(), service.RegisterParams{
		Email:        input.Email,
		Username:     input.Username,
		Name:         input.Name,
		Password:     input.Password,
		Bio:          input.Bio,
		ProfileImage: input.ProfileImage,
	})
	if err != nil {
		h.respondServiceError(c, err, "register_failed", "email", input.Email)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    u,
	})
}

// @Summary      Log in
// @Tags         user
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "token, user"
// @Failure      401  {object}  map[string]string
// @Router       /user/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	login := input.Email
	if login == "" {
		login = input.Username
	}
	if login == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email or username is required"})
		return
	}

	token, user, err := h.services.Login(c.Request.Context(), login, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "login", login)
		}
		h.respondServiceError(c, err, "login_error", "login", login)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// forgotPassword always reports success for well-formed requests;
// whether the address is registered is not observable from outside.
func (h *Handler) forgotPassword(c *gin.Context) {
	var input forgotPasswordRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	if err := h.services.ForgotPassword(c.Request.Context(), input.Email); err != nil {
		h.respondServiceError(c, err, "forgot_password_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a reset email has been sent"})
}

func (h *Handler) resetPassword(c *gin.Context) {
	var input resetPasswordRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	if err := h.services.ResetPassword(c.Request.Context(), input.Token, input.Password); err != nil {
		h.respondServiceError(c, err, "reset_password_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
