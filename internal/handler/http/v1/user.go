package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/agency_dispatch_system/internal/models"
)

// @Summary Register a user
// @Description Register a citizen who uploads incident images. The response carries a ready token.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body RegisterUserRequest true "User data"
// @Success 201 {object} UserAuthResponse "User registered"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 409 {object} ErrorResponse "User already exists"
// @Router /users/register [post]
func (h *Handler) registerUser(c *gin.Context) {
	log := h.logger.WithField("handler", "registerUser")

	var req RegisterUserRequest
	if !h.bindJSON(c, log, &req) {
		return
	}

	result, err := h.users.Register(c.Request.Context(), models.RegisterUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, userAuthResponse("User registered successfully", result))
}

// @Summary User login
// @Description Authenticate a user by email and password
// @Tags Users
// @Accept json
// @Produce json
// @Param credentials body UserLoginRequest true "Credentials"
// @Success 200 {object} UserAuthResponse "Login successful"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid email or password"
// @Failure 429 {object} ErrorResponse "Too many login attempts"
// @Router /users/login [post]
func (h *Handler) loginUser(c *gin.Context) {
	log := h.logger.WithField("handler", "loginUser")

	var req UserLoginRequest
	if !h.bindJSON(c, log, &req) {
		return
	}

	result, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, userAuthResponse("User logged in successfully", result))
}

func userAuthResponse(message string, result *models.UserAuthResult) UserAuthResponse {
	return UserAuthResponse{
		Success:   true,
		Message:   message,
		UserID:    result.User.ID,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      ModelToUserResponse(result.User),
	}
}
