package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelrequests/internal/models"
	"travelrequests/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// @Summary      Register a user
// @Description  Creates a user with role Requester or Approver
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        user  body      models.RegisterRequest  true  "Registration data"
// @Success      201   {object}  models.UserResponse
// @Failure      400   {object}  map[string]string
// @Router       /usuarios/registrar [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// @Summary      List users
// @Description  Returns all users. Approver role only.
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.UserResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /usuarios [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	_, role := getUserAndRole(c)

	users, err := h.userService.ListUsers(role)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
