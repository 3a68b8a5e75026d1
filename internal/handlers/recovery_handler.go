package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelrequests/internal/models"
	"travelrequests/internal/services"
)

type RecoveryHandler struct {
	userService services.UserService
}

func NewRecoveryHandler(userService services.UserService) *RecoveryHandler {
	return &RecoveryHandler{userService: userService}
}

// @Summary      Request a recovery code
// @Description  Issues a short-lived 6-digit password recovery code
// @Tags         Recovery
// @Accept       json
// @Produce      json
// @Param        request  body      models.ForgotPasswordRequest  true  "Account email"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string]string
// @Router       /recuperacion/solicitar [post]
func (h *RecoveryHandler) RequestCode(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := h.userService.RequestRecoveryCode(req.Email)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "recovery code generated",
		"code":       code,
		"expires_in": "5 minutes",
	})
}

// @Summary      Reset password
// @Description  Consumes a recovery code and sets a new password
// @Tags         Recovery
// @Accept       json
// @Produce      json
// @Param        request  body      models.ResetPasswordRequest  true  "Email, code and new password"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string]string
// @Router       /recuperacion/restablecer [post]
func (h *RecoveryHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.ResetPassword(&req); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password reset"})
}
