package routes

import (
	"github.com/gin-gonic/gin"

	"travelrequests/internal/handlers"
	"travelrequests/internal/middleware"
	"travelrequests/internal/models"
)

// SetupRoutes keeps the original API paths so existing clients keep
// working against this implementation.
func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	recoveryHandler *handlers.RecoveryHandler,
	travelHandler *handlers.TravelRequestHandler,
	jwtSecret []byte,
) *gin.Engine {

	api := r.Group("/api")

	// ---- public
	api.POST("/auth/login", authHandler.Login)
	api.POST("/usuarios/registrar", userHandler.Register)
	api.POST("/recuperacion/solicitar", recoveryHandler.RequestCode)
	api.POST("/recuperacion/restablecer", recoveryHandler.ResetPassword)

	// ---- protected
	api.Use(middleware.AuthMiddleware(jwtSecret))

	// USERS (Approver)
	api.GET("/usuarios", middleware.RequireRoles(models.RoleApprover), userHandler.ListUsers)

	// TRAVEL REQUESTS
	solicitudes := api.Group("/solicitudes")
	{
		solicitudes.POST("/", travelHandler.Create)
		solicitudes.GET("/mis-solicitudes", travelHandler.ListMine)
		solicitudes.GET("/", middleware.RequireRoles(models.RoleApprover), travelHandler.ListAll)
		solicitudes.PATCH("/:id/estado", middleware.RequireRoles(models.RoleApprover), travelHandler.ChangeStatus)
	}

	return r
}
