package routes

import (
	"github.com/gin-gonic/gin"

	"coversheet_backend/internal/controllers"
)

func AuthRoutes(api *gin.RouterGroup, ctl *controllers.AuthController) {
	users := api.Group("/users")
	{
		users.POST("/signup", ctl.Signup)
		users.POST("/login", ctl.Login)
	}
}
