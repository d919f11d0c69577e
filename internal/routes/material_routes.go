package routes

import (
	"github.com/gin-gonic/gin"

	"coversheet_backend/internal/controllers"
)

func MaterialRoutes(api *gin.RouterGroup, ctl *controllers.MaterialController) {
	materials := api.Group("/materials")
	{
		materials.POST("", ctl.Create)
		materials.GET("", ctl.List)
		materials.GET("/:id", ctl.Get)
		materials.PUT("/:id", ctl.Update)
		materials.DELETE("/:id", ctl.Delete)
	}
}
