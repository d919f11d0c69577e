package routes

import (
	"github.com/gin-gonic/gin"

	"coversheet_backend/internal/controllers"
)

func TruckRoutes(api *gin.RouterGroup, ctl *controllers.TruckController) {
	trucks := api.Group("/trucks")
	{
		trucks.POST("", ctl.Create)
		trucks.GET("", ctl.List)
		trucks.GET("/:id", ctl.Get)
		trucks.PUT("/:id", ctl.Update)
		trucks.DELETE("/:id", ctl.Delete)
	}
}
