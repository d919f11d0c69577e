package routes

import (
	"github.com/gin-gonic/gin"

	"coversheet_backend/internal/controllers"
)

func DriverRoutes(api *gin.RouterGroup, ctl *controllers.DriverController) {
	drivers := api.Group("/drivers")
	{
		drivers.POST("", ctl.Create)
		drivers.GET("", ctl.List)
		drivers.GET("/:id", ctl.Get)
		drivers.PUT("/:id", ctl.Update)
		drivers.DELETE("/:id", ctl.Delete)
	}
}
