package routes

import (
	"github.com/gin-gonic/gin"

	"coversheet_backend/internal/controllers"
)

func LandfillRoutes(api *gin.RouterGroup, ctl *controllers.LandfillController) {
	landfills := api.Group("/landfills")
	{
		landfills.POST("", ctl.Create)
		landfills.GET("", ctl.List)
		landfills.GET("/:id", ctl.Get)
		landfills.PUT("/:id", ctl.Update)
		landfills.DELETE("/:id", ctl.Delete)
	}
}
