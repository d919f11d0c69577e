package routes

import (
	"github.com/gin-gonic/gin"

	"coversheet_backend/internal/controllers"
)

func LoadRoutes(api *gin.RouterGroup, ctl *controllers.LoadController) {
	load := api.Group("/load")
	{
		load.POST("", ctl.Create)
		load.GET("", ctl.List)
		load.GET("/by-coversheet/:coversheet_id", ctl.ByCoversheet)
		load.GET("/:id", ctl.Get)
		load.PUT("/:id", ctl.Update)
		load.DELETE("/:id", ctl.SoftDelete)
	}
}
