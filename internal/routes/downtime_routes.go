package routes

import (
	"github.com/gin-gonic/gin"

	"coversheet_backend/internal/controllers"
)

func DowntimeRoutes(api *gin.RouterGroup, ctl *controllers.DowntimeController) {
	downtime := api.Group("/downtime")
	{
		downtime.POST("", ctl.Create)
		downtime.GET("", ctl.List)
		downtime.GET("/by-coversheet/:coversheet_id", ctl.ByCoversheet)
		downtime.GET("/:id", ctl.Get)
		downtime.PUT("/:id", ctl.Update)
		downtime.DELETE("/:id", ctl.SoftDelete)
	}
}
