package routes

import (
	"github.com/gin-gonic/gin"

	"coversheet_backend/internal/controllers"
)

func SpareTruckInfoRoutes(api *gin.RouterGroup, ctl *controllers.SpareTruckController) {
	sparetruckinfo := api.Group("/sparetruckinfo")
	{
		sparetruckinfo.POST("", ctl.Create)
		sparetruckinfo.GET("", ctl.List)
		sparetruckinfo.GET("/by-coversheet/:coversheet_id", ctl.ByCoversheet)
		sparetruckinfo.GET("/:id", ctl.Get)
		sparetruckinfo.PUT("/:id", ctl.Update)
		sparetruckinfo.DELETE("/:id", ctl.SoftDelete)
	}
}
