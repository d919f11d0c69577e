package routes

import (
	"github.com/gin-gonic/gin"

	"coversheet_backend/internal/controllers"
)

func RouteRoutes(api *gin.RouterGroup, ctl *controllers.RouteController) {
	rts := api.Group("/routes")
	{
		rts.POST("", ctl.Create)
		rts.GET("", ctl.List)
		rts.GET("/:id", ctl.Get)
		rts.PUT("/:id", ctl.Update)
		rts.DELETE("/:id", ctl.Delete)
	}
}
