package routes

import (
	"github.com/gin-gonic/gin"

	"coversheet_backend/internal/controllers"
	"coversheet_backend/internal/middleware"
)

func CoversheetRoutes(api *gin.RouterGroup, ctl *controllers.CoversheetController) {
	coversheets := api.Group("/coversheets")
	{
		coversheets.POST("", ctl.Create)
		coversheets.GET("", ctl.List)
		coversheets.GET("/with-details", ctl.ListWithDetails)
		coversheets.GET("/with-details/:id", ctl.GetWithDetails)
		coversheets.GET("/by-date/:date", ctl.ListByDate)
		coversheets.GET("/:id", ctl.Get)
		coversheets.PUT("/:id", ctl.Update)
		coversheets.DELETE("/:id", ctl.SoftDelete)

		// Hard delete is irreversible and gated on authentication.
		coversheets.DELETE("/:id/hard", middleware.RequireAuth(), ctl.HardDelete)

		coversheets.GET("/:id/load", ctl.LoadsByCoversheet)
		coversheets.GET("/:id/downtime", ctl.DowntimesByCoversheet)
		coversheets.GET("/:id/sparetruckinfo", ctl.SpareTruckInfosByCoversheet)
	}
}
