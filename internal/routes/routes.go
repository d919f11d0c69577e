package routes

import (
	"time"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"coversheet_backend/internal/controllers"
	"coversheet_backend/internal/services"
	"coversheet_backend/internal/storage"
)

// SetupRouter wires the services and controllers onto the gin engine. The
// database handle, file store and business timezone come in from main so the
// whole stack can be stood up against test doubles.
func SetupRouter(db *gorm.DB, files storage.FileStore, loc *time.Location, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())

	// Stored load images are served straight from the upload directory.
	r.Static("/uploads", uploadDir)

	res := services.NewResolver(db)
	coversheets := services.NewCoversheetService(db, res, loc)
	loads := services.NewLoadService(db, res, files, loc)
	downtimes := services.NewDowntimeService(db, res, loc)
	spares := services.NewSpareTruckService(db, res, loc)

	api := r.Group("/api")
	AuthRoutes(api, controllers.NewAuthController(db))
	TruckRoutes(api, controllers.NewTruckController(db))
	RouteRoutes(api, controllers.NewRouteController(db))
	DriverRoutes(api, controllers.NewDriverController(db))
	MaterialRoutes(api, controllers.NewMaterialController(db))
	LandfillRoutes(api, controllers.NewLandfillController(db))
	CoversheetRoutes(api, controllers.NewCoversheetController(coversheets, loads, downtimes, spares))
	LoadRoutes(api, controllers.NewLoadController(loads))
	DowntimeRoutes(api, controllers.NewDowntimeController(downtimes))
	SpareTruckInfoRoutes(api, controllers.NewSpareTruckController(spares))

	return r
}
