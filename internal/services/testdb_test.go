package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"coversheet_backend/internal/config"
	"coversheet_backend/internal/models"
)

// testDB opens a fresh in-memory database with the full schema. The services
// only receive the handle, so swapping postgres for sqlite here exercises the
// real query paths without a server.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedRefs inserts one truck, route and driver and returns them.
func seedRefs(t *testing.T, db *gorm.DB) (models.Truck, models.Route, models.Driver) {
	t.Helper()
	truck := models.Truck{TruckNumber: "T-12"}
	route := models.Route{RouteNumber: "42"}
	driver := models.Driver{Name: "Maria Lopez"}
	if err := db.Create(&truck).Error; err != nil {
		t.Fatalf("seed truck: %v", err)
	}
	if err := db.Create(&route).Error; err != nil {
		t.Fatalf("seed route: %v", err)
	}
	if err := db.Create(&driver).Error; err != nil {
		t.Fatalf("seed driver: %v", err)
	}
	return truck, route, driver
}

func newCoversheetService(t *testing.T, db *gorm.DB, loc *time.Location) *CoversheetService {
	t.Helper()
	if loc == nil {
		loc = time.UTC
	}
	return NewCoversheetService(db, NewResolver(db), loc)
}

// createCoversheet makes an active coversheet against the seeded references.
func createCoversheet(t *testing.T, svc *CoversheetService, truckID, routeID, driverID uint) *models.Coversheet {
	t.Helper()
	cs, err := svc.Create(CreateCoversheetInput{
		TruckID:  truckID,
		RouteID:  routeID,
		DriverID: driverID,
		ClockIn:  "6:00 AM",
	})
	if err != nil {
		t.Fatalf("create coversheet: %v", err)
	}
	return cs
}
