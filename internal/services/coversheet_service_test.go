package services

import (
	"encoding/json"
	"testing"
	"time"

	"coversheet_backend/internal/apperr"
	"coversheet_backend/internal/models"
)

func TestCreateDenormalizesDisplayFields(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)

	cs := createCoversheet(t, svc, truck.ID, route.ID, driver.ID)

	if cs.TruckNumber != "T-12" {
		t.Errorf("truckNumber = %q, want T-12", cs.TruckNumber)
	}
	if cs.RouteNumber != "42" {
		t.Errorf("routeNumber = %q, want 42", cs.RouteNumber)
	}
	if cs.DriverName != "Maria Lopez" {
		t.Errorf("driverName = %q, want Maria Lopez", cs.DriverName)
	}
	if !cs.Active {
		t.Error("new coversheet should be active")
	}
	if cs.UpdatedAt != nil {
		t.Errorf("updatedAt should be null until first update, got %v", cs.UpdatedAt)
	}
}

func TestCreateToleratesDanglingReference(t *testing.T) {
	db := testDB(t)
	truck, _, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)

	cs, err := svc.Create(CreateCoversheetInput{
		TruckID:  truck.ID,
		RouteID:  9999, // no such route
		DriverID: driver.ID,
	})
	if err != nil {
		t.Fatalf("create with dangling route should succeed, got %v", err)
	}
	if cs.RouteNumber != "" {
		t.Errorf("routeNumber should be empty for dangling reference, got %q", cs.RouteNumber)
	}
	if cs.TruckNumber != "T-12" {
		t.Errorf("truckNumber = %q, want T-12", cs.TruckNumber)
	}
}

func TestCreateRequiresForeignKeys(t *testing.T) {
	db := testDB(t)
	svc := newCoversheetService(t, db, nil)

	_, err := svc.Create(CreateCoversheetInput{TruckID: 1, RouteID: 1})
	if apperr.StatusOf(err) != 400 {
		t.Fatalf("missing driver_id should be a validation error, got %v", err)
	}
}

func TestCreateNormalizesDateToLocalMidnight(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	loc := time.FixedZone("UTC-7", -7*3600)
	svc := newCoversheetService(t, db, loc)

	supplied := time.Date(2025, 3, 14, 23, 45, 0, 0, time.UTC)
	cs, err := svc.Create(CreateCoversheetInput{
		TruckID:  truck.ID,
		RouteID:  route.ID,
		DriverID: driver.ID,
		Date:     &supplied,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// 2025-03-14T23:45Z is 16:45 on the 14th at UTC-7.
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, loc)
	if !cs.Date.Equal(want) {
		t.Errorf("date = %v, want %v", cs.Date, want)
	}

	stored, err := svc.Get(cs.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !stored.Date.Equal(want) {
		t.Errorf("stored date = %v, want %v", stored.Date, want)
	}
}

func TestUpdateStripsDateAndActive(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)
	cs := createCoversheet(t, svc, truck.ID, route.ID, driver.ID)

	// Clients may well send date/active in the payload; the input type has no
	// slot for them, so they decode away silently.
	var input UpdateCoversheetInput
	payload := `{"clockIn":"7:15 AM","date":"2030-01-01T00:00:00Z","active":false}`
	if err := json.Unmarshal([]byte(payload), &input); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	updated, err := svc.Update(cs.ID, input)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ClockIn != "7:15 AM" {
		t.Errorf("clockIn = %q, want 7:15 AM", updated.ClockIn)
	}
	if !updated.Date.Equal(cs.Date) {
		t.Errorf("date changed through update: %v -> %v", cs.Date, updated.Date)
	}
	if !updated.Active {
		t.Error("active changed through update")
	}
	if updated.UpdatedAt == nil {
		t.Error("updatedAt should be stamped by update")
	}
}

func TestUpdateReResolvesDenormalizedFields(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	other := models.Route{RouteNumber: "43"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed second route: %v", err)
	}
	svc := newCoversheetService(t, db, nil)
	cs := createCoversheet(t, svc, truck.ID, route.ID, driver.ID)

	updated, err := svc.Update(cs.ID, UpdateCoversheetInput{RouteID: &other.ID})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.RouteID != other.ID {
		t.Errorf("route_id = %d, want %d", updated.RouteID, other.ID)
	}
	if updated.RouteNumber != "43" {
		t.Errorf("routeNumber = %q, want 43", updated.RouteNumber)
	}
}

func TestUpdateInactiveCoversheetIsNotFound(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)
	cs := createCoversheet(t, svc, truck.ID, route.ID, driver.ID)

	if err := svc.SoftDelete(cs.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	notes := "late start"
	_, err := svc.Update(cs.ID, UpdateCoversheetInput{Notes: &notes})
	if apperr.StatusOf(err) != 404 {
		t.Fatalf("update of soft-deleted coversheet should be not found, got %v", err)
	}
}

func TestSoftDeleteCascadesToAllChildren(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)
	cs := createCoversheet(t, svc, truck.ID, route.ID, driver.ID)

	children := []interface{}{
		&models.Load{CoversheetRefID: cs.ID, Active: true, TicketNumber: "A1"},
		&models.Downtime{CoversheetRefID: cs.ID, Active: true, DowntimeReason: "flat tire"},
		&models.SpareTruckInfo{CoversheetRefID: cs.ID, Active: true, SpareTruckNumber: "S-9"},
	}
	for _, child := range children {
		if err := db.Create(child).Error; err != nil {
			t.Fatalf("seed child: %v", err)
		}
	}

	// One load soft-deleted independently beforehand; the cascade re-stamps
	// it without complaint.
	gone := models.Load{CoversheetRefID: cs.ID, Active: true, TicketNumber: "A2"}
	if err := db.Create(&gone).Error; err != nil {
		t.Fatalf("seed child: %v", err)
	}
	if err := db.Model(&gone).Update("active", false).Error; err != nil {
		t.Fatalf("deactivate child: %v", err)
	}

	if err := svc.SoftDelete(cs.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if _, err := svc.Get(cs.ID); apperr.StatusOf(err) != 404 {
		t.Fatalf("get after soft delete should be not found, got %v", err)
	}

	var activeLoads, activeDowntimes, activeSpares int64
	db.Model(&models.Load{}).Where("coversheet_ref_id = ? AND active = ?", cs.ID, true).Count(&activeLoads)
	db.Model(&models.Downtime{}).Where("coversheet_ref_id = ? AND active = ?", cs.ID, true).Count(&activeDowntimes)
	db.Model(&models.SpareTruckInfo{}).Where("coversheet_ref_id = ? AND active = ?", cs.ID, true).Count(&activeSpares)
	if activeLoads != 0 || activeDowntimes != 0 || activeSpares != 0 {
		t.Errorf("active children remain after cascade: loads=%d downtimes=%d spares=%d",
			activeLoads, activeDowntimes, activeSpares)
	}
}

func TestSoftDeleteIsIdempotentAndReportsNotFoundOnRepeat(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)
	cs := createCoversheet(t, svc, truck.ID, route.ID, driver.ID)

	if err := svc.SoftDelete(cs.ID); err != nil {
		t.Fatalf("first soft delete: %v", err)
	}

	err := svc.SoftDelete(cs.ID)
	if apperr.StatusOf(err) != 404 {
		t.Fatalf("second soft delete should be not found, got %v", err)
	}

	// First call's effects are untouched by the retry.
	var cs2 models.Coversheet
	if err := db.Take(&cs2, cs.ID).Error; err != nil {
		t.Fatalf("coversheet should still exist in storage: %v", err)
	}
	if cs2.Active {
		t.Error("coversheet should remain inactive")
	}
}

func TestHardDeleteRemovesCoversheetAndChildren(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)
	cs := createCoversheet(t, svc, truck.ID, route.ID, driver.ID)

	for _, child := range []interface{}{
		&models.Load{CoversheetRefID: cs.ID, Active: true},
		&models.Load{CoversheetRefID: cs.ID, Active: true},
		&models.Downtime{CoversheetRefID: cs.ID, Active: true},
	} {
		if err := db.Create(child).Error; err != nil {
			t.Fatalf("seed child: %v", err)
		}
	}

	result, err := svc.HardDelete(cs.ID)
	if err != nil {
		t.Fatalf("hard delete: %v", err)
	}
	if result.Loads != 2 || result.Downtimes != 1 || result.SpareTruckInfos != 0 {
		t.Errorf("delete counts = %+v, want loads=2 downtimes=1 spares=0", result)
	}

	var total int64
	db.Model(&models.Coversheet{}).Where("id = ?", cs.ID).Count(&total)
	if total != 0 {
		t.Error("coversheet row should be physically gone")
	}
	db.Model(&models.Load{}).Where("coversheet_ref_id = ?", cs.ID).Count(&total)
	if total != 0 {
		t.Error("load rows should be physically gone")
	}

	if _, err := svc.HardDelete(cs.ID); apperr.StatusOf(err) != 404 {
		t.Fatalf("hard delete of missing coversheet should be not found, got %v", err)
	}
}

func TestHardDeleteWorksOnInactiveCoversheet(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)
	cs := createCoversheet(t, svc, truck.ID, route.ID, driver.ID)

	if err := svc.SoftDelete(cs.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if _, err := svc.HardDelete(cs.ID); err != nil {
		t.Fatalf("hard delete of inactive coversheet should succeed, got %v", err)
	}
}

func TestExpandReturnsActiveChildrenAndReferences(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)
	cs := createCoversheet(t, svc, truck.ID, route.ID, driver.ID)

	for _, child := range []interface{}{
		&models.Load{CoversheetRefID: cs.ID, Active: true, TicketNumber: "A1"},
		&models.Load{CoversheetRefID: cs.ID, Active: true, TicketNumber: "A2"},
		&models.Downtime{CoversheetRefID: cs.ID, Active: true},
	} {
		if err := db.Create(child).Error; err != nil {
			t.Fatalf("seed child: %v", err)
		}
	}
	inactive := models.Load{CoversheetRefID: cs.ID, Active: true, TicketNumber: "A3"}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("seed child: %v", err)
	}
	if err := db.Model(&inactive).Update("active", false).Error; err != nil {
		t.Fatalf("deactivate child: %v", err)
	}

	exp, err := svc.Expand(cs.ID)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if len(exp.Loads) != 2 {
		t.Errorf("expanded loads = %d, want 2 (inactive excluded)", len(exp.Loads))
	}
	if len(exp.Downtimes) != 1 {
		t.Errorf("expanded downtimes = %d, want 1", len(exp.Downtimes))
	}
	if len(exp.SpareTruckInfos) != 0 {
		t.Errorf("expanded spares = %d, want 0", len(exp.SpareTruckInfos))
	}
	if exp.Truck == nil || exp.Truck.TruckNumber != "T-12" {
		t.Errorf("expanded truck = %+v, want T-12", exp.Truck)
	}
	if exp.Route == nil || exp.Route.RouteNumber != "42" {
		t.Errorf("expanded route = %+v, want 42", exp.Route)
	}
	if exp.Driver == nil || exp.Driver.Name != "Maria Lopez" {
		t.Errorf("expanded driver = %+v, want Maria Lopez", exp.Driver)
	}
}

func TestExpandDanglingReferenceIsNull(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)
	cs := createCoversheet(t, svc, truck.ID, route.ID, driver.ID)

	if err := db.Delete(&models.Driver{}, driver.ID).Error; err != nil {
		t.Fatalf("delete driver: %v", err)
	}

	exp, err := svc.Expand(cs.ID)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if exp.Driver != nil {
		t.Errorf("driver should be nil after reference row was removed, got %+v", exp.Driver)
	}
}

func TestExpandInactiveCoversheetIsNotFound(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)
	cs := createCoversheet(t, svc, truck.ID, route.ID, driver.ID)

	if err := svc.SoftDelete(cs.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if _, err := svc.Expand(cs.ID); apperr.StatusOf(err) != 404 {
		t.Fatalf("expand of inactive coversheet should be not found, got %v", err)
	}
}

func TestListByDate(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	svc := newCoversheetService(t, db, nil)

	day1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	for _, d := range []time.Time{day1, day1, day2} {
		date := d
		if _, err := svc.Create(CreateCoversheetInput{
			TruckID: truck.ID, RouteID: route.ID, DriverID: driver.ID, Date: &date,
		}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	sheets, err := svc.ListByDate("2025-06-01")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(sheets) != 2 {
		t.Errorf("coversheets on 2025-06-01 = %d, want 2", len(sheets))
	}

	if _, err := svc.ListByDate("06/01/2025"); apperr.StatusOf(err) != 400 {
		t.Fatalf("bad date format should be a validation error, got %v", err)
	}
}
