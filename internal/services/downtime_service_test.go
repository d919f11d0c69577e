package services

import (
	"testing"
	"time"

	"coversheet_backend/internal/apperr"
	"coversheet_backend/internal/models"
)

func TestCreateDowntimeDenormalizesTruckNumber(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	cs := createCoversheet(t, newCoversheetService(t, db, nil), truck.ID, route.ID, driver.ID)
	svc := NewDowntimeService(db, NewResolver(db), time.UTC)

	dt, err := svc.Create(CreateDowntimeInput{
		TruckID:         &truck.ID,
		StartTime:       "9:00 AM",
		EndTime:         "9:40 AM",
		DowntimeReason:  "hydraulic leak",
		CoversheetRefID: cs.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dt.TruckNumber != "T-12" {
		t.Errorf("truckNumber = %q, want T-12", dt.TruckNumber)
	}
	if !dt.Active {
		t.Error("new downtime should be active")
	}
	if dt.UpdatedAt != nil {
		t.Error("updatedAt should be null until first update")
	}
}

func TestCreateDowntimeRequiresActiveCoversheet(t *testing.T) {
	db := testDB(t)
	svc := NewDowntimeService(db, NewResolver(db), time.UTC)

	_, err := svc.Create(CreateDowntimeInput{DowntimeReason: "no parent", CoversheetRefID: 77})
	if apperr.StatusOf(err) != 400 {
		t.Fatalf("missing coversheet should be a validation error, got %v", err)
	}
}

func TestUpdateDowntimeReResolvesTruckNumber(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	other := models.Truck{TruckNumber: "T-99"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed second truck: %v", err)
	}
	cs := createCoversheet(t, newCoversheetService(t, db, nil), truck.ID, route.ID, driver.ID)
	svc := NewDowntimeService(db, NewResolver(db), time.UTC)

	dt, err := svc.Create(CreateDowntimeInput{TruckID: &truck.ID, CoversheetRefID: cs.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(dt.ID, UpdateDowntimeInput{TruckID: &other.ID})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.TruckNumber != "T-99" {
		t.Errorf("truckNumber = %q, want T-99", updated.TruckNumber)
	}
	if updated.UpdatedAt == nil {
		t.Error("updatedAt should be stamped by update")
	}
}

func TestSoftDeleteDowntimeTwice(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	cs := createCoversheet(t, newCoversheetService(t, db, nil), truck.ID, route.ID, driver.ID)
	svc := NewDowntimeService(db, NewResolver(db), time.UTC)

	dt, err := svc.Create(CreateDowntimeInput{CoversheetRefID: cs.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.SoftDelete(dt.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if err := svc.SoftDelete(dt.ID); apperr.StatusOf(err) != 404 {
		t.Fatalf("second soft delete should be not found, got %v", err)
	}
	if _, err := svc.Update(dt.ID, UpdateDowntimeInput{}); apperr.StatusOf(err) != 404 {
		t.Fatalf("update of soft-deleted downtime should be not found, got %v", err)
	}
}
