package services

import (
	"testing"
)

func TestResolverHitAndMiss(t *testing.T) {
	db := testDB(t)
	truck, route, driver := seedRefs(t, db)
	res := NewResolver(db)

	number, err := res.TruckNumber(truck.ID)
	if err != nil {
		t.Fatalf("resolve truck: %v", err)
	}
	if number != "T-12" {
		t.Errorf("truck number = %q, want T-12", number)
	}

	number, err = res.RouteNumber(route.ID)
	if err != nil {
		t.Fatalf("resolve route: %v", err)
	}
	if number != "42" {
		t.Errorf("route number = %q, want 42", number)
	}

	name, err := res.DriverName(driver.ID)
	if err != nil {
		t.Fatalf("resolve driver: %v", err)
	}
	if name != "Maria Lopez" {
		t.Errorf("driver name = %q, want Maria Lopez", name)
	}

	// A missing row resolves to the empty string, not an error.
	name, err = res.DriverName(9999)
	if err != nil {
		t.Fatalf("resolve missing driver should not error, got %v", err)
	}
	if name != "" {
		t.Errorf("missing driver should resolve to empty string, got %q", name)
	}
}
