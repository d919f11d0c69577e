package models

import (
	"time"
)

// Coversheet is the daily trip record for one truck/driver/route assignment.
// Child records (loads, downtimes, spare truck infos) point back at it via
// coversheet_ref_id instead of the coversheet holding arrays of child ids.
type Coversheet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClockIn    string `json:"clockIn"`
	LeaveYard  string `json:"leaveYard"`
	BackInYard string `json:"backInYard"`
	ClockOut   string `json:"clockOut"`

	StartMiles *int     `json:"startMiles"`
	EndMiles   *int     `json:"endMiles"`
	Fuel       *float64 `json:"fuel"`

	TruckID  uint `gorm:"index" json:"truck_id"`
	RouteID  uint `gorm:"index" json:"route_id"`
	DriverID uint `gorm:"index" json:"driver_id"`

	// Denormalized display fields copied from the referenced rows at write time.
	TruckNumber string `json:"truckNumber"`
	RouteNumber string `json:"routeNumber"`
	DriverName  string `json:"driverName"`

	// Business date, normalized to local midnight. Immutable after creation.
	Date  time.Time `gorm:"index" json:"date"`
	Notes string    `json:"notes"`

	// Soft-delete flag; only the delete endpoints may change it.
	Active bool `gorm:"default:true;index" json:"active"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
