package models

import (
	"time"
)

// SpareTruckInfo records mileage and fuel for a replacement truck used
// partway through a trip.
type SpareTruckInfo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SpareTruckNumber string `json:"spareTruckNumber"`

	RouteID     *uint  `gorm:"index" json:"route_id"`
	RouteNumber string `json:"routeNumber"`

	LeaveYard  string `json:"leaveYard"`
	BackInYard string `json:"backInYard"`

	StartMiles *int     `json:"startMiles"`
	EndMiles   *int     `json:"endMiles"`
	Fuel       *float64 `json:"fuel"`

	CoversheetRefID uint `gorm:"index" json:"coversheet_ref_id"`

	Active bool `gorm:"default:true;index" json:"active"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
