package models

import (
	"time"
)

// Downtime records a stretch of time a truck was out of service during a trip.
type Downtime struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TruckID     *uint  `gorm:"index" json:"truck_id"`
	TruckNumber string `json:"truckNumber"`

	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	DowntimeReason string `json:"downtimeReason"`

	CoversheetRefID uint `gorm:"index" json:"coversheet_ref_id"`

	Active bool `gorm:"default:true;index" json:"active"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
