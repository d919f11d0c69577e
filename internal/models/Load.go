package models

import (
	"time"

	"gorm.io/datatypes"
)

// Load is one landfill run recorded under a coversheet.
type Load struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstStopTime   string `json:"firstStopTime"`
	LastStopTime    string `json:"lastStopTime"`
	LandFillTimeIn  string `json:"landFillTimeIn"`
	LandFillTimeOut string `json:"landFillTimeOut"`

	GrossWeight *float64 `json:"grossWeight"`
	TareWeight  *float64 `json:"tareWeight"`
	Tons        *float64 `json:"tons"`

	RouteID    *uint `gorm:"index" json:"route_id"`
	LandFillID *uint `gorm:"index" json:"landFill_id"`
	MaterialID *uint `gorm:"index" json:"material_id"`

	RouteNumber  string `json:"routeNumber"`
	LandfillName string `json:"landfillName"`
	MaterialName string `json:"materialName"`

	TicketNumber string `json:"ticketNumber"`
	Note         string `json:"note"`

	// Storage locations of attached scale-ticket photos. Appended to on
	// update, never replaced.
	Images datatypes.JSONSlice[string] `json:"images"`

	// Back-reference to the owning coversheet. Immutable after creation.
	CoversheetRefID uint `gorm:"index" json:"coversheet_ref_id"`

	Active bool `gorm:"default:true;index" json:"active"`

	CreatedAt time.Time  `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
