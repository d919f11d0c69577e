package models

import (
	"time"
)

// Route is a collection route reference entity. RouteNumber is the display
// field denormalized onto coversheets, loads and spare truck infos.
type Route struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	RouteNumber string `json:"routeNumber" binding:"required"`
	Description string `json:"description"`

	// Optional service-area geometry stored as WKB; the API speaks GeoJSON.
	Geometry []byte `gorm:"type:bytea" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
