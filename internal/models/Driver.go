package models

import (
	"time"
)

// Driver is a reference entity; its Name is denormalized onto coversheets.
type Driver struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"licenseNumber"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
