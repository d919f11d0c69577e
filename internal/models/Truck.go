package models

import (
	"time"
)

// Truck is a reference entity; coversheets and downtimes denormalize its
// TruckNumber at write time. Reference tables carry no soft-delete flag.
type Truck struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	TruckNumber  string `json:"truckNumber" binding:"required"`
	LicensePlate string `json:"licensePlate"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
