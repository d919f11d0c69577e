package models

import (
	"time"
)

// Landfill is a reference entity for load drop-off sites.
type Landfill struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	LandfillName string `json:"landfillName" binding:"required"`
	Address      string `json:"address"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
