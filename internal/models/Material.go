package models

import (
	"time"
)

// Material is a reference entity for what a load carried (e.g. green waste).
type Material struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	MaterialName string `json:"materialName" binding:"required"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
