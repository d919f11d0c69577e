package services

import (
	"errors"

	"gorm.io/gorm"
)

// Resolver copies display fields from referenced reference-table rows onto
// the owning record at write time, so reads never need a join for them.
type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Resolve looks up one display column by id. A dangling reference is not an
// error: the display field is simply absent and the write proceeds without
// it. Only real storage failures propagate.
func (r *Resolver) Resolve(table string, id uint, column string) (string, error) {
	if id == 0 {
		return "", nil
	}
	var value string
	err := r.db.Table(table).Select(column).Where("id = ?", id).Take(&value).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *Resolver) TruckNumber(id uint) (string, error) {
	return r.Resolve("trucks", id, "truck_number")
}

func (r *Resolver) RouteNumber(id uint) (string, error) {
	return r.Resolve("routes", id, "route_number")
}

func (r *Resolver) DriverName(id uint) (string, error) {
	return r.Resolve("drivers", id, "name")
}

func (r *Resolver) LandfillName(id uint) (string, error) {
	return r.Resolve("landfills", id, "landfill_name")
}

func (r *Resolver) MaterialName(id uint) (string, error) {
	return r.Resolve("materials", id, "material_name")
}
