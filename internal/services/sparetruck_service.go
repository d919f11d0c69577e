package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"coversheet_backend/internal/apperr"
	"coversheet_backend/internal/models"
)

// SpareTruckService is the child record store for spare truck infos.
type SpareTruckService struct {
	db  *gorm.DB
	res *Resolver
	loc *time.Location
}

func NewSpareTruckService(db *gorm.DB, res *Resolver, loc *time.Location) *SpareTruckService {
	return &SpareTruckService{db: db, res: res, loc: loc}
}

type CreateSpareTruckInput struct {
	SpareTruckNumber string   `json:"spareTruckNumber"`
	RouteID          *uint    `json:"route_id"`
	LeaveYard        string   `json:"leaveYard"`
	BackInYard       string   `json:"backInYard"`
	StartMiles       *int     `json:"startMiles"`
	EndMiles         *int     `json:"endMiles"`
	Fuel             *float64 `json:"fuel"`
	CoversheetRefID  uint     `json:"coversheet_ref_id" binding:"required"`
}

type UpdateSpareTruckInput struct {
	SpareTruckNumber *string  `json:"spareTruckNumber"`
	RouteID          *uint    `json:"route_id"`
	LeaveYard        *string  `json:"leaveYard"`
	BackInYard       *string  `json:"backInYard"`
	StartMiles       *int     `json:"startMiles"`
	EndMiles         *int     `json:"endMiles"`
	Fuel             *float64 `json:"fuel"`
}

func (s *SpareTruckService) Create(input CreateSpareTruckInput) (*models.SpareTruckInfo, error) {
	if err := requireActiveCoversheet(s.db, input.CoversheetRefID); err != nil {
		return nil, err
	}

	info := models.SpareTruckInfo{
		SpareTruckNumber: input.SpareTruckNumber,
		RouteID:          input.RouteID,
		LeaveYard:        input.LeaveYard,
		BackInYard:       input.BackInYard,
		StartMiles:       input.StartMiles,
		EndMiles:         input.EndMiles,
		Fuel:             input.Fuel,
		CoversheetRefID:  input.CoversheetRefID,
		Active:           true,
		CreatedAt:        time.Now().In(s.loc),
	}

	if input.RouteID != nil {
		number, err := s.res.RouteNumber(*input.RouteID)
		if err != nil {
			return nil, apperr.Storage("failed to resolve route number", err)
		}
		info.RouteNumber = number
	}

	if err := s.db.Create(&info).Error; err != nil {
		return nil, apperr.Storage("failed to create spare truck info", err)
	}
	return &info, nil
}

func (s *SpareTruckService) Get(id uint) (*models.SpareTruckInfo, error) {
	var info models.SpareTruckInfo
	err := s.db.Where("id = ? AND active = ?", id, true).Take(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("SpareTruckInfo not found")
	}
	if err != nil {
		return nil, apperr.Storage("failed to fetch spare truck info", err)
	}
	return &info, nil
}

func (s *SpareTruckService) List() ([]models.SpareTruckInfo, error) {
	var infos []models.SpareTruckInfo
	if err := s.db.Where("active = ?", true).Find(&infos).Error; err != nil {
		return nil, apperr.Storage("failed to list spare truck infos", err)
	}
	return infos, nil
}

func (s *SpareTruckService) ListByCoversheet(coversheetID uint, activeOnly bool) ([]models.SpareTruckInfo, error) {
	q := s.db.Where("coversheet_ref_id = ?", coversheetID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var infos []models.SpareTruckInfo
	if err := q.Find(&infos).Error; err != nil {
		return nil, apperr.Storage("failed to list spare truck infos by coversheet", err)
	}
	return infos, nil
}

func (s *SpareTruckService) Update(id uint, input UpdateSpareTruckInput) (*models.SpareTruckInfo, error) {
	set := map[string]interface{}{}
	if input.SpareTruckNumber != nil {
		set["spare_truck_number"] = *input.SpareTruckNumber
	}
	if input.LeaveYard != nil {
		set["leave_yard"] = *input.LeaveYard
	}
	if input.BackInYard != nil {
		set["back_in_yard"] = *input.BackInYard
	}
	if input.StartMiles != nil {
		set["start_miles"] = *input.StartMiles
	}
	if input.EndMiles != nil {
		set["end_miles"] = *input.EndMiles
	}
	if input.Fuel != nil {
		set["fuel"] = *input.Fuel
	}
	if input.RouteID != nil {
		number, err := s.res.RouteNumber(*input.RouteID)
		if err != nil {
			return nil, apperr.Storage("failed to resolve route number", err)
		}
		set["route_id"] = *input.RouteID
		set["route_number"] = number
	}
	set["updated_at"] = time.Now().In(s.loc)

	res := s.db.Model(&models.SpareTruckInfo{}).
		Where("id = ? AND active = ?", id, true).
		Updates(set)
	if res.Error != nil {
		return nil, apperr.Storage("failed to update spare truck info", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("SpareTruckInfo not found or not active")
	}
	return s.Get(id)
}

func (s *SpareTruckService) SoftDelete(id uint) error {
	res := s.db.Model(&models.SpareTruckInfo{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]interface{}{
			"active":     false,
			"updated_at": time.Now().In(s.loc),
		})
	if res.Error != nil {
		return apperr.Storage("failed to soft delete spare truck info", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("SpareTruckInfo not found or already deleted")
	}
	return nil
}
