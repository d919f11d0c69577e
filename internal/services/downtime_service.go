package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"coversheet_backend/internal/apperr"
	"coversheet_backend/internal/models"
)

// DowntimeService is the child record store for downtimes.
type DowntimeService struct {
	db  *gorm.DB
	res *Resolver
	loc *time.Location
}

func NewDowntimeService(db *gorm.DB, res *Resolver, loc *time.Location) *DowntimeService {
	return &DowntimeService{db: db, res: res, loc: loc}
}

type CreateDowntimeInput struct {
	TruckID         *uint  `json:"truck_id"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DowntimeReason  string `json:"downtimeReason"`
	CoversheetRefID uint   `json:"coversheet_ref_id" binding:"required"`
}

type UpdateDowntimeInput struct {
	TruckID        *uint   `json:"truck_id"`
	StartTime      *string `json:"startTime"`
	EndTime        *string `json:"endTime"`
	DowntimeReason *string `json:"downtimeReason"`
}

func (s *DowntimeService) Create(input CreateDowntimeInput) (*models.Downtime, error) {
	if err := requireActiveCoversheet(s.db, input.CoversheetRefID); err != nil {
		return nil, err
	}

	dt := models.Downtime{
		TruckID:         input.TruckID,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DowntimeReason:  input.DowntimeReason,
		CoversheetRefID: input.CoversheetRefID,
		Active:          true,
		CreatedAt:       time.Now().In(s.loc),
	}

	if input.TruckID != nil {
		number, err := s.res.TruckNumber(*input.TruckID)
		if err != nil {
			return nil, apperr.Storage("failed to resolve truck number", err)
		}
		dt.TruckNumber = number
	}

	if err := s.db.Create(&dt).Error; err != nil {
		return nil, apperr.Storage("failed to create downtime", err)
	}
	return &dt, nil
}

func (s *DowntimeService) Get(id uint) (*models.Downtime, error) {
	var dt models.Downtime
	err := s.db.Where("id = ? AND active = ?", id, true).Take(&dt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Downtime not found")
	}
	if err != nil {
		return nil, apperr.Storage("failed to fetch downtime", err)
	}
	return &dt, nil
}

func (s *DowntimeService) List() ([]models.Downtime, error) {
	var downtimes []models.Downtime
	if err := s.db.Where("active = ?", true).Find(&downtimes).Error; err != nil {
		return nil, apperr.Storage("failed to list downtimes", err)
	}
	return downtimes, nil
}

func (s *DowntimeService) ListByCoversheet(coversheetID uint, activeOnly bool) ([]models.Downtime, error) {
	q := s.db.Where("coversheet_ref_id = ?", coversheetID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var downtimes []models.Downtime
	if err := q.Find(&downtimes).Error; err != nil {
		return nil, apperr.Storage("failed to list downtimes by coversheet", err)
	}
	return downtimes, nil
}

func (s *DowntimeService) Update(id uint, input UpdateDowntimeInput) (*models.Downtime, error) {
	set := map[string]interface{}{}
	if input.StartTime != nil {
		set["start_time"] = *input.StartTime
	}
	if input.EndTime != nil {
		set["end_time"] = *input.EndTime
	}
	if input.DowntimeReason != nil {
		set["downtime_reason"] = *input.DowntimeReason
	}
	if input.TruckID != nil {
		number, err := s.res.TruckNumber(*input.TruckID)
		if err != nil {
			return nil, apperr.Storage("failed to resolve truck number", err)
		}
		set["truck_id"] = *input.TruckID
		set["truck_number"] = number
	}
	set["updated_at"] = time.Now().In(s.loc)

	res := s.db.Model(&models.Downtime{}).
		Where("id = ? AND active = ?", id, true).
		Updates(set)
	if res.Error != nil {
		return nil, apperr.Storage("failed to update downtime", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Downtime not found or not active")
	}
	return s.Get(id)
}

func (s *DowntimeService) SoftDelete(id uint) error {
	res := s.db.Model(&models.Downtime{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]interface{}{
			"active":     false,
			"updated_at": time.Now().In(s.loc),
		})
	if res.Error != nil {
		return apperr.Storage("failed to soft delete downtime", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Downtime not found or already deleted")
	}
	return nil
}
