package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"coversheet_backend/internal/apperr"
	"coversheet_backend/internal/models"
	"coversheet_backend/internal/storage"
)

// MaxImageSize is the per-file ceiling for attached scale-ticket photos.
const MaxImageSize = 5 << 20 // 5 MiB

// ImageUpload is one attached file as received from the multipart form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// LoadService is the child record store for loads, including the image
// attachment path.
type LoadService struct {
	db    *gorm.DB
	res   *Resolver
	files storage.FileStore
	loc   *time.Location
}

func NewLoadService(db *gorm.DB, res *Resolver, files storage.FileStore, loc *time.Location) *LoadService {
	return &LoadService{db: db, res: res, files: files, loc: loc}
}

type CreateLoadInput struct {
	FirstStopTime   string
	LastStopTime    string
	LandFillTimeIn  string
	LandFillTimeOut string

	GrossWeight *float64
	TareWeight  *float64
	Tons        *float64

	RouteID    *uint
	LandFillID *uint
	MaterialID *uint

	TicketNumber string
	Note         string

	CoversheetRefID uint
	Images          []ImageUpload
}

type UpdateLoadInput struct {
	FirstStopTime   *string
	LastStopTime    *string
	LandFillTimeIn  *string
	LandFillTimeOut *string

	GrossWeight *float64
	TareWeight  *float64
	Tons        *float64

	RouteID    *uint
	LandFillID *uint
	MaterialID *uint

	TicketNumber *string
	Note         *string

	// coversheet_ref_id and active are not updatable; they have no input field.
	Images []ImageUpload
}

// validateImages rejects the whole batch before anything is written: every
// file must declare an image content type and stay under the size ceiling.
func validateImages(images []ImageUpload) error {
	for _, img := range images {
		if !strings.HasPrefix(img.ContentType, "image/") {
			return apperr.Validation(fmt.Sprintf("The file '%s' is not an image", img.Filename))
		}
		if len(img.Data) > MaxImageSize {
			return apperr.Validation(fmt.Sprintf("The file '%s' exceeds the maximum size of 5MB", img.Filename))
		}
	}
	return nil
}

func (s *LoadService) saveImages(images []ImageUpload) ([]string, error) {
	paths := make([]string, 0, len(images))
	for _, img := range images {
		path, err := s.files.Save(img.Data, img.Filename)
		if err != nil {
			return nil, apperr.Storage("failed to store image", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (s *LoadService) Create(input CreateLoadInput) (*models.Load, error) {
	// Validate the full batch first so a bad file cannot leave a partial
	// write behind (no orphan load, no stray stored image).
	if err := validateImages(input.Images); err != nil {
		return nil, err
	}
	if err := requireActiveCoversheet(s.db, input.CoversheetRefID); err != nil {
		return nil, err
	}

	paths, err := s.saveImages(input.Images)
	if err != nil {
		return nil, err
	}

	load := models.Load{
		FirstStopTime:   input.FirstStopTime,
		LastStopTime:    input.LastStopTime,
		LandFillTimeIn:  input.LandFillTimeIn,
		LandFillTimeOut: input.LandFillTimeOut,
		GrossWeight:     input.GrossWeight,
		TareWeight:      input.TareWeight,
		Tons:            input.Tons,
		RouteID:         input.RouteID,
		LandFillID:      input.LandFillID,
		MaterialID:      input.MaterialID,
		TicketNumber:    input.TicketNumber,
		Note:            input.Note,
		Images:          datatypes.NewJSONSlice(paths),
		CoversheetRefID: input.CoversheetRefID,
		Active:          true,
		CreatedAt:       time.Now().In(s.loc),
	}

	if input.RouteID != nil {
		if load.RouteNumber, err = s.res.RouteNumber(*input.RouteID); err != nil {
			return nil, apperr.Storage("failed to resolve route number", err)
		}
	}
	if input.LandFillID != nil {
		if load.LandfillName, err = s.res.LandfillName(*input.LandFillID); err != nil {
			return nil, apperr.Storage("failed to resolve landfill name", err)
		}
	}
	if input.MaterialID != nil {
		if load.MaterialName, err = s.res.MaterialName(*input.MaterialID); err != nil {
			return nil, apperr.Storage("failed to resolve material name", err)
		}
	}

	if err := s.db.Create(&load).Error; err != nil {
		return nil, apperr.Storage("failed to create load", err)
	}
	return &load, nil
}

func (s *LoadService) Get(id uint) (*models.Load, error) {
	var load models.Load
	err := s.db.Where("id = ? AND active = ?", id, true).Take(&load).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Load not found")
	}
	if err != nil {
		return nil, apperr.Storage("failed to fetch load", err)
	}
	return &load, nil
}

func (s *LoadService) List() ([]models.Load, error) {
	var loads []models.Load
	if err := s.db.Where("active = ?", true).Find(&loads).Error; err != nil {
		return nil, apperr.Storage("failed to list loads", err)
	}
	return loads, nil
}

// ListByCoversheet returns the loads referencing a coversheet, optionally
// restricted to active ones.
func (s *LoadService) ListByCoversheet(coversheetID uint, activeOnly bool) ([]models.Load, error) {
	q := s.db.Where("coversheet_ref_id = ?", coversheetID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var loads []models.Load
	if err := q.Find(&loads).Error; err != nil {
		return nil, apperr.Storage("failed to list loads by coversheet", err)
	}
	return loads, nil
}

// Update applies a partial update to an active load. New images are appended
// to the stored list, never replacing what is already attached.
func (s *LoadService) Update(id uint, input UpdateLoadInput) (*models.Load, error) {
	if err := validateImages(input.Images); err != nil {
		return nil, err
	}

	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	set := map[string]interface{}{}
	if input.FirstStopTime != nil {
		set["first_stop_time"] = *input.FirstStopTime
	}
	if input.LastStopTime != nil {
		set["last_stop_time"] = *input.LastStopTime
	}
	if input.LandFillTimeIn != nil {
		set["land_fill_time_in"] = *input.LandFillTimeIn
	}
	if input.LandFillTimeOut != nil {
		set["land_fill_time_out"] = *input.LandFillTimeOut
	}
	if input.GrossWeight != nil {
		set["gross_weight"] = *input.GrossWeight
	}
	if input.TareWeight != nil {
		set["tare_weight"] = *input.TareWeight
	}
	if input.Tons != nil {
		set["tons"] = *input.Tons
	}
	if input.TicketNumber != nil {
		set["ticket_number"] = *input.TicketNumber
	}
	if input.Note != nil {
		set["note"] = *input.Note
	}

	if input.RouteID != nil {
		number, err := s.res.RouteNumber(*input.RouteID)
		if err != nil {
			return nil, apperr.Storage("failed to resolve route number", err)
		}
		set["route_id"] = *input.RouteID
		set["route_number"] = number
	}
	if input.LandFillID != nil {
		name, err := s.res.LandfillName(*input.LandFillID)
		if err != nil {
			return nil, apperr.Storage("failed to resolve landfill name", err)
		}
		set["land_fill_id"] = *input.LandFillID
		set["landfill_name"] = name
	}
	if input.MaterialID != nil {
		name, err := s.res.MaterialName(*input.MaterialID)
		if err != nil {
			return nil, apperr.Storage("failed to resolve material name", err)
		}
		set["material_id"] = *input.MaterialID
		set["material_name"] = name
	}

	if len(input.Images) > 0 {
		paths, err := s.saveImages(input.Images)
		if err != nil {
			return nil, err
		}
		set["images"] = append(existing.Images, paths...)
	}

	set["updated_at"] = time.Now().In(s.loc)

	res := s.db.Model(&models.Load{}).
		Where("id = ? AND active = ?", id, true).
		Updates(set)
	if res.Error != nil {
		return nil, apperr.Storage("failed to update load", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Load not found or not active")
	}
	return s.Get(id)
}

// SoftDelete marks an active load inactive. A second call reports not found.
func (s *LoadService) SoftDelete(id uint) error {
	res := s.db.Model(&models.Load{}).
		Where("id = ? AND active = ?", id, true).
		Updates(map[string]interface{}{
			"active":     false,
			"updated_at": time.Now().In(s.loc),
		})
	if res.Error != nil {
		return apperr.Storage("failed to soft delete load", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Load not found or already deleted")
	}
	return nil
}
