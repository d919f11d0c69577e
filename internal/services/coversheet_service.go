package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"coversheet_backend/internal/apperr"
	"coversheet_backend/internal/models"
)

// CoversheetService owns the coversheet lifecycle: creation with
// denormalized display fields, protected-field updates, the cascading soft
// delete, the counted cascading hard delete, and the expanded read.
type CoversheetService struct {
	db  *gorm.DB
	res *Resolver
	loc *time.Location
}

func NewCoversheetService(db *gorm.DB, res *Resolver, loc *time.Location) *CoversheetService {
	return &CoversheetService{db: db, res: res, loc: loc}
}

type CreateCoversheetInput struct {
	ClockIn    string `json:"clockIn"`
	LeaveYard  string `json:"leaveYard"`
	BackInYard string `json:"backInYard"`
	ClockOut   string `json:"clockOut"`

	StartMiles *int     `json:"startMiles"`
	EndMiles   *int     `json:"endMiles"`
	Fuel       *float64 `json:"fuel"`

	TruckID  uint `json:"truck_id" binding:"required"`
	RouteID  uint `json:"route_id" binding:"required"`
	DriverID uint `json:"driver_id" binding:"required"`

	Notes string     `json:"notes"`
	Date  *time.Time `json:"date"`
}

// UpdateCoversheetInput deliberately has no date or active field: both are
// immutable through the update endpoint.
type UpdateCoversheetInput struct {
	ClockIn    *string `json:"clockIn"`
	LeaveYard  *string `json:"leaveYard"`
	BackInYard *string `json:"backInYard"`
	ClockOut   *string `json:"clockOut"`

	StartMiles *int     `json:"startMiles"`
	EndMiles   *int     `json:"endMiles"`
	Fuel       *float64 `json:"fuel"`

	TruckID  *uint `json:"truck_id"`
	RouteID  *uint `json:"route_id"`
	DriverID *uint `json:"driver_id"`

	Notes *string `json:"notes"`
}

// ExpandedCoversheet is the composite read model: the coversheet plus its
// active children and the referenced truck/route/driver rows (nil when the
// reference dangles).
type ExpandedCoversheet struct {
	models.Coversheet
	Loads           []models.Load           `json:"loads"`
	Downtimes       []models.Downtime       `json:"downtimes"`
	SpareTruckInfos []models.SpareTruckInfo `json:"spareTruckInfos"`
	Truck           *models.Truck           `json:"truck"`
	Route           *models.Route           `json:"route"`
	Driver          *models.Driver          `json:"driver"`
}

// HardDeleteResult reports how many child rows each cascade step removed.
type HardDeleteResult struct {
	Loads           int64 `json:"loads"`
	Downtimes       int64 `json:"downtimes"`
	SpareTruckInfos int64 `json:"spareTruckInfos"`
}

func (s *CoversheetService) Create(input CreateCoversheetInput) (*models.Coversheet, error) {
	if input.TruckID == 0 || input.RouteID == 0 || input.DriverID == 0 {
		return nil, apperr.Validation("truck_id, route_id and driver_id are required")
	}

	cs := models.Coversheet{
		ClockIn:    input.ClockIn,
		LeaveYard:  input.LeaveYard,
		BackInYard: input.BackInYard,
		ClockOut:   input.ClockOut,
		StartMiles: input.StartMiles,
		EndMiles:   input.EndMiles,
		Fuel:       input.Fuel,
		TruckID:    input.TruckID,
		RouteID:    input.RouteID,
		DriverID:   input.DriverID,
		Notes:      input.Notes,
		Active:     true,
		CreatedAt:  time.Now().In(s.loc),
	}

	// A dangling reference only leaves the display field empty; creation is
	// not blocked on referential existence.
	var err error
	if cs.TruckNumber, err = s.res.TruckNumber(input.TruckID); err != nil {
		return nil, apperr.Storage("failed to resolve truck number", err)
	}
	if cs.RouteNumber, err = s.res.RouteNumber(input.RouteID); err != nil {
		return nil, apperr.Storage("failed to resolve route number", err)
	}
	if cs.DriverName, err = s.res.DriverName(input.DriverID); err != nil {
		return nil, apperr.Storage("failed to resolve driver name", err)
	}

	if input.Date != nil {
		cs.Date = normalizeDate(*input.Date, s.loc)
	} else {
		cs.Date = normalizeDate(time.Now(), s.loc)
	}

	if err := s.db.Create(&cs).Error; err != nil {
		return nil, apperr.Storage("failed to create coversheet", err)
	}
	return &cs, nil
}

// Get returns an active coversheet; soft-deleted ones read as not found.
func (s *CoversheetService) Get(id uint) (*models.Coversheet, error) {
	var cs models.Coversheet
	err := s.db.Where("id = ? AND active = ?", id, true).Take(&cs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Coversheet not found")
	}
	if err != nil {
		return nil, apperr.Storage("failed to fetch coversheet", err)
	}
	return &cs, nil
}

func (s *CoversheetService) List() ([]models.Coversheet, error) {
	var sheets []models.Coversheet
	if err := s.db.Where("active = ?", true).Find(&sheets).Error; err != nil {
		return nil, apperr.Storage("failed to list coversheets", err)
	}
	return sheets, nil
}

// ListByDate returns the active coversheets whose business date falls on the
// given YYYY-MM-DD day in the configured timezone.
func (s *CoversheetService) ListByDate(day string) ([]models.Coversheet, error) {
	start, err := time.ParseInLocation("2006-01-02", day, s.loc)
	if err != nil {
		return nil, apperr.Validation("Invalid date format, use YYYY-MM-DD")
	}
	end := start.AddDate(0, 0, 1)

	var sheets []models.Coversheet
	if err := s.db.
		Where("date >= ? AND date < ? AND active = ?", start, end, true).
		Find(&sheets).Error; err != nil {
		return nil, apperr.Storage("failed to list coversheets by date", err)
	}
	return sheets, nil
}

func (s *CoversheetService) Update(id uint, input UpdateCoversheetInput) (*models.Coversheet, error) {
	set := map[string]interface{}{}
	if input.ClockIn != nil {
		set["clock_in"] = *input.ClockIn
	}
	if input.LeaveYard != nil {
		set["leave_yard"] = *input.LeaveYard
	}
	if input.BackInYard != nil {
		set["back_in_yard"] = *input.BackInYard
	}
	if input.ClockOut != nil {
		set["clock_out"] = *input.ClockOut
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
	if input.Notes != nil {
		set["notes"] = *input.Notes
	}

	// Re-resolve denormalized fields for any foreign key being changed.
	if input.TruckID != nil {
		number, err := s.res.TruckNumber(*input.TruckID)
		if err != nil {
			return nil, apperr.Storage("failed to resolve truck number", err)
		}
		set["truck_id"] = *input.TruckID
		set["truck_number"] = number
	}
	if input.RouteID != nil {
		number, err := s.res.RouteNumber(*input.RouteID)
		if err != nil {
			return nil, apperr.Storage("failed to resolve route number", err)
		}
		set["route_id"] = *input.RouteID
		set["route_number"] = number
	}
	if input.DriverID != nil {
		name, err := s.res.DriverName(*input.DriverID)
		if err != nil {
			return nil, apperr.Storage("failed to resolve driver name", err)
		}
		set["driver_id"] = *input.DriverID
		set["driver_name"] = name
	}

	set["updated_at"] = time.Now().In(s.loc)

	res := s.db.Model(&models.Coversheet{}).
		Where("id = ? AND active = ?", id, true).
		Updates(set)
	if res.Error != nil {
		return nil, apperr.Storage("failed to update coversheet", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Coversheet not found or not active")
	}
	return s.Get(id)
}

// SoftDelete flips the coversheet inactive and deactivates every child row
// referencing it, regardless of the child's current state. The steps are
// individually idempotent; there is no cross-table transaction, and a
// partially applied cascade is healed by running the delete again.
func (s *CoversheetService) SoftDelete(id uint) error {
	if _, err := s.Get(id); err != nil {
		if apperr.StatusOf(err) == 404 {
			return apperr.NotFound("Coversheet not found or already deleted")
		}
		return err
	}

	now := time.Now().In(s.loc)
	deactivate := map[string]interface{}{"active": false, "updated_at": now}

	if err := s.db.Model(&models.Coversheet{}).
		Where("id = ?", id).
		Updates(deactivate).Error; err != nil {
		return apperr.Storage("failed to soft delete coversheet", err)
	}

	for _, child := range []interface{}{&models.Load{}, &models.Downtime{}, &models.SpareTruckInfo{}} {
		if err := s.db.Model(child).
			Where("coversheet_ref_id = ?", id).
			Updates(deactivate).Error; err != nil {
			return apperr.Storage("failed to soft delete child records", err)
		}
	}
	return nil
}

// HardDelete physically removes the coversheet and all of its children,
// active or not. Children go first so a crash mid-sequence can never leave
// countable children under an already-deleted parent.
func (s *CoversheetService) HardDelete(id uint) (*HardDeleteResult, error) {
	var cs models.Coversheet
	err := s.db.Take(&cs, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Coversheet not found")
	}
	if err != nil {
		return nil, apperr.Storage("failed to fetch coversheet", err)
	}

	result := &HardDeleteResult{}

	res := s.db.Where("coversheet_ref_id = ?", id).Delete(&models.Load{})
	if res.Error != nil {
		return nil, apperr.Storage("failed to delete loads", res.Error)
	}
	result.Loads = res.RowsAffected

	res = s.db.Where("coversheet_ref_id = ?", id).Delete(&models.Downtime{})
	if res.Error != nil {
		return nil, apperr.Storage("failed to delete downtimes", res.Error)
	}
	result.Downtimes = res.RowsAffected

	res = s.db.Where("coversheet_ref_id = ?", id).Delete(&models.SpareTruckInfo{})
	if res.Error != nil {
		return nil, apperr.Storage("failed to delete spare truck infos", res.Error)
	}
	result.SpareTruckInfos = res.RowsAffected

	if err := s.db.Delete(&models.Coversheet{}, id).Error; err != nil {
		return nil, apperr.Storage("failed to delete coversheet", err)
	}
	return result, nil
}

// Expand assembles the composite view: the active coversheet, its active
// children, and the referenced truck/route/driver (reference rows have no
// active flag and are fetched as-is, nil when missing).
func (s *CoversheetService) Expand(id uint) (*ExpandedCoversheet, error) {
	cs, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return s.expand(cs)
}

// ListExpanded returns every active coversheet in expanded form.
func (s *CoversheetService) ListExpanded() ([]ExpandedCoversheet, error) {
	sheets, err := s.List()
	if err != nil {
		return nil, err
	}
	out := make([]ExpandedCoversheet, 0, len(sheets))
	for i := range sheets {
		exp, err := s.expand(&sheets[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *exp)
	}
	return out, nil
}

func (s *CoversheetService) expand(cs *models.Coversheet) (*ExpandedCoversheet, error) {
	exp := &ExpandedCoversheet{
		Coversheet:      *cs,
		Loads:           []models.Load{},
		Downtimes:       []models.Downtime{},
		SpareTruckInfos: []models.SpareTruckInfo{},
	}

	if err := s.db.Where("coversheet_ref_id = ? AND active = ?", cs.ID, true).
		Find(&exp.Loads).Error; err != nil {
		return nil, apperr.Storage("failed to fetch loads", err)
	}
	if err := s.db.Where("coversheet_ref_id = ? AND active = ?", cs.ID, true).
		Find(&exp.Downtimes).Error; err != nil {
		return nil, apperr.Storage("failed to fetch downtimes", err)
	}
	if err := s.db.Where("coversheet_ref_id = ? AND active = ?", cs.ID, true).
		Find(&exp.SpareTruckInfos).Error; err != nil {
		return nil, apperr.Storage("failed to fetch spare truck infos", err)
	}

	var truck models.Truck
	switch err := s.db.Take(&truck, cs.TruckID).Error; {
	case err == nil:
		exp.Truck = &truck
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.Storage("failed to fetch truck", err)
	}

	var route models.Route
	switch err := s.db.Take(&route, cs.RouteID).Error; {
	case err == nil:
		exp.Route = &route
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.Storage("failed to fetch route", err)
	}

	var driver models.Driver
	switch err := s.db.Take(&driver, cs.DriverID).Error; {
	case err == nil:
		exp.Driver = &driver
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.Storage("failed to fetch driver", err)
	}

	return exp, nil
}
