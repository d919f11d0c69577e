// Package services implements the coversheet aggregate and its child record
// stores on top of an injected gorm handle. Controllers stay thin: they bind
// input, call in here, and render the envelope.
package services

import (
	"time"

	"gorm.io/gorm"

	"coversheet_backend/internal/apperr"
	"coversheet_backend/internal/models"
)

// normalizeDate truncates a moment to midnight of its calendar day in the
// configured business timezone.
func normalizeDate(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// requireActiveCoversheet guards child creation: children may only be
// attached to a coversheet that exists and has not been soft-deleted.
func requireActiveCoversheet(db *gorm.DB, id uint) error {
	if id == 0 {
		return apperr.Validation("coversheet_ref_id is required")
	}
	var n int64
	if err := db.Model(&models.Coversheet{}).
		Where("id = ? AND active = ?", id, true).
		Count(&n).Error; err != nil {
		return apperr.Storage("failed to look up coversheet", err)
	}
	if n == 0 {
		return apperr.Validation("coversheet_ref_id does not reference an active coversheet")
	}
	return nil
}
