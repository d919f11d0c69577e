package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"coversheet_backend/internal/response"
	"coversheet_backend/internal/services"
)

// CoversheetController exposes the coversheet aggregate over HTTP. The child
// services are only consulted for the nested by-coversheet listings; every
// cascading effect lives in the service.
type CoversheetController struct {
	svc       *services.CoversheetService
	loads     *services.LoadService
	downtimes *services.DowntimeService
	spares    *services.SpareTruckService
}

func NewCoversheetController(
	svc *services.CoversheetService,
	loads *services.LoadService,
	downtimes *services.DowntimeService,
	spares *services.SpareTruckService,
) *CoversheetController {
	return &CoversheetController{svc: svc, loads: loads, downtimes: downtimes, spares: spares}
}

// parseID parses a numeric id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}

func (ctl *CoversheetController) Create(c *gin.Context) {
	var input services.CreateCoversheetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid coversheet input: "+err.Error())
		return
	}

	cs, err := ctl.svc.Create(input)
	if err != nil {
		logrus.WithError(err).Error("CreateCoversheet failed")
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Coversheet created successfully", cs)
}

func (ctl *CoversheetController) List(c *gin.Context) {
	sheets, err := ctl.svc.List()
	if err != nil {
		logrus.WithError(err).Error("ListCoversheets failed")
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Coversheets fetched", sheets)
}

func (ctl *CoversheetController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cs, err := ctl.svc.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Coversheet fetched", cs)
}

func (ctl *CoversheetController) ListByDate(c *gin.Context) {
	day := c.Param("date")
	sheets, err := ctl.svc.ListByDate(day)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Coversheets for "+day+" fetched", sheets)
}

func (ctl *CoversheetController) ListWithDetails(c *gin.Context) {
	sheets, err := ctl.svc.ListExpanded()
	if err != nil {
		logrus.WithError(err).Error("ListCoversheetsWithDetails failed")
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Coversheets with details fetched", sheets)
}

func (ctl *CoversheetController) GetWithDetails(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	exp, err := ctl.svc.Expand(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Coversheet with details fetched", exp)
}

func (ctl *CoversheetController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateCoversheetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid coversheet input: "+err.Error())
		return
	}

	cs, err := ctl.svc.Update(id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Coversheet updated successfully", cs)
}

func (ctl *CoversheetController) SoftDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.svc.SoftDelete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Coversheet deleted (soft delete)", nil)
}

// HardDelete is registered behind RequireAuth; it physically removes the
// coversheet and its children and reports the per-type counts.
func (ctl *CoversheetController) HardDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, err := ctl.svc.HardDelete(id)
	if err != nil {
		logrus.WithError(err).WithField("coversheet_id", id).Error("HardDeleteCoversheet failed")
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Coversheet permanently deleted", result)
}

// LoadsByCoversheet lists every load under an active coversheet, soft-deleted
// ones included, matching the nested listing the frontend uses for audits.
func (ctl *CoversheetController) LoadsByCoversheet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := ctl.svc.Get(id); err != nil {
		response.FromError(c, err)
		return
	}
	loads, err := ctl.loads.ListByCoversheet(id, false)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Loads fetched", loads)
}

func (ctl *CoversheetController) DowntimesByCoversheet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := ctl.svc.Get(id); err != nil {
		response.FromError(c, err)
		return
	}
	downtimes, err := ctl.downtimes.ListByCoversheet(id, false)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Downtimes fetched", downtimes)
}

func (ctl *CoversheetController) SpareTruckInfosByCoversheet(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if _, err := ctl.svc.Get(id); err != nil {
		response.FromError(c, err)
		return
	}
	infos, err := ctl.spares.ListByCoversheet(id, false)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "SpareTruckInfos fetched", infos)
}
