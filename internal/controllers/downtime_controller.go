package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"coversheet_backend/internal/response"
	"coversheet_backend/internal/services"
)

type DowntimeController struct {
	svc *services.DowntimeService
}

func NewDowntimeController(svc *services.DowntimeService) *DowntimeController {
	return &DowntimeController{svc: svc}
}

func (ctl *DowntimeController) Create(c *gin.Context) {
	var input services.CreateDowntimeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid downtime input: "+err.Error())
		return
	}

	dt, err := ctl.svc.Create(input)
	if err != nil {
		logrus.WithError(err).Error("CreateDowntime failed")
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Downtime created successfully", dt)
}

func (ctl *DowntimeController) List(c *gin.Context) {
	downtimes, err := ctl.svc.List()
	if err != nil {
		logrus.WithError(err).Error("ListDowntimes failed")
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Downtimes fetched", downtimes)
}

func (ctl *DowntimeController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	dt, err := ctl.svc.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Downtime fetched", dt)
}

func (ctl *DowntimeController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateDowntimeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid downtime input: "+err.Error())
		return
	}

	dt, err := ctl.svc.Update(id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Downtime updated successfully", dt)
}

func (ctl *DowntimeController) SoftDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.svc.SoftDelete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Downtime deleted (soft delete)", nil)
}

func (ctl *DowntimeController) ByCoversheet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("coversheet_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid coversheet ID format")
		return
	}
	downtimes, lerr := ctl.svc.ListByCoversheet(uint(id), true)
	if lerr != nil {
		response.FromError(c, lerr)
		return
	}
	response.Success(c, http.StatusOK, "Downtimes for coversheet fetched", downtimes)
}
