package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"coversheet_backend/internal/response"
	"coversheet_backend/internal/services"
)

type SpareTruckController struct {
	svc *services.SpareTruckService
}

func NewSpareTruckController(svc *services.SpareTruckService) *SpareTruckController {
	return &SpareTruckController{svc: svc}
}

func (ctl *SpareTruckController) Create(c *gin.Context) {
	var input services.CreateSpareTruckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid spare truck info input: "+err.Error())
		return
	}

	info, err := ctl.svc.Create(input)
	if err != nil {
		logrus.WithError(err).Error("CreateSpareTruckInfo failed")
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "SpareTruckInfo created successfully", info)
}

func (ctl *SpareTruckController) List(c *gin.Context) {
	infos, err := ctl.svc.List()
	if err != nil {
		logrus.WithError(err).Error("ListSpareTruckInfos failed")
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "SpareTruckInfos fetched", infos)
}

func (ctl *SpareTruckController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	info, err := ctl.svc.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "SpareTruckInfo fetched", info)
}

func (ctl *SpareTruckController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var input services.UpdateSpareTruckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid spare truck info input: "+err.Error())
		return
	}

	info, err := ctl.svc.Update(id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "SpareTruckInfo updated successfully", info)
}

func (ctl *SpareTruckController) SoftDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.svc.SoftDelete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "SpareTruckInfo deleted (soft delete)", nil)
}

func (ctl *SpareTruckController) ByCoversheet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("coversheet_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid coversheet ID format")
		return
	}
	infos, lerr := ctl.svc.ListByCoversheet(uint(id), true)
	if lerr != nil {
		response.FromError(c, lerr)
		return
	}
	response.Success(c, http.StatusOK, "SpareTruckInfos for coversheet fetched", infos)
}
