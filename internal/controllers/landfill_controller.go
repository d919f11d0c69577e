package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"coversheet_backend/internal/models"
	"coversheet_backend/internal/response"
)

type LandfillController struct {
	db *gorm.DB
}

func NewLandfillController(db *gorm.DB) *LandfillController {
	return &LandfillController{db: db}
}

func (ctl *LandfillController) Create(c *gin.Context) {
	var input models.Landfill
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid landfill input: "+err.Error())
		return
	}

	if err := ctl.db.Create(&input).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not create landfill: "+err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Landfill created successfully", input)
}

func (ctl *LandfillController) List(c *gin.Context) {
	var landfills []models.Landfill
	if err := ctl.db.Find(&landfills).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not fetch landfills")
		return
	}
	response.Success(c, http.StatusOK, "Landfills fetched", landfills)
}

func (ctl *LandfillController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var landfill models.Landfill
	if err := ctl.db.Take(&landfill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Landfill not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Could not fetch landfill")
		return
	}
	response.Success(c, http.StatusOK, "Landfill fetched", landfill)
}

func (ctl *LandfillController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var landfill models.Landfill
	if err := ctl.db.Take(&landfill, id).Error; err != nil {
		response.Error(c, http.StatusNotFound, "Landfill not found")
		return
	}

	var input struct {
		LandfillName *string `json:"landfillName"`
		Address      *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if input.LandfillName != nil {
		landfill.LandfillName = *input.LandfillName
	}
	if input.Address != nil {
		landfill.Address = *input.Address
	}

	if err := ctl.db.Save(&landfill).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not update landfill")
		return
	}
	response.Success(c, http.StatusOK, "Landfill updated successfully", landfill)
}

func (ctl *LandfillController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.db.Delete(&models.Landfill{}, id).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete landfill")
		return
	}
	response.Success(c, http.StatusOK, "Landfill deleted", nil)
}
