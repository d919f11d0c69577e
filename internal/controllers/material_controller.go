package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"coversheet_backend/internal/models"
	"coversheet_backend/internal/response"
)

type MaterialController struct {
	db *gorm.DB
}

func NewMaterialController(db *gorm.DB) *MaterialController {
	return &MaterialController{db: db}
}

func (ctl *MaterialController) Create(c *gin.Context) {
	var input models.Material
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid material input: "+err.Error())
		return
	}

	if err := ctl.db.Create(&input).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not create material: "+err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Material created successfully", input)
}

func (ctl *MaterialController) List(c *gin.Context) {
	var materials []models.Material
	if err := ctl.db.Find(&materials).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not fetch materials")
		return
	}
	response.Success(c, http.StatusOK, "Materials fetched", materials)
}

func (ctl *MaterialController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var material models.Material
	if err := ctl.db.Take(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Material not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Could not fetch material")
		return
	}
	response.Success(c, http.StatusOK, "Material fetched", material)
}

func (ctl *MaterialController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var material models.Material
	if err := ctl.db.Take(&material, id).Error; err != nil {
		response.Error(c, http.StatusNotFound, "Material not found")
		return
	}

	var input struct {
		MaterialName *string `json:"materialName"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if input.MaterialName != nil {
		material.MaterialName = *input.MaterialName
	}

	if err := ctl.db.Save(&material).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not update material")
		return
	}
	response.Success(c, http.StatusOK, "Material updated successfully", material)
}

func (ctl *MaterialController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.db.Delete(&models.Material{}, id).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete material")
		return
	}
	response.Success(c, http.StatusOK, "Material deleted", nil)
}
