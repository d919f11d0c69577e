package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"coversheet_backend/internal/models"
	"coversheet_backend/internal/response"
)

type DriverController struct {
	db *gorm.DB
}

func NewDriverController(db *gorm.DB) *DriverController {
	return &DriverController{db: db}
}

func (ctl *DriverController) Create(c *gin.Context) {
	var input models.Driver
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid driver input: "+err.Error())
		return
	}

	if err := ctl.db.Create(&input).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not create driver: "+err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Driver created successfully", input)
}

func (ctl *DriverController) List(c *gin.Context) {
	var drivers []models.Driver
	if err := ctl.db.Find(&drivers).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not fetch drivers")
		return
	}
	response.Success(c, http.StatusOK, "Drivers fetched", drivers)
}

func (ctl *DriverController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var driver models.Driver
	if err := ctl.db.Take(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Driver not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Could not fetch driver")
		return
	}
	response.Success(c, http.StatusOK, "Driver fetched", driver)
}

func (ctl *DriverController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var driver models.Driver
	if err := ctl.db.Take(&driver, id).Error; err != nil {
		response.Error(c, http.StatusNotFound, "Driver not found")
		return
	}

	var input struct {
		Name          *string `json:"name"`
		Phone         *string `json:"phone"`
		LicenseNumber *string `json:"licenseNumber"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.Name != nil {
		driver.Name = *input.Name
	}
	if input.Phone != nil {
		driver.Phone = *input.Phone
	}
	if input.LicenseNumber != nil {
		driver.LicenseNumber = *input.LicenseNumber
	}

	if err := ctl.db.Save(&driver).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not update driver")
		return
	}
	response.Success(c, http.StatusOK, "Driver updated successfully", driver)
}

func (ctl *DriverController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.db.Delete(&models.Driver{}, id).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete driver")
		return
	}
	response.Success(c, http.StatusOK, "Driver deleted", nil)
}
