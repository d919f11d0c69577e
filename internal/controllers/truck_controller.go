package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"coversheet_backend/internal/models"
	"coversheet_backend/internal/response"
)

// TruckController is plain reference CRUD; the core only reads trucks for
// existence checks and truckNumber denormalization.
type TruckController struct {
	db *gorm.DB
}

func NewTruckController(db *gorm.DB) *TruckController {
	return &TruckController{db: db}
}

func (ctl *TruckController) Create(c *gin.Context) {
	var input models.Truck
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid truck input: "+err.Error())
		return
	}

	if err := ctl.db.Create(&input).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not create truck: "+err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Truck created successfully", input)
}

func (ctl *TruckController) List(c *gin.Context) {
	var trucks []models.Truck
	if err := ctl.db.Find(&trucks).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not fetch trucks")
		return
	}
	response.Success(c, http.StatusOK, "Trucks fetched", trucks)
}

func (ctl *TruckController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var truck models.Truck
	if err := ctl.db.Take(&truck, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Truck not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Could not fetch truck")
		return
	}
	response.Success(c, http.StatusOK, "Truck fetched", truck)
}

func (ctl *TruckController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var truck models.Truck
	if err := ctl.db.Take(&truck, id).Error; err != nil {
		response.Error(c, http.StatusNotFound, "Truck not found")
		return
	}

	var input struct {
		TruckNumber  *string `json:"truckNumber"`
		LicensePlate *string `json:"licensePlate"`
		Make         *string `json:"make"`
		Model        *string `json:"model"`
		Year         *int    `json:"year"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.TruckNumber != nil {
		truck.TruckNumber = *input.TruckNumber
	}
	if input.LicensePlate != nil {
		truck.LicensePlate = *input.LicensePlate
	}
	if input.Make != nil {
		truck.Make = *input.Make
	}
	if input.Model != nil {
		truck.Model = *input.Model
	}
	if input.Year != nil {
		truck.Year = *input.Year
	}

	if err := ctl.db.Save(&truck).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not update truck")
		return
	}
	response.Success(c, http.StatusOK, "Truck updated successfully", truck)
}

func (ctl *TruckController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.db.Delete(&models.Truck{}, id).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete truck")
		return
	}
	response.Success(c, http.StatusOK, "Truck deleted", nil)
}
