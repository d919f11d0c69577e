package controllers

import (
	"encoding/binary"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"

	"coversheet_backend/internal/models"
	"coversheet_backend/internal/response"
)

// RouteResponse mirrors models.Route with the service-area geometry rendered
// as a GeoJSON string instead of raw WKB.
type RouteResponse struct {
	ID          uint      `json:"id"`
	RouteNumber string    `json:"routeNumber"`
	Description string    `json:"description"`
	Geometry    string    `json:"geometry,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toRouteResponse(route models.Route) RouteResponse {
	jsonGeom, _ := convertWKBToGeoJSON(route.Geometry)
	return RouteResponse{
		ID:          route.ID,
		RouteNumber: route.RouteNumber,
		Description: route.Description,
		Geometry:    jsonGeom,
		CreatedAt:   route.CreatedAt,
		UpdatedAt:   route.UpdatedAt,
	}
}

// parseAndConvertGeometry parses a GeoJSON string into a geom.T and returns WKB bytes
func parseAndConvertGeometry(raw string) ([]byte, error) {
	if raw == "" {
		return nil, nil
	}
	var g geom.T
	if err := gjson.Unmarshal([]byte(raw), &g); err != nil {
		return nil, err
	}
	return wkb.Marshal(g, binary.LittleEndian)
}

// convertWKBToGeoJSON converts WKB bytes into a GeoJSON string
func convertWKBToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type RouteController struct {
	db *gorm.DB
}

func NewRouteController(db *gorm.DB) *RouteController {
	return &RouteController{db: db}
}

func (ctl *RouteController) Create(c *gin.Context) {
	var input struct {
		RouteNumber string `json:"routeNumber" binding:"required"`
		Description string `json:"description"`
		Geometry    string `json:"geometry"` // optional GeoJSON
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid route input: "+err.Error())
		return
	}

	wkbBytes, err := parseAndConvertGeometry(input.Geometry)
	if err != nil {
		logrus.WithError(err).Warn("CreateRoute: invalid geometry payload")
		response.BadRequest(c, "Invalid GeoJSON geometry: "+err.Error())
		return
	}

	route := models.Route{
		RouteNumber: input.RouteNumber,
		Description: input.Description,
		Geometry:    wkbBytes,
	}
	if err := ctl.db.Create(&route).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not create route: "+err.Error())
		return
	}
	response.Success(c, http.StatusCreated, "Route created successfully", toRouteResponse(route))
}

func (ctl *RouteController) List(c *gin.Context) {
	var routes []models.Route
	if err := ctl.db.Find(&routes).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not fetch routes")
		return
	}
	out := make([]RouteResponse, 0, len(routes))
	for _, route := range routes {
		out = append(out, toRouteResponse(route))
	}
	response.Success(c, http.StatusOK, "Routes fetched", out)
}

func (ctl *RouteController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var route models.Route
	if err := ctl.db.Take(&route, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "Route not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Could not fetch route")
		return
	}
	response.Success(c, http.StatusOK, "Route fetched", toRouteResponse(route))
}

func (ctl *RouteController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var route models.Route
	if err := ctl.db.Take(&route, id).Error; err != nil {
		response.Error(c, http.StatusNotFound, "Route not found")
		return
	}

	var input struct {
		RouteNumber *string `json:"routeNumber"`
		Description *string `json:"description"`
		Geometry    *string `json:"geometry"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if input.RouteNumber != nil {
		route.RouteNumber = *input.RouteNumber
	}
	if input.Description != nil {
		route.Description = *input.Description
	}
	if input.Geometry != nil {
		wkbBytes, err := parseAndConvertGeometry(*input.Geometry)
		if err != nil {
			response.BadRequest(c, "Invalid GeoJSON geometry: "+err.Error())
			return
		}
		route.Geometry = wkbBytes
	}

	if err := ctl.db.Save(&route).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Could not update route")
		return
	}
	response.Success(c, http.StatusOK, "Route updated successfully", toRouteResponse(route))
}

func (ctl *RouteController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.db.Delete(&models.Route{}, id).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to delete route")
		return
	}
	response.Success(c, http.StatusOK, "Route deleted", nil)
}
