package controllers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"coversheet_backend/internal/response"
	"coversheet_backend/internal/services"
)

// LoadController handles the multipart load endpoints: regular fields arrive
// as form values, attached scale-ticket photos as "images" file parts.
type LoadController struct {
	svc *services.LoadService
}

func NewLoadController(svc *services.LoadService) *LoadController {
	return &LoadController{svc: svc}
}

// formFloat reads an optional numeric form value.
func formFloat(c *gin.Context, key string) (*float64, bool) {
	raw, ok := c.GetPostForm(key)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		response.BadRequest(c, "Invalid numeric value for "+key)
		return nil, false
	}
	return &v, true
}

// formUint reads an optional id form value.
func formUint(c *gin.Context, key string) (*uint, bool) {
	raw, ok := c.GetPostForm(key)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid id value for "+key)
		return nil, false
	}
	u := uint(v)
	return &u, true
}

// formString reads an optional string form value, nil when absent.
func formString(c *gin.Context, key string) *string {
	raw, ok := c.GetPostForm(key)
	if !ok {
		return nil
	}
	return &raw
}

// readImages pulls the "images" file parts into memory. Browsers submit an
// empty file part when the picker is left untouched; those are skipped.
func readImages(c *gin.Context) ([]services.ImageUpload, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all: treated as no images.
		return nil, true
	}
	var uploads []services.ImageUpload
	for _, fh := range form.File["images"] {
		if fh.Filename == "" {
			continue
		}
		data, err := readFilePart(fh)
		if err != nil {
			response.BadRequest(c, "Failed to read uploaded file '"+fh.Filename+"'")
			return nil, false
		}
		uploads = append(uploads, services.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, true
}

func readFilePart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (ctl *LoadController) Create(c *gin.Context) {
	refID, ok := formUint(c, "coversheet_ref_id")
	if !ok {
		return
	}
	if refID == nil {
		response.BadRequest(c, "coversheet_ref_id is required")
		return
	}

	input := services.CreateLoadInput{
		FirstStopTime:   c.PostForm("firstStopTime"),
		LastStopTime:    c.PostForm("lastStopTime"),
		LandFillTimeIn:  c.PostForm("landFillTimeIn"),
		LandFillTimeOut: c.PostForm("landFillTimeOut"),
		TicketNumber:    c.PostForm("ticketNumber"),
		Note:            c.PostForm("note"),
		CoversheetRefID: *refID,
	}

	if input.GrossWeight, ok = formFloat(c, "grossWeight"); !ok {
		return
	}
	if input.TareWeight, ok = formFloat(c, "tareWeight"); !ok {
		return
	}
	if input.Tons, ok = formFloat(c, "tons"); !ok {
		return
	}
	if input.RouteID, ok = formUint(c, "route_id"); !ok {
		return
	}
	if input.LandFillID, ok = formUint(c, "landFill_id"); !ok {
		return
	}
	if input.MaterialID, ok = formUint(c, "material_id"); !ok {
		return
	}
	if input.Images, ok = readImages(c); !ok {
		return
	}

	load, err := ctl.svc.Create(input)
	if err != nil {
		logrus.WithError(err).Error("CreateLoad failed")
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Load created successfully", load)
}

func (ctl *LoadController) List(c *gin.Context) {
	loads, err := ctl.svc.List()
	if err != nil {
		logrus.WithError(err).Error("ListLoads failed")
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Loads fetched", loads)
}

func (ctl *LoadController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	load, err := ctl.svc.Get(id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Load fetched", load)
}

func (ctl *LoadController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	input := services.UpdateLoadInput{
		FirstStopTime:   formString(c, "firstStopTime"),
		LastStopTime:    formString(c, "lastStopTime"),
		LandFillTimeIn:  formString(c, "landFillTimeIn"),
		LandFillTimeOut: formString(c, "landFillTimeOut"),
		TicketNumber:    formString(c, "ticketNumber"),
		Note:            formString(c, "note"),
	}

	if input.GrossWeight, ok = formFloat(c, "grossWeight"); !ok {
		return
	}
	if input.TareWeight, ok = formFloat(c, "tareWeight"); !ok {
		return
	}
	if input.Tons, ok = formFloat(c, "tons"); !ok {
		return
	}
	if input.RouteID, ok = formUint(c, "route_id"); !ok {
		return
	}
	if input.LandFillID, ok = formUint(c, "landFill_id"); !ok {
		return
	}
	if input.MaterialID, ok = formUint(c, "material_id"); !ok {
		return
	}
	if input.Images, ok = readImages(c); !ok {
		return
	}

	load, err := ctl.svc.Update(id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Load updated successfully", load)
}

func (ctl *LoadController) SoftDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctl.svc.SoftDelete(id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Load deleted (soft delete)", nil)
}

func (ctl *LoadController) ByCoversheet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("coversheet_id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid coversheet ID format")
		return
	}
	loads, lerr := ctl.svc.ListByCoversheet(uint(id), true)
	if lerr != nil {
		response.FromError(c, lerr)
		return
	}
	response.Success(c, http.StatusOK, "Loads for coversheet fetched", loads)
}
