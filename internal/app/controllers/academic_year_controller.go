package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/app/services"
	"github.com/nepedu/resulthub/internal/middleware"
)

// AcademicYearController handles academic year endpoints.
type AcademicYearController struct {
	yearService *services.AcademicYearService
}

// NewAcademicYearController creates a new AcademicYearController.
func NewAcademicYearController(yearService *services.AcademicYearService) *AcademicYearController {
	return &AcademicYearController{
		yearService: yearService,
	}
}

// CreateYear adds an academic year
// @Summary Create an academic year
// @Description Adds a selectable exam year. Admin only.
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAcademicYearRequest true "Year information"
// @Success 201 {object} dto.APIResponse{data=models.AcademicYear} "Year created"
// @Failure 409 {object} dto.ErrorResponse "Year already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years [post]
func (c *AcademicYearController) CreateYear(ctx *gin.Context) {
	var req dto.CreateAcademicYearRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	year, err := c.yearService.CreateYear(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      year,
		Timestamp: time.Now(),
	})
}

// GetYears lists academic years
// @Summary List academic years
// @Description Lists academic years. School accounts only receive active years.
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicYear} "Years retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years [get]
func (c *AcademicYearController) GetYears(ctx *gin.Context) {
	years, err := c.yearService.GetYears(ctx.Request.Context(), middleware.CurrentUser(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      years,
		Timestamp: time.Now(),
	})
}

// UpdateYear toggles a year's active flag
// @Summary Update an academic year
// @Description Toggles the active flag of a year. Admin only.
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Year ID"
// @Param request body dto.UpdateAcademicYearRequest true "Active flag"
// @Success 200 {object} dto.APIResponse{data=models.AcademicYear} "Year updated"
// @Failure 404 {object} dto.ErrorResponse "Year not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years/{id} [put]
func (c *AcademicYearController) UpdateYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAcademicYearRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	year, err := c.yearService.UpdateYear(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      year,
		Timestamp: time.Now(),
	})
}

// DeleteYear removes an academic year
// @Summary Delete an academic year
// @Description Removes an academic year. Admin only.
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Year ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Year deleted"
// @Failure 404 {object} dto.ErrorResponse "Year not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /academic-years/{id} [delete]
func (c *AcademicYearController) DeleteYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.yearService.DeleteYear(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Academic year deleted successfully"},
		Timestamp: time.Now(),
	})
}
