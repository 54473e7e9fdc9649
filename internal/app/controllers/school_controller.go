package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/app/services"
	"github.com/nepedu/resulthub/internal/middleware"
)

// SchoolController handles school tenant endpoints.
type SchoolController struct {
	schoolService *services.SchoolService
}

// NewSchoolController creates a new SchoolController.
func NewSchoolController(schoolService *services.SchoolService) *SchoolController {
	return &SchoolController{
		schoolService: schoolService,
	}
}

// parseIDParam reads a numeric path parameter as int64, writing a 400
// response when it is malformed.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid ID")
		errorDetail = errorDetail.WithDetails("ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateSchool handles school creation
// @Summary Create a school
// @Description Registers a new school tenant. Admin only.
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSchoolRequest true "School information"
// @Success 201 {object} dto.APIResponse{data=models.School} "School created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "IEMIS code already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools [post]
func (c *SchoolController) CreateSchool(ctx *gin.Context) {
	var req dto.CreateSchoolRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	school, err := c.schoolService.CreateSchool(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      school,
		Timestamp: time.Now(),
	})
}

// GetSchool retrieves one school
// @Summary Get school details
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param schoolId path int true "School ID"
// @Success 200 {object} dto.APIResponse{data=models.School} "School retrieved"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{schoolId} [get]
func (c *SchoolController) GetSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "schoolId")
	if !ok {
		return
	}

	school, err := c.schoolService.GetSchool(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      school,
		Timestamp: time.Now(),
	})
}

// GetAllSchools lists schools
// @Summary List all schools
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.School} "Schools retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools [get]
func (c *SchoolController) GetAllSchools(ctx *gin.Context) {
	schools, err := c.schoolService.GetAllSchools(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schools,
		Timestamp: time.Now(),
	})
}

// UpdateSchool mutates a school
// @Summary Update a school
// @Description Updates school profile fields. The IEMIS code cannot change. Admin or the owning school account.
// @Tags schools
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param schoolId path int true "School ID"
// @Param request body dto.UpdateSchoolRequest true "School information"
// @Success 200 {object} dto.APIResponse{data=models.School} "School updated"
// @Failure 403 {object} dto.ErrorResponse "Caller may not update this school"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{schoolId} [put]
func (c *SchoolController) UpdateSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "schoolId")
	if !ok {
		return
	}

	var req dto.UpdateSchoolRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	school, err := c.schoolService.UpdateSchool(ctx.Request.Context(), middleware.CurrentUser(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      school,
		Timestamp: time.Now(),
	})
}

// DeleteSchool removes a school
// @Summary Delete a school
// @Description Removes a school that has no students or users. A blocked deletion reports the dependent counts. Admin only.
// @Tags schools
// @Produce json
// @Security BearerAuth
// @Param schoolId path int true "School ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "School deleted"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 409 {object} dto.ErrorResponse "School has dependent students or users"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{schoolId} [delete]
func (c *SchoolController) DeleteSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "schoolId")
	if !ok {
		return
	}

	if err := c.schoolService.DeleteSchool(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "School deleted successfully"},
		Timestamp: time.Now(),
	})
}
