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

// SummaryController handles marksheet and dashboard aggregate endpoints.
type SummaryController struct {
	summaryService *services.SummaryService
}

// NewSummaryController creates a new SummaryController.
func NewSummaryController(summaryService *services.SummaryService) *SummaryController {
	return &SummaryController{
		summaryService: summaryService,
	}
}

// requireYearQuery reads the academicYear query parameter, writing a 400
// response when it is missing.
func requireYearQuery(ctx *gin.Context) (string, bool) {
	academicYear := ctx.Query("academicYear")
	if academicYear == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Academic year is required")
		errorDetail = errorDetail.WithField("academicYear")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	return academicYear, true
}

// GetStudentResult retrieves a marksheet
// @Summary Get student result
// @Description Computes the full marksheet of a student for one year: per-subject grade points, letter grades, and overall GPA. Students with no graded subjects are classified NG. Omitting academicYear uses the configured current academic year.
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student system ID"
// @Param academicYear query string false "Academic year label (defaults to the current academic year setting)"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResult} "Result computed"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId}/result [get]
func (c *SummaryController) GetStudentResult(ctx *gin.Context) {
	result, err := c.summaryService.StudentResult(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("studentId"), ctx.Query("academicYear"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetSchoolSummary retrieves a school dashboard aggregate
// @Summary Get school summary
// @Description Computes the dashboard aggregate of a school for one year server-side: demographic counts, average GPA, subject popularity, and data-entry alerts. Omitting academicYear uses the configured current academic year.
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Param schoolId path int true "School ID"
// @Param academicYear query string false "Academic year label (defaults to the current academic year setting)"
// @Success 200 {object} dto.APIResponse{data=dto.SchoolSummary} "Summary computed"
// @Failure 403 {object} dto.ErrorResponse "Caller may not read this school"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{schoolId}/summary [get]
func (c *SummaryController) GetSchoolSummary(ctx *gin.Context) {
	schoolID, err := strconv.ParseInt(ctx.Param("schoolId"), 10, 64)
	if err != nil || schoolID < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid school ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	summary, err := c.summaryService.SchoolSummary(ctx.Request.Context(), middleware.CurrentUser(ctx), schoolID, ctx.Query("academicYear"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      summary,
		Timestamp: time.Now(),
	})
}

// GetAdminSummary retrieves the cross-tenant aggregate
// @Summary Get admin summary
// @Description Computes the cross-tenant aggregate for one year. Omitting academicYear uses the configured current academic year. Admin only.
// @Tags summaries
// @Produce json
// @Security BearerAuth
// @Param academicYear query string false "Academic year label (defaults to the current academic year setting)"
// @Success 200 {object} dto.APIResponse{data=dto.AdminSummary} "Summary computed"
// @Failure 403 {object} dto.ErrorResponse "Admin access required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/summary [get]
func (c *SummaryController) GetAdminSummary(ctx *gin.Context) {
	summary, err := c.summaryService.AdminSummary(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Query("academicYear"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      summary,
		Timestamp: time.Now(),
	})
}
