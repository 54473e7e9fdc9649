package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/app/services"
	"github.com/nepedu/resulthub/internal/middleware"
)

// AssignmentController handles subject assignment endpoints.
type AssignmentController struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController.
func NewAssignmentController(assignmentService *services.AssignmentService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
	}
}

// ReplaceAssignments replaces a student's subject set
// @Summary Replace subject assignments
// @Description Atomically replaces the full subject set and optional extra-credit subject of a student for one year. Resubmitting the same set is a no-op.
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student system ID"
// @Param request body dto.ReplaceAssignmentsRequest true "Assignment set"
// @Success 200 {object} dto.APIResponse{data=dto.AssignmentSetResponse} "Assignments replaced"
// @Failure 400 {object} dto.ErrorResponse "Unknown subject or grade mismatch"
// @Failure 403 {object} dto.ErrorResponse "Caller may not write to this school"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId}/assignments [put]
func (c *AssignmentController) ReplaceAssignments(ctx *gin.Context) {
	var req dto.ReplaceAssignmentsRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.assignmentService.ReplaceAssignments(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("studentId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// GetAssignments retrieves a student's subject set
// @Summary Get subject assignments
// @Description Retrieves the assignment set and extra-credit subject of a student for one year.
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student system ID"
// @Param academicYear query string true "Academic year label"
// @Success 200 {object} dto.APIResponse "Assignments retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId}/assignments [get]
func (c *AssignmentController) GetAssignments(ctx *gin.Context) {
	academicYear := ctx.Query("academicYear")
	if academicYear == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Academic year is required")
		errorDetail = errorDetail.WithField("academicYear")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	assignments, extra, err := c.assignmentService.GetAssignments(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("studentId"), academicYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: gin.H{
			"assignments": assignments,
			"extraCredit": extra,
		},
		Timestamp: time.Now(),
	})
}
