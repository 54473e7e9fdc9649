package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/app/services"
	"github.com/nepedu/resulthub/internal/middleware"
)

// MarksController handles exam result endpoints.
type MarksController struct {
	marksService *services.MarksService
}

// NewMarksController creates a new MarksController.
func NewMarksController(marksService *services.MarksService) *MarksController {
	return &MarksController{
		marksService: marksService,
	}
}

// SaveMarks replaces a student's marks
// @Summary Save marks
// @Description Atomically replaces all marks of a student for one year. Every entry must reference an assigned subject and stay within the subject's full marks.
// @Tags marks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student system ID"
// @Param request body dto.SaveMarksRequest true "Marks"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Marks saved"
// @Failure 400 {object} dto.ErrorResponse "Unassigned subject or marks exceed full marks"
// @Failure 403 {object} dto.ErrorResponse "Caller may not write to this school"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId}/marks [put]
func (c *MarksController) SaveMarks(ctx *gin.Context) {
	var req dto.SaveMarksRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.marksService.SaveMarks(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("studentId"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Marks saved successfully"},
		Timestamp: time.Now(),
	})
}

// GetMarks retrieves a student's marks
// @Summary Get marks
// @Description Retrieves the stored marks of a student for one year with subject details.
// @Tags marks
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student system ID"
// @Param academicYear query string true "Academic year label"
// @Success 200 {object} dto.APIResponse{data=[]models.StudentMark} "Marks retrieved"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId}/marks [get]
func (c *MarksController) GetMarks(ctx *gin.Context) {
	academicYear := ctx.Query("academicYear")
	if academicYear == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Academic year is required")
		errorDetail = errorDetail.WithField("academicYear")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	marks, err := c.marksService.GetMarks(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("studentId"), academicYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      marks,
		Timestamp: time.Now(),
	})
}
