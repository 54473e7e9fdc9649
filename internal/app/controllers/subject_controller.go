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

// SubjectController handles the shared subject catalog endpoints.
type SubjectController struct {
	subjectService *services.SubjectService
}

// NewSubjectController creates a new SubjectController.
func NewSubjectController(subjectService *services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// CreateSubject adds a subject
// @Summary Create a subject
// @Description Adds a subject to the shared catalog. Admin only.
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject created"
// @Failure 400 {object} dto.ErrorResponse "Invalid marks split"
// @Failure 409 {object} dto.ErrorResponse "Subject with this name and grade exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	subject, err := c.subjectService.CreateSubject(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}

// GetSubject retrieves one subject
// @Summary Get subject details
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject retrieved"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubject(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}

// GetAllSubjects lists the catalog
// @Summary List subjects
// @Description Retrieves the subject catalog, optionally filtered by grade.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param grade query int false "Grade (11 or 12)"
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subjects retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects [get]
func (c *SubjectController) GetAllSubjects(ctx *gin.Context) {
	grade, _ := strconv.Atoi(ctx.DefaultQuery("grade", "0"))

	subjects, err := c.subjectService.GetAllSubjects(ctx.Request.Context(), grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subjects,
		Timestamp: time.Now(),
	})
}

// UpdateSubject mutates a subject
// @Summary Update a subject
// @Description Updates a catalog subject. Admin only.
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Param request body dto.UpdateSubjectRequest true "Subject information"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject updated"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 409 {object} dto.ErrorResponse "Subject with this name and grade exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	subject, err := c.subjectService.UpdateSubject(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      subject,
		Timestamp: time.Now(),
	})
}

// DeleteSubject removes a subject
// @Summary Delete a subject
// @Description Removes a catalog subject. Subjects with recorded marks cannot be deleted. Admin only.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Subject deleted"
// @Failure 404 {object} dto.ErrorResponse "Subject not found"
// @Failure 409 {object} dto.ErrorResponse "Subject has recorded marks"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Subject deleted successfully"},
		Timestamp: time.Now(),
	})
}
