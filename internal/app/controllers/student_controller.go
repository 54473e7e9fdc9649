package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/app/services"
	"github.com/nepedu/resulthub/internal/middleware"
	"github.com/nepedu/resulthub/internal/pkg/helpers"
)

// StudentController handles student record endpoints.
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent registers a student
// @Summary Create a student
// @Description Registers a student under a school the caller may access.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or inactive year"
// @Failure 403 {object} dto.ErrorResponse "Caller may not write to this school"
// @Failure 409 {object} dto.ErrorResponse "Duplicate symbol number for school and year"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), middleware.CurrentUser(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetStudent retrieves one student
// @Summary Get student details
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student system ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student retrieved"
// @Failure 403 {object} dto.ErrorResponse "Caller may not read this school"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// ListStudents lists students of a school
// @Summary List students
// @Description Retrieves a page of students for a school, optionally filtered by academic year and grade.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param schoolId query int true "School ID"
// @Param academicYear query string false "Academic year label"
// @Param grade query int false "Grade (11 or 12)"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PagedData} "Students retrieved"
// @Failure 403 {object} dto.ErrorResponse "Caller may not read this school"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	schoolID, err := strconv.ParseInt(ctx.Query("schoolId"), 10, 64)
	if err != nil || schoolID < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid school ID")
		errorDetail = errorDetail.WithField("schoolId").WithDetails("schoolId query parameter is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grade, _ := strconv.Atoi(ctx.DefaultQuery("grade", "0"))
	page, size := helpers.ParsePaginationParams(ctx)

	filter := dto.StudentListFilter{
		SchoolID:     schoolID,
		AcademicYear: ctx.Query("academicYear"),
		Grade:        grade,
		Page:         page,
		Size:         size,
	}

	students, pagination, err := c.studentService.ListStudents(ctx.Request.Context(), middleware.CurrentUser(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedData{
			Items:      students,
			Pagination: pagination,
		},
		Timestamp: time.Now(),
	})
}

// UpdateStudent mutates a student
// @Summary Update a student
// @Description Updates a student record. School and academic year are fixed at creation.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student system ID"
// @Param request body dto.UpdateStudentRequest true "Student information"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Duplicate symbol number"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("studentId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Description Removes a student along with their assignments and marks.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student system ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), middleware.CurrentUser(ctx), ctx.Param("studentId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student deleted successfully"},
		Timestamp: time.Now(),
	})
}
