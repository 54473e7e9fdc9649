package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/app/services"
	"github.com/nepedu/resulthub/internal/middleware"
	"github.com/nepedu/resulthub/internal/pkg/excel"
)

// ExcelController handles roster workbook import and export endpoints.
type ExcelController struct {
	excelService *services.ExcelService
}

// NewExcelController creates a new ExcelController.
func NewExcelController(excelService *services.ExcelService) *ExcelController {
	return &ExcelController{
		excelService: excelService,
	}
}

// ImportStudents parses an uploaded roster workbook
// @Summary Import students from Excel
// @Description Parses an uploaded .xls/.xlsx workbook (max 5MB, form field "excelFile") and returns its rows keyed by header for client-side review, with the resolved target school attached to every row. School accounts import into their own school; admins pass schoolId. Nothing is persisted.
// @Tags excel
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param excelFile formData file true "Workbook file"
// @Param schoolId formData int false "Target school ID (required for admins)"
// @Success 200 {object} dto.APIResponse{data=dto.ExcelImportResponse} "Rows parsed"
// @Failure 400 {object} dto.ErrorResponse "Unsupported file, oversized upload, or empty workbook"
// @Failure 403 {object} dto.ErrorResponse "Caller may not import into this school"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /excel/import [post]
func (c *ExcelController) ImportStudents(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile(excel.UploadFieldName)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Workbook file is required")
		errorDetail = errorDetail.WithField(excel.UploadFieldName).WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if fileHeader.Size > excel.MaxUploadSize {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Workbook exceeds the 5MB upload limit")
		errorDetail = errorDetail.WithField(excel.UploadFieldName)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if !excel.AllowedExtension(fileHeader.Filename) {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Only .xls and .xlsx files are supported")
		errorDetail = errorDetail.WithField(excel.UploadFieldName)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var schoolID int64
	if raw := ctx.PostForm("schoolId"); raw != "" {
		schoolID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || schoolID < 1 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid school ID")
			errorDetail = errorDetail.WithField("schoolId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	result, err := c.excelService.ParseStudentImport(ctx.Request.Context(), middleware.CurrentUser(ctx), schoolID, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// ExportRoster downloads a school roster workbook
// @Summary Export student roster to Excel
// @Description Builds a workbook of every student of a school in a year and streams it as a download.
// @Tags excel
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param schoolId path int true "School ID"
// @Param academicYear query string true "Academic year label"
// @Success 200 {file} binary "Workbook"
// @Failure 403 {object} dto.ErrorResponse "Caller may not read this school"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{schoolId}/roster/export [get]
func (c *ExcelController) ExportRoster(ctx *gin.Context) {
	schoolID, err := strconv.ParseInt(ctx.Param("schoolId"), 10, 64)
	if err != nil || schoolID < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid school ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	academicYear, ok := requireYearQuery(ctx)
	if !ok {
		return
	}

	f, filename, err := c.excelService.ExportRoster(ctx.Request.Context(), middleware.CurrentUser(ctx), schoolID, academicYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(ctx.Writer); err != nil {
		middleware.HandleAPIError(ctx, err)
	}
}
