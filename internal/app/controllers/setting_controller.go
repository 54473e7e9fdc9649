package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nepedu/resulthub/internal/app/models/dto"
	"github.com/nepedu/resulthub/internal/app/services"
	"github.com/nepedu/resulthub/internal/middleware"
)

// SettingController handles global application setting endpoints.
type SettingController struct {
	settingService *services.SettingService
}

// NewSettingController creates a new SettingController.
func NewSettingController(settingService *services.SettingService) *SettingController {
	return &SettingController{
		settingService: settingService,
	}
}

// UpsertSetting writes one setting
// @Summary Upsert a setting
// @Description Writes one application setting by key. Admin only.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Param request body dto.UpsertSettingRequest true "Setting value (any JSON)"
// @Success 200 {object} dto.APIResponse{data=models.ApplicationSetting} "Setting written"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/{key} [put]
func (c *SettingController) UpsertSetting(ctx *gin.Context) {
	var req dto.UpsertSettingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	setting, err := c.settingService.UpsertSetting(ctx.Request.Context(), ctx.Param("key"), req.Value)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      setting,
		Timestamp: time.Now(),
	})
}

// GetSetting retrieves one setting
// @Summary Get a setting
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} dto.APIResponse{data=models.ApplicationSetting} "Setting retrieved"
// @Failure 404 {object} dto.ErrorResponse "Setting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/{key} [get]
func (c *SettingController) GetSetting(ctx *gin.Context) {
	setting, err := c.settingService.GetSetting(ctx.Request.Context(), ctx.Param("key"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      setting,
		Timestamp: time.Now(),
	})
}

// GetAllSettings lists settings
// @Summary List settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.ApplicationSetting} "Settings retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings [get]
func (c *SettingController) GetAllSettings(ctx *gin.Context) {
	settings, err := c.settingService.GetAllSettings(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      settings,
		Timestamp: time.Now(),
	})
}

// DeleteSetting removes a setting
// @Summary Delete a setting
// @Description Removes an application setting by key. Admin only.
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Setting deleted"
// @Failure 404 {object} dto.ErrorResponse "Setting not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/{key} [delete]
func (c *SettingController) DeleteSetting(ctx *gin.Context) {
	if err := c.settingService.DeleteSetting(ctx.Request.Context(), ctx.Param("key")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Setting deleted successfully"},
		Timestamp: time.Now(),
	})
}
