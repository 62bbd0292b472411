package handlers

import (
	"net/http"

	request "afclean/internal/adapter/http/dto/request"
	response "afclean/internal/adapter/http/dto/response"
	"afclean/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetSettings godoc
// @Summary  All settings as a key/value map
// @Tags     settings
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	all, err := h.usecase.All(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, all)
}

// GetSetting godoc
// @Summary  One setting value
// @Tags     settings
// @Produce  json
// @Param    key path string true "Setting key"
// @Success  200 {object} response.SettingResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /settings/{key} [get]
func (h *SettingsHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")
	v, found, err := h.usecase.Get(c.Request.Context(), key)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	if !found {
		abortWith(c, errSettingMissing)
		return
	}
	c.JSON(http.StatusOK, response.SettingResponse{Key: key, Value: v})
}

// SetSetting godoc
// @Summary  Upsert a setting (company_name, logo)
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    setting body request.SetSettingRequest true "Setting"
// @Success  200 {object} response.SettingResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /settings [post]
func (h *SettingsHandler) SetSetting(c *gin.Context) {
	var payload request.SetSettingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	if err := h.usecase.Set(c.Request.Context(), payload.Key, payload.Value); err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.SettingResponse{Key: payload.Key, Value: payload.Value})
}
