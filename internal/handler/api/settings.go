package api

import (
	"errors"
	"net/http"

	reqdto "experience-market/internal/handler/dto/request"
	resdto "experience-market/internal/handler/dto/response"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/commands"
	"experience-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsCommands commands.SettingsCommands
	settingsQueries  queries.SettingsQueries
}

func NewSettingsHandler(settingsCommands commands.SettingsCommands, settingsQueries queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{
		settingsCommands: settingsCommands,
		settingsQueries:  settingsQueries,
	}
}

// @Summary List commerce settings
// @Description List all commerce settings with their current values
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.SettingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /settings [get]
func (h *SettingsHandler) List(c *gin.Context) {
	views, err := h.settingsQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettingViews(views))
}

// @Summary Get one commerce setting
// @Description Get a commerce setting by key
// @Tags settings
// @Security BearerAuth
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} resdto.SettingResponse
// @Failure 404 {object} map[string]string
// @Router /settings/{key} [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	view, err := h.settingsQueries.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSettingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Setting not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettingView(view))
}

// @Summary Update a commerce setting
// @Description Update the value of a commerce setting; the write is visible to the next read
// @Tags settings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body reqdto.UpdateSettingRequest true "New value"
// @Success 200 {object} resdto.SettingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /settings/{key} [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.settingsCommands.Set(c.Request.Context(), c.Param("key"), *req.Value)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSettingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Setting not found",
			})
		case errors.Is(err, errs.ErrSettingOutOfRange):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Setting value out of allowed range",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettingView(view))
}
