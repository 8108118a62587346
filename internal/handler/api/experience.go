package api

import (
	"errors"
	"net/http"

	"experience-market/internal/domain/hostprofile"
	reqdto "experience-market/internal/handler/dto/request"
	resdto "experience-market/internal/handler/dto/response"
	"experience-market/internal/handler/middleware"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/commands"
	"experience-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExperienceHandler struct {
	experienceCommands commands.ExperienceCommands
	experienceQueries  queries.ExperienceQueries
}

func NewExperienceHandler(experienceCommands commands.ExperienceCommands, experienceQueries queries.ExperienceQueries) *ExperienceHandler {
	return &ExperienceHandler{
		experienceCommands: experienceCommands,
		experienceQueries:  experienceQueries,
	}
}

// @Summary Create experience
// @Description Publish a new experience listing; requires a complete payout profile
// @Tags experiences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateExperienceRequest true "Experience request"
// @Success 201 {object} resdto.ExperienceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /experiences [post]
func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.experienceCommands.Create(c.Request.Context(), hostID, commands.CreateExperienceParams{
		Title:      req.Title,
		PriceCents: req.PriceCents,
		Currency:   req.Currency,
	})
	if err != nil {
		var incomplete *hostprofile.IncompleteProfileError
		switch {
		case errors.As(err, &incomplete):
			// Render the checklist so the host knows exactly what to fill in.
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":          "Host profile incomplete",
				"missing_fields": incomplete.MissingFields,
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid experience data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromExperienceView(view))
}

// @Summary Get experience
// @Description Get an experience listing by ID
// @Tags experiences
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} resdto.ExperienceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /experiences/{id} [get]
func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid experience ID format",
		})
		return
	}

	view, err := h.experienceQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrExperienceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Experience not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromExperienceView(view))
}
