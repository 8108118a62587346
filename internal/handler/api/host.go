package api

import (
	"net/http"

	reqdto "experience-market/internal/handler/dto/request"
	resdto "experience-market/internal/handler/dto/response"
	"experience-market/internal/handler/middleware"
	"experience-market/internal/usecase/commands"
	"experience-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HostHandler struct {
	profileCommands commands.HostProfileCommands
	profileQueries  queries.HostProfileQueries
}

func NewHostHandler(profileCommands commands.HostProfileCommands, profileQueries queries.HostProfileQueries) *HostHandler {
	return &HostHandler{
		profileCommands: profileCommands,
		profileQueries:  profileQueries,
	}
}

// @Summary Update host profile
// @Description Upsert the payout profile fields and return the eligibility checklist
// @Tags hosts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateHostProfileRequest true "Profile fields"
// @Success 200 {object} resdto.HostProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /hosts/profile [put]
func (h *HostHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateHostProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	profile, completeness, err := h.profileCommands.Update(c.Request.Context(), userID, commands.UpdateHostProfileParams{
		FullName:      req.FullName,
		Bio:           req.Bio,
		Phone:         req.Phone,
		IBAN:          req.IBAN,
		BankName:      req.BankName,
		AccountHolder: req.AccountHolder,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromHostProfile(profile, completeness))
}

// @Summary Host eligibility
// @Description Report whether the payout profile is complete, with the missing-field checklist
// @Tags hosts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EligibilityResponse
// @Failure 401 {object} map[string]string
// @Router /hosts/eligibility [get]
func (h *HostHandler) Eligibility(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	completeness, err := h.profileQueries.Eligibility(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompleteness(completeness))
}
