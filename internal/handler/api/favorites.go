package api

import (
	"errors"
	"net/http"

	reqdto "experience-market/internal/handler/dto/request"
	resdto "experience-market/internal/handler/dto/response"
	"experience-market/internal/handler/middleware"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FavoritesHandler struct {
	favoritesCommands commands.FavoritesCommands
	favoritesRepo     commands.FavoritesRepository
}

func NewFavoritesHandler(favoritesCommands commands.FavoritesCommands, favoritesRepo commands.FavoritesRepository) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesCommands: favoritesCommands,
		favoritesRepo:     favoritesRepo,
	}
}

// @Summary List favorites
// @Description List the current user's favorite experiences
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.FavoritesResponse
// @Failure 401 {object} map[string]string
// @Router /favorites [get]
func (h *FavoritesHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	ids, err := h.favoritesRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}

	c.JSON(http.StatusOK, resdto.FavoritesResponse{IDs: ids})
}

// @Summary Merge favorites
// @Description Merge the device-local favorites set into the account
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MergeFavoritesRequest true "Local favorites"
// @Success 200 {object} resdto.MergeFavoritesResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /favorites/merge [post]
func (h *FavoritesHandler) Merge(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.MergeFavoritesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.favoritesCommands.Merge(c.Request.Context(), userID, req.IDs)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrExperienceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unknown experience in favorites",
			})
		default:
			// The client keeps its local set and retries on a later session.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	favorites := result.Favorites
	if favorites == nil {
		favorites = []uuid.UUID{}
	}

	c.JSON(http.StatusOK, resdto.MergeFavoritesResponse{
		Favorites:    favorites,
		LocalCleared: result.Cleared,
	})
}
