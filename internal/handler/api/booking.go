package api

import (
	"errors"
	"net/http"

	reqdto "experience-market/internal/handler/dto/request"
	resdto "experience-market/internal/handler/dto/response"
	"experience-market/internal/handler/middleware"
	"experience-market/internal/pkg/cookie"
	"experience-market/internal/pkg/errs"
	"experience-market/internal/usecase/commands"
	"experience-market/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	checkoutCommands commands.CheckoutCommands
	bookingQueries   queries.BookingQueries
}

func NewBookingHandler(checkoutCommands commands.CheckoutCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		checkoutCommands: checkoutCommands,
		bookingQueries:   bookingQueries,
	}
}

// @Summary Create booking
// @Description Book an experience and charge the payment gateway
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	// Last-touch attribution: whatever referral cookie rides on the request
	// is stamped onto the booking.
	var referralCode *string
	if code := cookie.GetReferralCode(c); code != "" {
		referralCode = &code
	}

	view, err := h.checkoutCommands.CreateBooking(c.Request.Context(), commands.CreateBookingParams{
		ExperienceID: req.ExperienceID,
		UserID:       userID,
		Guests:       req.Guests,
		ReferralCode: referralCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrExperienceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Experience not found",
			})
		case errors.Is(err, errs.ErrGatewayDegraded):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Payment temporarily unavailable",
			})
		case errors.Is(err, errs.ErrGatewayCharge):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment failed",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid booking request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking by ID; buyers see their own bookings only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get user bookings
// @Description List all bookings for the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i := range items {
		response[i] = resdto.FromBookingListItem(&items[i])
	}

	c.JSON(http.StatusOK, response)
}
