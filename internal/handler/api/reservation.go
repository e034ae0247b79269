package api

import (
	"errors"
	"net/http"

	reqdto "eatery-api/internal/handler/dto/request"
	resdto "eatery-api/internal/handler/dto/response"
	"eatery-api/internal/pkg/errs"
	"eatery-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
}

func NewReservationHandler(reservationCommands commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
	}
}

// @Summary Create reservation
// @Description Submit a table reservation request
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidInput):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid reservation details",
			})
		case errors.Is(err, errs.ErrStoreConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation list changed concurrently, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}
