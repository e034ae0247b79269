package api

import (
	"errors"
	"net/http"

	reqdto "eatery-api/internal/handler/dto/request"
	resdto "eatery-api/internal/handler/dto/response"
	"eatery-api/internal/pkg/errs"
	"eatery-api/internal/usecase/commands"
	"eatery-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
	notificationQueries queries.NotificationQueries
}

func NewAdminHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
	notificationQueries queries.NotificationQueries,
) *AdminHandler {
	return &AdminHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
		notificationQueries: notificationQueries,
	}
}

// @Summary List reservations
// @Description List reservations with optional status and search filters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (pending|confirmed|cancelled)"
// @Param q query string false "Search term over name, phone and email"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /admin/reservations [get]
func (h *AdminHandler) ListReservations(c *gin.Context) {
	filter := queries.ReservationFilter{
		Status: c.Query("status"),
		Term:   c.Query("q"),
	}

	views, err := h.reservationQueries.List(c.Request.Context(), filter)
	if err != nil {
		h.renderReadError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Description Get one reservation by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} map[string]string
// @Router /admin/reservations/{id} [get]
func (h *AdminHandler) GetReservation(c *gin.Context) {
	view, err := h.reservationQueries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			h.renderReadError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Update reservation status
// @Description Confirm or cancel a reservation; the guest is notified when the status actually changes
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reservations/{id}/status [patch]
func (h *AdminHandler) UpdateReservationStatus(c *gin.Context) {
	var req reqdto.UpdateReservationStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.reservationCommands.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, errs.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid reservation status",
			})
		case errors.Is(err, errs.ErrStoreConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation list changed concurrently, please retry",
			})
		default:
			h.renderReadError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Delete reservation
// @Description Remove a reservation; the guest is notified when an email is on file
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reservations/{id} [delete]
func (h *AdminHandler) DeleteReservation(c *gin.Context) {
	removed, err := h.reservationCommands.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrStoreConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Reservation list changed concurrently, please retry",
			})
		default:
			h.renderReadError(c, err)
		}
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List sent notifications
// @Description Audit view over every message the system has told a guest it sent
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Failure 401 {object} map[string]string
// @Router /admin/notifications [get]
func (h *AdminHandler) ListNotifications(c *gin.Context) {
	views, err := h.notificationQueries.List(c.Request.Context())
	if err != nil {
		h.renderReadError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}

func (h *AdminHandler) renderReadError(c *gin.Context, err error) {
	if errors.Is(err, errs.ErrCorruptedState) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Stored reservation data is corrupted",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
