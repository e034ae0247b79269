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

type MailConfigHandler struct {
	mailConfigCommands commands.MailConfigCommands
	mailConfigQueries  queries.MailConfigQueries
}

func NewMailConfigHandler(
	mailConfigCommands commands.MailConfigCommands,
	mailConfigQueries queries.MailConfigQueries,
) *MailConfigHandler {
	return &MailConfigHandler{
		mailConfigCommands: mailConfigCommands,
		mailConfigQueries:  mailConfigQueries,
	}
}

// @Summary Get mail configuration
// @Description Current delivery credentials and whether delivery is configured
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MailConfigResponse
// @Failure 401 {object} map[string]string
// @Router /admin/mail-config [get]
func (h *MailConfigHandler) Get(c *gin.Context) {
	view, err := h.mailConfigQueries.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromMailConfigView(view))
}

// @Summary Save mail configuration
// @Description Store the delivery credentials used for guest notifications
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveMailConfigRequest true "Delivery credentials"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/mail-config [put]
func (h *MailConfigHandler) Save(c *gin.Context) {
	var req reqdto.SaveMailConfigRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.mailConfigCommands.Save(c.Request.Context(), req.ToInput()); err != nil {
		switch {
		case errors.Is(err, errs.ErrMailConfigIncomplete):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "All three delivery identifiers are required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
