package report

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinichq/frontdesk-api/internal/handler"
	"github.com/clinichq/frontdesk-api/internal/service/clinic"
)

const noLapsedMessage = "There are no patients that haven't visited the clinic for more than 365 days from today.\n"

type Handler struct {
	service *clinic.Service
}

func NewHandler(service *clinic.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/returned-within-year", h.ReturnedWithinYear)
		reports.GET("/lapsed-over-year", h.LapsedOverYear)
	}
}

func (h *Handler) ReturnedWithinYear(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"report": h.service.PatientsReturnedWithinYear(),
	}))
}

// LapsedOverYear substitutes a "none" message when the report body is empty;
// the underlying report is deliberately empty in that case.
func (h *Handler) LapsedOverYear(c *gin.Context) {
	report := h.service.PatientsLapsedOverYear()
	if report == "" {
		report = noLapsedMessage
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"report": report,
	}))
}
