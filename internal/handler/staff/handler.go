package staff

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clinichq/frontdesk-api/internal/handler"
	"github.com/clinichq/frontdesk-api/internal/model"
	"github.com/clinichq/frontdesk-api/internal/service/clinic"
)

type Handler struct {
	service *clinic.Service
}

func NewHandler(service *clinic.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	staff := r.Group("/staff")
	{
		staff.POST("", h.CreateStaff)
		staff.GET("", h.ListStaff)
		staff.GET("/roster", h.Roster)
		staff.DELETE("/:id", h.RemoveStaff)
		staff.GET("/:id/patients", h.ListPatients)
		staff.POST("/:id/patients", h.AssignPatient)
	}
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var req model.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	staff := h.service.AddStaff(req.Occupation, req.FirstName, req.LastName)
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(staff))
}

func (h *Handler) ListStaff(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.service.ActiveStaff()))
}

// Roster returns the banner-wrapped text view of every active staff member
// with their current patients and ever-assigned totals.
func (h *Handler) Roster(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"roster": h.service.StaffRosterDisplay(),
	}))
}

func (h *Handler) RemoveStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid staff ID"))
		return
	}

	if err := h.service.RemoveStaff(id); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"removed": true}))
}

func (h *Handler) ListPatients(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid staff ID"))
		return
	}

	patients, err := h.service.CurrentPatients(id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	everAssigned, err := h.service.EverAssignedCount(id)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"patients":      patients,
		"ever_assigned": everAssigned,
	}))
}

// AssignPatient is the ledger-style assignment: pairing an already-assigned
// patient is not an error, just an "already assigned" message with
// assigned=false.
func (h *Handler) AssignPatient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid staff ID"))
		return
	}

	var req model.AssignPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	assigned, err := h.service.AssignStaff(id, patientID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	resp := handler.NewSuccessResponse(gin.H{"assigned": assigned})
	if !assigned {
		staff, _ := h.service.StaffMember(id)
		patient, _ := h.service.Patient(patientID)
		resp.Message = fmt.Sprintf("%s is already assigned to %s", staff.FullName(), patient.FullName())
	}
	c.JSON(http.StatusOK, resp)
}
