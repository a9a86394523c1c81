package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httperr"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httpresp"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/middleware"
	ucAppointment "github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	cancelUC *ucAppointment.CancelAppointment
	deleteUC *ucAppointment.DeleteAppointment
	listUC   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	PetID   uint   `json:"pet_id" binding:"required"`
	Service string `json:"service" binding:"required"`
	// ScheduledAt uses "2006-01-02T15:04", clinic-local.
	ScheduledAt string `json:"scheduled_at" binding:"required"`
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		OwnerID: ownerID,
		PetID:   req.PetID,
		Service: req.Service,
		When:    req.ScheduledAt,
		Notes:   req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		AppointmentID: id,
		OwnerID:       ownerID,
		PetID:         req.PetID,
		Service:       req.Service,
		When:          req.ScheduledAt,
		Notes:         req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	list, err := h.listUC.Execute(c.Request.Context(), ownerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.OK(c, list)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), ownerID, id)
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ownerID, id); err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

// writeAppointmentError maps business codes to user-facing rejections. The
// code is always passed through verbatim.
func writeAppointmentError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	switch code {
	case "past_or_today_date":
		httperr.BadRequest(c, code, "Appointments must be booked at least one day in advance.")
	case "sunday_closed":
		httperr.BadRequest(c, code, "The clinic is closed on Sundays (emergencies only).")
	case "outside_saturday_hours":
		httperr.BadRequest(c, code, "Saturday appointments run from 9:00 AM to 4:00 PM.")
	case "outside_weekday_hours":
		httperr.BadRequest(c, code, "Weekday appointments run from 8:00 AM to 5:59 PM.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Invalid date or time.")
	case "unknown_service":
		httperr.BadRequest(c, code, "Unknown service.")
	case "invalid_state":
		httperr.BadRequest(c, code, "The appointment can no longer be changed.")
	case "pet_not_found":
		httperr.NotFound(c, code, "Pet not found.")
	case "appointment_not_found":
		httperr.NotFound(c, code, "Appointment not found.")
	default:
		httperr.Internal(c, "appointment_error", "Could not process the appointment.")
	}
}
