package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/audit"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/catalog"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httperr"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httpresp"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/middleware"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/models"
	ucAppointment "github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db     *gorm.DB
	listUC *ucAppointment.ListAppointments
	audit  *audit.Logger
}

func NewAdminHandler(db *gorm.DB, listUC *ucAppointment.ListAppointments) *AdminHandler {
	return &AdminHandler{
		db:     db,
		listUC: listUC,
		audit:  audit.New(db),
	}
}

// ======================================================
// STATS
// ======================================================

type AdminStats struct {
	TotalUsers        int64           `json:"total_users"`
	TotalPets         int64           `json:"total_pets"`
	TotalAppointments int64           `json:"total_appointments"`
	Scheduled         int64           `json:"scheduled_appointments"`
	BookedRevenue     catalog.Invoice `json:"booked_revenue"`
}

func (h *AdminHandler) Stats(c *gin.Context) {
	var stats AdminStats

	h.db.Model(&models.User{}).Count(&stats.TotalUsers)
	h.db.Model(&models.Pet{}).Count(&stats.TotalPets)
	h.db.Model(&models.Appointment{}).Count(&stats.TotalAppointments)
	h.db.Model(&models.Appointment{}).
		Where("status = ?", "Scheduled").
		Count(&stats.Scheduled)

	var services []string
	if err := h.db.Model(&models.Appointment{}).
		Where("status = ?", "Scheduled").
		Pluck("service", &services).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load statistics.")
		return
	}

	prices := make([]float64, 0, len(services))
	for _, s := range services {
		prices = append(prices, catalog.Price(s))
	}
	stats.BookedRevenue = catalog.Totalize(prices)

	httpresp.OK(c, stats)
}

// ======================================================
// LISTS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list users.")
		return
	}

	httpresp.List(c, users)
}

func (h *AdminHandler) ListPets(c *gin.Context) {
	var pets []models.Pet
	if err := h.db.Order("id ASC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Could not list pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	list, err := h.listUC.ExecuteAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.OK(c, list)
}

// ======================================================
// DELETES
// ======================================================

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	if id == adminID {
		httperr.BadRequest(c, "cannot_delete_self", "You cannot delete your own account.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User not found.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Could not delete the user.")
		return
	}

	h.audit.Log(&adminID, "user_deleted", "user", &user.ID, nil)

	httpresp.OK(c, gin.H{"status": "deleted"})
}

func (h *AdminHandler) DeletePet(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet not found.")
		return
	}

	if err := h.db.Delete(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Could not delete the pet.")
		return
	}

	h.audit.Log(&adminID, "pet_deleted", "pet", &pet.ID, nil)

	httpresp.OK(c, gin.H{"status": "deleted"})
}

func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, id).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Could not delete the appointment.")
		return
	}

	h.audit.Log(&adminID, "appointment_deleted", "appointment", &ap.ID, nil)

	httpresp.OK(c, gin.H{"status": "deleted"})
}
