package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httperr"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httpresp"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/middleware"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/models"
)

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

// --------- Requests ---------

type PetRequest struct {
	Name           string `json:"name" binding:"required,max=80"`
	Breed          string `json:"breed" binding:"max=80"`
	Age            int    `json:"age" binding:"min=0"`
	MedicalHistory string `json:"medical_history"`
}

// --------- Handlers ---------

func (h *PetHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var pets []models.Pet
	if err := h.db.
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Could not list pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Create(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid pet data.")
		return
	}

	pet := models.Pet{
		OwnerID:        ownerID,
		Name:           req.Name,
		Breed:          req.Breed,
		Age:            req.Age,
		MedicalHistory: req.MedicalHistory,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Could not save the pet.")
		return
	}

	httpresp.Created(c, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	pet, ok := h.ownedPet(c, ownerID)
	if !ok {
		return
	}

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid pet data.")
		return
	}

	pet.Name = req.Name
	pet.Breed = req.Breed
	pet.Age = req.Age
	pet.MedicalHistory = req.MedicalHistory

	if err := h.db.Save(pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Could not save the pet.")
		return
	}

	httpresp.OK(c, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	pet, ok := h.ownedPet(c, ownerID)
	if !ok {
		return
	}

	if err := h.db.Delete(pet).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Could not delete the pet.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}

// ownedPet loads the :id pet and enforces ownership. Someone else's pet is
// a denied-access condition, never silently defaulted.
func (h *PetHandler) ownedPet(c *gin.Context, ownerID uint) (*models.Pet, bool) {
	id := c.Param("id")

	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "Pet not found.")
		return nil, false
	}

	if pet.OwnerID != ownerID {
		httperr.Forbidden(c, "access_denied", "You do not own this pet.")
		return nil, false
	}

	return &pet, true
}
