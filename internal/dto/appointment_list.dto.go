package dto

import (
	"time"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/catalog"
)

type AppointmentItemDTO struct {
	ID          uint      `json:"id"`
	PetID       uint      `json:"pet_id"`
	PetName     string    `json:"pet_name"`
	Service     string    `json:"service"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`

	// Derived on read, never persisted.
	Price        float64 `json:"price"`
	TotalPayable float64 `json:"total_payable"`
}

type AppointmentListDTO struct {
	Appointments []AppointmentItemDTO `json:"appointments"`
	Invoice      catalog.Invoice      `json:"invoice"`
}
