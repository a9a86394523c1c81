package appointment

import (
	"context"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/models"
)

type Repository interface {
	// -------- Pet ownership --------
	GetPetForOwner(
		ctx context.Context,
		petID uint,
		ownerID uint,
	) (*models.Pet, error)

	// -------- Appointment (write) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		appointmentID uint,
	) error

	// -------- Appointment (read) --------
	GetAppointmentForOwner(
		ctx context.Context,
		appointmentID uint,
		ownerID uint,
	) (*models.Appointment, error)

	ListAppointmentsForOwner(
		ctx context.Context,
		ownerID uint,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)
}
