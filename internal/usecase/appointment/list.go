package appointment

import (
	"context"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/catalog"
	domain "github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/domain/appointment"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/dto"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute returns the owner's appointments ordered by scheduled time, with
// derived pricing attached and an invoice over the whole set.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	ownerID uint,
) (*dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return buildListDTO(appointments), nil
}

// ExecuteAll is the staff view over every owner's appointments.
func (uc *ListAppointments) ExecuteAll(
	ctx context.Context,
) (*dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAllAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return buildListDTO(appointments), nil
}

func buildListDTO(appointments []models.Appointment) *dto.AppointmentListDTO {
	items := make([]dto.AppointmentItemDTO, 0, len(appointments))
	prices := make([]float64, 0, len(appointments))

	for _, ap := range appointments {
		price := catalog.Price(ap.Service)
		prices = append(prices, price)

		items = append(items, dto.AppointmentItemDTO{
			ID:           ap.ID,
			PetID:        ap.PetID,
			PetName:      ap.Pet.Name,
			Service:      ap.Service,
			ScheduledAt:  ap.ScheduledAt,
			Status:       ap.Status,
			Notes:        ap.Notes,
			Price:        price,
			TotalPayable: catalog.ItemTotal(price),
		})
	}

	return &dto.AppointmentListDTO{
		Appointments: items,
		Invoice:      catalog.Totalize(prices),
	}
}
