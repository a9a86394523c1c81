package appointment

import (
	"context"
	"time"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/audit"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/catalog"
	domain "github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/domain/appointment"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httperr"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	OwnerID uint
	PetID   uint

	Service string
	// When is the proposed slot, "2006-01-02T15:04", clinic-local.
	When  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
		now:   func() time.Time { return time.Now().In(loc) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	scheduledAt, err := time.ParseInLocation(scheduleLayout, in.When, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if !catalog.IsService(in.Service) {
		return nil, httperr.ErrBusiness("unknown_service")
	}

	pet, err := uc.repo.GetPetForOwner(ctx, in.PetID, in.OwnerID)
	if err != nil {
		return nil, httperr.ErrBusiness("pet_not_found")
	}

	if err := domain.ValidateSchedule(uc.now(), scheduledAt); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		PetID:       pet.ID,
		OwnerID:     in.OwnerID,
		Service:     in.Service,
		ScheduledAt: scheduledAt,
		Notes:       in.Notes,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
