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

const scheduleLayout = "2006-01-02T15:04"

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	AppointmentID uint
	OwnerID       uint

	PetID   uint
	Service string
	When    string
	Notes   string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
	now   func() time.Time
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
		now:   func() time.Time { return time.Now().In(loc) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute re-runs the full schedule validation against the proposed time.
// Edits get no shortcut: the new slot must satisfy every booking rule a
// fresh appointment would.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForOwner(ctx, in.AppointmentID, in.OwnerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

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

	ap.PetID = pet.ID
	ap.Service = in.Service
	ap.ScheduledAt = scheduledAt
	ap.Notes = in.Notes

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.OwnerID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
