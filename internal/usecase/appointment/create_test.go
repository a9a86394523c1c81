package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/audit"
	domain "github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/domain/appointment"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httperr"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	pets         map[uint]models.Pet
	appointments map[uint]models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		pets:         make(map[uint]models.Pet),
		appointments: make(map[uint]models.Appointment),
	}
}

func (r *fakeRepo) GetPetForOwner(ctx context.Context, petID, ownerID uint) (*models.Pet, error) {
	pet, ok := r.pets[petID]
	if !ok || pet.OwnerID != ownerID {
		return nil, httperr.ErrBusiness("pet_not_found")
	}
	return &pet, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.nextID++
	ap.ID = r.nextID
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) DeleteAppointment(ctx context.Context, appointmentID uint) error {
	delete(r.appointments, appointmentID)
	return nil
}

func (r *fakeRepo) GetAppointmentForOwner(ctx context.Context, appointmentID, ownerID uint) (*models.Appointment, error) {
	ap, ok := r.appointments[appointmentID]
	if !ok || ap.OwnerID != ownerID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	return &ap, nil
}

func (r *fakeRepo) ListAppointmentsForOwner(ctx context.Context, ownerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.OwnerID == ownerID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		out = append(out, ap)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// HELPERS
// ======================================================

func testNow() time.Time {
	return time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func newCreateUC(repo *fakeRepo) *CreateAppointment {
	uc := NewCreateAppointment(repo, testDispatcher(), time.UTC)
	uc.now = testNow
	return uc
}

func newUpdateUC(repo *fakeRepo) *UpdateAppointment {
	uc := NewUpdateAppointment(repo, testDispatcher(), time.UTC)
	uc.now = testNow
	return uc
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointmentMondayAccepted(t *testing.T) {
	repo := newFakeRepo()
	repo.pets[3] = models.Pet{ID: 3, OwnerID: 7, Name: "Bantay"}
	uc := newCreateUC(repo)

	// 2099-01-05 is a Monday.
	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 7,
		PetID:   3,
		Service: "Grooming",
		When:    "2099-01-05T10:00",
		Notes:   "first visit",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(3), ap.PetID)
	assert.Equal(t, uint(7), ap.OwnerID)
	assert.Equal(t, "Grooming", ap.Service)
	assert.Equal(t, "Scheduled", ap.Status)
	assert.Equal(t, time.Date(2099, time.January, 5, 10, 0, 0, 0, time.UTC), ap.ScheduledAt)
	assert.Len(t, repo.appointments, 1)
}

func TestCreateAppointmentSundayRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.pets[3] = models.Pet{ID: 3, OwnerID: 7}
	uc := newCreateUC(repo)

	// 2099-01-04 is a Sunday.
	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 7,
		PetID:   3,
		Service: "Grooming",
		When:    "2099-01-04T10:00",
	})
	assert.ErrorIs(t, err, domain.ErrSundayClosed)
	assert.Empty(t, repo.appointments)
}

func TestCreateAppointmentPastDateRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.pets[3] = models.Pet{ID: 3, OwnerID: 7}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 7,
		PetID:   3,
		Service: "Grooming",
		When:    "2025-06-02T10:00",
	})
	assert.ErrorIs(t, err, domain.ErrPastOrTodayDate)
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	repo := newFakeRepo()
	repo.pets[3] = models.Pet{ID: 3, OwnerID: 7}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 7,
		PetID:   3,
		Service: "Acupuncture",
		When:    "2099-01-05T10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "unknown_service"))
}

func TestCreateAppointmentForeignPetRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.pets[3] = models.Pet{ID: 3, OwnerID: 99}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 7,
		PetID:   3,
		Service: "Grooming",
		When:    "2099-01-05T10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "pet_not_found"))
	assert.Empty(t, repo.appointments)
}

func TestCreateAppointmentBadTimestamp(t *testing.T) {
	repo := newFakeRepo()
	repo.pets[3] = models.Pet{ID: 3, OwnerID: 7}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		OwnerID: 7,
		PetID:   3,
		Service: "Grooming",
		When:    "next tuesday",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateAppointmentRevalidatesSchedule(t *testing.T) {
	repo := newFakeRepo()
	repo.pets[3] = models.Pet{ID: 3, OwnerID: 7}
	repo.appointments[1] = models.Appointment{
		ID:          1,
		PetID:       3,
		OwnerID:     7,
		Service:     "Grooming",
		ScheduledAt: time.Date(2099, time.January, 5, 10, 0, 0, 0, time.UTC),
		Status:      "Scheduled",
	}
	uc := newUpdateUC(repo)

	// Moving to Saturday 17:00 fails the full schedule check, not a delta.
	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: 1,
		OwnerID:       7,
		PetID:         3,
		Service:       "Grooming",
		When:          "2099-01-03T17:00",
	})
	assert.ErrorIs(t, err, domain.ErrOutsideSaturdayHours)
	assert.Equal(t, time.Date(2099, time.January, 5, 10, 0, 0, 0, time.UTC), repo.appointments[1].ScheduledAt)

	// A legal Saturday slot goes through.
	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: 1,
		OwnerID:       7,
		PetID:         3,
		Service:       "Dental Cleaning",
		When:          "2099-01-03T10:00",
		Notes:         "rebooked",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dental Cleaning", ap.Service)
	assert.Equal(t, time.Date(2099, time.January, 3, 10, 0, 0, 0, time.UTC), ap.ScheduledAt)
}

func TestUpdateCancelledAppointmentRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.pets[3] = models.Pet{ID: 3, OwnerID: 7}
	repo.appointments[1] = models.Appointment{
		ID:      1,
		PetID:   3,
		OwnerID: 7,
		Service: "Grooming",
		Status:  "Cancelled",
	}
	uc := newUpdateUC(repo)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: 1,
		OwnerID:       7,
		PetID:         3,
		Service:       "Grooming",
		When:          "2099-01-05T10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateForeignAppointmentDenied(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[1] = models.Appointment{ID: 1, OwnerID: 99, Status: "Scheduled"}
	uc := newUpdateUC(repo)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		AppointmentID: 1,
		OwnerID:       7,
		PetID:         3,
		Service:       "Grooming",
		When:          "2099-01-05T10:00",
	})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
