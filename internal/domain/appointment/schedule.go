package appointment

import (
	"time"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httperr"
)

// ===============================
// Clinic-hours policy
// ===============================

// Schedule rejection reasons, surfaced to the caller verbatim.
var (
	ErrPastOrTodayDate      = httperr.ErrBusiness("past_or_today_date")
	ErrSundayClosed         = httperr.ErrBusiness("sunday_closed")
	ErrOutsideSaturdayHours = httperr.ErrBusiness("outside_saturday_hours")
	ErrOutsideWeekdayHours  = httperr.ErrBusiness("outside_weekday_hours")
)

// ValidateSchedule checks a proposed appointment time against the clinic
// booking rules. Both create and edit paths run the full check.
//
//   - Same-day and past dates are never bookable, regardless of time.
//   - Sunday is reserved for emergencies.
//   - Saturday accepts 09:00 through 16:00 inclusive.
//   - Monday to Friday rejects 18:00 onward and anything up to 07:59,
//     so 08:00 and 17:59 pass while 07:59 and 18:00 fail.
func ValidateSchedule(now, scheduledAt time.Time) error {
	if !dateAfter(scheduledAt, now) {
		return ErrPastOrTodayDate
	}

	minuteOfDay := scheduledAt.Hour()*60 + scheduledAt.Minute()

	switch scheduledAt.Weekday() {
	case time.Sunday:
		return ErrSundayClosed

	case time.Saturday:
		if minuteOfDay < 9*60 || minuteOfDay > 16*60 {
			return ErrOutsideSaturdayHours
		}

	default:
		if minuteOfDay >= 18*60 || minuteOfDay <= 7*60+59 {
			return ErrOutsideWeekdayHours
		}
	}

	return nil
}

// dateAfter reports whether t falls on a later calendar day than ref,
// compared in ref's location.
func dateAfter(t, ref time.Time) bool {
	t = t.In(ref.Location())

	if t.Year() != ref.Year() {
		return t.Year() > ref.Year()
	}
	return t.YearDay() > ref.YearDay()
}
