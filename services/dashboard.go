package services

import (
	"math"
	"time"

	"github.com/Aram-az/ESSDev-Lifeyears/models"

	"github.com/pkg/errors"
)

const FilterAll = "all"

var ErrUnknownFilter = errors.New("unknown appointment filter")

// FilterAppointments keeps the appointments whose status matches filter;
// "all" and "" keep everything.
func FilterAppointments(appts []models.Appointment, filter string) ([]models.Appointment, error) {
	switch filter {
	case "", FilterAll:
		return appts, nil
	case models.AppointmentUpcoming, models.AppointmentOverdue, models.AppointmentCompleted:
	default:
		return nil, errors.Wrapf(ErrUnknownFilter, "%q", filter)
	}

	out := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		if a.Status == filter {
			out = append(out, a)
		}
	}
	return out, nil
}

// ComputeDashboard summarizes appts as of today. DaysUntilNext is the
// ceiling of the day gap to the earliest upcoming appointment, floored at
// zero, and nil when nothing is upcoming.
func ComputeDashboard(appts []models.Appointment, today time.Time) models.DashboardStats {
	stats := models.DashboardStats{TotalScheduled: len(appts)}

	var next time.Time
	for _, a := range appts {
		switch a.Status {
		case models.AppointmentUpcoming:
			stats.Upcoming++
			d, err := time.Parse(models.DateLayout, a.Date)
			if err == nil && (next.IsZero() || d.Before(next)) {
				next = d
			}
		case models.AppointmentOverdue:
			stats.Overdue++
		case models.AppointmentCompleted:
			stats.Completed++
		}
		if a.ConfirmationStatus == models.ConfirmationPending {
			stats.PendingConfirmations++
		}
	}

	if !next.IsZero() {
		days := int(math.Ceil(next.Sub(today).Hours() / 24))
		if days < 0 {
			days = 0
		}
		stats.DaysUntilNext = &days
	}
	return stats
}
