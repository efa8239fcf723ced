package appointment

import (
	"context"
	"time"

	"github.com/cryptoexpertssss/gobeauty-mobile/models"
)

// ClientAppointments returns every appointment owned by clientID, all
// statuses included, in insertion order.
func (s *DefaultService) ClientAppointments(ctx context.Context, clientID string) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	var out []models.Appointment
	for _, apt := range s.appointments {
		if apt.ClientID == clientID {
			out = append(out, apt)
		}
	}
	return out, nil
}

// PendingAppointments returns all pending appointments across every client,
// the admin review queue. Non-admin callers are rejected.
func (s *DefaultService) PendingAppointments(ctx context.Context, caller models.Identity) ([]models.Appointment, error) {
	if caller.Role != models.RoleAdmin {
		return nil, ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	var out []models.Appointment
	for _, apt := range s.appointments {
		if apt.Status == models.StatusPending {
			out = append(out, apt)
		}
	}
	return out, nil
}

// UpcomingAppointments returns clientID's pending or confirmed appointments
// dated today or later. The comparison is date-only; the time-of-day label
// is ignored. Insertion order is preserved so views can slice the first N.
func (s *DefaultService) UpcomingAppointments(ctx context.Context, clientID string) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var out []models.Appointment
	for _, apt := range s.appointments {
		if apt.ClientID != clientID {
			continue
		}
		if apt.Status != models.StatusPending && apt.Status != models.StatusConfirmed {
			continue
		}
		date, err := time.Parse("2006-01-02", apt.Date)
		if err != nil {
			continue
		}
		if date.Before(today) {
			continue
		}
		out = append(out, apt)
	}
	return out, nil
}

// Stats computes per-status counts over the full collection. The counts are
// derived on every call, never cached. Non-admin callers are rejected.
func (s *DefaultService) Stats(ctx context.Context, caller models.Identity) (models.AppointmentStats, error) {
	if caller.Role != models.RoleAdmin {
		return models.AppointmentStats{}, ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	stats := models.AppointmentStats{Total: len(s.appointments)}
	for _, apt := range s.appointments {
		switch apt.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusConfirmed:
			stats.Confirmed++
		case models.StatusCompleted:
			stats.Completed++
		case models.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}
