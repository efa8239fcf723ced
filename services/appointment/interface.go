package appointment

import (
	"context"

	"github.com/cryptoexpertssss/gobeauty-mobile/models"
)

// BookingRequest carries the caller-supplied fields of a new appointment.
// ID, status and creation timestamp are filled in by the service.
type BookingRequest struct {
	ClientID          string
	ClientName        string
	ClientEmail       string
	ProfessionalID    string
	ProfessionalName  string
	ProfessionalImage string
	Service           string
	Date              string // "YYYY-MM-DD"
	Time              string // Free-form slot label, e.g. "02:00 PM"
	Notes             string // Optional
}

// Service defines business logic for the appointment lifecycle.
type Service interface {
	// Book validates the request, creates a pending appointment and persists it.
	Book(ctx context.Context, req BookingRequest) (*models.Appointment, error)
	// UpdateStatus moves an appointment along the lifecycle graph. Admins may
	// perform any valid transition; clients may only cancel their own bookings.
	UpdateStatus(ctx context.Context, caller models.Identity, id string, target models.AppointmentStatus) error
	// Cancel marks an appointment cancelled, subject to the same transition rules.
	Cancel(ctx context.Context, caller models.Identity, id string) error
	// ClientAppointments returns all appointments of one client in insertion order.
	ClientAppointments(ctx context.Context, clientID string) ([]models.Appointment, error)
	// PendingAppointments returns every pending appointment across all clients. Admin only.
	PendingAppointments(ctx context.Context, caller models.Identity) ([]models.Appointment, error)
	// UpcomingAppointments returns a client's pending or confirmed appointments
	// dated today or later, in insertion order.
	UpcomingAppointments(ctx context.Context, clientID string) ([]models.Appointment, error)
	// Stats returns freshly computed per-status counts. Admin only.
	Stats(ctx context.Context, caller models.Identity) (models.AppointmentStats, error)
}
