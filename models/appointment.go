package models

// AppointmentStatus represents the lifecycle stage of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"   // Awaiting admin review
	StatusConfirmed AppointmentStatus = "confirmed" // Approved by admin
	StatusCompleted AppointmentStatus = "completed" // Service delivered
	StatusCancelled AppointmentStatus = "cancelled" // Cancelled by client or admin
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the forward-only lifecycle permits moving
// from s to target. Pending appointments may be confirmed or cancelled,
// confirmed ones completed or cancelled; completed and cancelled are final.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusCompleted || target == StatusCancelled
	default:
		return false
	}
}

// Appointment represents a booking record linking a client to a professional
// for a service at a date/time. Professional display fields are snapshotted
// at booking time so the record keeps showing what the client saw, even if
// the catalogue entry changes later.
type Appointment struct {
	ID                string            `bson:"id" json:"id"`                               // Unique appointment identifier (UUID)
	ClientID          string            `bson:"clientId" json:"clientId"`                   // Owning client identity
	ClientName        string            `bson:"clientName" json:"clientName"`               // Client display name at booking time
	ClientEmail       string            `bson:"clientEmail" json:"clientEmail"`             // Client email at booking time
	ProfessionalID    string            `bson:"professionalId" json:"professionalId"`       // Catalogue professional reference
	ProfessionalName  string            `bson:"professionalName" json:"professionalName"`   // Snapshot of the professional's name
	ProfessionalImage string            `bson:"professionalImage" json:"professionalImage"` // Snapshot of the professional's image URL
	Service           string            `bson:"service" json:"service"`                     // Selected service name
	Date              string            `bson:"date" json:"date"`                           // Requested date in "YYYY-MM-DD" format
	Time              string            `bson:"time" json:"time"`                           // Requested time slot label, e.g. "02:00 PM"
	Status            AppointmentStatus `bson:"status" json:"status"`                       // Lifecycle status
	Notes             string            `bson:"notes,omitempty" json:"notes,omitempty"`     // Optional free-form notes
	CreatedAt         string            `bson:"createdAt" json:"createdAt"`                 // RFC 3339 creation timestamp
}

// AppointmentStats carries derived counts by status over the full collection.
type AppointmentStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}
