package appointment

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/cryptoexpertssss/gobeauty-mobile/models"
	"github.com/cryptoexpertssss/gobeauty-mobile/storage"
	"github.com/cryptoexpertssss/gobeauty-mobile/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageKey is the single key-value entry holding the whole appointment
// collection, persisted as a JSON array.
const StorageKey = "appointments"

// DefaultService is the production implementation of Service. It keeps the
// collection in memory, mirrored to one storage key; the mutex serializes
// every load-mutate-persist cycle, so at most one persist is outstanding at
// a time and a slow write can never clobber a later one with stale data.
type DefaultService struct {
	store storage.Store

	mu           sync.Mutex
	appointments []models.Appointment
	loaded       bool
}

// NewService returns a service backed by the given key-value store. The
// collection is loaded lazily on first use; calls issued before the load
// completes block behind it.
func NewService(store storage.Store) *DefaultService {
	return &DefaultService{store: store}
}

// ensureLoaded reads the persisted collection once. A missing key, a read
// failure or an undecodable blob all yield an empty collection, matching the
// original client behavior of starting fresh when local state is unusable.
// Callers must hold s.mu.
func (s *DefaultService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	data, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		utils.GetLogger().Error("failed to load appointments, starting empty", zap.Error(err))
		return
	}
	if data == nil {
		return
	}
	var stored []models.Appointment
	if err := json.Unmarshal(data, &stored); err != nil {
		utils.GetLogger().Error("failed to decode stored appointments, starting empty", zap.Error(err))
		return
	}
	s.appointments = stored
}

// persist writes the full collection as one blob. Callers must hold s.mu and
// roll back their in-memory change if persist fails.
func (s *DefaultService) persist(ctx context.Context, op string) error {
	data, err := json.Marshal(s.appointments)
	if err != nil {
		return &StorageError{Op: op, Err: err}
	}
	if err := s.store.Set(ctx, StorageKey, data); err != nil {
		return &StorageError{Op: op, Err: err}
	}
	return nil
}

func validate(req BookingRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"clientId", req.ClientID},
		{"clientName", req.ClientName},
		{"clientEmail", req.ClientEmail},
		{"professionalId", req.ProfessionalID},
		{"professionalName", req.ProfessionalName},
		{"professionalImage", req.ProfessionalImage},
		{"service", req.Service},
		{"date", req.Date},
		{"time", req.Time},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field}
		}
	}
	return nil
}

// Book validates the request, assigns a fresh UUID, stamps the creation time
// and appends the pending appointment to the collection. The append is rolled
// back if the persist fails, so a booking is never visible unless it is
// durably stored.
func (s *DefaultService) Book(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	apt := models.Appointment{
		ID:                uuid.New().String(),
		ClientID:          req.ClientID,
		ClientName:        req.ClientName,
		ClientEmail:       req.ClientEmail,
		ProfessionalID:    req.ProfessionalID,
		ProfessionalName:  req.ProfessionalName,
		ProfessionalImage: req.ProfessionalImage,
		Service:           req.Service,
		Date:              req.Date,
		Time:              req.Time,
		Status:            models.StatusPending,
		Notes:             req.Notes,
		CreatedAt:         time.Now().UTC().Format(time.RFC3339),
	}

	s.appointments = append(s.appointments, apt)
	if err := s.persist(ctx, "book"); err != nil {
		s.appointments = s.appointments[:len(s.appointments)-1]
		return nil, err
	}

	utils.GetLogger().Info("appointment booked",
		zap.String("id", apt.ID),
		zap.String("clientId", apt.ClientID),
		zap.String("professional", apt.ProfessionalName),
		zap.String("service", apt.Service),
		zap.String("date", apt.Date),
	)
	return &apt, nil
}

// UpdateStatus enforces both the authorization rule and the forward-only
// lifecycle graph, then persists the changed collection. The previous status
// is restored if the persist fails.
func (s *DefaultService) UpdateStatus(ctx context.Context, caller models.Identity, id string, target models.AppointmentStatus) error {
	if !target.Valid() {
		return &InvalidTransitionError{To: target}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	idx := -1
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}
	apt := &s.appointments[idx]

	// Admins drive the review workflow; a client may only cancel their own
	// booking. The check lives here rather than in the view layer so no
	// caller can bypass it.
	if caller.Role != models.RoleAdmin {
		if target != models.StatusCancelled || apt.ClientID != caller.ID {
			return ErrUnauthorized
		}
	}

	if !apt.Status.CanTransitionTo(target) {
		return &InvalidTransitionError{From: apt.Status, To: target}
	}

	prev := apt.Status
	apt.Status = target
	if err := s.persist(ctx, "update status"); err != nil {
		apt.Status = prev
		return err
	}

	utils.GetLogger().Info("appointment status updated",
		zap.String("id", id),
		zap.String("from", string(prev)),
		zap.String("to", string(target)),
		zap.String("caller", caller.ID),
	)
	return nil
}

// Cancel marks the appointment cancelled, subject to the same transition and
// authorization rules as UpdateStatus.
func (s *DefaultService) Cancel(ctx context.Context, caller models.Identity, id string) error {
	return s.UpdateStatus(ctx, caller, id, models.StatusCancelled)
}
