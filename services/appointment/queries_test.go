package appointment

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/cryptoexpertssss/gobeauty-mobile/models"
	"github.com/cryptoexpertssss/gobeauty-mobile/storage"
)

func bookFor(t *testing.T, svc *DefaultService, clientID, service, date string) models.Appointment {
	t.Helper()
	req := validRequest()
	req.ClientID = clientID
	req.Service = service
	if date != "" {
		req.Date = date
	}
	apt, err := svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("Book() error = %v", err)
	}
	return *apt
}

// TestReloadIdempotence verifies that a fresh service over the same store
// sees exactly the collection the previous one persisted.
func TestReloadIdempotence(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	first := NewService(store)
	a := bookFor(t, first, "c1", "Balayage", "")
	b := bookFor(t, first, "c2", "Gel Manicure", "")
	c := bookFor(t, first, "c1", "Hydrafacial", "")
	if err := first.UpdateStatus(ctx, adminID, b.ID, models.StatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	second := NewService(store)
	got, err := second.ClientAppointments(ctx, "c1")
	if err != nil {
		t.Fatalf("ClientAppointments() error = %v", err)
	}
	want := []models.Appointment{a, c}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded c1 collection = %+v, want %+v", got, want)
	}

	stats, err := second.Stats(ctx, adminID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Total != 3 || stats.Pending != 2 || stats.Confirmed != 1 {
		t.Errorf("reloaded stats = %+v", stats)
	}
}

func TestClientAppointmentsOrder(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	a := bookFor(t, svc, "c1", "Balayage", "")
	bookFor(t, svc, "c2", "Spray Tan", "")
	b := bookFor(t, svc, "c1", "Gel Manicure", "")
	c := bookFor(t, svc, "c1", "Hydrafacial", "")
	if err := svc.Cancel(ctx, adminID, b.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got, err := svc.ClientAppointments(ctx, "c1")
	if err != nil {
		t.Fatalf("ClientAppointments() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (cancelled bookings stay listed)", len(got))
	}
	for i, id := range []string{a.ID, b.ID, c.ID} {
		if got[i].ID != id {
			t.Errorf("position %d = %q, want %q (insertion order)", i, got[i].ID, id)
		}
	}
}

func TestPendingAppointments(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	a := bookFor(t, svc, "c1", "Balayage", "")
	b := bookFor(t, svc, "c2", "Gel Manicure", "")
	c := bookFor(t, svc, "c3", "Hydrafacial", "")
	if err := svc.UpdateStatus(ctx, adminID, b.ID, models.StatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	got, err := svc.PendingAppointments(ctx, adminID)
	if err != nil {
		t.Fatalf("PendingAppointments() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != c.ID {
		t.Errorf("pending queue = %+v, want [%s %s]", got, a.ID, c.ID)
	}

	// The review queue is admin-only.
	if _, err := svc.PendingAppointments(ctx, models.Identity{ID: "c1", Role: models.RoleClient}); err != ErrUnauthorized {
		t.Errorf("client access error = %v, want ErrUnauthorized", err)
	}
}

func TestUpcomingAppointments(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	day := func(offset int) string {
		return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
	}

	past := bookFor(t, svc, "c1", "Balayage", day(-3))
	today := bookFor(t, svc, "c1", "Gel Manicure", day(0))
	future := bookFor(t, svc, "c1", "Hydrafacial", day(14))
	cancelled := bookFor(t, svc, "c1", "Spray Tan", day(7))
	bookFor(t, svc, "c2", "Microblading", day(7))
	if err := svc.Cancel(ctx, adminID, cancelled.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := svc.UpdateStatus(ctx, adminID, future.ID, models.StatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	got, err := svc.UpcomingAppointments(ctx, "c1")
	if err != nil {
		t.Fatalf("UpcomingAppointments() error = %v", err)
	}

	// Past and cancelled bookings are excluded, today's and confirmed
	// future ones included, insertion order preserved.
	if len(got) != 2 || got[0].ID != today.ID || got[1].ID != future.ID {
		ids := make([]string, len(got))
		for i, a := range got {
			ids[i] = a.ID
		}
		t.Errorf("upcoming = %v, want [%s %s] (past %s excluded)", ids, today.ID, future.ID, past.ID)
	}
}

func TestStats(t *testing.T) {
	svc := NewService(storage.NewMemoryStore())
	ctx := context.Background()

	// Fixed collection: 3 pending, 2 confirmed, 1 completed, 1 cancelled.
	for i := 0; i < 3; i++ {
		bookFor(t, svc, "c1", "Balayage", "")
	}
	for i := 0; i < 2; i++ {
		apt := bookFor(t, svc, "c2", "Gel Manicure", "")
		if err := svc.UpdateStatus(ctx, adminID, apt.ID, models.StatusConfirmed); err != nil {
			t.Fatalf("confirm: %v", err)
		}
	}
	done := bookFor(t, svc, "c3", "Hydrafacial", "")
	if err := svc.UpdateStatus(ctx, adminID, done.ID, models.StatusConfirmed); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := svc.UpdateStatus(ctx, adminID, done.ID, models.StatusCompleted); err != nil {
		t.Fatalf("complete: %v", err)
	}
	gone := bookFor(t, svc, "c4", "Spray Tan", "")
	if err := svc.Cancel(ctx, adminID, gone.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got, err := svc.Stats(ctx, adminID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	want := models.AppointmentStats{Total: 7, Pending: 3, Confirmed: 2, Completed: 1, Cancelled: 1}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}

	if _, err := svc.Stats(ctx, models.Identity{ID: "c1", Role: models.RoleClient}); err != ErrUnauthorized {
		t.Errorf("client access error = %v, want ErrUnauthorized", err)
	}
}

// TestLoadFromCorruptBlob verifies that an undecodable stored value yields an
// empty collection rather than an error.
func TestLoadFromCorruptBlob(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	if err := store.Set(ctx, StorageKey, []byte("{not json")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := NewService(store)
	got, err := svc.ClientAppointments(ctx, "c1")
	if err != nil {
		t.Fatalf("ClientAppointments() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty collection, got %+v", got)
	}
}
