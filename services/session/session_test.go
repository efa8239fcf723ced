package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cryptoexpertssss/gobeauty-mobile/config"
	"github.com/cryptoexpertssss/gobeauty-mobile/models"
	"github.com/cryptoexpertssss/gobeauty-mobile/storage"
	"github.com/cryptoexpertssss/gobeauty-mobile/utils"
)

func newTestProvider(t *testing.T, store storage.Store) *DefaultProvider {
	t.Helper()
	config.AppConfig.AdminEmail = "admin@gobeauty.com"
	config.AppConfig.AdminPassword = "admin123"
	p, err := NewProvider(store)
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	return p
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		role     models.UserRole
		wantErr  bool
	}{
		{"admin with correct credentials", "admin@gobeauty.com", "admin123", models.RoleAdmin, false},
		{"admin with wrong password", "admin@gobeauty.com", "hunter22", models.RoleAdmin, true},
		{"admin with wrong email", "someone@gobeauty.com", "admin123", models.RoleAdmin, true},
		{"client with any valid credentials", "sarah.j@email.com", "password123", models.RoleClient, false},
		{"client with malformed email", "not-an-email", "password123", models.RoleClient, true},
		{"client with empty email", "", "password123", models.RoleClient, true},
		{"client with short password", "sarah.j@email.com", "abc", models.RoleClient, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, storage.NewMemoryStore())
			auth, err := p.Login(context.Background(), tt.email, tt.password, tt.role)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCredentials) {
					t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if auth.User.Role != tt.role {
				t.Errorf("role = %q, want %q", auth.User.Role, tt.role)
			}
			if auth.Token == "" {
				t.Error("expected a session token")
			}
			if id, err := utils.ExtractIDFromToken(auth.Token); err != nil || id != auth.User.ID {
				t.Errorf("token subject = %q (%v), want %q", id, err, auth.User.ID)
			}
		})
	}
}

func TestClientIdentityDerivation(t *testing.T) {
	p := newTestProvider(t, storage.NewMemoryStore())
	auth, err := p.Login(context.Background(), "sarah.j@email.com", "password123", models.RoleClient)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if auth.User.Name != "sarah.j" {
		t.Errorf("name = %q, want the email local part", auth.User.Name)
	}
	if !strings.HasPrefix(auth.User.ID, "client-") {
		t.Errorf("id = %q, want client- prefix", auth.User.ID)
	}
}

func TestSessionPersistsAcrossRestarts(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	first := newTestProvider(t, store)
	auth, err := first.Login(ctx, "sarah.j@email.com", "password123", models.RoleClient)
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	// A fresh provider over the same store restores the identity.
	second := newTestProvider(t, store)
	user, err := second.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if user.ID != auth.User.ID || user.Email != auth.User.Email {
		t.Errorf("restored user = %+v, want %+v", user, auth.User)
	}
	if !second.IsClient(ctx) || second.IsAdmin(ctx) {
		t.Error("role predicates wrong after restore")
	}
}

func TestLogout(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	p := newTestProvider(t, store)
	if _, err := p.Login(ctx, "admin@gobeauty.com", "admin123", models.RoleAdmin); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !p.IsAdmin(ctx) {
		t.Fatal("expected admin session")
	}

	if err := p.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if _, err := p.Current(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Current() after logout error = %v, want ErrNotAuthenticated", err)
	}

	// The persisted identity is gone too.
	second := newTestProvider(t, store)
	if _, err := second.Current(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("restored session after logout, error = %v", err)
	}
}

func TestCurrentWithoutLogin(t *testing.T) {
	p := newTestProvider(t, storage.NewMemoryStore())
	if _, err := p.Current(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Current() error = %v, want ErrNotAuthenticated", err)
	}
	if p.IsAdmin(context.Background()) || p.IsClient(context.Background()) {
		t.Error("role predicates true without a session")
	}
}
