package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cryptoexpertssss/gobeauty-mobile/config"
	"github.com/cryptoexpertssss/gobeauty-mobile/models"
	"github.com/cryptoexpertssss/gobeauty-mobile/storage"
	"github.com/cryptoexpertssss/gobeauty-mobile/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// StorageKey is the key-value entry holding the persisted session identity.
const StorageKey = "auth_user"

const tokenTTL = 24 * time.Hour

// Demo avatars, kept from the original client.
const (
	adminAvatar  = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400"
	clientAvatar = "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400"
)

// ErrInvalidCredentials is returned when login fails, without revealing
// which field was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNotAuthenticated is returned by Current when no identity is stored.
var ErrNotAuthenticated = errors.New("not authenticated")

// AuthResponse carries the identity and session token of a successful login.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Provider defines the session identity contract consumed by the view layer.
type Provider interface {
	Login(ctx context.Context, email, password string, role models.UserRole) (*AuthResponse, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*models.User, error)
	IsAdmin(ctx context.Context) bool
	IsClient(ctx context.Context) bool
}

// DefaultProvider is the production implementation. Authentication is mocked:
// the admin account is fixed by configuration and any well-formed credentials
// produce a fresh client identity. The identity survives restarts through the
// key-value store.
type DefaultProvider struct {
	store      storage.Store
	adminEmail string
	adminHash  []byte

	mu      sync.Mutex
	current *models.User
	loaded  bool
}

// NewProvider hashes the configured admin password once and returns a
// provider backed by the given store.
func NewProvider(store storage.Store) (*DefaultProvider, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(config.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &DefaultProvider{
		store:      store,
		adminEmail: config.AppConfig.AdminEmail,
		adminHash:  hash,
	}, nil
}

// ensureLoaded restores a persisted identity once. Callers must hold p.mu.
func (p *DefaultProvider) ensureLoaded(ctx context.Context) {
	if p.loaded {
		return
	}
	p.loaded = true
	data, err := p.store.Get(ctx, StorageKey)
	if err != nil {
		utils.GetLogger().Error("failed to restore session", zap.Error(err))
		return
	}
	if data == nil {
		return
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		utils.GetLogger().Error("failed to decode stored session", zap.Error(err))
		return
	}
	p.current = &user
}

// Login verifies credentials for the requested role and persists the
// resulting identity. Admins must match the configured account; clients get
// a fresh demo identity for any well-formed email and password.
func (p *DefaultProvider) Login(ctx context.Context, email, password string, role models.UserRole) (*AuthResponse, error) {
	if !utils.ValidEmail(email) || !utils.ValidPassword(password) {
		return nil, ErrInvalidCredentials
	}

	var user models.User
	switch role {
	case models.RoleAdmin:
		if email != p.adminEmail {
			return nil, ErrInvalidCredentials
		}
		if err := bcrypt.CompareHashAndPassword(p.adminHash, []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
		user = models.User{
			ID:     "admin-1",
			Name:   "Admin",
			Email:  p.adminEmail,
			Role:   models.RoleAdmin,
			Avatar: adminAvatar,
		}
	case models.RoleClient:
		user = models.User{
			ID:     "client-" + uuid.New().String(),
			Name:   utils.EmailLocalPart(email),
			Email:  email,
			Role:   models.RoleClient,
			Avatar: clientAvatar,
		}
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}

	token, err := utils.GenerateToken(user.ID, user.Email, string(user.Role), tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("marshal session identity: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.store.Set(ctx, StorageKey, data); err != nil {
		return nil, fmt.Errorf("persist session identity: %w", err)
	}
	p.current = &user
	p.loaded = true

	utils.GetLogger().Info("user logged in",
		zap.String("id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return &AuthResponse{User: user, Token: token}, nil
}

// Logout removes the persisted identity and clears the in-memory session.
func (p *DefaultProvider) Logout(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.store.Remove(ctx, StorageKey); err != nil {
		return fmt.Errorf("clear session identity: %w", err)
	}
	p.current = nil
	p.loaded = true
	return nil
}

// Current returns the active identity, restoring it from storage on first use.
func (p *DefaultProvider) Current(ctx context.Context) (*models.User, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureLoaded(ctx)
	if p.current == nil {
		return nil, ErrNotAuthenticated
	}
	user := *p.current
	return &user, nil
}

// IsAdmin reports whether the active identity holds the admin role.
func (p *DefaultProvider) IsAdmin(ctx context.Context) bool {
	user, err := p.Current(ctx)
	return err == nil && user.Role == models.RoleAdmin
}

// IsClient reports whether the active identity holds the client role.
func (p *DefaultProvider) IsClient(ctx context.Context) bool {
	user, err := p.Current(ctx)
	return err == nil && user.Role == models.RoleClient
}
