package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/blog-service/internal/auth"
	"github.com/spec-kit/blog-service/internal/config"
	"github.com/spec-kit/blog-service/internal/domain"
	"github.com/spec-kit/blog-service/internal/events"
	"github.com/spec-kit/blog-service/internal/repository"
	apperrors "github.com/spec-kit/blog-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	accounts   repository.AccountRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	AccountRepo repository.AccountRepository
	Dispatcher  events.Dispatcher
}

// NewAuthService builds the service. The signing secret is taken from config
// once at construction; rotating it invalidates all outstanding tokens.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		accounts:   deps.AccountRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
		dispatcher: deps.Dispatcher,
	}
}

// Register creates a new active account and issues a session token.
// Email matching is case-insensitive: the address is lowercased before any
// lookup or storage.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	email = normalizeEmail(email)

	if _, err := s.accounts.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewDuplicateAccount()
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: hash,
		Status:       domain.AccountStatusActive,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	token, exp, err := s.tokenMgr.Issue(account.ID, account.Email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventAccountRegistered,
		AccountID: account.ID,
		Payload:   events.AccountRegisteredPayload{Email: account.Email},
	})
	return account, token, exp, nil
}

// Login authenticates an account. Checks run existence, then active status,
// then password, in that order: an unknown email and a wrong password are
// indistinguishable to the caller, while a suspended account with a correct
// email surfaces as inactive before the password is ever compared.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, string, time.Time, error) {
	account, err := s.accounts.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	if !account.IsActive() {
		return nil, "", time.Time{}, apperrors.NewAccountInactive()
	}

	if !auth.VerifyPassword(password, account.PasswordHash) {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.Issue(account.ID, account.Email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return account, token, exp, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
