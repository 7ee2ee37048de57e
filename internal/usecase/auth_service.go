package usecase

import (
	"context"
	"errors"
	"fmt"

	"offbeat-travels/internal/domain/entity"
	"offbeat-travels/internal/domain/repository"
	"offbeat-travels/internal/infrastructure/session"
	"offbeat-travels/internal/infrastructure/sharding"
	"offbeat-travels/pkg/apperrors"
	"offbeat-travels/pkg/logger"
	"offbeat-travels/pkg/metrics"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and logout. The home shard
// is derived from the username exactly once per operation, here, and
// passed down explicitly.
type AuthService struct {
	users      repository.UserRepository
	sessions   *session.Store
	logger     logger.Logger
	metrics    *metrics.Metrics
	bcryptCost int
}

// NewAuthService creates a new auth service
func NewAuthService(
	users repository.UserRepository,
	sessions *session.Store,
	log logger.Logger,
	m *metrics.Metrics,
	bcryptCost int,
) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		logger:     log,
		metrics:    m,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account on the username's home shard.
//
// Uniqueness is checked within the computed shard only. A username
// could in principle exist independently on the other shard; the
// other shard is never consulted, keeping registration a
// single-shard operation like everything else.
func (s *AuthService) Register(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", apperrors.ErrValidation)
	}
	if len(username) > 500 {
		return nil, fmt.Errorf("username too long: %w", apperrors.ErrValidation)
	}

	shard := sharding.Route(username)
	s.metrics.ObserveShardOp(shard.String(), "register")

	// Shard-local uniqueness check; the unique index backs it up
	// against races inside the same shard.
	_, err := s.users.GetByUsername(ctx, shard, username)
	if err == nil {
		return nil, fmt.Errorf("username %q: %w", username, apperrors.ErrConflict)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.metrics.ObserveError("register")
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		HomeShard:    shard.String(),
	}
	if err := s.users.Create(ctx, shard, user); err != nil {
		s.metrics.ObserveError("register")
		return nil, err
	}

	s.metrics.IncRegistration()
	s.logger.Info("User registered", "username", username, "shard", shard.String())
	return user, nil
}

// Login verifies credentials against the username's home shard and
// opens a session carrying the resolved shard.
func (s *AuthService) Login(ctx context.Context, username, password string) (*session.Session, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", apperrors.ErrValidation)
	}

	shard := sharding.Route(username)
	s.metrics.ObserveShardOp(shard.String(), "login")

	user, err := s.users.GetByUsername(ctx, shard, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same answer as a bad password, so usernames are
			// not enumerable.
			return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
		}
		s.metrics.ObserveError("login")
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
	}

	sess := s.sessions.Create(user.ID, user.Username, shard)
	s.metrics.IncLogin()
	s.logger.Info("User logged in", "username", username, "shard", shard.String())
	return sess, nil
}

// Logout destroys the session for the token. Unknown tokens are a
// no-op.
func (s *AuthService) Logout(token string) {
	s.sessions.Delete(token)
}
