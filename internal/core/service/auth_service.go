package service

import (
	"context"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/pbkdf2"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/domain"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/ports"
)

const (
	saltBytes = 16
	keyBytes  = 64
	// defaultIterations applies to newly registered users only. Login always
	// re-derives with the iteration count stored on the user, so raising this
	// later does not invalidate existing hashes.
	defaultIterations = 120000
)

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

type authService struct {
	store    ports.Store
	throttle LoginThrottle
	log      zerolog.Logger
}

// NewAuthService returns an AuthService backed by the record store.
// throttle may be nil, in which case failed logins are not rate limited.
func NewAuthService(store ports.Store, throttle LoginThrottle, log zerolog.Logger) ports.AuthService {
	return &authService{store: store, throttle: throttle, log: log}
}

func (s *authService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingField
	}

	users := s.store.Users(ctx)
	if _, err := users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	key := deriveKey(password, salt, defaultIterations, keyBytes)

	// The lookup above and this insert are not atomic; the unique email
	// index makes the race lose cleanly with the same DuplicateEmail.
	created, err := users.Insert(ctx, &domain.User{
		Email:        email,
		PasswordHash: hex.EncodeToString(key),
		Salt:         hex.EncodeToString(salt),
		Iterations:   defaultIterations,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingField
	}

	if s.throttle != nil {
		blocked, err := s.throttle.TooManyFailures(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("throttle check failed, processing anyway")
		} else if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.store.Users(ctx).FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown email and wrong password must be indistinguishable
			// to the caller.
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(password, user) {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("failed to reset login failures")
		}
	}

	s.log.Info().Str("email", email).Msg("user logged in")
	return user, nil
}

func (s *authService) Profile(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrMissingField
	}
	return s.store.Users(ctx).FindByEmail(ctx, email)
}

func (s *authService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to record login failure")
	}
}

// deriveKey runs the deliberately slow password derivation; the cost is what
// makes stolen hashes expensive to brute-force offline.
func deriveKey(password string, salt []byte, iterations, length int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, length, sha512.New)
}

// verifyPassword re-derives the key with the salt, iteration count and key
// length stored on the user and compares in constant time. Undecodable
// stored values count as a mismatch.
func verifyPassword(password string, user *domain.User) bool {
	salt, err := hex.DecodeString(user.Salt)
	if err != nil {
		return false
	}
	stored, err := hex.DecodeString(user.PasswordHash)
	if err != nil {
		return false
	}
	derived := deriveKey(password, salt, user.Iterations, len(stored))
	return subtle.ConstantTimeCompare(derived, stored) == 1
}
