package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"railway/pkg/logger"
)

var ErrAdminRequired = errors.New("admin privileges required")

// Session is the in-process admin capability flag. It starts inactive on
// every run; nothing about it is persisted.
type Session interface {
	Login(ctx context.Context, password string) bool
	Logout(ctx context.Context)
	IsActive() bool
}

type session struct {
	passwordHash []byte
	active       bool
	logger       *logger.Logger
}

// NewSession creates an inactive admin session guarding the given password.
// The password is hashed up front so the plaintext is not kept around for
// comparisons.
func NewSession(password string, log *logger.Logger) (Session, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &session{
		passwordHash: hash,
		logger:       log,
	}, nil
}

// Login activates the session if the password matches
func (s *session) Login(ctx context.Context, password string) bool {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.active = false
		s.logger.LogAuthFailure(ctx, "incorrect admin password")
		return false
	}
	s.active = true
	s.logger.LogAuthSuccess(ctx, "password")
	return true
}

// Logout deactivates the session
func (s *session) Logout(ctx context.Context) {
	s.active = false
	s.logger.InfoContext(ctx, "Admin logged out")
}

// IsActive returns whether admin operations are currently permitted
func (s *session) IsActive() bool {
	return s.active
}
