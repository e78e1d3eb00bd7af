// Package auth exchanges credentials for the session token every other
// call carries.
package auth

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/stocklane/stocklane/internal/platform/api"
	"github.com/stocklane/stocklane/internal/session"
)

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the data block of a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type Service struct {
	client   *api.Client
	sessions *session.Store
	validate *validator.Validate
	logger   *slog.Logger
}

func NewService(client *api.Client, sessions *session.Store, logger *slog.Logger) *Service {
	return &Service{client: client, sessions: sessions, validate: validator.New(), logger: logger}
}

// Login authenticates and stores the returned token.
func (s *Service) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	if err := s.validate.Struct(creds); err != nil {
		return nil, err
	}
	var resp LoginResponse
	if _, err := s.client.Post(ctx, "auth/login", creds, &resp); err != nil {
		return nil, err
	}
	if err := s.sessions.Set(resp.Token); err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.Info("logged in", slog.String("user", resp.Name))
	}
	return &resp, nil
}

// Logout clears the stored token. The server call is best effort; the
// local session is cleared regardless.
func (s *Service) Logout(ctx context.Context) error {
	if _, err := s.client.Delete(ctx, "auth/logout"); err != nil && s.logger != nil {
		s.logger.Warn("logout call failed", slog.Any("error", err))
	}
	return s.sessions.Clear()
}
