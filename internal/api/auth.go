package api

import (
	"context"
	"fmt"
	"net/http"
)

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the account registration payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// User is the authenticated account profile.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService calls the auth endpoints. Token handling is the only part
// this client interprets; everything else passes through.
type AuthService struct {
	c *Client
}

// Login exchanges credentials for a token pair and stores it in the session.
func (s AuthService) Login(ctx context.Context, creds Credentials) error {
	var resp tokenResponse
	if err := s.c.post(ctx, "/auth/login", creds, &resp); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	s.c.session.SetTokens(ctx, resp.AccessToken, resp.RefreshToken)
	return nil
}

// Register creates an account. The API does not log the account in; call
// Login afterwards.
func (s AuthService) Register(ctx context.Context, req RegisterRequest) error {
	if err := s.c.post(ctx, "/auth/register", req, nil); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Me fetches the authenticated profile.
func (s AuthService) Me(ctx context.Context) (*User, error) {
	var resp struct {
		Data User `json:"data"`
	}
	if err := s.c.get(ctx, "/auth/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &resp.Data, nil
}

// UpdateProfile updates the editable profile fields.
func (s AuthService) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	var resp struct {
		Data User `json:"data"`
	}
	if err := s.c.put(ctx, "/auth/profile", req, &resp); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &resp.Data, nil
}

// Logout invalidates the session server-side, then drops the local tokens
// regardless of the outcome.
func (s AuthService) Logout(ctx context.Context) error {
	err := s.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil, nil)
	s.c.session.Clear(ctx)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
