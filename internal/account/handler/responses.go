package handler

import (
	"time"

	"contractease/internal/account/models"
	"contractease/internal/account/service"
)

// AccountResponse renders a user or client account. Password hashes never
// leave the service boundary.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func toUserResponse(u *models.User) AccountResponse {
	return AccountResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toClientResponse(c *models.Client) AccountResponse {
	return AccountResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func toSessionResponse(s *service.Session) SessionResponse {
	return SessionResponse{
		Token:     s.Token,
		Role:      s.Role,
		ExpiresAt: s.ExpiresAt,
	}
}
