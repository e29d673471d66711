package auth

import (
	"time"

	"shift-tracker/internal/user"
)

type SessionRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

type SessionResponse struct {
	AccessToken string            `json:"access_token"`
	ExpiresAt   time.Time         `json:"expires_at"`
	User        user.UserResponse `json:"user"`
}
