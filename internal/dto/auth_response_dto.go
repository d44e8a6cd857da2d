package dto

import "time"

// LoginRequest carries the shared household access key.
type LoginRequest struct {
	AccessKey string `json:"accessKey" binding:"required"`
}

// LoginResponse returns the bearer token guarding the API.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
