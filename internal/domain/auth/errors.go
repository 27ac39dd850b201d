package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid usuario or credentials")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
)
