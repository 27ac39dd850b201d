package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/munidigital/papeletas-backend/internal/domain/auth"
	"github.com/munidigital/papeletas-backend/internal/domain/usuario"
	"github.com/munidigital/papeletas-backend/internal/pkg/jwt"
	"github.com/munidigital/papeletas-backend/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	usuario.UsuarioRepository
	jwt.Service
	postgresql.RefreshTokenRepository
}

func NewAuthService(usuarioRepository usuario.UsuarioRepository, jwtService jwt.Service, refreshTokenRepository postgresql.RefreshTokenRepository) auth.AuthService {
	return &AuthServiceImpl{
		UsuarioRepository:      usuarioRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	usuarioData, err := a.UsuarioRepository.GetByUsuario(ctx, req.Usuario)
	if err != nil {
		if err == pgx.ErrNoRows || err == usuario.ErrUsuarioNotFound {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get usuario: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuarioData.PasswordHash), []byte(req.Contrasena)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	var resp auth.LoginResponse

	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(usuarioData.ID, usuarioData.Usuario, usuarioData.Rol)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	resp.RefreshToken, resp.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(usuarioData.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := a.CreateRefreshToken(ctx, usuarioData.ID, resp.RefreshToken, resp.RefreshTokenExpiresIn); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to save refresh token: %w", err)
	}

	resp.Usuario = auth.UserData{
		ID:             usuarioData.ID,
		NombreCompleto: usuarioData.NombreCompleto,
		Usuario:        usuarioData.Usuario,
		Rol:            string(usuarioData.Rol),
	}

	return resp, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if refreshToken == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	usuarioID, err := a.Service.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	usuarioData, err := a.UsuarioRepository.GetByID(ctx, usuarioID)
	if err != nil {
		if err == pgx.ErrNoRows || err == usuario.ErrUsuarioNotFound {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to get usuario: %w", err)
	}

	var resp auth.RefreshResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(usuarioData.ID, usuarioData.Usuario, usuarioData.Rol)
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return resp, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	if err := a.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	a.Service.RevokeToken(refreshToken)

	return nil
}
