package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/munidigital/papeletas-backend/internal/domain/auth"
	"github.com/munidigital/papeletas-backend/internal/domain/usuario"
	"github.com/munidigital/papeletas-backend/internal/pkg/jwt"
)

type stubUsuarioRepo struct {
	usuarios map[string]usuario.Usuario
}

func (s *stubUsuarioRepo) List(ctx context.Context) ([]usuario.Usuario, error) {
	return nil, nil
}

func (s *stubUsuarioRepo) GetByID(ctx context.Context, id string) (usuario.Usuario, error) {
	u, ok := s.usuarios[id]
	if !ok {
		return usuario.Usuario{}, usuario.ErrUsuarioNotFound
	}
	return u, nil
}

func (s *stubUsuarioRepo) GetByUsuario(ctx context.Context, nombreUsuario string) (usuario.Usuario, error) {
	for _, u := range s.usuarios {
		if u.Usuario == nombreUsuario {
			return u, nil
		}
	}
	return usuario.Usuario{}, usuario.ErrUsuarioNotFound
}

func (s *stubUsuarioRepo) ExistsByUsuario(ctx context.Context, nombreUsuario string, excludeID *string) (bool, error) {
	return false, nil
}

func (s *stubUsuarioRepo) Create(ctx context.Context, nuevo usuario.Usuario) (usuario.Usuario, error) {
	return nuevo, nil
}

func (s *stubUsuarioRepo) Update(ctx context.Context, actualizado usuario.Usuario) (usuario.Usuario, error) {
	return actualizado, nil
}

func (s *stubUsuarioRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *stubUsuarioRepo) CountByRol(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

type stubTokenRepo struct {
	creados   map[string]bool
	revocados map[string]bool
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{creados: make(map[string]bool), revocados: make(map[string]bool)}
}

func (s *stubTokenRepo) CreateRefreshToken(ctx context.Context, usuarioID string, token string, expiresAt int64) error {
	s.creados[token] = true
	return nil
}

func (s *stubTokenRepo) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	return s.revocados[token], nil
}

func (s *stubTokenRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	s.revocados[token] = true
	return nil
}

func setupService(t *testing.T) (auth.AuthService, *stubTokenRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("45678912"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUsuarioRepo{usuarios: map[string]usuario.Usuario{
		"u1": {
			ID:             "u1",
			NombreCompleto: "Maria Quispe",
			Usuario:        "mquispe",
			DNI:            "45678912",
			Rol:            usuario.RolRRHH,
			PasswordHash:   string(hash),
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		},
	}}

	tokenRepo := newStubTokenRepo()
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")

	return NewAuthService(repo, jwtService, tokenRepo), tokenRepo
}

func TestLoginSuccess(t *testing.T) {
	svc, tokenRepo := setupService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Usuario:    "mquispe",
		Contrasena: "45678912",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, time.Now().Unix())
	assert.Equal(t, "mquispe", resp.Usuario.Usuario)
	assert.Equal(t, "rrhh", resp.Usuario.Rol)
	assert.True(t, tokenRepo.creados[resp.RefreshToken])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Usuario:    "mquispe",
		Contrasena: "incorrecta",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUsuario(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Usuario:    "nadie",
		Contrasena: "45678912",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	svc, _ := setupService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Usuario:    "mquispe",
		Contrasena: "45678912",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := setupService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Usuario:    "mquispe",
		Contrasena: "45678912",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshAfterLogout(t *testing.T) {
	svc, _ := setupService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Usuario:    "mquispe",
		Contrasena: "45678912",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
