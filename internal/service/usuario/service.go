package usuario

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/munidigital/papeletas-backend/internal/domain/usuario"
	"github.com/munidigital/papeletas-backend/internal/pkg/validator"
)

type UsuarioServiceImpl struct {
	usuario.UsuarioRepository
}

func NewUsuarioService(usuarioRepository usuario.UsuarioRepository) usuario.UsuarioService {
	return &UsuarioServiceImpl{
		UsuarioRepository: usuarioRepository,
	}
}

// Create implements usuario.UsuarioService. The account's initial password is
// its DNI; personnel change it through the admin after first login.
func (s *UsuarioServiceImpl) Create(ctx context.Context, req usuario.CreateUsuarioRequest) (usuario.UsuarioResponse, error) {
	if err := req.Validate(); err != nil {
		return usuario.UsuarioResponse{}, err
	}

	exists, err := s.ExistsByUsuario(ctx, req.Usuario, nil)
	if err != nil {
		return usuario.UsuarioResponse{}, fmt.Errorf("failed to check usuario: %w", err)
	}
	if exists {
		return usuario.UsuarioResponse{}, usuario.ErrUsuarioExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.DNI), bcrypt.DefaultCost)
	if err != nil {
		return usuario.UsuarioResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	nuevo := usuario.Usuario{
		ID:             uuid.NewString(),
		NombreCompleto: req.NombreCompleto,
		Usuario:        req.Usuario,
		DNI:            req.DNI,
		Rol:            usuario.Rol(req.Rol),
		PasswordHash:   string(hash),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	creado, err := s.UsuarioRepository.Create(ctx, nuevo)
	if err != nil {
		return usuario.UsuarioResponse{}, fmt.Errorf("failed to create usuario: %w", err)
	}

	return toResponse(creado), nil
}

// List implements usuario.UsuarioService.
func (s *UsuarioServiceImpl) List(ctx context.Context) ([]usuario.UsuarioResponse, error) {
	usuarios, err := s.UsuarioRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}

	responses := make([]usuario.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		responses = append(responses, toResponse(u))
	}
	return responses, nil
}

// Update implements usuario.UsuarioService.
func (s *UsuarioServiceImpl) Update(ctx context.Context, id string, req usuario.UpdateUsuarioRequest) (usuario.UsuarioResponse, error) {
	if err := req.Validate(); err != nil {
		return usuario.UsuarioResponse{}, err
	}

	if !validator.IsValidUUID(id) {
		return usuario.UsuarioResponse{}, usuario.ErrUsuarioNotFound
	}

	actual, err := s.GetByID(ctx, id)
	if err != nil {
		return usuario.UsuarioResponse{}, err
	}

	if req.Usuario != nil && *req.Usuario != actual.Usuario {
		exists, err := s.ExistsByUsuario(ctx, *req.Usuario, &id)
		if err != nil {
			return usuario.UsuarioResponse{}, fmt.Errorf("failed to check usuario: %w", err)
		}
		if exists {
			return usuario.UsuarioResponse{}, usuario.ErrUsuarioExists
		}
		actual.Usuario = *req.Usuario
	}

	if req.NombreCompleto != nil {
		actual.NombreCompleto = *req.NombreCompleto
	}
	if req.DNI != nil {
		actual.DNI = *req.DNI
	}
	if req.Rol != nil {
		actual.Rol = usuario.Rol(*req.Rol)
	}
	actual.UpdatedAt = time.Now()

	actualizado, err := s.UsuarioRepository.Update(ctx, actual)
	if err != nil {
		return usuario.UsuarioResponse{}, fmt.Errorf("failed to update usuario: %w", err)
	}

	return toResponse(actualizado), nil
}

// Delete implements usuario.UsuarioService. The last administrador account is
// protected so the panel can never lock itself out.
func (s *UsuarioServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return usuario.ErrUsuarioNotFound
	}

	actual, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if actual.EsAdministrador() {
		porRol, err := s.CountByRol(ctx)
		if err != nil {
			return fmt.Errorf("failed to count usuarios: %w", err)
		}
		if porRol[string(usuario.RolAdministrador)] <= 1 {
			return usuario.ErrCannotDeleteLastAdmin
		}
	}

	if err := s.UsuarioRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete usuario: %w", err)
	}
	return nil
}

func toResponse(u usuario.Usuario) usuario.UsuarioResponse {
	return usuario.UsuarioResponse{
		ID:             u.ID,
		NombreCompleto: u.NombreCompleto,
		Usuario:        u.Usuario,
		DNI:            u.DNI,
		Rol:            string(u.Rol),
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      u.UpdatedAt.Format(time.RFC3339),
	}
}
