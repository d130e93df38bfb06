package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/config"
	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

const bcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CambiarPassword(ctx context.Context, userID int, req dto.CambiarPasswordRequest) error
	Me(ctx context.Context, userID int) (*dto.UsuarioInfo, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioInfo, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioInfo, error)
	ActualizarUsuario(ctx context.Context, id int, req dto.ActualizarUsuarioRequest) (*dto.UsuarioInfo, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsuario(ctx, req.Usuario)
	if err != nil {
		// Mismo mensaje para usuario inexistente y password incorrecta.
		return nil, apierror.InvalidArgument("Credenciales inválidas")
	}
	if user.Status != model.UsuarioActivo {
		return nil, apierror.InvalidArgument("Credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.InvalidArgument("Credenciales inválidas")
	}

	token, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:   token,
		Usuario: usuarioInfo(user),
	}, nil
}

func (s *authService) CambiarPassword(ctx context.Context, userID int, req dto.CambiarPasswordRequest) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Usuario no encontrado")
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.PasswordActual)); err != nil {
		return apierror.InvalidArgument("La contraseña actual no es correcta")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.PasswordNueva), bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, string(hash))
}

func (s *authService) Me(ctx context.Context, userID int) (*dto.UsuarioInfo, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Usuario no encontrado")
		}
		return nil, err
	}
	info := usuarioInfo(user)
	return &info, nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioInfo, error) {
	if _, err := s.repo.FindByUsuario(ctx, req.Usuario); err == nil {
		return nil, apierror.Conflict("Ya existe un usuario con ese nombre")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Usuario:      req.Usuario,
		PasswordHash: string(hash),
		Nombre:       req.Nombre,
		Email:        req.Email,
		Role:         req.Role,
		Status:       model.UsuarioActivo,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	info := usuarioInfo(user)
	return &info, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioInfo, error) {
	usuarios, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]dto.UsuarioInfo, 0, len(usuarios))
	for i := range usuarios {
		infos = append(infos, usuarioInfo(&usuarios[i]))
	}
	return infos, nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id int, req dto.ActualizarUsuarioRequest) (*dto.UsuarioInfo, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Usuario no encontrado")
		}
		return nil, err
	}
	if req.Nombre != nil {
		user.Nombre = *req.Nombre
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	info := usuarioInfo(user)
	return &info, nil
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.IDUser,
		"usuario": user.Usuario,
		"nombre":  user.Nombre,
		"role":    user.Role,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioInfo(u *model.Usuario) dto.UsuarioInfo {
	return dto.UsuarioInfo{
		ID:      u.IDUser,
		Usuario: u.Usuario,
		Nombre:  u.Nombre,
		Email:   u.Email,
		Role:    u.Role,
		Status:  u.Status,
	}
}
