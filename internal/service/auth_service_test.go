package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/config"
	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

type stubUsuarioRepo struct {
	usuarios map[int]*model.Usuario
	seq      int
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[int]*model.Usuario)}
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id int) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsuario(_ context.Context, usuario string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Usuario == usuario {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) ListAll(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.seq++
	u.IDUser = r.seq
	r.usuarios[u.IDUser] = u
	return nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.IDUser] = u
	return nil
}

func (r *stubUsuarioRepo) UpdatePassword(_ context.Context, id int, hash string) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.PasswordHash = hash
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func seedUsuario(t *testing.T, r *stubUsuarioRepo, usuario, password string, status int) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	r.seq++
	u := &model.Usuario{
		IDUser:       r.seq,
		Usuario:      usuario,
		PasswordHash: string(hash),
		Nombre:       "Test",
		Role:         "user",
		Status:       status,
	}
	r.usuarios[u.IDUser] = u
	return u
}

func buildAuthSvc() (AuthService, *stubUsuarioRepo, *config.Config) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 8}
	return NewAuthService(repo, cfg), repo, cfg
}

func TestLogin_OK(t *testing.T) {
	svc, repo, cfg := buildAuthSvc()
	u := seedUsuario(t, repo, "cobrador", "clave123", model.UsuarioActivo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "cobrador", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, u.IDUser, resp.Usuario.ID)
	require.NotEmpty(t, resp.Token)

	// el token debe ser HS256 verificable con el secreto configurado
	parsed, err := jwt.Parse(resp.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "cobrador", claims["usuario"])
	assert.Equal(t, "user", claims["role"])
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	svc, repo, _ := buildAuthSvc()
	seedUsuario(t, repo, "cobrador", "clave123", model.UsuarioActivo)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Usuario: "cobrador", Password: "otra"})
	assert.ErrorIs(t, err, apierror.ErrInvalidArgument)
}

func TestLogin_MismoMensajeParaTodaFalla(t *testing.T) {
	svc, repo, _ := buildAuthSvc()
	seedUsuario(t, repo, "cobrador", "clave123", model.UsuarioActivo)
	seedUsuario(t, repo, "inactivo", "clave123", model.UsuarioInactivo)

	_, errNoExiste := svc.Login(context.Background(), dto.LoginRequest{Usuario: "nadie", Password: "x"})
	_, errPassword := svc.Login(context.Background(), dto.LoginRequest{Usuario: "cobrador", Password: "x"})
	_, errInactivo := svc.Login(context.Background(), dto.LoginRequest{Usuario: "inactivo", Password: "clave123"})

	// ningún mensaje debe permitir enumerar usuarios
	require.Error(t, errNoExiste)
	assert.Equal(t, errNoExiste.Error(), errPassword.Error())
	assert.Equal(t, errNoExiste.Error(), errInactivo.Error())
}

func TestCambiarPassword(t *testing.T) {
	svc, repo, _ := buildAuthSvc()
	u := seedUsuario(t, repo, "cobrador", "clave123", model.UsuarioActivo)

	err := svc.CambiarPassword(context.Background(), u.IDUser, dto.CambiarPasswordRequest{
		PasswordActual: "incorrecta",
		PasswordNueva:  "nueva456",
	})
	assert.ErrorIs(t, err, apierror.ErrInvalidArgument)

	err = svc.CambiarPassword(context.Background(), u.IDUser, dto.CambiarPasswordRequest{
		PasswordActual: "clave123",
		PasswordNueva:  "nueva456",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Usuario: "cobrador", Password: "nueva456"})
	assert.NoError(t, err)
}

func TestCrearUsuario_Duplicado(t *testing.T) {
	svc, repo, _ := buildAuthSvc()
	seedUsuario(t, repo, "cobrador", "clave123", model.UsuarioActivo)

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Usuario: "cobrador", Password: "x", Nombre: "Otro", Role: "user",
	})
	assert.ErrorIs(t, err, apierror.ErrConflict)
}
