package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/model"
)

type UsuarioRepository interface {
	FindByID(ctx context.Context, id int) (*model.Usuario, error)
	FindByUsuario(ctx context.Context, usuario string) (*model.Usuario, error)
	ListAll(ctx context.Context) ([]model.Usuario, error)
	Create(ctx context.Context, u *model.Usuario) error
	Update(ctx context.Context, u *model.Usuario) error
	UpdatePassword(ctx context.Context, id int, hash string) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) FindByID(ctx context.Context, id int) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "iduser = ?", id).Error
	return &u, err
}

func (r *usuarioRepo) FindByUsuario(ctx context.Context, usuario string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("usuario = ?", usuario).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) ListAll(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.WithContext(ctx).Order("usuario ASC").Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("iduser = ?", u.IDUser).
		Updates(map[string]interface{}{
			"nombre": u.Nombre,
			"email":  u.Email,
			"role":   u.Role,
			"status": u.Status,
		}).Error
}

func (r *usuarioRepo) UpdatePassword(ctx context.Context, id int, hash string) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("iduser = ?", id).
		Update("password", hash).Error
}
