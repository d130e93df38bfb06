package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
)

type ClienteRepository interface {
	FindByID(ctx context.Context, id int) (*model.Cliente, error)
	FindByDNI(ctx context.Context, dni string) (*model.Cliente, error)
	List(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error)
	Create(ctx context.Context, c *model.Cliente) error
	Update(ctx context.Context, c *model.Cliente) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) FindByID(ctx context.Context, id int) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Preload("Localidad").First(&c, "idcliente = ?", id).Error
	return &c, err
}

func (r *clienteRepo) FindByDNI(ctx context.Context, dni string) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("dni = ?", dni).First(&c).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error) {
	var clientes []model.Cliente
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Cliente{})

	if filter.Busqueda != "" {
		like := "%" + filter.Busqueda + "%"
		q = q.Where("appynom ILIKE ? OR dni ILIKE ?", like, like)
	}
	if filter.Localidad > 0 {
		q = q.Where("relalocalidad = ?", filter.Localidad)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Localidad").
		Order("appynom ASC").
		Offset(offset).Limit(filter.Limit).
		Find(&clientes).Error

	return clientes, total, err
}

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Model(&model.Cliente{}).
		Where("idcliente = ?", c.IDCliente).
		Updates(map[string]interface{}{
			"appynom":       c.Appynom,
			"dni":           c.DNI,
			"direccion":     c.Direccion,
			"telefono":      c.Telefono,
			"relalocalidad": c.RelaLocalidad,
			"condicion":     c.Condicion,
		}).Error
}
