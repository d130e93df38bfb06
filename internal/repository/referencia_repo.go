package repository

// Repositorios de las tablas de referencia (localidad, producto, vendedor).
// CRUD chico, sin paginación: estas tablas tienen decenas de filas.

import (
	"context"

	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/model"
)

type LocalidadRepository interface {
	FindByID(ctx context.Context, id int) (*model.Localidad, error)
	ListAll(ctx context.Context) ([]model.Localidad, error)
	Create(ctx context.Context, l *model.Localidad) error
	Delete(ctx context.Context, id int) error
}

type localidadRepo struct{ db *gorm.DB }

func NewLocalidadRepository(db *gorm.DB) LocalidadRepository { return &localidadRepo{db: db} }

func (r *localidadRepo) FindByID(ctx context.Context, id int) (*model.Localidad, error) {
	var l model.Localidad
	err := r.db.WithContext(ctx).First(&l, "idlocalidad = ?", id).Error
	return &l, err
}

func (r *localidadRepo) ListAll(ctx context.Context) ([]model.Localidad, error) {
	var localidades []model.Localidad
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&localidades).Error
	return localidades, err
}

func (r *localidadRepo) Create(ctx context.Context, l *model.Localidad) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *localidadRepo) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&model.Localidad{}, "idlocalidad = ?", id).Error
}

type ProductoRepository interface {
	FindByID(ctx context.Context, id int) (*model.Producto, error)
	ListAll(ctx context.Context) ([]model.Producto, error)
	Create(ctx context.Context, p *model.Producto) error
	Update(ctx context.Context, p *model.Producto) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) FindByID(ctx context.Context, id int) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, "idproducto = ?", id).Error
	return &p, err
}

func (r *productoRepo) ListAll(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("descripcion ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("idproducto = ?", p.IDProducto).
		Updates(map[string]interface{}{
			"descripcion": p.Descripcion,
			"estado":      p.Estado,
		}).Error
}

type VendedorRepository interface {
	FindByID(ctx context.Context, id int) (*model.Vendedor, error)
	ListAll(ctx context.Context) ([]model.Vendedor, error)
	Create(ctx context.Context, v *model.Vendedor) error
	Update(ctx context.Context, v *model.Vendedor) error
}

type vendedorRepo struct{ db *gorm.DB }

func NewVendedorRepository(db *gorm.DB) VendedorRepository { return &vendedorRepo{db: db} }

func (r *vendedorRepo) FindByID(ctx context.Context, id int) (*model.Vendedor, error) {
	var v model.Vendedor
	err := r.db.WithContext(ctx).First(&v, "idvendedor = ?", id).Error
	return &v, err
}

func (r *vendedorRepo) ListAll(ctx context.Context) ([]model.Vendedor, error) {
	var vendedores []model.Vendedor
	err := r.db.WithContext(ctx).Order("apellidonombre ASC").Find(&vendedores).Error
	return vendedores, err
}

func (r *vendedorRepo) Create(ctx context.Context, v *model.Vendedor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vendedorRepo) Update(ctx context.Context, v *model.Vendedor) error {
	return r.db.WithContext(ctx).Model(&model.Vendedor{}).
		Where("idvendedor = ?", v.IDVendedor).
		Updates(map[string]interface{}{
			"apellidonombre": v.ApellidoNombre,
			"dni":            v.DNI,
			"telefono":       v.Telefono,
			"estado":         v.Estado,
		}).Error
}
