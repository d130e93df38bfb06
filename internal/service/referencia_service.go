package service

// Servicios CRUD de las tablas de referencia. Lógica mínima: existencia y
// mapeo de errores; el resto lo resuelven los repositorios.

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

type LocalidadService interface {
	Listar(ctx context.Context) ([]model.Localidad, error)
	Crear(ctx context.Context, req dto.CrearLocalidadRequest) (*model.Localidad, error)
	Eliminar(ctx context.Context, id int) error
}

type localidadService struct {
	repo repository.LocalidadRepository
}

func NewLocalidadService(repo repository.LocalidadRepository) LocalidadService {
	return &localidadService{repo: repo}
}

func (s *localidadService) Listar(ctx context.Context) ([]model.Localidad, error) {
	return s.repo.ListAll(ctx)
}

func (s *localidadService) Crear(ctx context.Context, req dto.CrearLocalidadRequest) (*model.Localidad, error) {
	l := &model.Localidad{Nombre: req.Nombre}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *localidadService) Eliminar(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Localidad no encontrada")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

type ProductoService interface {
	Listar(ctx context.Context) ([]model.Producto, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarProductoRequest) (*model.Producto, error)
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Listar(ctx context.Context) ([]model.Producto, error) {
	return s.repo.ListAll(ctx)
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	p := &model.Producto{Descripcion: req.Descripcion, Estado: 1}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productoService) Actualizar(ctx context.Context, id int, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Producto no encontrado")
		}
		return nil, err
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

type VendedorService interface {
	Listar(ctx context.Context) ([]model.Vendedor, error)
	Crear(ctx context.Context, req dto.CrearVendedorRequest) (*model.Vendedor, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarVendedorRequest) (*model.Vendedor, error)
}

type vendedorService struct {
	repo repository.VendedorRepository
}

func NewVendedorService(repo repository.VendedorRepository) VendedorService {
	return &vendedorService{repo: repo}
}

func (s *vendedorService) Listar(ctx context.Context) ([]model.Vendedor, error) {
	return s.repo.ListAll(ctx)
}

func (s *vendedorService) Crear(ctx context.Context, req dto.CrearVendedorRequest) (*model.Vendedor, error) {
	v := &model.Vendedor{
		ApellidoNombre: req.ApellidoNombre,
		DNI:            req.DNI,
		Telefono:       req.Telefono,
		Estado:         1,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vendedorService) Actualizar(ctx context.Context, id int, req dto.ActualizarVendedorRequest) (*model.Vendedor, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Vendedor no encontrado")
		}
		return nil, err
	}
	if req.ApellidoNombre != nil {
		v.ApellidoNombre = *req.ApellidoNombre
	}
	if req.DNI != nil {
		v.DNI = *req.DNI
	}
	if req.Telefono != nil {
		v.Telefono = *req.Telefono
	}
	if req.Estado != nil {
		v.Estado = *req.Estado
	}
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}
