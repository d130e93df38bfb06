package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

type ClienteService interface {
	Listar(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error)
	Obtener(ctx context.Context, id int) (*model.Cliente, error)
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarClienteRequest) (*model.Cliente, error)
}

type clienteService struct {
	repo repository.ClienteRepository
	now  func() time.Time
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo, now: time.Now}
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}

func (s *clienteService) Obtener(ctx context.Context, id int) (*model.Cliente, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cliente no encontrado")
		}
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error) {
	if _, err := s.repo.FindByDNI(ctx, req.DNI); err == nil {
		return nil, apierror.Conflict("Ya existe un cliente con ese DNI")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.Cliente{
		Appynom:       req.Appynom,
		DNI:           req.DNI,
		Direccion:     req.Direccion,
		Telefono:      req.Telefono,
		RelaLocalidad: req.RelaLocalidad,
		Condicion:     req.Condicion,
		FechaAlta:     s.now(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id int, req dto.ActualizarClienteRequest) (*model.Cliente, error) {
	c, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DNI != nil && *req.DNI != c.DNI {
		if otro, err := s.repo.FindByDNI(ctx, *req.DNI); err == nil && otro.IDCliente != id {
			return nil, apierror.Conflict("Ya existe un cliente con ese DNI")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		c.DNI = *req.DNI
	}
	if req.Appynom != nil {
		c.Appynom = *req.Appynom
	}
	if req.Direccion != nil {
		c.Direccion = *req.Direccion
	}
	if req.Telefono != nil {
		c.Telefono = *req.Telefono
	}
	if req.RelaLocalidad != nil {
		c.RelaLocalidad = *req.RelaLocalidad
	}
	if req.Condicion != nil {
		c.Condicion = *req.Condicion
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
