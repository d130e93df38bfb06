package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/infra"
	"github.com/geraLv/sistema-gestion/internal/model"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

const (
	maxComprobanteBytes = 10 << 20 // 10 MB
	presignExpiration   = 15 * time.Minute
)

var tiposPermitidos = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// ComprobanteService sube los respaldos de pago al bucket y guarda sus
// metadatos. La descarga se resuelve con URLs prefirmadas, el binario nunca
// pasa dos veces por la API.
type ComprobanteService interface {
	Subir(ctx context.Context, idsolicitud int, relacuota *int, nombre, contentType string, size int64, body io.Reader, subidoPor string) (*model.Comprobante, error)
	ListarPorSolicitud(ctx context.Context, idsolicitud int) ([]model.Comprobante, error)
	URLDescarga(ctx context.Context, id int) (string, error)
	Eliminar(ctx context.Context, id int) error
}

type comprobanteService struct {
	repo          repository.ComprobanteRepository
	solicitudRepo repository.SolicitudRepository
	storage       infra.ObjectStorage
}

func NewComprobanteService(repo repository.ComprobanteRepository, solicitudRepo repository.SolicitudRepository, storage infra.ObjectStorage) ComprobanteService {
	return &comprobanteService{repo: repo, solicitudRepo: solicitudRepo, storage: storage}
}

func (s *comprobanteService) Subir(ctx context.Context, idsolicitud int, relacuota *int, nombre, contentType string, size int64, body io.Reader, subidoPor string) (*model.Comprobante, error) {
	if size <= 0 || size > maxComprobanteBytes {
		return nil, apierror.InvalidArgument("El archivo debe pesar entre 1 byte y 10 MB")
	}
	if !tiposPermitidos[contentType] {
		return nil, apierror.InvalidArgument("Tipo de archivo no permitido")
	}
	if _, err := s.solicitudRepo.FindByID(ctx, idsolicitud); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Solicitud no encontrada")
		}
		return nil, err
	}

	key := fmt.Sprintf("solicitudes/%d/%s%s", idsolicitud, uuid.NewString(), filepath.Ext(nombre))
	if err := s.storage.Put(ctx, key, contentType, body); err != nil {
		return nil, fmt.Errorf("subir comprobante: %w", err)
	}

	comp := &model.Comprobante{
		RelaSolicitud: idsolicitud,
		RelaCuota:     relacuota,
		NombreArchivo: nombre,
		ClaveObjeto:   key,
		TipoContenido: contentType,
		Tamano:        size,
		SubidoPor:     subidoPor,
	}
	if err := s.repo.Create(ctx, comp); err != nil {
		// El objeto quedó huérfano en el bucket; se borra de forma laxa.
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("key", key).Msg("no se pudo limpiar el objeto huérfano")
		}
		return nil, err
	}
	return comp, nil
}

func (s *comprobanteService) ListarPorSolicitud(ctx context.Context, idsolicitud int) ([]model.Comprobante, error) {
	return s.repo.ListBySolicitud(ctx, idsolicitud)
}

func (s *comprobanteService) URLDescarga(ctx context.Context, id int) (string, error) {
	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apierror.NotFound("Comprobante no encontrado")
		}
		return "", err
	}
	return s.storage.PresignGet(ctx, comp.ClaveObjeto, presignExpiration)
}

func (s *comprobanteService) Eliminar(ctx context.Context, id int) error {
	comp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Comprobante no encontrado")
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, comp.ClaveObjeto); err != nil {
		log.Warn().Err(err).Str("key", comp.ClaveObjeto).Msg("no se pudo borrar el objeto del bucket")
	}
	return nil
}
