package service

// Recalculo de los totales derivados de una solicitud.
//
// totalabonado y porcentajepagado son caches materializados: se recalculan
// SIEMPRE desde las cuotas pagadas, nunca se incrementan a mano. Esta función
// se invoca dentro de la misma transacción que mutó las cuotas, de modo que
// el recálculo observa el estado recién escrito y ambas escrituras se
// confirman juntas.

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

var cien = decimal.NewFromInt(100)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// recalcularTotales recomputa y persiste totalabonado y porcentajepagado de
// la solicitud a partir de sus cuotas pagadas.
//
//	totalabonado     = SUM(importe) de las cuotas con estado pagada
//	porcentajepagado = round2(totalabonado * 100 / totalapagar)
//
// Falla con NotFound si la solicitud no existe y con InvalidArgument si
// totalapagar es cero (división por cero: se rechaza en vez de producir un
// porcentaje sin sentido).
func recalcularTotales(
	ctx context.Context,
	tx *gorm.DB,
	solicitudes repository.SolicitudRepository,
	cuotas repository.CuotaRepository,
	idsolicitud int,
) (*dto.SolicitudTotales, error) {
	sol, err := solicitudes.FindByIDTx(ctx, tx, idsolicitud)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Solicitud no encontrada")
		}
		return nil, err
	}

	if sol.TotalAPagar.IsZero() {
		return nil, apierror.InvalidArgument("La solicitud tiene totalapagar en cero")
	}

	totalAbonado, err := cuotas.SumImportePagadas(ctx, tx, idsolicitud)
	if err != nil {
		return nil, err
	}

	porcentaje := totalAbonado.Mul(cien).Div(sol.TotalAPagar).Round(2)

	if err := solicitudes.UpdateTotalesTx(ctx, tx, idsolicitud, totalAbonado, porcentaje); err != nil {
		return nil, err
	}

	return &dto.SolicitudTotales{
		TotalAbonado:     totalAbonado,
		PorcentajePagado: porcentaje,
	}, nil
}
