package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

type ReporteService interface {
	// GetRecibosMes devuelve una fila por cuota impaga a emitir en el mes,
	// opcionalmente restringida a una localidad.
	GetRecibosMes(ctx context.Context, filter dto.RecibosMesFilter) ([]dto.ReporteRow, error)
	GetReciboCuota(ctx context.Context, idcuota int) (*dto.ReporteRow, error)
	GetRecibosSolicitudPagados(ctx context.Context, idsolicitud int) ([]dto.ReporteRow, error)
	// GetSolicitudesReporte arma el reporte por estado sobre las cuotas que
	// vencen el día 20 del mes pedido.
	GetSolicitudesReporte(ctx context.Context, filter dto.SolicitudesReporteFilter) ([]dto.ReporteRow, error)
}

type reporteService struct {
	repo repository.ReporteRepository
}

func NewReporteService(repo repository.ReporteRepository) ReporteService {
	return &reporteService{repo: repo}
}

func (s *reporteService) GetRecibosMes(ctx context.Context, filter dto.RecibosMesFilter) ([]dto.ReporteRow, error) {
	if _, err := time.Parse("2006-01", filter.Mes); err != nil {
		return nil, apierror.InvalidArgument("Mes inválido, formato esperado YYYY-MM")
	}

	rows, err := s.repo.CuotasImpagasDelMes(ctx, filter.Mes)
	if err != nil {
		return nil, err
	}

	if filter.Localidad == 0 {
		return rows, nil
	}
	filtradas := make([]dto.ReporteRow, 0, len(rows))
	for _, row := range rows {
		if row.RelaLocalidad == filter.Localidad {
			filtradas = append(filtradas, row)
		}
	}
	return filtradas, nil
}

func (s *reporteService) GetReciboCuota(ctx context.Context, idcuota int) (*dto.ReporteRow, error) {
	row, err := s.repo.ReciboCuota(ctx, idcuota)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cuota no encontrada")
		}
		return nil, err
	}
	return row, nil
}

func (s *reporteService) GetRecibosSolicitudPagados(ctx context.Context, idsolicitud int) ([]dto.ReporteRow, error) {
	return s.repo.CuotasPagadasDeSolicitud(ctx, idsolicitud)
}

// ── GetSolicitudesReporte ─────────────────────────────────────────────────────
// Tres estrategias de agrupado distintas según el estado pedido:
//
//	pagas   → una fila por cliente, sumando los importes de sus cuotas.
//	bajas   → una fila por cliente, con el total histórico pagado de su
//	          solicitud (consulta lateral), no el importe de la cuota del mes.
//	impagas → una fila por cliente: la primera según el orden por
//	          nrosolicitud, sin sumar. Comportamiento heredado del sistema
//	          anterior, se conserva tal cual.
//
// En modo "detalle" se devuelven las filas filtradas y ordenadas sin agrupar.

func (s *reporteService) GetSolicitudesReporte(ctx context.Context, filter dto.SolicitudesReporteFilter) ([]dto.ReporteRow, error) {
	mes, err := time.Parse("2006-01", filter.Mes)
	if err != nil {
		return nil, apierror.InvalidArgument("Mes inválido, formato esperado YYYY-MM")
	}

	// El corte del ciclo de facturación es el vencimiento del día 20.
	vencimiento := time.Date(mes.Year(), mes.Month(), diaVencimiento, 0, 0, 0, 0, time.UTC)
	rows, err := s.repo.CuotasPorVencimiento(ctx, vencimiento)
	if err != nil {
		return nil, err
	}

	rows = filtrarPorEstado(rows, filter.Estado)

	// Orden estable por nrosolicitud (comparación de strings) para mantener
	// el orden del reporte histórico.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].NroSolicitud < rows[j].NroSolicitud
	})

	if filter.Modo == "detalle" {
		return rows, nil
	}

	switch filter.Estado {
	case "bajas":
		return s.resumirBajas(ctx, rows)
	case "impagas":
		return resumirPrimeraPorCliente(rows), nil
	default:
		return resumirSumandoPorCliente(rows), nil
	}
}

func filtrarPorEstado(rows []dto.ReporteRow, estado string) []dto.ReporteRow {
	out := make([]dto.ReporteRow, 0, len(rows))
	for _, row := range rows {
		switch estado {
		case "bajas":
			if row.EstadoSolicitud == 0 {
				out = append(out, row)
			}
		case "impagas":
			if row.EstadoSolicitud == 1 && row.EstadoCuota == 0 {
				out = append(out, row)
			}
		default: // pagas
			if row.EstadoSolicitud == 1 && row.EstadoCuota == 2 {
				out = append(out, row)
			}
		}
	}
	return out
}

// resumirSumandoPorCliente agrupa por nombre de cliente acumulando el importe.
// La primera fila de cada cliente conserva el resto de sus campos.
func resumirSumandoPorCliente(rows []dto.ReporteRow) []dto.ReporteRow {
	out := make([]dto.ReporteRow, 0, len(rows))
	indice := make(map[string]int, len(rows))

	for _, row := range rows {
		if i, visto := indice[row.Cliente]; visto {
			out[i].Importe = out[i].Importe.Add(row.Importe)
			continue
		}
		indice[row.Cliente] = len(out)
		out = append(out, row)
	}
	return out
}

// resumirPrimeraPorCliente conserva sólo la primera fila de cada cliente en
// el orden de entrada, sin acumular importes.
func resumirPrimeraPorCliente(rows []dto.ReporteRow) []dto.ReporteRow {
	out := make([]dto.ReporteRow, 0, len(rows))
	vistos := make(map[string]bool, len(rows))

	for _, row := range rows {
		if vistos[row.Cliente] {
			continue
		}
		vistos[row.Cliente] = true
		out = append(out, row)
	}
	return out
}

// resumirBajas reemplaza el importe de cada fila por el total pagado de su
// solicitud antes de la baja, y luego agrupa una fila por cliente.
func (s *reporteService) resumirBajas(ctx context.Context, rows []dto.ReporteRow) ([]dto.ReporteRow, error) {
	ids := make([]int, 0, len(rows))
	vistos := make(map[int]bool, len(rows))
	for _, row := range rows {
		if !vistos[row.IDSolicitud] {
			vistos[row.IDSolicitud] = true
			ids = append(ids, row.IDSolicitud)
		}
	}

	totales, err := s.repo.SumPagadasPorSolicitud(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("total pagado por solicitud: %w", err)
	}
	porSolicitud := make(map[int]dto.SolicitudPagadoTotal, len(totales))
	for _, t := range totales {
		porSolicitud[t.IDSolicitud] = t
	}

	out := make([]dto.ReporteRow, 0, len(rows))
	clientes := make(map[string]bool, len(rows))
	for _, row := range rows {
		if clientes[row.Cliente] {
			continue
		}
		clientes[row.Cliente] = true
		if t, ok := porSolicitud[row.IDSolicitud]; ok {
			row.Importe = t.TotalPagado
		} else {
			// sin cuotas pagadas antes de la baja: no se cobró nada
			row.Importe = decimal.Zero
		}
		out = append(out, row)
	}
	return out, nil
}
