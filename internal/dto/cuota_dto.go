package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/geraLv/sistema-gestion/internal/model"
)

type PagarMultiplesRequest struct {
	IDCuotas []int `json:"idcuotas" validate:"required,min=1,dive,gt=0"`
}

type ModificarImporteRequest struct {
	Importe decimal.Decimal `json:"importe" validate:"required"`
}

// PagoResponse es el resultado de pagar una cuota: la cuota ya en estado
// pagada más los totales recalculados de su solicitud.
type PagoResponse struct {
	CuotaPagada          *model.Cuota     `json:"cuotaPagada"`
	SolicitudActualizada SolicitudTotales `json:"solicitudActualizada"`
}

// PagoItemResultado es una entrada del resultado de un pago múltiple:
// o bien el pago exitoso, o bien el error de esa cuota puntual.
type PagoItemResultado struct {
	IDCuota int           `json:"idcuota"`
	Pago    *PagoResponse `json:"pago,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type PagoMultipleResponse struct {
	TotalProcesadas int                 `json:"totalProcesadas"`
	Exitosas        int                 `json:"exitosas"`
	Fallidas        int                 `json:"fallidas"`
	Resultados      []PagoItemResultado `json:"resultados"`
}

// CuotaFilter agrupa los parámetros del listado de cuotas con detalle.
type CuotaFilter struct {
	Busqueda string    // matchea nrosolicitud o appynom
	Estado   *int      // nil = todas
	Filtro   string    // "" | "pagadas" | "impagas" | "vencidas"
	Hoy      time.Time // corte de "vencidas": impagas con vencimiento anterior
	Page     int
	Limit    int
}

// CuotasResumen acompaña el cronograma de una solicitud con sus totales.
type CuotasResumen struct {
	Total       int             `json:"total"`
	Pagadas     int             `json:"pagadas"`
	Impagas     int             `json:"impagas"`
	MontoTotal  decimal.Decimal `json:"montoTotal"`
	MontoPagado decimal.Decimal `json:"montoPagado"`
	MontoImpago decimal.Decimal `json:"montoImpago"`
}

// ResumenDeCuotas calcula el resumen sobre un cronograma ya cargado.
func ResumenDeCuotas(cuotas []model.Cuota) CuotasResumen {
	r := CuotasResumen{
		Total:       len(cuotas),
		MontoTotal:  decimal.Zero,
		MontoPagado: decimal.Zero,
		MontoImpago: decimal.Zero,
	}
	for _, c := range cuotas {
		r.MontoTotal = r.MontoTotal.Add(c.Importe)
		if c.Estado == model.CuotaPagada {
			r.Pagadas++
			r.MontoPagado = r.MontoPagado.Add(c.Importe)
		} else {
			r.Impagas++
			r.MontoImpago = r.MontoImpago.Add(c.Importe)
		}
	}
	return r
}
