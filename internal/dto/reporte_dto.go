package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReporteRow es una fila desnormalizada Cuota × Solicitud × Cliente × Producto
// sobre la que operan los reportes. El repositorio arma estas filas con un
// join y los servicios las filtran y agrupan en memoria.
type ReporteRow struct {
	IDCuota          int             `json:"idcuota"`
	NroCuota         int             `json:"nrocuota"`
	Importe          decimal.Decimal `json:"importe"`
	Vencimiento      time.Time       `json:"vencimiento"`
	EstadoCuota      int             `json:"estadocuota"`
	IDSolicitud      int             `json:"idsolicitud"`
	NroSolicitud     string          `json:"nrosolicitud"`
	EstadoSolicitud  int             `json:"estadosolicitud"`
	CantidadCuotas   int             `json:"cantidadcuotas"`
	TotalAPagar      decimal.Decimal `json:"totalapagar"`
	TotalAbonado     decimal.Decimal `json:"totalabonado"`
	PorcentajePagado decimal.Decimal `json:"porcentajepagado"`
	Cliente          string          `json:"cliente"`
	DNI              string          `json:"dni"`
	Direccion        string          `json:"direccion"`
	Telefono         string          `json:"telefono"`
	RelaLocalidad    int             `json:"relalocalidad"`
	Localidad        string          `json:"localidad"`
	Producto         string          `json:"producto"`
}

// RecibosMesFilter selecciona las cuotas impagas a emitir en un mes dado.
type RecibosMesFilter struct {
	Mes       string // "YYYY-MM"
	Localidad int    // 0 = todas
}

// SolicitudesReporteFilter parametriza el reporte por estado.
type SolicitudesReporteFilter struct {
	Estado string // "pagas" | "bajas" | "impagas"
	Mes    string // "YYYY-MM": se reporta sobre el vencimiento del día 20
	Modo   string // "resumen" (default) | "detalle"
}

// SolicitudPagadoTotal es el total abonado de una solicitud, usado por la
// variante "bajas" del reporte.
type SolicitudPagadoTotal struct {
	IDSolicitud int             `json:"idsolicitud"`
	TotalPagado decimal.Decimal `json:"totalpagado"`
}

// DashboardResponse son los contadores de la pantalla principal.
type DashboardResponse struct {
	SolicitudesActivas int64           `json:"solicitudes_activas"`
	SolicitudesBajas   int64           `json:"solicitudes_bajas"`
	Clientes           int64           `json:"clientes"`
	CuotasImpagasMes   int64           `json:"cuotas_impagas_mes"`
	CobradoMes         decimal.Decimal `json:"cobrado_mes"`
}
