package dto

import "github.com/shopspring/decimal"

type CrearSolicitudRequest struct {
	NroSolicitud   string          `json:"nrosolicitud" validate:"max=50"` // vacío = autonumerado
	RelaCliente    int             `json:"relacliente" validate:"required,gt=0"`
	RelaProducto   int             `json:"relaproducto" validate:"required,gt=0"`
	RelaVendedor   int             `json:"relavendedor" validate:"required,gt=0"`
	Monto          decimal.Decimal `json:"monto" validate:"required,gt=0"`
	CantidadCuotas int             `json:"cantidadcuotas" validate:"required,gt=0"`
	TotalAPagar    decimal.Decimal `json:"totalapagar" validate:"required,gt=0"`
	Observacion    string          `json:"observacion"`
}

type ActualizarSolicitudRequest struct {
	RelaCliente  *int             `json:"relacliente" validate:"omitempty,gt=0"`
	RelaProducto *int             `json:"relaproducto" validate:"omitempty,gt=0"`
	RelaVendedor *int             `json:"relavendedor" validate:"omitempty,gt=0"`
	Monto        *decimal.Decimal `json:"monto"`
	TotalAPagar  *decimal.Decimal `json:"totalapagar"`
	Estado       *int             `json:"estado" validate:"omitempty,oneof=0 1"`
	Observacion  *string          `json:"observacion"`
}

type AdicionarCuotasRequest struct {
	Cantidad int `json:"cantidad" validate:"required,gt=0"`
}

type ObservacionRequest struct {
	Observacion string `json:"observacion" validate:"required"`
}

// SolicitudFilter agrupa los parámetros de búsqueda del listado.
type SolicitudFilter struct {
	Busqueda string // matchea nrosolicitud o appynom del cliente
	Estado   *int   // nil = todas
	Page     int
	Limit    int
}

// SolicitudTotales es el resultado de la reconciliación de una solicitud.
type SolicitudTotales struct {
	TotalAbonado     decimal.Decimal `json:"totalabonado"`
	PorcentajePagado decimal.Decimal `json:"porcentajepagado"`
}
