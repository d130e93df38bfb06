package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de solicitud.
const (
	SolicitudBaja   = 0
	SolicitudActiva = 1
)

// Solicitud es el agregado raíz de un plan de pagos: una venta financiada
// que se cancela en cuotas mensuales.
//
// TotalAbonado y PorcentajePagado son caches materializados: SIEMPRE son
// derivables de las cuotas pagadas y se recalculan desde cero en cada
// mutación (ver service.CuotaService), nunca se incrementan a mano.
type Solicitud struct {
	IDSolicitud    int             `gorm:"column:idsolicitud;primaryKey;autoIncrement" json:"idsolicitud"`
	NroSolicitud   string          `gorm:"column:nrosolicitud;uniqueIndex;not null" json:"nrosolicitud"`
	RelaCliente    int             `gorm:"column:relacliente;index;not null" json:"relacliente"`
	RelaProducto   int             `gorm:"column:relaproducto;not null" json:"relaproducto"`
	RelaVendedor   int             `gorm:"column:relavendedor;not null" json:"relavendedor"`
	Monto          decimal.Decimal `gorm:"column:monto;type:decimal(12,2);not null" json:"monto"`
	CantidadCuotas int             `gorm:"column:cantidadcuotas;not null" json:"cantidadcuotas"`
	TotalAPagar    decimal.Decimal `gorm:"column:totalapagar;type:decimal(12,2);not null" json:"totalapagar"`
	// TotalAbonado = suma de importes de cuotas pagadas (derivado).
	TotalAbonado decimal.Decimal `gorm:"column:totalabonado;type:decimal(12,2);not null;default:0" json:"totalabonado"`
	// PorcentajePagado = totalabonado * 100 / totalapagar, redondeado a 2 decimales (derivado).
	PorcentajePagado decimal.Decimal `gorm:"column:porcentajepagado;type:decimal(5,2);not null;default:0" json:"porcentajepagado"`
	Observacion      string          `gorm:"column:observacion" json:"observacion"`
	Estado           int             `gorm:"column:estado;not null;default:1" json:"estado"`
	FechaAlta        time.Time       `gorm:"column:fechalta" json:"fechalta"`

	Cliente  *Cliente  `gorm:"foreignKey:RelaCliente;references:IDCliente" json:"cliente,omitempty"`
	Producto *Producto `gorm:"foreignKey:RelaProducto;references:IDProducto" json:"producto,omitempty"`
	Vendedor *Vendedor `gorm:"foreignKey:RelaVendedor;references:IDVendedor" json:"vendedor,omitempty"`
	Cuotas   []Cuota   `gorm:"foreignKey:RelaSolicitud;references:IDSolicitud" json:"cuotas,omitempty"`
}

func (Solicitud) TableName() string { return "solicitud" }
