package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de cuota. El valor 1 quedó reservado en el esquema histórico y no
// se usa: una cuota sólo puede estar impaga (0) o pagada (2).
const (
	CuotaImpaga = 0
	CuotaPagada = 2
)

// Cuota es una obligación de pago mensual perteneciente a una Solicitud.
// Las cuotas nunca se eliminan: el pago marca estado=2 y fija fecha;
// el importe sólo puede modificarse mientras la cuota sigue impaga.
type Cuota struct {
	IDCuota       int             `gorm:"column:idcuota;primaryKey;autoIncrement" json:"idcuota"`
	RelaSolicitud int             `gorm:"column:relasolicitud;index;not null" json:"relasolicitud"`
	NroCuota      int             `gorm:"column:nrocuota;not null" json:"nrocuota"`
	Importe       decimal.Decimal `gorm:"column:importe;type:decimal(12,2);not null" json:"importe"`
	Vencimiento   time.Time       `gorm:"column:vencimiento;type:date;not null;index" json:"vencimiento"`
	Estado        int             `gorm:"column:estado;not null;default:0" json:"estado"`
	// Fecha es la fecha de pago; nil mientras la cuota está impaga.
	Fecha *time.Time `gorm:"column:fecha;type:date" json:"fecha"`
	// SaldoAnterior guarda el importe vigente al momento del pago,
	// como rastro histórico.
	SaldoAnterior decimal.Decimal `gorm:"column:saldoanterior;type:decimal(12,2);not null;default:0" json:"saldoanterior"`
	CreatedAt     time.Time       `json:"created_at"`

	Solicitud *Solicitud `gorm:"foreignKey:RelaSolicitud;references:IDSolicitud" json:"solicitud,omitempty"`
}

func (Cuota) TableName() string { return "cuotas" }

// Pagada informa si la cuota ya fue cobrada.
func (c *Cuota) Pagada() bool { return c.Estado == CuotaPagada }
