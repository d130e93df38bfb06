package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adelanto es un pago extraordinario contra una solicitud, registrado por
// fuera del cronograma de cuotas. Es un libro lateral de suma simple: no
// participa del recálculo de totalabonado/porcentajepagado.
type Adelanto struct {
	IDAdelanto      int             `gorm:"column:idadelanto;primaryKey;autoIncrement" json:"idadelanto"`
	RelaSolicitud   int             `gorm:"column:relasolicitud;index;not null" json:"relasolicitud"`
	AdelantoImporte decimal.Decimal `gorm:"column:adelantoimporte;type:decimal(12,2);not null" json:"adelantoimporte"`
	AdelantoFecha   time.Time       `gorm:"column:adelantofecha;type:date;not null" json:"adelantofecha"`
	CreatedAt       time.Time       `json:"created_at"`

	Solicitud *Solicitud `gorm:"foreignKey:RelaSolicitud;references:IDSolicitud" json:"solicitud,omitempty"`
}

func (Adelanto) TableName() string { return "adelanto" }
