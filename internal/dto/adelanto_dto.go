package dto

import "github.com/shopspring/decimal"

type CrearAdelantoRequest struct {
	RelaSolicitud   int             `json:"relasolicitud" validate:"required,gt=0"`
	AdelantoImporte decimal.Decimal `json:"adelantoimporte" validate:"required,gt=0"`
	AdelantoFecha   string          `json:"adelantofecha" validate:"omitempty,datetime=2006-01-02"`
}
