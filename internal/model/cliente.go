package model

import "time"

// Cliente es un comprador con domicilio en una Localidad.
type Cliente struct {
	IDCliente     int       `gorm:"column:idcliente;primaryKey;autoIncrement" json:"idcliente"`
	Appynom       string    `gorm:"column:appynom;index;not null" json:"appynom"`
	DNI           string    `gorm:"column:dni;uniqueIndex;not null" json:"dni"`
	Direccion     string    `gorm:"column:direccion" json:"direccion"`
	Telefono      string    `gorm:"column:telefono" json:"telefono"`
	RelaLocalidad int       `gorm:"column:relalocalidad;index;not null" json:"relalocalidad"`
	Condicion     int       `gorm:"column:condicion;not null;default:1" json:"condicion"`
	FechaAlta     time.Time `gorm:"column:fechalta" json:"fechalta"`

	Localidad *Localidad `gorm:"foreignKey:RelaLocalidad;references:IDLocalidad" json:"localidad,omitempty"`
}

func (Cliente) TableName() string { return "cliente" }
