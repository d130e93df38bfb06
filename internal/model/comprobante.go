package model

import "time"

// Comprobante es el archivo adjunto (foto o PDF del recibo) que se sube como
// respaldo de un pago. El binario vive en el bucket S3; acá solo se guarda la
// clave del objeto y los metadatos.
type Comprobante struct {
	IDComprobante int       `gorm:"column:idcomprobante;primaryKey;autoIncrement" json:"idcomprobante"`
	RelaSolicitud int       `gorm:"column:relasolicitud;not null;index" json:"relasolicitud"`
	RelaCuota     *int      `gorm:"column:relacuota" json:"relacuota,omitempty"`
	NombreArchivo string    `gorm:"column:nombrearchivo;size:255;not null" json:"nombrearchivo"`
	ClaveObjeto   string    `gorm:"column:claveobjeto;size:512;not null" json:"-"`
	TipoContenido string    `gorm:"column:tipocontenido;size:100;not null" json:"tipocontenido"`
	Tamano        int64     `gorm:"column:tamano;not null" json:"tamano"`
	SubidoPor     string    `gorm:"column:subidopor;size:100" json:"subidopor"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Solicitud *Solicitud `gorm:"foreignKey:RelaSolicitud;references:IDSolicitud" json:"solicitud,omitempty"`
}

func (Comprobante) TableName() string { return "comprobante" }
