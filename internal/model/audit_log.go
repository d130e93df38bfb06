package model

import "time"

// AuditLog registra cada operación de escritura que pasa por la API. Las filas
// se insertan de forma asíncrona vía worker pool y se podan según la retención
// configurada. El payload se guarda ya sanitizado (sin passwords ni tokens).
type AuditLog struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Usuario   string    `gorm:"column:usuario;size:100;index" json:"usuario"`
	Metodo    string    `gorm:"column:metodo;size:10;not null" json:"metodo"`
	Ruta      string    `gorm:"column:ruta;size:255;not null" json:"ruta"`
	Estado    int       `gorm:"column:estado;not null" json:"estado"`
	Payload   string    `gorm:"column:payload;type:text" json:"payload,omitempty"`
	IP        string    `gorm:"column:ip;size:64" json:"ip"`
	RequestID string    `gorm:"column:request_id;size:64" json:"request_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_log" }
