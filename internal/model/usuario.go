package model

import "time"

// Estados de usuario.
const (
	UsuarioInactivo = 0
	UsuarioActivo   = 1
)

// Usuario es una cuenta del sistema. Roles: "admin" | "user".
type Usuario struct {
	IDUser       int       `gorm:"column:iduser;primaryKey;autoIncrement" json:"iduser"`
	Usuario      string    `gorm:"column:usuario;uniqueIndex;not null" json:"usuario"`
	PasswordHash string    `gorm:"column:password;not null" json:"-"`
	Nombre       string    `gorm:"column:nombre" json:"nombre"`
	Email        string    `gorm:"column:email" json:"email"`
	Role         string    `gorm:"column:role;not null;default:'user'" json:"role"`
	Status       int       `gorm:"column:status;not null;default:1" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Usuario) TableName() string { return "app_user" }
