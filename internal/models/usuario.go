package models

import (
	"time"

	"gorm.io/gorm"
)

// Usuario represents a system user
type Usuario struct {
	ID        uint           `gorm:"column:id_usuario;primaryKey" json:"id_usuario"`
	Username  string         `gorm:"column:username;size:50;not null;unique" json:"username"`
	Password  string         `gorm:"column:password;not null" json:"-"`
	Nombre    string         `gorm:"column:nombre;size:100" json:"nombre"`
	Email     string         `gorm:"column:email;size:100" json:"email"`
	Rol       string         `gorm:"column:rol;size:20;default:'operador'" json:"rol"`
	Activo    bool           `gorm:"column:activo;default:true" json:"activo"`
	LastLogin *time.Time     `gorm:"column:ultimo_acceso" json:"ultimo_acceso,omitempty"`
	CreatedAt time.Time      `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt time.Time      `gorm:"column:fecha_modificacion" json:"fecha_modificacion"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (Usuario) TableName() string {
	return "usuarios"
}
