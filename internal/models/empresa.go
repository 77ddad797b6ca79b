package models

import (
	"time"
)

// Empresa represents a receiving company (receptor of purchase documents)
type Empresa struct {
	ID          uint      `gorm:"column:id_empresa;primaryKey" json:"id_empresa"`
	RutEmpresa  string    `gorm:"column:rut_empresa;size:20;not null;uniqueIndex" json:"rut_empresa"`
	RazonSocial string    `gorm:"column:razon_social;size:200;not null" json:"razon_social"`
	Giro        string    `gorm:"column:giro;size:200" json:"giro"`
	Direccion   string    `gorm:"column:direccion;type:text" json:"direccion"`
	Comuna      string    `gorm:"column:comuna;size:100" json:"comuna"`
	Ciudad      string    `gorm:"column:ciudad;size:100" json:"ciudad"`
	Activo      bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt   time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt   time.Time `gorm:"column:fecha_modificacion" json:"fecha_modificacion"`
}

// TableName specifies the table name
func (Empresa) TableName() string {
	return "empresas"
}
