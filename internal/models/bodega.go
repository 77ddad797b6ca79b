package models

import (
	"time"
)

// Bodega represents a physical warehouse
type Bodega struct {
	ID           uint      `gorm:"column:id_bodega;primaryKey" json:"id_bodega"`
	CodigoBodega string    `gorm:"column:codigo_bodega;size:20;not null;unique" json:"codigo_bodega"`
	NombreBodega string    `gorm:"column:nombre_bodega;size:100;not null" json:"nombre_bodega"`
	Ubicacion    string    `gorm:"column:ubicacion;size:200" json:"ubicacion"`
	Descripcion  string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	Activo       bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt    time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt    time.Time `gorm:"column:fecha_modificacion" json:"fecha_modificacion"`

	// Relations
	Pasillos []Pasillo `gorm:"foreignKey:BodegaID" json:"pasillos,omitempty"`
}

// TableName specifies the table name
func (Bodega) TableName() string {
	return "bodegas"
}

// Pasillo is an aisle inside a warehouse
type Pasillo struct {
	ID            uint      `gorm:"column:id_pasillo;primaryKey" json:"id_pasillo"`
	BodegaID      uint      `gorm:"column:id_bodega;not null;index" json:"id_bodega"`
	CodigoPasillo string    `gorm:"column:codigo_pasillo;size:20;not null" json:"codigo_pasillo"`
	NombrePasillo string    `gorm:"column:nombre_pasillo;size:100" json:"nombre_pasillo"`
	Activo        bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt     time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`

	// Relations
	Estantes []Estante `gorm:"foreignKey:PasilloID" json:"estantes,omitempty"`
}

// TableName specifies the table name
func (Pasillo) TableName() string {
	return "pasillos"
}

// Estante is a shelf unit inside an aisle
type Estante struct {
	ID            uint      `gorm:"column:id_estante;primaryKey" json:"id_estante"`
	PasilloID     uint      `gorm:"column:id_pasillo;not null;index" json:"id_pasillo"`
	CodigoEstante string    `gorm:"column:codigo_estante;size:20;not null" json:"codigo_estante"`
	NombreEstante string    `gorm:"column:nombre_estante;size:100" json:"nombre_estante"`
	Activo        bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt     time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`

	// Relations
	Niveles []Nivel `gorm:"foreignKey:EstanteID" json:"niveles,omitempty"`
}

// TableName specifies the table name
func (Estante) TableName() string {
	return "estantes"
}

// Nivel is a level within a shelf unit
type Nivel struct {
	ID          uint      `gorm:"column:id_nivel;primaryKey" json:"id_nivel"`
	EstanteID   uint      `gorm:"column:id_estante;not null;index" json:"id_estante"`
	CodigoNivel string    `gorm:"column:codigo_nivel;size:20;not null" json:"codigo_nivel"`
	NumeroNivel int       `gorm:"column:numero_nivel;default:1" json:"numero_nivel"`
	Activo      bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt   time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
}

// TableName specifies the table name
func (Nivel) TableName() string {
	return "niveles"
}
