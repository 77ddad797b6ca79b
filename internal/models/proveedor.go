package models

import (
	"time"
)

// Proveedor represents a supplier (emisor of purchase documents).
// RFC holds the Chilean RUT and is the natural key for DTE reconciliation.
type Proveedor struct {
	ID              uint      `gorm:"column:id_proveedor;primaryKey" json:"id_proveedor"`
	CodigoProveedor string    `gorm:"column:codigo_proveedor;size:20;not null;unique" json:"codigo_proveedor"`
	NombreProveedor string    `gorm:"column:nombre_proveedor;size:200;not null" json:"nombre_proveedor"`
	RazonSocial     string    `gorm:"column:razon_social;size:200" json:"razon_social"`
	RFC             string    `gorm:"column:rfc;size:20;uniqueIndex" json:"rfc"`
	GiroComercial   string    `gorm:"column:giro_comercial;size:200" json:"giro_comercial"`
	Acteco1         string    `gorm:"column:acteco_1;size:10" json:"acteco_1"`
	Acteco2         string    `gorm:"column:acteco_2;size:10" json:"acteco_2"`
	Acteco3         string    `gorm:"column:acteco_3;size:10" json:"acteco_3"`
	Acteco4         string    `gorm:"column:acteco_4;size:10" json:"acteco_4"`
	Telefono        string    `gorm:"column:telefono;size:20" json:"telefono"`
	Email           string    `gorm:"column:email;size:100" json:"email"`
	Pais            string    `gorm:"column:pais;size:50;default:'Chile'" json:"pais"`
	Activo          bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt       time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt       time.Time `gorm:"column:fecha_modificacion" json:"fecha_modificacion"`

	// Relations
	Direcciones []DireccionProveedor `gorm:"foreignKey:ProveedorID" json:"direcciones,omitempty"`
}

// TableName specifies the table name
func (Proveedor) TableName() string {
	return "proveedores"
}

// DireccionProveedor represents a supplier address.
// The FISCAL principal address is created once, when the supplier is first
// seen during DTE ingestion; later imports never touch it.
type DireccionProveedor struct {
	ID            uint      `gorm:"column:id_direccion;primaryKey" json:"id_direccion"`
	ProveedorID   uint      `gorm:"column:id_proveedor;not null;index" json:"id_proveedor"`
	TipoDireccion string    `gorm:"column:tipo_direccion;size:20;default:'FISCAL'" json:"tipo_direccion"`
	Direccion     string    `gorm:"column:direccion;type:text" json:"direccion"`
	Comuna        string    `gorm:"column:comuna;size:100" json:"comuna"`
	Ciudad        string    `gorm:"column:ciudad;size:100" json:"ciudad"`
	Pais          string    `gorm:"column:pais;size:50;default:'Chile'" json:"pais"`
	EsPrincipal   bool      `gorm:"column:es_principal;default:false" json:"es_principal"`
	Activo        bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt     time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt     time.Time `gorm:"column:fecha_modificacion" json:"fecha_modificacion"`
}

// TableName specifies the table name
func (DireccionProveedor) TableName() string {
	return "direcciones_proveedor"
}
