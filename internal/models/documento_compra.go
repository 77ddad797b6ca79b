package models

import (
	"time"
)

// Estados de procesamiento de un documento de compra.
// The ingestion pipeline only ever produces EstadoPendiente; warehouse
// reception moves documents onward.
const (
	EstadoPendiente = "PENDIENTE"
	EstadoProcesado = "PROCESADO"
	EstadoRechazado = "RECHAZADO"
)

// TipoDocumentoCompra is the catalog of DTE document types (33, 34, 56, 61...)
type TipoDocumentoCompra struct {
	ID         uint      `gorm:"column:id_tipo_documento;primaryKey" json:"id_tipo_documento"`
	CodigoDTE  string    `gorm:"column:codigo_dte;size:10;not null;uniqueIndex" json:"codigo_dte"`
	NombreTipo string    `gorm:"column:nombre_tipo;size:100;not null" json:"nombre_tipo"`
	Activo     bool      `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt  time.Time `gorm:"column:fecha_creacion" json:"fecha_creacion"`
}

// TableName specifies the table name
func (TipoDocumentoCompra) TableName() string {
	return "tipos_documento_compra"
}

// DocumentoCompra is the purchase document aggregate root created by DTE
// ingestion. Detalles and Referencias only exist as part of their document.
type DocumentoCompra struct {
	ID               uint       `gorm:"column:id_documento;primaryKey" json:"id_documento"`
	ProveedorID      uint       `gorm:"column:id_proveedor;not null;index" json:"id_proveedor"`
	TipoDocumentoID  *uint      `gorm:"column:id_tipo_documento;index" json:"id_tipo_documento"`
	EmpresaID        *uint      `gorm:"column:id_empresa;index" json:"id_empresa"`
	NumeroDocumento  string     `gorm:"column:numero_documento;size:50" json:"numero_documento"`
	Folio            string     `gorm:"column:folio;size:50;index" json:"folio"`
	FechaDocumento   *time.Time `gorm:"column:fecha_documento;type:date" json:"fecha_documento"`
	RutEmisor        string     `gorm:"column:rut_emisor;size:20;index" json:"rut_emisor"`
	RutReceptor      string     `gorm:"column:rut_receptor;size:20" json:"rut_receptor"`
	Observaciones    string     `gorm:"column:observaciones;type:text" json:"observaciones"`
	Subtotal         float64    `gorm:"column:subtotal;default:0" json:"subtotal"`
	Impuestos        float64    `gorm:"column:impuestos;default:0" json:"impuestos"`
	Descuentos       float64    `gorm:"column:descuentos;default:0" json:"descuentos"`
	Total            float64    `gorm:"column:total;default:0" json:"total"`
	Moneda           string     `gorm:"column:moneda;size:10;default:'CLP'" json:"moneda"`
	TipoCambio       float64    `gorm:"column:tipo_cambio;default:1" json:"tipo_cambio"`
	ContenidoXML     string     `gorm:"column:contenido_xml;type:text" json:"-"`
	Estado           string     `gorm:"column:estado;size:20;default:'PENDIENTE';index" json:"estado"`
	DisponibleBodega bool       `gorm:"column:disponible_bodega;default:false" json:"disponible_bodega"`
	Activo           bool       `gorm:"column:activo;default:true" json:"activo"`
	CreatedAt        time.Time  `gorm:"column:fecha_creacion" json:"fecha_creacion"`
	UpdatedAt        time.Time  `gorm:"column:fecha_modificacion" json:"fecha_modificacion"`

	// Relations
	Proveedor     *Proveedor               `gorm:"foreignKey:ProveedorID" json:"proveedor,omitempty"`
	TipoDocumento *TipoDocumentoCompra     `gorm:"foreignKey:TipoDocumentoID" json:"tipo_documento,omitempty"`
	Empresa       *Empresa                 `gorm:"foreignKey:EmpresaID" json:"empresa,omitempty"`
	Detalles      []DocumentoCompraDetalle `gorm:"foreignKey:DocumentoID" json:"detalles,omitempty"`
	Referencias   []ReferenciaDocumento    `gorm:"foreignKey:DocumentoID" json:"referencias,omitempty"`
}

// TableName specifies the table name
func (DocumentoCompra) TableName() string {
	return "documentos_compra"
}

// DocumentoCompraDetalle is one invoice line of a purchase document
type DocumentoCompraDetalle struct {
	ID             uint    `gorm:"column:id_detalle;primaryKey" json:"id_detalle"`
	DocumentoID    uint    `gorm:"column:id_documento;not null;index" json:"id_documento"`
	CodigoProducto string  `gorm:"column:codigo_producto;size:50" json:"codigo_producto"`
	Descripcion    string  `gorm:"column:descripcion;size:500;not null" json:"descripcion"`
	Cantidad       float64 `gorm:"column:cantidad;not null" json:"cantidad"`
	PrecioUnitario float64 `gorm:"column:precio_unitario;not null" json:"precio_unitario"`
	DescuentoLinea float64 `gorm:"column:descuento_linea;default:0" json:"descuento_linea"`
	SubtotalLinea  float64 `gorm:"column:subtotal_linea;default:0" json:"subtotal_linea"`
	ImpuestoLinea  float64 `gorm:"column:impuesto_linea;default:0" json:"impuesto_linea"`
	TotalLinea     float64 `gorm:"column:total_linea;default:0" json:"total_linea"`
	NumeroLinea    int     `gorm:"column:numero_linea;default:1" json:"numero_linea"`
	Activo         bool    `gorm:"column:activo;default:true" json:"activo"`
}

// TableName specifies the table name
func (DocumentoCompraDetalle) TableName() string {
	return "documentos_compra_detalle"
}

// ReferenciaDocumento links a purchase document to another tax document it
// amends or cancels. CodigoRef is nullable: an empty string in the source
// XML must be stored as NULL to satisfy the enum constraint.
type ReferenciaDocumento struct {
	ID               uint       `gorm:"column:id_referencia;primaryKey" json:"id_referencia"`
	DocumentoID      uint       `gorm:"column:id_documento;not null;index" json:"id_documento"`
	NumeroLineaRef   int        `gorm:"column:numero_linea_ref;default:1" json:"numero_linea_ref"`
	TipoDocumentoRef *string    `gorm:"column:tipo_documento_ref;size:10" json:"tipo_documento_ref"`
	FolioRef         *string    `gorm:"column:folio_ref;size:50" json:"folio_ref"`
	FechaRef         *time.Time `gorm:"column:fecha_ref;type:date" json:"fecha_ref"`
	CodigoRef        *string    `gorm:"column:codigo_ref;size:5" json:"codigo_ref"`
	RazonRef         *string    `gorm:"column:razon_ref;size:200" json:"razon_ref"`
	Activo           bool       `gorm:"column:activo;default:true" json:"activo"`
}

// TableName specifies the table name
func (ReferenciaDocumento) TableName() string {
	return "referencias_documento"
}
