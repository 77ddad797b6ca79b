package dte

import (
	"time"
)

// Documento is the full record extracted from one DTE XML file. It is an
// in-memory transfer structure: produced once by Parse and never mutated.
type Documento struct {
	Encabezado  Encabezado
	Detalles    []Detalle
	Referencias []Referencia
	XMLOriginal string
}

// Encabezado holds the document header: identification, parties and totals
type Encabezado struct {
	TipoDTE          string
	Folio            string
	FechaEmision     *time.Time
	FechaVencimiento *time.Time
	FormaPago        string // 1=Contado, 2=Crédito, 3=Sin costo

	Emisor   Emisor
	Receptor Receptor
	Totales  Totales
}

// Emisor is the issuing party (the supplier)
type Emisor struct {
	RUT            string // normalized: no dots, dash before check digit
	RazonSocial    string
	Giro           string
	Telefono       string
	Email          string
	Acteco1        string
	Acteco2        string
	Acteco3        string
	Acteco4        string
	CodigoSucursal string
	Direccion      string
	Comuna         string
	Ciudad         string
}

// Receptor is the receiving party (the company buying)
type Receptor struct {
	RUT         string
	RazonSocial string
	Giro        string
	Direccion   string
	Comuna      string
	Ciudad      string
	Contacto    string
	Email       string
}

// Totales holds the document-level monetary totals
type Totales struct {
	MontoNeto   float64
	MontoExento float64
	TasaIVA     float64
	IVA         float64
	MontoTotal  float64
}

// Detalle is one invoice line. NumeroLinea ordering is significant and
// preserved from the source document.
type Detalle struct {
	NumeroLinea    int
	CodigoItem     string
	TipoCodigo     string
	NombreItem     string
	Descripcion    string
	Cantidad       float64
	UnidadMedida   string
	PrecioUnitario float64
	DescuentoPct   float64
	DescuentoMonto float64
	MontoItem      float64
}

// Referencia points to another tax document this one amends or cancels
type Referencia struct {
	NumeroLineaRef   int
	TipoDocumentoRef string
	FolioRef         string
	FechaRef         *time.Time
	CodigoRef        string // 1, 2, 3 or empty
	RazonRef         string
}
