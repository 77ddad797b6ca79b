package importacion

import (
	"fmt"
	"strings"

	"github.com/construmax/inventario-go/internal/dte"
	"github.com/construmax/inventario-go/internal/models"
	"gorm.io/gorm"
)

// formasPago maps the DTE payment-method code to the observation label
var formasPago = map[string]string{
	"1": "CONTADO",
	"2": "CREDITO",
	"3": "SIN COSTO",
}

// CalcularSubtotal computes the document-level subtotal. Exempt documents
// keep their exempt amount as a distinct addend; when there is none the
// subtotal is exactly the net amount.
func CalcularSubtotal(totales dte.Totales) float64 {
	if totales.MontoExento > 0 {
		return totales.MontoNeto + totales.MontoExento
	}
	return totales.MontoNeto
}

// CalcularLinea computes subtotal, tax and total for one invoice line.
// Fully exempt documents (net = 0) produce zero line tax regardless of the
// nominal rate.
func CalcularLinea(detalle dte.Detalle, totales dte.Totales) (subtotal, impuesto, total float64) {
	subtotal = detalle.Cantidad*detalle.PrecioUnitario - detalle.DescuentoMonto

	if totales.MontoNeto > 0 {
		impuesto = subtotal * (totales.TasaIVA / 100)
	}

	total = subtotal + impuesto
	return subtotal, impuesto, total
}

// ComponerObservaciones builds the free-text observation from the payment
// method and, when present, the due date
func ComponerObservaciones(encabezado dte.Encabezado) string {
	formaPago, ok := formasPago[encabezado.FormaPago]
	if !ok {
		formaPago = "CONTADO"
	}

	partes := []string{fmt.Sprintf("Forma de pago: %s", formaPago)}
	if encabezado.FechaVencimiento != nil {
		partes = append(partes, fmt.Sprintf("Fecha vencimiento: %s", encabezado.FechaVencimiento.Format("2006-01-02")))
	}
	return strings.Join(partes, " | ")
}

// CrearDocumento persists the purchase-document aggregate (header, line
// items, references) for an extracted DTE and the already-resolved
// supplier. Everything is written in one transaction: a failure leaves no
// partial document, detail or reference rows. The persisted aggregate is
// reloaded with its relations before being returned.
//
// Receiver company and document type are optional lookups; an unmatched
// RUT or DTE code never fails the ingestion.
func CrearDocumento(db *gorm.DB, doc *dte.Documento, proveedor *models.Proveedor) (*models.DocumentoCompra, error) {
	encabezado := doc.Encabezado

	empresa := buscarEmpresaReceptora(db, encabezado.Receptor.RUT)
	tipoDocumento := buscarTipoDocumento(db, encabezado.TipoDTE)

	documento := models.DocumentoCompra{
		ProveedorID:      proveedor.ID,
		NumeroDocumento:  encabezado.Folio,
		Folio:            encabezado.Folio,
		FechaDocumento:   encabezado.FechaEmision,
		RutEmisor:        encabezado.Emisor.RUT,
		RutReceptor:      encabezado.Receptor.RUT,
		Observaciones:    ComponerObservaciones(encabezado),
		Subtotal:         CalcularSubtotal(encabezado.Totales),
		Impuestos:        encabezado.Totales.IVA,
		Descuentos:       0,
		Total:            encabezado.Totales.MontoTotal,
		Moneda:           "CLP",
		TipoCambio:       1.0,
		ContenidoXML:     doc.XMLOriginal,
		Estado:           models.EstadoPendiente,
		DisponibleBodega: false,
		Activo:           true,
	}
	if empresa != nil {
		documento.EmpresaID = &empresa.ID
	}
	if tipoDocumento != nil {
		documento.TipoDocumentoID = &tipoDocumento.ID
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&documento).Error; err != nil {
			return err
		}

		for _, detalle := range doc.Detalles {
			subtotal, impuesto, total := CalcularLinea(detalle, encabezado.Totales)

			descripcion := detalle.NombreItem
			if descripcion == "" {
				descripcion = detalle.Descripcion
			}
			if descripcion == "" {
				descripcion = "Sin descripción"
			}

			fila := models.DocumentoCompraDetalle{
				DocumentoID:    documento.ID,
				CodigoProducto: detalle.CodigoItem,
				Descripcion:    descripcion,
				Cantidad:       detalle.Cantidad,
				PrecioUnitario: detalle.PrecioUnitario,
				DescuentoLinea: detalle.DescuentoMonto,
				SubtotalLinea:  subtotal,
				ImpuestoLinea:  impuesto,
				TotalLinea:     total,
				NumeroLinea:    detalle.NumeroLinea,
				Activo:         true,
			}
			if err := tx.Create(&fila).Error; err != nil {
				return err
			}
		}

		for _, ref := range doc.Referencias {
			fila := models.ReferenciaDocumento{
				DocumentoID:      documento.ID,
				NumeroLineaRef:   ref.NumeroLineaRef,
				TipoDocumentoRef: opcional(ref.TipoDocumentoRef),
				FolioRef:         opcional(ref.FolioRef),
				FechaRef:         ref.FechaRef,
				CodigoRef:        opcional(ref.CodigoRef),
				RazonRef:         opcional(ref.RazonRef),
				Activo:           true,
			}
			if err := tx.Create(&fila).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error al guardar el documento de compra: %w", err)
	}

	var persistido models.DocumentoCompra
	if err := db.Preload("Detalles").Preload("Referencias").Preload("Proveedor").
		First(&persistido, documento.ID).Error; err != nil {
		return nil, fmt.Errorf("error al recargar el documento de compra: %w", err)
	}
	return &persistido, nil
}

// buscarEmpresaReceptora resolves the receiving company by RUT; nil when
// there is no match
func buscarEmpresaReceptora(db *gorm.DB, rut string) *models.Empresa {
	if rut == "" {
		return nil
	}
	var empresa models.Empresa
	if err := db.Where("rut_empresa = ?", rut).First(&empresa).Error; err != nil {
		return nil
	}
	return &empresa
}

// buscarTipoDocumento resolves the document-type catalog row by DTE code;
// nil when there is no match
func buscarTipoDocumento(db *gorm.DB, codigoDTE string) *models.TipoDocumentoCompra {
	if codigoDTE == "" {
		return nil
	}
	var tipo models.TipoDocumentoCompra
	if err := db.Where("codigo_dte = ?", codigoDTE).First(&tipo).Error; err != nil {
		return nil
	}
	return &tipo
}

// opcional converts empty strings to NULL for nullable/enum columns
func opcional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
