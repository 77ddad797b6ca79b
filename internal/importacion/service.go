package importacion

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/construmax/inventario-go/internal/database"
	"github.com/construmax/inventario-go/internal/dte"
	"github.com/construmax/inventario-go/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Servicio runs the DTE ingestion pipeline: extract, reconcile the
// supplier, assemble the purchase document. Every attempt leaves a row in
// log_importaciones, success or not.
type Servicio struct {
	db *database.DB
}

// NuevoServicio creates the ingestion service
func NuevoServicio(db *database.DB) *Servicio {
	return &Servicio{db: db}
}

// EsErrorValidacion reports whether err is a client error (bad XML or a
// missing mandatory field) as opposed to a persistence failure
func EsErrorValidacion(err error) bool {
	return dte.EsErrorEntrada(err) || errors.Is(err, ErrRUTEmisorRequerido)
}

// ProcesarXML ingests one DTE file and returns the persisted purchase
// document. The ingestion runs synchronously in the calling request; the
// supplier upsert commits independently of the document aggregate, so a
// failed assembly never leaves partial document rows but may still have
// enriched the supplier.
func (s *Servicio) ProcesarXML(nombreArchivo, contenidoXML string) (*models.DocumentoCompra, error) {
	correlacion := uuid.NewString()

	doc, err := dte.Parse(contenidoXML)
	if err != nil {
		s.registrar(correlacion, nombreArchivo, nil, nil, err)
		return nil, err
	}

	proveedor, err := BuscarOCrearProveedor(s.db.DB, doc.Encabezado.Emisor)
	if err != nil {
		s.registrar(correlacion, nombreArchivo, doc, nil, err)
		return nil, err
	}

	documento, err := CrearDocumento(s.db.DB, doc, proveedor)
	if err != nil {
		s.registrar(correlacion, nombreArchivo, doc, nil, err)
		return nil, err
	}

	s.registrar(correlacion, nombreArchivo, doc, documento, nil)
	log.Printf("📄 DTE importado: folio %s de %s (documento %d)",
		documento.Folio, documento.RutEmisor, documento.ID)

	return documento, nil
}

// registrar writes the audit row for one ingestion attempt. Best effort:
// a failed audit write is logged but never fails the ingestion itself.
func (s *Servicio) registrar(correlacion, nombreArchivo string, doc *dte.Documento, documento *models.DocumentoCompra, causa error) {
	fila := models.LogImportacion{
		CorrelacionID: correlacion,
		NombreArchivo: nombreArchivo,
		Estado:        models.ImportacionProcesada,
	}

	if causa != nil {
		fila.Estado = models.ImportacionError
		fila.Mensaje = causa.Error()
	}

	if doc != nil {
		resumen, err := json.Marshal(map[string]interface{}{
			"tipo_dte":   doc.Encabezado.TipoDTE,
			"folio":      doc.Encabezado.Folio,
			"rut_emisor": doc.Encabezado.Emisor.RUT,
			"total":      doc.Encabezado.Totales.MontoTotal,
			"lineas":     len(doc.Detalles),
		})
		if err == nil {
			fila.Resumen = datatypes.JSON(resumen)
		}
	}

	if documento != nil {
		fila.DocumentoID = &documento.ID
	}

	if err := s.db.Create(&fila).Error; err != nil {
		log.Printf("⚠️  No se pudo registrar la importación %s: %v", correlacion, err)
	}
}
