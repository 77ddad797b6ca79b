package handlers

import (
	"io"
	"log"
	"net/http"

	"github.com/construmax/inventario-go/internal/dte"
	"github.com/construmax/inventario-go/internal/importacion"
	"github.com/construmax/inventario-go/internal/models"
)

const maxXMLUpload = 10 << 20 // 10 MB

// leerArchivoXML reads the uploaded "archivo" multipart field as UTF-8 text
func leerArchivoXML(req *http.Request) (nombre, contenido string, err error) {
	if err := req.ParseMultipartForm(maxXMLUpload); err != nil {
		return "", "", err
	}

	archivo, cabecera, err := req.FormFile("archivo")
	if err != nil {
		return "", "", err
	}
	defer archivo.Close()

	datos, err := io.ReadAll(archivo)
	if err != nil {
		return "", "", err
	}

	return cabecera.Filename, string(datos), nil
}

// procesarXML ingests a DTE XML file: extracts the data, reconciles the
// supplier and persists the purchase-document aggregate
func (r *Router) procesarXML(w http.ResponseWriter, req *http.Request) {
	nombre, contenido, err := leerArchivoXML(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Se requiere el archivo XML en el campo 'archivo'")
		return
	}

	documento, err := r.importacion.ProcesarXML(nombre, contenido)
	if err != nil {
		if importacion.EsErrorValidacion(err) {
			respondError(w, http.StatusBadRequest, "Error al procesar XML: "+err.Error())
			return
		}
		log.Printf("❌ Importación DTE falló (%s): %v", nombre, err)
		respondError(w, http.StatusInternalServerError, "Error interno al procesar el documento")
		return
	}

	respondJSON(w, http.StatusCreated, documento)
}

// validarXML extracts a DTE without persisting anything, for preview
func (r *Router) validarXML(w http.ResponseWriter, req *http.Request) {
	_, contenido, err := leerArchivoXML(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Se requiere el archivo XML en el campo 'archivo'")
		return
	}

	doc, err := dte.Parse(contenido)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Error al procesar XML: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"datos": map[string]interface{}{
			"encabezado":  doc.Encabezado,
			"detalles":    doc.Detalles,
			"referencias": doc.Referencias,
		},
	})
}

// listLogImportaciones returns recent ingestion attempts
func (r *Router) listLogImportaciones(w http.ResponseWriter, req *http.Request) {
	var filas []models.LogImportacion
	if err := r.db.Order("fecha_creacion DESC").Limit(50).Find(&filas).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al consultar el log de importaciones")
		return
	}
	respondJSON(w, http.StatusOK, filas)
}
