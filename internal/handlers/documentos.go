package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/construmax/inventario-go/internal/models"
	"github.com/gorilla/mux"
)

// transicionesEstado defines the allowed linear state steps for a
// purchase document. Ingestion only ever produces PENDIENTE.
var transicionesEstado = map[string][]string{
	models.EstadoPendiente: {models.EstadoProcesado, models.EstadoRechazado},
}

// listDocumentos returns purchase documents with filters and pagination
func (r *Router) listDocumentos(w http.ResponseWriter, req *http.Request) {
	consulta := r.db.Model(&models.DocumentoCompra{}).Where("activo = ?", true)

	q := req.URL.Query()
	if proveedor := q.Get("proveedor"); proveedor != "" {
		consulta = consulta.Where("id_proveedor = ?", proveedor)
	}
	if estado := q.Get("estado"); estado != "" {
		consulta = consulta.Where("estado = ?", estado)
	}
	if desde := q.Get("desde"); desde != "" {
		consulta = consulta.Where("fecha_documento >= ?", desde)
	}
	if hasta := q.Get("hasta"); hasta != "" {
		consulta = consulta.Where("fecha_documento <= ?", hasta)
	}

	limite := 50
	if l, err := strconv.Atoi(q.Get("limite")); err == nil && l > 0 && l <= 200 {
		limite = l
	}
	desplazamiento := 0
	if o, err := strconv.Atoi(q.Get("offset")); err == nil && o > 0 {
		desplazamiento = o
	}

	var documentos []models.DocumentoCompra
	err := consulta.Preload("Proveedor").Preload("TipoDocumento").
		Order("fecha_creacion DESC").
		Limit(limite).Offset(desplazamiento).
		Find(&documentos).Error
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error al consultar documentos")
		return
	}
	respondJSON(w, http.StatusOK, documentos)
}

// getDocumento returns the full aggregate: header, details and references
func (r *Router) getDocumento(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(req)["id"])

	var documento models.DocumentoCompra
	err := r.db.Preload("Proveedor").Preload("TipoDocumento").Preload("Empresa").
		Preload("Detalles").Preload("Referencias").
		First(&documento, id).Error
	if err != nil {
		respondError(w, http.StatusNotFound, "Documento no encontrado")
		return
	}
	respondJSON(w, http.StatusOK, documento)
}

// updateEstadoDocumento advances the document processing state, validating
// the transition against the current value
func (r *Router) updateEstadoDocumento(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(req)["id"])

	var documento models.DocumentoCompra
	if err := r.db.First(&documento, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Documento no encontrado")
		return
	}

	var cuerpo struct {
		Estado string `json:"estado"`
	}
	if err := json.NewDecoder(req.Body).Decode(&cuerpo); err != nil || cuerpo.Estado == "" {
		respondError(w, http.StatusBadRequest, "Se requiere el campo 'estado'")
		return
	}

	if !transicionValida(documento.Estado, cuerpo.Estado) {
		respondError(w, http.StatusBadRequest,
			"Transición de estado no permitida: "+documento.Estado+" → "+cuerpo.Estado)
		return
	}

	cambios := map[string]interface{}{"estado": cuerpo.Estado}
	if cuerpo.Estado == models.EstadoProcesado {
		// Processed documents become visible to warehouse reception
		cambios["disponible_bodega"] = true
	}

	if err := r.db.Model(&documento).Updates(cambios).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al actualizar el estado")
		return
	}

	documento.Estado = cuerpo.Estado
	if cuerpo.Estado == models.EstadoProcesado {
		documento.DisponibleBodega = true
	}
	respondJSON(w, http.StatusOK, documento)
}

func transicionValida(actual, siguiente string) bool {
	for _, permitido := range transicionesEstado[actual] {
		if permitido == siguiente {
			return true
		}
	}
	return false
}
