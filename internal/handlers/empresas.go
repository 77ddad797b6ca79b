package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/construmax/inventario-go/internal/models"
	"github.com/construmax/inventario-go/internal/utils"
	"github.com/gorilla/mux"
)

// listEmpresas returns the receiving-company catalog
func (r *Router) listEmpresas(w http.ResponseWriter, req *http.Request) {
	var empresas []models.Empresa
	if err := r.db.Where("activo = ?", true).Order("razon_social").Find(&empresas).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al consultar empresas")
		return
	}
	respondJSON(w, http.StatusOK, empresas)
}

// getEmpresa returns one company
func (r *Router) getEmpresa(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(req)["id"])

	var empresa models.Empresa
	if err := r.db.First(&empresa, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Empresa no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, empresa)
}

// createEmpresa registers a company. The RUT is normalized so receiver
// resolution during DTE ingestion matches it.
func (r *Router) createEmpresa(w http.ResponseWriter, req *http.Request) {
	var empresa models.Empresa
	if err := json.NewDecoder(req.Body).Decode(&empresa); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	if empresa.RutEmpresa == "" || empresa.RazonSocial == "" {
		respondError(w, http.StatusBadRequest, "RUT y razón social son requeridos")
		return
	}

	empresa.RutEmpresa = utils.NormalizarRUT(empresa.RutEmpresa)
	empresa.Activo = true
	if err := r.db.Create(&empresa).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al crear empresa")
		return
	}
	respondJSON(w, http.StatusCreated, empresa)
}

// listTiposDocumento returns the DTE document-type catalog
func (r *Router) listTiposDocumento(w http.ResponseWriter, req *http.Request) {
	var tipos []models.TipoDocumentoCompra
	if err := r.db.Where("activo = ?", true).Order("codigo_dte").Find(&tipos).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al consultar tipos de documento")
		return
	}
	respondJSON(w, http.StatusOK, tipos)
}
