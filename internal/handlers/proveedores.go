package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/construmax/inventario-go/internal/models"
	"github.com/gorilla/mux"
)

// listProveedores returns suppliers, optionally filtered by activo and a
// free-text search over code, name and RUT
func (r *Router) listProveedores(w http.ResponseWriter, req *http.Request) {
	consulta := r.db.Model(&models.Proveedor{})

	if activo := req.URL.Query().Get("activo"); activo != "" {
		consulta = consulta.Where("activo = ?", activo == "true")
	}
	if buscar := req.URL.Query().Get("buscar"); buscar != "" {
		patron := "%" + buscar + "%"
		consulta = consulta.Where(
			"codigo_proveedor ILIKE ? OR nombre_proveedor ILIKE ? OR rfc ILIKE ?",
			patron, patron, patron,
		)
	}

	var proveedores []models.Proveedor
	if err := consulta.Order("nombre_proveedor").Find(&proveedores).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al consultar proveedores")
		return
	}
	respondJSON(w, http.StatusOK, proveedores)
}

// getProveedor returns one supplier with its addresses
func (r *Router) getProveedor(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(req)["id"])

	var proveedor models.Proveedor
	if err := r.db.Preload("Direcciones").First(&proveedor, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Proveedor no encontrado")
		return
	}
	respondJSON(w, http.StatusOK, proveedor)
}

// createProveedor creates a supplier
func (r *Router) createProveedor(w http.ResponseWriter, req *http.Request) {
	var proveedor models.Proveedor
	if err := json.NewDecoder(req.Body).Decode(&proveedor); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	if proveedor.CodigoProveedor == "" || proveedor.NombreProveedor == "" {
		respondError(w, http.StatusBadRequest, "Código y nombre de proveedor son requeridos")
		return
	}

	proveedor.Activo = true
	if err := r.db.Create(&proveedor).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al crear proveedor")
		return
	}
	respondJSON(w, http.StatusCreated, proveedor)
}

// updateProveedor updates supplier fields
func (r *Router) updateProveedor(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(req)["id"])

	var proveedor models.Proveedor
	if err := r.db.First(&proveedor, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Proveedor no encontrado")
		return
	}

	var cambios models.Proveedor
	if err := json.NewDecoder(req.Body).Decode(&cambios); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}

	cambios.ID = proveedor.ID
	if err := r.db.Model(&proveedor).Updates(cambios).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al actualizar proveedor")
		return
	}

	r.db.First(&proveedor, proveedor.ID)
	respondJSON(w, http.StatusOK, proveedor)
}

// deleteProveedor deactivates a supplier (soft delete via activo)
func (r *Router) deleteProveedor(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(req)["id"])

	var proveedor models.Proveedor
	if err := r.db.First(&proveedor, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Proveedor no encontrado")
		return
	}

	if err := r.db.Model(&proveedor).Update("activo", false).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al desactivar proveedor")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Proveedor desactivado",
	})
}
