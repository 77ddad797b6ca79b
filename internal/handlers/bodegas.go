package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/construmax/inventario-go/internal/models"
	"github.com/gorilla/mux"
)

// listBodegas returns all active warehouses
func (r *Router) listBodegas(w http.ResponseWriter, req *http.Request) {
	var bodegas []models.Bodega
	if err := r.db.Where("activo = ?", true).Order("codigo_bodega").Find(&bodegas).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al consultar bodegas")
		return
	}
	respondJSON(w, http.StatusOK, bodegas)
}

// getBodega returns one warehouse with its full topology
// (pasillos → estantes → niveles)
func (r *Router) getBodega(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(req)["id"])

	var bodega models.Bodega
	err := r.db.Preload("Pasillos").
		Preload("Pasillos.Estantes").
		Preload("Pasillos.Estantes.Niveles").
		First(&bodega, id).Error
	if err != nil {
		respondError(w, http.StatusNotFound, "Bodega no encontrada")
		return
	}
	respondJSON(w, http.StatusOK, bodega)
}

// createBodega creates a warehouse
func (r *Router) createBodega(w http.ResponseWriter, req *http.Request) {
	var bodega models.Bodega
	if err := json.NewDecoder(req.Body).Decode(&bodega); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	if bodega.CodigoBodega == "" || bodega.NombreBodega == "" {
		respondError(w, http.StatusBadRequest, "Código y nombre de bodega son requeridos")
		return
	}

	bodega.Activo = true
	if err := r.db.Create(&bodega).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al crear bodega")
		return
	}
	respondJSON(w, http.StatusCreated, bodega)
}

// updateBodega updates warehouse fields
func (r *Router) updateBodega(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(req)["id"])

	var bodega models.Bodega
	if err := r.db.First(&bodega, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Bodega no encontrada")
		return
	}

	var cambios models.Bodega
	if err := json.NewDecoder(req.Body).Decode(&cambios); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}

	cambios.ID = bodega.ID
	if err := r.db.Model(&bodega).Updates(cambios).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al actualizar bodega")
		return
	}

	r.db.First(&bodega, bodega.ID)
	respondJSON(w, http.StatusOK, bodega)
}

// deleteBodega deactivates a warehouse
func (r *Router) deleteBodega(w http.ResponseWriter, req *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(req)["id"])

	var bodega models.Bodega
	if err := r.db.First(&bodega, id).Error; err != nil {
		respondError(w, http.StatusNotFound, "Bodega no encontrada")
		return
	}

	if err := r.db.Model(&bodega).Update("activo", false).Error; err != nil {
		respondError(w, http.StatusInternalServerError, "Error al desactivar bodega")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Bodega desactivada",
	})
}
