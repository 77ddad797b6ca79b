package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/construmax/inventario-go/internal/buildinfo"
	"github.com/construmax/inventario-go/internal/config"
	"github.com/construmax/inventario-go/internal/database"
	"github.com/construmax/inventario-go/internal/importacion"
	"github.com/construmax/inventario-go/internal/middleware"
	"github.com/gorilla/mux"
)

// Router wraps the mux router and database
type Router struct {
	*mux.Router
	db          *database.DB
	cfg         *config.Config
	importacion *importacion.Servicio
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config) *Router {
	r := &Router{
		Router:      mux.NewRouter(),
		db:          db,
		cfg:         cfg,
		importacion: importacion.NuevoServicio(db),
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	auth := r.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.login).Methods("POST")

	// API routes (protected)
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret))
	api.HandleFunc("/status", r.getStatus).Methods("GET")

	// DTE ingestion
	importacionDTE := api.PathPrefix("/importacion-dte").Subrouter()
	importacionDTE.HandleFunc("/procesar-xml", r.procesarXML).Methods("POST")
	importacionDTE.HandleFunc("/validar-xml", r.validarXML).Methods("POST")
	importacionDTE.HandleFunc("/log", r.listLogImportaciones).Methods("GET")

	// Suppliers
	proveedores := api.PathPrefix("/proveedores").Subrouter()
	proveedores.HandleFunc("", r.listProveedores).Methods("GET")
	proveedores.HandleFunc("", r.createProveedor).Methods("POST")
	proveedores.HandleFunc("/{id}", r.getProveedor).Methods("GET")
	proveedores.HandleFunc("/{id}", r.updateProveedor).Methods("PUT")
	proveedores.HandleFunc("/{id}", r.deleteProveedor).Methods("DELETE")

	// Purchase documents
	documentos := api.PathPrefix("/documentos-compra").Subrouter()
	documentos.HandleFunc("", r.listDocumentos).Methods("GET")
	documentos.HandleFunc("/{id}", r.getDocumento).Methods("GET")
	documentos.HandleFunc("/{id}/estado", r.updateEstadoDocumento).Methods("PUT")

	// Warehouse topology
	bodegas := api.PathPrefix("/bodegas").Subrouter()
	bodegas.HandleFunc("", r.listBodegas).Methods("GET")
	bodegas.HandleFunc("", r.createBodega).Methods("POST")
	bodegas.HandleFunc("/{id}", r.getBodega).Methods("GET")
	bodegas.HandleFunc("/{id}", r.updateBodega).Methods("PUT")
	bodegas.HandleFunc("/{id}", r.deleteBodega).Methods("DELETE")

	// Companies (receiver resolution targets)
	empresas := api.PathPrefix("/empresas").Subrouter()
	empresas.HandleFunc("", r.listEmpresas).Methods("GET")
	empresas.HandleFunc("", r.createEmpresa).Methods("POST")
	empresas.HandleFunc("/{id}", r.getEmpresa).Methods("GET")

	// Document type catalog
	api.HandleFunc("/tipos-documento", r.listTiposDocumento).Methods("GET")

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// getStatus returns the current status
func (r *Router) getStatus(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":     "running",
		"commit":     buildinfo.CommitHash,
		"build_time": buildinfo.BuildTime,
		"start_time": buildinfo.StartTime,
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
