package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/construmax/inventario-go/internal/models"
	"github.com/construmax/inventario-go/internal/utils"
)

// login authenticates a user and issues a JWT
func (r *Router) login(w http.ResponseWriter, req *http.Request) {
	var credenciales struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(req.Body).Decode(&credenciales); err != nil {
		respondError(w, http.StatusBadRequest, "Payload inválido")
		return
	}
	if credenciales.Username == "" || credenciales.Password == "" {
		respondError(w, http.StatusBadRequest, "Usuario y contraseña son requeridos")
		return
	}

	var usuario models.Usuario
	err := r.db.Where("username = ? AND activo = ?", credenciales.Username, true).
		First(&usuario).Error
	if err != nil || !utils.CheckPasswordHash(credenciales.Password, usuario.Password) {
		respondError(w, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}

	token, err := utils.GenerateToken(&usuario, r.cfg.JWTSecret)
	if err != nil {
		log.Printf("❌ No se pudo generar token para %s: %v", usuario.Username, err)
		respondError(w, http.StatusInternalServerError, "Error al generar token")
		return
	}

	ahora := time.Now().UTC()
	r.db.Model(&usuario).Update("ultimo_acceso", &ahora)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"usuario": usuario,
	})
}
