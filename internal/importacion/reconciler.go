package importacion

import (
	"errors"
	"fmt"

	"github.com/construmax/inventario-go/internal/dte"
	"github.com/construmax/inventario-go/internal/models"
	"github.com/construmax/inventario-go/internal/utils"
	"gorm.io/gorm"
)

// ErrRUTEmisorRequerido is returned when the XML carries no issuer RUT.
// The RUT is the natural key for supplier reconciliation.
var ErrRUTEmisorRequerido = errors.New("el RUT del emisor es requerido")

// BuscarOCrearProveedor resolves the supplier for an extracted issuer
// block, creating it on first sighting. Existing suppliers are updated
// under the "only improve" policy of MergeProveedor; the principal FISCAL
// address is created once, with the supplier, and never reconciled on
// later imports (address changes are an operator task).
//
// Two requests racing on the same unseen RUT can both miss the lookup; the
// unique index on rfc rejects the second insert and the lookup is retried.
func BuscarOCrearProveedor(db *gorm.DB, emisor dte.Emisor) (*models.Proveedor, error) {
	if emisor.RUT == "" {
		return nil, ErrRUTEmisorRequerido
	}

	proveedor, err := buscarPorRUT(db, emisor.RUT)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error al buscar proveedor: %w", err)
	}

	if proveedor != nil {
		if MergeProveedor(proveedor, emisor) {
			if err := db.Save(proveedor).Error; err != nil {
				return nil, fmt.Errorf("error al actualizar proveedor: %w", err)
			}
		}
		return proveedor, nil
	}

	proveedor, err = crearProveedor(db, emisor)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race against a concurrent first sighting
		proveedor, err = buscarPorRUT(db, emisor.RUT)
	}
	if err != nil {
		return nil, fmt.Errorf("error al crear proveedor: %w", err)
	}
	return proveedor, nil
}

func buscarPorRUT(db *gorm.DB, rut string) (*models.Proveedor, error) {
	var proveedor models.Proveedor
	if err := db.Where("rfc = ?", rut).First(&proveedor).Error; err != nil {
		return nil, err
	}
	return &proveedor, nil
}

// MergeProveedor applies the extracted issuer data onto an existing
// supplier and reports whether anything changed. The policy is "only
// improve, never degrade": the legal name is replaced only by a strictly
// longer value (re-imports of truncated XMLs must not clobber good data),
// every other field is filled only while it is still empty.
func MergeProveedor(proveedor *models.Proveedor, emisor dte.Emisor) bool {
	cambiado := false

	if emisor.RazonSocial != "" && len(emisor.RazonSocial) > len(proveedor.RazonSocial) {
		proveedor.RazonSocial = emisor.RazonSocial
		proveedor.NombreProveedor = emisor.RazonSocial
		cambiado = true
	}

	completar := func(destino *string, valor string) {
		if valor != "" && *destino == "" {
			*destino = valor
			cambiado = true
		}
	}

	completar(&proveedor.GiroComercial, emisor.Giro)
	completar(&proveedor.Telefono, emisor.Telefono)
	completar(&proveedor.Email, emisor.Email)
	completar(&proveedor.Acteco1, emisor.Acteco1)
	completar(&proveedor.Acteco2, emisor.Acteco2)
	completar(&proveedor.Acteco3, emisor.Acteco3)
	completar(&proveedor.Acteco4, emisor.Acteco4)

	return cambiado
}

func crearProveedor(db *gorm.DB, emisor dte.Emisor) (*models.Proveedor, error) {
	proveedor := models.Proveedor{
		CodigoProveedor: utils.CodigoDesdeRUT(emisor.RUT),
		NombreProveedor: emisor.RazonSocial,
		RazonSocial:     emisor.RazonSocial,
		RFC:             emisor.RUT,
		GiroComercial:   emisor.Giro,
		Acteco1:         emisor.Acteco1,
		Acteco2:         emisor.Acteco2,
		Acteco3:         emisor.Acteco3,
		Acteco4:         emisor.Acteco4,
		Telefono:        emisor.Telefono,
		Email:           emisor.Email,
		Pais:            "Chile",
		Activo:          true,
	}

	if err := db.Create(&proveedor).Error; err != nil {
		return nil, err
	}

	// Principal address only for newly created suppliers, and only when
	// the XML actually carries one
	if emisor.Direccion != "" {
		direccion := models.DireccionProveedor{
			ProveedorID:   proveedor.ID,
			TipoDireccion: "FISCAL",
			Direccion:     emisor.Direccion,
			Comuna:        emisor.Comuna,
			Ciudad:        emisor.Ciudad,
			Pais:          "Chile",
			EsPrincipal:   true,
			Activo:        true,
		}
		if err := db.Create(&direccion).Error; err != nil {
			return nil, err
		}
	}

	return &proveedor, nil
}
