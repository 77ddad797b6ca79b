package database

import (
	"log"

	"github.com/construmax/inventario-go/internal/models"
)

// tiposDTE is the standard SII document-type catalog
var tiposDTE = []models.TipoDocumentoCompra{
	{CodigoDTE: "33", NombreTipo: "Factura Electrónica"},
	{CodigoDTE: "34", NombreTipo: "Factura No Afecta o Exenta Electrónica"},
	{CodigoDTE: "52", NombreTipo: "Guía de Despacho Electrónica"},
	{CodigoDTE: "56", NombreTipo: "Nota de Débito Electrónica"},
	{CodigoDTE: "61", NombreTipo: "Nota de Crédito Electrónica"},
}

// SeedTiposDocumento inserts the DTE type catalog when it is empty
func (db *DB) SeedTiposDocumento() error {
	var existentes int64
	if err := db.Model(&models.TipoDocumentoCompra{}).Count(&existentes).Error; err != nil {
		return err
	}
	if existentes > 0 {
		return nil
	}

	for _, tipo := range tiposDTE {
		tipo.Activo = true
		if err := db.Create(&tipo).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Catálogo de tipos de documento creado (%d tipos)", len(tiposDTE))
	return nil
}
