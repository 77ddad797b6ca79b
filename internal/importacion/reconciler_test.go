package importacion

import (
	"testing"

	"github.com/construmax/inventario-go/internal/dte"
	"github.com/construmax/inventario-go/internal/models"
)

func TestMergeProveedor_FillsEmptyFields(t *testing.T) {
	proveedor := &models.Proveedor{
		NombreProveedor: "ACME",
		RazonSocial:     "ACME",
		RFC:             "76543210-K",
	}

	emisor := dte.Emisor{
		RUT:         "76543210-K",
		RazonSocial: "ACME SPA",
		Giro:        "Venta de materiales",
		Telefono:    "+56223456789",
		Email:       "ventas@acme.cl",
		Acteco1:     "466301",
	}

	if !MergeProveedor(proveedor, emisor) {
		t.Fatal("Merge should report changes")
	}

	if proveedor.RazonSocial != "ACME SPA" {
		t.Errorf("RazonSocial: got %q, want %q", proveedor.RazonSocial, "ACME SPA")
	}
	if proveedor.NombreProveedor != "ACME SPA" {
		t.Errorf("NombreProveedor should follow RazonSocial, got %q", proveedor.NombreProveedor)
	}
	if proveedor.GiroComercial != "Venta de materiales" {
		t.Errorf("GiroComercial: got %q", proveedor.GiroComercial)
	}
	if proveedor.Telefono != "+56223456789" || proveedor.Email != "ventas@acme.cl" {
		t.Errorf("Contact fields: got tel=%q email=%q", proveedor.Telefono, proveedor.Email)
	}
	if proveedor.Acteco1 != "466301" {
		t.Errorf("Acteco1: got %q", proveedor.Acteco1)
	}
}

func TestMergeProveedor_NeverDegrades(t *testing.T) {
	proveedor := &models.Proveedor{
		NombreProveedor: "ACME SOCIEDAD POR ACCIONES",
		RazonSocial:     "ACME SOCIEDAD POR ACCIONES",
		RFC:             "76543210-K",
		GiroComercial:   "Venta de materiales de construcción",
		Telefono:        "+56223456789",
		Email:           "ventas@acme.cl",
		Acteco1:         "466301",
	}

	// A truncated re-import: shorter legal name, different contact data
	emisor := dte.Emisor{
		RUT:         "76543210-K",
		RazonSocial: "ACME SPA",
		Giro:        "Comercio",
		Telefono:    "+56200000000",
		Email:       "otro@acme.cl",
		Acteco1:     "999999",
	}

	if MergeProveedor(proveedor, emisor) {
		t.Error("Merge should report no changes for degraded data")
	}

	if proveedor.RazonSocial != "ACME SOCIEDAD POR ACCIONES" {
		t.Errorf("Shorter legal name must not overwrite: got %q", proveedor.RazonSocial)
	}
	if proveedor.GiroComercial != "Venta de materiales de construcción" {
		t.Errorf("Filled giro must not be replaced: got %q", proveedor.GiroComercial)
	}
	if proveedor.Telefono != "+56223456789" || proveedor.Email != "ventas@acme.cl" {
		t.Errorf("Filled contact fields must not be replaced: tel=%q email=%q",
			proveedor.Telefono, proveedor.Email)
	}
	if proveedor.Acteco1 != "466301" {
		t.Errorf("Filled acteco must not be replaced: got %q", proveedor.Acteco1)
	}
}

func TestMergeProveedor_Idempotent(t *testing.T) {
	emisor := dte.Emisor{
		RUT:         "76543210-K",
		RazonSocial: "ACME SPA",
		Giro:        "Comercio",
	}

	proveedor := &models.Proveedor{RFC: "76543210-K"}

	if !MergeProveedor(proveedor, emisor) {
		t.Fatal("First merge should change the empty supplier")
	}
	// Re-ingesting the identical payload changes nothing
	if MergeProveedor(proveedor, emisor) {
		t.Error("Second merge with identical data should be a no-op")
	}
}

func TestMergeProveedor_EmptyIncomingValues(t *testing.T) {
	proveedor := &models.Proveedor{
		RFC:         "76543210-K",
		RazonSocial: "ACME SPA",
		Email:       "ventas@acme.cl",
	}

	// Empty extraction must never blank stored fields
	if MergeProveedor(proveedor, dte.Emisor{RUT: "76543210-K"}) {
		t.Error("Empty issuer data should not change anything")
	}
	if proveedor.RazonSocial != "ACME SPA" || proveedor.Email != "ventas@acme.cl" {
		t.Errorf("Fields were degraded: %+v", proveedor)
	}
}
