package dte

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/construmax/inventario-go/internal/utils"
)

// Parse errors. All of them describe broken input and map to HTTP 400.
var (
	ErrXMLMalformado = errors.New("xml mal formado")
	ErrSinDocumento  = errors.New("no se encontró el elemento Documento en el XML")
	ErrSinEncabezado = errors.New("no se encontró el elemento Encabezado en el XML")
)

// EsErrorEntrada reports whether err describes bad input rather than an
// internal failure
func EsErrorEntrada(err error) bool {
	return errors.Is(err, ErrXMLMalformado) ||
		errors.Is(err, ErrSinDocumento) ||
		errors.Is(err, ErrSinEncabezado)
}

// Parse extracts header, line items and references from the XML text of a
// DTE. It tolerates both plain documents and SII-issued ones that qualify
// every element with the SiiDte namespace: lookups match on local element
// names, so either convention resolves. TED and Signature blocks are
// ignored.
//
// Parse is purely functional: it never touches storage and the returned
// Documento is independent of the parser state.
func Parse(xmlContent string) (*Documento, error) {
	xmlContent = strings.TrimSpace(xmlContent)

	raiz := etree.NewDocument()
	if err := raiz.ReadFromString(xmlContent); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrXMLMalformado, err)
	}
	if raiz.Root() == nil {
		return nil, ErrXMLMalformado
	}

	// The Documento node sits at varying depth: bare <DTE>, or wrapped in
	// EnvioDTE/SetDTE for authority-issued files.
	documento := raiz.FindElement("//Documento")
	if documento == nil {
		return nil, ErrSinDocumento
	}

	encabezado, err := extraerEncabezado(documento)
	if err != nil {
		return nil, err
	}

	return &Documento{
		Encabezado:  *encabezado,
		Detalles:    extraerDetalles(documento),
		Referencias: extraerReferencias(documento),
		XMLOriginal: xmlContent,
	}, nil
}

func extraerEncabezado(documento *etree.Element) (*Encabezado, error) {
	encabezado := documento.FindElement(".//Encabezado")
	if encabezado == nil {
		return nil, ErrSinEncabezado
	}

	idDoc := encabezado.FindElement(".//IdDoc")
	emisor := encabezado.FindElement(".//Emisor")
	receptor := encabezado.FindElement(".//Receptor")
	totales := encabezado.FindElement(".//Totales")

	actecos := textos(emisor, ".//Acteco")

	return &Encabezado{
		TipoDTE:          texto(idDoc, ".//TipoDTE"),
		Folio:            texto(idDoc, ".//Folio"),
		FechaEmision:     fecha(texto(idDoc, ".//FchEmis")),
		FechaVencimiento: fecha(texto(idDoc, ".//FchVenc")),
		FormaPago:        texto(idDoc, ".//FmaPago"),

		Emisor: Emisor{
			RUT:            utils.NormalizarRUT(texto(emisor, ".//RUTEmisor")),
			RazonSocial:    primero(texto(emisor, ".//RznSoc"), texto(emisor, ".//RznSocEmisor")),
			Giro:           primero(texto(emisor, ".//GiroEmis"), texto(emisor, ".//GiroEmisor")),
			Telefono:       texto(emisor, ".//Telefono"),
			Email:          texto(emisor, ".//CorreoEmisor"),
			Acteco1:        indice(actecos, 0),
			Acteco2:        indice(actecos, 1),
			Acteco3:        indice(actecos, 2),
			Acteco4:        indice(actecos, 3),
			CodigoSucursal: texto(emisor, ".//CdgSIISucur"),
			Direccion:      texto(emisor, ".//DirOrigen"),
			Comuna:         texto(emisor, ".//CmnaOrigen"),
			Ciudad:         texto(emisor, ".//CiudadOrigen"),
		},

		Receptor: Receptor{
			RUT:         utils.NormalizarRUT(texto(receptor, ".//RUTRecep")),
			RazonSocial: texto(receptor, ".//RznSocRecep"),
			Giro:        texto(receptor, ".//GiroRecep"),
			Direccion:   texto(receptor, ".//DirRecep"),
			Comuna:      texto(receptor, ".//CmnaRecep"),
			Ciudad:      texto(receptor, ".//CiudadRecep"),
			Contacto:    texto(receptor, ".//Contacto"),
			Email:       texto(receptor, ".//CorreoRecep"),
		},

		Totales: Totales{
			MontoNeto:   numero(totales, ".//MntNeto", 0),
			MontoExento: numero(totales, ".//MntExe", 0),
			TasaIVA:     numero(totales, ".//TasaIVA", 19),
			IVA:         numero(totales, ".//IVA", 0),
			MontoTotal:  numero(totales, ".//MntTotal", 0),
		},
	}, nil
}

func extraerDetalles(documento *etree.Element) []Detalle {
	var detalles []Detalle

	for i, el := range documento.FindElements(".//Detalle") {
		detalles = append(detalles, Detalle{
			// Line numbers default to discovery order (1-based)
			NumeroLinea:    entero(el, ".//NroLinDet", i+1),
			CodigoItem:     texto(el, ".//VlrCodigo"),
			TipoCodigo:     texto(el, ".//TpoCodigo"),
			NombreItem:     texto(el, ".//NmbItem"),
			Descripcion:    texto(el, ".//DscItem"),
			Cantidad:       numero(el, ".//QtyItem", 1),
			UnidadMedida:   texto(el, ".//UnmdItem"),
			PrecioUnitario: numero(el, ".//PrcItem", 0),
			DescuentoPct:   numero(el, ".//DescuentoPct", 0),
			DescuentoMonto: numero(el, ".//DescuentoMonto", 0),
			MontoItem:      numero(el, ".//MontoItem", 0),
		})
	}

	return detalles
}

func extraerReferencias(documento *etree.Element) []Referencia {
	var referencias []Referencia

	for i, el := range documento.FindElements(".//Referencia") {
		referencias = append(referencias, Referencia{
			NumeroLineaRef:   entero(el, ".//NroLinRef", i+1),
			TipoDocumentoRef: texto(el, ".//TpoDocRef"),
			FolioRef:         texto(el, ".//FolioRef"),
			FechaRef:         fecha(texto(el, ".//FchRef")),
			CodigoRef:        texto(el, ".//CodRef"),
			RazonRef:         texto(el, ".//RazonRef"),
		})
	}

	return referencias
}

// texto returns the trimmed text of the first element matching path, or ""
func texto(e *etree.Element, path string) string {
	if e == nil {
		return ""
	}
	found := e.FindElement(path)
	if found == nil {
		return ""
	}
	return strings.TrimSpace(found.Text())
}

// textos returns the trimmed texts of every element matching path
func textos(e *etree.Element, path string) []string {
	if e == nil {
		return nil
	}
	var out []string
	for _, found := range e.FindElements(path) {
		out = append(out, strings.TrimSpace(found.Text()))
	}
	return out
}

// numero parses a monetary/decimal field, falling back to def when the
// element is absent or unparseable
func numero(e *etree.Element, path string, def float64) float64 {
	s := texto(e, path)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// entero parses an integer field with a fallback default
func entero(e *etree.Element, path string, def int) int {
	s := texto(e, path)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// fecha parses a YYYY-MM-DD date; absent or unparseable dates yield nil,
// never an error
func fecha(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// primero returns the first non-empty string
func primero(valores ...string) string {
	for _, v := range valores {
		if v != "" {
			return v
		}
	}
	return ""
}

// indice returns valores[i] or "" when out of range
func indice(valores []string, i int) string {
	if i < 0 || i >= len(valores) {
		return ""
	}
	return valores[i]
}
