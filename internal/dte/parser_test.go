package dte

import (
	"errors"
	"testing"
)

const xmlFactura = `<?xml version="1.0" encoding="UTF-8"?>
<DTE version="1.0">
  <Documento ID="F123T33">
    <Encabezado>
      <IdDoc>
        <TipoDTE>33</TipoDTE>
        <Folio>123</Folio>
        <FchEmis>2024-05-10</FchEmis>
        <FchVenc>2024-06-10</FchVenc>
        <FmaPago>2</FmaPago>
      </IdDoc>
      <Emisor>
        <RUTEmisor>76.543.210-K</RUTEmisor>
        <RznSoc>ACME SPA</RznSoc>
        <GiroEmis>Venta de materiales de construcción</GiroEmis>
        <Acteco>466301</Acteco>
        <Acteco>466302</Acteco>
        <Telefono>+56223456789</Telefono>
        <CorreoEmisor>ventas@acme.cl</CorreoEmisor>
        <DirOrigen>Av. Principal 123</DirOrigen>
        <CmnaOrigen>Santiago</CmnaOrigen>
        <CiudadOrigen>Santiago</CiudadOrigen>
      </Emisor>
      <Receptor>
        <RUTRecep>77.111.222-3</RUTRecep>
        <RznSocRecep>CONSTRUCTORA SUR LTDA</RznSocRecep>
      </Receptor>
      <Totales>
        <MntNeto>8000</MntNeto>
        <TasaIVA>19</TasaIVA>
        <IVA>1520</IVA>
        <MntTotal>9520</MntTotal>
      </Totales>
    </Encabezado>
    <Detalle>
      <NroLinDet>1</NroLinDet>
      <NmbItem>Cemento 25kg</NmbItem>
      <QtyItem>3</QtyItem>
      <PrcItem>1000</PrcItem>
      <MontoItem>3000</MontoItem>
    </Detalle>
    <Detalle>
      <NroLinDet>2</NroLinDet>
      <CdgItem>
        <TpoCodigo>INT1</TpoCodigo>
        <VlrCodigo>FE-8</VlrCodigo>
      </CdgItem>
      <NmbItem>Fierro 8mm</NmbItem>
      <QtyItem>1</QtyItem>
      <PrcItem>5000</PrcItem>
      <MontoItem>5000</MontoItem>
    </Detalle>
    <Referencia>
      <NroLinRef>1</NroLinRef>
      <TpoDocRef>801</TpoDocRef>
      <FolioRef>OC-55</FolioRef>
      <FchRef>2024-05-01</FchRef>
      <CodRef></CodRef>
      <RazonRef>Orden de compra</RazonRef>
    </Referencia>
  </Documento>
</DTE>`

func TestParse_Encabezado(t *testing.T) {
	doc, err := Parse(xmlFactura)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	enc := doc.Encabezado
	if enc.TipoDTE != "33" {
		t.Errorf("TipoDTE: got %q, want %q", enc.TipoDTE, "33")
	}
	if enc.Folio != "123" {
		t.Errorf("Folio: got %q, want %q", enc.Folio, "123")
	}
	if enc.FormaPago != "2" {
		t.Errorf("FormaPago: got %q, want %q", enc.FormaPago, "2")
	}
	if enc.FechaEmision == nil || enc.FechaEmision.Format("2006-01-02") != "2024-05-10" {
		t.Errorf("FechaEmision: got %v, want 2024-05-10", enc.FechaEmision)
	}
	if enc.FechaVencimiento == nil || enc.FechaVencimiento.Format("2006-01-02") != "2024-06-10" {
		t.Errorf("FechaVencimiento: got %v, want 2024-06-10", enc.FechaVencimiento)
	}

	// RUT must be normalized: dots stripped, dash kept
	if enc.Emisor.RUT != "76543210-K" {
		t.Errorf("Emisor.RUT: got %q, want %q", enc.Emisor.RUT, "76543210-K")
	}
	if enc.Emisor.RazonSocial != "ACME SPA" {
		t.Errorf("Emisor.RazonSocial: got %q", enc.Emisor.RazonSocial)
	}
	if enc.Emisor.Acteco1 != "466301" || enc.Emisor.Acteco2 != "466302" {
		t.Errorf("Actecos: got %q, %q", enc.Emisor.Acteco1, enc.Emisor.Acteco2)
	}
	if enc.Emisor.Acteco3 != "" {
		t.Errorf("Acteco3 should be empty, got %q", enc.Emisor.Acteco3)
	}
	if enc.Receptor.RUT != "77111222-3" {
		t.Errorf("Receptor.RUT: got %q, want %q", enc.Receptor.RUT, "77111222-3")
	}

	if enc.Totales.MontoNeto != 8000 {
		t.Errorf("MontoNeto: got %v, want 8000", enc.Totales.MontoNeto)
	}
	if enc.Totales.MontoExento != 0 {
		t.Errorf("MontoExento should default to 0, got %v", enc.Totales.MontoExento)
	}
	if enc.Totales.TasaIVA != 19 {
		t.Errorf("TasaIVA: got %v, want 19", enc.Totales.TasaIVA)
	}
	if enc.Totales.MontoTotal != 9520 {
		t.Errorf("MntTotal: got %v, want 9520", enc.Totales.MontoTotal)
	}
}

func TestParse_Detalles(t *testing.T) {
	doc, err := Parse(xmlFactura)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(doc.Detalles) != 2 {
		t.Fatalf("Expected 2 detalles, got %d", len(doc.Detalles))
	}

	primero := doc.Detalles[0]
	if primero.NumeroLinea != 1 || primero.NombreItem != "Cemento 25kg" {
		t.Errorf("Line 1: got %+v", primero)
	}
	if primero.Cantidad != 3 || primero.PrecioUnitario != 1000 {
		t.Errorf("Line 1 amounts: got qty=%v price=%v", primero.Cantidad, primero.PrecioUnitario)
	}

	segundo := doc.Detalles[1]
	if segundo.NumeroLinea != 2 || segundo.CodigoItem != "FE-8" {
		t.Errorf("Line 2: got numero=%d codigo=%q", segundo.NumeroLinea, segundo.CodigoItem)
	}
}

func TestParse_Referencias(t *testing.T) {
	doc, err := Parse(xmlFactura)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(doc.Referencias) != 1 {
		t.Fatalf("Expected 1 referencia, got %d", len(doc.Referencias))
	}

	ref := doc.Referencias[0]
	if ref.TipoDocumentoRef != "801" || ref.FolioRef != "OC-55" {
		t.Errorf("Referencia: got %+v", ref)
	}
	if ref.CodigoRef != "" {
		t.Errorf("Empty CodRef should extract as empty string, got %q", ref.CodigoRef)
	}
	if ref.FechaRef == nil || ref.FechaRef.Format("2006-01-02") != "2024-05-01" {
		t.Errorf("FechaRef: got %v", ref.FechaRef)
	}
}

func TestParse_NamespacedDocument(t *testing.T) {
	// Authority-issued files qualify every element and wrap the Documento
	// node in EnvioDTE/SetDTE
	xmlSII := `<?xml version="1.0"?>
<sii:EnvioDTE xmlns:sii="http://www.sii.cl/SiiDte" version="1.0">
  <sii:SetDTE>
    <sii:DTE version="1.0">
      <sii:Documento ID="F45T33">
        <sii:Encabezado>
          <sii:IdDoc>
            <sii:TipoDTE>33</sii:TipoDTE>
            <sii:Folio>45</sii:Folio>
            <sii:FchEmis>2024-03-01</sii:FchEmis>
          </sii:IdDoc>
          <sii:Emisor>
            <sii:RUTEmisor>76543210-K</sii:RUTEmisor>
            <sii:RznSocEmisor>ACME SPA</sii:RznSocEmisor>
            <sii:GiroEmisor>Comercio</sii:GiroEmisor>
          </sii:Emisor>
          <sii:Receptor>
            <sii:RUTRecep>77111222-3</sii:RUTRecep>
          </sii:Receptor>
          <sii:Totales>
            <sii:MntNeto>1000</sii:MntNeto>
            <sii:IVA>190</sii:IVA>
            <sii:MntTotal>1190</sii:MntTotal>
          </sii:Totales>
        </sii:Encabezado>
        <sii:Detalle>
          <sii:NmbItem>Arena</sii:NmbItem>
          <sii:QtyItem>2</sii:QtyItem>
          <sii:PrcItem>500</sii:PrcItem>
        </sii:Detalle>
      </sii:Documento>
    </sii:DTE>
  </sii:SetDTE>
</sii:EnvioDTE>`

	doc, err := Parse(xmlSII)
	if err != nil {
		t.Fatalf("Parse failed on namespaced document: %v", err)
	}

	if doc.Encabezado.Folio != "45" {
		t.Errorf("Folio: got %q, want %q", doc.Encabezado.Folio, "45")
	}
	// Alternate element names used by SII files
	if doc.Encabezado.Emisor.RazonSocial != "ACME SPA" {
		t.Errorf("RznSocEmisor fallback: got %q", doc.Encabezado.Emisor.RazonSocial)
	}
	if doc.Encabezado.Emisor.Giro != "Comercio" {
		t.Errorf("GiroEmisor fallback: got %q", doc.Encabezado.Emisor.Giro)
	}
	// TasaIVA absent: defaults to the standard rate
	if doc.Encabezado.Totales.TasaIVA != 19 {
		t.Errorf("TasaIVA default: got %v, want 19", doc.Encabezado.Totales.TasaIVA)
	}
	// NroLinDet absent: 1-based discovery order
	if len(doc.Detalles) != 1 || doc.Detalles[0].NumeroLinea != 1 {
		t.Errorf("Implicit line number: got %+v", doc.Detalles)
	}
	// QtyItem present, default not applied
	if doc.Detalles[0].Cantidad != 2 {
		t.Errorf("Cantidad: got %v, want 2", doc.Detalles[0].Cantidad)
	}
}

func TestParse_MalformedXML(t *testing.T) {
	_, err := Parse("<DTE><Documento><Encabezado>")
	if err == nil {
		t.Fatal("Expected error for unclosed tags")
	}
	if !errors.Is(err, ErrXMLMalformado) {
		t.Errorf("Expected ErrXMLMalformado, got %v", err)
	}
	if !EsErrorEntrada(err) {
		t.Error("Malformed XML should classify as input error")
	}
}

func TestParse_MissingDocumento(t *testing.T) {
	_, err := Parse("<DTE><Otro>x</Otro></DTE>")
	if !errors.Is(err, ErrSinDocumento) {
		t.Errorf("Expected ErrSinDocumento, got %v", err)
	}
}

func TestParse_MissingEncabezado(t *testing.T) {
	_, err := Parse("<DTE><Documento><Detalle/></Documento></DTE>")
	if !errors.Is(err, ErrSinEncabezado) {
		t.Errorf("Expected ErrSinEncabezado, got %v", err)
	}
}

func TestParse_InvalidDates(t *testing.T) {
	xml := `<DTE><Documento><Encabezado>
      <IdDoc><TipoDTE>33</TipoDTE><Folio>9</Folio><FchEmis>10-05-2024</FchEmis></IdDoc>
      <Emisor><RUTEmisor>76543210-K</RUTEmisor></Emisor>
    </Encabezado></Documento></DTE>`

	doc, err := Parse(xml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// Wrong format yields "no date", never an error
	if doc.Encabezado.FechaEmision != nil {
		t.Errorf("Unparseable date should be nil, got %v", doc.Encabezado.FechaEmision)
	}
}
