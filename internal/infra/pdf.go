package infra

// pdf.go: Recibos de cobranza con go-pdf/fpdf.
// Cada recibo ocupa media carilla A4: encabezado del negocio, datos del
// cliente, detalle de la cuota y línea de firma. El lote mensual arma un
// recibo por cuota, una página por recibo, para imprimir y cortar.

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/model"
)

const nombreNegocio = "Sistema de Gestión"

// GenerateReciboPDF genera el recibo de una sola cuota.
func GenerateReciboPDF(row *dto.ReporteRow) ([]byte, error) {
	pdf := newReciboDoc()
	pdf.AddPage()
	drawRecibo(pdf, row)
	return outputPDF(pdf)
}

// GenerateRecibosMesPDF genera el lote mensual: un recibo por cuota, una
// página por recibo, en el orden recibido.
func GenerateRecibosMesPDF(rows []dto.ReporteRow) ([]byte, error) {
	pdf := newReciboDoc()
	for i := range rows {
		pdf.AddPage()
		drawRecibo(pdf, &rows[i])
	}
	return outputPDF(pdf)
}

// GenerateResumenPDF genera el listado tabular del reporte por estado.
func GenerateResumenPDF(titulo string, rows []dto.ReporteRow) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 8, titulo, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	cols := []struct {
		titulo string
		ancho  float64
	}{
		{"Solicitud", 0.10},
		{"Cliente", 0.26},
		{"Localidad", 0.16},
		{"Producto", 0.22},
		{"Cuota", 0.08},
		{"Vencimiento", 0.09},
		{"Importe", 0.09},
	}

	pdf.SetFont("Helvetica", "B", 8)
	for _, col := range cols {
		pdf.CellFormat(contentW*col.ancho, 6, col.titulo, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range rows {
		celdas := []string{
			row.NroSolicitud,
			truncar(row.Cliente, 34),
			truncar(row.Localidad, 20),
			truncar(row.Producto, 28),
			fmt.Sprintf("%d/%d", row.NroCuota, row.CantidadCuotas),
			row.Vencimiento.Format("02/01/2006"),
			"$" + row.Importe.StringFixed(2),
		}
		for i, col := range cols {
			pdf.CellFormat(contentW*col.ancho, 5, celdas[i], "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return outputPDF(pdf)
}

// GenerateMonitorPDF genera la ficha de seguimiento de una solicitud:
// datos del cliente, condiciones de venta y avance de cobranza.
func GenerateMonitorPDF(sol *model.Solicitud) ([]byte, error) {
	pdf := newReciboDoc()
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 9, "Monitor de Solicitud", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	var appynom, dni, telefono, direccion, localidad string
	if sol.Cliente != nil {
		appynom = sol.Cliente.Appynom
		dni = sol.Cliente.DNI
		telefono = sol.Cliente.Telefono
		direccion = sol.Cliente.Direccion
		if sol.Cliente.Localidad != nil {
			localidad = sol.Cliente.Localidad.Nombre
		}
	}
	var producto, vendedor string
	if sol.Producto != nil {
		producto = sol.Producto.Descripcion
	}
	if sol.Vendedor != nil {
		vendedor = sol.Vendedor.ApellidoNombre
	}

	pagadas := 0
	for _, cuota := range sol.Cuotas {
		if cuota.Estado == model.CuotaPagada {
			pagadas++
		}
	}

	pdf.SetFont("Helvetica", "", 10)
	lineas := [][2]string{
		{"Solicitud N°", sol.NroSolicitud},
		{"Cliente", appynom},
		{"DNI", dni},
		{"Teléfono", telefono},
		{"Dirección", direccion},
		{"Localidad", localidad},
		{"Fecha alta", sol.FechaAlta.Format("02/01/2006")},
		{"Producto", producto},
		{"Vendedor", vendedor},
		{"N° Cuotas", fmt.Sprintf("%d", sol.CantidadCuotas)},
		{"Imp. Cuota", "$" + sol.Monto.StringFixed(2)},
		{"Total a Pagar", "$" + sol.TotalAPagar.StringFixed(2)},
		{"Pagadas", fmt.Sprintf("%d", pagadas)},
		{"Lleva Pagado", "$" + sol.TotalAbonado.StringFixed(2)},
	}
	for _, l := range lineas {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, l[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW-40, 6, l[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "BU", 10)
	pdf.CellFormat(contentW, 6, "Observaciones:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	observacion := sol.Observacion
	if observacion == "" {
		observacion = "-"
	}
	pdf.MultiCell(contentW, 5, observacion, "", "L", false)

	return outputPDF(pdf)
}

func newReciboDoc() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	return pdf
}

func drawRecibo(pdf *fpdf.Fpdf, row *dto.ReporteRow) {
	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Encabezado ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(contentW, 9, nombreNegocio, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Recibo de Cobranza", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Solicitud N° %s", row.NroSolicitud), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Cuota %d de %d", row.NroCuota, row.CantidadCuotas), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Cliente ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	lineas := [][2]string{
		{"Cliente", row.Cliente},
		{"DNI", row.DNI},
		{"Domicilio", row.Direccion},
		{"Localidad", row.Localidad},
		{"Producto", row.Producto},
	}
	for _, l := range lineas {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(35, 6, l[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW-35, 6, l[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// ── Importe ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW/2, 8, fmt.Sprintf("Vencimiento: %s", row.Vencimiento.Format("02/01/2006")), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 8, "Importe: $"+row.Importe.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.Ln(12)

	// ── Firma ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	pdf.Line(pageW/2+10, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.SetX(pageW/2 + 10)
	pdf.CellFormat(contentW/2-10, 5, "Firma y aclaración", "", 1, "C", false, 0, "")
}

func outputPDF(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func truncar(s string, max int) string {
	// corte por runas para no partir caracteres acentuados a mitad de byte
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
