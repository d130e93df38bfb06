package infra

// xlsx.go: Export de reportes a planilla con excelize.

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/geraLv/sistema-gestion/internal/dto"
)

var xlsxCabeceras = []string{
	"Nro Solicitud", "Cliente", "DNI", "Localidad", "Producto",
	"Cuota", "Vencimiento", "Importe", "Total a Pagar", "Total Abonado", "% Pagado",
}

// GenerateReporteXLSX vuelca las filas del reporte en una planilla de una
// sola hoja, con encabezados en negrita y anchos de columna fijos.
func GenerateReporteXLSX(hoja string, rows []dto.ReporteRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(hoja)
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}

	negrita, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}

	for i, titulo := range xlsxCabeceras {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(hoja, cell, titulo); err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetCellStyle(hoja, cell, cell, negrita); err != nil {
			return nil, fmt.Errorf("xlsx: %w", err)
		}
	}
	_ = f.SetColWidth(hoja, "A", "K", 16)
	_ = f.SetColWidth(hoja, "B", "B", 32)

	for fila, row := range rows {
		valores := []interface{}{
			row.NroSolicitud,
			row.Cliente,
			row.DNI,
			row.Localidad,
			row.Producto,
			fmt.Sprintf("%d/%d", row.NroCuota, row.CantidadCuotas),
			row.Vencimiento.Format("02/01/2006"),
			row.Importe.InexactFloat64(),
			row.TotalAPagar.InexactFloat64(),
			row.TotalAbonado.InexactFloat64(),
			row.PorcentajePagado.InexactFloat64(),
		}
		for col, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(col+1, fila+2)
			if err := f.SetCellValue(hoja, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
