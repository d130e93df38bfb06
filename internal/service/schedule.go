package service

// Generación del cronograma de cuotas. Funciones puras sobre time.Time para
// poder testear el calendario sin tocar el reloj ni la base.

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/geraLv/sistema-gestion/internal/model"
)

// diaVencimiento es el día fijo del mes en el que vencen todas las cuotas.
const diaVencimiento = 20

// primerVencimiento devuelve el primer vencimiento del cronograma: el día 20
// del mes corriente, o el día 20 del mes siguiente si hoy ya pasó el 20.
// Al estar el día clavado en 20 no hay desbordes de fin de mes.
func primerVencimiento(hoy time.Time) time.Time {
	anio, mes, dia := hoy.Date()
	if dia > diaVencimiento {
		mes++
	}
	return time.Date(anio, mes, diaVencimiento, 0, 0, 0, 0, time.UTC)
}

// generarCuotas arma el lote inicial de cuotas de una solicitud: números
// 1..cantidad, todas impagas, con vencimientos mensuales a partir de desde.
func generarCuotas(idsolicitud, cantidad int, importe decimal.Decimal, desde time.Time) []model.Cuota {
	cuotas := make([]model.Cuota, 0, cantidad)
	for i := 0; i < cantidad; i++ {
		cuotas = append(cuotas, model.Cuota{
			RelaSolicitud: idsolicitud,
			NroCuota:      i + 1,
			Importe:       importe,
			Vencimiento:   desde.AddDate(0, i, 0),
			Estado:        model.CuotaImpaga,
			SaldoAnterior: decimal.Zero,
		})
	}
	return cuotas
}

// extenderCuotas arma las cuotas adicionales de una extensión del cronograma,
// continuando la numeración y la cadencia mensual desde la última cuota.
func extenderCuotas(idsolicitud, cantidad int, importe decimal.Decimal, ultima *model.Cuota) []model.Cuota {
	cuotas := make([]model.Cuota, 0, cantidad)
	for i := 1; i <= cantidad; i++ {
		cuotas = append(cuotas, model.Cuota{
			RelaSolicitud: idsolicitud,
			NroCuota:      ultima.NroCuota + i,
			Importe:       importe,
			Vencimiento:   ultima.Vencimiento.AddDate(0, i, 0),
			Estado:        model.CuotaImpaga,
			SaldoAnterior: decimal.Zero,
		})
	}
	return cuotas
}
