package infra

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geraLv/sistema-gestion/internal/model"
)

func TestGenerateMonitorPDF(t *testing.T) {
	sol := &model.Solicitud{
		NroSolicitud:   "1043",
		Monto:          decimal.NewFromInt(250),
		CantidadCuotas: 4,
		TotalAPagar:    decimal.NewFromInt(1000),
		TotalAbonado:   decimal.NewFromInt(500),
		Observacion:    "Entrega pactada para septiembre",
		FechaAlta:      time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Cliente: &model.Cliente{
			Appynom:   "GÓMEZ JUAN",
			DNI:       "30123456",
			Telefono:  "3804-555123",
			Direccion: "San Martín 120",
			Localidad: &model.Localidad{Nombre: "Chamical"},
		},
		Producto: &model.Producto{Descripcion: "Sommier 2 plazas"},
		Vendedor: &model.Vendedor{ApellidoNombre: "PÉREZ LAURA"},
		Cuotas: []model.Cuota{
			{NroCuota: 1, Estado: model.CuotaPagada},
			{NroCuota: 2, Estado: model.CuotaPagada},
			{NroCuota: 3, Estado: model.CuotaImpaga},
			{NroCuota: 4, Estado: model.CuotaImpaga},
		},
	}

	pdf, err := GenerateMonitorPDF(sol)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestGenerateMonitorPDF_SinRelacionesCargadas(t *testing.T) {
	// sin preloads el documento igual se arma, con los campos en blanco
	sol := &model.Solicitud{
		NroSolicitud: "17",
		Monto:        decimal.NewFromInt(100),
		TotalAPagar:  decimal.NewFromInt(400),
	}
	pdf, err := GenerateMonitorPDF(sol)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestTruncar(t *testing.T) {
	assert.Equal(t, "corto", truncar("corto", 10))

	out := truncar("ÑANDÚBAY ÁLVAREZ MARÍA JOSÉ", 10)
	// el corte es por runas: nunca parte un caracter acentuado por la mitad
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, 10, utf8.RuneCountInString(out))

	// borde exacto en una runa multibyte
	out = truncar("AÑO", 2)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, "A…", out)
}
