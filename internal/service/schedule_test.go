package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimerVencimiento(t *testing.T) {
	casos := []struct {
		hoy      string
		esperado string
	}{
		{"2026-03-05", "2026-03-20"},
		{"2026-03-20", "2026-03-20"}, // el día 20 todavía entra en el mes corriente
		{"2026-03-21", "2026-04-20"},
		{"2026-12-25", "2027-01-20"}, // el salto de mes cruza el año
		{"2026-01-31", "2026-02-20"},
	}
	for _, c := range casos {
		hoy, err := time.Parse("2006-01-02", c.hoy)
		require.NoError(t, err)
		v := primerVencimiento(hoy)
		assert.Equal(t, c.esperado, v.Format("2006-01-02"), "hoy=%s", c.hoy)
	}
}

func TestGenerarCuotas(t *testing.T) {
	desde := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)
	cuotas := generarCuotas(7, 12, decimal.NewFromInt(150), desde)

	require.Len(t, cuotas, 12)
	assert.Equal(t, 1, cuotas[0].NroCuota)
	assert.Equal(t, 12, cuotas[11].NroCuota)
	assert.Equal(t, "2026-04-20", cuotas[0].Vencimiento.Format("2006-01-02"))
	assert.Equal(t, "2027-03-20", cuotas[11].Vencimiento.Format("2006-01-02"))
	for _, c := range cuotas {
		assert.Equal(t, 7, c.RelaSolicitud)
		assert.Equal(t, 20, c.Vencimiento.Day())
	}
}
