package worker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeBody_EnmascaraCamposSensibles(t *testing.T) {
	in := `{"usuario":"cobrador","password":"clave123","datos":{"token":"abc","nombre":"Juan"}}`
	out := SanitizeBody(in)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "cobrador", decoded["usuario"])
	assert.Equal(t, "[REDACTADO]", decoded["password"])

	datos := decoded["datos"].(map[string]interface{})
	assert.Equal(t, "[REDACTADO]", datos["token"])
	assert.Equal(t, "Juan", datos["nombre"])
}

func TestSanitizeBody_Arrays(t *testing.T) {
	in := `[{"password_actual":"a","password_nueva":"b","otro":1}]`
	out := SanitizeBody(in)

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "[REDACTADO]", decoded[0]["password_actual"])
	assert.Equal(t, "[REDACTADO]", decoded[0]["password_nueva"])
	assert.Equal(t, float64(1), decoded[0]["otro"])
}

func TestSanitizeBody_JSONInvalido(t *testing.T) {
	// ante un body no parseable se descarta entero
	assert.Equal(t, "", SanitizeBody("esto no es json"))
	assert.Equal(t, "", SanitizeBody(""))
}
