package worker

// audit_worker.go: Persistencia asíncrona del registro de auditoría.
// El payload del request se sanitiza antes de guardarse: los campos
// sensibles (passwords, tokens) se enmascaran recursivamente.

import (
	"context"
	"encoding/json"

	"github.com/geraLv/sistema-gestion/internal/model"
	"github.com/geraLv/sistema-gestion/internal/repository"
)

// AuditPayload viaja por la cola jobs:auditoria.
type AuditPayload struct {
	Usuario   string `json:"usuario"`
	Metodo    string `json:"metodo"`
	Ruta      string `json:"ruta"`
	Estado    int    `json:"estado"`
	Body      string `json:"body,omitempty"`
	IP        string `json:"ip"`
	RequestID string `json:"request_id"`
}

const redactado = "[REDACTADO]"

// camposSensibles se enmascaran en cualquier nivel del body auditado.
var camposSensibles = map[string]bool{
	"password":        true,
	"password_actual": true,
	"password_nueva":  true,
	"token":           true,
	"secret":          true,
}

func processAuditJob(ctx context.Context, repo repository.AuditRepository, raw json.RawMessage) error {
	var payload AuditPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return err
	}

	entry := &model.AuditLog{
		Usuario:   payload.Usuario,
		Metodo:    payload.Metodo,
		Ruta:      payload.Ruta,
		Estado:    payload.Estado,
		Payload:   SanitizeBody(payload.Body),
		IP:        payload.IP,
		RequestID: payload.RequestID,
	}
	return repo.Create(ctx, entry)
}

// SanitizeBody enmascara los campos sensibles de un body JSON. Si el body no
// es JSON válido se descarta entero: mejor perder el payload que filtrar una
// credencial.
func SanitizeBody(body string) string {
	if body == "" {
		return ""
	}
	var decoded interface{}
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return ""
	}
	sanitized, err := json.Marshal(sanitizeValue(decoded))
	if err != nil {
		return ""
	}
	return string(sanitized)
}

func sanitizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, inner := range val {
			if camposSensibles[k] {
				val[k] = redactado
				continue
			}
			val[k] = sanitizeValue(inner)
		}
		return val
	case []interface{}:
		for i, inner := range val {
			val[i] = sanitizeValue(inner)
		}
		return val
	default:
		return v
	}
}
