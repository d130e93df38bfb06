package middleware

import (
	"bytes"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/geraLv/sistema-gestion/internal/worker"
)

// maxAuditBody limita cuánto body se conserva en la auditoría.
const maxAuditBody = 8 << 10 // 8 KB

// Audit registra cada operación de escritura en la cola de auditoría.
// Fire-and-forget: la respuesta al cliente nunca espera por la auditoría.
func Audit(dispatcher *worker.Dispatcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.Method == "OPTIONS" || c.Request.Method == "HEAD" {
			c.Next()
			return
		}

		// Se copia el body para poder auditarlo sin consumírselo al handler.
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxAuditBody))
			c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), c.Request.Body))
		}

		c.Next()

		usuario := ""
		if claims, ok := c.Get(ClaimsKey); ok {
			if jc, ok := claims.(*JWTClaims); ok {
				usuario = jc.Usuario
			}
		}

		dispatcher.EnqueueAudit(c.Request.Context(), worker.AuditPayload{
			Usuario:   usuario,
			Metodo:    c.Request.Method,
			Ruta:      c.Request.URL.Path,
			Estado:    c.Writer.Status(),
			Body:      string(body),
			IP:        c.ClientIP(),
			RequestID: c.GetString(RequestIDKey),
		})
	}
}
