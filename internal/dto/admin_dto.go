package dto

// AuditFilter pagina y filtra el listado de auditoría.
type AuditFilter struct {
	Usuario string
	Ruta    string
	Desde   string // "YYYY-MM-DD"
	Hasta   string // "YYYY-MM-DD"
	Page    int
	Limit   int
}
