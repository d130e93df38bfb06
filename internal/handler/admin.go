package handler

// Handlers del grupo /admin: gestión de usuarios y consulta de auditoría.
// Todas estas rutas exigen rol admin.

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/service"
)

type AdminHandler struct {
	auth  service.AuthService
	audit service.AuditService
}

func NewAdminHandler(auth service.AuthService, audit service.AuditService) *AdminHandler {
	return &AdminHandler{auth: auth, audit: audit}
}

// ListarUsuarios godoc
// @Summary Lista los usuarios del sistema
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UsuarioInfo
// @Router /admin/usuarios [get]
func (h *AdminHandler) ListarUsuarios(c *gin.Context) {
	usuarios, err := h.auth.ListarUsuarios(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usuarios)
}

// CrearUsuario godoc
// @Summary Da de alta un usuario
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearUsuarioRequest true "Datos del usuario"
// @Success 201 {object} dto.UsuarioInfo
// @Failure 409 {object} apierror.APIError
// @Router /admin/usuarios [post]
func (h *AdminHandler) CrearUsuario(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	info, err := h.auth.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, info)
}

// ActualizarUsuario godoc
// @Summary Modifica un usuario (rol, estado, datos)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de usuario"
// @Param body body dto.ActualizarUsuarioRequest true "Campos a modificar"
// @Success 200 {object} dto.UsuarioInfo
// @Failure 404 {object} apierror.APIError
// @Router /admin/usuarios/{id} [put]
func (h *AdminHandler) ActualizarUsuario(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	info, err := h.auth.ActualizarUsuario(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Auditoria godoc
// @Summary Consulta el registro de auditoría
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param usuario query string false "Filtrar por usuario"
// @Param ruta query string false "Filtrar por ruta"
// @Param desde query string false "Desde YYYY-MM-DD"
// @Param hasta query string false "Hasta YYYY-MM-DD"
// @Param page query int false "Página"
// @Param limit query int false "Tamaño de página"
// @Success 200 {object} map[string]interface{}
// @Router /admin/auditoria [get]
func (h *AdminHandler) Auditoria(c *gin.Context) {
	filter := dto.AuditFilter{
		Usuario: c.Query("usuario"),
		Ruta:    c.Query("ruta"),
		Desde:   c.Query("desde"),
		Hasta:   c.Query("hasta"),
		Page:    queryInt(c, "page", 1),
		Limit:   queryInt(c, "limit", 50),
	}
	entries, total, err := h.audit.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries, "total": total, "page": filter.Page})
}
