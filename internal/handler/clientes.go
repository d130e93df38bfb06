package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/service"
)

type ClienteHandler struct{ svc service.ClienteService }

func NewClienteHandler(svc service.ClienteService) *ClienteHandler {
	return &ClienteHandler{svc: svc}
}

// Listar godoc
// @Summary Lista clientes con búsqueda y paginación
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Param busqueda query string false "Nombre o DNI"
// @Param localidad query int false "Filtrar por localidad"
// @Param page query int false "Página"
// @Param limit query int false "Tamaño de página"
// @Success 200 {object} map[string]interface{}
// @Router /clientes [get]
func (h *ClienteHandler) Listar(c *gin.Context) {
	filter := dto.ClienteFilter{
		Busqueda:  c.Query("busqueda"),
		Localidad: queryInt(c, "localidad", 0),
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 50),
	}
	clientes, total, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": clientes, "total": total, "page": filter.Page})
}

// Obtener godoc
// @Summary Obtiene un cliente por id
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de cliente"
// @Success 200 {object} model.Cliente
// @Failure 404 {object} apierror.APIError
// @Router /clientes/{id} [get]
func (h *ClienteHandler) Obtener(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cliente, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// Crear godoc
// @Summary Da de alta un cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearClienteRequest true "Datos del cliente"
// @Success 201 {object} model.Cliente
// @Failure 409 {object} apierror.APIError
// @Router /clientes [post]
func (h *ClienteHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

// Actualizar godoc
// @Summary Modifica un cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de cliente"
// @Param body body dto.ActualizarClienteRequest true "Campos a modificar"
// @Success 200 {object} model.Cliente
// @Failure 404 {object} apierror.APIError
// @Router /clientes/{id} [put]
func (h *ClienteHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}
