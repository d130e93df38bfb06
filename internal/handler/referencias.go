package handler

// Handlers de las tablas de referencia: localidades, productos y vendedores.

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/service"
)

type ReferenciaHandler struct {
	localidades service.LocalidadService
	productos   service.ProductoService
	vendedores  service.VendedorService
}

func NewReferenciaHandler(l service.LocalidadService, p service.ProductoService, v service.VendedorService) *ReferenciaHandler {
	return &ReferenciaHandler{localidades: l, productos: p, vendedores: v}
}

// ListarLocalidades godoc
// @Summary Lista todas las localidades
// @Tags referencias
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Localidad
// @Router /localidades [get]
func (h *ReferenciaHandler) ListarLocalidades(c *gin.Context) {
	localidades, err := h.localidades.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, localidades)
}

// CrearLocalidad godoc
// @Summary Da de alta una localidad
// @Tags referencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearLocalidadRequest true "Localidad"
// @Success 201 {object} model.Localidad
// @Router /localidades [post]
func (h *ReferenciaHandler) CrearLocalidad(c *gin.Context) {
	var req dto.CrearLocalidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	l, err := h.localidades.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// EliminarLocalidad godoc
// @Summary Elimina una localidad
// @Tags referencias
// @Security BearerAuth
// @Param id path int true "ID de localidad"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /localidades/{id} [delete]
func (h *ReferenciaHandler) EliminarLocalidad(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.localidades.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListarProductos godoc
// @Summary Lista todos los productos
// @Tags referencias
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Producto
// @Router /productos [get]
func (h *ReferenciaHandler) ListarProductos(c *gin.Context) {
	productos, err := h.productos.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, productos)
}

// CrearProducto godoc
// @Summary Da de alta un producto
// @Tags referencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearProductoRequest true "Producto"
// @Success 201 {object} model.Producto
// @Router /productos [post]
func (h *ReferenciaHandler) CrearProducto(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.productos.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ActualizarProducto godoc
// @Summary Modifica un producto
// @Tags referencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de producto"
// @Param body body dto.ActualizarProductoRequest true "Campos a modificar"
// @Success 200 {object} model.Producto
// @Failure 404 {object} apierror.APIError
// @Router /productos/{id} [put]
func (h *ReferenciaHandler) ActualizarProducto(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.productos.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListarVendedores godoc
// @Summary Lista todos los vendedores
// @Tags referencias
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Vendedor
// @Router /vendedores [get]
func (h *ReferenciaHandler) ListarVendedores(c *gin.Context) {
	vendedores, err := h.vendedores.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendedores)
}

// CrearVendedor godoc
// @Summary Da de alta un vendedor
// @Tags referencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearVendedorRequest true "Vendedor"
// @Success 201 {object} model.Vendedor
// @Router /vendedores [post]
func (h *ReferenciaHandler) CrearVendedor(c *gin.Context) {
	var req dto.CrearVendedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	v, err := h.vendedores.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// ActualizarVendedor godoc
// @Summary Modifica un vendedor
// @Tags referencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de vendedor"
// @Param body body dto.ActualizarVendedorRequest true "Campos a modificar"
// @Success 200 {object} model.Vendedor
// @Failure 404 {object} apierror.APIError
// @Router /vendedores/{id} [put]
func (h *ReferenciaHandler) ActualizarVendedor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarVendedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	v, err := h.vendedores.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
