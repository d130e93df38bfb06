package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/service"
)

type SolicitudHandler struct {
	svc      service.SolicitudService
	cuotaSvc service.CuotaService
}

func NewSolicitudHandler(svc service.SolicitudService, cuotaSvc service.CuotaService) *SolicitudHandler {
	return &SolicitudHandler{svc: svc, cuotaSvc: cuotaSvc}
}

// Listar godoc
// @Summary Lista solicitudes con búsqueda y paginación
// @Tags solicitudes
// @Produce json
// @Security BearerAuth
// @Param busqueda query string false "Nro de solicitud o cliente"
// @Param estado query int false "0 baja, 1 activa"
// @Param page query int false "Página"
// @Param limit query int false "Tamaño de página"
// @Success 200 {object} map[string]interface{}
// @Router /solicitudes [get]
func (h *SolicitudHandler) Listar(c *gin.Context) {
	filter := dto.SolicitudFilter{
		Busqueda: c.Query("busqueda"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 50),
	}
	if v := c.Query("estado"); v != "" {
		if estado, err := strconv.Atoi(v); err == nil {
			filter.Estado = &estado
		}
	}
	solicitudes, total, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": solicitudes, "total": total, "page": filter.Page})
}

// Obtener godoc
// @Summary Obtiene una solicitud por id
// @Tags solicitudes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de solicitud"
// @Success 200 {object} model.Solicitud
// @Failure 404 {object} apierror.APIError
// @Router /solicitudes/{id} [get]
func (h *SolicitudHandler) Obtener(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	sol, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sol)
}

// ObtenerPorNro godoc
// @Summary Obtiene una solicitud por número, con su cronograma
// @Tags solicitudes
// @Produce json
// @Security BearerAuth
// @Param nro path string true "Número de solicitud"
// @Success 200 {object} model.Solicitud
// @Failure 404 {object} apierror.APIError
// @Router /solicitudes/nro/{nro} [get]
func (h *SolicitudHandler) ObtenerPorNro(c *gin.Context) {
	sol, err := h.svc.ObtenerPorNro(c.Request.Context(), c.Param("nro"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sol)
}

// Crear godoc
// @Summary Da de alta una solicitud y genera su cronograma de cuotas
// @Tags solicitudes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearSolicitudRequest true "Datos de la solicitud"
// @Success 201 {object} model.Solicitud
// @Failure 409 {object} apierror.APIError
// @Router /solicitudes [post]
func (h *SolicitudHandler) Crear(c *gin.Context) {
	var req dto.CrearSolicitudRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sol, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sol)
}

// Actualizar godoc
// @Summary Modifica una solicitud; el monto nuevo se propaga a las cuotas impagas
// @Tags solicitudes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de solicitud"
// @Param body body dto.ActualizarSolicitudRequest true "Campos a modificar"
// @Success 200 {object} model.Solicitud
// @Failure 404 {object} apierror.APIError
// @Router /solicitudes/{id} [put]
func (h *SolicitudHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarSolicitudRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sol, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sol)
}

// AdicionarCuotas godoc
// @Summary Extiende el cronograma con cuotas adicionales
// @Tags solicitudes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de solicitud"
// @Param body body dto.AdicionarCuotasRequest true "Cantidad a agregar"
// @Success 200 {object} model.Solicitud
// @Failure 404 {object} apierror.APIError
// @Router /solicitudes/{id}/cuotas [post]
func (h *SolicitudHandler) AdicionarCuotas(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.AdicionarCuotasRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sol, err := h.svc.AdicionarCuotas(c.Request.Context(), id, req.Cantidad)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sol)
}

// ActualizarObservacion godoc
// @Summary Reemplaza la observación de una solicitud
// @Tags solicitudes
// @Accept json
// @Security BearerAuth
// @Param id path int true "ID de solicitud"
// @Param body body dto.ObservacionRequest true "Observación"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /solicitudes/{id}/observacion [put]
func (h *SolicitudHandler) ActualizarObservacion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ObservacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarObservacion(c.Request.Context(), id, req.Observacion); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CuotasDeSolicitud godoc
// @Summary Lista el cronograma de cuotas de una solicitud, con resumen
// @Tags solicitudes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de solicitud"
// @Success 200 {object} map[string]interface{}
// @Router /solicitudes/{id}/cuotas [get]
func (h *SolicitudHandler) CuotasDeSolicitud(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cuotas, err := h.cuotaSvc.ObtenerCuotasSolicitud(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cuotas": cuotas, "resumen": dto.ResumenDeCuotas(cuotas)})
}
