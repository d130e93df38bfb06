package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/service"
)

type CuotaHandler struct{ svc service.CuotaService }

func NewCuotaHandler(svc service.CuotaService) *CuotaHandler { return &CuotaHandler{svc: svc} }

// Listar godoc
// @Summary Lista cuotas con detalle de solicitud y cliente
// @Tags cuotas
// @Produce json
// @Security BearerAuth
// @Param busqueda query string false "Nro de solicitud o cliente"
// @Param estado query int false "0 impaga, 2 pagada"
// @Param filtro query string false "pagadas | impagas | vencidas"
// @Param page query int false "Página"
// @Param limit query int false "Tamaño de página"
// @Success 200 {object} map[string]interface{}
// @Router /cuotas [get]
func (h *CuotaHandler) Listar(c *gin.Context) {
	filter := dto.CuotaFilter{
		Busqueda: c.Query("busqueda"),
		Filtro:   c.Query("filtro"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 50),
	}
	if v := c.Query("estado"); v != "" {
		if estado, err := strconv.Atoi(v); err == nil {
			filter.Estado = &estado
		}
	}
	cuotas, total, err := h.svc.ObtenerCuotas(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cuotas, "total": total, "page": filter.Page})
}

// Obtener godoc
// @Summary Devuelve una cuota puntual
// @Tags cuotas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de cuota"
// @Success 200 {object} model.Cuota
// @Failure 404 {object} apierror.APIError
// @Router /cuotas/{id} [get]
func (h *CuotaHandler) Obtener(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cuota, err := h.svc.ObtenerCuota(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cuota)
}

// Pagar godoc
// @Summary Paga una cuota y recalcula los totales de su solicitud
// @Tags cuotas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de cuota"
// @Success 200 {object} dto.PagoResponse
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /cuotas/{id}/pagar [post]
func (h *CuotaHandler) Pagar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.PagarCuota(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PagarMultiples godoc
// @Summary Paga un lote de cuotas; las fallas se informan por ítem
// @Tags cuotas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.PagarMultiplesRequest true "IDs de cuotas"
// @Success 200 {object} dto.PagoMultipleResponse
// @Router /cuotas/pagar-multiples [post]
func (h *CuotaHandler) PagarMultiples(c *gin.Context) {
	var req dto.PagarMultiplesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PagarMultiples(c.Request.Context(), req.IDCuotas)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ModificarImporte godoc
// @Summary Modifica el importe de una cuota impaga
// @Tags cuotas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de cuota"
// @Param body body dto.ModificarImporteRequest true "Nuevo importe"
// @Success 200 {object} model.Cuota
// @Failure 409 {object} apierror.APIError
// @Router /cuotas/{id}/importe [put]
func (h *CuotaHandler) ModificarImporte(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ModificarImporteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cuota, err := h.svc.ModificarImporte(c.Request.Context(), id, req.Importe)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cuota)
}

// Reconciliar godoc
// @Summary Recalcula los totales derivados de una solicitud
// @Tags cuotas
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de solicitud"
// @Success 200 {object} dto.SolicitudTotales
// @Failure 404 {object} apierror.APIError
// @Router /solicitudes/{id}/reconciliar [post]
func (h *CuotaHandler) Reconciliar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	totales, err := h.svc.Reconciliar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totales)
}
