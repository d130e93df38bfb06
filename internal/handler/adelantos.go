package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/service"
)

type AdelantoHandler struct{ svc service.AdelantoService }

func NewAdelantoHandler(svc service.AdelantoService) *AdelantoHandler {
	return &AdelantoHandler{svc: svc}
}

// Listar godoc
// @Summary Lista todos los adelantos con el detalle de su solicitud
// @Tags adelantos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Adelanto
// @Router /adelantos [get]
func (h *AdelantoHandler) Listar(c *gin.Context) {
	adelantos, err := h.svc.ListarDetallado(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adelantos)
}

// ListarPorSolicitud godoc
// @Summary Lista los adelantos de una solicitud con su total
// @Tags adelantos
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de solicitud"
// @Success 200 {object} map[string]interface{}
// @Router /solicitudes/{id}/adelantos [get]
func (h *AdelantoHandler) ListarPorSolicitud(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	adelantos, total, err := h.svc.ListarPorSolicitud(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": adelantos, "total": total})
}

// Crear godoc
// @Summary Registra un adelanto contra una solicitud
// @Tags adelantos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearAdelantoRequest true "Datos del adelanto"
// @Success 201 {object} model.Adelanto
// @Failure 404 {object} apierror.APIError
// @Router /adelantos [post]
func (h *AdelantoHandler) Crear(c *gin.Context) {
	var req dto.CrearAdelantoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	adelanto, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, adelanto)
}

// Eliminar godoc
// @Summary Elimina un adelanto
// @Tags adelantos
// @Security BearerAuth
// @Param id path int true "ID de adelanto"
// @Success 204
// @Router /adelantos/{id} [delete]
func (h *AdelantoHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
