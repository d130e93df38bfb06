package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/middleware"
	"github.com/geraLv/sistema-gestion/internal/service"
)

type ComprobanteHandler struct{ svc service.ComprobanteService }

func NewComprobanteHandler(svc service.ComprobanteService) *ComprobanteHandler {
	return &ComprobanteHandler{svc: svc}
}

// Subir godoc
// @Summary Sube un comprobante de pago (imagen o PDF) al bucket
// @Tags comprobantes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de solicitud"
// @Param archivo formData file true "Archivo"
// @Param relacuota formData int false "Cuota asociada"
// @Success 201 {object} model.Comprobante
// @Failure 400 {object} apierror.APIError
// @Router /solicitudes/{id}/comprobantes [post]
func (h *ComprobanteHandler) Subir(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el archivo 'archivo'"))
		return
	}

	var relacuota *int
	if v := c.PostForm("relacuota"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, apierror.New("relacuota inválida"))
			return
		}
		relacuota = &n
	}

	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer file.Close()

	claims := middleware.GetClaims(c)
	comp, err := h.svc.Subir(
		c.Request.Context(),
		id,
		relacuota,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
		claims.Usuario,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comp)
}

// ListarPorSolicitud godoc
// @Summary Lista los comprobantes de una solicitud
// @Tags comprobantes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de solicitud"
// @Success 200 {array} model.Comprobante
// @Router /solicitudes/{id}/comprobantes [get]
func (h *ComprobanteHandler) ListarPorSolicitud(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comprobantes, err := h.svc.ListarPorSolicitud(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comprobantes)
}

// Descargar godoc
// @Summary Devuelve una URL prefirmada de descarga del comprobante
// @Tags comprobantes
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID de comprobante"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apierror.APIError
// @Router /comprobantes/{id}/descargar [get]
func (h *ComprobanteHandler) Descargar(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	url, err := h.svc.URLDescarga(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Eliminar godoc
// @Summary Elimina un comprobante y su objeto del bucket
// @Tags comprobantes
// @Security BearerAuth
// @Param id path int true "ID de comprobante"
// @Success 204
// @Failure 404 {object} apierror.APIError
// @Router /comprobantes/{id} [delete]
func (h *ComprobanteHandler) Eliminar(c *gin.Context) {
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
