package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/geraLv/sistema-gestion/internal/apierror"
	"github.com/geraLv/sistema-gestion/internal/dto"
	"github.com/geraLv/sistema-gestion/internal/infra"
	"github.com/geraLv/sistema-gestion/internal/service"
)

type ReporteHandler struct {
	svc          service.ReporteService
	solicitudSvc service.SolicitudService
}

func NewReporteHandler(svc service.ReporteService, solicitudSvc service.SolicitudService) *ReporteHandler {
	return &ReporteHandler{svc: svc, solicitudSvc: solicitudSvc}
}

// RecibosMes godoc
// @Summary Emite el lote mensual de recibos en PDF
// @Tags reportes
// @Produce application/pdf
// @Security BearerAuth
// @Param mes query string true "Mes YYYY-MM"
// @Param localidad query int false "Restringir a una localidad"
// @Success 200 {file} binary
// @Failure 400 {object} apierror.APIError
// @Router /reportes/recibos [get]
func (h *ReporteHandler) RecibosMes(c *gin.Context) {
	filter := dto.RecibosMesFilter{
		Mes:       c.Query("mes"),
		Localidad: queryInt(c, "localidad", 0),
	}
	rows, err := h.svc.GetRecibosMes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	pdf, err := infra.GenerateRecibosMesPDF(rows)
	if err != nil {
		_ = c.Error(err)
		return
	}
	servePDF(c, fmt.Sprintf("recibos_%s.pdf", filter.Mes), pdf)
}

// RecibosMesJSON godoc
// @Summary Devuelve las filas del lote mensual de recibos sin renderizar
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param mes query string true "Mes YYYY-MM"
// @Param localidad query int false "Restringir a una localidad"
// @Success 200 {array} dto.ReporteRow
// @Router /reportes/recibos/datos [get]
func (h *ReporteHandler) RecibosMesJSON(c *gin.Context) {
	filter := dto.RecibosMesFilter{
		Mes:       c.Query("mes"),
		Localidad: queryInt(c, "localidad", 0),
	}
	rows, err := h.svc.GetRecibosMes(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ReciboCuota godoc
// @Summary Emite el recibo de una cuota puntual en PDF
// @Tags reportes
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "ID de cuota"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /reportes/recibos/cuota/{id} [get]
func (h *ReporteHandler) ReciboCuota(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.svc.GetReciboCuota(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	pdf, err := infra.GenerateReciboPDF(row)
	if err != nil {
		_ = c.Error(err)
		return
	}
	servePDF(c, fmt.Sprintf("recibo_cuota_%d.pdf", id), pdf)
}

// RecibosSolicitudPagados godoc
// @Summary Emite los recibos de las cuotas pagadas de una solicitud
// @Tags reportes
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "ID de solicitud"
// @Success 200 {file} binary
// @Router /reportes/recibos/solicitud/{id} [get]
func (h *ReporteHandler) RecibosSolicitudPagados(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rows, err := h.svc.GetRecibosSolicitudPagados(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	pdf, err := infra.GenerateRecibosMesPDF(rows)
	if err != nil {
		_ = c.Error(err)
		return
	}
	servePDF(c, fmt.Sprintf("recibos_solicitud_%d.pdf", id), pdf)
}

// MonitorSolicitud godoc
// @Summary Emite la ficha de seguimiento de una solicitud en PDF
// @Tags reportes
// @Produce application/pdf
// @Security BearerAuth
// @Param nro query string true "Número de solicitud"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /reportes/solicitudes/monitor [get]
func (h *ReporteHandler) MonitorSolicitud(c *gin.Context) {
	nro := strings.TrimSpace(c.Query("nro"))
	if nro == "" {
		c.JSON(http.StatusBadRequest, apierror.New("El número de solicitud es requerido"))
		return
	}
	sol, err := h.solicitudSvc.ObtenerPorNro(c.Request.Context(), nro)
	if err != nil {
		respondError(c, err)
		return
	}
	pdf, err := infra.GenerateMonitorPDF(sol)
	if err != nil {
		_ = c.Error(err)
		return
	}
	servePDF(c, fmt.Sprintf("monitor_solicitud_%s.pdf", nro), pdf)
}

// Solicitudes godoc
// @Summary Arma el reporte por estado (pagas, bajas o impagas)
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param estado query string false "pagas | bajas | impagas"
// @Param mes query string true "Mes YYYY-MM"
// @Param modo query string false "resumen | detalle"
// @Success 200 {array} dto.ReporteRow
// @Failure 400 {object} apierror.APIError
// @Router /reportes/solicitudes [get]
func (h *ReporteHandler) Solicitudes(c *gin.Context) {
	filter := dto.SolicitudesReporteFilter{
		Estado: c.DefaultQuery("estado", "pagas"),
		Mes:    c.Query("mes"),
		Modo:   c.DefaultQuery("modo", "resumen"),
	}
	rows, err := h.svc.GetSolicitudesReporte(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// SolicitudesXLSX godoc
// @Summary Exporta el reporte por estado a una planilla XLSX
// @Tags reportes
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param estado query string false "pagas | bajas | impagas"
// @Param mes query string true "Mes YYYY-MM"
// @Param modo query string false "resumen | detalle"
// @Success 200 {file} binary
// @Router /reportes/solicitudes.xlsx [get]
func (h *ReporteHandler) SolicitudesXLSX(c *gin.Context) {
	filter := dto.SolicitudesReporteFilter{
		Estado: c.DefaultQuery("estado", "pagas"),
		Mes:    c.Query("mes"),
		Modo:   c.DefaultQuery("modo", "resumen"),
	}
	rows, err := h.svc.GetSolicitudesReporte(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	xlsx, err := infra.GenerateReporteXLSX("Solicitudes", rows)
	if err != nil {
		_ = c.Error(err)
		return
	}
	nombre := fmt.Sprintf("solicitudes_%s_%s.xlsx", filter.Estado, filter.Mes)
	c.Header("Content-Disposition", `attachment; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", xlsx)
}

// SolicitudesPDF godoc
// @Summary Exporta el reporte por estado a un listado PDF
// @Tags reportes
// @Produce application/pdf
// @Security BearerAuth
// @Param estado query string false "pagas | bajas | impagas"
// @Param mes query string true "Mes YYYY-MM"
// @Param modo query string false "resumen | detalle"
// @Success 200 {file} binary
// @Router /reportes/solicitudes.pdf [get]
func (h *ReporteHandler) SolicitudesPDF(c *gin.Context) {
	filter := dto.SolicitudesReporteFilter{
		Estado: c.DefaultQuery("estado", "pagas"),
		Mes:    c.Query("mes"),
		Modo:   c.DefaultQuery("modo", "resumen"),
	}
	rows, err := h.svc.GetSolicitudesReporte(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	titulo := fmt.Sprintf("Solicitudes %s - %s", filter.Estado, filter.Mes)
	pdf, err := infra.GenerateResumenPDF(titulo, rows)
	if err != nil {
		_ = c.Error(err)
		return
	}
	servePDF(c, fmt.Sprintf("solicitudes_%s_%s.pdf", filter.Estado, filter.Mes), pdf)
}

func servePDF(c *gin.Context, nombre string, pdf []byte) {
	c.Header("Content-Disposition", `inline; filename="`+nombre+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
