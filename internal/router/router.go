package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/geraLv/sistema-gestion/internal/config"
	"github.com/geraLv/sistema-gestion/internal/handler"
	"github.com/geraLv/sistema-gestion/internal/infra"
	"github.com/geraLv/sistema-gestion/internal/middleware"
	"github.com/geraLv/sistema-gestion/internal/repository"
	"github.com/geraLv/sistema-gestion/internal/service"
	"github.com/geraLv/sistema-gestion/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, storage infra.ObjectStorage) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Worker dispatcher: injected into the audit middleware
	dispatcher := worker.NewDispatcher(rdb)

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	localidadRepo := repository.NewLocalidadRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	vendedorRepo := repository.NewVendedorRepository(db)
	solicitudRepo := repository.NewSolicitudRepository(db)
	cuotaRepo := repository.NewCuotaRepository(db)
	adelantoRepo := repository.NewAdelantoRepository(db)
	comprobanteRepo := repository.NewComprobanteRepository(db)
	reporteRepo := repository.NewReporteRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	localidadSvc := service.NewLocalidadService(localidadRepo)
	productoSvc := service.NewProductoService(productoRepo)
	vendedorSvc := service.NewVendedorService(vendedorRepo)
	cuotaSvc := service.NewCuotaService(cuotaRepo, solicitudRepo)
	solicitudSvc := service.NewSolicitudService(solicitudRepo, cuotaRepo)
	adelantoSvc := service.NewAdelantoService(adelantoRepo, solicitudRepo)
	comprobanteSvc := service.NewComprobanteService(comprobanteRepo, solicitudRepo, storage)
	reporteSvc := service.NewReporteService(reporteRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo)
	auditSvc := service.NewAuditService(auditRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClienteHandler(clienteSvc)
	referenciasH := handler.NewReferenciaHandler(localidadSvc, productoSvc, vendedorSvc)
	solicitudesH := handler.NewSolicitudHandler(solicitudSvc, cuotaSvc)
	cuotasH := handler.NewCuotaHandler(cuotaSvc)
	adelantosH := handler.NewAdelantoHandler(adelantoSvc)
	comprobantesH := handler.NewComprobanteHandler(comprobanteSvc)
	reportesH := handler.NewReporteHandler(reporteSvc, solicitudSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	adminH := handler.NewAdminHandler(authSvc, auditSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	api.POST("/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes: every write gets audited
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	priv := api.Group("", jwtMW, middleware.Audit(dispatcher))
	{
		priv.GET("/me", authH.Me)
		priv.POST("/cambiar-password", authH.CambiarPassword)
		priv.GET("/dashboard", dashboardH.Resumen)

		priv.GET("/clientes", clientesH.Listar)
		priv.POST("/clientes", clientesH.Crear)
		priv.GET("/clientes/:id", clientesH.Obtener)
		priv.PUT("/clientes/:id", clientesH.Actualizar)

		priv.GET("/localidades", referenciasH.ListarLocalidades)
		priv.POST("/localidades", referenciasH.CrearLocalidad)
		priv.DELETE("/localidades/:id", referenciasH.EliminarLocalidad)

		priv.GET("/productos", referenciasH.ListarProductos)
		priv.POST("/productos", referenciasH.CrearProducto)
		priv.PUT("/productos/:id", referenciasH.ActualizarProducto)

		priv.GET("/vendedores", referenciasH.ListarVendedores)
		priv.POST("/vendedores", referenciasH.CrearVendedor)
		priv.PUT("/vendedores/:id", referenciasH.ActualizarVendedor)

		priv.GET("/solicitudes", solicitudesH.Listar)
		priv.POST("/solicitudes", solicitudesH.Crear)
		priv.GET("/solicitudes/nro/:nro", solicitudesH.ObtenerPorNro)
		priv.GET("/solicitudes/:id", solicitudesH.Obtener)
		priv.PUT("/solicitudes/:id", solicitudesH.Actualizar)
		priv.PUT("/solicitudes/:id/observacion", solicitudesH.ActualizarObservacion)
		priv.GET("/solicitudes/:id/cuotas", solicitudesH.CuotasDeSolicitud)
		priv.POST("/solicitudes/:id/cuotas", solicitudesH.AdicionarCuotas)
		priv.POST("/solicitudes/:id/reconciliar", cuotasH.Reconciliar)
		priv.GET("/solicitudes/:id/adelantos", adelantosH.ListarPorSolicitud)
		priv.GET("/solicitudes/:id/comprobantes", comprobantesH.ListarPorSolicitud)
		priv.POST("/solicitudes/:id/comprobantes", comprobantesH.Subir)

		priv.GET("/cuotas", cuotasH.Listar)
		priv.GET("/cuotas/:id", cuotasH.Obtener)
		priv.POST("/cuotas/pagar-multiples", cuotasH.PagarMultiples)
		priv.POST("/cuotas/:id/pagar", cuotasH.Pagar)
		priv.PUT("/cuotas/:id/importe", cuotasH.ModificarImporte)

		priv.GET("/adelantos", adelantosH.Listar)
		priv.POST("/adelantos", adelantosH.Crear)
		priv.DELETE("/adelantos/:id", adelantosH.Eliminar)

		priv.GET("/comprobantes/:id/descargar", comprobantesH.Descargar)
		priv.DELETE("/comprobantes/:id", comprobantesH.Eliminar)

		priv.GET("/reportes/recibos", reportesH.RecibosMes)
		priv.GET("/reportes/recibos/datos", reportesH.RecibosMesJSON)
		priv.GET("/reportes/recibos/cuota/:id", reportesH.ReciboCuota)
		priv.GET("/reportes/recibos/solicitud/:id", reportesH.RecibosSolicitudPagados)
		priv.GET("/reportes/solicitudes/monitor", reportesH.MonitorSolicitud)
		priv.GET("/reportes/solicitudes", reportesH.Solicitudes)
		priv.GET("/reportes/solicitudes.xlsx", reportesH.SolicitudesXLSX)
		priv.GET("/reportes/solicitudes.pdf", reportesH.SolicitudesPDF)

		admin := priv.Group("/admin", middleware.RequireRole("admin"))
		{
			admin.GET("/usuarios", adminH.ListarUsuarios)
			admin.POST("/usuarios", adminH.CrearUsuario)
			admin.PUT("/usuarios/:id", adminH.ActualizarUsuario)
			admin.GET("/auditoria", adminH.Auditoria)
		}
	}

	// Swagger UI: development only
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
